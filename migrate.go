package budget

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// This file decodes persisted state. Anything older than the current schema
// is migrated here, once, before the state reaches any core logic.
//
// Version 1 is the export format of the original single-page app: split
// income/expense category lists, "type"/"amountUSD"/"categoryId" field
// names, plan maps keyed by full "YYYY-MM", and monthly forecast rates that
// become the manual overrides of the current schema.

// DecodeState parses a raw state document of any known schema version into
// a current State. Documents without a version field are treated as v1.
func DecodeState(raw []byte) (*State, error) {
	var probe struct {
		Version int `json:"version"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, fmt.Errorf("unreadable state document: %w", err)
	}

	switch probe.Version {
	case 0, 1:
		return migrateV1(raw)
	case SchemaVersion:
		var s State
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, fmt.Errorf("invalid v%d state document: %w", SchemaVersion, err)
		}
		normalize(&s)
		return &s, nil
	default:
		return nil, fmt.Errorf("unsupported state schema version %d", probe.Version)
	}
}

// EncodeState serializes the state in its canonical indented form.
func EncodeState(s *State) ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// normalize repairs the containers a hand-edited or sparse document may
// have left null, so core logic never needs nil checks.
func normalize(s *State) {
	s.Version = SchemaVersion
	if s.BaseCurrency == "" {
		s.BaseCurrency = "USD"
	}
	if s.App.Selected.IsZero() {
		s.App.Selected = ThisMonth()
	}
	if s.NextCategoryID < 1 {
		s.NextCategoryID = 1
	}
	if s.Rates == nil {
		s.Rates = make(map[Month]*RateRecord)
	}
	if s.Fallback == nil {
		s.Fallback = make(map[string]decimal.Decimal)
	}
	if s.BalanceSheets == nil {
		s.BalanceSheets = make(BalanceBook)
	}
}

// v1 document shapes, mirrored field by field from the original app.

type v1State struct {
	App struct {
		Year  int    `json:"year"`
		Month string `json:"month"`
	} `json:"app"`
	Categories struct {
		Income  []v1Category `json:"income"`
		Expense []v1Category `json:"expense"`
	} `json:"categories"`
	NextCategoryID int                                   `json:"nextCategoryId"`
	MonthlyRates   map[string]map[string]decimal.Decimal `json:"monthlyRates"`
	ExchangeRates  map[string]decimal.Decimal            `json:"exchangeRates"`
	Transactions   []v1Transaction                       `json:"transactions"`
	BalanceSheets  map[string]v1BalanceSheet             `json:"balanceSheets"`
}

type v1Category struct {
	ID    string                     `json:"id"`
	Name  string                     `json:"name"`
	Plans map[string]decimal.Decimal `json:"plans"` // keyed by "YYYY-MM"
}

type v1Transaction struct {
	ID         string          `json:"id"`
	Type       Kind            `json:"type"`
	Date       Date            `json:"date"`
	Amount     decimal.Decimal `json:"amount"`
	Currency   string          `json:"currency"`
	AmountUSD  decimal.Decimal `json:"amountUSD"`
	RateUsed   decimal.Decimal `json:"rateUsed"`
	CategoryID string          `json:"categoryId"`
	Note       string          `json:"note"`
	CreatedAt  time.Time       `json:"createdAt"`
}

type v1Item struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	AmountUSD decimal.Decimal `json:"amountUSD"`
}

type v1BalanceSheet struct {
	Plan struct {
		Assets decimal.Decimal `json:"assets"`
		Liab   decimal.Decimal `json:"liab"`
		Equity decimal.Decimal `json:"equity"`
	} `json:"plan"`
	Assets struct {
		Cash        []v1Item `json:"cash"`
		Investments []v1Item `json:"investments"`
		Receivables []v1Item `json:"receivables"`
	} `json:"assets"`
	Liabilities struct {
		Credits []v1Item `json:"credits"`
		Cards   []v1Item `json:"cards"`
		Debts   []v1Item `json:"debts"`
	} `json:"liabilities"`
}

func migrateV1(raw []byte) (*State, error) {
	var old v1State
	if err := json.Unmarshal(raw, &old); err != nil {
		return nil, fmt.Errorf("invalid v1 state document: %w", err)
	}

	s := &State{
		Version:        SchemaVersion,
		BaseCurrency:   "USD",
		NextCategoryID: old.NextCategoryID,
		Rates:          make(map[Month]*RateRecord),
		Fallback:       make(map[string]decimal.Decimal),
		BalanceSheets:  make(BalanceBook),
	}

	if old.App.Year != 0 {
		if m, err := ParseMonth(fmt.Sprintf("%04d-%s", old.App.Year, old.App.Month)); err == nil {
			s.App.Selected = m
		}
	}

	migrateCategory := func(kind Kind, c v1Category) {
		cat := Category{ID: c.ID, Kind: kind, Name: c.Name, Currency: s.BaseCurrency}
		// v1 plans were keyed by full "YYYY-MM"; the current schema keys by
		// month of year. Later years win when a month repeats.
		planYear := make(map[string]int)
		for ym, amount := range c.Plans {
			m, err := ParseMonth(ym)
			if err != nil {
				continue
			}
			if year, ok := planYear[m.Key()]; ok && year >= m.Year() {
				continue
			}
			planYear[m.Key()] = m.Year()
			cat.SetPlanFor(m, amount)
		}
		s.Categories = append(s.Categories, cat)
	}
	for _, c := range old.Categories.Income {
		migrateCategory(Income, c)
	}
	for _, c := range old.Categories.Expense {
		migrateCategory(Expense, c)
	}

	// v1 monthly forecast rates are the manual overrides of this schema.
	for ym, rates := range old.MonthlyRates {
		m, err := ParseMonth(ym)
		if err != nil {
			continue
		}
		rec := &RateRecord{Override: make(map[string]decimal.Decimal)}
		for cur, rate := range rates {
			if cur != s.BaseCurrency && rate.IsPositive() {
				rec.Override[cur] = rate
			}
		}
		if len(rec.Override) > 0 {
			s.Rates[m] = rec
		}
	}

	for cur, rate := range old.ExchangeRates {
		if cur != s.BaseCurrency && rate.IsPositive() {
			s.Fallback[cur] = rate
		}
	}

	categoryName := func(id string) string {
		for _, c := range s.Categories {
			if c.ID == id {
				return c.Name
			}
		}
		return ""
	}
	for _, tx := range old.Transactions {
		s.Transactions.Append(Transaction{
			ID:           tx.ID,
			Kind:         tx.Type,
			Date:         tx.Date,
			Amount:       tx.Amount,
			Currency:     tx.Currency,
			Note:         tx.Note,
			CategoryName: categoryName(tx.CategoryID),
			BaseAmount:   tx.AmountUSD,
			RateUsed:     tx.RateUsed,
			Source:       RateSourceDaily,
			CreatedAt:    tx.CreatedAt,
		})
	}

	items := func(old []v1Item) []BalanceItem {
		out := make([]BalanceItem, 0, len(old))
		for _, it := range old {
			if it.Name == "" {
				continue
			}
			out = append(out, BalanceItem{ID: it.ID, Name: it.Name, BaseAmount: it.AmountUSD})
		}
		return out
	}
	for ym, bs := range old.BalanceSheets {
		m, err := ParseMonth(ym)
		if err != nil {
			continue
		}
		s.BalanceSheets[m] = &BalanceSheet{
			Plan: Plan{Assets: bs.Plan.Assets, Liabilities: bs.Plan.Liab, Equity: bs.Plan.Equity},
			Assets: AssetGroups{
				Cash:        items(bs.Assets.Cash),
				Investments: items(bs.Assets.Investments),
				Receivables: items(bs.Assets.Receivables),
			},
			Liabilities: LiabilityGroups{
				Credits: items(bs.Liabilities.Credits),
				Cards:   items(bs.Liabilities.Cards),
				Debts:   items(bs.Liabilities.Debts),
			},
		}
	}

	normalize(s)
	return s, nil
}
