package budget

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
)

// This file contains functions to access the frankfurter.app API, the
// historical rate service. Frankfurter publishes ECB reference rates, so
// weekends and bank holidays have no data; range responses skip those days.

const frankfurterURLEnv = "BP_FRANKFURTER_URL"

const defaultFrankfurterURL = "https://api.frankfurter.app"

// FrankfurterProvider serves daily and range FX rates against a base
// currency. It is the primary provider of the default chain.
type FrankfurterProvider struct {
	Base string // base currency all rates are quoted against

	addr   string
	client *http.Client
}

// NewFrankfurterProvider returns a provider quoting against the given base
// currency. The service address can be overridden with the
// BP_FRANKFURTER_URL environment variable (useful for tests).
func NewFrankfurterProvider(base string) *FrankfurterProvider {
	addr := os.Getenv(frankfurterURLEnv)
	if addr == "" {
		addr = defaultFrankfurterURL
	}
	return &FrankfurterProvider{Base: base, addr: addr, client: daily()}
}

// frankfurterDaily is the payload of a single-day query.
type frankfurterDaily struct {
	Base  string             `json:"base"`
	Date  string             `json:"date"`
	Rates map[string]float64 `json:"rates"`
}

// frankfurterRange is the payload of a period query.
type frankfurterRange struct {
	Base  string                        `json:"base"`
	Rates map[string]map[string]float64 `json:"rates"` // keyed by ISO day
}

func (p *FrankfurterProvider) query(day string) string {
	return fmt.Sprintf("%s/%s?from=%s", p.addr, day, url.QueryEscape(p.Base))
}

// DailyRates implements RateProvider for a single day.
func (p *FrankfurterProvider) DailyRates(ctx context.Context, day Date, currencies []string) (map[string]float64, error) {
	addr := p.query(day.String()) + "&to=" + url.QueryEscape(strings.Join(currencies, ","))
	var payload frankfurterDaily
	if err := jwget(ctx, p.client, addr, &payload); err != nil {
		return nil, fmt.Errorf("frankfurter daily rates on %s: %w", day, err)
	}
	// Frankfurter answers the closest previous business day. That is the
	// authoritative quote for the requested day.
	rates := make(map[string]float64, len(currencies))
	for _, cur := range currencies {
		v, ok := payload.Rates[cur]
		if !ok {
			return nil, fmt.Errorf("frankfurter has no %s rate on %s", cur, day)
		}
		rates[cur] = v
	}
	return rates, nil
}

// RangeRates implements RateProvider for an inclusive day range.
func (p *FrankfurterProvider) RangeRates(ctx context.Context, from, to Date, currencies []string) (map[Date]map[string]float64, error) {
	addr := p.query(from.String()+".."+to.String()) + "&to=" + url.QueryEscape(strings.Join(currencies, ","))
	var payload frankfurterRange
	if err := jwget(ctx, p.client, addr, &payload); err != nil {
		return nil, fmt.Errorf("frankfurter range rates %s..%s: %w", from, to, err)
	}
	result := make(map[Date]map[string]float64, len(payload.Rates))
	for dayStr, rates := range payload.Rates {
		day, err := ParseDate(dayStr)
		if err != nil {
			return nil, fmt.Errorf("frankfurter returned unexpected day %q: %w", dayStr, err)
		}
		result[day] = rates
	}
	return result, nil
}

var _ RateProvider = (*FrankfurterProvider)(nil)
