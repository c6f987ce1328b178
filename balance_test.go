package budget

import (
	"errors"
	"testing"
)

func TestParseGroup(t *testing.T) {
	tests := []struct {
		input string
		want  Group
		err   bool
	}{
		{"cash", GroupCash, false},
		{"assets.cash", GroupCash, false},
		{"debts", GroupDebts, false},
		{"liabilities.debts", GroupDebts, false},
		{"assets.debts", "", true},
		{"savings", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseGroup(tt.input)
			if tt.err {
				if !errors.Is(err, ErrUnknownGroup) {
					t.Fatalf("ParseGroup(%q) err = %v, want ErrUnknownGroup", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("ParseGroup(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestBalanceItemCRUD(t *testing.T) {
	book := make(BalanceBook)
	m := MustParseMonth("2026-01")

	it, err := book.AddItem(m, GroupCash, "Ziraat", dec("1200"), "vadesiz")
	if err != nil {
		t.Fatal(err)
	}
	if it.ID == "" {
		t.Fatal("item has no id")
	}

	name := "Ziraat Vadeli"
	amount := dec("1500")
	if err := book.UpdateItem(m, GroupCash, it.ID, ItemPatch{Name: &name, BaseAmount: &amount}); err != nil {
		t.Fatal(err)
	}
	got, err := book[m].find(GroupCash, it.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != name || !got.BaseAmount.Equal(amount) || got.Note != "vadesiz" {
		t.Errorf("item after patch = %+v", got)
	}

	if err := book.UpdateItem(m, GroupCash, "nope", ItemPatch{}); !errors.Is(err, ErrUnknownItem) {
		t.Errorf("unknown id err = %v, want ErrUnknownItem", err)
	}
	if err := book.UpdateItem(m.Add(1), GroupCash, it.ID, ItemPatch{}); !errors.Is(err, ErrUnknownItem) {
		t.Errorf("wrong month err = %v, want ErrUnknownItem", err)
	}

	if err := book.DeleteItem(m, GroupCash, it.ID); err != nil {
		t.Fatal(err)
	}
	if err := book.DeleteItem(m, GroupCash, it.ID); !errors.Is(err, ErrUnknownItem) {
		t.Errorf("double delete err = %v, want ErrUnknownItem", err)
	}
}

func TestEquityIsDerived(t *testing.T) {
	book := make(BalanceBook)
	m := MustParseMonth("2026-01")
	book.AddItem(m, GroupCash, "Ziraat", dec("1200"), "")
	book.AddItem(m, GroupInvestments, "BES", dec("800"), "")
	book.AddItem(m, GroupCards, "Akbank", dec("500"), "")

	bs := book[m]
	if got := bs.SumSide(Assets); !got.Equal(dec("2000")) {
		t.Errorf("assets = %s, want 2000", got)
	}
	if got := bs.SumSide(Liabilities); !got.Equal(dec("500")) {
		t.Errorf("liabilities = %s, want 500", got)
	}
	if got := bs.Equity(); !got.Equal(dec("1500")) {
		t.Errorf("equity = %s, want 1500", got)
	}
}

func TestMonthsAreIndependent(t *testing.T) {
	book := make(BalanceBook)
	jan := MustParseMonth("2026-01")
	feb := MustParseMonth("2026-02")
	it, _ := book.AddItem(jan, GroupCash, "Ziraat", dec("1200"), "")
	book.AddItem(feb, GroupCash, "Ziraat", dec("1200"), "")

	amount := dec("9999")
	if err := book.UpdateItem(jan, GroupCash, it.ID, ItemPatch{BaseAmount: &amount}); err != nil {
		t.Fatal(err)
	}
	if got := book[feb].SumGroup(GroupCash); !got.Equal(dec("1200")) {
		t.Errorf("february = %s, want untouched 1200", got)
	}
}

func TestCopyFrom(t *testing.T) {
	book := make(BalanceBook)
	jan := MustParseMonth("2026-01")
	feb := MustParseMonth("2026-02")

	src, _ := book.AddItem(jan, GroupCash, "Ziraat", dec("1200"), "")
	book.Sheet(jan).Plan = Plan{Assets: dec("2000"), Liabilities: dec("500"), Equity: dec("1500")}

	if err := book.CopyFrom(jan, feb); err != nil {
		t.Fatal(err)
	}

	febItems := book[feb].Assets.Cash
	if len(febItems) != 1 || febItems[0].Name != "Ziraat" || !febItems[0].BaseAmount.Equal(dec("1200")) {
		t.Fatalf("copied items = %+v", febItems)
	}
	// Clones get fresh identities so later edits stay independent.
	if febItems[0].ID == src.ID {
		t.Error("copied item shares the source id")
	}
	if got := book[feb].Plan; !got.Assets.Equal(dec("2000")) || !got.Liabilities.Equal(dec("500")) || !got.Equity.Equal(dec("1500")) {
		t.Errorf("copied plan = %+v", got)
	}

	amount := dec("1")
	if err := book.UpdateItem(feb, GroupCash, febItems[0].ID, ItemPatch{BaseAmount: &amount}); err != nil {
		t.Fatal(err)
	}
	if got := book[jan].SumGroup(GroupCash); !got.Equal(dec("1200")) {
		t.Errorf("source month = %s, want untouched 1200", got)
	}

	if err := book.CopyFrom(MustParseMonth("2025-01"), feb); err == nil {
		t.Error("copying from an absent month should fail")
	}
}

func TestHasAnyItems(t *testing.T) {
	book := make(BalanceBook)
	m := MustParseMonth("2026-01")

	if book.HasAnyItems(m) {
		t.Error("absent month reported items")
	}
	book.Sheet(m) // materialized but empty
	if book.HasAnyItems(m) {
		t.Error("empty month reported items")
	}
	book.AddItem(m, GroupDebts, "X", dec("1"), "")
	if !book.HasAnyItems(m) {
		t.Error("month with an item reported empty")
	}
}
