package analyzer

import (
	"errors"
	"testing"
)

func TestParseSortKey(t *testing.T) {
	for _, key := range SortKeys() {
		got, err := ParseSortKey(key.String())
		if err != nil {
			t.Errorf("ParseSortKey(%q) error = %v", key.String(), err)
		}
		if got != key {
			t.Errorf("ParseSortKey(%q) = %v, want %v", key.String(), got, key)
		}
	}

	if got, err := ParseSortKey(" Gain_Loss "); err != nil || got != ByGainLoss {
		t.Errorf("ParseSortKey(\" Gain_Loss \") = %v, %v, want gain_loss", got, err)
	}

	for _, s := range []string{"", "price", "current value", "symbol,company"} {
		if _, err := ParseSortKey(s); !errors.Is(err, ErrInvalidSortKey) {
			t.Errorf("ParseSortKey(%q) error = %v, want ErrInvalidSortKey", s, err)
		}
	}
}

func TestSortKey_Header(t *testing.T) {
	keys := SortKeys()
	if len(keys) != len(ExportHeader) {
		t.Fatalf("%d sort keys for %d export columns", len(keys), len(ExportHeader))
	}
	for i, key := range keys {
		if key.Header() != ExportHeader[i] {
			t.Errorf("%v.Header() = %q, want %q", key, key.Header(), ExportHeader[i])
		}
	}
	if NoSort.Header() != "" {
		t.Errorf("NoSort.Header() = %q, want \"\"", NoSort.Header())
	}
}

func TestComparator(t *testing.T) {
	for _, key := range SortKeys() {
		cmp, err := Comparator(key)
		if err != nil {
			t.Fatalf("Comparator(%v) error = %v", key, err)
		}
		if got := cmp(tcs, tcs); got != 0 {
			t.Errorf("Comparator(%v)(tcs, tcs) = %d, want 0", key, got)
		}
		ab, ba := cmp(reliance, suven), cmp(suven, reliance)
		if ab == 0 || ab != -ba {
			t.Errorf("Comparator(%v) is not antisymmetric: %d, %d", key, ab, ba)
		}
	}
	if _, err := Comparator(NoSort); !errors.Is(err, ErrInvalidSortKey) {
		t.Errorf("Comparator(NoSort) error = %v, want ErrInvalidSortKey", err)
	}
}

func TestComparator_Numeric(t *testing.T) {
	// numbers are not compared as text: "9.22" > "54.69" as strings.
	cmp, _ := Comparator(ByReturnPct)
	if got := cmp(reliance, suven); got >= 0 {
		t.Errorf("Comparator(return_pct)(9.22, 54.69) = %d, want < 0", got)
	}
	cmp, _ = Comparator(ByQuantity)
	if got := cmp(holding("A", "", "", 9, 0, 0, 0), holding("B", "", "", 10, 0, 0, 0)); got >= 0 {
		t.Errorf("Comparator(quantity)(9, 10) = %d, want < 0", got)
	}
}
