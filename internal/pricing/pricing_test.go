package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
)

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal %q: %v", s, err)
	}
	return d
}

func TestSubtotal(t *testing.T) {
	tests := []struct {
		name      string
		unitPrice string
		quantity  int
		want      string
	}{
		{"whole quantity", "14.00", 3, "42.00"},
		{"single item", "9.99", 1, "9.99"},
		{"cents do not drift", "0.10", 3, "0.30"},
		{"zero price", "0.00", 5, "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Subtotal(Line{Quantity: tt.quantity, UnitPrice: mustDecimal(t, tt.unitPrice)})
			if got.StringFixed(2) != tt.want {
				t.Errorf("Subtotal = %s, want %s", got.StringFixed(2), tt.want)
			}
		})
	}
}

func TestTotal(t *testing.T) {
	lines := []Line{
		{Quantity: 3, UnitPrice: mustDecimal(t, "14.00")},
		{Quantity: 1, UnitPrice: mustDecimal(t, "0.10")},
		{Quantity: 2, UnitPrice: mustDecimal(t, "0.10")},
	}
	if got := Total(lines).StringFixed(2); got != "42.30" {
		t.Errorf("Total = %s, want 42.30", got)
	}
}

func TestTotal_Empty(t *testing.T) {
	if got := Total(nil); !got.IsZero() {
		t.Errorf("Total(nil) = %s, want 0", got)
	}
}

// The binary-float version of this sum is the classic 0.30000000000000004.
func TestTotal_ExactAddition(t *testing.T) {
	lines := []Line{
		{Quantity: 1, UnitPrice: mustDecimal(t, "0.1")},
		{Quantity: 1, UnitPrice: mustDecimal(t, "0.2")},
	}
	if got := Total(lines); !got.Equal(mustDecimal(t, "0.3")) {
		t.Errorf("Total = %s, want exactly 0.3", got)
	}
}
