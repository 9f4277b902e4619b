package analytics

import (
	"encoding/json"
	"math"
	"testing"
)

func TestNormalizePrice(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want float64
	}{
		{"nil", nil, 0},
		{"float", 450.5, 450.5},
		{"int", 500, 500},
		{"int64", int64(1200), 1200},
		{"uint", uint(75), 75},
		{"plain string", "500", 500},
		{"rupee prefix", "₹500", 500},
		{"dollar prefix", "$1200", 1200},
		{"thousands separator", "₹1,500.50", 1500.5},
		{"json number", json.Number("850"), 850},
		{"value object", map[string]any{"value": 500.0}, 500},
		{"value object with string", map[string]any{"value": "₹750"}, 750},
		{"object without value", map[string]any{"amount": 500.0}, 0},
		{"garbage string", "free!!", 0},
		{"empty string", "", 0},
		{"only glyphs", "₹", 0},
		{"nan", math.NaN(), 0},
		{"positive inf", math.Inf(1), 0},
		{"bool", true, 0},
		{"slice", []int{1, 2}, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizePrice(tc.in)
			if math.IsNaN(got) || math.IsInf(got, 0) {
				t.Fatalf("NormalizePrice(%v) returned non-finite %v", tc.in, got)
			}
			if got != tc.want {
				t.Fatalf("NormalizePrice(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalizePriceMixedSum(t *testing.T) {
	// The same booking list can carry all three price shapes at once.
	prices := []any{"₹500", 500, map[string]any{"value": 500.0}}

	sum := 0.0
	for _, p := range prices {
		sum += NormalizePrice(p)
	}
	if sum != 1500 {
		t.Fatalf("sum over mixed representations = %v, want 1500", sum)
	}
}

func TestPaymentAmount(t *testing.T) {
	tests := []struct {
		name    string
		payment PaymentType
		price   any
		want    float64
	}{
		{"full payment", PaymentFull, "₹800", 800},
		{"partial pays half", PaymentPartial, 800, 400},
		{"pending pays full", PaymentPending, "800", 800},
		{"partial of malformed price", PaymentPartial, "n/a", 0},
		{"missing price", PaymentFull, nil, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := Booking{PaymentType: tc.payment, Slot: Slot{Price: tc.price}}
			if got := PaymentAmount(b); got != tc.want {
				t.Fatalf("PaymentAmount = %v, want %v", got, tc.want)
			}
		})
	}
}
