package budget

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/shopspring/decimal"
)

func TestMoney_String(t *testing.T) {
	testCases := []struct {
		m    Money
		want string
	}{
		{INR(1200.50), "₹1,200.50"},
		{INR(5200.5), "₹5,200.50"},
		{INR(0), "₹0.00"},
		{M(10.5, "USD"), "$10.50"},
		{M(12.5, ""), "12.50"},
		{M(decimal.RequireFromString("100000000000000000000"), "INR"), "₹100,000,000,000,000,000,000.00"},
		{M(decimal.RequireFromString("-92233720368547758.08"), "USD"), "-$92,233,720,368,547,758.08"},
	}
	for _, tc := range testCases {
		t.Run(tc.want, func(t *testing.T) {
			if got := tc.m.String(); got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestAmount(t *testing.T) {
	testCases := []struct {
		name    string
		value   float64
		wantErr bool
	}{
		{"positive", 12.5, false},
		{"zero", 0, true},
		{"negative", -1, true},
		{"nan", math.NaN(), true},
		{"infinite", math.Inf(1), true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Amount(tc.value)
			if (err != nil) != tc.wantErr {
				t.Fatalf("Amount(%v) error = %v, wantErr %v", tc.value, err, tc.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidAmount) {
				t.Errorf("Amount(%v) error = %v, want %v", tc.value, err, ErrInvalidAmount)
			}
		})
	}
}

func TestMoney_Arithmetic(t *testing.T) {
	if got := INR(10).Add(M(5, "")); !got.Equal(INR(15)) {
		t.Errorf("Add() = %v, want %v", got, INR(15))
	}
	if got := INR(10).Sub(INR(15)); !got.Equal(INR(-5)) {
		t.Errorf("Sub() = %v, want %v", got, INR(-5))
	}
	defer func() {
		if recover() == nil {
			t.Errorf("Add() across currencies did not panic")
		}
	}()
	INR(1).Add(M(1, "USD"))
}

func TestMoney_MarshalJSON(t *testing.T) {
	got, err := json.Marshal(INR(12.5))
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if want := `{"amount":"12.5","currency":"INR"}`; string(got) != want {
		t.Errorf("Marshal() = %s, want %s", got, want)
	}
}

func TestKnownCurrency(t *testing.T) {
	for code, want := range map[string]bool{"INR": true, "usd": true, "ABC": false, "": false} {
		if got := KnownCurrency(code); got != want {
			t.Errorf("KnownCurrency(%q) = %v, want %v", code, got, want)
		}
	}
}
