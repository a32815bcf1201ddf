package service

import (
	"math"
	"testing"

	"github.com/globalway/tracking-service/internal/core/domain"
)

// ---------------------------------------------------------------------------
// AmountOf tests
// ---------------------------------------------------------------------------

func TestAmountOf_Coercion(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want float64
	}{
		{"nil", nil, 0},
		{"float", 45.5, 45.5},
		{"int", 12, 12},
		{"int32", int32(7), 7},
		{"int64", int64(9), 9},
		{"numeric string", "45.50", 45.5},
		{"padded string", "  19.99 ", 19.99},
		{"garbage string", "abc", 0},
		{"empty string", "", 0},
		{"bool", true, 0},
		{"negative string", "-3.25", -3.25},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := AmountOf(tc.in)
			if got != tc.want {
				t.Errorf("AmountOf(%v): want %v, got %v", tc.in, tc.want, got)
			}
			if math.IsNaN(got) {
				t.Errorf("AmountOf(%v) produced NaN", tc.in)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// FormatAmount tests
// ---------------------------------------------------------------------------

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		name     string
		amount   any
		currency string
		want     string
	}{
		{"usd float", 45.5, "USD", "$45.50"},
		{"usd string amount", "45.50", "USD", "$45.50"},
		{"eur", 10.0, "EUR", "€10.00"},
		{"gbp", 3.0, "GBP", "£3.00"},
		{"jpy", 1500.0, "JPY", "¥1500.00"},
		{"cad", 9.5, "CAD", "C$9.50"},
		{"aud", 9.5, "AUD", "A$9.50"},
		{"cny", 88.0, "CNY", "¥88.00"},
		{"unknown code falls back to usd", 5.0, "XXX", "$5.00"},
		{"empty code falls back to usd", 5.0, "", "$5.00"},
		{"lowercase code", 5.0, "eur", "€5.00"},
		{"nil amount", nil, "USD", "$0.00"},
		{"unparsable amount", "n/a", "EUR", "€0.00"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := FormatAmount(tc.amount, tc.currency)
			if got != tc.want {
				t.Errorf("FormatAmount(%v, %q): want %q, got %q", tc.amount, tc.currency, tc.want, got)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// PaymentTotal tests
// ---------------------------------------------------------------------------

func TestPaymentTotal_NilPayment(t *testing.T) {
	if got := PaymentTotal(nil); got != 0 {
		t.Errorf("nil payment: want 0, got %v", got)
	}
}

func TestPaymentTotal_SumsOnlyParsableFields(t *testing.T) {
	cases := []struct {
		name    string
		payment *domain.PaymentInfo
		want    float64
	}{
		{
			"all five present",
			&domain.PaymentInfo{Shipping: 10.0, Insurance: 5.0, CustomsDuties: 2.5, Taxes: 1.5, AdditionalFees: 0.5},
			19.5,
		},
		{
			"mixed numbers and strings",
			&domain.PaymentInfo{Shipping: "45.50", Insurance: 4.5, Taxes: "1.00"},
			51,
		},
		{
			"unparsable fields contribute zero",
			&domain.PaymentInfo{Shipping: "45.50", Insurance: "pending", CustomsDuties: "--"},
			45.5,
		},
		{
			"all absent",
			&domain.PaymentInfo{Currency: "USD"},
			0,
		},
		{
			"single string field",
			&domain.PaymentInfo{Shipping: "45.50"},
			45.5,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := PaymentTotal(tc.payment)
			if got != tc.want {
				t.Errorf("want %v, got %v", tc.want, got)
			}
			if math.IsNaN(got) {
				t.Error("PaymentTotal produced NaN")
			}
		})
	}
}
