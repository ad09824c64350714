package codes_test

import (
	"errors"
	"testing"

	"github.com/daniel-ilyin/lusid-go-tools/pkg/codes"
)

func TestMakeCodeFriendly(t *testing.T) {
	cases := []struct {
		name string
		raw  any
		want string
	}{
		{name: "ampersand", raw: "S&PCreditRating(UK)", want: "SandPCreditRatingUK"},
		{name: "percent", raw: "Return%", want: "ReturnPercentage"},
		{name: "dot", raw: "balances.available", want: "balances_available"},
		{name: "slash", raw: "Buy/Sell Indicator", want: "BuySellIndicator"},
		{name: "currency symbols", raw: "£DollarDollarBills$", want: "DollarDollarBills"},
		{name: "spaces", raw: "Dollar Dollar Bills", want: "DollarDollarBills"},
		{name: "dash kept", raw: "Buy-SellIndicator", want: "Buy-SellIndicator"},
		{name: "integer", raw: 1, want: "1"},
		{name: "decimal", raw: 1.8596, want: "1_8596"},
		{name: "list", raw: []string{"My", "List", "Code"}, want: "MyListCode"},
		{name: "mixed list", raw: []any{"My", 2, "Codes"}, want: "My2Codes"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := codes.MakeCodeFriendly(tc.raw)
			if err != nil {
				t.Fatalf("MakeCodeFriendly(%v) returned error: %v", tc.raw, err)
			}
			if got != tc.want {
				t.Fatalf("MakeCodeFriendly(%v) = %q, want %q", tc.raw, got, tc.want)
			}
		})
	}
}

func TestMakeCodeFriendlyTooLong(t *testing.T) {
	_, err := codes.MakeCodeFriendly("S&PCreditRating(UK)ThisIsAReallyLongCodeThatExceedsTheCharacterLimit")
	if err == nil {
		t.Fatal("expected an error for a code over the character limit")
	}
}

func TestMakeCodeFriendlyUntextual(t *testing.T) {
	_, err := codes.MakeCodeFriendly([]byte{0x00, 0x01})
	if !errors.Is(err, codes.ErrUntextual) {
		t.Fatalf("expected ErrUntextual, got %v", err)
	}
}

func TestCamelToSnake(t *testing.T) {
	cases := []struct{ in, want string }{
		{"instrumentIdentifiers", "instrument_identifiers"},
		{"taxLots", "tax_lots"},
		{"lookThroughPortfolioId", "look_through_portfolio_id"},
		{"code", "code"},
	}
	for _, tc := range cases {
		if got := codes.CamelToSnake(tc.in); got != tc.want {
			t.Fatalf("CamelToSnake(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
