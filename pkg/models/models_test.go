package models

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLookup(t *testing.T) {
	for _, name := range []string{
		"InstrumentDefinition",
		"CreateTransactionPortfolioRequest",
		"TransactionRequest",
		"AdjustHoldingRequest",
		"UpsertQuoteRequest",
	} {
		descriptor, ok := Lookup(name)
		if !ok {
			t.Fatalf("Lookup(%q) not registered", name)
		}
		if descriptor.Name != name {
			t.Errorf("Lookup(%q).Name = %q", name, descriptor.Name)
		}
		if descriptor.New == nil {
			t.Errorf("Lookup(%q).New is nil", name)
		}
	}

	if IsModel("NotAModel") {
		t.Error(`IsModel("NotAModel") = true, want false`)
	}
}

func TestFieldKinds(t *testing.T) {
	tests := []struct {
		model     string
		attribute string
		kind      Kind
		nested    string
	}{
		{"InstrumentDefinition", "name", KindScalar, ""},
		{"InstrumentDefinition", "identifiers", KindIdentifiers, ""},
		{"InstrumentDefinition", "look_through_portfolio_id", KindNested, "ResourceId"},
		{"TransactionRequest", "transaction_date", KindDatetime, ""},
		{"TransactionRequest", "total_consideration", KindNested, "CurrencyAndAmount"},
		{"AdjustHoldingRequest", "tax_lots", KindNestedList, "TargetTaxLot"},
		{"AdjustHoldingRequest", "sub_holding_keys", KindSubHoldingKeys, ""},
		{"CreateTransactionPortfolioRequest", "properties", KindProperties, ""},
	}

	for _, tt := range tests {
		descriptor, ok := Lookup(tt.model)
		if !ok {
			t.Fatalf("Lookup(%q) not registered", tt.model)
		}
		field, ok := descriptor.Field(tt.attribute)
		if !ok {
			t.Fatalf("%s has no field %s", tt.model, tt.attribute)
		}
		if field.Kind != tt.kind || field.Model != tt.nested {
			t.Errorf("%s.%s = (%v, %q), want (%v, %q)",
				tt.model, tt.attribute, field.Kind, field.Model, tt.kind, tt.nested)
		}
	}
}

func TestStructuralKinds(t *testing.T) {
	if !KindProperties.Structural() || !KindIdentifiers.Structural() || !KindSubHoldingKeys.Structural() {
		t.Error("structural kinds not reported as structural")
	}
	if KindScalar.Structural() || KindNested.Structural() {
		t.Error("row-resolved kinds reported as structural")
	}
}

func TestNewTransactionRequest(t *testing.T) {
	descriptor, _ := Lookup("TransactionRequest")
	got, err := descriptor.New(map[string]any{
		"transaction_id":         "txn-001",
		"type":                   "Buy",
		"instrument_identifiers": map[string]string{"Instrument/default/Currency": "GBP"},
		"transaction_date":       "2020-01-01T00:00:00Z",
		"settlement_date":        "2020-01-03T00:00:00Z",
		"units":                  "100",
		"total_consideration":    &CurrencyAndAmount{Amount: 240, Currency: "GBP"},
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	want := &TransactionRequest{
		TransactionID:         "txn-001",
		Type:                  "Buy",
		InstrumentIdentifiers: map[string]string{"Instrument/default/Currency": "GBP"},
		TransactionDate:       "2020-01-01T00:00:00Z",
		SettlementDate:        "2020-01-03T00:00:00Z",
		Units:                 100,
		TotalConsideration:    &CurrencyAndAmount{Amount: 240, Currency: "GBP"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("New() mismatch (-want +got):\n%s", diff)
	}
}

func TestNewWrapsSingleTaxLot(t *testing.T) {
	descriptor, _ := Lookup("AdjustHoldingRequest")
	got, err := descriptor.New(map[string]any{
		"instrument_identifiers": map[string]string{"Instrument/default/Isin": "GB123"},
		"tax_lots":               []any{&TargetTaxLot{Units: 50}},
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	request, ok := got.(*AdjustHoldingRequest)
	if !ok {
		t.Fatalf("New() returned %T", got)
	}
	if len(request.TaxLots) != 1 || request.TaxLots[0].Units != 50 {
		t.Errorf("TaxLots = %+v, want one lot of 50 units", request.TaxLots)
	}
}

func TestNewRejectsUnknownAttribute(t *testing.T) {
	descriptor, _ := Lookup("ResourceId")
	_, err := descriptor.New(map[string]any{"scope": "sc", "unknown": "x"})
	if err == nil || !strings.Contains(err.Error(), "no attribute unknown") {
		t.Errorf("New() error = %v, want unknown-attribute error", err)
	}
}

func TestNewRejectsUncoercibleValue(t *testing.T) {
	descriptor, _ := Lookup("TransactionRequest")
	_, err := descriptor.New(map[string]any{"units": "not a number"})
	if err == nil || !strings.Contains(err.Error(), "units") {
		t.Errorf("New() error = %v, want units coercion error", err)
	}
}

func TestNumericCodeCoercion(t *testing.T) {
	descriptor, _ := Lookup("ResourceId")
	got, err := descriptor.New(map[string]any{"scope": "sc", "code": 1234})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if got.(*ResourceID).Code != "1234" {
		t.Errorf("Code = %q, want %q", got.(*ResourceID).Code, "1234")
	}
}
