package models

import (
	"fmt"
	"sort"
)

// Kind tells the population layer how an attribute's value is
// resolved.
type Kind int

const (
	// KindScalar resolves a value from the mapping against a row.
	KindScalar Kind = iota
	// KindDatetime is a scalar whose value is normalized to an ISO
	// timestamp.
	KindDatetime
	// KindNested recurses into a nested model with the matching
	// mapping subtree.
	KindNested
	// KindNestedList recurses into a nested model and wraps a single
	// constructed entry into a one-element list.
	KindNestedList
	// KindProperties is assigned from the externally supplied
	// properties object, bypassing row lookup.
	KindProperties
	// KindIdentifiers is assigned from the externally supplied
	// identifiers object, bypassing row lookup.
	KindIdentifiers
	// KindSubHoldingKeys is assigned from the externally supplied
	// sub-holding keys object, bypassing row lookup.
	KindSubHoldingKeys
)

// Structural reports whether the kind is assigned from an external
// object rather than resolved against a row.
func (k Kind) Structural() bool {
	switch k {
	case KindProperties, KindIdentifiers, KindSubHoldingKeys:
		return true
	default:
		return false
	}
}

// FieldDef describes one attribute of a request model: its snake_case
// name, resolution kind, and — for nested kinds — the nested model
// name.
type FieldDef struct {
	Name  string
	Kind  Kind
	Model string
}

// Descriptor is the population table for one request model.
type Descriptor struct {
	Name   string
	Fields []FieldDef
	New    func(fields map[string]any) (any, error)
}

// Field looks up a field definition by attribute name.
func (d Descriptor) Field(name string) (FieldDef, bool) {
	for _, field := range d.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return FieldDef{}, false
}

var registry = map[string]Descriptor{
	"ResourceId": {
		Name: "ResourceId",
		Fields: []FieldDef{
			{Name: "scope", Kind: KindScalar},
			{Name: "code", Kind: KindScalar},
		},
		New: newResourceID,
	},
	"InstrumentIdValue": {
		Name: "InstrumentIdValue",
		Fields: []FieldDef{
			{Name: "value", Kind: KindScalar},
			{Name: "effective_at", Kind: KindDatetime},
		},
		New: newInstrumentIDValue,
	},
	"MetricValue": {
		Name: "MetricValue",
		Fields: []FieldDef{
			{Name: "value", Kind: KindScalar},
			{Name: "unit", Kind: KindScalar},
		},
		New: newMetricValue,
	},
	"PropertyValue": {
		Name: "PropertyValue",
		Fields: []FieldDef{
			{Name: "label_value", Kind: KindScalar},
			{Name: "metric_value", Kind: KindNested, Model: "MetricValue"},
		},
		New: newPropertyValue,
	},
	"PerpetualProperty": {
		Name: "PerpetualProperty",
		Fields: []FieldDef{
			{Name: "key", Kind: KindScalar},
			{Name: "value", Kind: KindNested, Model: "PropertyValue"},
		},
		New: newPerpetualProperty,
	},
	"ModelProperty": {
		Name: "ModelProperty",
		Fields: []FieldDef{
			{Name: "key", Kind: KindScalar},
			{Name: "value", Kind: KindScalar},
		},
		New: newModelProperty,
	},
	"CurrencyAndAmount": {
		Name: "CurrencyAndAmount",
		Fields: []FieldDef{
			{Name: "amount", Kind: KindScalar},
			{Name: "currency", Kind: KindScalar},
		},
		New: newCurrencyAndAmount,
	},
	"TransactionPrice": {
		Name: "TransactionPrice",
		Fields: []FieldDef{
			{Name: "price", Kind: KindScalar},
			{Name: "type", Kind: KindScalar},
		},
		New: newTransactionPrice,
	},
	"InstrumentDefinition": {
		Name: "InstrumentDefinition",
		Fields: []FieldDef{
			{Name: "name", Kind: KindScalar},
			{Name: "identifiers", Kind: KindIdentifiers},
			{Name: "properties", Kind: KindProperties},
			{Name: "look_through_portfolio_id", Kind: KindNested, Model: "ResourceId"},
		},
		New: newInstrumentDefinition,
	},
	"CreateTransactionPortfolioRequest": {
		Name: "CreateTransactionPortfolioRequest",
		Fields: []FieldDef{
			{Name: "display_name", Kind: KindScalar},
			{Name: "description", Kind: KindScalar},
			{Name: "code", Kind: KindScalar},
			{Name: "created", Kind: KindDatetime},
			{Name: "base_currency", Kind: KindScalar},
			{Name: "corporate_action_source_id", Kind: KindNested, Model: "ResourceId"},
			{Name: "accounting_method", Kind: KindScalar},
			{Name: "sub_holding_keys", Kind: KindSubHoldingKeys},
			{Name: "properties", Kind: KindProperties},
		},
		New: newCreateTransactionPortfolioRequest,
	},
	"TransactionRequest": {
		Name: "TransactionRequest",
		Fields: []FieldDef{
			{Name: "transaction_id", Kind: KindScalar},
			{Name: "type", Kind: KindScalar},
			{Name: "instrument_identifiers", Kind: KindIdentifiers},
			{Name: "transaction_date", Kind: KindDatetime},
			{Name: "settlement_date", Kind: KindDatetime},
			{Name: "units", Kind: KindScalar},
			{Name: "transaction_price", Kind: KindNested, Model: "TransactionPrice"},
			{Name: "total_consideration", Kind: KindNested, Model: "CurrencyAndAmount"},
			{Name: "exchange_rate", Kind: KindScalar},
			{Name: "transaction_currency", Kind: KindScalar},
			{Name: "counterparty_id", Kind: KindScalar},
			{Name: "source", Kind: KindScalar},
			{Name: "properties", Kind: KindProperties},
		},
		New: newTransactionRequest,
	},
	"TargetTaxLot": {
		Name: "TargetTaxLot",
		Fields: []FieldDef{
			{Name: "units", Kind: KindScalar},
			{Name: "cost", Kind: KindNested, Model: "CurrencyAndAmount"},
			{Name: "portfolio_cost", Kind: KindScalar},
			{Name: "price", Kind: KindScalar},
			{Name: "purchase_date", Kind: KindDatetime},
			{Name: "settlement_date", Kind: KindDatetime},
		},
		New: newTargetTaxLot,
	},
	"HoldingAdjustment": {
		Name: "HoldingAdjustment",
		Fields: []FieldDef{
			{Name: "instrument_identifiers", Kind: KindIdentifiers},
			{Name: "instrument_uid", Kind: KindScalar},
			{Name: "sub_holding_keys", Kind: KindSubHoldingKeys},
			{Name: "properties", Kind: KindProperties},
			{Name: "tax_lots", Kind: KindNestedList, Model: "TargetTaxLot"},
		},
		New: newHoldingAdjustment,
	},
	"AdjustHoldingRequest": {
		Name: "AdjustHoldingRequest",
		Fields: []FieldDef{
			{Name: "instrument_identifiers", Kind: KindIdentifiers},
			{Name: "sub_holding_keys", Kind: KindSubHoldingKeys},
			{Name: "properties", Kind: KindProperties},
			{Name: "tax_lots", Kind: KindNestedList, Model: "TargetTaxLot"},
		},
		New: newAdjustHoldingRequest,
	},
	"CreatePortfolioGroupRequest": {
		Name: "CreatePortfolioGroupRequest",
		Fields: []FieldDef{
			{Name: "code", Kind: KindScalar},
			{Name: "created", Kind: KindDatetime},
			{Name: "values", Kind: KindNestedList, Model: "ResourceId"},
			{Name: "sub_groups", Kind: KindNestedList, Model: "ResourceId"},
			{Name: "display_name", Kind: KindScalar},
			{Name: "description", Kind: KindScalar},
			{Name: "properties", Kind: KindProperties},
		},
		New: newCreatePortfolioGroupRequest,
	},
	"QuoteSeriesId": {
		Name: "QuoteSeriesId",
		Fields: []FieldDef{
			{Name: "provider", Kind: KindScalar},
			{Name: "price_source", Kind: KindScalar},
			{Name: "instrument_id", Kind: KindScalar},
			{Name: "instrument_id_type", Kind: KindScalar},
			{Name: "quote_type", Kind: KindScalar},
			{Name: "field", Kind: KindScalar},
		},
		New: newQuoteSeriesID,
	},
	"QuoteId": {
		Name: "QuoteId",
		Fields: []FieldDef{
			{Name: "quote_series_id", Kind: KindNested, Model: "QuoteSeriesId"},
			{Name: "effective_at", Kind: KindDatetime},
		},
		New: newQuoteID,
	},
	"UpsertQuoteRequest": {
		Name: "UpsertQuoteRequest",
		Fields: []FieldDef{
			{Name: "quote_id", Kind: KindNested, Model: "QuoteId"},
			{Name: "metric_value", Kind: KindNested, Model: "MetricValue"},
			{Name: "lineage", Kind: KindScalar},
		},
		New: newUpsertQuoteRequest,
	},
}

// Lookup returns the descriptor registered for a model name.
func Lookup(name string) (Descriptor, bool) {
	descriptor, ok := registry[name]
	return descriptor, ok
}

// IsModel reports whether a descriptor is registered for the name.
func IsModel(name string) bool {
	_, ok := registry[name]
	return ok
}

// Names returns the sorted names of all registered models.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func attributeError(model, attribute string, err error) error {
	return fmt.Errorf("models: %s.%s: %w", model, attribute, err)
}

func unknownAttribute(model, attribute string) error {
	return fmt.Errorf("models: %s has no attribute %s", model, attribute)
}
