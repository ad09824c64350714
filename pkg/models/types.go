// Package models declares the platform request types this tool
// populates, together with a statically declared field descriptor table
// per type. The descriptors drive population: each entry names the
// attribute, how its value is resolved, and the nested model involved,
// so population is table-driven rather than reflective.
package models

// ResourceID identifies a platform resource by scope and code.
type ResourceID struct {
	Scope string
	Code  string
}

// InstrumentIDValue is one instrument identifier value, optionally
// bounded by an effective date.
type InstrumentIDValue struct {
	Value       string
	EffectiveAt string
}

// MetricValue is a numeric value with a unit.
type MetricValue struct {
	Value float64
	Unit  string
}

// PropertyValue holds either a label or a metric value.
type PropertyValue struct {
	LabelValue  string
	MetricValue *MetricValue
}

// PerpetualProperty is a property without an effective range.
type PerpetualProperty struct {
	Key   string
	Value *PropertyValue
}

// ModelProperty is a simple key/value property.
type ModelProperty struct {
	Key   string
	Value string
}

// CurrencyAndAmount is a monetary amount in a named currency.
type CurrencyAndAmount struct {
	Amount   float64
	Currency string
}

// TransactionPrice is a per-unit price with an optional price type.
type TransactionPrice struct {
	Price float64
	Type  string
}

// InstrumentDefinition is the request body for upserting one
// instrument.
type InstrumentDefinition struct {
	Name                   string
	Identifiers            map[string]InstrumentIDValue
	Properties             map[string]PerpetualProperty
	LookThroughPortfolioID *ResourceID
}

// CreateTransactionPortfolioRequest is the request body for creating a
// transaction portfolio.
type CreateTransactionPortfolioRequest struct {
	DisplayName             string
	Description             string
	Code                    string
	Created                 string
	BaseCurrency            string
	CorporateActionSourceID *ResourceID
	AccountingMethod        string
	SubHoldingKeys          []string
	Properties              map[string]PerpetualProperty
}

// TransactionRequest is the request body for upserting one
// transaction.
type TransactionRequest struct {
	TransactionID         string
	Type                  string
	InstrumentIdentifiers map[string]string
	TransactionDate       string
	SettlementDate        string
	Units                 float64
	TransactionPrice      *TransactionPrice
	TotalConsideration    *CurrencyAndAmount
	ExchangeRate          float64
	TransactionCurrency   string
	CounterpartyID        string
	Source                string
	Properties            map[string]PerpetualProperty
}

// TargetTaxLot is one tax lot of a holding adjustment.
type TargetTaxLot struct {
	Units          float64
	Cost           *CurrencyAndAmount
	PortfolioCost  float64
	Price          float64
	PurchaseDate   string
	SettlementDate string
}

// HoldingAdjustment sets the holding of one instrument.
type HoldingAdjustment struct {
	InstrumentIdentifiers map[string]string
	InstrumentUID         string
	SubHoldingKeys        map[string]PerpetualProperty
	Properties            map[string]PerpetualProperty
	TaxLots               []TargetTaxLot
}

// AdjustHoldingRequest is the request body for adjusting one holding.
type AdjustHoldingRequest struct {
	InstrumentIdentifiers map[string]string
	SubHoldingKeys        map[string]PerpetualProperty
	Properties            map[string]PerpetualProperty
	TaxLots               []TargetTaxLot
}

// CreatePortfolioGroupRequest is the request body for creating a
// portfolio group.
type CreatePortfolioGroupRequest struct {
	Code        string
	Created     string
	Values      []ResourceID
	SubGroups   []ResourceID
	DisplayName string
	Description string
	Properties  map[string]ModelProperty
}

// QuoteSeriesID identifies a quote series.
type QuoteSeriesID struct {
	Provider         string
	PriceSource      string
	InstrumentID     string
	InstrumentIDType string
	QuoteType        string
	Field            string
}

// QuoteID identifies one quote: a series plus an effective date.
type QuoteID struct {
	QuoteSeriesID *QuoteSeriesID
	EffectiveAt   string
}

// UpsertQuoteRequest is the request body for upserting one quote.
type UpsertQuoteRequest struct {
	QuoteID     *QuoteID
	MetricValue *MetricValue
	Lineage     string
}
