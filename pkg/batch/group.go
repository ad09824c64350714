package batch

import (
	"fmt"

	"github.com/daniel-ilyin/lusid-go-tools/pkg/models"
)

// groupers folds one request's groupable attribute into the base
// request, per supported request shape.
var groupers = map[string]func(base, other any, attribute string) error{
	"CreatePortfolioGroupRequest": groupPortfolioGroup,
	"HoldingAdjustment":           groupHoldingAdjustment,
	"AdjustHoldingRequest":        groupAdjustHolding,
	"TransactionRequest":          groupTransaction,
	"InstrumentDefinition":        groupInstrument,
}

// GroupRequests folds a list of requests into the one at batchIndex:
// for each named attribute, list values concatenate in request order
// and map values merge with later entries overwriting earlier ones.
// The base request is mutated and returned.
func GroupRequests(modelName string, requests []any, attributes []string, batchIndex int) (any, error) {
	grouper, ok := groupers[modelName]
	if !ok {
		return nil, fmt.Errorf("batch: The model %s is not a valid LUSID model.", modelName)
	}
	if len(attributes) == 0 {
		return nil, fmt.Errorf("batch: The provided list of attribute_for_grouping is empty.")
	}
	if batchIndex < 0 || batchIndex >= len(requests) {
		return nil, fmt.Errorf("batch: The length of the batch_index (%d) is greater than the request_list (%d) provided.",
			batchIndex, len(requests))
	}

	base := requests[batchIndex]
	for i, other := range requests {
		if i == batchIndex {
			continue
		}
		for _, attribute := range attributes {
			if err := grouper(base, other, attribute); err != nil {
				return nil, err
			}
		}
	}
	return base, nil
}

func notGroupable(modelName, attribute string) error {
	return fmt.Errorf("batch: %s has no groupable attribute %s", modelName, attribute)
}

func typeMismatch(modelName string, value any) error {
	return fmt.Errorf("batch: expected *%s, got %T", modelName, value)
}

func groupPortfolioGroup(base, other any, attribute string) error {
	into, ok := base.(*models.CreatePortfolioGroupRequest)
	if !ok {
		return typeMismatch("CreatePortfolioGroupRequest", base)
	}
	from, ok := other.(*models.CreatePortfolioGroupRequest)
	if !ok {
		return typeMismatch("CreatePortfolioGroupRequest", other)
	}
	switch attribute {
	case "values":
		into.Values = append(into.Values, from.Values...)
	case "sub_groups":
		into.SubGroups = append(into.SubGroups, from.SubGroups...)
	case "properties":
		into.Properties = mergeMaps(into.Properties, from.Properties)
	default:
		return notGroupable("CreatePortfolioGroupRequest", attribute)
	}
	return nil
}

func groupHoldingAdjustment(base, other any, attribute string) error {
	into, ok := base.(*models.HoldingAdjustment)
	if !ok {
		return typeMismatch("HoldingAdjustment", base)
	}
	from, ok := other.(*models.HoldingAdjustment)
	if !ok {
		return typeMismatch("HoldingAdjustment", other)
	}
	switch attribute {
	case "tax_lots":
		into.TaxLots = append(into.TaxLots, from.TaxLots...)
	case "properties":
		into.Properties = mergeMaps(into.Properties, from.Properties)
	case "sub_holding_keys":
		into.SubHoldingKeys = mergeMaps(into.SubHoldingKeys, from.SubHoldingKeys)
	case "instrument_identifiers":
		into.InstrumentIdentifiers = mergeMaps(into.InstrumentIdentifiers, from.InstrumentIdentifiers)
	default:
		return notGroupable("HoldingAdjustment", attribute)
	}
	return nil
}

func groupAdjustHolding(base, other any, attribute string) error {
	into, ok := base.(*models.AdjustHoldingRequest)
	if !ok {
		return typeMismatch("AdjustHoldingRequest", base)
	}
	from, ok := other.(*models.AdjustHoldingRequest)
	if !ok {
		return typeMismatch("AdjustHoldingRequest", other)
	}
	switch attribute {
	case "tax_lots":
		into.TaxLots = append(into.TaxLots, from.TaxLots...)
	case "properties":
		into.Properties = mergeMaps(into.Properties, from.Properties)
	case "sub_holding_keys":
		into.SubHoldingKeys = mergeMaps(into.SubHoldingKeys, from.SubHoldingKeys)
	case "instrument_identifiers":
		into.InstrumentIdentifiers = mergeMaps(into.InstrumentIdentifiers, from.InstrumentIdentifiers)
	default:
		return notGroupable("AdjustHoldingRequest", attribute)
	}
	return nil
}

func groupTransaction(base, other any, attribute string) error {
	into, ok := base.(*models.TransactionRequest)
	if !ok {
		return typeMismatch("TransactionRequest", base)
	}
	from, ok := other.(*models.TransactionRequest)
	if !ok {
		return typeMismatch("TransactionRequest", other)
	}
	switch attribute {
	case "properties":
		into.Properties = mergeMaps(into.Properties, from.Properties)
	case "instrument_identifiers":
		into.InstrumentIdentifiers = mergeMaps(into.InstrumentIdentifiers, from.InstrumentIdentifiers)
	default:
		return notGroupable("TransactionRequest", attribute)
	}
	return nil
}

func groupInstrument(base, other any, attribute string) error {
	into, ok := base.(*models.InstrumentDefinition)
	if !ok {
		return typeMismatch("InstrumentDefinition", base)
	}
	from, ok := other.(*models.InstrumentDefinition)
	if !ok {
		return typeMismatch("InstrumentDefinition", other)
	}
	switch attribute {
	case "identifiers":
		into.Identifiers = mergeMaps(into.Identifiers, from.Identifiers)
	case "properties":
		into.Properties = mergeMaps(into.Properties, from.Properties)
	default:
		return notGroupable("InstrumentDefinition", attribute)
	}
	return nil
}

// mergeMaps merges from into into, with from's entries overwriting on
// key collision.
func mergeMaps[V any](into, from map[string]V) map[string]V {
	if from == nil {
		return into
	}
	if into == nil {
		into = make(map[string]V, len(from))
	}
	for key, value := range from {
		into[key] = value
	}
	return into
}
