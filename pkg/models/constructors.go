package models

func newResourceID(fields map[string]any) (any, error) {
	out := &ResourceID{}
	for name, value := range fields {
		var err error
		switch name {
		case "scope":
			out.Scope, err = asString(value)
		case "code":
			out.Code, err = asString(value)
		default:
			return nil, unknownAttribute("ResourceId", name)
		}
		if err != nil {
			return nil, attributeError("ResourceId", name, err)
		}
	}
	return out, nil
}

func newInstrumentIDValue(fields map[string]any) (any, error) {
	out := &InstrumentIDValue{}
	for name, value := range fields {
		var err error
		switch name {
		case "value":
			out.Value, err = asString(value)
		case "effective_at":
			out.EffectiveAt, err = asString(value)
		default:
			return nil, unknownAttribute("InstrumentIdValue", name)
		}
		if err != nil {
			return nil, attributeError("InstrumentIdValue", name, err)
		}
	}
	return out, nil
}

func newMetricValue(fields map[string]any) (any, error) {
	out := &MetricValue{}
	for name, value := range fields {
		var err error
		switch name {
		case "value":
			out.Value, err = asFloat(value)
		case "unit":
			out.Unit, err = asString(value)
		default:
			return nil, unknownAttribute("MetricValue", name)
		}
		if err != nil {
			return nil, attributeError("MetricValue", name, err)
		}
	}
	return out, nil
}

func newPropertyValue(fields map[string]any) (any, error) {
	out := &PropertyValue{}
	for name, value := range fields {
		var err error
		switch name {
		case "label_value":
			out.LabelValue, err = asString(value)
		case "metric_value":
			out.MetricValue, err = as[*MetricValue](value)
		default:
			return nil, unknownAttribute("PropertyValue", name)
		}
		if err != nil {
			return nil, attributeError("PropertyValue", name, err)
		}
	}
	return out, nil
}

func newPerpetualProperty(fields map[string]any) (any, error) {
	out := &PerpetualProperty{}
	for name, value := range fields {
		var err error
		switch name {
		case "key":
			out.Key, err = asString(value)
		case "value":
			out.Value, err = as[*PropertyValue](value)
		default:
			return nil, unknownAttribute("PerpetualProperty", name)
		}
		if err != nil {
			return nil, attributeError("PerpetualProperty", name, err)
		}
	}
	return out, nil
}

func newModelProperty(fields map[string]any) (any, error) {
	out := &ModelProperty{}
	for name, value := range fields {
		var err error
		switch name {
		case "key":
			out.Key, err = asString(value)
		case "value":
			out.Value, err = asString(value)
		default:
			return nil, unknownAttribute("ModelProperty", name)
		}
		if err != nil {
			return nil, attributeError("ModelProperty", name, err)
		}
	}
	return out, nil
}

func newCurrencyAndAmount(fields map[string]any) (any, error) {
	out := &CurrencyAndAmount{}
	for name, value := range fields {
		var err error
		switch name {
		case "amount":
			out.Amount, err = asFloat(value)
		case "currency":
			out.Currency, err = asString(value)
		default:
			return nil, unknownAttribute("CurrencyAndAmount", name)
		}
		if err != nil {
			return nil, attributeError("CurrencyAndAmount", name, err)
		}
	}
	return out, nil
}

func newTransactionPrice(fields map[string]any) (any, error) {
	out := &TransactionPrice{}
	for name, value := range fields {
		var err error
		switch name {
		case "price":
			out.Price, err = asFloat(value)
		case "type":
			out.Type, err = asString(value)
		default:
			return nil, unknownAttribute("TransactionPrice", name)
		}
		if err != nil {
			return nil, attributeError("TransactionPrice", name, err)
		}
	}
	return out, nil
}

func newInstrumentDefinition(fields map[string]any) (any, error) {
	out := &InstrumentDefinition{}
	for name, value := range fields {
		var err error
		switch name {
		case "name":
			out.Name, err = asString(value)
		case "identifiers":
			out.Identifiers, err = as[map[string]InstrumentIDValue](value)
		case "properties":
			out.Properties, err = as[map[string]PerpetualProperty](value)
		case "look_through_portfolio_id":
			out.LookThroughPortfolioID, err = as[*ResourceID](value)
		default:
			return nil, unknownAttribute("InstrumentDefinition", name)
		}
		if err != nil {
			return nil, attributeError("InstrumentDefinition", name, err)
		}
	}
	return out, nil
}

func newCreateTransactionPortfolioRequest(fields map[string]any) (any, error) {
	out := &CreateTransactionPortfolioRequest{}
	for name, value := range fields {
		var err error
		switch name {
		case "display_name":
			out.DisplayName, err = asString(value)
		case "description":
			out.Description, err = asString(value)
		case "code":
			out.Code, err = asString(value)
		case "created":
			out.Created, err = asString(value)
		case "base_currency":
			out.BaseCurrency, err = asString(value)
		case "corporate_action_source_id":
			out.CorporateActionSourceID, err = as[*ResourceID](value)
		case "accounting_method":
			out.AccountingMethod, err = asString(value)
		case "sub_holding_keys":
			out.SubHoldingKeys, err = as[[]string](value)
		case "properties":
			out.Properties, err = as[map[string]PerpetualProperty](value)
		default:
			return nil, unknownAttribute("CreateTransactionPortfolioRequest", name)
		}
		if err != nil {
			return nil, attributeError("CreateTransactionPortfolioRequest", name, err)
		}
	}
	return out, nil
}

func newTransactionRequest(fields map[string]any) (any, error) {
	out := &TransactionRequest{}
	for name, value := range fields {
		var err error
		switch name {
		case "transaction_id":
			out.TransactionID, err = asString(value)
		case "type":
			out.Type, err = asString(value)
		case "instrument_identifiers":
			out.InstrumentIdentifiers, err = as[map[string]string](value)
		case "transaction_date":
			out.TransactionDate, err = asString(value)
		case "settlement_date":
			out.SettlementDate, err = asString(value)
		case "units":
			out.Units, err = asFloat(value)
		case "transaction_price":
			out.TransactionPrice, err = as[*TransactionPrice](value)
		case "total_consideration":
			out.TotalConsideration, err = as[*CurrencyAndAmount](value)
		case "exchange_rate":
			out.ExchangeRate, err = asFloat(value)
		case "transaction_currency":
			out.TransactionCurrency, err = asString(value)
		case "counterparty_id":
			out.CounterpartyID, err = asString(value)
		case "source":
			out.Source, err = asString(value)
		case "properties":
			out.Properties, err = as[map[string]PerpetualProperty](value)
		default:
			return nil, unknownAttribute("TransactionRequest", name)
		}
		if err != nil {
			return nil, attributeError("TransactionRequest", name, err)
		}
	}
	return out, nil
}

func newTargetTaxLot(fields map[string]any) (any, error) {
	out := &TargetTaxLot{}
	for name, value := range fields {
		var err error
		switch name {
		case "units":
			out.Units, err = asFloat(value)
		case "cost":
			out.Cost, err = as[*CurrencyAndAmount](value)
		case "portfolio_cost":
			out.PortfolioCost, err = asFloat(value)
		case "price":
			out.Price, err = asFloat(value)
		case "purchase_date":
			out.PurchaseDate, err = asString(value)
		case "settlement_date":
			out.SettlementDate, err = asString(value)
		default:
			return nil, unknownAttribute("TargetTaxLot", name)
		}
		if err != nil {
			return nil, attributeError("TargetTaxLot", name, err)
		}
	}
	return out, nil
}

func newHoldingAdjustment(fields map[string]any) (any, error) {
	out := &HoldingAdjustment{}
	for name, value := range fields {
		var err error
		switch name {
		case "instrument_identifiers":
			out.InstrumentIdentifiers, err = as[map[string]string](value)
		case "instrument_uid":
			out.InstrumentUID, err = asString(value)
		case "sub_holding_keys":
			out.SubHoldingKeys, err = as[map[string]PerpetualProperty](value)
		case "properties":
			out.Properties, err = as[map[string]PerpetualProperty](value)
		case "tax_lots":
			out.TaxLots, err = asSlice[TargetTaxLot](value)
		default:
			return nil, unknownAttribute("HoldingAdjustment", name)
		}
		if err != nil {
			return nil, attributeError("HoldingAdjustment", name, err)
		}
	}
	return out, nil
}

func newAdjustHoldingRequest(fields map[string]any) (any, error) {
	out := &AdjustHoldingRequest{}
	for name, value := range fields {
		var err error
		switch name {
		case "instrument_identifiers":
			out.InstrumentIdentifiers, err = as[map[string]string](value)
		case "sub_holding_keys":
			out.SubHoldingKeys, err = as[map[string]PerpetualProperty](value)
		case "properties":
			out.Properties, err = as[map[string]PerpetualProperty](value)
		case "tax_lots":
			out.TaxLots, err = asSlice[TargetTaxLot](value)
		default:
			return nil, unknownAttribute("AdjustHoldingRequest", name)
		}
		if err != nil {
			return nil, attributeError("AdjustHoldingRequest", name, err)
		}
	}
	return out, nil
}

func newCreatePortfolioGroupRequest(fields map[string]any) (any, error) {
	out := &CreatePortfolioGroupRequest{}
	for name, value := range fields {
		var err error
		switch name {
		case "code":
			out.Code, err = asString(value)
		case "created":
			out.Created, err = asString(value)
		case "values":
			out.Values, err = asSlice[ResourceID](value)
		case "sub_groups":
			out.SubGroups, err = asSlice[ResourceID](value)
		case "display_name":
			out.DisplayName, err = asString(value)
		case "description":
			out.Description, err = asString(value)
		case "properties":
			out.Properties, err = as[map[string]ModelProperty](value)
		default:
			return nil, unknownAttribute("CreatePortfolioGroupRequest", name)
		}
		if err != nil {
			return nil, attributeError("CreatePortfolioGroupRequest", name, err)
		}
	}
	return out, nil
}

func newQuoteSeriesID(fields map[string]any) (any, error) {
	out := &QuoteSeriesID{}
	for name, value := range fields {
		var err error
		switch name {
		case "provider":
			out.Provider, err = asString(value)
		case "price_source":
			out.PriceSource, err = asString(value)
		case "instrument_id":
			out.InstrumentID, err = asString(value)
		case "instrument_id_type":
			out.InstrumentIDType, err = asString(value)
		case "quote_type":
			out.QuoteType, err = asString(value)
		case "field":
			out.Field, err = asString(value)
		default:
			return nil, unknownAttribute("QuoteSeriesId", name)
		}
		if err != nil {
			return nil, attributeError("QuoteSeriesId", name, err)
		}
	}
	return out, nil
}

func newQuoteID(fields map[string]any) (any, error) {
	out := &QuoteID{}
	for name, value := range fields {
		var err error
		switch name {
		case "quote_series_id":
			out.QuoteSeriesID, err = as[*QuoteSeriesID](value)
		case "effective_at":
			out.EffectiveAt, err = asString(value)
		default:
			return nil, unknownAttribute("QuoteId", name)
		}
		if err != nil {
			return nil, attributeError("QuoteId", name, err)
		}
	}
	return out, nil
}

func newUpsertQuoteRequest(fields map[string]any) (any, error) {
	out := &UpsertQuoteRequest{}
	for name, value := range fields {
		var err error
		switch name {
		case "quote_id":
			out.QuoteID, err = as[*QuoteID](value)
		case "metric_value":
			out.MetricValue, err = as[*MetricValue](value)
		case "lineage":
			out.Lineage, err = asString(value)
		default:
			return nil, unknownAttribute("UpsertQuoteRequest", name)
		}
		if err != nil {
			return nil, attributeError("UpsertQuoteRequest", name, err)
		}
	}
	return out, nil
}
