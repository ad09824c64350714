// Package transform prepares loaded frames for request building:
// cash-item inference, FX forward leg merging and quote scaling. Every
// transform takes a frame plus the mapping configuration, returns the
// adjusted frame, and updates the mapping so downstream population
// reads the synthetic columns the transform wrote.
package transform

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/daniel-ilyin/lusid-go-tools/pkg/dataframe"
	"github.com/daniel-ilyin/lusid-go-tools/pkg/mapping"
)

// CurrencyIdentifierColumn is the synthetic column carrying the
// currency inferred for cash rows.
const CurrencyIdentifierColumn = "__currency_identifier_for_LUSID"

// IdentifyCashItems flags rows representing cash by matching the
// configured identifier columns against the cash_flag section. The
// inferred currency is written into CurrencyIdentifierColumn; rows with
// no match keep a nil currency and are never removed. With
// removeCashItems the matched rows are dropped instead and the
// identifier registration is skipped.
func IdentifyCashItems(frame *dataframe.Frame, mappings map[string]any, fileType string, removeCashItems bool) (*dataframe.Frame, error) {
	flag, ok := mappings[mapping.SectionCashFlag].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("transform: mappings have no %s section", mapping.SectionCashFlag)
	}
	identifiers, ok := flag["cash_identifiers"].(map[string]any)
	if !ok || len(identifiers) == 0 {
		return nil, fmt.Errorf("transform: the %s section declares no cash_identifiers", mapping.SectionCashFlag)
	}
	implicit, hasImplicit := flag["implicit"].(string)

	currencies := make([]any, frame.Len())
	matched := make([]bool, frame.Len())
	for i, row := range frame.Rows() {
		currency, ok, err := inferCurrency(row, identifiers, implicit, hasImplicit)
		if err != nil {
			return nil, err
		}
		if ok {
			currencies[i] = currency
			matched[i] = true
		}
	}

	if removeCashItems {
		kept := dataframe.New(frame.Columns()...)
		for i, row := range frame.Rows() {
			if !matched[i] {
				kept.Append(row)
			}
		}
		log.Debug().
			Str("file_type", fileType).
			Int("removed", frame.Len()-kept.Len()).
			Msg("removed cash items")
		return kept, nil
	}

	if err := frame.AddColumn(CurrencyIdentifierColumn, currencies); err != nil {
		return nil, fmt.Errorf("transform: %w", err)
	}
	if err := registerCurrencyIdentifier(mappings, fileType); err != nil {
		return nil, err
	}
	log.Debug().
		Str("file_type", fileType).
		Int("matched", countMatched(matched)).
		Msg("identified cash items")
	return frame, nil
}

// inferCurrency resolves the currency for one row: an implicit
// same-row currency column wins when configured, otherwise the
// explicit name-to-currency map supplies it.
func inferCurrency(row dataframe.Row, identifiers map[string]any, implicit string, hasImplicit bool) (any, bool, error) {
	for column, source := range identifiers {
		cell, ok := row.Get(column)
		if !ok {
			continue
		}
		name, ok := cell.(string)
		if !ok {
			continue
		}
		switch values := source.(type) {
		case map[string]any:
			currency, found := values[name]
			if !found {
				continue
			}
			if hasImplicit {
				value, _ := row.Get(implicit)
				return value, true, nil
			}
			return currency, true, nil
		case []any:
			if !hasImplicit {
				return nil, false, fmt.Errorf("transform: cash_identifiers for column %s list names only and need an implicit currency column", column)
			}
			for _, candidate := range values {
				if candidate == cell {
					value, _ := row.Get(implicit)
					return value, true, nil
				}
			}
		default:
			return nil, false, fmt.Errorf("transform: cash_identifiers for column %s must be a list or a mapping, got %T", column, source)
		}
	}
	return nil, false, nil
}

// registerCurrencyIdentifier points the file type's identifier mapping
// at the synthetic currency column.
func registerCurrencyIdentifier(mappings map[string]any, fileType string) error {
	section, ok := mappings[fileType].(map[string]any)
	if !ok {
		return fmt.Errorf("transform: mappings have no %s section", fileType)
	}
	identifierMapping, ok := section[mapping.SectionIdentifierMapping].(map[string]any)
	if !ok {
		identifierMapping = map[string]any{}
		section[mapping.SectionIdentifierMapping] = identifierMapping
	}
	identifierMapping["Currency"] = CurrencyIdentifierColumn
	return nil
}

func countMatched(matched []bool) int {
	n := 0
	for _, m := range matched {
		if m {
			n++
		}
	}
	return n
}
