package transform

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/daniel-ilyin/lusid-go-tools/pkg/dataframe"
	"github.com/daniel-ilyin/lusid-go-tools/pkg/mapping"
)

// Column suffixes carried by the merged FX forward rows: the buy leg
// keeps the transaction suffix, the sell leg the total-consideration
// suffix.
const (
	BuyLegSuffix  = "_txn"
	SellLegSuffix = "_tc"
)

// fxRemappedColumns are the mapping entries repointed at suffixed
// columns after the legs merge.
var fxRemappedColumns = map[string]string{
	"total_consideration.amount":   SellLegSuffix,
	"total_consideration.currency": SellLegSuffix,
	"transaction_currency":         BuyLegSuffix,
	"units":                        BuyLegSuffix,
}

// DefaultFxForwardModel merges the buy and sell leg rows of FX forward
// transactions sharing a transaction key into single rows carrying
// both legs' columns with BuyLegSuffix/SellLegSuffix, and repoints the
// mapping's consideration, currency and units entries at the suffixed
// columns. Rows whose type differs from fxTypeCode are dropped; no
// matching rows at all is an error.
func DefaultFxForwardModel(frame *dataframe.Frame, fxTypeCode string, isBuyLeg, isSellLeg func(dataframe.Row) bool, mappings map[string]any) (*dataframe.Frame, error) {
	required, err := requiredSection(mappings)
	if err != nil {
		return nil, err
	}
	keyColumn, err := columnEntry(required, "transaction_id")
	if err != nil {
		return nil, err
	}
	typeColumn, err := columnEntry(required, "type")
	if err != nil {
		return nil, err
	}

	forwards := frame.Filter(func(row dataframe.Row) bool {
		cell, _ := row.Get(typeColumn)
		return cell == fxTypeCode
	})
	if forwards.Len() == 0 {
		return nil, fmt.Errorf("transform: no fx forward transactions with type code %q present", fxTypeCode)
	}

	merged := dataframe.New(mergedColumns(frame.Columns(), keyColumn, typeColumn)...)
	var keys []any
	buys := make(map[any]dataframe.Row)
	sells := make(map[any]dataframe.Row)
	for _, row := range forwards.Rows() {
		key, ok := row.Get(keyColumn)
		if !ok {
			continue
		}
		if _, seen := buys[key]; !seen {
			if _, seen := sells[key]; !seen {
				keys = append(keys, key)
			}
		}
		switch {
		case isBuyLeg(row):
			buys[key] = row
		case isSellLeg(row):
			sells[key] = row
		}
	}

	for _, key := range keys {
		buy, hasBuy := buys[key]
		sell, hasSell := sells[key]
		if !hasBuy || !hasSell {
			log.Debug().Interface("transaction_key", key).Msg("fx forward missing a leg, skipping")
			continue
		}
		row := dataframe.Row{keyColumn: buy[keyColumn], typeColumn: buy[typeColumn]}
		for _, column := range frame.Columns() {
			if column == keyColumn || column == typeColumn {
				continue
			}
			row[column+BuyLegSuffix] = buy[column]
			row[column+SellLegSuffix] = sell[column]
		}
		merged.Append(row)
	}

	for entry, suffix := range fxRemappedColumns {
		column, err := columnEntry(required, entry)
		if err != nil {
			return nil, err
		}
		required[entry] = column + suffix
	}

	log.Debug().Int("merged", merged.Len()).Msg("merged fx forward legs")
	return merged, nil
}

// mergedColumns lays out the merged frame: the key, then the buy leg's
// suffixed columns with the type column unsuffixed in place, then the
// sell leg's suffixed columns.
func mergedColumns(columns []string, keyColumn, typeColumn string) []string {
	out := []string{keyColumn}
	for _, column := range columns {
		if column == keyColumn {
			continue
		}
		if column == typeColumn {
			out = append(out, column)
			continue
		}
		out = append(out, column+BuyLegSuffix)
	}
	for _, column := range columns {
		if column == keyColumn || column == typeColumn {
			continue
		}
		out = append(out, column+SellLegSuffix)
	}
	return out
}

func requiredSection(mappings map[string]any) (map[string]any, error) {
	transactions, ok := mappings["transactions"].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("transform: mappings have no transactions section")
	}
	required, ok := transactions[mapping.SectionRequired].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("transform: the transactions section has no %s block", mapping.SectionRequired)
	}
	return required, nil
}

// columnEntry reads a mapping entry that must be a plain column
// reference.
func columnEntry(required map[string]any, name string) (string, error) {
	entry, ok := required[name]
	if !ok {
		return "", fmt.Errorf("transform: the transactions mapping has no %s entry", name)
	}
	field, err := mapping.ParseField(entry)
	if err != nil {
		return "", fmt.Errorf("transform: %s: %w", name, err)
	}
	if field.Kind != mapping.FieldColumn && field.Kind != mapping.FieldWithDefault {
		return "", fmt.Errorf("transform: the %s entry must reference a source column", name)
	}
	return field.Column, nil
}
