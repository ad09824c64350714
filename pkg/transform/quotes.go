package transform

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/daniel-ilyin/lusid-go-tools/pkg/dataframe"
	"github.com/daniel-ilyin/lusid-go-tools/pkg/mapping"
)

// AdjustedQuoteColumn is the synthetic column carrying scaled quote
// prices.
const AdjustedQuoteColumn = "__adjusted_quote"

// ErrColumnNotFound is returned when a configured quote column is
// absent from the frame.
var ErrColumnNotFound = errors.New("transform: column not found in the data")

// ScaleQuoteOfType multiplies the configured price column by the scale
// factor for rows whose type column equals the configured type code,
// writes the result into AdjustedQuoteColumn, and repoints the quotes
// mapping's metric value at it. Rows of other types copy their price
// unchanged; rows with a missing price or type stay nil.
func ScaleQuoteOfType(frame *dataframe.Frame, mappings map[string]any) (*dataframe.Frame, error) {
	quotes, ok := mappings["quotes"].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("transform: mappings have no quotes section")
	}
	scalar, ok := quotes[mapping.SectionQuoteScalar].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("transform: the quotes section has no %s block", mapping.SectionQuoteScalar)
	}

	priceColumn, err := scalarEntry(scalar, "price")
	if err != nil {
		return nil, err
	}
	typeColumn, err := scalarEntry(scalar, "type")
	if err != nil {
		return nil, err
	}
	for _, column := range []string{priceColumn, typeColumn} {
		if !frame.HasColumn(column) {
			return nil, fmt.Errorf("%w: %s", ErrColumnNotFound, column)
		}
	}
	typeCode := scalar["type_code"]
	factor, err := decimalEntry(scalar, "scale_factor")
	if err != nil {
		return nil, err
	}

	adjusted := make([]any, frame.Len())
	scaled := 0
	for i, row := range frame.Rows() {
		price, hasPrice := row.Get(priceColumn)
		kind, hasKind := row.Get(typeColumn)
		if !hasPrice {
			continue
		}
		if !hasKind || kind != typeCode {
			adjusted[i] = price
			continue
		}
		value, err := toDecimal(price)
		if err != nil {
			return nil, fmt.Errorf("transform: price in column %s: %w", priceColumn, err)
		}
		scaledPrice, _ := value.Mul(factor).Float64()
		adjusted[i] = scaledPrice
		scaled++
	}

	if err := frame.AddColumn(AdjustedQuoteColumn, adjusted); err != nil {
		return nil, fmt.Errorf("transform: %w", err)
	}
	required, ok := quotes[mapping.SectionRequired].(map[string]any)
	if ok {
		required["metric_value.value"] = AdjustedQuoteColumn
	}

	log.Debug().Int("scaled", scaled).Msg("scaled quotes")
	return frame, nil
}

func scalarEntry(scalar map[string]any, name string) (string, error) {
	value, ok := scalar[name].(string)
	if !ok || value == "" {
		return "", fmt.Errorf("transform: the %s block has no %s column", mapping.SectionQuoteScalar, name)
	}
	return value, nil
}

func decimalEntry(scalar map[string]any, name string) (decimal.Decimal, error) {
	value, ok := scalar[name]
	if !ok {
		return decimal.Zero, fmt.Errorf("transform: the %s block has no %s", mapping.SectionQuoteScalar, name)
	}
	factor, err := toDecimal(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("transform: %s: %w", name, err)
	}
	return factor, nil
}

func toDecimal(value any) (decimal.Decimal, error) {
	switch v := value.(type) {
	case decimal.Decimal:
		return v, nil
	case float64:
		return decimal.NewFromFloat(v), nil
	case float32:
		return decimal.NewFromFloat32(v), nil
	case int:
		return decimal.NewFromInt(int64(v)), nil
	case int64:
		return decimal.NewFromInt(v), nil
	case string:
		parsed, err := decimal.NewFromString(v)
		if err != nil {
			return decimal.Zero, fmt.Errorf("cannot parse %q as a number", v)
		}
		return parsed, nil
	default:
		return decimal.Zero, fmt.Errorf("cannot use %T as a number", value)
	}
}
