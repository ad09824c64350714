package transform

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/daniel-ilyin/lusid-go-tools/pkg/dataframe"
)

func quoteMappings(scalar map[string]any) map[string]any {
	return map[string]any{
		"quotes": map[string]any{
			"quote_scalar": scalar,
			"required": map[string]any{
				"quote_id.quote_series_id.instrument_id": "isin",
				"quote_id.effective_at":                  "date",
				"metric_value.unit":                      "currency",
				"metric_value.value":                     "price",
			},
		},
	}
}

func TestScaleQuoteOfType(t *testing.T) {
	tests := []struct {
		name        string
		records     [][]any
		scaleFactor float64
		want        []any
	}{
		{
			name: "only scale marked rows",
			records: [][]any{
				{"name1", "s", 100.0},
				{"name2", "s", 100.0},
				{"name3", "b", 10000.0},
			},
			scaleFactor: 0.01,
			want:        []any{100.0, 100.0, 100.0},
		},
		{
			name: "missing price on unmarked row",
			records: [][]any{
				{"name1", "s", 100.0},
				{"name2", "s", nil},
				{"name3", "b", 1000.0},
			},
			scaleFactor: 0.1,
			want:        []any{100.0, nil, 100.0},
		},
		{
			name: "missing price on marked row",
			records: [][]any{
				{"name1", "s", 100.0},
				{"name2", "s", 100.0},
				{"name3", "b", nil},
			},
			scaleFactor: 0.1,
			want:        []any{100.0, 100.0, nil},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame, err := dataframe.FromRecords([]string{"name", "type", "price"}, tt.records)
			require.NoError(t, err)

			mappings := quoteMappings(map[string]any{
				"price":        "price",
				"type":         "type",
				"type_code":    "b",
				"scale_factor": tt.scaleFactor,
			})

			got, err := ScaleQuoteOfType(frame, mappings)
			require.NoError(t, err)

			require.Equal(t, tt.want, got.Column(AdjustedQuoteColumn))

			required := mappings["quotes"].(map[string]any)["required"].(map[string]any)
			require.Equal(t, AdjustedQuoteColumn, required["metric_value.value"])
		})
	}
}

func TestScaleQuoteOfTypeMissingColumns(t *testing.T) {
	tests := []struct {
		name   string
		entry  string
		column string
	}{
		{"invalid type column", "type", "invalid_type_name"},
		{"invalid price column", "price", "invalid_price_name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame, err := dataframe.FromRecords(
				[]string{"name", "type", "price"},
				[][]any{{"name1", "s", 100.0}, {"name3", "b", 10000.0}},
			)
			require.NoError(t, err)

			scalar := map[string]any{
				"price":        "price",
				"type":         "type",
				"type_code":    "b",
				"scale_factor": 0.01,
			}
			scalar[tt.entry] = tt.column

			_, err = ScaleQuoteOfType(frame, quoteMappings(scalar))
			require.ErrorIs(t, err, ErrColumnNotFound)
		})
	}
}
