// Package cocoon maps tabular data onto platform request models: a
// mapping configuration names which source columns feed which model
// attributes, and each row of a loaded frame becomes one populated
// request. The heavy lifting lives in the sub-packages; this package
// ties them together and re-exports the types callers configure.
package cocoon

import (
	"fmt"

	"github.com/daniel-ilyin/lusid-go-tools/pkg/dataframe"
	"github.com/daniel-ilyin/lusid-go-tools/pkg/mapping"
	"github.com/daniel-ilyin/lusid-go-tools/pkg/models"
	"github.com/daniel-ilyin/lusid-go-tools/pkg/populate"
	"github.com/daniel-ilyin/lusid-go-tools/pkg/schema"
)

// Options configures the structural slots supplied out-of-band during
// population.
type Options = populate.Options

// FileTypeModels maps a loader file type to the request model populated
// for each of its rows.
var FileTypeModels = map[string]string{
	"instruments":      "InstrumentDefinition",
	"portfolios":       "CreateTransactionPortfolioRequest",
	"portfolio_groups": "CreatePortfolioGroupRequest",
	"transactions":     "TransactionRequest",
	"holdings":         "AdjustHoldingRequest",
	"quotes":           "UpsertQuoteRequest",
}

// DefaultExemptAttributes are the required attributes supplied
// out-of-band rather than through the mapping.
var DefaultExemptAttributes = []string{
	"identifiers",
	"properties",
	"instrument_identifiers",
	"sub_holding_keys",
}

// instrumentIdentifierPrefix completes bare identifier names into full
// platform identifier keys.
const instrumentIdentifierPrefix = "Instrument/default/"

// BuildRequests builds one populated request per frame row for a file
// type: the mapping's required and optional sections merge into one
// tree, required coverage is verified against the model schema, and
// each row populates one instance. Identifiers declared under the file
// type's identifier_mapping are resolved per row.
func BuildRequests(s *schema.Schema, mappings map[string]any, frame *dataframe.Frame, fileType string, opts Options) ([]any, error) {
	modelName, ok := FileTypeModels[fileType]
	if !ok {
		return nil, fmt.Errorf("cocoon: %s is not a supported file type", fileType)
	}
	section, ok := mappings[fileType].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("cocoon: mappings have no %s section", fileType)
	}
	required, ok := section[mapping.SectionRequired].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("cocoon: the %s section has no %s block", fileType, mapping.SectionRequired)
	}

	if err := s.VerifyRequiredMapped(required, modelName, DefaultExemptAttributes); err != nil {
		return nil, err
	}

	tree := mapping.Expand(required)
	if optional, ok := section[mapping.SectionOptional].(map[string]any); ok {
		mapping.Merge(tree, mapping.Expand(optional))
	}
	identifierMapping, _ := section[mapping.SectionIdentifierMapping].(map[string]any)

	requests := make([]any, 0, frame.Len())
	for _, row := range frame.Rows() {
		rowOpts := opts
		if rowOpts.Identifiers == nil && identifierMapping != nil {
			identifiers, err := resolveIdentifiers(modelName, identifierMapping, row)
			if err != nil {
				return nil, err
			}
			rowOpts.Identifiers = identifiers
		}
		request, err := populate.Populate(modelName, tree, row, rowOpts)
		if err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}
	return requests, nil
}

// resolveIdentifiers reads one row's identifier cells per the
// identifier_mapping section. Instrument definitions take identifier
// objects, every other request takes plain identifier strings. Cells
// with no value are skipped.
func resolveIdentifiers(modelName string, identifierMapping map[string]any, row dataframe.Row) (any, error) {
	if modelName == "InstrumentDefinition" {
		identifiers := make(map[string]models.InstrumentIDValue)
		err := eachIdentifier(identifierMapping, row, func(key, value string) {
			identifiers[key] = models.InstrumentIDValue{Value: value}
		})
		if err != nil || len(identifiers) == 0 {
			return nil, err
		}
		return identifiers, nil
	}

	identifiers := make(map[string]string)
	err := eachIdentifier(identifierMapping, row, func(key, value string) {
		identifiers[key] = value
	})
	if err != nil || len(identifiers) == 0 {
		return nil, err
	}
	return identifiers, nil
}

func eachIdentifier(identifierMapping map[string]any, row dataframe.Row, visit func(key, value string)) error {
	for name, entry := range identifierMapping {
		field, err := mapping.ParseField(entry)
		if err != nil {
			return fmt.Errorf("cocoon: identifier %s: %w", name, err)
		}
		cell, ok := field.Resolve(row.Get)
		if !ok {
			continue
		}
		value, ok := cell.(string)
		if !ok {
			value = fmt.Sprint(cell)
		}
		visit(identifierKey(name), value)
	}
	return nil
}

// identifierKey completes a bare identifier name into a full platform
// identifier key, leaving already-qualified keys alone.
func identifierKey(name string) string {
	for _, r := range name {
		if r == '/' {
			return name
		}
	}
	return instrumentIdentifierPrefix + name
}
