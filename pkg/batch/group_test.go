package batch

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/daniel-ilyin/lusid-go-tools/pkg/models"
)

func portfolioGroupRequests() []any {
	group := func(portfolio string, properties map[string]models.ModelProperty) *models.CreatePortfolioGroupRequest {
		return &models.CreatePortfolioGroupRequest{
			Code:        "PORT_GROUP1",
			DisplayName: "Portfolio Group 1",
			Values:      []models.ResourceID{{Scope: "TEST1", Code: portfolio}},
			Properties:  properties,
			Created:     "2019-01-01",
		}
	}
	return []any{
		group("PORT1", map[string]models.ModelProperty{
			"test":  {Key: "test", Value: "prop1"},
			"test2": {Key: "test", Value: "prop2"},
		}),
		group("PORT2", map[string]models.ModelProperty{
			"test3": {Key: "test", Value: "prop3"},
			"test2": {Key: "test", Value: "prop4"},
		}),
		group("PORT3", nil),
		group("PORT4", nil),
	}
}

func TestGroupRequestsConcatenatesLists(t *testing.T) {
	got, err := GroupRequests("CreatePortfolioGroupRequest", portfolioGroupRequests(), []string{"values"}, 0)
	require.NoError(t, err)

	grouped := got.(*models.CreatePortfolioGroupRequest)
	require.Equal(t, []models.ResourceID{
		{Scope: "TEST1", Code: "PORT1"},
		{Scope: "TEST1", Code: "PORT2"},
		{Scope: "TEST1", Code: "PORT3"},
		{Scope: "TEST1", Code: "PORT4"},
	}, grouped.Values)

	// Attributes outside the grouping list keep the base request's
	// values.
	require.Equal(t, map[string]models.ModelProperty{
		"test":  {Key: "test", Value: "prop1"},
		"test2": {Key: "test", Value: "prop2"},
	}, grouped.Properties)
}

func TestGroupRequestsMergesMaps(t *testing.T) {
	got, err := GroupRequests("CreatePortfolioGroupRequest", portfolioGroupRequests(), []string{"properties"}, 0)
	require.NoError(t, err)

	grouped := got.(*models.CreatePortfolioGroupRequest)
	require.Equal(t, map[string]models.ModelProperty{
		"test":  {Key: "test", Value: "prop1"},
		"test2": {Key: "test", Value: "prop4"},
		"test3": {Key: "test", Value: "prop3"},
	}, grouped.Properties)
}

func holdingRequests() []any {
	lot := func(units float64) models.TargetTaxLot {
		return models.TargetTaxLot{
			Units:          units,
			Cost:           &models.CurrencyAndAmount{Amount: 1, Currency: "GBP"},
			PortfolioCost:  units,
			Price:          units,
			PurchaseDate:   "2020-02-20",
			SettlementDate: "2020-02-22",
		}
	}
	return []any{
		&models.HoldingAdjustment{
			InstrumentIdentifiers: map[string]string{"Instrument/default/Isin": "TEST_ID"},
			InstrumentUID:         "TEST_LUID",
			TaxLots:               []models.TargetTaxLot{lot(10)},
		},
		&models.HoldingAdjustment{
			InstrumentIdentifiers: map[string]string{"Instrument/default/Isin": "TEST_ID"},
			InstrumentUID:         "TEST_LUID",
			TaxLots:               []models.TargetTaxLot{lot(20)},
		},
	}
}

func TestGroupRequestsHoldings(t *testing.T) {
	got, err := GroupRequests("HoldingAdjustment", holdingRequests(), []string{"tax_lots"}, 0)
	require.NoError(t, err)

	grouped := got.(*models.HoldingAdjustment)
	require.Len(t, grouped.TaxLots, 2)
	require.Equal(t, 10.0, grouped.TaxLots[0].Units)
	require.Equal(t, 20.0, grouped.TaxLots[1].Units)
}

func TestGroupRequestsBadModel(t *testing.T) {
	_, err := GroupRequests("HoldingAdjustmentBadModel", holdingRequests(), []string{"tax_lots"}, 0)
	require.EqualError(t, err, "batch: The model HoldingAdjustmentBadModel is not a valid LUSID model.")
}

func TestGroupRequestsEmptyAttributes(t *testing.T) {
	_, err := GroupRequests("HoldingAdjustment", holdingRequests(), nil, 0)
	require.EqualError(t, err, "batch: The provided list of attribute_for_grouping is empty.")
}

func TestGroupRequestsIndexOutOfRange(t *testing.T) {
	_, err := GroupRequests("HoldingAdjustment", holdingRequests(), []string{"tax_lots"}, 3)
	require.EqualError(t, err, "batch: The length of the batch_index (3) is greater than the request_list (2) provided.")
}

func TestGroupRequestsNonZeroBatchIndex(t *testing.T) {
	got, err := GroupRequests("HoldingAdjustment", holdingRequests(), []string{"tax_lots"}, 1)
	require.NoError(t, err)

	grouped := got.(*models.HoldingAdjustment)
	require.Len(t, grouped.TaxLots, 2)
	require.Equal(t, 20.0, grouped.TaxLots[0].Units)
	require.Equal(t, 10.0, grouped.TaxLots[1].Units)
}
