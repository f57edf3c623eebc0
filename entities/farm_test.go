package entities

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTier(t *testing.T) {
	cases := map[string]Tier{
		"low":       TierLow,
		" Medium ":  TierMedium,
		"moderate":  TierMedium,
		"HIGH":      TierHigh,
		"Very High": TierVeryHigh,
		"very_high": TierVeryHigh,
		"VeryHigh":  TierVeryHigh,
		"plenty":    TierUnspecified,
		"":          TierUnspecified,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseTier(in), in)
	}
	assert.Less(t, TierLow.Rank(), TierMedium.Rank())
	assert.Less(t, TierHigh.Rank(), TierVeryHigh.Rank())
	assert.Zero(t, TierUnspecified.Rank())
}

func TestFarmConditionsJSON(t *testing.T) {
	body := `{
		"location": "Nashik",
		"climate": {"avg_temperature": 24.5, "seasonal_rainfall": 650, "season": "Rabi"},
		"soil": {"type": "Black", "ph": 7.8, "drainage": "moderate", "organic_matter": "medium"},
		"resources": {"water_availability": "very high", "irrigation": ["drip"], "labor": "LOW", "fertilizer_access": "medium"}
	}`
	var farm FarmConditions
	require.NoError(t, json.Unmarshal([]byte(body), &farm))

	require.NotNil(t, farm.Climate)
	assert.Nil(t, farm.Climate.AnnualRainfall)
	assert.Equal(t, 650.0, *farm.Climate.Rainfall())
	require.NotNil(t, farm.Soil.OrganicMatter)
	assert.Equal(t, 3.0, farm.Soil.OrganicMatter.Level())
	assert.Equal(t, TierVeryHigh, farm.Resources.WaterAvailability)
	assert.Equal(t, TierLow, farm.Resources.Labor)
}

func TestOrganicMatterJSON(t *testing.T) {
	var soil SoilObservation
	require.NoError(t, json.Unmarshal([]byte(`{"type":"Loam","organic_matter":2.5}`), &soil))
	assert.Equal(t, 2.5, soil.OrganicMatter.Level())

	out, err := json.Marshal(soil)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"Loam","organic_matter":2.5}`, string(out))

	require.NoError(t, json.Unmarshal([]byte(`{"organic_matter":"High"}`), &soil))
	assert.Equal(t, 5.0, soil.OrganicMatter.Level())

	assert.Error(t, json.Unmarshal([]byte(`{"organic_matter":true}`), &soil))
	assert.Equal(t, 1.0, OrganicMatter{}.Level())
}
