package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cropadvisor/entities"
)

func TestExplainMatches(t *testing.T) {
	reasons, warnings := Explain(testCrop(), idealFarm())
	assert.Empty(t, warnings)
	assert.Equal(t, []string{
		"Temperature of 25°C suits Testcrop (20-30°C)",
		"Well suited to the Kharif season",
		"Sandy Loam soil is suitable",
		"Water availability (Medium) meets the Medium requirement",
	}, reasons)
}

func TestExplainMismatches(t *testing.T) {
	farm := idealFarm()
	farm.Climate.AvgTemperature = f(33.5)
	farm.Climate.Season = "Rabi"
	farm.Soil.Type = "Clay"
	farm.Resources.WaterAvailability = entities.TierLow

	reasons, warnings := Explain(testCrop(), farm)
	assert.Empty(t, reasons)
	assert.Equal(t, []string{
		"Temperature of 33.5°C is outside the ideal range of 20-30°C",
		"Testcrop is normally grown in the Kharif season",
		"Prefers Loam soil",
		"Needs Medium water but availability is Low",
	}, warnings)
}

func TestExplainSkipsMissingData(t *testing.T) {
	reasons, warnings := Explain(testCrop(), entities.FarmConditions{})
	assert.NotNil(t, reasons)
	assert.NotNil(t, warnings)
	assert.Empty(t, reasons)
	assert.Empty(t, warnings)
}

func TestYearRoundSeasonMatchesAnySeason(t *testing.T) {
	crop := testCrop()
	crop.Season = "Year-round"
	farm := entities.FarmConditions{Climate: &entities.ClimateObservation{Season: "Zaid"}}
	reasons, warnings := Explain(crop, farm)
	assert.Equal(t, []string{"Well suited to the Zaid season"}, reasons)
	assert.Empty(t, warnings)
}

func TestExplanationsDoNotChangeScore(t *testing.T) {
	farm := idealFarm()
	before := Score(testCrop(), farm)
	farm.Climate.Season = "Rabi"
	assert.Equal(t, before, Score(testCrop(), farm))
}
