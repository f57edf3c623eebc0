package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cropadvisor/entities"
	"cropadvisor/pkg/catalog"
)

func f(v float64) *float64 { return &v }

func testCrop() entities.CropProfile {
	return entities.CropProfile{
		Name:   "Testcrop",
		Season: "Kharif",
		Climate: &entities.ClimateRange{
			TempMin: 20, TempMax: 30,
			RainfallMin: 600, RainfallMax: 1000,
			HumidityMin: 50, HumidityMax: 80,
		},
		Soil: &entities.SoilRequirement{
			Types: []string{"Loam"}, PHMin: 6, PHMax: 7,
			Drainage: true, OrganicMatter: entities.TierHigh,
		},
		WaterRequirement: entities.TierMedium,
	}
}

func idealFarm() entities.FarmConditions {
	return entities.FarmConditions{
		Climate: &entities.ClimateObservation{AvgTemperature: f(25), AnnualRainfall: f(800), Humidity: f(65), Season: "Kharif"},
		Soil: &entities.SoilObservation{
			Type: "Sandy Loam", PH: f(6.5), Drainage: "good",
			OrganicMatter: &entities.OrganicMatter{Label: "high"},
		},
		Resources: &entities.Resources{
			WaterAvailability: entities.TierMedium,
			Irrigation:        []string{"drip"},
			Labor:             entities.TierHigh,
			FertilizerAccess:  entities.TierHigh,
		},
	}
}

func TestClimateContribution(t *testing.T) {
	crop := testCrop()

	b := Evaluate(crop, idealFarm())
	assert.Equal(t, 100, b.Climate)
	assert.Equal(t, 40, climateWeight*b.Climate/100)
	assert.Equal(t, 100, b.Total)

	hot := idealFarm()
	hot.Climate.AvgTemperature = f(35)
	b = Evaluate(crop, hot)
	assert.Equal(t, 70, b.Climate)
	assert.Equal(t, 28, climateWeight*b.Climate/100)
}

func TestClimateScore(t *testing.T) {
	r := testCrop().Climate
	tests := []struct {
		name string
		obs  *entities.ClimateObservation
		want int
	}{
		{"missing farm climate", nil, 50},
		{"all in range", &entities.ClimateObservation{AvgTemperature: f(25), AnnualRainfall: f(800), Humidity: f(65)}, 100},
		{"temperature out", &entities.ClimateObservation{AvgTemperature: f(10), AnnualRainfall: f(800), Humidity: f(65)}, 70},
		{"rainfall out", &entities.ClimateObservation{AvgTemperature: f(25), AnnualRainfall: f(1200), Humidity: f(65)}, 75},
		{"seasonal rainfall used when annual absent", &entities.ClimateObservation{AvgTemperature: f(25), SeasonalRainfall: f(300), Humidity: f(65)}, 75},
		{"annual rainfall wins over seasonal", &entities.ClimateObservation{AvgTemperature: f(25), AnnualRainfall: f(700), SeasonalRainfall: f(300), Humidity: f(65)}, 100},
		{"humidity out", &entities.ClimateObservation{AvgTemperature: f(25), AnnualRainfall: f(800), Humidity: f(95)}, 85},
		{"everything out", &entities.ClimateObservation{AvgTemperature: f(40), AnnualRainfall: f(100), Humidity: f(10)}, 30},
		{"missing values skip their checks", &entities.ClimateObservation{}, 100},
		{"boundaries are inclusive", &entities.ClimateObservation{AvgTemperature: f(30), AnnualRainfall: f(600), Humidity: f(80)}, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClimateScore(r, tt.obs))
		})
	}
	assert.Equal(t, 50, ClimateScore(nil, &entities.ClimateObservation{AvgTemperature: f(25)}), "missing crop climate")
}

func TestSoilScore(t *testing.T) {
	req := testCrop().Soil
	tests := []struct {
		name string
		obs  *entities.SoilObservation
		want int
	}{
		{"missing farm soil", nil, 50},
		{"ideal", idealFarm().Soil, 100},
		{"type mismatch", &entities.SoilObservation{Type: "Clay", PH: f(6.5), Drainage: "good", OrganicMatter: &entities.OrganicMatter{Value: f(4)}}, 75},
		{"accepted type inside farm label", &entities.SoilObservation{Type: "silty LOAM", PH: f(6.5), Drainage: "Good"}, 100},
		{"ph out", &entities.SoilObservation{Type: "Loam", PH: f(8.2), Drainage: "good"}, 70},
		{"poor drainage", &entities.SoilObservation{Type: "Loam", PH: f(6.5), Drainage: "poor"}, 80},
		{"numeric organic matter below 3", &entities.SoilObservation{Type: "Loam", OrganicMatter: &entities.OrganicMatter{Value: f(2)}}, 85},
		{"medium organic label maps to 3", &entities.SoilObservation{Type: "Loam", OrganicMatter: &entities.OrganicMatter{Label: "medium"}}, 100},
		{"unknown organic label maps to 1", &entities.SoilObservation{Type: "Loam", OrganicMatter: &entities.OrganicMatter{Label: "some"}}, 85},
		{"all penalties", &entities.SoilObservation{Type: "Clay", PH: f(4), Drainage: "poor", OrganicMatter: &entities.OrganicMatter{Label: "low"}}, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SoilScore(req, tt.obs))
		})
	}
	assert.Equal(t, 50, SoilScore(nil, idealFarm().Soil), "missing crop soil")
}

func TestSoilScoreOrganicNeedAtLeastHigh(t *testing.T) {
	obs := &entities.SoilObservation{Type: "Loam", OrganicMatter: &entities.OrganicMatter{Label: "low"}}
	for tier, want := range map[entities.Tier]int{
		entities.TierVeryHigh: 85,
		entities.TierHigh:     85,
		entities.TierMedium:   100,
		entities.TierLow:      100,
	} {
		req := &entities.SoilRequirement{Types: []string{"Loam"}, PHMin: 5, PHMax: 8, OrganicMatter: tier}
		assert.Equal(t, want, SoilScore(req, obs), string(tier))
	}
}

func TestResourceScore(t *testing.T) {
	thirsty := entities.CropProfile{Name: "Rice", WaterRequirement: entities.TierVeryHigh}
	high := entities.CropProfile{Name: "Cotton", WaterRequirement: entities.TierHigh}
	hardy := entities.CropProfile{Name: "Millet", WaterRequirement: entities.TierLow}
	full := func() *entities.Resources {
		return &entities.Resources{WaterAvailability: entities.TierLow, Irrigation: []string{"canal"}, Labor: entities.TierHigh, FertilizerAccess: entities.TierHigh}
	}

	assert.Equal(t, 50, ResourceScore(thirsty, nil))
	assert.Equal(t, 60, ResourceScore(thirsty, full()))
	assert.Equal(t, 80, ResourceScore(high, full()))
	assert.Equal(t, 100, ResourceScore(hardy, full()))

	r := full()
	r.Irrigation = []string{" "}
	assert.Equal(t, 85, ResourceScore(hardy, r), "blank irrigation entries count as none")

	r = full()
	r.Labor = entities.TierLow
	assert.Equal(t, 100, ResourceScore(hardy, r), "millet tolerates low labor")
	assert.Equal(t, 70, ResourceScore(high, r))

	r = full()
	r.FertilizerAccess = entities.TierLow
	r.Irrigation = nil
	r.Labor = entities.TierLow
	assert.Equal(t, 25, ResourceScore(thirsty, r))
}

func TestWaterScore(t *testing.T) {
	assert.Equal(t, 30, WaterScore(entities.TierVeryHigh, entities.TierLow))
	assert.Equal(t, 70, WaterScore(entities.TierVeryHigh, entities.TierMedium))
	assert.Equal(t, 80, WaterScore(entities.TierHigh, entities.TierMedium))
	assert.Equal(t, 100, WaterScore(entities.TierHigh, entities.TierHigh))
	assert.Equal(t, 100, WaterScore(entities.TierMedium, entities.TierUnspecified))
	assert.Equal(t, 100, WaterScore(entities.TierUnspecified, entities.TierLow))
}

func TestScoreWeightsAndRounding(t *testing.T) {
	crop := testCrop()

	farm := idealFarm()
	farm.Climate.AvgTemperature = f(35)
	farm.Soil.PH = f(8)
	farm.Resources.Labor = entities.TierLow
	farm.Resources.WaterAvailability = entities.TierLow
	// 40*0.70 + 30*0.70 + 20*0.90 + 10*0.70
	assert.Equal(t, 74, Score(crop, farm))

	farm = idealFarm()
	farm.Climate.Humidity = f(95)
	farm.Soil.Type = "Clay"
	// 40*0.85 + 30*0.75 + 20 + 10 = 86.5
	assert.Equal(t, 87, Score(crop, farm))

	// No data anywhere: 40*0.5 + 30*0.5 + 20*0.5 + 10
	assert.Equal(t, 55, Score(entities.CropProfile{Name: "Bare"}, entities.FarmConditions{}))
}

func TestScoreBoundsAndDeterminism(t *testing.T) {
	farms := []entities.FarmConditions{{}, idealFarm()}
	for _, temp := range []float64{-10, 15, 28, 45} {
		for _, ph := range []float64{3.5, 6.5, 9.5} {
			for _, tier := range []entities.Tier{entities.TierLow, entities.TierHigh} {
				farms = append(farms, entities.FarmConditions{
					Climate:   &entities.ClimateObservation{AvgTemperature: f(temp), SeasonalRainfall: f(temp * 40), Humidity: f(ph * 10)},
					Soil:      &entities.SoilObservation{Type: "Black Clay", PH: f(ph), Drainage: "poor", OrganicMatter: &entities.OrganicMatter{Label: "low"}},
					Resources: &entities.Resources{WaterAvailability: tier, Labor: tier, FertilizerAccess: tier},
				})
			}
		}
	}
	for _, crop := range catalog.Default().All() {
		for _, farm := range farms {
			s := Score(crop, farm)
			require.GreaterOrEqual(t, s, 0)
			require.LessOrEqual(t, s, 100)
			require.Equal(t, s, Score(crop, farm))
		}
	}
}

func TestSoilTypeMatches(t *testing.T) {
	assert.True(t, SoilTypeMatches("Sandy Loam", []string{"Loam"}))
	assert.True(t, SoilTypeMatches("loam", []string{"Clay Loam"}))
	assert.True(t, SoilTypeMatches(" SANDY LOAM ", []string{"Sandy Loam"}))
	assert.False(t, SoilTypeMatches("Clay", []string{"Sandy", "Loam"}))
	assert.False(t, SoilTypeMatches("", []string{"Loam"}))
	assert.False(t, SoilTypeMatches("Loam", []string{" "}))
}
