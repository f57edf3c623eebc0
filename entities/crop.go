package entities

// Perennial is the CycleDays sentinel for crops without a fixed season length.
const Perennial = -1

type ClimateRange struct {
	TempMin     float64 `json:"temp_min"`
	TempMax     float64 `json:"temp_max"`
	RainfallMin float64 `json:"rainfall_min"`
	RainfallMax float64 `json:"rainfall_max"`
	HumidityMin float64 `json:"humidity_min"`
	HumidityMax float64 `json:"humidity_max"`
}

type SoilRequirement struct {
	Types         []string `json:"types"`
	PHMin         float64  `json:"ph_min"`
	PHMax         float64  `json:"ph_max"`
	Drainage      bool     `json:"drainage_required"`
	OrganicMatter Tier     `json:"organic_matter"`
}

type FertilizerStep struct {
	Stage    string `json:"stage"`
	Product  string `json:"product"`
	Quantity string `json:"quantity"`
}

// CropProfile is a read-only reference record; Climate and Soil may be nil when
// the table has no data for them.
type CropProfile struct {
	Name             string           `json:"name"`
	Season           string           `json:"season"`
	PlantingMonths   []int            `json:"planting_months"`
	HarvestMonths    []int            `json:"harvest_months"`
	CycleDays        int              `json:"cycle_days"` // Perennial for perennials
	Climate          *ClimateRange    `json:"climate,omitempty"`
	Soil             *SoilRequirement `json:"soil,omitempty"`
	WaterRequirement Tier             `json:"water_requirement"`
	Yield            string           `json:"yield"`
	Profitability    string           `json:"profitability"`
	Practices        []string         `json:"practices"`
	PestManagement   []string         `json:"pest_management"`
	Fertilizer       []FertilizerStep `json:"fertilizer_schedule"`
}

func (c CropProfile) IsPerennial() bool { return c.CycleDays == Perennial }
