package entities

type SoilAnalysis struct {
	SoilType      string   `json:"soil_type"`
	PH            *float64 `json:"ph,omitempty"`
	PHBand        string   `json:"ph_band"`
	Advice        []string `json:"advice"`
	Warnings      []string `json:"warnings"`
	SuitableCrops []string `json:"suitable_crops"`
}
