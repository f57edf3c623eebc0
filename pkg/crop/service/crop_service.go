package service

import "cropadvisor/entities"

type CropSummary struct {
	Name             string        `json:"name"`
	Season           string        `json:"season"`
	WaterRequirement entities.Tier `json:"water_requirement"`
	CycleDays        int           `json:"cycle_days"`
}

type CropService interface {
	List() []CropSummary
	Details(name string) (entities.CropProfile, error)
	AnalyzeSoil(soil entities.SoilObservation) (entities.SoilAnalysis, error)
}
