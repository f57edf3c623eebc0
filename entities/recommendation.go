package entities

import "time"

type RecommendationResult struct {
	Name             string   `json:"name"`
	Season           string   `json:"season"`
	WaterRequirement Tier     `json:"water_requirement"`
	CycleDays        int      `json:"cycle_days"`
	PlantingMonths   []int    `json:"planting_months"`
	HarvestMonths    []int    `json:"harvest_months"`
	Yield            string   `json:"yield"`
	Profitability    string   `json:"profitability"`
	Score            int      `json:"score"`
	Reasons          []string `json:"reasons"`
	Warnings         []string `json:"warnings"`
}

type RecommendationRecord struct {
	RecordID  uint                   `gorm:"primaryKey" json:"record_id"`
	UserID    string                 `gorm:"index" json:"user_id"`
	Location  string                 `json:"location"`
	Climate   *ClimateObservation    `gorm:"serializer:json" json:"climate"`
	Soil      *SoilObservation       `gorm:"serializer:json" json:"soil"`
	Resources *Resources             `gorm:"serializer:json" json:"resources"`
	Results   []RecommendationResult `gorm:"serializer:json" json:"results"`
	CreatedAt time.Time              `json:"created_at"`
}
