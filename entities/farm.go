package entities

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

const DrainageGood = "good"

type ClimateObservation struct {
	AvgTemperature   *float64 `json:"avg_temperature,omitempty"`
	AnnualRainfall   *float64 `json:"annual_rainfall,omitempty"`
	SeasonalRainfall *float64 `json:"seasonal_rainfall,omitempty"`
	Humidity         *float64 `json:"humidity,omitempty"`
	Season           string   `json:"season,omitempty"`
}

// Rainfall prefers the annual figure and falls back to the seasonal one.
func (c ClimateObservation) Rainfall() *float64 {
	if c.AnnualRainfall != nil {
		return c.AnnualRainfall
	}
	return c.SeasonalRainfall
}

// OrganicMatter accepts either a number or a qualitative label in JSON.
type OrganicMatter struct {
	Value *float64
	Label string
}

func (o *OrganicMatter) UnmarshalJSON(b []byte) error {
	*o = OrganicMatter{}
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		return json.Unmarshal(b, &o.Label)
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("organic_matter: %w", err)
	}
	o.Value = &v
	return nil
}

func (o OrganicMatter) MarshalJSON() ([]byte, error) {
	if o.Value != nil {
		return json.Marshal(*o.Value)
	}
	if o.Label != "" {
		return json.Marshal(o.Label)
	}
	return []byte("null"), nil
}

// Level maps labels high→5, medium→3, anything else→1.
func (o OrganicMatter) Level() float64 {
	if o.Value != nil {
		return *o.Value
	}
	switch strings.ToLower(strings.TrimSpace(o.Label)) {
	case "high":
		return 5
	case "medium":
		return 3
	}
	return 1
}

type SoilObservation struct {
	Type          string         `json:"type"`
	PH            *float64       `json:"ph,omitempty"`
	Drainage      string         `json:"drainage,omitempty"` // good|moderate|poor
	OrganicMatter *OrganicMatter `json:"organic_matter,omitempty"`
}

type Resources struct {
	WaterAvailability Tier     `json:"water_availability"`
	Irrigation        []string `json:"irrigation"`
	Labor             Tier     `json:"labor"`
	FertilizerAccess  Tier     `json:"fertilizer_access"`
}

type FarmConditions struct {
	Location  string              `json:"location,omitempty"`
	Climate   *ClimateObservation `json:"climate,omitempty"`
	Soil      *SoilObservation    `json:"soil,omitempty"`
	Resources *Resources          `json:"resources,omitempty"`
}
