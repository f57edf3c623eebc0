// Package scoring rates how well a crop fits a farm. Everything here is a pure
// function of its inputs.
package scoring

import (
	"math"
	"strings"

	"cropadvisor/entities"
	"cropadvisor/pkg/catalog"
)

const (
	climateWeight  = 40
	soilWeight     = 30
	resourceWeight = 20
	waterWeight    = 10

	// neutralScore stands for "not enough data", not for a perfect match.
	neutralScore = 50
)

// lowLabor lists crops that stay viable when little labor is available.
var lowLabor = map[string]bool{
	"millet":   true,
	"sorghum":  true,
	"chickpea": true,
	"mango":    true,
}

type tierPair struct{ need, have entities.Tier }

// waterMatch holds the non-perfect (need, availability) pairs; anything else scores 100.
var waterMatch = map[tierPair]int{
	{entities.TierVeryHigh, entities.TierLow}:    30,
	{entities.TierVeryHigh, entities.TierMedium}: 70,
	{entities.TierVeryHigh, entities.TierHigh}:   80,
	{entities.TierHigh, entities.TierLow}:        30,
	{entities.TierHigh, entities.TierMedium}:     80,
	{entities.TierMedium, entities.TierLow}:      70,
	{entities.TierLow, entities.TierHigh}:        80,
	{entities.TierLow, entities.TierVeryHigh}:    70,
}

// Breakdown is the per-factor view of a score. Sub-scores are in [0,100].
type Breakdown struct {
	Climate  int `json:"climate"`
	Soil     int `json:"soil"`
	Resource int `json:"resource"`
	Water    int `json:"water"`
	Total    int `json:"total"`
}

func Score(crop entities.CropProfile, farm entities.FarmConditions) int {
	return Evaluate(crop, farm).Total
}

func Evaluate(crop entities.CropProfile, farm entities.FarmConditions) Breakdown {
	var have entities.Tier
	if farm.Resources != nil {
		have = farm.Resources.WaterAvailability
	}
	b := Breakdown{
		Climate:  ClimateScore(crop.Climate, farm.Climate),
		Soil:     SoilScore(crop.Soil, farm.Soil),
		Resource: ResourceScore(crop, farm.Resources),
		Water:    WaterScore(crop.WaterRequirement, have),
	}
	weighted := climateWeight*b.Climate + soilWeight*b.Soil + resourceWeight*b.Resource + waterWeight*b.Water
	b.Total = clamp(int(math.Round(float64(weighted)/100)), 0, 100)
	return b
}

func ClimateScore(r *entities.ClimateRange, obs *entities.ClimateObservation) int {
	if r == nil || obs == nil {
		return neutralScore
	}
	s := 100
	if outside(obs.AvgTemperature, r.TempMin, r.TempMax) {
		s -= 30
	}
	if outside(obs.Rainfall(), r.RainfallMin, r.RainfallMax) {
		s -= 25
	}
	if outside(obs.Humidity, r.HumidityMin, r.HumidityMax) {
		s -= 15
	}
	return floor(s)
}

func SoilScore(req *entities.SoilRequirement, obs *entities.SoilObservation) int {
	if req == nil || obs == nil {
		return neutralScore
	}
	s := 100
	if strings.TrimSpace(obs.Type) != "" && len(req.Types) > 0 && !SoilTypeMatches(obs.Type, req.Types) {
		s -= 25
	}
	if outside(obs.PH, req.PHMin, req.PHMax) {
		s -= 30
	}
	if req.Drainage && obs.Drainage != "" && !strings.EqualFold(strings.TrimSpace(obs.Drainage), entities.DrainageGood) {
		s -= 20
	}
	if req.OrganicMatter.Rank() >= entities.TierHigh.Rank() && obs.OrganicMatter != nil && obs.OrganicMatter.Level() < 3 {
		s -= 15
	}
	return floor(s)
}

func ResourceScore(crop entities.CropProfile, res *entities.Resources) int {
	if res == nil {
		return neutralScore
	}
	s := 100
	switch {
	case crop.WaterRequirement == entities.TierVeryHigh && res.WaterAvailability == entities.TierLow:
		s -= 40
	case crop.WaterRequirement == entities.TierHigh && res.WaterAvailability == entities.TierLow:
		s -= 20
	}
	if countNonBlank(res.Irrigation) == 0 {
		s -= 15
	}
	if res.Labor == entities.TierLow && !lowLabor[catalog.Key(crop.Name)] {
		s -= 10
	}
	if res.FertilizerAccess == entities.TierLow {
		s -= 10
	}
	return floor(s)
}

func WaterScore(need, have entities.Tier) int {
	if v, ok := waterMatch[tierPair{need, have}]; ok {
		return v
	}
	return 100
}

// SoilTypeMatches reports whether the farm label and any accepted type contain
// one another, ignoring case. Scoring and explanations share this rule.
func SoilTypeMatches(label string, accepted []string) bool {
	l := strings.ToLower(strings.TrimSpace(label))
	if l == "" {
		return false
	}
	for _, t := range accepted {
		a := strings.ToLower(strings.TrimSpace(t))
		if a == "" {
			continue
		}
		if strings.Contains(l, a) || strings.Contains(a, l) {
			return true
		}
	}
	return false
}

func outside(v *float64, lo, hi float64) bool {
	return v != nil && (*v < lo || *v > hi)
}

func countNonBlank(ss []string) int {
	n := 0
	for _, s := range ss {
		if strings.TrimSpace(s) != "" {
			n++
		}
	}
	return n
}

func floor(s int) int { return max(s, 0) }

func clamp(v, lo, hi int) int { return min(max(v, lo), hi) }
