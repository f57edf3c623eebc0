package scoring

import (
	"sort"

	"cropadvisor/entities"
)

const DefaultLimit = 10

// Recommend scores every crop and returns at most limit results, best first.
// Equal scores keep the order of crops.
func Recommend(crops []entities.CropProfile, farm entities.FarmConditions, limit int) []entities.RecommendationResult {
	if limit <= 0 {
		limit = DefaultLimit
	}
	out := make([]entities.RecommendationResult, 0, len(crops))
	for _, c := range crops {
		out = append(out, Result(c, farm))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Result scores one crop and echoes its attributes.
func Result(c entities.CropProfile, farm entities.FarmConditions) entities.RecommendationResult {
	reasons, warnings := Explain(c, farm)
	return entities.RecommendationResult{
		Name:             c.Name,
		Season:           c.Season,
		WaterRequirement: c.WaterRequirement,
		CycleDays:        c.CycleDays,
		PlantingMonths:   c.PlantingMonths,
		HarvestMonths:    c.HarvestMonths,
		Yield:            c.Yield,
		Profitability:    c.Profitability,
		Score:            Score(c, farm),
		Reasons:          reasons,
		Warnings:         warnings,
	}
}
