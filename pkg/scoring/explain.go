package scoring

import (
	"fmt"
	"strconv"
	"strings"

	"cropadvisor/entities"
)

// Explain produces advisory reasons and warnings. It never feeds back into Score.
func Explain(crop entities.CropProfile, farm entities.FarmConditions) (reasons, warnings []string) {
	reasons, warnings = []string{}, []string{}

	if c, obs := crop.Climate, farm.Climate; c != nil && obs != nil && obs.AvgTemperature != nil {
		t := *obs.AvgTemperature
		if t >= c.TempMin && t <= c.TempMax {
			reasons = append(reasons, fmt.Sprintf("Temperature of %s°C suits %s (%s-%s°C)", num(t), crop.Name, num(c.TempMin), num(c.TempMax)))
		} else {
			warnings = append(warnings, fmt.Sprintf("Temperature of %s°C is outside the ideal range of %s-%s°C", num(t), num(c.TempMin), num(c.TempMax)))
		}
	}

	if obs := farm.Climate; obs != nil && strings.TrimSpace(obs.Season) != "" && crop.Season != "" {
		if seasonMatches(crop.Season, obs.Season) {
			reasons = append(reasons, fmt.Sprintf("Well suited to the %s season", strings.TrimSpace(obs.Season)))
		} else {
			warnings = append(warnings, fmt.Sprintf("%s is normally grown in the %s season", crop.Name, crop.Season))
		}
	}

	if req, obs := crop.Soil, farm.Soil; req != nil && obs != nil && strings.TrimSpace(obs.Type) != "" {
		if SoilTypeMatches(obs.Type, req.Types) {
			reasons = append(reasons, fmt.Sprintf("%s soil is suitable", strings.TrimSpace(obs.Type)))
		} else {
			warnings = append(warnings, fmt.Sprintf("Prefers %s soil", strings.Join(req.Types, ", ")))
		}
	}

	if res := farm.Resources; res != nil && res.WaterAvailability.Rank() > 0 && crop.WaterRequirement.Rank() > 0 {
		if res.WaterAvailability.Rank() >= crop.WaterRequirement.Rank() {
			reasons = append(reasons, fmt.Sprintf("Water availability (%s) meets the %s requirement", res.WaterAvailability, crop.WaterRequirement))
		} else {
			warnings = append(warnings, fmt.Sprintf("Needs %s water but availability is %s", crop.WaterRequirement, res.WaterAvailability))
		}
	}
	return reasons, warnings
}

func seasonMatches(cropSeason, farmSeason string) bool {
	switch strings.ToLower(strings.TrimSpace(cropSeason)) {
	case "year-round", "yearround", "all", "any":
		return true
	}
	return strings.EqualFold(strings.TrimSpace(cropSeason), strings.TrimSpace(farmSeason))
}

func num(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
