// Package advisory gives soil-only advice without scoring a full farm.
package advisory

import (
	"fmt"
	"strconv"
	"strings"

	"cropadvisor/entities"
	"cropadvisor/pkg/scoring"
)

// MaxSoilMatches bounds the suitable-crop list.
const MaxSoilMatches = 6

const (
	BandUnknown        = "unknown"
	BandStronglyAcidic = "strongly acidic"
	BandSlightlyAcidic = "slightly acidic"
	BandNeutral        = "neutral"
	BandAlkaline       = "alkaline"
)

func PHBand(ph float64) string {
	switch {
	case ph < 5.5:
		return BandStronglyAcidic
	case ph < 6.5:
		return BandSlightlyAcidic
	case ph <= 7.5:
		return BandNeutral
	}
	return BandAlkaline
}

// AnalyzeSoil returns pH-banded advice plus the crops whose accepted soil types
// overlap the farm's soil label. Crops listing the exact label come first.
func AnalyzeSoil(crops []entities.CropProfile, soil entities.SoilObservation) entities.SoilAnalysis {
	out := entities.SoilAnalysis{
		SoilType:      strings.TrimSpace(soil.Type),
		PH:            soil.PH,
		PHBand:        BandUnknown,
		Advice:        []string{},
		Warnings:      []string{},
		SuitableCrops: []string{},
	}

	if soil.PH == nil {
		out.Advice = append(out.Advice, "Test soil pH before choosing a crop")
	} else {
		ph := strconv.FormatFloat(*soil.PH, 'f', -1, 64)
		out.PHBand = PHBand(*soil.PH)
		switch out.PHBand {
		case BandStronglyAcidic:
			out.Warnings = append(out.Warnings, fmt.Sprintf("Strongly acidic soil (pH %s): apply agricultural lime before sowing", ph))
		case BandSlightlyAcidic:
			out.Advice = append(out.Advice, fmt.Sprintf("Slightly acidic soil (pH %s) suits most crops; potato and tea do well here", ph))
		case BandNeutral:
			out.Advice = append(out.Advice, fmt.Sprintf("Neutral soil (pH %s) is ideal for most crops", ph))
		case BandAlkaline:
			out.Warnings = append(out.Warnings, fmt.Sprintf("Alkaline soil (pH %s): apply gypsum or elemental sulphur and add organic matter", ph))
		}
	}

	switch strings.ToLower(strings.TrimSpace(soil.Drainage)) {
	case "poor":
		out.Warnings = append(out.Warnings, "Poor drainage: use raised beds or field drains to avoid waterlogging")
	case "moderate":
		out.Advice = append(out.Advice, "Moderate drainage: avoid over-irrigating during heavy rain")
	}

	if soil.OrganicMatter != nil && soil.OrganicMatter.Level() < 3 {
		out.Advice = append(out.Advice, "Add compost or farmyard manure to raise organic matter")
	}

	if out.SoilType == "" {
		return out
	}
	var exact, partial []string
	for _, c := range crops {
		if c.Soil == nil || !scoring.SoilTypeMatches(out.SoilType, c.Soil.Types) {
			continue
		}
		if hasExact(c.Soil.Types, out.SoilType) {
			exact = append(exact, c.Name)
		} else {
			partial = append(partial, c.Name)
		}
	}
	matched := append(exact, partial...)
	if len(matched) > MaxSoilMatches {
		matched = matched[:MaxSoilMatches]
	}
	out.SuitableCrops = append(out.SuitableCrops, matched...)
	return out
}

func hasExact(types []string, label string) bool {
	for _, t := range types {
		if strings.EqualFold(strings.TrimSpace(t), label) {
			return true
		}
	}
	return false
}
