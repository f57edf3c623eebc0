package entities

import "strings"

// Tier is an ordinal availability or requirement level.
type Tier string

const (
	TierUnspecified Tier = ""
	TierLow         Tier = "Low"
	TierMedium      Tier = "Medium"
	TierHigh        Tier = "High"
	TierVeryHigh    Tier = "Very High"
)

// ParseTier is lenient about case and separators; unknown text yields TierUnspecified.
func ParseTier(s string) Tier {
	k := strings.ToLower(strings.TrimSpace(s))
	k = strings.NewReplacer(" ", "", "_", "", "-", "").Replace(k)
	switch k {
	case "low":
		return TierLow
	case "medium", "med", "moderate":
		return TierMedium
	case "high":
		return TierHigh
	case "veryhigh":
		return TierVeryHigh
	}
	return TierUnspecified
}

// Rank orders tiers Low=1 .. Very High=4; unspecified is 0.
func (t Tier) Rank() int {
	switch t {
	case TierLow:
		return 1
	case TierMedium:
		return 2
	case TierHigh:
		return 3
	case TierVeryHigh:
		return 4
	}
	return 0
}

func (t *Tier) UnmarshalText(b []byte) error {
	*t = ParseTier(string(b))
	return nil
}
