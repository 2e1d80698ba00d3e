package tiervalues

import (
	"slices"
	"strings"
)

// TrackedTiers are the tiers the pipeline samples players from.
// High elo (MASTER and above) has no divisions and is not tracked.
var TrackedTiers = []string{"IRON", "BRONZE", "SILVER", "GOLD", "PLATINUM", "DIAMOND"}

// DivisionValues maps the roman numeral division labels to integers.
// IV is the weakest division of a tier.
var DivisionValues = map[string]int{
	"I":   1,
	"II":  2,
	"III": 3,
	"IV":  4,
}

// DivisionNames are the labels accepted by the league entries endpoint.
var DivisionNames = []string{"I", "II", "III", "IV"}

// IsTracked verifies if a tier label belongs to the recognized set.
func IsTracked(tier string) bool {
	return slices.Contains(TrackedTiers, strings.ToUpper(strings.TrimSpace(tier)))
}

// DivisionValue maps a division label to its integer value.
// Any unrecognized label returns false and must be treated as unranked.
func DivisionValue(division string) (int, bool) {
	value, ok := DivisionValues[strings.ToUpper(strings.TrimSpace(division))]
	return value, ok
}
