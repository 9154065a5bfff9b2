package services

import (
	"math"
	"strconv"
	"strings"

	"wayfarer/internal/models/response_models"
)

// ParseCost reads a free-text amount such as "$1,250.50" or "45 EUR" by
// dropping every character that is not a digit or a dot. Unparseable text,
// including "N/A" and "Free", costs 0.
func ParseCost(text string) float64 {
	var b strings.Builder
	for _, r := range text {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	v, err := strconv.ParseFloat(strings.Trim(b.String(), "."), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// DayCost sums the parsed costs of every activity regardless of category.
func DayCost(activities []response_models.EnrichedActivity) float64 {
	total := 0.0
	for _, a := range activities {
		total += ParseCost(a.ApproximateCost)
	}
	return total
}

// BuildCostBreakdown folds activity costs into the five category buckets.
// Costs with an unrecognised category are reported in Uncategorized and left
// out of Total.
func BuildCostBreakdown(days []response_models.ItineraryDay, budget float64) response_models.CostBreakdown {
	var cb response_models.CostBreakdown

	for _, day := range days {
		for _, a := range day.Activities {
			cost := ParseCost(a.ApproximateCost)
			switch strings.ToLower(strings.TrimSpace(a.Category)) {
			case "accommodation":
				cb.Accommodation += cost
			case "activity":
				cb.Activities += cost
			case "transport":
				cb.Transport += cost
			case "food":
				cb.Food += cost
			case "miscellaneous":
				cb.Miscellaneous += cost
			default:
				cb.Uncategorized += cost
			}
		}
	}

	cb.Total = cb.Accommodation + cb.Activities + cb.Transport + cb.Food + cb.Miscellaneous
	cb.IsOverBudget = cb.Total > budget
	if cb.IsOverBudget {
		cb.Overage = cb.Total - budget
	}
	return cb
}
