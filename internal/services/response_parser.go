package services

import (
	"strings"

	"github.com/tidwall/gjson"
	"wayfarer/internal/models/response_models"
	"wayfarer/pkg/utils"
)

const missingField = "N/A"

// ParseDayActivities reads a model response shaped like
// {"Day3":{"Morning":{...},"Evening":{...}}} into activities, keeping the order
// the model emitted. Anything that does not have that shape yields an empty list.
func ParseDayActivities(raw string) []response_models.Activity {
	activities := []response_models.Activity{}

	cleaned := utils.CleanJSONResponse(raw)
	if !gjson.Valid(cleaned) {
		return activities
	}
	root := gjson.Parse(cleaned)
	if !root.IsObject() {
		return activities
	}

	var day gjson.Result
	found := false
	root.ForEach(func(key, value gjson.Result) bool {
		if strings.HasPrefix(key.String(), "Day") {
			day, found = value, true
			return false
		}
		return true
	})
	if !found || !day.IsObject() {
		return activities
	}

	day.ForEach(func(key, value gjson.Result) bool {
		if !value.IsObject() {
			return true
		}
		activities = append(activities, response_models.Activity{
			TimeOfDay:         key.String(),
			ActivityName:      fieldOrDefault(value, "activityName"),
			Description:       fieldOrDefault(value, "description"),
			ApproximateCost:   fieldOrDefault(value, "approximateCost"),
			SuggestedDuration: fieldOrDefault(value, "suggestedDuration"),
			Category:          fieldOrDefault(value, "category"),
		})
		return true
	})

	return activities
}

func fieldOrDefault(obj gjson.Result, name string) string {
	v := obj.Get(name)
	if !v.Exists() || v.Type == gjson.Null {
		return missingField
	}
	s := strings.TrimSpace(v.String())
	if s == "" {
		return missingField
	}
	return s
}
