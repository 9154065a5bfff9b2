package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDayActivitiesHike(t *testing.T) {
	raw := `{"Day1":{"Morning":{"activityName":"Hike","approximateCost":"$50","description":"Ridge trail","suggestedDuration":"3 hours","category":"Activity"}}}`

	got := ParseDayActivities(raw)
	require.Len(t, got, 1)
	assert.Equal(t, "Morning", got[0].TimeOfDay)
	assert.Equal(t, "Hike", got[0].ActivityName)
	assert.Equal(t, "$50", got[0].ApproximateCost)
	assert.Equal(t, "Ridge trail", got[0].Description)
	assert.Equal(t, "3 hours", got[0].SuggestedDuration)
	assert.Equal(t, "Activity", got[0].Category)
}

func TestParseDayActivitiesIsIdempotent(t *testing.T) {
	raw := `{"Day2":{"Morning":{"activityName":"Market"},"Evening":{"activityName":"Show","approximateCost":"20 EUR"}}}`
	assert.Equal(t, ParseDayActivities(raw), ParseDayActivities(raw))
}

func TestParseDayActivitiesKeepsEmittedOrder(t *testing.T) {
	raw := `{"Day4":{"Tối":{"activityName":"c"},"Sáng":{"activityName":"a"},"Chiều":{"activityName":"b"}}}`

	got := ParseDayActivities(raw)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"Tối", "Sáng", "Chiều"}, []string{got[0].TimeOfDay, got[1].TimeOfDay, got[2].TimeOfDay})
}

func TestParseDayActivitiesDefaultsMissingFields(t *testing.T) {
	got := ParseDayActivities(`{"Day1":{"Afternoon":{"activityName":"Nap","description":null,"approximateCost":""}}}`)

	require.Len(t, got, 1)
	assert.Equal(t, "Nap", got[0].ActivityName)
	assert.Equal(t, "N/A", got[0].Description)
	assert.Equal(t, "N/A", got[0].ApproximateCost)
	assert.Equal(t, "N/A", got[0].SuggestedDuration)
	assert.Equal(t, "N/A", got[0].Category)
}

func TestParseDayActivitiesNumericCost(t *testing.T) {
	got := ParseDayActivities(`{"Day1":{"Morning":{"activityName":"Boat","approximateCost":35.5}}}`)
	require.Len(t, got, 1)
	assert.Equal(t, "35.5", got[0].ApproximateCost)
}

func TestParseDayActivitiesStripsFences(t *testing.T) {
	raw := "Here is your plan:\n```json\n{\"Day1\":{\"Morning\":{\"activityName\":\"Tea\"}}}\n```"
	got := ParseDayActivities(raw)
	require.Len(t, got, 1)
	assert.Equal(t, "Tea", got[0].ActivityName)
}

func TestParseDayActivitiesSkipsNonObjectEntries(t *testing.T) {
	got := ParseDayActivities(`{"Day1":{"Note":"bring water","Morning":{"activityName":"Walk"},"Extra":[1,2]}}`)
	require.Len(t, got, 1)
	assert.Equal(t, "Morning", got[0].TimeOfDay)
}

func TestParseDayActivitiesMalformed(t *testing.T) {
	cases := map[string]string{
		"empty":            "",
		"not json":         "sorry, I cannot help with that",
		"truncated":        `{"Day1":{"Morning":{"activityName":"Hike"`,
		"missing day key":  `{"Morning":{"activityName":"Hike"}}`,
		"day is a string":  `{"Day1":"Morning hike"}`,
		"day is an array":  `{"Day1":[{"activityName":"Hike"}]}`,
		"top level array":  `[{"Day1":{}}]`,
		"empty day object": `{"Day1":{}}`,
	}

	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			got := ParseDayActivities(raw)
			assert.NotNil(t, got)
			assert.Empty(t, got)
		})
	}
}
