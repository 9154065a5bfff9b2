package services

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
	"wayfarer/internal/catalog"
)

const dayPlannerInstruction = "You are an expert local travel planner. " +
	"You design realistic, bookable days and you always answer with a single valid JSON object and nothing else."

// BuildDayPrompt writes the generation prompt for one itinerary day. The output
// depends only on its arguments.
func BuildDayPrompt(persona catalog.Persona, trip TripContext, module catalog.Module, dayNumber int, remainingBudget float64, isRetry bool) string {
	var b strings.Builder

	// Role
	fmt.Fprintf(&b, "You are planning a trip for %s", persona.Name)
	if persona.Tagline != "" {
		fmt.Fprintf(&b, " (\"%s\")", persona.Tagline)
	}
	b.WriteString(".\n")
	if persona.Description != "" {
		fmt.Fprintf(&b, "Traveller profile: %s\n", persona.Description)
	}
	b.WriteString("\n")

	// Trip context
	code := trip.CurrencyCode()
	b.WriteString("TRIP CONTEXT:\n")
	fmt.Fprintf(&b, "- Destination: %s\n", trip.Destination)
	fmt.Fprintf(&b, "- Day %d of %d\n", dayNumber, trip.DurationDays)
	fmt.Fprintf(&b, "- Total trip budget: %.2f %s\n", trip.Budget, code)
	fmt.Fprintf(&b, "- Remaining budget: %.2f %s\n", remainingBudget, code)
	fmt.Fprintf(&b, "- Target spend for this day: about %.2f %s\n", trip.AverageDailyBudget(), code)
	fmt.Fprintf(&b, "- Group size: %d\n", trip.GroupSize)
	if trip.Theme != "" {
		fmt.Fprintf(&b, "- Theme: %s\n", trip.Theme)
	}
	if trip.AccommodationPreference != "" {
		fmt.Fprintf(&b, "- Accommodation preference: %s\n", trip.AccommodationPreference)
	}
	if trip.TransportPreference != "" {
		fmt.Fprintf(&b, "- Transport preference: %s\n", trip.TransportPreference)
	}
	fmt.Fprintf(&b, "- All costs MUST be stated in %s. Do not use any other currency.\n", code)
	if isRetry {
		b.WriteString("- IMPORTANT: the previous plan for this day was over budget. Be stricter on cost, " +
			"find cheaper alternatives and keep the day's total within the target spend.\n")
	}
	b.WriteString("\n")

	// Theme of the day
	fmt.Fprintf(&b, "THEME OF THE DAY: %s\n%s\n\n", module.Name, module.Narrative)

	// Activity guidance
	b.WriteString("PLAN THESE ACTIVITIES:\n")
	for _, a := range module.Activities {
		fmt.Fprintf(&b, "- %s: %s", a.Type, a.Prompt)
		if len(a.Keywords) > 0 {
			fmt.Fprintf(&b, " (keywords: %s)", strings.Join(a.Keywords, ", "))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Output format
	lang := languageName(trip.Language)
	b.WriteString("OUTPUT FORMAT:\n")
	fmt.Fprintf(&b, "Return a single JSON object with exactly one top-level key \"Day%d\".\n", dayNumber)
	fmt.Fprintf(&b, "Its value is an object whose keys are the times of day (Morning, Afternoon, Evening) translated into %s, in chronological order.\n", lang)
	b.WriteString("Each time of day holds an object with these string fields:\n")
	b.WriteString("  \"activityName\", \"description\", \"approximateCost\", \"suggestedDuration\", \"category\".\n")
	fmt.Fprintf(&b, "Write activityName and description in %s.\n", lang)
	fmt.Fprintf(&b, "approximateCost is the total for the whole group, for example \"45.00 %s\".\n", code)
	b.WriteString("category must be exactly one of: Food, Activity, Transport, Accommodation, Miscellaneous.\n")
	b.WriteString("Example:\n")
	fmt.Fprintf(&b, `{"Day%d":{"Morning":{"activityName":"...","description":"...","approximateCost":"20.00 %s","suggestedDuration":"2 hours","category":"Activity"}}}`, dayNumber, code)
	b.WriteString("\n")

	return b.String()
}

// languageName renders a tag as "Vietnamese (Tiếng Việt)", or just the English
// name when both agree.
func languageName(tag language.Tag) string {
	if tag == language.Und {
		tag = language.English
	}
	english := display.English.Tags().Name(tag)
	self := display.Self.Name(tag)
	if english == "" {
		return tag.String()
	}
	if self == "" || self == english {
		return english
	}
	return fmt.Sprintf("%s (%s)", english, self)
}
