package services

import (
	"time"

	"wayfarer/internal/catalog"
)

// ClassifySeason maps a calendar month to one of the five coarse seasons:
// Dec-Feb winter, Mar-Apr spring, May-Jun summer, Jul-Sep monsoon, Oct-Nov autumn.
func ClassifySeason(month time.Month) catalog.Season {
	switch month {
	case time.March, time.April:
		return catalog.SeasonSpring
	case time.May, time.June:
		return catalog.SeasonSummer
	case time.July, time.August, time.September:
		return catalog.SeasonMonsoon
	case time.October, time.November:
		return catalog.SeasonAutumn
	default:
		return catalog.SeasonWinter
	}
}
