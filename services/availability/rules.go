package availability

import (
	"time"

	"superlife/models"
)

// OpenIntervalsFor filters rules to the active entries for the given weekday
// and converts their wall-clock bounds to minutes since midnight, preserving
// the order the rules arrived in. Overlapping rules are not merged; the slot
// generator de-duplicates candidate starts instead.
//
// A rule with an unparsable time fails the resolution: silently skipping bad
// admin data would quietly hide or expose booking windows.
func OpenIntervalsFor(weekday time.Weekday, rules []models.AvailabilityRule) ([]Interval, error) {
	var open []Interval
	for _, rule := range rules {
		if !rule.Active || rule.DayOfWeek != int(weekday) {
			continue
		}
		start, err := timeOfDayToMinutes(rule.StartTime)
		if err != nil {
			return nil, err
		}
		end, err := timeOfDayToMinutes(rule.EndTime)
		if err != nil {
			return nil, err
		}
		open = append(open, Interval{Start: start, End: end})
	}
	return open, nil
}
