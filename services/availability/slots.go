package availability

import (
	"time"

	"superlife/models"
)

// GenerateSlots walks each open interval at the configured step and emits a
// slot wherever the full requested duration fits without touching a busy
// window.
//
// The step is a fixed offering cadence, deliberately decoupled from the
// requested duration: a slot is offered at every step boundary where the
// duration fits, not immediately after the previous booking ends. Candidate
// starts repeated by overlapping rules are emitted once.
func GenerateSlots(open []Interval, busy BusyResult, durationMin, stepMin int, date, tz, tzLabel string) ([]models.Slot, error) {
	slots := make([]models.Slot, 0)
	if busy.AllDayBlocked {
		return slots, nil
	}

	seen := make(map[int]struct{})
	for _, window := range open {
		for start := window.Start; start+durationMin <= window.End; start += stepMin {
			if _, dup := seen[start]; dup {
				continue
			}
			end := start + durationMin

			conflict := false
			for _, b := range busy.Windows {
				if Overlaps(start, end, b.Start, b.End) {
					conflict = true
					break
				}
			}
			if conflict {
				continue
			}

			startAt, err := ZonedTimeToInstant(date, minutesToClock(start), tz)
			if err != nil {
				return nil, err
			}
			endAt := startAt.Add(time.Duration(durationMin) * time.Minute)

			label, err := FormatTimeLabel(startAt, tz)
			if err != nil {
				return nil, err
			}

			seen[start] = struct{}{}
			slots = append(slots, models.Slot{
				Start:         startAt.Format(time.RFC3339),
				End:           endAt.Format(time.RFC3339),
				Label:         label,
				TimezoneLabel: tzLabel,
			})
		}
	}

	return slots, nil
}
