package availability

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// ZonedTimeToInstant combines a calendar date ("YYYY-MM-DD") and a wall-clock
// time of day ("HH:MM" or "HH:MM:SS") as observed in the named timezone and
// returns the equivalent UTC instant.
//
// The offset is resolved from the zone database for the specific date, so
// daylight-saving transitions are handled: 09:00 wall clock maps to a
// different UTC hour on either side of a transition. The zone is always an
// explicit parameter; the process-local timezone is never consulted.
func ZonedTimeToInstant(date, timeOfDay, tz string) (time.Time, error) {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.Time{}, &InvalidTimeInputError{Field: "timezone", Value: tz}
	}

	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return time.Time{}, &InvalidTimeInputError{Field: "date", Value: date}
	}

	h, m, s, err := parseClock(timeOfDay)
	if err != nil {
		return time.Time{}, err
	}

	return time.Date(day.Year(), day.Month(), day.Day(), h, m, s, 0, loc).UTC(), nil
}

// InstantToZonedMinutes returns the minutes elapsed between local midnight of
// referenceDate in the named timezone and the given instant. Used to project
// external busy windows onto the local minute axis; instants before midnight
// come back negative.
func InstantToZonedMinutes(instant time.Time, referenceDate, tz string) (int, error) {
	dayStart, err := ZonedTimeToInstant(referenceDate, "00:00:00", tz)
	if err != nil {
		return 0, err
	}

	diff := instant.Sub(dayStart)
	minutes := int(diff / time.Minute)
	if diff < 0 && diff%time.Minute != 0 {
		minutes--
	}
	return minutes, nil
}

// FormatTimeLabel renders a 24-hour "HH:MM" label for the instant as observed
// in the named timezone.
func FormatTimeLabel(instant time.Time, tz string) (string, error) {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return "", &InvalidTimeInputError{Field: "timezone", Value: tz}
	}
	return instant.In(loc).Format("15:04"), nil
}

// timeOfDayToMinutes converts "HH:MM" or "HH:MM:SS" to minutes since
// midnight. Seconds floor into the minute.
func timeOfDayToMinutes(timeOfDay string) (int, error) {
	h, m, s, err := parseClock(timeOfDay)
	if err != nil {
		return 0, err
	}
	return h*60 + m + s/60, nil
}

// minutesToClock is the inverse used when re-projecting candidate slots.
func minutesToClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d:00", minutes/60, minutes%60)
}

func parseClock(timeOfDay string) (h, m, s int, err error) {
	bad := &InvalidTimeInputError{Field: "time", Value: timeOfDay}

	parts := strings.Split(timeOfDay, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, 0, 0, bad
	}

	h, err = strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, 0, 0, bad
	}
	m, err = strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, 0, 0, bad
	}
	if len(parts) == 3 {
		s, err = strconv.Atoi(parts[2])
		if err != nil || s < 0 || s > 59 {
			return 0, 0, 0, bad
		}
	}
	return h, m, s, nil
}
