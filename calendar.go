package dtformat

import (
	"fmt"
	"log/slog"
	"time"
	_ "time/tzdata"
)

// Field indexes of the instant arrays accepted by Format and FormatRange.
const (
	yearIndex = iota
	monthIndex
	dayIndex
	hourIndex
	minuteIndex
	secondIndex
)

// maxCalendarYear bounds the years a calendar value accepts.
const maxCalendarYear = 1_000_000

// calendar turns field arrays into instants. Fields are read as wall-clock values in
// the system zone; the override zone, when set, is applied to the resulting instant.
type calendar struct {
	system   *time.Location
	override *time.Location
}

// newCalendar loads the system zone and the optional override. An unknown override id
// degrades to GMT.
func newCalendar(system System, timeZone string, logger *slog.Logger) calendar {
	cal := calendar{system: systemLocation(system)}
	if timeZone == "" {
		return cal
	}

	loc, err := time.LoadLocation(timeZone)
	if err != nil {
		logger.Warn("unknown time zone, using GMT", "timeZone", timeZone, "error", err)
		loc = time.FixedZone("GMT", 0)
	}
	cal.override = loc
	return cal
}

// location is the zone instants are rendered in.
func (c calendar) location() *time.Location {
	if c.override != nil {
		return c.override
	}
	return c.system
}

// instant builds a time from [year, month, day, hour, minute, second]. Missing trailing
// fields are zero and extra ones are ignored. Out-of-range values roll over.
func (c calendar) instant(fields []int) (time.Time, error) {
	get := func(index int) int {
		if index < len(fields) {
			return fields[index]
		}
		return 0
	}

	year := get(yearIndex)
	if year > maxCalendarYear || year < -maxCalendarYear {
		return time.Time{}, fmt.Errorf("year %d out of range", year)
	}

	t := time.Date(year, time.Month(get(monthIndex)), get(dayIndex),
		get(hourIndex), get(minuteIndex), get(secondIndex), 0, c.system)
	if c.override != nil {
		t = t.In(c.override)
	}
	return t, nil
}
