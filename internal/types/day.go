package types

import (
	"fmt"
	"strings"
	"time"
)

// Day is a calendar day in a specific time zone.
//
// It is the canonical "local day" key: two instants belong to the same day
// exactly when their Day values are equal, regardless of how far apart the
// instants are. The zone is carried by the underlying time value, never
// hard-coded, so callers control what "local" means.
type Day time.Time

// NewDay returns the Day for a calendar date in the given location.
func NewDay(year int, month time.Month, day int, loc *time.Location) Day {
	return Day(time.Date(year, month, day, 0, 0, 0, 0, loc))
}

// DayOf returns the Day in which a time occurs in that time's location.
func DayOf(t time.Time) Day {
	year, month, day := t.Date()
	return Day(time.Date(year, month, day, 0, 0, 0, 0, t.Location()))
}

// String returns the day formatted as YYYY-MM-DD.
func (d Day) String() string {
	return time.Time(d).Format("2006-01-02")
}

// MarshalJSON implements the json.Marshaler interface.
func (d Day) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", d.String())), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// The day is expected as a "YYYY-MM-DD" string.
func (d *Day) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		return nil
	}

	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return err
	}

	*d = NewDay(t.Year(), t.Month(), t.Day(), time.UTC)
	return nil
}

// ParseDay parses a "YYYY-MM-DD" string into a Day in the given location.
func ParseDay(s string, loc *time.Location) (Day, error) {
	t, err := time.ParseInLocation("2006-01-02", s, loc)
	if err != nil {
		return Day{}, err
	}

	return DayOf(t), nil
}

// IsZero reports if the day is the zero value.
func (d Day) IsZero() bool {
	return time.Time(d).IsZero()
}

// Date returns the year, month and day the Day identifies.
func (d Day) Date() (int, time.Month, int) {
	return time.Time(d).Date()
}

// Weekday returns the day of the week, with Sunday = 0.
func (d Day) Weekday() time.Weekday {
	return time.Time(d).Weekday()
}

// AddDate adds the specified number of days, staying in the same location.
func (d Day) AddDate(days int) Day {
	return Day(time.Time(d).AddDate(0, 0, days))
}

// Equal reports whether d and e identify the same calendar date.
func (d Day) Equal(e Day) bool {
	dy, dm, dd := time.Time(d).Date()
	ey, em, ed := time.Time(e).Date()
	return dy == ey && dm == em && dd == ed
}

// Contains reports whether the time instant falls on this day.
//
// The instant is converted into the day's location before comparing, so
// membership is decided by the local calendar date, not the UTC one.
func (d Day) Contains(t time.Time) bool {
	return d.Equal(DayOf(t.In(time.Time(d).Location())))
}

// Month returns the Month this day is part of.
func (d Day) Month() Month {
	return MonthOf(time.Time(d))
}

// Start returns the first instant of the day.
func (d Day) Start() time.Time {
	return time.Time(d)
}
