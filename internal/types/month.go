// Package types implements special types for the Smart Expense Tracker.
package types

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Month is a month in a specific year.
type Month time.Time

// NewMonth returns a new Month.
func NewMonth(year int, month time.Month) Month {
	return Month(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
}

// String returns the time formatted as YYYY-MM.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", time.Time(m).Year(), time.Time(m).Month())
}

// MarshalJSON implements the json.Marshaler interface.
func (m Month) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", m.String())), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// The month is accepted as "YYYY-MM", as a full date or as an RFC3339
// timestamp. Everything except the year and month is ignored.
func (m *Month) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		return nil
	}

	for _, pattern := range []string{"2006-01", "2006-01-02", "2006-01-02T15:04:05Z07:00"} {
		t, err := time.Parse(pattern, value)
		if err == nil {
			*m = NewMonth(t.Year(), t.Month())
			return nil
		}
	}

	return fmt.Errorf("parsing time %q as month failed", value)
}

// MonthOf returns the Month in which a time occurs in that time's location.
func MonthOf(t time.Time) Month {
	year, month, _ := t.Date()
	return Month(time.Date(year, month, 1, 0, 0, 0, 0, t.Location()))
}

// ParseMonth parses a "YYYY-MM" string and returns the Month value it represents
func ParseMonth(s string) (Month, error) {
	return ParseMonthInLocation(s, time.UTC)
}

// ParseMonthInLocation parses a "YYYY-MM" string into a Month in the given
// location. The location decides the day boundaries of everything derived
// from the month, so day-keyed views parse it in the caller's zone.
func ParseMonthInLocation(s string, loc *time.Location) (Month, error) {
	match, err := regexp.MatchString("^[0-9]{4}-[0-9]{2}$", s)
	if err != nil {
		return Month{}, err
	}

	if !match {
		return Month{}, fmt.Errorf("parsing time %q as month failed", s)
	}

	t, err := time.ParseInLocation("2006-01", s, loc)
	if err != nil {
		return Month{}, err
	}

	return MonthOf(t), nil
}

// Scan writes the value from the database.
func (m *Month) Scan(value interface{}) (err error) {
	nullTime := &sql.NullTime{}
	err = nullTime.Scan(value)
	*m = Month(nullTime.Time)
	return err
}

// Value returns the value for the SQL driver to write to the database.
func (m Month) Value() (driver.Value, error) {
	year, month, _ := time.Time(m).Date()
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC), nil
}

// GormDataType defines the data type used by gorm for the type.
func (Month) GormDataType() string {
	return "date"
}

// IsZero reports if the month is the zero value.
func (m Month) IsZero() bool {
	return time.Time(m).IsZero()
}

// AddDate adds a specified amount of years and months.
func (m Month) AddDate(years, months int) Month {
	return Month(time.Time(m).AddDate(years, months, 0))
}

// Before reports whether the month instant m is before n.
func (m Month) Before(n Month) bool {
	return time.Time(m).Before(time.Time(n))
}

// After reports whether the month instant m is after n.
func (m Month) After(n Month) bool {
	return time.Time(m).After(time.Time(n))
}

// Equal reports whether m and n represent the same month.
func (m Month) Equal(n Month) bool {
	return time.Time(m).Year() == time.Time(n).Year() && time.Time(m).Month() == time.Time(n).Month()
}

// Contains reports whether the time instant is in the month.
//
// The instant is interpreted in the month's location, so that a late-night
// entry near a month boundary lands in the month its owner saw it in.
func (m Month) Contains(t time.Time) bool {
	local := t.In(time.Time(m).Location())
	return local.Year() == time.Time(m).Year() && local.Month() == time.Time(m).Month()
}

// Days returns the number of days in the month.
func (m Month) Days() int {
	first := time.Time(m)
	return first.AddDate(0, 1, 0).Add(-time.Nanosecond).Day()
}

// FirstDay returns the Day the month starts with.
func (m Month) FirstDay() Day {
	return Day(time.Time(m))
}
