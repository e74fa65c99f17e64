// Package types implements special types for the finance backend.
package types

import (
	"database/sql"
	"database/sql/driver"
	"regexp"
	"strings"
	"time"
)

// Date is a calendar day. The time of day is always 00:00 UTC.
type Date time.Time

var fullDate = regexp.MustCompile("^[0-9]{4}-[0-9]{2}-[0-9]{2}$")

// NewDate returns a new Date.
func NewDate(year int, month time.Month, day int) Date {
	return Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the Date on which a time occurs in that time's location.
func DateOf(t time.Time) Date {
	year, month, day := t.Date()
	return NewDate(year, month, day)
}

// Today returns the current date in UTC.
func Today() Date {
	return DateOf(time.Now().In(time.UTC))
}

// ParseDate parses a string in RFC3339 full-date format.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return Date{}, err
	}

	return DateOf(t), nil
}

// String returns the date formatted as YYYY-MM-DD.
func (d Date) String() string {
	return time.Time(d).Format(time.DateOnly)
}

// Time returns the date as time.Time at 00:00 UTC.
func (d Date) Time() time.Time {
	return time.Time(d)
}

// MarshalJSON implements the json.Marshaler interface.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
//
// Both "2006-01-02" and RFC3339 timestamps are accepted. For timestamps,
// everything except the calendar day in the timestamp's location is ignored.
func (d *Date) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		return nil
	}

	pattern := time.RFC3339
	if fullDate.MatchString(value) {
		pattern = time.DateOnly
	}

	t, err := time.Parse(pattern, value)
	if err != nil {
		return err
	}

	*d = DateOf(t)
	return nil
}

// UnmarshalParam allows gin to bind query parameters to a Date.
func (d *Date) UnmarshalParam(p string) error {
	return d.UnmarshalJSON([]byte(p))
}

// Scan writes the value from the database.
func (d *Date) Scan(value interface{}) (err error) {
	nullTime := &sql.NullTime{}
	err = nullTime.Scan(value)
	if !nullTime.Valid {
		*d = Date{}
		return err
	}

	*d = DateOf(nullTime.Time.In(time.UTC))
	return err
}

// Value returns the value for the SQL driver to write to the database.
func (d Date) Value() (driver.Value, error) {
	return time.Time(d).In(time.UTC), nil
}

// GormDataType defines the data type used by gorm the type.
func (Date) GormDataType() string {
	return "date"
}

// IsZero reports if the date is the zero value.
func (d Date) IsZero() bool {
	return time.Time(d).IsZero()
}

// AddDays returns the date n days later. n may be negative.
func (d Date) AddDays(n int) Date {
	return Date(time.Time(d).AddDate(0, 0, n))
}

// DaysUntil returns the number of whole days from d to e.
// The result is negative when e is before d.
func (d Date) DaysUntil(e Date) int {
	return int(time.Time(e).Sub(time.Time(d)).Hours() / 24)
}

// Before reports whether d is before e.
func (d Date) Before(e Date) bool {
	return time.Time(d).Before(time.Time(e))
}

// After reports whether d is after e.
func (d Date) After(e Date) bool {
	return time.Time(d).After(time.Time(e))
}

// Equal reports whether d and e are the same day.
func (d Date) Equal(e Date) bool {
	return time.Time(d).Equal(time.Time(e))
}
