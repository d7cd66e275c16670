package yamlbind

import (
	"fmt"
	"time"
)

// Layouts used for LocalDateTime text forms.
const (
	DateLayout          = "2006-01-02"
	LocalDateTimeLayout = "2006-01-02T15:04:05.999999999"
)

// parse layouts accepted by ParseLocalDateTime, tried in order.
var localLayouts = []string{
	LocalDateTimeLayout,
	"2006-01-02T15:04",
	DateLayout,
}

// LocalDateTime is a calendar date and wall-clock time without a zone or offset.
//
// The fields are stored in a time.Time pinned to UTC; the location carries no meaning.
type LocalDateTime struct {
	wall time.Time
}

// NewLocalDateTime builds a LocalDateTime from its calendar fields. Out-of-range
// values are normalized the way time.Date normalizes them.
func NewLocalDateTime(year int, month time.Month, day, hour, minute, sec, nsec int) LocalDateTime {
	return LocalDateTime{wall: time.Date(year, month, day, hour, minute, sec, nsec, time.UTC)}
}

// LocalDate builds a LocalDateTime at midnight of the given date.
func LocalDate(year int, month time.Month, day int) LocalDateTime {
	return NewLocalDateTime(year, month, day, 0, 0, 0, 0)
}

// LocalDateTimeOf projects an instant onto the UTC calendar: the result holds the
// UTC wall-clock fields of t and forgets its offset.
func LocalDateTimeOf(t time.Time) LocalDateTime {
	return LocalDateTime{wall: t.UTC()}
}

// ParseLocalDateTime parses an ISO local date-time ("2006-01-02T15:04:05[.fraction]",
// "2006-01-02T15:04") or a bare date ("2006-01-02", read as midnight).
func ParseLocalDateTime(s string) (LocalDateTime, error) {
	var firstErr error
	for _, layout := range localLayouts {
		t, err := time.ParseInLocation(layout, s, time.UTC)
		if err == nil {
			return LocalDateTime{wall: t}, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return LocalDateTime{}, Issues{{
		Path:    "/",
		Code:    CodeInvalidFormat,
		Message: fmt.Sprintf("invalid local date-time %q", s),
		Cause:   firstErr,
	}}
}

func (l LocalDateTime) Year() int             { return l.wall.Year() }
func (l LocalDateTime) Month() time.Month     { return l.wall.Month() }
func (l LocalDateTime) Day() int              { return l.wall.Day() }
func (l LocalDateTime) Hour() int             { return l.wall.Hour() }
func (l LocalDateTime) Minute() int           { return l.wall.Minute() }
func (l LocalDateTime) Second() int           { return l.wall.Second() }
func (l LocalDateTime) Nanosecond() int       { return l.wall.Nanosecond() }
func (l LocalDateTime) Weekday() time.Weekday { return l.wall.Weekday() }
func (l LocalDateTime) YearDay() int          { return l.wall.YearDay() }

// IsZero reports whether l is the zero value (January 1, year 1, 00:00:00).
func (l LocalDateTime) IsZero() bool { return l.wall.IsZero() }

// Date returns the date part as yyyy-MM-dd.
func (l LocalDateTime) Date() string { return l.wall.Format(DateLayout) }

// String returns the ISO local date-time, e.g. 2017-05-01T00:00:00. A fractional
// second is appended only when non-zero.
func (l LocalDateTime) String() string { return l.wall.Format(LocalDateTimeLayout) }

// Format formats the wall-clock fields with a time package layout. Zone verbs
// render as UTC.
func (l LocalDateTime) Format(layout string) string { return l.wall.Format(layout) }

// In returns the instant at which the wall clock in loc shows l.
func (l LocalDateTime) In(loc *time.Location) time.Time {
	return time.Date(l.Year(), l.Month(), l.Day(), l.Hour(), l.Minute(), l.Second(), l.Nanosecond(), loc)
}

// UTC returns the instant at which the UTC wall clock shows l.
func (l LocalDateTime) UTC() time.Time { return l.wall }

// TruncateToDate drops the time of day.
func (l LocalDateTime) TruncateToDate() LocalDateTime {
	return LocalDate(l.Year(), l.Month(), l.Day())
}

// AddDate adds years, months and days, normalizing like time.Time.AddDate.
func (l LocalDateTime) AddDate(years, months, days int) LocalDateTime {
	return LocalDateTime{wall: l.wall.AddDate(years, months, days)}
}

// Add adds a duration to the wall clock. No daylight saving rules apply.
func (l LocalDateTime) Add(d time.Duration) LocalDateTime {
	return LocalDateTime{wall: l.wall.Add(d)}
}

func (l LocalDateTime) Equal(o LocalDateTime) bool  { return l.wall.Equal(o.wall) }
func (l LocalDateTime) Before(o LocalDateTime) bool { return l.wall.Before(o.wall) }
func (l LocalDateTime) After(o LocalDateTime) bool  { return l.wall.After(o.wall) }

// Compare returns -1, 0 or +1 like time.Time.Compare.
func (l LocalDateTime) Compare(o LocalDateTime) int { return l.wall.Compare(o.wall) }
