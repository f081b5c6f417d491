package dateutil

import (
	"errors"
	"fmt"
	"time"
)

const (
	DateLayout  = "2006-01-02"
	MonthLayout = "2006-01"
)

var (
	ErrInvalidDate  = errors.New("invalid date format, expected YYYY-MM-DD")
	ErrInvalidMonth = errors.New("invalid month format, expected YYYY-MM")
)

func ParseDate(v string) (time.Time, error) {
	t, err := time.Parse(DateLayout, v)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// Month is a calendar month in UTC.
type Month struct {
	Year  int
	Month time.Month
}

func ParseMonth(v string) (Month, error) {
	t, err := time.Parse(MonthLayout, v)
	if err != nil {
		return Month{}, ErrInvalidMonth
	}
	return Month{Year: t.Year(), Month: t.Month()}, nil
}

func NewMonth(year, month int) (Month, error) {
	if month < 1 || month > 12 || year < 1900 || year > 9999 {
		return Month{}, ErrInvalidMonth
	}
	return Month{Year: year, Month: time.Month(month)}, nil
}

func MonthOf(t time.Time) Month {
	t = t.UTC()
	return Month{Year: t.Year(), Month: t.Month()}
}

func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

func (m Month) Start() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

// End is the last day of the month, inclusive.
func (m Month) End() time.Time {
	return m.Start().AddDate(0, 1, -1)
}

func (m Month) Days() int {
	return m.End().Day()
}

func (m Month) Contains(t time.Time) bool {
	d := TruncateDay(t)
	return !d.Before(m.Start()) && !d.After(m.End())
}

func TruncateDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysInclusive counts calendar days between start and end, both included.
func DaysInclusive(start, end time.Time) int {
	return int(TruncateDay(end).Sub(TruncateDay(start)).Hours()/24) + 1
}

// EachDay calls fn for each day from start through end.
func EachDay(start, end time.Time, fn func(day time.Time)) {
	for d := TruncateDay(start); !d.After(TruncateDay(end)); d = d.AddDate(0, 0, 1) {
		fn(d)
	}
}

// CountWeekdays counts days in [start, end] that are not Sunday.
func CountWeekdays(start, end time.Time) int {
	n := 0
	EachDay(start, end, func(d time.Time) {
		if d.Weekday() != time.Sunday {
			n++
		}
	})
	return n
}
