// Package calendar turns a user's time blocks into day, week and month
// calendar payloads: window resolution, per-view geometry, pagination of
// large result sets and level-of-detail reduction.
package calendar

import (
	"fmt"
	"strings"
	"time"
)

type ViewKind string

const (
	ViewDay   ViewKind = "day"
	ViewWeek  ViewKind = "week"
	ViewMonth ViewKind = "month"
)

func (v ViewKind) Valid() bool {
	switch v {
	case ViewDay, ViewWeek, ViewMonth:
		return true
	}
	return false
}

// ParseViewKind validates caller input before it reaches the calculator.
func ParseViewKind(s string) (ViewKind, error) {
	v := ViewKind(strings.ToLower(strings.TrimSpace(s)))
	if !v.Valid() {
		return "", fmt.Errorf("unknown view %q", s)
	}
	return v, nil
}

// UnsupportedViewError is a programming error: a view kind outside the closed
// set reached code that expects a validated value.
type UnsupportedViewError struct {
	View ViewKind
}

func (e *UnsupportedViewError) Error() string {
	return fmt.Sprintf("unsupported calendar view %q", string(e.View))
}

// Window is the half-open range [Start, End) a view covers.
type Window struct {
	Start time.Time
	End   time.Time
}

func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

type Calculator struct {
	FirstDayOfWeek time.Weekday
}

// Resolve computes the canonical window of view around ref. Boundaries are
// midnights in ref's location, built with calendar arithmetic so a DST
// transition never shifts them.
func (c Calculator) Resolve(view ViewKind, ref time.Time) (Window, error) {
	day := Midnight(ref)
	switch view {
	case ViewDay:
		return Window{Start: day, End: day.AddDate(0, 0, 1)}, nil
	case ViewWeek:
		start := day.AddDate(0, 0, -c.weekColumn(day))
		return Window{Start: start, End: start.AddDate(0, 0, 7)}, nil
	case ViewMonth:
		start := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
		return Window{Start: start, End: start.AddDate(0, 1, 0)}, nil
	default:
		return Window{}, &UnsupportedViewError{View: view}
	}
}

// weekColumn is the number of days between the configured first day of the
// week and t's weekday.
func (c Calculator) weekColumn(t time.Time) int {
	return (int(t.Weekday()) - int(c.FirstDayOfWeek) + 7) % 7
}

// Midnight truncates t to the start of its calendar day in t's location.
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// ParseWeekday accepts English weekday names ("sunday", "Mon").
func ParseWeekday(s string) (time.Weekday, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for d := time.Sunday; d <= time.Saturday; d++ {
		name := strings.ToLower(d.String())
		if s == name || (len(s) >= 3 && strings.HasPrefix(name, s)) {
			return d, nil
		}
	}
	return time.Sunday, fmt.Errorf("unknown weekday %q", s)
}
