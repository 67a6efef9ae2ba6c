package calendar

import (
	"time"

	"planner/backend/internal/domain"
)

const (
	DefaultCanvas = 1000.0

	minutesPerDay = 24 * 60
	lastMinute    = minutesPerDay - 1
	daysPerWeek   = 7
)

// Geometry is the rendering annotation attached to a block. It is a closed
// set: Position for day and week views, DayBucket for month view.
type Geometry interface {
	isGeometry()
}

// Position places a block on a time axis. Top and Height are in canvas units
// (a whole day spans the canvas); Left and Width are percentages of the row.
type Position struct {
	Top    float64 `json:"top"`
	Height float64 `json:"height"`
	Left   float64 `json:"left"`
	Width  float64 `json:"width"`
}

// DayBucket groups a block under the calendar date of its start.
type DayBucket struct {
	Date time.Time `json:"date"`
}

func (Position) isGeometry()  {}
func (DayBucket) isGeometry() {}

type ViewBlock struct {
	Block    domain.TimeBlock
	Geometry Geometry
}

type Engine struct {
	Canvas         float64
	FirstDayOfWeek time.Weekday
}

// Aggregate annotates the blocks that intersect w with view geometry. Input
// order is preserved; callers pass blocks sorted by start.
func (e Engine) Aggregate(blocks []domain.TimeBlock, view ViewKind, w Window) ([]ViewBlock, error) {
	if !view.Valid() {
		return nil, &UnsupportedViewError{View: view}
	}

	loc := w.Start.Location()
	out := make([]ViewBlock, 0, len(blocks))
	for _, b := range blocks {
		if !b.Overlaps(w.Start, w.End) {
			continue
		}
		out = append(out, ViewBlock{Block: b, Geometry: e.geometry(b, view, loc)})
	}
	return out, nil
}

func (e Engine) geometry(b domain.TimeBlock, view ViewKind, loc *time.Location) Geometry {
	start := b.StartTime.In(loc)
	switch view {
	case ViewMonth:
		return DayBucket{Date: Midnight(start)}
	case ViewWeek:
		p := e.timeAxis(start, b.EndTime.In(loc))
		column := Calculator{FirstDayOfWeek: e.FirstDayOfWeek}.weekColumn(start)
		p.Width = 100.0 / daysPerWeek
		p.Left = float64(column) * p.Width
		return p
	default:
		p := e.timeAxis(start, b.EndTime.In(loc))
		p.Left = 0
		p.Width = 100
		return p
	}
}

// timeAxis positions [start,end) within start's day. A block that ends on a
// later date is cut at 23:59 of its start day.
func (e Engine) timeAxis(start, end time.Time) Position {
	canvas := e.Canvas
	if canvas <= 0 {
		canvas = DefaultCanvas
	}

	startMin := minutesSinceMidnight(start)
	endMin := minutesSinceMidnight(end)
	if !Midnight(end).Equal(Midnight(start)) {
		endMin = lastMinute
	}
	if endMin < startMin {
		endMin = startMin
	}

	return Position{
		Top:    startMin / minutesPerDay * canvas,
		Height: (endMin - startMin) / minutesPerDay * canvas,
	}
}

// minutesSinceMidnight reads the wall clock, so geometry stays aligned with
// the hour grid on DST transition days.
func minutesSinceMidnight(t time.Time) float64 {
	h, m, s := t.Clock()
	return float64(h*60+m) + float64(s)/60
}
