package calendar

import (
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	DefaultZoomThreshold       = 0.5
	DefaultShortDescriptionLen = 100
)

// Entry is one item of a reduced view: a ViewBlock, a MobileBlock or a Summary.
type Entry interface {
	isEntry()
}

// Summary stands in for several blocks of one day. It is display-only and
// never written back to the store.
type Summary struct {
	Date      time.Time
	Count     int
	Label     string
	Color     string
	TaskID    *uuid.UUID
	TaskTitle string
	BlockIDs  []uuid.UUID
	Start     time.Time
	End       time.Time
}

// MobileBlock is the reduced field set sent to constrained clients.
type MobileBlock struct {
	ID               uuid.UUID
	Title            string
	ShortDescription string
	Start            time.Time
	End              time.Time
	Color            string
	TaskID           *uuid.UUID
	TaskTitle        string
	Geometry         Geometry
}

func (ViewBlock) isEntry()   {}
func (MobileBlock) isEntry() {}
func (Summary) isEntry()     {}

type Reducer struct {
	// ZoomThreshold is the zoom factor below which month views collapse busy days.
	ZoomThreshold       float64
	ShortDescriptionLen int
}

// ReduceForZoom collapses month-view days holding more than one block into a
// Summary when zoom is below the threshold. Every other combination returns
// the blocks unchanged.
func (r Reducer) ReduceForZoom(blocks []ViewBlock, view ViewKind, zoom float64) []Entry {
	if view != ViewMonth || zoom >= r.threshold() {
		out := make([]Entry, 0, len(blocks))
		for _, b := range blocks {
			out = append(out, b)
		}
		return out
	}
	return collapseDays(blocks, func(b ViewBlock) Entry { return b })
}

// ReduceForMobile strips blocks to MobileBlock. Month views are always
// collapsed per day regardless of zoom.
func (r Reducer) ReduceForMobile(blocks []ViewBlock, view ViewKind) []Entry {
	toMobile := func(b ViewBlock) Entry { return r.mobile(b) }
	if view == ViewMonth {
		return collapseDays(blocks, toMobile)
	}
	out := make([]Entry, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, toMobile(b))
	}
	return out
}

func (r Reducer) threshold() float64 {
	if r.ZoomThreshold <= 0 {
		return DefaultZoomThreshold
	}
	return r.ZoomThreshold
}

func (r Reducer) mobile(vb ViewBlock) MobileBlock {
	b := vb.Block
	return MobileBlock{
		ID:               b.ID,
		Title:            b.Title,
		ShortDescription: truncate(b.Description, r.shortLen()),
		Start:            b.StartTime,
		End:              b.EndTime,
		Color:            b.Color,
		TaskID:           b.TaskID,
		TaskTitle:        b.TaskTitle,
		Geometry:         vb.Geometry,
	}
}

func (r Reducer) shortLen() int {
	if r.ShortDescriptionLen <= 0 {
		return DefaultShortDescriptionLen
	}
	return r.ShortDescriptionLen
}

// collapseDays groups blocks by day in order of first appearance. Single-block
// days go through single; larger days become one Summary.
func collapseDays(blocks []ViewBlock, single func(ViewBlock) Entry) []Entry {
	type group struct {
		day    time.Time
		blocks []ViewBlock
	}
	var groups []*group
	byDay := make(map[time.Time]*group)
	for _, b := range blocks {
		key, day := bucketDate(b)
		g, ok := byDay[key]
		if !ok {
			g = &group{day: day}
			byDay[key] = g
			groups = append(groups, g)
		}
		g.blocks = append(g.blocks, b)
	}

	out := make([]Entry, 0, len(groups))
	for _, g := range groups {
		if len(g.blocks) == 1 {
			out = append(out, single(g.blocks[0]))
			continue
		}
		out = append(out, summarize(g.day, g.blocks))
	}
	return out
}

func summarize(day time.Time, blocks []ViewBlock) Summary {
	first := blocks[0].Block
	s := Summary{
		Date:      day,
		Count:     len(blocks),
		Label:     strconv.Itoa(len(blocks)) + " events",
		Color:     first.Color,
		TaskID:    first.TaskID,
		TaskTitle: first.TaskTitle,
		BlockIDs:  make([]uuid.UUID, 0, len(blocks)),
		Start:     first.StartTime,
		End:       first.EndTime,
	}
	for _, vb := range blocks {
		b := vb.Block
		s.BlockIDs = append(s.BlockIDs, b.ID)
		if b.StartTime.Before(s.Start) {
			s.Start = b.StartTime
		}
		if b.EndTime.After(s.End) {
			s.End = b.EndTime
		}
	}
	return s
}

// bucketDate prefers the month-view bucket and falls back to the start date.
// key is the wall date in UTC so equal days compare equal as map keys.
func bucketDate(b ViewBlock) (key, day time.Time) {
	day = Midnight(b.Block.StartTime)
	if bucket, ok := b.Geometry.(DayBucket); ok {
		day = bucket.Date
	}
	y, m, d := day.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), day
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n-1]) + "…"
}
