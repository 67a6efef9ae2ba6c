package calendar

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planner/backend/internal/domain"
)

func block(title string, start, end time.Time) domain.TimeBlock {
	return domain.TimeBlock{ID: uuid.New(), OwnerID: "u1", Title: title, StartTime: start, EndTime: end}
}

func at(d, h, m int) time.Time {
	return time.Date(2023, 6, d, h, m, 0, 0, time.UTC)
}

func TestEngineAggregate_DayGeometry(t *testing.T) {
	e := Engine{Canvas: 1000}
	w := Window{Start: date(2023, 6, 15), End: date(2023, 6, 16)}

	out, err := e.Aggregate([]domain.TimeBlock{block("standup", at(15, 9, 0), at(15, 10, 0))}, ViewDay, w)
	require.NoError(t, err)
	require.Len(t, out, 1)

	p, ok := out[0].Geometry.(Position)
	require.True(t, ok, "geometry = %T, want Position", out[0].Geometry)
	assert.InDelta(t, 375.0, p.Top, 0.01)
	assert.InDelta(t, 41.67, p.Height, 0.01)
	assert.Equal(t, 0.0, p.Left)
	assert.Equal(t, 100.0, p.Width)
}

func TestEngineAggregate_OvernightBlockCappedAtEndOfDay(t *testing.T) {
	e := Engine{Canvas: 1440}
	w := Window{Start: date(2023, 6, 15), End: date(2023, 6, 16)}

	out, err := e.Aggregate([]domain.TimeBlock{block("night", at(15, 22, 0), at(16, 2, 0))}, ViewDay, w)
	require.NoError(t, err)
	require.Len(t, out, 1)

	p := out[0].Geometry.(Position)
	assert.InDelta(t, 1320.0, p.Top, 0.001)
	assert.InDelta(t, 119.0, p.Height, 0.001)
}

func TestEngineAggregate_WeekColumns(t *testing.T) {
	e := Engine{Canvas: 1000, FirstDayOfWeek: time.Sunday}
	w := Window{Start: date(2023, 6, 11), End: date(2023, 6, 18)}

	blocks := []domain.TimeBlock{
		block("sunday", at(11, 8, 0), at(11, 9, 0)),
		block("thursday", at(15, 9, 0), at(15, 10, 0)),
		block("saturday", at(17, 12, 0), at(17, 13, 0)),
	}
	out, err := e.Aggregate(blocks, ViewWeek, w)
	require.NoError(t, err)
	require.Len(t, out, 3)

	width := 100.0 / 7
	wantLeft := []float64{0, 4 * width, 6 * width}
	for i, vb := range out {
		p := vb.Geometry.(Position)
		assert.InDelta(t, wantLeft[i], p.Left, 0.0001, vb.Block.Title)
		assert.InDelta(t, width, p.Width, 0.0001, vb.Block.Title)
	}
	assert.InDelta(t, 375.0, out[1].Geometry.(Position).Top, 0.01)
}

func TestEngineAggregate_WeekColumnsFollowFirstDayOfWeek(t *testing.T) {
	e := Engine{Canvas: 1000, FirstDayOfWeek: time.Monday}
	w := Window{Start: date(2023, 6, 12), End: date(2023, 6, 19)}

	out, err := e.Aggregate([]domain.TimeBlock{block("sunday", at(18, 8, 0), at(18, 9, 0))}, ViewWeek, w)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.InDelta(t, 6*100.0/7, out[0].Geometry.(Position).Left, 0.0001)
}

func TestEngineAggregate_MonthBuckets(t *testing.T) {
	e := Engine{}
	w := Window{Start: date(2023, 6, 1), End: date(2023, 7, 1)}

	out, err := e.Aggregate([]domain.TimeBlock{block("a", at(15, 9, 0), at(15, 10, 0))}, ViewMonth, w)
	require.NoError(t, err)
	require.Len(t, out, 1)

	bucket, ok := out[0].Geometry.(DayBucket)
	require.True(t, ok)
	assert.Equal(t, date(2023, 6, 15), bucket.Date)
}

func TestEngineAggregate_FiltersOutsideWindowAndKeepsOrder(t *testing.T) {
	e := Engine{Canvas: 1000}
	w := Window{Start: date(2023, 6, 15), End: date(2023, 6, 16)}

	blocks := []domain.TimeBlock{
		block("before", at(14, 9, 0), at(14, 10, 0)),
		block("late", at(15, 18, 0), at(15, 19, 0)),
		block("ends at window start", at(14, 23, 0), at(15, 0, 0)),
		block("early", at(15, 7, 0), at(15, 8, 0)),
		block("starts at window end", at(16, 0, 0), at(16, 1, 0)),
	}
	out, err := e.Aggregate(blocks, ViewDay, w)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "late", out[0].Block.Title)
	assert.Equal(t, "early", out[1].Block.Title)
}

func TestEngineAggregate_UsesWindowLocation(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	e := Engine{Canvas: 1440}
	w := Window{Start: time.Date(2023, 6, 15, 0, 0, 0, 0, loc), End: time.Date(2023, 6, 16, 0, 0, 0, 0, loc)}

	out, err := e.Aggregate([]domain.TimeBlock{block("a", at(15, 7, 0), at(15, 8, 0))}, ViewDay, w)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.InDelta(t, 540.0, out[0].Geometry.(Position).Top, 0.001)
}

func TestEngineAggregate_RejectsUnknownView(t *testing.T) {
	_, err := Engine{}.Aggregate(nil, ViewKind("year"), Window{})
	var uErr *UnsupportedViewError
	assert.ErrorAs(t, err, &uErr)
}
