package calendar

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planner/backend/internal/domain"
)

func monthBlocks(t *testing.T) []ViewBlock {
	t.Helper()
	task := uuid.New()
	var blocks []domain.TimeBlock
	for i := 0; i < 5; i++ {
		b := block("d", at(15, 8+i, 0), at(15, 8+i, 30))
		if i == 0 {
			b.Color = "#ff0000"
			b.TaskID = &task
			b.TaskTitle = "Write report"
		}
		blocks = append(blocks, b)
	}
	for i := 0; i < 3; i++ {
		b := block("d+1", at(16, 8+i, 0), at(16, 8+i, 30))
		if i == 0 {
			b.Color = "#00ff00"
		}
		blocks = append(blocks, b)
	}
	blocks = append(blocks, block("single", at(20, 9, 0), at(20, 10, 0)))

	out, err := Engine{}.Aggregate(blocks, ViewMonth, Window{Start: date(2023, 6, 1), End: date(2023, 7, 1)})
	require.NoError(t, err)
	return out
}

func TestReduceForZoom_MonthLowZoomSummarizesBusyDays(t *testing.T) {
	r := Reducer{ZoomThreshold: 0.5}
	out := r.ReduceForZoom(monthBlocks(t), ViewMonth, 0.2)
	require.Len(t, out, 3)

	first, ok := out[0].(Summary)
	require.True(t, ok, "entry 0 = %T, want Summary", out[0])
	assert.Equal(t, "5 events", first.Label)
	assert.Equal(t, 5, first.Count)
	assert.Equal(t, "#ff0000", first.Color)
	assert.Equal(t, "Write report", first.TaskTitle)
	assert.Equal(t, date(2023, 6, 15), first.Date)
	assert.Len(t, first.BlockIDs, 5)
	assert.Equal(t, at(15, 8, 0), first.Start)
	assert.Equal(t, at(15, 12, 30), first.End)

	second, ok := out[1].(Summary)
	require.True(t, ok)
	assert.Equal(t, "3 events", second.Label)
	assert.Equal(t, "#00ff00", second.Color)

	single, ok := out[2].(ViewBlock)
	require.True(t, ok, "single-block day must stay a block")
	assert.Equal(t, "single", single.Block.Title)
}

func TestReduceForZoom_HighZoomOrOtherViewsUnchanged(t *testing.T) {
	r := Reducer{ZoomThreshold: 0.5}
	blocks := monthBlocks(t)

	out := r.ReduceForZoom(blocks, ViewMonth, 0.5)
	assert.Len(t, out, len(blocks))

	out = r.ReduceForZoom(blocks, ViewWeek, 0.1)
	assert.Len(t, out, len(blocks))
	for _, e := range out {
		_, ok := e.(ViewBlock)
		assert.True(t, ok)
	}
}

func TestReduceForMobile_StripsAndTruncates(t *testing.T) {
	r := Reducer{ShortDescriptionLen: 10}
	b := block("a", at(15, 9, 0), at(15, 10, 0))
	b.Description = strings.Repeat("x", 40)
	b.Recurrence = "FREQ=DAILY"
	vb, err := Engine{Canvas: 1000}.Aggregate([]domain.TimeBlock{b}, ViewDay, Window{Start: date(2023, 6, 15), End: date(2023, 6, 16)})
	require.NoError(t, err)

	out := r.ReduceForMobile(vb, ViewDay)
	require.Len(t, out, 1)
	m, ok := out[0].(MobileBlock)
	require.True(t, ok)
	assert.Equal(t, b.ID, m.ID)
	assert.Equal(t, 10, len([]rune(m.ShortDescription)))
	assert.True(t, strings.HasSuffix(m.ShortDescription, "…"))
	assert.IsType(t, Position{}, m.Geometry)
}

func TestReduceForMobile_MonthAlwaysAggregates(t *testing.T) {
	out := Reducer{}.ReduceForMobile(monthBlocks(t), ViewMonth)
	require.Len(t, out, 3)
	assert.IsType(t, Summary{}, out[0])
	assert.IsType(t, Summary{}, out[1])
	assert.IsType(t, MobileBlock{}, out[2])
}

func TestTruncateKeepsShortStrings(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "", truncate("", 10))
}
