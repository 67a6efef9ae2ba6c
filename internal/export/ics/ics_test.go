package ics

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/emersion/go-ical"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planner/backend/internal/domain"
)

func TestWrite_OneEventPerBlock(t *testing.T) {
	task := uuid.New()
	start := time.Date(2023, 6, 15, 9, 0, 0, 0, time.UTC)
	blocks := []domain.TimeBlock{
		{ID: uuid.New(), Title: "Deep work", Description: "no meetings", StartTime: start, EndTime: start.Add(2 * time.Hour), Color: "#336699", TaskID: &task, Version: 3},
		{ID: uuid.New(), Title: "Gym", StartTime: start.Add(3 * time.Hour), EndTime: start.Add(4 * time.Hour), Recurrence: "RRULE:FREQ=WEEKLY;BYDAY=MO,WE", Version: 1},
		{ID: uuid.New(), Title: "Review", StartTime: start.Add(5 * time.Hour), EndTime: start.Add(6 * time.Hour), Recurrence: "every other tuesday", Version: 1},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "", blocks, start))

	cal, err := ical.NewDecoder(&buf).Decode()
	require.NoError(t, err)

	events := cal.Events()
	require.Len(t, events, 3)

	summary, err := events[0].Props.Text(ical.PropSummary)
	require.NoError(t, err)
	assert.Equal(t, "Deep work", summary)

	dtstart, err := events[0].DateTimeStart(time.UTC)
	require.NoError(t, err)
	assert.True(t, dtstart.Equal(start))

	assert.Equal(t, task.String(), events[0].Props.Get(ical.PropRelatedTo).Value)
	assert.Equal(t, "#336699", events[0].Props.Get(propColor).Value)

	rrule := events[1].Props.Get(ical.PropRecurrenceRule)
	require.NotNil(t, rrule)
	assert.Equal(t, "FREQ=WEEKLY;BYDAY=MO,WE", rrule.Value)

	assert.Nil(t, events[2].Props.Get(ical.PropRecurrenceRule))
	assert.Equal(t, "every other tuesday", events[2].Props.Get(propPlannerRecurrence).Value)
}

func TestWrite_UsesProductID(t *testing.T) {
	start := time.Date(2023, 6, 15, 9, 0, 0, 0, time.UTC)
	var buf bytes.Buffer
	err := Write(&buf, "-//Test//EN", []domain.TimeBlock{{ID: uuid.New(), Title: "a", StartTime: start, EndTime: start.Add(time.Hour)}}, start)
	require.NoError(t, err)
	assert.True(t, strings.Contains(buf.String(), "PRODID:-//Test//EN"))
}
