// Package ics writes time blocks as an iCalendar (RFC 5545) stream.
package ics

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/emersion/go-ical"
	"github.com/teambition/rrule-go"

	"planner/backend/internal/domain"
)

const (
	DefaultProductID = "-//Planner//Time Blocks//EN"

	propColor             = "COLOR"
	propPlannerRecurrence = "X-PLANNER-RECURRENCE"
	propPlannerVersion    = "X-PLANNER-VERSION"
)

// Write encodes blocks as one VCALENDAR with a VEVENT per block. Recurrence
// descriptors that parse as an RRULE are exported as RRULE; anything else is
// carried verbatim in X-PLANNER-RECURRENCE.
func Write(w io.Writer, productID string, blocks []domain.TimeBlock, now time.Time) error {
	if productID == "" {
		productID = DefaultProductID
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, productID)

	for _, b := range blocks {
		cal.Children = append(cal.Children, toEvent(b, now).Component)
	}

	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return fmt.Errorf("encode calendar: %w", err)
	}
	return nil
}

func toEvent(b domain.TimeBlock, now time.Time) *ical.Event {
	ev := ical.NewEvent()
	ev.Props.SetText(ical.PropUID, b.ID.String())
	ev.Props.SetText(ical.PropSummary, b.Title)
	ev.Props.SetDateTime(ical.PropDateTimeStamp, now.UTC())
	ev.Props.SetDateTime(ical.PropDateTimeStart, b.StartTime.UTC())
	ev.Props.SetDateTime(ical.PropDateTimeEnd, b.EndTime.UTC())

	if b.Description != "" {
		ev.Props.SetText(ical.PropDescription, b.Description)
	}
	if b.Color != "" {
		ev.Props.SetText(propColor, b.Color)
	}
	if b.TaskID != nil {
		ev.Props.SetText(ical.PropRelatedTo, b.TaskID.String())
	}
	if !b.UpdatedAt.IsZero() {
		ev.Props.SetDateTime(ical.PropLastModified, b.UpdatedAt.UTC())
	}
	ev.Props.SetText(propPlannerVersion, fmt.Sprint(b.Version))

	if rec := strings.TrimSpace(b.Recurrence); rec != "" {
		if rule, ok := recurrenceRule(rec); ok {
			p := ical.NewProp(ical.PropRecurrenceRule)
			p.Value = rule
			ev.Props.Set(p)
		} else {
			ev.Props.SetText(propPlannerRecurrence, rec)
		}
	}
	return ev
}

// recurrenceRule returns the RRULE value of descriptor when it is a valid rule.
func recurrenceRule(descriptor string) (string, bool) {
	rule := strings.TrimPrefix(descriptor, "RRULE:")
	if _, err := rrule.StrToRRule(rule); err != nil {
		return "", false
	}
	return rule, true
}
