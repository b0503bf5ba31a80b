// Package calendar exports check-ins and joined challenges as an iCalendar
// feed.
package calendar

import (
	"fmt"
	"sort"
	"time"

	ical "github.com/arran4/golang-ical"

	"vitacoach/internal/storage"
)

const (
	ProductID = "-//vitacoach//calendar export//EN"
	uidDomain = "vitacoach.local"
)

// Build returns a calendar with one all-day event per check-in and one
// all-day event per joined challenge spanning its duration.
func Build(st *storage.State) (*ical.Calendar, error) {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(ProductID)
	cal.SetXWRCalName("Vitacoach")

	dates := make([]string, 0, len(st.CheckIns))
	for d := range st.CheckIns {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	for _, d := range dates {
		ci := st.CheckIns[d]
		day, err := time.Parse(time.DateOnly, d)
		if err != nil {
			return nil, fmt.Errorf("check-in %q: %w", d, err)
		}
		e := cal.AddEvent(fmt.Sprintf("checkin-%s@%s", d, uidDomain))
		e.SetDtStampTime(stamp(ci.CreatedAt, day))
		e.SetAllDayStartAt(day)
		e.SetAllDayEndAt(day.AddDate(0, 0, 1))
		e.SetSummary(fmt.Sprintf("Check-in: mood %d/5, energy %d/5", ci.Mood, ci.Energy))
		desc := fmt.Sprintf("Sleep: %.1fh", ci.SleepHours)
		if ci.Notes != "" {
			desc += "\n" + ci.Notes
		}
		e.SetDescription(desc)
	}

	for _, c := range st.Challenges {
		if !c.Joined || c.JoinedAt == nil {
			continue
		}
		j := c.JoinedAt.UTC()
		start := time.Date(j.Year(), j.Month(), j.Day(), 0, 0, 0, 0, time.UTC)
		days := c.DurationDays
		if days < 1 {
			days = 1
		}
		e := cal.AddEvent(fmt.Sprintf("challenge-%s@%s", c.ID, uidDomain))
		e.SetDtStampTime(j)
		e.SetAllDayStartAt(start)
		e.SetAllDayEndAt(start.AddDate(0, 0, days))
		e.SetSummary("Challenge: " + c.Title)
		e.SetDescription(fmt.Sprintf("%s (%d days, %d XP)", c.Description, c.DurationDays, c.XPReward))
	}

	return cal, nil
}

// Render serializes Build's calendar.
func Render(st *storage.State) (string, error) {
	cal, err := Build(st)
	if err != nil {
		return "", err
	}
	return cal.Serialize(), nil
}

func stamp(t, fallback time.Time) time.Time {
	if t.IsZero() {
		return fallback
	}
	return t.UTC()
}
