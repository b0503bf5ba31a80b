package engine

import (
	"context"
	"time"

	"vitacoach/internal/storage"
)

// DateLayout is the calendar-date key used for check-ins.
const DateLayout = "2006-01-02"

// DateKey formats t as a calendar date in t's location.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// Yesterday returns the calendar date before t.
func Yesterday(t time.Time) string {
	return DateKey(t.AddDate(0, 0, -1))
}

// NextStreak applies the check-in rule: the streak grows by one when the
// previous check-in was exactly yesterday, otherwise it restarts at 1.
func NextStreak(lastDate string, today time.Time, current int) (streak int, continued bool) {
	if lastDate != "" && lastDate == Yesterday(today) {
		return current + 1, true
	}
	return 1, false
}

// EffectiveStreak is the streak to display today: the stored value while
// the last check-in is today or yesterday, 0 once a day has been missed.
func EffectiveStreak(g storage.Gamification, today time.Time) int {
	switch g.LastCheckInDate {
	case DateKey(today), Yesterday(today):
		return g.CurrentStreak
	default:
		return 0
	}
}

type StreakStatus struct {
	Current         int    `json:"current"`
	Longest         int    `json:"longest"`
	LastCheckInDate string `json:"lastCheckInDate,omitempty"`
	CheckedInToday  bool   `json:"checkedInToday"`
	Broken          bool   `json:"broken"`
}

// Streak reports the display streak without mutating state.
func (s *Service) Streak(ctx context.Context) (*StreakStatus, error) {
	st, err := s.State(ctx)
	if err != nil {
		return nil, err
	}
	today := s.now()
	g := st.Gamification
	eff := EffectiveStreak(g, today)
	return &StreakStatus{
		Current:         eff,
		Longest:         g.LongestStreak,
		LastCheckInDate: g.LastCheckInDate,
		CheckedInToday:  g.LastCheckInDate == DateKey(today),
		Broken:          g.CurrentStreak > 0 && eff == 0,
	}, nil
}
