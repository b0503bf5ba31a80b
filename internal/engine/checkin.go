package engine

import (
	"context"
	"math"
	"strings"

	"vitacoach/internal/storage"
)

const checkInReason = "daily check-in"

type CheckInInput struct {
	Mood       int
	Energy     int
	SleepHours float64
	Notes      string
}

type CheckInResult struct {
	Date      string      `json:"date"`
	Streak    int         `json:"streak"`
	Longest   int         `json:"longest"`
	Continued bool        `json:"continued"`
	Award     AwardResult `json:"award"`
}

func (in CheckInInput) validate() error {
	if in.Mood < 1 || in.Mood > 5 {
		return ValidationError{Field: "mood", Reason: "must be between 1 and 5"}
	}
	if in.Energy < 1 || in.Energy > 5 {
		return ValidationError{Field: "energy", Reason: "must be between 1 and 5"}
	}
	if math.IsNaN(in.SleepHours) || in.SleepHours < 0 || in.SleepHours > 24 {
		return ValidationError{Field: "sleep", Reason: "must be between 0 and 24 hours"}
	}
	return nil
}

// CheckIn records today's check-in, advances the streak, awards CheckInXP
// and runs the badge scan. A second check-in on the same date is rejected
// with ErrAlreadyCheckedIn and changes nothing.
func (s *Service) CheckIn(ctx context.Context, in CheckInInput) (*CheckInResult, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	now := s.now()
	today := DateKey(now)

	var res CheckInResult
	if _, err := s.updateTx(ctx, func(tx storage.DBTX, st *storage.State) error {
		if err := RequireRole(st, RolePatient); err != nil {
			return err
		}
		g := &st.Gamification
		if g.LastCheckInDate == today {
			return ErrAlreadyCheckedIn
		}
		if _, ok := st.CheckIns[today]; ok {
			return ErrAlreadyCheckedIn
		}

		streak, continued := NextStreak(g.LastCheckInDate, now, g.CurrentStreak)
		g.CurrentStreak = streak
		if streak > g.LongestStreak {
			g.LongestStreak = streak
		}
		g.LastCheckInDate = today

		st.CheckIns[today] = storage.CheckIn{
			Date:       today,
			Mood:       in.Mood,
			Energy:     in.Energy,
			SleepHours: in.SleepHours,
			Notes:      strings.TrimSpace(in.Notes),
			CreatedAt:  now.UTC(),
		}

		res = CheckInResult{
			Date:      today,
			Streak:    streak,
			Longest:   g.LongestStreak,
			Continued: continued,
			Award:     s.applyXP(st, CheckInXP),
		}
		return s.recordAward(ctx, tx, res.Award, checkInReason)
	}); err != nil {
		return nil, err
	}

	s.log.Info(ctx, "checked in", "date", res.Date, "streak", res.Streak)
	s.logAward(ctx, res.Award, checkInReason)
	return &res, nil
}
