package engine

import (
	"context"

	"vitacoach/internal/storage"
)

// Summary is the dashboard snapshot shared by the status command, the
// board and the API.
type Summary struct {
	Authenticated bool            `json:"authenticated"`
	Email         string          `json:"email,omitempty"`
	Role          Role            `json:"role"`
	Onboarded     bool            `json:"onboarded"`
	Step          OnboardingStep  `json:"onboardingStep"`
	Profile       storage.Profile `json:"profile"`

	XP           int `json:"xp"`
	Level        int `json:"level"`
	XPToNext     int `json:"xpToNext"`
	LevelFloorXP int `json:"levelFloorXp"`

	Streak       StreakStatus        `json:"streak"`
	BadgesEarned int                 `json:"badgesEarned"`
	BadgesTotal  int                 `json:"badgesTotal"`
	Joined       []storage.Challenge `json:"joinedChallenges"`

	Partner  string                      `json:"partnerEmail,omitempty"`
	Contract *storage.CommitmentContract `json:"commitmentContract,omitempty"`
	Uploads  int                         `json:"uploads"`
}

func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	st, err := s.State(ctx)
	if err != nil {
		return nil, err
	}
	streak, err := s.Streak(ctx)
	if err != nil {
		return nil, err
	}

	g := st.Gamification
	sum := &Summary{
		Authenticated: st.IsAuthenticated,
		Email:         st.AccountEmail,
		Role:          parseStoredRole(st.Role),
		Onboarded:     st.HasCompletedOnboarding,
		Step:          parseStep(st.OnboardingStep),
		Profile:       st.Profile,
		XP:            g.XP,
		Level:         g.Level,
		XPToNext:      XPToNextLevel(g.XP),
		LevelFloorXP:  XPRequiredForLevel(g.Level),
		Streak:        *streak,
		BadgesEarned:  CountUnlocked(g.Badges),
		BadgesTotal:   len(g.Badges),
		Partner:       st.Accountability.PartnerEmail,
		Contract:      st.Accountability.Contract,
		Uploads:       len(st.Uploads),
	}
	for _, c := range st.Challenges {
		if c.Joined {
			sum.Joined = append(sum.Joined, c)
		}
	}
	return sum, nil
}
