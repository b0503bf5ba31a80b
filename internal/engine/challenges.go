package engine

import (
	"context"
	"fmt"

	"vitacoach/internal/storage"
)

// builtinChallenges is the fixed challenge list with seeded participant
// counts. IDs are stored in the blob; keep them stable.
func builtinChallenges() []storage.Challenge {
	return []storage.Challenge{
		{ID: "hydration_7", Title: "Hydration Week", Description: "Drink 2 litres of water every day for 7 days", DurationDays: 7, XPReward: 150, Participants: 1243},
		{ID: "steps_10k_14", Title: "10k Steps", Description: "Walk 10,000 steps a day for two weeks", DurationDays: 14, XPReward: 300, Participants: 2871},
		{ID: "sleep_8h_7", Title: "Sleep Reset", Description: "Get 8 hours of sleep for 7 nights", DurationDays: 7, XPReward: 200, Participants: 956},
		{ID: "mindful_21", Title: "Mindful Minutes", Description: "Meditate 10 minutes a day for 21 days", DurationDays: 21, XPReward: 400, Participants: 612},
	}
}

func findChallenge(st *storage.State, id string) (*storage.Challenge, error) {
	for i := range st.Challenges {
		if st.Challenges[i].ID == id {
			return &st.Challenges[i], nil
		}
	}
	return nil, fmt.Errorf("challenge %q: %w", id, ErrNotFound)
}

func (s *Service) Challenges(ctx context.Context) ([]storage.Challenge, error) {
	st, err := s.State(ctx)
	if err != nil {
		return nil, err
	}
	return st.Challenges, nil
}

func (s *Service) JoinChallenge(ctx context.Context, id string) (*storage.Challenge, error) {
	var out storage.Challenge
	if _, err := s.update(ctx, func(st *storage.State) error {
		if err := RequireRole(st, RolePatient); err != nil {
			return err
		}
		c, err := findChallenge(st, id)
		if err != nil {
			return err
		}
		if c.Joined {
			return fmt.Errorf("challenge %q: %w", id, ErrAlreadyJoined)
		}
		now := s.now().UTC()
		c.Joined = true
		c.JoinedAt = &now
		c.Participants++
		out = *c
		return nil
	}); err != nil {
		return nil, err
	}
	s.log.Info(ctx, "challenge joined", "challenge", id)
	return &out, nil
}

func (s *Service) LeaveChallenge(ctx context.Context, id string) (*storage.Challenge, error) {
	var out storage.Challenge
	if _, err := s.update(ctx, func(st *storage.State) error {
		if err := RequireRole(st, RolePatient); err != nil {
			return err
		}
		c, err := findChallenge(st, id)
		if err != nil {
			return err
		}
		if !c.Joined {
			return fmt.Errorf("challenge %q: %w", id, ErrNotJoined)
		}
		c.Joined = false
		c.JoinedAt = nil
		if c.Participants > 0 {
			c.Participants--
		}
		out = *c
		return nil
	}); err != nil {
		return nil, err
	}
	s.log.Info(ctx, "challenge left", "challenge", id)
	return &out, nil
}

// ToggleChallenge joins or leaves depending on the current flag.
func (s *Service) ToggleChallenge(ctx context.Context, id string) (*storage.Challenge, error) {
	st, err := s.State(ctx)
	if err != nil {
		return nil, err
	}
	c, err := findChallenge(st, id)
	if err != nil {
		return nil, err
	}
	if c.Joined {
		return s.LeaveChallenge(ctx, id)
	}
	return s.JoinChallenge(ctx, id)
}
