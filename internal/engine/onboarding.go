package engine

import (
	"context"
	"strings"

	"vitacoach/internal/storage"
)

type OnboardingInput struct {
	Name        string
	Role        string
	Goals       string
	Preferences string
}

type OnboardingResult struct {
	From      OnboardingStep
	To        OnboardingStep
	Completed bool
	// Role is set when the step changed the active view.
	Role Role
}

func nextStep(cur OnboardingStep) OnboardingStep {
	for i, s := range onboardingSteps {
		if s == cur && i+1 < len(onboardingSteps) {
			return onboardingSteps[i+1]
		}
	}
	return StepComplete
}

func parseStep(s string) OnboardingStep {
	for _, known := range onboardingSteps {
		if OnboardingStep(s) == known {
			return known
		}
	}
	return StepWelcome
}

// AdvanceOnboarding consumes the input field belonging to the current step
// and moves one step forward. Only that field is read:
//   - welcome: optional Name
//   - role: Role (doctor|patient), required
//   - goals: Goals, required
//   - preferences: Preferences, optional; finishes onboarding
func (s *Service) AdvanceOnboarding(ctx context.Context, in OnboardingInput) (*OnboardingResult, error) {
	var (
		res    OnboardingResult
		email  string
		chosen Role
	)
	_, err := s.update(ctx, func(st *storage.State) error {
		if err := RequireAuth(st); err != nil {
			return err
		}
		cur := parseStep(st.OnboardingStep)
		if st.HasCompletedOnboarding || cur == StepComplete {
			return ErrOnboardingComplete
		}

		switch cur {
		case StepWelcome:
			if name := strings.TrimSpace(in.Name); name != "" {
				st.Profile.Name = name
			}
		case StepRole:
			if strings.TrimSpace(in.Role) == "" {
				return required("role")
			}
			role, err := ParseRole(in.Role)
			if err != nil {
				return err
			}
			if parseStoredRole(st.Role) != role {
				res.Role = role
			}
			st.Role = string(role)
			chosen = role
		case StepGoals:
			goals := strings.TrimSpace(in.Goals)
			if goals == "" {
				return required("goals")
			}
			st.Profile.Goals = goals
		case StepPreferences:
			st.Profile.Preferences = strings.TrimSpace(in.Preferences)
		}

		next := nextStep(cur)
		st.OnboardingStep = string(next)
		if next == StepComplete {
			st.HasCompletedOnboarding = true
		}
		res.From, res.To, res.Completed = cur, next, st.HasCompletedOnboarding
		email = st.AccountEmail
		return nil
	})
	if err != nil {
		return nil, err
	}
	if chosen != "" {
		if err := s.rememberRole(ctx, email, chosen); err != nil {
			return nil, err
		}
	}
	if res.Role != "" {
		s.log.Info(ctx, "view switched during onboarding", "role", res.Role)
	}
	if res.Completed {
		s.log.Info(ctx, "onboarding complete")
	}
	return &res, nil
}

// CompleteOnboarding walks every remaining step with the same input.
func (s *Service) CompleteOnboarding(ctx context.Context, in OnboardingInput) (*OnboardingResult, error) {
	var last *OnboardingResult
	for range onboardingSteps {
		res, err := s.AdvanceOnboarding(ctx, in)
		if err != nil {
			return nil, err
		}
		if last == nil {
			last = res
		} else {
			last.To = res.To
			last.Completed = res.Completed
			if res.Role != "" {
				last.Role = res.Role
			}
		}
		if res.Completed {
			return last, nil
		}
	}
	return last, nil
}

// RestartOnboarding sends the flow back to the welcome step.
func (s *Service) RestartOnboarding(ctx context.Context) error {
	_, err := s.update(ctx, func(st *storage.State) error {
		if err := RequireAuth(st); err != nil {
			return err
		}
		st.HasCompletedOnboarding = false
		st.OnboardingStep = string(StepWelcome)
		return nil
	})
	return err
}

// UpdateProfile overwrites the non-empty fields of the profile.
func (s *Service) UpdateProfile(ctx context.Context, in OnboardingInput) (*storage.Profile, error) {
	st, err := s.update(ctx, func(st *storage.State) error {
		if err := RequireAuth(st); err != nil {
			return err
		}
		if v := strings.TrimSpace(in.Name); v != "" {
			st.Profile.Name = v
		}
		if v := strings.TrimSpace(in.Goals); v != "" {
			st.Profile.Goals = v
		}
		if v := strings.TrimSpace(in.Preferences); v != "" {
			st.Profile.Preferences = v
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &st.Profile, nil
}
