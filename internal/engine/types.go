package engine

type Role string

const (
	RolePatient Role = "patient"
	RoleDoctor  Role = "doctor"
)

func (r Role) IsValid() bool {
	switch r {
	case RolePatient, RoleDoctor:
		return true
	default:
		return false
	}
}

// DefaultRole is the view a fresh install opens in.
const DefaultRole Role = RolePatient

type OnboardingStep string

const (
	StepWelcome     OnboardingStep = "welcome"
	StepRole        OnboardingStep = "role"
	StepGoals       OnboardingStep = "goals"
	StepPreferences OnboardingStep = "preferences"
	StepComplete    OnboardingStep = "complete"
)

// onboardingSteps is the fixed order the onboarding flow walks.
var onboardingSteps = []OnboardingStep{StepWelcome, StepRole, StepGoals, StepPreferences, StepComplete}

type BadgeKind string

const (
	BadgeKindXP     BadgeKind = "xp"
	BadgeKindStreak BadgeKind = "streak"
)
