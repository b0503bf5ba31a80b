package storage

import "time"

// State is the single persisted blob. It is serialized verbatim as JSON under
// StateKey on every change.
type State struct {
	IsAuthenticated        bool   `json:"isAuthenticated"`
	AccountEmail           string `json:"accountEmail,omitempty"`
	HasCompletedOnboarding bool   `json:"hasCompletedOnboarding"`
	OnboardingStep         string `json:"onboardingStep"`
	Role                   string `json:"role"`

	Profile        Profile            `json:"profile"`
	Gamification   Gamification       `json:"gamification"`
	CheckIns       map[string]CheckIn `json:"checkIns"`
	Accountability Accountability     `json:"accountability"`
	Challenges     []Challenge        `json:"challenges"`
	Uploads        []Upload           `json:"uploads"`
}

type Profile struct {
	Name        string `json:"name"`
	Goals       string `json:"goals"`
	Preferences string `json:"preferences"`
}

type Gamification struct {
	XP              int     `json:"xp"`
	Level           int     `json:"level"`
	CurrentStreak   int     `json:"currentStreak"`
	LongestStreak   int     `json:"longestStreak"`
	LastCheckInDate string  `json:"lastCheckInDate,omitempty"`
	Badges          []Badge `json:"badges"`
}

type Badge struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Icon        string     `json:"icon"`
	Kind        string     `json:"kind"`
	Requirement int        `json:"requirement"`
	UnlockedAt  *time.Time `json:"unlockedAt"`
}

type CheckIn struct {
	Date       string    `json:"date"`
	Mood       int       `json:"mood"`
	Energy     int       `json:"energy"`
	SleepHours float64   `json:"sleepHours"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

type Accountability struct {
	PartnerEmail string              `json:"partnerEmail"`
	Contract     *CommitmentContract `json:"commitmentContract,omitempty"`
}

type CommitmentContract struct {
	Goal        string    `json:"goal"`
	StakeCents  int64     `json:"stakeCents"`
	AntiCharity string    `json:"antiCharity,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Challenge struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	DurationDays int        `json:"durationDays"`
	XPReward     int        `json:"xpReward"`
	Participants int        `json:"participants"`
	Joined       bool       `json:"joined"`
	JoinedAt     *time.Time `json:"joinedAt,omitempty"`
}

type Upload struct {
	ID          string     `json:"id"`
	FileName    string     `json:"fileName"`
	Status      string     `json:"status"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

type Account struct {
	ID           string
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}

// XPEvent is one row of the XP ledger.
type XPEvent struct {
	ID         int64     `json:"id"`
	OccurredAt time.Time `json:"occurredAt"`
	Reason     string    `json:"reason"`
	Amount     int       `json:"amount"`
	XPTotal    int       `json:"xpTotal"`
	Level      int       `json:"level"`
}
