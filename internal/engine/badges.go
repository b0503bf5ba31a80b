package engine

import (
	"context"
	"time"

	"vitacoach/internal/storage"
)

// builtinBadges is the fixed badge list. IDs are stored in the blob; keep
// them stable.
func builtinBadges() []storage.Badge {
	return []storage.Badge{
		// XP milestones
		xpBadge("first_steps", "First Steps", "Earn 100 XP", "🌱", 100),
		xpBadge("rising_star", "Rising Star", "Earn 500 XP", "⭐", 500),
		xpBadge("dedicated", "Dedicated", "Earn 1,000 XP", "💪", 1000),
		xpBadge("xp_legend", "Legend", "Earn 2,500 XP", "🏆", 2500),

		// Check-in streaks
		streakBadge("streak_3", "Warming Up", "Check in 3 days in a row", "🔥", 3),
		streakBadge("week_warrior", "Week Warrior", "Check in 7 days in a row", "📅", 7),
		streakBadge("fortnight", "Fortnight Focus", "Check in 14 days in a row", "🎯", 14),
		streakBadge("habit_hero", "Habit Hero", "Check in 30 days in a row", "🦸", 30),
	}
}

func xpBadge(id, name, desc, icon string, xp int) storage.Badge {
	return storage.Badge{ID: id, Name: name, Description: desc, Icon: icon, Kind: string(BadgeKindXP), Requirement: xp}
}

func streakBadge(id, name, desc, icon string, days int) storage.Badge {
	return storage.Badge{ID: id, Name: name, Description: desc, Icon: icon, Kind: string(BadgeKindStreak), Requirement: days}
}

// badgeMet reports whether g satisfies b's requirement.
func badgeMet(g *storage.Gamification, b storage.Badge) bool {
	switch BadgeKind(b.Kind) {
	case BadgeKindXP:
		return g.XP >= b.Requirement
	case BadgeKindStreak:
		return g.CurrentStreak >= b.Requirement
	default:
		return false
	}
}

// UnlockBadges stamps every locked badge whose requirement is met with now
// and returns the newly unlocked ones. Unlocked badges are never re-locked
// or re-stamped.
func UnlockBadges(g *storage.Gamification, now time.Time) []storage.Badge {
	var unlocked []storage.Badge
	for i := range g.Badges {
		b := &g.Badges[i]
		if b.UnlockedAt != nil {
			continue
		}
		if !badgeMet(g, *b) {
			continue
		}
		t := now.UTC()
		b.UnlockedAt = &t
		unlocked = append(unlocked, *b)
	}
	return unlocked
}

// CountUnlocked returns how many badges have been earned.
func CountUnlocked(badges []storage.Badge) int {
	n := 0
	for _, b := range badges {
		if b.UnlockedAt != nil {
			n++
		}
	}
	return n
}

// BadgeProgress is a badge with how far the player is toward it.
type BadgeProgress struct {
	storage.Badge
	Current int  `json:"current"`
	Earned  bool `json:"earned"`
}

// Badges returns every badge with progress toward it.
func (s *Service) Badges(ctx context.Context) ([]BadgeProgress, error) {
	st, err := s.State(ctx)
	if err != nil {
		return nil, err
	}
	g := st.Gamification
	out := make([]BadgeProgress, 0, len(g.Badges))
	for _, b := range g.Badges {
		cur := g.XP
		if BadgeKind(b.Kind) == BadgeKindStreak {
			cur = g.LongestStreak
		}
		out = append(out, BadgeProgress{Badge: b, Current: cur, Earned: b.UnlockedAt != nil})
	}
	return out, nil
}
