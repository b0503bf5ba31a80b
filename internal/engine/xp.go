package engine

import (
	"context"
	"fmt"
	"math"
	"strings"

	"vitacoach/internal/storage"
)

const (
	// XPPerLevel is the width of every level band: level = floor(xp/500)+1.
	XPPerLevel = 500

	// CheckInXP is awarded for each daily check-in.
	CheckInXP = 50

	// MaxAward caps a single AwardXP grant.
	MaxAward = 100_000
)

// LevelForXP derives the display level. Negative XP is treated as zero.
func LevelForXP(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return xp/XPPerLevel + 1
}

// XPRequiredForLevel returns the XP at which level begins.
func XPRequiredForLevel(level int) int {
	if level <= 1 {
		return 0
	}
	return (level - 1) * XPPerLevel
}

// XPToNextLevel returns how much XP is left until the next level.
func XPToNextLevel(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return XPRequiredForLevel(LevelForXP(xp)+1) - xp
}

type AwardResult struct {
	XPAwarded   int             `json:"xpAwarded"`
	XPTotal     int             `json:"xpTotal"`
	LevelBefore int             `json:"levelBefore"`
	LevelAfter  int             `json:"levelAfter"`
	LevelUp     bool            `json:"levelUp"`
	Unlocked    []storage.Badge `json:"unlocked"`
}

// applyXP adds amount to the blob, re-derives the level and runs the badge
// scan. It is the only place XP changes. The total saturates at MaxInt.
func (s *Service) applyXP(st *storage.State, amount int) AwardResult {
	g := &st.Gamification
	before := LevelForXP(g.XP)
	if amount > math.MaxInt-g.XP {
		amount = math.MaxInt - g.XP
	}
	g.XP += amount
	g.Level = LevelForXP(g.XP)

	return AwardResult{
		XPAwarded:   amount,
		XPTotal:     g.XP,
		LevelBefore: before,
		LevelAfter:  g.Level,
		LevelUp:     g.Level > before,
		Unlocked:    UnlockBadges(g, s.now()),
	}
}

// AwardXP grants amount XP for reason (e.g. completing a plan action).
func (s *Service) AwardXP(ctx context.Context, amount int, reason string) (*AwardResult, error) {
	if amount <= 0 {
		return nil, ValidationError{Field: "amount", Reason: "must be positive"}
	}
	if amount > MaxAward {
		return nil, ValidationError{Field: "amount", Reason: fmt.Sprintf("must be at most %d", MaxAward)}
	}

	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = "manual award"
	}

	var res AwardResult
	if _, err := s.updateTx(ctx, func(tx storage.DBTX, st *storage.State) error {
		if err := RequireAuth(st); err != nil {
			return err
		}
		res = s.applyXP(st, amount)
		return s.recordAward(ctx, tx, res, reason)
	}); err != nil {
		return nil, err
	}

	s.logAward(ctx, res, reason)
	return &res, nil
}

func (s *Service) recordAward(ctx context.Context, tx storage.DBTX, res AwardResult, reason string) error {
	_, err := storage.NewXPEventRepo(tx).Insert(ctx, storage.XPEvent{
		OccurredAt: s.now(),
		Reason:     reason,
		Amount:     res.XPAwarded,
		XPTotal:    res.XPTotal,
		Level:      res.LevelAfter,
	})
	return err
}

// History returns the newest XP ledger entries first. limit <= 0 returns
// all of them.
func (s *Service) History(ctx context.Context, limit int) ([]storage.XPEvent, error) {
	return storage.NewXPEventRepo(s.db).List(ctx, limit)
}

func (s *Service) logAward(ctx context.Context, res AwardResult, reason string) {
	s.log.Debug(ctx, "xp awarded", "xp", res.XPAwarded, "total", res.XPTotal, "reason", reason)
	if res.LevelUp {
		s.log.Info(ctx, "level up", "from", res.LevelBefore, "to", res.LevelAfter)
	}
	for _, b := range res.Unlocked {
		s.log.Info(ctx, "badge unlocked", "badge", b.ID)
	}
}
