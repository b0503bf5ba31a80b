package engine

import (
	"context"
	"database/sql"
	"time"

	"vitacoach/internal/logging"
	"vitacoach/internal/storage"
	"vitacoach/internal/upload"
)

type Service struct {
	db       *sql.DB
	state    *storage.StateRepo
	accounts *storage.AccountRepo
	uploader *upload.Simulator
	log      logging.Logger
	now      func() time.Time
}

type Option func(*Service)

// WithClock replaces time.Now; tests use it to walk calendar days.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func WithLogger(l logging.Logger) Option {
	return func(s *Service) { s.log = l }
}

func WithUploader(u *upload.Simulator) Option {
	return func(s *Service) { s.uploader = u }
}

func NewService(db *sql.DB, opts ...Option) *Service {
	s := &Service{
		db:       db,
		state:    storage.NewStateRepo(db, DefaultState),
		accounts: storage.NewAccountRepo(db),
		uploader: upload.Default(),
		log:      logging.Discard(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) StateRepo() *storage.StateRepo     { return s.state }
func (s *Service) AccountRepo() *storage.AccountRepo { return s.accounts }

// Now returns the service clock's current time.
func (s *Service) Now() time.Time { return s.now() }

// DefaultState is the hard-coded blob a first load starts from.
func DefaultState() *storage.State {
	st := &storage.State{
		OnboardingStep: string(StepWelcome),
		Role:           string(DefaultRole),
		Gamification:   storage.Gamification{Level: LevelForXP(0)},
		CheckIns:       map[string]storage.CheckIn{},
	}
	normalizeState(st)
	return st
}

// normalizeState fills gaps in a stored blob: missing badge and challenge
// definitions are appended, nil collections are allocated and the level is
// re-derived. Unlock timestamps and joined flags already present are kept.
func normalizeState(st *storage.State) {
	if st.CheckIns == nil {
		st.CheckIns = map[string]storage.CheckIn{}
	}
	if st.OnboardingStep == "" {
		st.OnboardingStep = string(StepWelcome)
		if st.HasCompletedOnboarding {
			st.OnboardingStep = string(StepComplete)
		}
	}
	st.Role = string(parseStoredRole(st.Role))

	have := map[string]bool{}
	for _, b := range st.Gamification.Badges {
		have[b.ID] = true
	}
	for _, def := range builtinBadges() {
		if !have[def.ID] {
			st.Gamification.Badges = append(st.Gamification.Badges, def)
		}
	}

	have = map[string]bool{}
	for _, c := range st.Challenges {
		have[c.ID] = true
	}
	for _, def := range builtinChallenges() {
		if !have[def.ID] {
			st.Challenges = append(st.Challenges, def)
		}
	}

	if st.Gamification.XP < 0 {
		st.Gamification.XP = 0
	}
	st.Gamification.Level = LevelForXP(st.Gamification.XP)
}

// State returns the current blob, normalized.
func (s *Service) State(ctx context.Context) (*storage.State, error) {
	st, err := s.state.Load(ctx)
	if err != nil {
		return nil, err
	}
	normalizeState(st)
	return st, nil
}

// update is the single write path: load, normalize, mutate, persist.
func (s *Service) update(ctx context.Context, fn func(st *storage.State) error) (*storage.State, error) {
	return s.state.Update(ctx, func(st *storage.State) error {
		normalizeState(st)
		return fn(st)
	})
}

// updateTx is update with the transaction exposed so ledger rows commit
// together with the blob.
func (s *Service) updateTx(ctx context.Context, fn func(tx storage.DBTX, st *storage.State) error) (*storage.State, error) {
	return s.state.UpdateTx(ctx, func(tx storage.DBTX, st *storage.State) error {
		normalizeState(st)
		return fn(tx, st)
	})
}

// Reset wipes the blob back to defaults. Accounts are kept.
func (s *Service) Reset(ctx context.Context) error {
	if err := s.state.Reset(ctx); err != nil {
		return err
	}
	s.log.Info(ctx, "state reset")
	return nil
}
