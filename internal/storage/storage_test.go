package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func newTestDB(t *testing.T) *StateRepo {
	t.Helper()
	ctx := context.Background()

	db, err := Open(ctx, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return NewStateRepo(db, func() *State {
		return &State{Role: "patient", OnboardingStep: "welcome", Gamification: Gamification{Level: 1}}
	})
}

func TestStateLoadDefaultsWithoutWriting(t *testing.T) {
	repo := newTestDB(t)
	ctx := context.Background()

	st, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if st.Role != "patient" || st.Gamification.Level != 1 {
		t.Fatalf("unexpected defaults: %+v", st)
	}

	_, ok, err := NewKVRepo(repo.db).Get(ctx, StateKey)
	if err != nil {
		t.Fatalf("kv get: %v", err)
	}
	if ok {
		t.Fatalf("expected no stored blob before first save")
	}
}

func TestStateUpdatePersists(t *testing.T) {
	repo := newTestDB(t)
	ctx := context.Background()

	if _, err := repo.Update(ctx, func(st *State) error {
		st.Gamification.XP = 120
		st.Profile.Goals = "sleep more"
		return nil
	}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	st, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if st.Gamification.XP != 120 || st.Profile.Goals != "sleep more" {
		t.Fatalf("state not persisted: %+v", st)
	}
}

func TestStateUpdateRollsBackOnError(t *testing.T) {
	repo := newTestDB(t)
	ctx := context.Background()

	boom := errors.New("boom")
	_, err := repo.Update(ctx, func(st *State) error {
		st.Gamification.XP = 999
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err=%v, want boom", err)
	}

	st, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if st.Gamification.XP != 0 {
		t.Fatalf("xp=%d, want 0 after failed update", st.Gamification.XP)
	}
}

func TestStateReset(t *testing.T) {
	repo := newTestDB(t)
	ctx := context.Background()

	if _, err := repo.Update(ctx, func(st *State) error {
		st.IsAuthenticated = true
		return nil
	}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if err := repo.Reset(ctx); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	st, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if st.IsAuthenticated {
		t.Fatalf("expected defaults after reset")
	}
}

func TestAccountDuplicateEmail(t *testing.T) {
	repo := newTestDB(t)
	ctx := context.Background()
	accounts := NewAccountRepo(repo.db)

	created, err := accounts.Create(ctx, "ada@example.com", "hash", "doctor")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected generated id")
	}

	if _, err := accounts.Create(ctx, "ada@example.com", "hash2", "patient"); !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("err=%v, want ErrDuplicateEmail", err)
	}

	got, err := accounts.GetByEmail(ctx, "ada@example.com")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if got == nil || got.Role != "doctor" {
		t.Fatalf("unexpected account: %+v", got)
	}

	missing, err := accounts.GetByEmail(ctx, "nobody@example.com")
	if err != nil {
		t.Fatalf("GetByEmail missing: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for unknown email")
	}
}

func TestXPEventsRollBackWithState(t *testing.T) {
	repo := newTestDB(t)
	ctx := context.Background()
	events := NewXPEventRepo(repo.db)

	if _, err := repo.UpdateTx(ctx, func(tx DBTX, st *State) error {
		st.Gamification.XP = 50
		_, err := NewXPEventRepo(tx).Insert(ctx, XPEvent{OccurredAt: time.Now(), Reason: "check-in", Amount: 50, XPTotal: 50, Level: 1})
		return err
	}); err != nil {
		t.Fatalf("UpdateTx: %v", err)
	}

	boom := errors.New("boom")
	if _, err := repo.UpdateTx(ctx, func(tx DBTX, st *State) error {
		if _, err := NewXPEventRepo(tx).Insert(ctx, XPEvent{OccurredAt: time.Now(), Reason: "lost", Amount: 10, XPTotal: 60, Level: 1}); err != nil {
			return err
		}
		return boom
	}); !errors.Is(err, boom) {
		t.Fatalf("err=%v, want boom", err)
	}

	list, err := events.List(ctx, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 1 || list[0].Reason != "check-in" || list[0].Amount != 50 {
		t.Fatalf("unexpected events %+v", list)
	}

	last, err := events.Last(ctx)
	if err != nil || last == nil || last.ID != list[0].ID {
		t.Fatalf("Last=%+v err=%v", last, err)
	}

	if err := repo.Reset(ctx); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if last, err := events.Last(ctx); err != nil || last != nil {
		t.Fatalf("expected empty ledger after reset, got %+v err=%v", last, err)
	}
}
