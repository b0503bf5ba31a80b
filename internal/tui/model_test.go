package tui

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"vitacoach/internal/engine"
	"vitacoach/internal/storage"
)

func newTestBoard(t *testing.T) boardModel {
	t.Helper()
	ctx := context.Background()
	db, err := storage.Open(ctx, filepath.Join(t.TempDir(), "tui.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	svc := engine.NewService(db)
	if _, err := svc.Register(ctx, "pat@example.com", "correct-horse", engine.RolePatient); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, err := svc.Login(ctx, "pat@example.com", "correct-horse"); err != nil {
		t.Fatalf("Login: %v", err)
	}

	m := newBoardModel(ctx, svc)
	next, _ := m.Update(m.loadCmd()())
	return next.(boardModel)
}

func press(t *testing.T, m boardModel, key tea.KeyMsg) boardModel {
	t.Helper()
	next, cmd := m.Update(key)
	m = next.(boardModel)
	// Run the command chain to completion, following reloads.
	for cmd != nil {
		msg := cmd()
		next, cmd = m.Update(msg)
		m = next.(boardModel)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestBoardRendersSummary(t *testing.T) {
	m := newTestBoard(t)
	view := m.View()
	if !strings.Contains(view, "Level 1") {
		t.Fatalf("expected level in header:\n%s", view)
	}
	if !strings.Contains(view, "Hydration Week") {
		t.Fatalf("expected challenges in view:\n%s", view)
	}
}

func TestBoardCheckIn(t *testing.T) {
	m := newTestBoard(t)
	m = press(t, m, runes("+"))
	if m.mood != defaultMood+1 {
		t.Fatalf("mood=%d, want %d", m.mood, defaultMood+1)
	}

	m = press(t, m, runes("c"))
	if m.summary.XP != engine.CheckInXP || !m.summary.Streak.CheckedInToday {
		t.Fatalf("check-in not reflected: %+v", m.summary)
	}

	m = press(t, m, runes("c"))
	if !strings.Contains(m.lastLog, "already checked in") {
		t.Fatalf("lastLog=%q", m.lastLog)
	}
}

func TestBoardToggleChallenge(t *testing.T) {
	m := newTestBoard(t)
	m = press(t, m, runes("j"))
	if m.selected != 1 {
		t.Fatalf("selected=%d, want 1", m.selected)
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if !m.challenges[1].Joined {
		t.Fatalf("expected challenge %s joined", m.challenges[1].ID)
	}
	if len(m.summary.Joined) != 1 {
		t.Fatalf("joined=%d, want 1", len(m.summary.Joined))
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if m.challenges[1].Joined {
		t.Fatalf("expected challenge %s left", m.challenges[1].ID)
	}
}
