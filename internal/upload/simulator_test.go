package upload

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRunReachesComplete(t *testing.T) {
	s := &Simulator{Tick: time.Millisecond, Step: 30, ProcessingDelay: time.Millisecond}

	var seen []Progress
	got, err := s.Run(context.Background(), "labs.pdf", func(p Progress) { seen = append(seen, p) })
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got.Status != StatusComplete || got.Percent != 100 {
		t.Fatalf("final=%+v, want complete at 100", got)
	}

	// 0, 30, 60, 90, 100 while uploading, then processing, then complete.
	wantPercents := []int{0, 30, 60, 90, 100, 100, 100}
	if len(seen) != len(wantPercents) {
		t.Fatalf("progress events=%d, want %d: %+v", len(seen), len(wantPercents), seen)
	}
	for i, p := range seen {
		if p.Percent != wantPercents[i] {
			t.Fatalf("event %d percent=%d, want %d", i, p.Percent, wantPercents[i])
		}
	}
	if seen[len(seen)-2].Status != StatusProcessing {
		t.Fatalf("expected processing before complete, got %s", seen[len(seen)-2].Status)
	}
}

func TestRunCancelledReportsFailed(t *testing.T) {
	s := &Simulator{Tick: time.Hour, Step: 10}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, err := s.Run(ctx, "labs.pdf", nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err=%v, want context.Canceled", err)
	}
	if got.Status != StatusFailed {
		t.Fatalf("status=%s, want failed", got.Status)
	}
}

func TestRunValidatesInput(t *testing.T) {
	if _, err := Default().Run(context.Background(), "  ", nil); err == nil {
		t.Fatalf("expected error for empty file name")
	}
	bad := &Simulator{Tick: 0, Step: 10}
	if _, err := bad.Run(context.Background(), "a.pdf", nil); err == nil {
		t.Fatalf("expected error for zero tick")
	}
}
