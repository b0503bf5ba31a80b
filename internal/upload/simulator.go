// Package upload fakes a file transfer: a ticker advances a progress
// percentage, then the upload sits in a processing phase before completing.
// Nothing is read or sent anywhere.
package upload

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

type Status string

const (
	StatusUploading  Status = "uploading"
	StatusProcessing Status = "processing"
	StatusComplete   Status = "complete"
	StatusFailed     Status = "failed"
)

// Progress is reported on every state change.
type Progress struct {
	FileName string
	Percent  int
	Status   Status
}

type Simulator struct {
	Tick            time.Duration
	Step            int
	ProcessingDelay time.Duration
}

// Default mirrors the pacing of the upload page: 10% every 200ms, then two
// seconds of processing.
func Default() *Simulator {
	return &Simulator{Tick: 200 * time.Millisecond, Step: 10, ProcessingDelay: 2 * time.Second}
}

// Run drives the simulated upload to completion. onProgress may be nil.
// Cancelling ctx stops the run and reports StatusFailed.
func (s *Simulator) Run(ctx context.Context, fileName string, onProgress func(Progress)) (Progress, error) {
	name := strings.TrimSpace(fileName)
	if name == "" {
		return Progress{}, errors.New("file name is required")
	}
	if s.Step <= 0 || s.Tick <= 0 {
		return Progress{}, fmt.Errorf("invalid simulator pacing (tick=%s step=%d)", s.Tick, s.Step)
	}

	emit := func(p Progress) {
		if onProgress != nil {
			onProgress(p)
		}
	}
	fail := func(pct int) (Progress, error) {
		p := Progress{FileName: name, Percent: pct, Status: StatusFailed}
		emit(p)
		return p, ctx.Err()
	}

	cur := Progress{FileName: name, Percent: 0, Status: StatusUploading}
	emit(cur)

	ticker := time.NewTicker(s.Tick)
	defer ticker.Stop()

	for cur.Percent < 100 {
		if ctx.Err() != nil {
			return fail(cur.Percent)
		}
		select {
		case <-ctx.Done():
			return fail(cur.Percent)
		case <-ticker.C:
			cur.Percent += s.Step
			if cur.Percent > 100 {
				cur.Percent = 100
			}
			emit(cur)
		}
	}

	if ctx.Err() != nil {
		return fail(cur.Percent)
	}
	cur.Status = StatusProcessing
	emit(cur)

	if s.ProcessingDelay > 0 {
		timer := time.NewTimer(s.ProcessingDelay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return fail(cur.Percent)
		case <-timer.C:
		}
	}

	cur.Status = StatusComplete
	emit(cur)
	return cur, nil
}
