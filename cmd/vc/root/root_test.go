package root

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
)

type cli struct {
	t  *testing.T
	db string
}

func newCLI(t *testing.T) *cli {
	t.Helper()
	t.Setenv("VITACOACH_LOG_LEVEL", "error")
	return &cli{t: t, db: filepath.Join(t.TempDir(), "cli.db")}
}

func (c *cli) run(args ...string) (string, error) {
	c.t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(append(args, "--db", c.db))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(""))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func (c *cli) mustRun(args ...string) string {
	c.t.Helper()
	out, err := c.run(args...)
	if err != nil {
		c.t.Fatalf("vc %s: %v\n%s", strings.Join(args, " "), err, out)
	}
	return out
}

func TestPatientJourney(t *testing.T) {
	c := newCLI(t)

	c.mustRun("register", "pat@example.com", "--password", "correct-horse")
	out := c.mustRun("login", "pat@example.com", "--password", "correct-horse")
	if !strings.Contains(out, "vc onboard") {
		t.Fatalf("expected onboarding hint:\n%s", out)
	}

	if _, err := c.run("onboard", "--name", "Sam"); err == nil {
		t.Fatalf("expected onboarding to stop at the role step")
	}
	out = c.mustRun("onboard", "--role", "patient", "--goals", "sleep better")
	if !strings.Contains(out, "Onboarding complete") {
		t.Fatalf("unexpected onboard output:\n%s", out)
	}

	out = c.mustRun("checkin", "--mood", "4", "--energy", "4", "--sleep", "7.5")
	if !strings.Contains(out, "+50") {
		t.Fatalf("expected XP award:\n%s", out)
	}
	if _, err := c.run("checkin"); err == nil || !strings.Contains(err.Error(), "already checked in") {
		t.Fatalf("err=%v, want already checked in", err)
	}

	out = c.mustRun("xp", "history")
	if !strings.Contains(out, "daily check-in") || strings.Count(out, "+50") != 1 {
		t.Fatalf("unexpected xp history:\n%s", out)
	}

	c.mustRun("challenges", "join", "sleep_8h_7")
	c.mustRun("partner", "buddy@example.com")
	c.mustRun("contract", "set", "--goal", "Sleep 8h", "--stake", "25")

	out = c.mustRun("status")
	for _, want := range []string{"Sam", "Level: 1", "Sleep Reset", "buddy@example.com", "$25.00"} {
		if !strings.Contains(out, want) {
			t.Fatalf("status missing %q:\n%s", want, out)
		}
	}

	out = c.mustRun("calendar", "export")
	if !strings.Contains(out, "BEGIN:VCALENDAR") || !strings.Contains(out, "Challenge: Sleep Reset") {
		t.Fatalf("unexpected calendar:\n%s", out)
	}

	if _, err := c.run("patients"); err == nil || !strings.Contains(err.Error(), "doctor view") {
		t.Fatalf("err=%v, want role error", err)
	}
}

func TestDoctorSearch(t *testing.T) {
	c := newCLI(t)
	c.mustRun("register", "doc@example.com", "--password", "correct-horse", "--role", "doctor")
	c.mustRun("login", "doc@example.com", "--password", "correct-horse")

	out := c.mustRun("patients", "--risk", "moderate")
	if !strings.Contains(out, "Patients (3)") {
		t.Fatalf("unexpected patients output:\n%s", out)
	}

	out = c.mustRun("patient", "p-002", "--tab", "labs")
	if !strings.Contains(out, "Systolic BP") || !strings.Contains(out, "high") {
		t.Fatalf("unexpected labs output:\n%s", out)
	}

	if _, err := c.run("checkin"); err == nil {
		t.Fatalf("expected check-in to be rejected in the doctor view")
	}
}

func TestPublicCatalogCommands(t *testing.T) {
	c := newCLI(t)

	out := c.mustRun("literature", "--tag", "exercise")
	if !strings.Contains(out, "Literature (2)") || !strings.Contains(out, "https://doi.org/") {
		t.Fatalf("unexpected literature output:\n%s", out)
	}
	out = c.mustRun("plans", "sleep-restore")
	if !strings.Contains(out, "Sleep Restore") {
		t.Fatalf("unexpected plan output:\n%s", out)
	}
	if _, err := c.run("plans", "nope"); err == nil {
		t.Fatalf("expected unknown plan error")
	}
}

func TestResetRequiresConfirmation(t *testing.T) {
	c := newCLI(t)
	if _, err := c.run("reset"); err == nil {
		t.Fatalf("expected reset without --yes to fail")
	}
	c.mustRun("reset", "--yes")
}
