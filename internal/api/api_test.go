package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitacoach/internal/catalog"
	"vitacoach/internal/engine"
	"vitacoach/internal/logging"
	"vitacoach/internal/storage"
	"vitacoach/internal/upload"
)

const testSecret = "test-secret"

func newTestServer(t *testing.T) (*Server, *engine.Service) {
	t.Helper()
	db, err := storage.Open(context.Background(), filepath.Join(t.TempDir(), "api.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	svc := engine.NewService(db,
		engine.WithUploader(&upload.Simulator{Tick: time.Millisecond, Step: 50, ProcessingDelay: time.Millisecond}),
	)
	return New(svc, NewTokenManager(testSecret, time.Hour), logging.Discard()), svc
}

func do(t *testing.T, srv *Server, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func loginAs(t *testing.T, srv *Server, svc *engine.Service, email string, role engine.Role) string {
	t.Helper()
	_, err := svc.Register(context.Background(), email, "correct-horse", role)
	require.NoError(t, err)

	rec := do(t, srv, http.MethodPost, "/api/login", "", credentials{Email: email, Password: "correct-horse"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp tokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, role, resp.Role)
	return resp.Token
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t)
	rec := do(t, srv, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestRegisterAndLogin(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := do(t, srv, http.MethodPost, "/api/register", "", credentials{Email: "pat@example.com", Password: "correct-horse"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = do(t, srv, http.MethodPost, "/api/register", "", credentials{Email: "pat@example.com", Password: "correct-horse"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, srv, http.MethodPost, "/api/login", "", credentials{Email: "pat@example.com", Password: "nope-nope"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(t, srv, http.MethodPost, "/api/login", "", credentials{Email: "pat@example.com", Password: "correct-horse"})
	require.Equal(t, http.StatusOK, rec.Code)
	var resp tokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)

	rec = do(t, srv, http.MethodGet, "/api/state", resp.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var sum engine.Summary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sum))
	assert.True(t, sum.Authenticated)
	assert.Equal(t, engine.RolePatient, sum.Role)
	assert.Equal(t, 1, sum.Level)
}

func TestAuthRequired(t *testing.T) {
	srv, _ := newTestServer(t)

	assert.Equal(t, http.StatusUnauthorized, do(t, srv, http.MethodGet, "/api/state", "", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, do(t, srv, http.MethodGet, "/api/state", "garbage", nil).Code)

	other, _, err := NewTokenManager("other-secret", time.Hour).Issue("pat@example.com", engine.RolePatient)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, do(t, srv, http.MethodGet, "/api/state", other, nil).Code)
}

func TestTokenBoundToSession(t *testing.T) {
	srv, svc := newTestServer(t)

	alice := loginAs(t, srv, svc, "alice@example.com", engine.RolePatient)
	bob := loginAs(t, srv, svc, "bob@example.com", engine.RolePatient)

	assert.Equal(t, http.StatusUnauthorized, do(t, srv, http.MethodGet, "/api/state", alice, nil).Code)
	rec := do(t, srv, http.MethodPost, "/api/checkins", alice, map[string]interface{}{"mood": 3, "energy": 3})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(t, srv, http.MethodGet, "/api/state", bob, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var sum engine.Summary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sum))
	assert.Equal(t, "bob@example.com", sum.Email)
	assert.Equal(t, 0, sum.XP)

	require.Equal(t, http.StatusNoContent, do(t, srv, http.MethodPost, "/api/logout", bob, nil).Code)
	for _, path := range []string{"/api/state", "/api/calendar.ics", "/api/xp/history", "/api/badges"} {
		assert.Equal(t, http.StatusUnauthorized, do(t, srv, http.MethodGet, path, bob, nil).Code, path)
	}
}

func TestOnboardingAsDoctorReissuesToken(t *testing.T) {
	srv, svc := newTestServer(t)
	token := loginAs(t, srv, svc, "newdoc@example.com", engine.RolePatient)

	rec := do(t, srv, http.MethodPost, "/api/onboarding", token, map[string]string{"name": "Dr. Lee"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var step onboardingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &step))
	assert.Nil(t, step.Token)

	rec = do(t, srv, http.MethodPost, "/api/onboarding", token, map[string]string{"role": "doctor"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &step))
	require.NotNil(t, step.Token)
	assert.Equal(t, engine.RoleDoctor, step.Token.Role)

	assert.Equal(t, http.StatusOK, do(t, srv, http.MethodGet, "/api/patients", step.Token.Token, nil).Code)

	acct, err := svc.AccountRepo().GetByEmail(context.Background(), "newdoc@example.com")
	require.NoError(t, err)
	require.NotNil(t, acct)
	assert.Equal(t, string(engine.RoleDoctor), acct.Role)
}

func TestDoctorRoutes(t *testing.T) {
	srv, svc := newTestServer(t)

	patientToken := loginAs(t, srv, svc, "pat@example.com", engine.RolePatient)
	rec := do(t, srv, http.MethodGet, "/api/patients", patientToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	doctorToken := loginAs(t, srv, svc, "doc@example.com", engine.RoleDoctor)
	rec = do(t, srv, http.MethodGet, "/api/patients?risk=high", doctorToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var patients []catalog.Patient
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &patients))
	require.NotEmpty(t, patients)
	for _, p := range patients {
		assert.Equal(t, catalog.RiskHigh, p.Risk)
	}

	rec = do(t, srv, http.MethodGet, "/api/patients/p-001?tab=labs", doctorToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var detail catalog.PatientDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	assert.Equal(t, catalog.TabLabs, detail.Tab)
	assert.NotEmpty(t, detail.Labs)

	rec = do(t, srv, http.MethodGet, "/api/patients/p-999", doctorToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCheckInEndpoint(t *testing.T) {
	srv, svc := newTestServer(t)
	token := loginAs(t, srv, svc, "pat@example.com", engine.RolePatient)

	body := map[string]interface{}{"mood": 4, "energy": 3, "sleepHours": 7}
	rec := do(t, srv, http.MethodPost, "/api/checkins", token, body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var res engine.CheckInResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, 1, res.Streak)
	assert.Equal(t, engine.CheckInXP, res.Award.XPAwarded)

	rec = do(t, srv, http.MethodPost, "/api/checkins", token, body)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, srv, http.MethodPost, "/api/checkins", token, map[string]interface{}{"mood": 9, "energy": 3})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	var e errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &e))
	assert.Equal(t, "mood", e.Field)

	rec = do(t, srv, http.MethodGet, "/api/xp/history?limit=5", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var events []storage.XPEvent
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &events))
	require.Len(t, events, 1)
	assert.Equal(t, engine.CheckInXP, events[0].Amount)

	assert.Equal(t, http.StatusBadRequest, do(t, srv, http.MethodGet, "/api/xp/history?limit=x", token, nil).Code)
}

func TestChallengesAndCalendar(t *testing.T) {
	srv, svc := newTestServer(t)
	token := loginAs(t, srv, svc, "pat@example.com", engine.RolePatient)

	rec := do(t, srv, http.MethodPost, "/api/challenges/hydration_7/join", token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, http.StatusNotFound, do(t, srv, http.MethodPost, "/api/challenges/nope/join", token, nil).Code)

	rec = do(t, srv, http.MethodGet, "/api/calendar.ics", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), "text/calendar"))
	assert.Contains(t, rec.Body.String(), "BEGIN:VCALENDAR")
	assert.Contains(t, rec.Body.String(), "Hydration Week")
}

func TestUploadEndpoint(t *testing.T) {
	srv, svc := newTestServer(t)
	token := loginAs(t, srv, svc, "pat@example.com", engine.RolePatient)

	rec := do(t, srv, http.MethodPost, "/api/uploads", token, map[string]string{"fileName": "labs.pdf"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var up storage.Upload
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &up))
	assert.Equal(t, string(upload.StatusComplete), up.Status)

	rec = do(t, srv, http.MethodPost, "/api/uploads", token, map[string]string{"fileName": ""})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPublicCatalog(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := do(t, srv, http.MethodGet, "/api/literature?tag=sleep", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var lit []catalog.Literature
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &lit))
	require.Len(t, lit, 1)

	assert.Equal(t, http.StatusOK, do(t, srv, http.MethodGet, "/api/plans/heart-health", "", nil).Code)
	assert.Equal(t, http.StatusNotFound, do(t, srv, http.MethodGet, "/api/plans/nope", "", nil).Code)
}

func TestTokenExpiry(t *testing.T) {
	m := NewTokenManager(testSecret, time.Minute)
	issued := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return issued }

	token, exp, err := m.Issue("doc@example.com", engine.RoleDoctor)
	require.NoError(t, err)
	assert.Equal(t, issued.Add(time.Minute), exp)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "doc@example.com", claims.Email)
	assert.Equal(t, engine.RoleDoctor, claims.Role)

	m.now = func() time.Time { return issued.Add(2 * time.Minute) }
	_, err = m.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{engine.ValidationError{Field: "mood"}, http.StatusBadRequest},
		{engine.ErrNotAuthenticated, http.StatusUnauthorized},
		{engine.ErrInvalidCredentials, http.StatusUnauthorized},
		{engine.RoleError{Required: engine.RoleDoctor, Actual: engine.RolePatient}, http.StatusForbidden},
		{fmt.Errorf("challenge %q: %w", "x", engine.ErrNotFound), http.StatusNotFound},
		{catalog.NotFoundError{Kind: "plan", ID: "x"}, http.StatusNotFound},
		{engine.ErrAlreadyCheckedIn, http.StatusConflict},
		{storage.ErrDuplicateEmail, http.StatusConflict},
		{fmt.Errorf("challenge %q: %w", "x", engine.ErrAlreadyJoined), http.StatusConflict},
		{engine.ErrOnboardingComplete, http.StatusConflict},
		{fmt.Errorf("disk on fire"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, statusFor(tt.err), tt.err.Error())
	}
}
