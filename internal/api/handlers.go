package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"vitacoach/internal/calendar"
	"vitacoach/internal/catalog"
	"vitacoach/internal/engine"
	"vitacoach/internal/storage"
)

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

type tokenResponse struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expiresAt"`
	Email     string      `json:"email"`
	Role      engine.Role `json:"role"`
}

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	var in credentials
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, err)
		return
	}
	role := engine.DefaultRole
	if in.Role != "" {
		parsed, err := engine.ParseRole(in.Role)
		if err != nil {
			writeError(w, err)
			return
		}
		role = parsed
	}
	acct, err := s.svc.Register(r.Context(), in.Email, in.Password, role)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": acct.ID, "email": acct.Email, "role": acct.Role})
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var in credentials
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, err)
		return
	}
	acct, err := s.svc.Login(r.Context(), in.Email, in.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	s.issueToken(w, acct.Email, engine.Role(acct.Role))
}

func (s *Server) issueToken(w http.ResponseWriter, email string, role engine.Role) {
	token, exp, err := s.tokens.Issue(email, role)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tokenResponse{Token: token, ExpiresAt: exp, Email: email, Role: role})
}

func (s *Server) logout(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.Logout(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// switchRole changes the active view and returns a token carrying it.
func (s *Server) switchRole(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Role string `json:"role"`
	}
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, err)
		return
	}
	role, err := engine.ParseRole(in.Role)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := s.svc.SwitchRole(r.Context(), role); err != nil {
		writeError(w, err)
		return
	}
	s.issueToken(w, ClaimsFrom(r.Context()).Email, role)
}

func (s *Server) summary(w http.ResponseWriter, r *http.Request) {
	sum, err := s.svc.Summary(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sum)
}

type onboardingRequest struct {
	Name        string `json:"name"`
	Role        string `json:"role"`
	Goals       string `json:"goals"`
	Preferences string `json:"preferences"`
}

func (in onboardingRequest) input() engine.OnboardingInput {
	return engine.OnboardingInput{Name: in.Name, Role: in.Role, Goals: in.Goals, Preferences: in.Preferences}
}

// onboardingResponse carries a fresh token when the role step switched the
// view, since the old token's role claim no longer matches.
type onboardingResponse struct {
	From      engine.OnboardingStep `json:"from"`
	To        engine.OnboardingStep `json:"to"`
	Completed bool                  `json:"completed"`
	Token     *tokenResponse        `json:"token,omitempty"`
}

func (s *Server) updateProfile(w http.ResponseWriter, r *http.Request) {
	var in onboardingRequest
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, err)
		return
	}
	p, err := s.svc.UpdateProfile(r.Context(), in.input())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) advanceOnboarding(w http.ResponseWriter, r *http.Request) {
	var in onboardingRequest
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, err)
		return
	}
	res, err := s.svc.AdvanceOnboarding(r.Context(), in.input())
	if err != nil {
		writeError(w, err)
		return
	}
	body := onboardingResponse{From: res.From, To: res.To, Completed: res.Completed}
	if res.Role != "" {
		token, exp, err := s.tokens.Issue(ClaimsFrom(r.Context()).Email, res.Role)
		if err != nil {
			writeError(w, err)
			return
		}
		body.Token = &tokenResponse{Token: token, ExpiresAt: exp, Email: ClaimsFrom(r.Context()).Email, Role: res.Role}
	}
	writeJSON(w, http.StatusOK, body)
}

func (s *Server) checkIn(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Mood       int     `json:"mood"`
		Energy     int     `json:"energy"`
		SleepHours float64 `json:"sleepHours"`
		Notes      string  `json:"notes"`
	}
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, err)
		return
	}
	res, err := s.svc.CheckIn(r.Context(), engine.CheckInInput{Mood: in.Mood, Energy: in.Energy, SleepHours: in.SleepHours, Notes: in.Notes})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, res)
}

func (s *Server) streak(w http.ResponseWriter, r *http.Request) {
	st, err := s.svc.Streak(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (s *Server) badges(w http.ResponseWriter, r *http.Request) {
	list, err := s.svc.Badges(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// xpHistory serves the XP ledger, newest first. ?limit=N caps the list.
func (s *Server) xpHistory(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, engine.ValidationError{Field: "limit", Reason: "must be a non-negative integer"})
			return
		}
		limit = n
	}
	list, err := s.svc.History(r.Context(), limit)
	if err != nil {
		writeError(w, err)
		return
	}
	if list == nil {
		list = []storage.XPEvent{}
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) listChallenges(w http.ResponseWriter, r *http.Request) {
	list, err := s.svc.Challenges(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) joinChallenge(w http.ResponseWriter, r *http.Request) {
	c, err := s.svc.JoinChallenge(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (s *Server) leaveChallenge(w http.ResponseWriter, r *http.Request) {
	c, err := s.svc.LeaveChallenge(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (s *Server) setPartner(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Email string `json:"email"`
	}
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, err)
		return
	}
	acc, err := s.svc.SetPartner(r.Context(), in.Email)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, acc)
}

func (s *Server) setContract(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Goal        string `json:"goal"`
		StakeCents  int64  `json:"stakeCents"`
		AntiCharity string `json:"antiCharity"`
	}
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, err)
		return
	}
	c, err := s.svc.SetContract(r.Context(), engine.ContractInput{Goal: in.Goal, StakeCents: in.StakeCents, AntiCharity: in.AntiCharity})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (s *Server) clearContract(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.ClearContract(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// uploadLabReport blocks until the simulated upload finishes or the client
// goes away.
func (s *Server) uploadLabReport(w http.ResponseWriter, r *http.Request) {
	var in struct {
		FileName string `json:"fileName"`
	}
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, err)
		return
	}
	if in.FileName == "" {
		writeError(w, engine.ValidationError{Field: "fileName"})
		return
	}
	rec, err := s.svc.UploadLabReport(r.Context(), in.FileName, nil)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

func (s *Server) calendarFeed(w http.ResponseWriter, r *http.Request) {
	st, err := s.svc.State(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	body, err := calendar.Render(st)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="vitacoach.ics"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(body))
}

func (s *Server) listLiterature(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	writeJSON(w, http.StatusOK, catalog.SearchLiterature(q.Get("q"), q.Get("tag")))
}

func (s *Server) listSupplements(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.SearchSupplements(r.URL.Query().Get("q")))
}

func (s *Server) listBiomarkers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.Biomarkers())
}

func (s *Server) listPlans(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.Plans())
}

func (s *Server) getPlan(w http.ResponseWriter, r *http.Request) {
	p, err := catalog.GetPlan(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) listAntiCharities(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.AntiCharities)
}

func (s *Server) listPatients(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	list, err := s.svc.SearchPatients(r.Context(), q.Get("q"), catalog.RiskLevel(q.Get("risk")))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) getPatient(w http.ResponseWriter, r *http.Request) {
	d, err := s.svc.PatientDetail(r.Context(), chi.URLParam(r, "id"), catalog.ParseTab(r.URL.Query().Get("tab")))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (s *Server) patientLabs(w http.ResponseWriter, r *http.Request) {
	labs, err := s.svc.PatientLabs(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, labs)
}

func (s *Server) listGenetics(w http.ResponseWriter, r *http.Request) {
	list, err := s.svc.SearchGenetics(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}
