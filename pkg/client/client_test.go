package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"testing"

	"hospital-management/internal/delivery/dto"
	"hospital-management/pkg/response"
)

// fakeAPI serves the subset of the API the client talks to.
type fakeAPI struct {
	mu           sync.Mutex
	token        string
	refreshToken string
	appointments []dto.AppointmentResponse
	loggedOut    []string
	refreshed    int
}

func (f *fakeAPI) authorized(r *http.Request) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return r.Header.Get("Authorization") == "Bearer "+f.token
}

func (f *fakeAPI) handler() http.Handler {
	mux := http.NewServeMux()
	user := &dto.UserResponse{ID: 20, Username: "pat", Email: "pat@hospital.test", Role: "patient"}

	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req dto.LoginRequest
		json.NewDecoder(r.Body).Decode(&req)
		if req.Password != "secret123" {
			response.Unauthorized(w, "Invalid username or password")
			return
		}
		f.mu.Lock()
		f.token, f.refreshToken = "access-1", "refresh-1"
		f.mu.Unlock()
		response.Success(w, http.StatusOK, "Login successful", dto.AuthResponse{Token: "access-1", RefreshToken: "refresh-1", User: user})
	})

	mux.HandleFunc("POST /api/auth/refresh-token", func(w http.ResponseWriter, r *http.Request) {
		var req dto.RefreshTokenRequest
		json.NewDecoder(r.Body).Decode(&req)
		f.mu.Lock()
		defer f.mu.Unlock()
		if req.RefreshToken != f.refreshToken {
			response.Unauthorized(w, "invalid token")
			return
		}
		f.refreshed++
		f.token, f.refreshToken = "access-2", "refresh-2"
		response.Success(w, http.StatusOK, "Token refreshed successfully", dto.AuthResponse{Token: "access-2", RefreshToken: "refresh-2", User: user})
	})

	mux.HandleFunc("POST /api/auth/logout", func(w http.ResponseWriter, r *http.Request) {
		if !f.authorized(r) {
			response.Unauthorized(w, "Invalid token")
			return
		}
		var req map[string]string
		json.NewDecoder(r.Body).Decode(&req)
		f.mu.Lock()
		f.loggedOut = append(f.loggedOut, req["refresh_token"])
		f.mu.Unlock()
		response.Success(w, http.StatusOK, "Logout successful", nil)
	})

	mux.HandleFunc("GET /api/appointments", func(w http.ResponseWriter, r *http.Request) {
		if !f.authorized(r) {
			response.Unauthorized(w, "Invalid token")
			return
		}
		f.mu.Lock()
		defer f.mu.Unlock()
		var out []dto.AppointmentResponse
		for _, a := range f.appointments {
			if s := r.URL.Query().Get("status"); s == "" || s == a.Status {
				out = append(out, a)
			}
		}
		response.Success(w, http.StatusOK, "ok", dto.AppointmentListResponse{Appointments: out, Total: len(out)})
	})

	mux.HandleFunc("POST /api/appointments", func(w http.ResponseWriter, r *http.Request) {
		if !f.authorized(r) {
			response.Unauthorized(w, "Invalid token")
			return
		}
		var req dto.CreateAppointmentRequest
		json.NewDecoder(r.Body).Decode(&req)
		if req.DoctorID == 0 {
			response.ValidationError(w, map[string]string{"doctor_id": "doctor_id is required"})
			return
		}
		f.mu.Lock()
		defer f.mu.Unlock()
		for _, a := range f.appointments {
			if a.DoctorID == req.DoctorID && a.AppointmentDate == req.AppointmentDate && a.AppointmentTime == req.AppointmentTime {
				response.Conflict(w, "slot already booked")
				return
			}
		}
		a := dto.AppointmentResponse{
			ID:              len(f.appointments) + 1,
			PatientID:       req.PatientID,
			DoctorID:        req.DoctorID,
			AppointmentDate: req.AppointmentDate,
			AppointmentTime: req.AppointmentTime,
			Status:          "scheduled",
		}
		f.appointments = append(f.appointments, a)
		response.Success(w, http.StatusCreated, "Appointment created successfully", a)
	})

	mux.HandleFunc("PATCH /api/appointments/{id}/status", func(w http.ResponseWriter, r *http.Request) {
		if !f.authorized(r) {
			response.Unauthorized(w, "Invalid token")
			return
		}
		var req dto.UpdateAppointmentStatusRequest
		json.NewDecoder(r.Body).Decode(&req)
		f.mu.Lock()
		defer f.mu.Unlock()
		for i := range f.appointments {
			if strconv.Itoa(f.appointments[i].ID) == r.PathValue("id") {
				f.appointments[i].Status = req.Status
				if req.Notes != nil {
					f.appointments[i].Notes = req.Notes
				}
				response.Success(w, http.StatusOK, "ok", f.appointments[i])
				return
			}
		}
		response.NotFound(w, "appointment not found")
	})

	return mux
}

func newTestClient(t *testing.T) (*Client, *fakeAPI, string) {
	t.Helper()
	api := &fakeAPI{}
	server := httptest.NewServer(api.handler())
	t.Cleanup(server.Close)

	path := filepath.Join(t.TempDir(), "session.json")
	session, err := LoadSession(path)
	if err != nil {
		t.Fatal(err)
	}
	return New(server.URL+"/api", session, WithHTTPClient(server.Client())), api, path
}

func TestLoginPopulatesAndPersistsSession(t *testing.T) {
	c, _, path := newTestClient(t)

	user, err := c.Login(context.Background(), "pat", "secret123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Username != "pat" || !c.Session().LoggedIn() {
		t.Fatalf("unexpected login result %+v", user)
	}

	loaded, err := LoadSession(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Token() != "access-1" || loaded.RefreshToken() != "refresh-1" || loaded.User().ID != 20 {
		t.Errorf("session not persisted: %+v", loaded.state)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Errorf("expected 0600, got %v", info.Mode().Perm())
	}
}

func TestLoginFailureKeepsSessionEmpty(t *testing.T) {
	c, _, path := newTestClient(t)

	_, err := c.Login(context.Background(), "pat", "wrong")
	if !IsStatus(err, http.StatusUnauthorized) {
		t.Fatalf("expected 401, got %v", err)
	}
	if c.Session().LoggedIn() {
		t.Error("session should be empty")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("no session file expected")
	}
}

func TestAppointmentsRefreshCache(t *testing.T) {
	c, _, path := newTestClient(t)
	ctx := context.Background()
	if _, err := c.Login(ctx, "pat", "secret123"); err != nil {
		t.Fatal(err)
	}

	booked, err := c.BookAppointment(ctx, dto.CreateAppointmentRequest{PatientID: 2, DoctorID: 1, AppointmentDate: "2026-10-19", AppointmentTime: "10:00"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if booked.ID != 1 || booked.Status != "scheduled" {
		t.Fatalf("unexpected appointment %+v", booked)
	}
	if cached := c.Session().Appointments(); len(cached) != 1 {
		t.Fatalf("expected 1 cached appointment, got %d", len(cached))
	}

	_, err = c.BookAppointment(ctx, dto.CreateAppointmentRequest{PatientID: 2, DoctorID: 1, AppointmentDate: "2026-10-19", AppointmentTime: "10:00"})
	if !IsStatus(err, http.StatusConflict) {
		t.Fatalf("expected 409, got %v", err)
	}

	notes := "rescheduled by phone"
	updated, err := c.UpdateAppointmentStatus(ctx, 1, "cancelled", &notes)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != "cancelled" || *updated.Notes != notes {
		t.Errorf("unexpected update %+v", updated)
	}
	cached := c.Session().Appointments()
	if len(cached) != 1 || cached[0].Status != "cancelled" {
		t.Errorf("cache not updated: %+v", cached)
	}

	list, err := c.ListAppointments(ctx, dto.AppointmentListQuery{Status: "scheduled"})
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 0 || len(c.Session().Appointments()) != 0 {
		t.Errorf("expected the filtered list to replace the cache, got %+v", c.Session().Appointments())
	}

	loaded, err := LoadSession(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(loaded.Appointments()) != 0 {
		t.Errorf("saved cache out of date: %+v", loaded.Appointments())
	}
}

func TestValidationErrorFields(t *testing.T) {
	c, _, _ := newTestClient(t)
	ctx := context.Background()
	if _, err := c.Login(ctx, "pat", "secret123"); err != nil {
		t.Fatal(err)
	}

	_, err := c.BookAppointment(ctx, dto.CreateAppointmentRequest{PatientID: 2})
	apiErr, ok := err.(*APIError)
	if !ok || apiErr.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 APIError, got %v", err)
	}
	if _, ok := apiErr.Fields["doctor_id"]; !ok {
		t.Errorf("expected doctor_id field error, got %v", apiErr.Fields)
	}
}

func TestExpiredTokenIsRefreshedOnce(t *testing.T) {
	c, api, _ := newTestClient(t)
	ctx := context.Background()
	if _, err := c.Login(ctx, "pat", "secret123"); err != nil {
		t.Fatal(err)
	}

	// Server-side rotation leaves the client's access token stale.
	api.mu.Lock()
	api.token = "rotated"
	api.mu.Unlock()

	if _, err := c.ListAppointments(ctx, dto.AppointmentListQuery{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	api.mu.Lock()
	refreshed := api.refreshed
	api.mu.Unlock()
	if refreshed != 1 || c.Session().Token() != "access-2" {
		t.Errorf("expected one refresh, got %d (token %q)", refreshed, c.Session().Token())
	}
}

func TestLogoutTearsDownSession(t *testing.T) {
	c, api, path := newTestClient(t)
	ctx := context.Background()
	if _, err := c.Login(ctx, "pat", "secret123"); err != nil {
		t.Fatal(err)
	}
	if _, err := c.BookAppointment(ctx, dto.CreateAppointmentRequest{PatientID: 2, DoctorID: 1, AppointmentDate: "2026-10-19", AppointmentTime: "11:00"}); err != nil {
		t.Fatal(err)
	}

	if err := c.Logout(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	api.mu.Lock()
	loggedOut := api.loggedOut
	api.mu.Unlock()
	if len(loggedOut) != 1 || loggedOut[0] != "refresh-1" {
		t.Errorf("refresh token not sent on logout: %v", loggedOut)
	}
	s := c.Session()
	if s.LoggedIn() || s.User() != nil || len(s.Appointments()) != 0 {
		t.Error("session not cleared")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("session file should be removed")
	}

	if err := c.Logout(ctx); err != ErrNotLoggedIn {
		t.Errorf("expected ErrNotLoggedIn, got %v", err)
	}
	if _, err := c.ListAppointments(ctx, dto.AppointmentListQuery{}); err != ErrNotLoggedIn {
		t.Errorf("expected ErrNotLoggedIn, got %v", err)
	}
}

func TestLoadSessionRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSession(path); err == nil {
		t.Fatal("expected error")
	}
}

func TestInMemorySession(t *testing.T) {
	s := NewSession("")
	s.setAuth(&dto.AuthResponse{Token: "t", RefreshToken: "r"})
	if err := s.Save(); err != nil {
		t.Fatal(err)
	}
	if err := s.Clear(); err != nil {
		t.Fatal(err)
	}
	if s.LoggedIn() {
		t.Error("expected cleared session")
	}
}
