package middleware

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"hospital-management/config"
	"hospital-management/internal/domain/entity"
	"hospital-management/internal/service"
	"hospital-management/pkg/jwt"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

type authFixture struct {
	mw       *AuthMiddleware
	jwt      *jwt.JWTService
	sessions service.SessionStore
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	log := logrus.New()
	log.SetOutput(io.Discard)

	f := &authFixture{
		jwt: jwt.NewJWTService(config.JWTConfig{
			Secret:        "mw-secret",
			AccessExpiry:  time.Hour,
			RefreshExpiry: 2 * time.Hour,
		}),
		sessions: service.NewSessionStore(client, log),
	}
	f.mw = NewAuthMiddleware(f.jwt, f.sessions, log)
	return f
}

// login issues an access token and registers it in the session store.
func (f *authFixture) login(t *testing.T, sub jwt.Subject) (string, string) {
	t.Helper()
	token, tokenID, err := f.jwt.GenerateAccessToken(sub)
	if err != nil {
		t.Fatal(err)
	}
	if err := f.sessions.Store(context.Background(), sub.UserID, service.SessionAccess, tokenID, time.Hour); err != nil {
		t.Fatal(err)
	}
	return token, tokenID
}

func echoActor(t *testing.T, called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		if _, ok := GetActorFromContext(r.Context()); !ok {
			t.Error("expected actor in context")
		}
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestAuthenticate(t *testing.T) {
	f := newAuthFixture(t)
	sub := jwt.Subject{UserID: 5, Username: "dr", Role: entity.RoleDoctor}
	token, tokenID := f.login(t, sub)
	refresh, _, _ := f.jwt.GenerateRefreshToken(sub)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic " + token, http.StatusUnauthorized},
		{"garbage token", "Bearer nope", http.StatusUnauthorized},
		{"refresh token", "Bearer " + refresh, http.StatusUnauthorized},
		{"valid", "Bearer " + token, http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			f.mw.Authenticate(echoActor(t, &called)).ServeHTTP(rec, req)

			if rec.Code != tt.want {
				t.Errorf("expected %d, got %d", tt.want, rec.Code)
			}
			if called != (tt.want == http.StatusNoContent) {
				t.Errorf("next called = %v", called)
			}
		})
	}

	// Revoked tokens are rejected.
	_ = f.sessions.Revoke(context.Background(), sub.UserID, service.SessionAccess, tokenID)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	called := false
	f.mw.Authenticate(echoActor(t, &called)).ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized || !strings.Contains(rec.Body.String(), "revoked") {
		t.Errorf("expected revoked 401, got %d %s", rec.Code, rec.Body.String())
	}
}

func TestOptionalAllowsAnonymous(t *testing.T) {
	f := newAuthFixture(t)
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		if _, ok := GetActorFromContext(r.Context()); ok {
			t.Error("anonymous request must not carry an actor")
		}
	})

	rec := httptest.NewRecorder()
	f.mw.Optional(next).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
	if !called {
		t.Fatal("expected anonymous request to pass")
	}

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("Authorization", "Bearer broken")
	rec = httptest.NewRecorder()
	called = false
	f.mw.Optional(next).ServeHTTP(rec, req)
	if called || rec.Code != http.StatusUnauthorized {
		t.Errorf("expected invalid token to be rejected, got %d", rec.Code)
	}
}

func TestRequireRole(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })

	tests := []struct {
		name  string
		actor *entity.Actor
		want  int
	}{
		{"no actor", nil, http.StatusUnauthorized},
		{"patient", &entity.Actor{UserID: 1, Role: entity.RolePatient}, http.StatusForbidden},
		{"doctor", &entity.Actor{UserID: 2, Role: entity.RoleDoctor}, http.StatusOK},
		{"receptionist", &entity.Actor{UserID: 3, Role: entity.RoleReceptionist}, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.actor != nil {
				req = req.WithContext(WithActor(req.Context(), *tt.actor, "tid"))
			}
			rec := httptest.NewRecorder()
			RequireStaff(ok).ServeHTTP(rec, req)
			if rec.Code != tt.want {
				t.Errorf("expected %d, got %d", tt.want, rec.Code)
			}
		})
	}
}

func TestCORS(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusTeapot) })

	restricted := NewCORSMiddleware([]string{"http://app.test"})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://app.test")
	rec := httptest.NewRecorder()
	restricted.Handle(next).ServeHTTP(rec, req)
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://app.test" {
		t.Errorf("expected echoed origin, got %q", got)
	}

	req.Header.Set("Origin", "http://evil.test")
	rec = httptest.NewRecorder()
	restricted.Handle(next).ServeHTTP(rec, req)
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("expected no allow-origin, got %q", got)
	}

	preflight := httptest.NewRequest(http.MethodOptions, "/", nil)
	rec = httptest.NewRecorder()
	NewCORSMiddleware([]string{"*"}).Handle(next).ServeHTTP(rec, preflight)
	if rec.Code != http.StatusOK || rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Errorf("unexpected preflight response %d %v", rec.Code, rec.Header())
	}
}

func TestLoggingRecordsStatus(t *testing.T) {
	var buf bytes.Buffer
	log := logrus.New()
	log.SetOutput(&buf)
	log.SetFormatter(&logrus.JSONFormatter{})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNotFound) })
	rec := httptest.NewRecorder()
	NewLoggingMiddleware(log).Handle(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/missing", nil))

	out := buf.String()
	for _, want := range []string{`"status":404`, `"path":"/api/missing"`, `"method":"GET"`, `"level":"warning"`} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %s in log output %s", want, out)
		}
	}
}

func TestRecoverReturns500(t *testing.T) {
	var buf bytes.Buffer
	log := logrus.New()
	log.SetOutput(&buf)
	log.SetFormatter(&logrus.JSONFormatter{})
	m := NewLoggingMiddleware(log)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { panic("boom") })
	rec := httptest.NewRecorder()
	m.Handle(m.Recover(next)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/appointments", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "boom") {
		t.Error("panic value leaked to client")
	}
	out := buf.String()
	for _, want := range []string{`"panic":"boom"`, `"msg":"panic recovered"`, `"status":500`} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %s in log output %s", want, out)
		}
	}
}
