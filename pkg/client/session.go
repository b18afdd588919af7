package client

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"hospital-management/internal/delivery/dto"
)

type sessionState struct {
	Token        string                    `json:"token"`
	RefreshToken string                    `json:"refresh_token"`
	User         *dto.UserResponse         `json:"user,omitempty"`
	Appointments []dto.AppointmentResponse `json:"appointments,omitempty"`
}

// Session holds the tokens, the logged-in user and the last fetched
// appointments. It is persisted only when Save is called. A Session with an
// empty path lives in memory.
type Session struct {
	mu    sync.RWMutex
	path  string
	state sessionState
}

func NewSession(path string) *Session {
	return &Session{path: path}
}

// LoadSession reads a session saved at path. A missing file yields an empty
// session bound to path.
func LoadSession(path string) (*Session, error) {
	s := NewSession(path)

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, &s.state); err != nil {
		return nil, err
	}
	return s, nil
}

// Save writes the session to its file with owner-only permissions.
func (s *Session) Save() error {
	if s.path == "" {
		return nil
	}

	s.mu.RLock()
	data, err := json.MarshalIndent(s.state, "", "  ")
	s.mu.RUnlock()
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".session-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}

// Clear drops everything held by the session and removes its file.
func (s *Session) Clear() error {
	s.mu.Lock()
	s.state = sessionState{}
	s.mu.Unlock()

	if s.path == "" {
		return nil
	}
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func (s *Session) Path() string {
	return s.path
}

func (s *Session) LoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Token != ""
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Token
}

func (s *Session) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.RefreshToken
}

func (s *Session) User() *dto.UserResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state.User == nil {
		return nil
	}
	user := *s.state.User
	return &user
}

// Appointments returns a copy of the cached appointments.
func (s *Session) Appointments() []dto.AppointmentResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]dto.AppointmentResponse(nil), s.state.Appointments...)
}

func (s *Session) setAuth(auth *dto.AuthResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Token = auth.Token
	s.state.RefreshToken = auth.RefreshToken
	if auth.User != nil {
		s.state.User = auth.User
	}
}

func (s *Session) setAppointments(appointments []dto.AppointmentResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Appointments = append([]dto.AppointmentResponse(nil), appointments...)
}

// putAppointment replaces the cached appointment with the same ID or appends it.
func (s *Session) putAppointment(appointment dto.AppointmentResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.state.Appointments {
		if s.state.Appointments[i].ID == appointment.ID {
			s.state.Appointments[i] = appointment
			return
		}
	}
	s.state.Appointments = append(s.state.Appointments, appointment)
}
