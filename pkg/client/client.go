// Package client is a Go client for the hospital management API. It keeps
// the caller's tokens, user and appointment list in a Session.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"hospital-management/internal/delivery/dto"
)

var ErrNotLoggedIn = errors.New("not logged in")

// APIError is a non-2xx reply from the server.
type APIError struct {
	StatusCode int
	Message    string
	Fields     map[string]string
}

func (e *APIError) Error() string {
	if len(e.Fields) > 0 {
		return fmt.Sprintf("api error %d: %s %v", e.StatusCode, e.Message, e.Fields)
	}
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// IsStatus reports whether err is an APIError with the given status code.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == status
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   json.RawMessage `json:"error"`
}

type Option func(*Client)

func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.httpClient = c
	}
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	session    *Session
}

// New returns a client for the API rooted at baseURL, e.g.
// "http://localhost:5000/api". A nil session starts an in-memory one.
func New(baseURL string, session *Session, opts ...Option) *Client {
	if session == nil {
		session = NewSession("")
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		session:    session,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Session() *Session {
	return c.session
}

// Login authenticates with a username or email and stores the tokens and
// user in the session.
func (c *Client) Login(ctx context.Context, login, password string) (*dto.UserResponse, error) {
	var auth dto.AuthResponse
	req := dto.LoginRequest{Username: login, Password: password}
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", req, &auth); err != nil {
		return nil, err
	}

	if err := c.session.Clear(); err != nil {
		return nil, err
	}
	c.session.setAuth(&auth)
	if err := c.session.Save(); err != nil {
		return nil, err
	}
	return auth.User, nil
}

// Logout revokes the session's tokens on the server and clears the session.
// The session is cleared even when the server call fails.
func (c *Client) Logout(ctx context.Context) error {
	token := c.session.Token()
	if token == "" {
		return ErrNotLoggedIn
	}

	body := map[string]string{"refresh_token": c.session.RefreshToken()}
	callErr := c.do(ctx, http.MethodPost, "/auth/logout", token, body, nil)

	if err := c.session.Clear(); err != nil {
		return err
	}
	return callErr
}

// Refresh exchanges the refresh token for a new pair.
func (c *Client) Refresh(ctx context.Context) error {
	refreshToken := c.session.RefreshToken()
	if refreshToken == "" {
		return ErrNotLoggedIn
	}

	var auth dto.AuthResponse
	req := dto.RefreshTokenRequest{RefreshToken: refreshToken}
	if err := c.do(ctx, http.MethodPost, "/auth/refresh-token", "", req, &auth); err != nil {
		return err
	}
	c.session.setAuth(&auth)
	return c.session.Save()
}

func (c *Client) Me(ctx context.Context) (*dto.UserResponse, error) {
	var user dto.UserResponse
	if err := c.authed(ctx, http.MethodGet, "/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// BookAppointment creates an appointment and adds it to the cached list.
func (c *Client) BookAppointment(ctx context.Context, req dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	var appointment dto.AppointmentResponse
	if err := c.authed(ctx, http.MethodPost, "/appointments", req, &appointment); err != nil {
		return nil, err
	}
	c.session.putAppointment(appointment)
	return &appointment, c.session.Save()
}

// ListAppointments fetches appointments and replaces the cached list.
func (c *Client) ListAppointments(ctx context.Context, query dto.AppointmentListQuery) ([]dto.AppointmentResponse, error) {
	values := url.Values{}
	if query.DoctorID > 0 {
		values.Set("doctor_id", strconv.Itoa(query.DoctorID))
	}
	if query.PatientID > 0 {
		values.Set("patient_id", strconv.Itoa(query.PatientID))
	}
	if query.Date != "" {
		values.Set("date", query.Date)
	}
	if query.Status != "" {
		values.Set("status", query.Status)
	}
	path := "/appointments"
	if len(values) > 0 {
		path += "?" + values.Encode()
	}

	var list dto.AppointmentListResponse
	if err := c.authed(ctx, http.MethodGet, path, nil, &list); err != nil {
		return nil, err
	}
	c.session.setAppointments(list.Appointments)
	return list.Appointments, c.session.Save()
}

// UpdateAppointmentStatus changes an appointment's status. A nil notes keeps
// the stored notes.
func (c *Client) UpdateAppointmentStatus(ctx context.Context, id int, status string, notes *string) (*dto.AppointmentResponse, error) {
	var appointment dto.AppointmentResponse
	req := dto.UpdateAppointmentStatusRequest{Status: status, Notes: notes}
	path := fmt.Sprintf("/appointments/%d/status", id)
	if err := c.authed(ctx, http.MethodPatch, path, req, &appointment); err != nil {
		return nil, err
	}
	c.session.putAppointment(appointment)
	return &appointment, c.session.Save()
}

// authed sends a request with the session's access token. A 401 triggers one
// refresh and retry.
func (c *Client) authed(ctx context.Context, method, path string, body, out interface{}) error {
	token := c.session.Token()
	if token == "" {
		return ErrNotLoggedIn
	}

	err := c.do(ctx, method, path, token, body, out)
	if !IsStatus(err, http.StatusUnauthorized) || c.session.RefreshToken() == "" {
		return err
	}

	if refreshErr := c.Refresh(ctx); refreshErr != nil {
		return err
	}
	return c.do(ctx, method, path, c.session.Token(), body, out)
}

func (c *Client) do(ctx context.Context, method, path, token string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: env.Message}
		// Validation failures carry a field map; other errors may not.
		_ = json.Unmarshal(env.Error, &apiErr.Fields)
		return apiErr
	}

	if out != nil && len(env.Data) > 0 {
		return json.Unmarshal(env.Data, out)
	}
	return nil
}
