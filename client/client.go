// Package client is a Go client for the HealthTrack REST API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrNotLoggedIn is returned by calls that need a session when none is held.
var ErrNotLoggedIn = errors.New("not logged in")

// APIError is a non-2xx answer from the server.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (%d): %s", e.Status, e.Message)
}

type Client struct {
	baseURL string
	http    *http.Client
	store   SessionStore
	session *Session
}

// New creates a client rooted at baseURL (e.g. http://localhost:8080) and
// restores any session the store holds.
func New(baseURL string, store SessionStore) (*Client, error) {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 60 * time.Second},
		store:   store,
	}
	s, err := store.Load()
	switch {
	case errors.Is(err, ErrNoSession):
	case err != nil:
		return nil, fmt.Errorf("load session: %w", err)
	default:
		c.session = s
	}
	return c, nil
}

// Session returns the current session, or nil when logged out.
func (c *Client) Session() *Session {
	return c.session
}

func (c *Client) do(ctx context.Context, method, path string, auth bool, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/api"+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if auth {
		if c.session == nil {
			return ErrNotLoggedIn
		}
		req.Header.Set("Authorization", "Bearer "+c.session.Token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(respBytes, &e) != nil || e.Message == "" {
			e.Message = strings.TrimSpace(string(respBytes))
		}
		return &APIError{Status: resp.StatusCode, Message: e.Message}
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(respBytes, out)
}

type authResponse struct {
	User
	Token string `json:"token"`
}

func (c *Client) startSession(res authResponse) (*User, error) {
	s := &Session{Token: res.Token, User: res.User}
	if err := c.store.Save(s); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	c.session = s
	return &s.User, nil
}

func (c *Client) Register(ctx context.Context, in RegisterRequest) (*User, error) {
	var res authResponse
	if err := c.do(ctx, http.MethodPost, "/users/register", false, in, &res); err != nil {
		return nil, err
	}
	return c.startSession(res)
}

func (c *Client) Login(ctx context.Context, email, password string) (*User, error) {
	var res authResponse
	in := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/users/login", false, in, &res); err != nil {
		return nil, err
	}
	return c.startSession(res)
}

func (c *Client) Logout() error {
	c.session = nil
	return c.store.Clear()
}

func (c *Client) Profile(ctx context.Context) (*Profile, error) {
	var p Profile
	if err := c.do(ctx, http.MethodGet, "/users/profile", true, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateAvatar uploads a data-URI image and returns its public URL.
func (c *Client) UpdateAvatar(ctx context.Context, dataURI string) (string, error) {
	var res struct {
		ProfilePicture string `json:"profilePicture"`
	}
	if err := c.do(ctx, http.MethodPut, "/users/avatar", true, map[string]string{"image": dataURI}, &res); err != nil {
		return "", err
	}
	return res.ProfilePicture, nil
}

func (c *Client) Foods(ctx context.Context) ([]FoodEntry, error) {
	var out []FoodEntry
	if err := c.do(ctx, http.MethodGet, "/foods", true, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AddFood(ctx context.Context, in FoodInput) (*FoodEntry, error) {
	var out FoodEntry
	if err := c.do(ctx, http.MethodPost, "/foods", true, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Exercises(ctx context.Context) ([]ExerciseEntry, error) {
	var out []ExerciseEntry
	if err := c.do(ctx, http.MethodGet, "/exercises", true, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AddExercise(ctx context.Context, in ExerciseInput) (*ExerciseEntry, error) {
	var out ExerciseEntry
	if err := c.do(ctx, http.MethodPost, "/exercises", true, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Dashboard(ctx context.Context) (*Summary, error) {
	var out Summary
	if err := c.do(ctx, http.MethodGet, "/dashboard", true, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AnalyzeFood(ctx context.Context, text string) ([]FoodCandidate, error) {
	var out []FoodCandidate
	if err := c.do(ctx, http.MethodPost, "/ai/food", true, map[string]string{"text": text}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AnalyzeExercise(ctx context.Context, text string) ([]ExerciseCandidate, error) {
	var out []ExerciseCandidate
	if err := c.do(ctx, http.MethodPost, "/ai/exercise", true, map[string]string{"text": text}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AnalyzeFoodPhoto(ctx context.Context, dataURI string) ([]FoodCandidate, error) {
	var out []FoodCandidate
	if err := c.do(ctx, http.MethodPost, "/ai/food/photo", true, map[string]string{"image": dataURI}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Alerts(ctx context.Context) ([]Alert, error) {
	var out []Alert
	if err := c.do(ctx, http.MethodGet, "/alerts", true, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) RegisterDevice(ctx context.Context, platform, token string) (string, error) {
	var res struct {
		EndpointArn string `json:"endpointArn"`
	}
	in := map[string]string{"platform": platform, "token": token}
	if err := c.do(ctx, http.MethodPost, "/devices", true, in, &res); err != nil {
		return "", err
	}
	return res.EndpointArn, nil
}

func (c *Client) ToggleNotifications(ctx context.Context, enabled bool) error {
	return c.do(ctx, http.MethodPost, "/notifications/toggle", true, map[string]bool{"enabled": enabled}, nil)
}

// Today fetches the day's entries and totals them against the session user's goal.
func (c *Client) Today(ctx context.Context) ([]FoodEntry, []ExerciseEntry, Totals, error) {
	foods, err := c.Foods(ctx)
	if err != nil {
		return nil, nil, Totals{}, err
	}
	exercises, err := c.Exercises(ctx)
	if err != nil {
		return nil, nil, Totals{}, err
	}
	return foods, exercises, ComputeTotals(foods, exercises, c.session.User.CalorieGoal), nil
}
