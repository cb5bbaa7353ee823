package ui

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Entry mirrors the server's journal entry payload.
type Entry struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type entryRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type authResponse struct {
	AccessToken string `json:"access_token"`
	Username    string `json:"username"`
}

type apiError struct {
	Error string `json:"error"`
}

// Session is the authenticated HTTP connection to the backend. The token
// lives only in memory; logout is simply dropping it.
type Session struct {
	BaseURL  string
	Token    string
	Username string
	http     *http.Client
}

func NewSession(baseURL string) *Session {
	return &Session{
		BaseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *Session) do(method, path string, body, out any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}
	req, err := http.NewRequest(method, s.BaseURL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if s.Token != "" {
		req.Header.Set("Authorization", "Bearer "+s.Token)
	}
	resp, err := s.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr apiError
		if json.NewDecoder(resp.Body).Decode(&apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("%s", apiErr.Error)
		}
		return fmt.Errorf("server returned %s", resp.Status)
	}
	if out != nil && resp.StatusCode != http.StatusNoContent {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

func (s *Session) Login(username, password string) error {
	var resp authResponse
	err := s.do(http.MethodPost, "/auth/login",
		map[string]string{"username": username, "password": password}, &resp)
	if err != nil {
		return err
	}
	s.Token = resp.AccessToken
	s.Username = resp.Username
	return nil
}

func (s *Session) ListEntries() ([]Entry, error) {
	var entries []Entry
	if err := s.do(http.MethodGet, "/journal", nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *Session) CreateEntry(title, content string) (*Entry, error) {
	var e Entry
	if err := s.do(http.MethodPost, "/journal", entryRequest{Title: title, Content: content}, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *Session) UpdateEntry(id, title, content string) (*Entry, error) {
	var e Entry
	if err := s.do(http.MethodPut, "/journal/"+id, entryRequest{Title: title, Content: content}, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *Session) DeleteEntry(id string) error {
	return s.do(http.MethodDelete, "/journal/"+id, nil, nil)
}
