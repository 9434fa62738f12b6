// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/memvault/memvault/internal/config"
	"github.com/memvault/memvault/internal/logger"
	"github.com/memvault/memvault/internal/utils"
	"github.com/memvault/memvault/models"
)

type httpBackendAdapter struct {
	client *utils.HTTPClient

	token string

	logger *logger.Logger
}

// NewHTTPBackendAdapter constructs an HTTP/REST implementation of
// [BackendAdapter]. It normalises and validates the base URL from
// adapterCfg.BaseURL and configures the underlying HTTP client with the
// resolved base URL, the request timeout, and the static API-key header.
//
// Returns an error if adapterCfg.BaseURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPBackendAdapter(adapterCfg config.Adapter, appCfg config.App, log *logger.Logger) (BackendAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid backend base url: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		SetHeader("apikey", adapterCfg.APIKey).
		SetHeader("User-Agent", fmt.Sprintf("%s/%s", appCfg.Name, appCfg.Version))

	return &httpBackendAdapter{client: client, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [BackendAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent requests.
func (a *httpBackendAdapter) SetToken(token string) {
	a.token = strings.TrimSpace(token)
}

func (a *httpBackendAdapter) request(ctx context.Context) *resty.Request {
	req := a.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json")

	if a.token != "" {
		req.SetHeader("Authorization", "Bearer "+a.token)
	}

	return req
}

func (a *httpBackendAdapter) get(ctx context.Context, path string, out any) error {
	resp, err := a.request(ctx).SetResult(out).Get(path)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	return mapHTTPError(resp)
}

func (a *httpBackendAdapter) post(ctx context.Context, path string, body, out any) error {
	req := a.request(ctx).SetBody(body)
	if out != nil {
		req.SetResult(out)
	}
	resp, err := req.Post(path)
	if err != nil {
		return fmt.Errorf("POST %s: %w", path, err)
	}
	return mapHTTPError(resp)
}

func (a *httpBackendAdapter) put(ctx context.Context, path string, body any) error {
	resp, err := a.request(ctx).SetBody(body).Put(path)
	if err != nil {
		return fmt.Errorf("PUT %s: %w", path, err)
	}
	return mapHTTPError(resp)
}

func (a *httpBackendAdapter) delete(ctx context.Context, path string) error {
	resp, err := a.request(ctx).Delete(path)
	if err != nil {
		return fmt.Errorf("DELETE %s: %w", path, err)
	}
	return mapHTTPError(resp)
}

func (a *httpBackendAdapter) UserSettings(ctx context.Context, userID string) (models.UserSettings, error) {
	var s models.UserSettings
	if err := a.get(ctx, "/api/settings/"+url.PathEscape(userID), &s); err != nil {
		return models.UserSettings{}, err
	}
	return s, nil
}

func (a *httpBackendAdapter) SaveUserSettings(ctx context.Context, s models.UserSettings) error {
	return a.put(ctx, "/api/settings/"+url.PathEscape(s.UserID), s)
}

func (a *httpBackendAdapter) CreateJournalEntry(ctx context.Context, entry models.JournalEntry) (models.JournalEntry, error) {
	var created models.JournalEntry
	if err := a.post(ctx, "/api/journal", entry, &created); err != nil {
		return models.JournalEntry{}, err
	}
	return created, nil
}

func (a *httpBackendAdapter) ListJournalEntries(ctx context.Context, userID string) ([]models.JournalEntry, error) {
	var entries []models.JournalEntry
	if err := a.get(ctx, "/api/journal?user_id="+url.QueryEscape(userID), &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (a *httpBackendAdapter) UpdateJournalEntry(ctx context.Context, entry models.JournalEntry) error {
	return a.put(ctx, "/api/journal/"+url.PathEscape(entry.ID), entry)
}

func (a *httpBackendAdapter) DeleteJournalEntry(ctx context.Context, id string) error {
	return a.delete(ctx, "/api/journal/"+url.PathEscape(id))
}

func (a *httpBackendAdapter) CreateEvent(ctx context.Context, event models.Event) (models.Event, error) {
	var created models.Event
	if err := a.post(ctx, "/api/events", event, &created); err != nil {
		return models.Event{}, err
	}
	return created, nil
}

func (a *httpBackendAdapter) ListEvents(ctx context.Context, userID string) ([]models.Event, error) {
	var events []models.Event
	if err := a.get(ctx, "/api/events?user_id="+url.QueryEscape(userID), &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (a *httpBackendAdapter) UpdateEvent(ctx context.Context, event models.Event) error {
	return a.put(ctx, "/api/events/"+url.PathEscape(event.ID), event)
}

func (a *httpBackendAdapter) DeleteEvent(ctx context.Context, id string) error {
	return a.delete(ctx, "/api/events/"+url.PathEscape(id))
}

func (a *httpBackendAdapter) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	var created models.Note
	if err := a.post(ctx, "/api/notes", note, &created); err != nil {
		return models.Note{}, err
	}
	return created, nil
}

func (a *httpBackendAdapter) ListNotes(ctx context.Context, userID string) ([]models.Note, error) {
	var notes []models.Note
	if err := a.get(ctx, "/api/notes?user_id="+url.QueryEscape(userID), &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

func (a *httpBackendAdapter) UpdateNote(ctx context.Context, note models.Note) error {
	return a.put(ctx, "/api/notes/"+url.PathEscape(note.ID), note)
}

func (a *httpBackendAdapter) DeleteNote(ctx context.Context, id string) error {
	return a.delete(ctx, "/api/notes/"+url.PathEscape(id))
}

func (a *httpBackendAdapter) Streak(ctx context.Context, userID string) (models.Streak, error) {
	var s models.Streak
	if err := a.get(ctx, "/api/streaks/"+url.PathEscape(userID), &s); err != nil {
		return models.Streak{}, err
	}
	return s, nil
}

func (a *httpBackendAdapter) SaveStreak(ctx context.Context, s models.Streak) error {
	return a.put(ctx, "/api/streaks/"+url.PathEscape(s.UserID), s)
}
