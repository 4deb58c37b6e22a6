package content

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	domain "beardball/internal/domain/content"
)

// DefaultRemoteTimeout bounds every remote round-trip so a hung endpoint
// cannot stall a save or page render before the local fallback kicks in.
const DefaultRemoteTimeout = 5 * time.Second

// RemoteStore talks to a hosted document endpoint with PostgREST-style
// select/upsert semantics keyed by site_id. It is always paired with a
// local store via FallbackStore; on its own it offers no durability promise.
type RemoteStore struct {
	baseURL string
	apiKey  string
	siteID  string
	client  *http.Client
}

// remoteRow mirrors the endpoint's site_content row shape.
type remoteRow struct {
	SiteID    string          `json:"site_id"`
	Content   domain.Document `json:"content"`
	UpdatedAt string          `json:"updated_at,omitempty"`
}

// NewRemoteStore creates a client for the hosted content endpoint.
// PRE: baseURL is the API root (no trailing slash needed); apiKey non-empty
// POST: Returns a client with a bounded request timeout
func NewRemoteStore(baseURL, apiKey string) *RemoteStore {
	return &RemoteStore{
		baseURL: baseURL,
		apiKey:  apiKey,
		siteID:  domain.SiteID,
		client:  &http.Client{Timeout: DefaultRemoteTimeout},
	}
}

// Select fetches the document for the site.
// POST: returns the document, ErrNotFound when the endpoint has no row,
// or a transport error
func (r *RemoteStore) Select(ctx context.Context) (domain.Document, error) {
	url := fmt.Sprintf("%s/rest/v1/site_content?site_id=eq.%s&select=content", r.baseURL, r.siteID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	r.setHeaders(req)

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("remote select: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("remote select returned %d: %s", resp.StatusCode, body)
	}

	var rows []remoteRow
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("decode remote content: %w", err)
	}
	if len(rows) == 0 || rows[0].Content == nil {
		return nil, ErrNotFound
	}
	return rows[0].Content, nil
}

// Upsert writes the full document, replacing any existing row for the site.
// POST: remote row created or replaced
func (r *RemoteStore) Upsert(ctx context.Context, doc domain.Document) error {
	payload, err := json.Marshal([]remoteRow{{
		SiteID:    r.siteID,
		Content:   doc,
		UpdatedAt: time.Now().UTC().Format(time.RFC3339),
	}})
	if err != nil {
		return fmt.Errorf("encode remote content: %w", err)
	}

	url := fmt.Sprintf("%s/rest/v1/site_content", r.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	r.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", "resolution=merge-duplicates")

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("remote upsert: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("remote upsert returned %d: %s", resp.StatusCode, body)
	}
	return nil
}

// Delete removes the remote row for the site. Used by reset; best-effort.
func (r *RemoteStore) Delete(ctx context.Context) error {
	url := fmt.Sprintf("%s/rest/v1/site_content?site_id=eq.%s", r.baseURL, r.siteID)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	r.setHeaders(req)

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("remote delete: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("remote delete returned %d: %s", resp.StatusCode, body)
	}
	return nil
}

func (r *RemoteStore) setHeaders(req *http.Request) {
	req.Header.Set("apikey", r.apiKey)
	req.Header.Set("Authorization", "Bearer "+r.apiKey)
	req.Header.Set("Accept", "application/json")
}
