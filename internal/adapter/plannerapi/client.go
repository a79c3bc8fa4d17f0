// Package plannerapi is an HTTP client for the planner REST API. Client
// implements reconciler.Store.
package plannerapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/kikiarya/hsc-planner/internal/domain"
	"github.com/kikiarya/hsc-planner/internal/reconciler"
)

// Client calls the planner API on behalf of one bearer token.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	retryDelay time.Duration
	log        *slog.Logger
}

var _ reconciler.Store = (*Client)(nil)

// New creates a Client. timeout bounds each HTTP attempt.
func New(baseURL, token string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
		retryDelay: 500 * time.Millisecond,
		log:        logger.With("adapter", "plannerapi"),
	}
}

// List returns the caller's selections.
func (c *Client) List(ctx context.Context) ([]reconciler.Confirmed, error) {
	var body apiSelectionList
	if err := c.get(ctx, "/v1/selections", &body); err != nil {
		return nil, fmt.Errorf("list selections: %w", err)
	}

	out := make([]reconciler.Confirmed, 0, len(body.Selections))
	for _, s := range body.Selections {
		out = append(out, toConfirmed(s))
	}
	return out, nil
}

// Create selects item. A duplicate returns an error wrapping
// domain.ErrAlreadyExists.
func (c *Client) Create(ctx context.Context, item reconciler.Item) (reconciler.Confirmed, error) {
	payload, err := json.Marshal(apiCreateSelection{
		SubjectCode: item.Key.Code,
		SubjectName: item.Key.Name,
		Category:    optional(item.Meta.Category),
		Reason:      optional(item.Meta.Reason),
	})
	if err != nil {
		return reconciler.Confirmed{}, fmt.Errorf("encode selection: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/v1/selections", bytes.NewReader(payload))
	if err != nil {
		return reconciler.Confirmed{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return reconciler.Confirmed{}, fmt.Errorf("create selection: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return reconciler.Confirmed{}, fmt.Errorf("create selection: %w", statusError(resp))
	}

	var created apiSelection
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return reconciler.Confirmed{}, fmt.Errorf("create selection: decode json: %w", err)
	}

	c.log.DebugContext(ctx, "selection created",
		slog.String("id", created.ID),
		slog.String("subject_code", created.SubjectCode),
	)
	return toConfirmed(created), nil
}

// Delete removes the selection with id.
func (c *Client) Delete(ctx context.Context, id string) error {
	req, err := c.newRequest(ctx, http.MethodDelete, "/v1/selections/"+url.PathEscape(id), nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("delete selection: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusOK {
		return fmt.Errorf("delete selection: %w", statusError(resp))
	}
	return nil
}

// ListSubjects returns the catalog, filtered by category when non-empty.
func (c *Client) ListSubjects(ctx context.Context, category string) ([]domain.Subject, error) {
	path := "/v1/subjects"
	if category != "" {
		path += "?" + url.Values{"category": {category}}.Encode()
	}

	var body apiSubjectList
	if err := c.get(ctx, path, &body); err != nil {
		return nil, fmt.Errorf("list subjects: %w", err)
	}

	out := make([]domain.Subject, 0, len(body.Subjects))
	for _, s := range body.Subjects {
		out = append(out, domain.Subject{
			Code:     s.Code,
			Name:     s.Name,
			Category: domain.SubjectCategory(s.Category),
			Units:    s.Units,
		})
	}
	return out, nil
}

func (c *Client) get(ctx context.Context, path string, dst any) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}

	resp, err := c.doWithRetry(ctx, req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return statusError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decode json: %w", err)
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("plannerapi: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	return req, nil
}

// doWithRetry executes a bodiless request with a single retry on 5xx or
// network errors.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request) (*http.Response, error) {
	resp, err := c.httpClient.Do(req)

	shouldRetry := err != nil || resp.StatusCode >= 500
	if !shouldRetry || ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
		resp.Body.Close()
	}
	c.log.WarnContext(ctx, "plannerapi retry",
		slog.String("path", req.URL.Path),
		slog.String("reason", reason),
	)

	select {
	case <-time.After(c.retryDelay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	return c.httpClient.Do(req)
}

// statusError converts a non-success response into an error wrapping the
// matching domain sentinel.
func statusError(resp *http.Response) error {
	msg := http.StatusText(resp.StatusCode)
	var body apiError
	if err := json.NewDecoder(io.LimitReader(resp.Body, 64<<10)).Decode(&body); err == nil && body.Error != "" {
		msg = body.Error
	}

	var sentinel error
	switch resp.StatusCode {
	case http.StatusBadRequest:
		sentinel = domain.ErrValidation
	case http.StatusUnauthorized:
		sentinel = domain.ErrUnauthorized
	case http.StatusForbidden:
		sentinel = domain.ErrForbidden
	case http.StatusNotFound:
		sentinel = domain.ErrNotFound
	case http.StatusConflict:
		sentinel = domain.ErrAlreadyExists
	default:
		return fmt.Errorf("plannerapi: status %d: %s", resp.StatusCode, msg)
	}
	return &apiStatusError{status: resp.StatusCode, msg: msg, sentinel: sentinel}
}

// apiStatusError keeps the server's message as the error text while matching
// the domain sentinel with errors.Is.
type apiStatusError struct {
	status   int
	msg      string
	sentinel error
}

func (e *apiStatusError) Error() string { return e.msg }

func (e *apiStatusError) Is(target error) bool { return errors.Is(e.sentinel, target) }

func toConfirmed(s apiSelection) reconciler.Confirmed {
	c := reconciler.Confirmed{
		ID:        s.ID,
		Key:       reconciler.Key{Code: s.SubjectCode, Name: s.SubjectName},
		CreatedAt: s.CreatedAt,
	}
	if s.Category != nil {
		c.Meta.Category = *s.Category
	}
	if s.Reason != nil {
		c.Meta.Reason = *s.Reason
	}
	return c
}

func optional(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}
