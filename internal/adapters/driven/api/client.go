// Package api implements the driven.CandidateAPI port against the remote
// recruiter service's JSON-over-HTTP interface.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/parassrivastav/traqcheck-cli/internal/core/domain"
	"github.com/parassrivastav/traqcheck-cli/internal/core/ports/driven"

	"github.com/parassrivastav/traqcheck-cli/internal/logger"
)

const (
	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// requestRate paces outgoing calls so that poll ticks, retries and
	// user actions never burst the server.
	requestRate = 8.0

	// requestBurst allows a selection (detail + documents) plus a user
	// action to fire without waiting.
	requestBurst = 4
)

// Ensure Client implements the port.
var _ driven.CandidateAPI = (*Client)(nil)

// Client is the HTTP client for the recruiter API.
type Client struct {
	base    *url.URL
	http    *http.Client
	limiter *rate.Limiter
}

// NewClient creates a client for the given base URL, e.g.
// "http://localhost:5000".
func NewClient(baseURL string) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base URL: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("%w: base URL %q must be absolute", domain.ErrInvalidInput, baseURL)
	}
	return &Client{
		base:    base,
		http:    &http.Client{Timeout: DefaultTimeout},
		limiter: rate.NewLimiter(rate.Limit(requestRate), requestBurst),
	}, nil
}

// ListCandidates fetches the full candidate list.
func (c *Client) ListCandidates(ctx context.Context) ([]domain.Candidate, error) {
	var dtos []candidateDTO
	if err := c.getJSON(ctx, "list candidates", "/candidates", &dtos); err != nil {
		return nil, err
	}
	candidates := make([]domain.Candidate, 0, len(dtos))
	for i := range dtos {
		candidates = append(candidates, dtos[i].toDomain())
	}
	return candidates, nil
}

// GetCandidate fetches one candidate's full detail.
func (c *Client) GetCandidate(ctx context.Context, id string) (*domain.Candidate, error) {
	var dto candidateDTO
	if err := c.getJSON(ctx, "get candidate", "/candidates/"+url.PathEscape(id), &dto); err != nil {
		return nil, err
	}
	candidate := dto.toDomain()
	return &candidate, nil
}

// ListDocuments fetches the identity documents for a candidate.
func (c *Client) ListDocuments(ctx context.Context, candidateID string) ([]domain.Document, error) {
	var dtos []documentDTO
	path := "/candidates/" + url.PathEscape(candidateID) + "/documents"
	if err := c.getJSON(ctx, "list documents", path, &dtos); err != nil {
		return nil, err
	}
	docs := make([]domain.Document, 0, len(dtos))
	for i := range dtos {
		docs = append(docs, dtos[i].toDomain(candidateID))
	}
	return docs, nil
}

// RequestDocuments triggers identity-document collection.
func (c *Client) RequestDocuments(ctx context.Context, candidateID string) (string, error) {
	var resp struct {
		Message string `json:"message"`
	}
	path := "/candidates/" + url.PathEscape(candidateID) + "/request-documents"
	if err := c.postJSON(ctx, "request documents", path, nil, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// UpdateTelegram links a Telegram handle to a candidate.
func (c *Client) UpdateTelegram(ctx context.Context, candidateID, username string) error {
	body := map[string]string{"telegram_username": username}
	path := "/candidates/" + url.PathEscape(candidateID) + "/telegram"
	return c.postJSON(ctx, "update telegram", path, body, nil)
}

// DeleteCandidate removes a candidate and its documents.
func (c *Client) DeleteCandidate(ctx context.Context, id string) error {
	req, err := c.newRequest(ctx, http.MethodDelete, "/candidates/"+url.PathEscape(id), nil)
	if err != nil {
		return err
	}
	return c.do("delete candidate", req, nil)
}

// ResolveFileURL resolves a possibly relative document file URL against
// the configured API base.
func (c *Client) ResolveFileURL(raw string) string {
	if raw == "" {
		return ""
	}
	ref, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	if ref.IsAbs() {
		return raw
	}
	return c.base.ResolveReference(ref).String()
}

// getJSON performs a rate-limited GET and decodes the response into out.
func (c *Client) getJSON(ctx context.Context, op, path string, out any) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	return c.do(op, req, out)
}

// postJSON performs a rate-limited POST with an optional JSON body.
func (c *Client) postJSON(ctx context.Context, op, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: encode body: %w", op, err)
		}
		reader = bytes.NewReader(encoded)
	}
	req, err := c.newRequest(ctx, http.MethodPost, path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.do(op, req, out)
}

// newRequest builds a request against the API base.
func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.base.String()+path, body)
	if err != nil {
		return nil, fmt.Errorf("build request %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

// do sends the request and decodes a 2xx body into out when non-nil.
// Non-2xx responses become *Error with the envelope's error field;
// transport failures become *Error with Status 0.
func (c *Client) do(op string, req *http.Request, out any) error {
	if err := c.limiter.Wait(req.Context()); err != nil {
		return &Error{Op: op, Err: err}
	}

	logger.Debug("api: %s %s", req.Method, req.URL.Path)
	resp, err := c.http.Do(req)
	if err != nil {
		return &Error{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Error{Op: op, Status: resp.StatusCode, Message: decodeErrorMessage(resp.Body)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{Op: op, Status: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

// decodeErrorMessage extracts the optional error field from a failure
// envelope. Absence falls back to the caller's per-operation message.
func decodeErrorMessage(body io.Reader) string {
	var envelope struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(io.LimitReader(body, 1<<16)).Decode(&envelope); err != nil {
		return ""
	}
	return envelope.Error
}
