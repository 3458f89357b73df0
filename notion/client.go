package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/karigane/bookscan/config"
	"github.com/karigane/bookscan/log"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// ErrNotConfigured means the bearer token or the database id is missing or a
// placeholder. A deployment gap, not a runtime failure.
var ErrNotConfigured = errors.New("notion credentials not configured")

const (
	notionVersion = "2022-06-28"
	submitTimeout = 15 * time.Second

	// Response bodies are kept for diagnostics but never echoed to users.
	maxErrorBodySize = 4 << 10
)

// SubmitError carries the diagnostic detail of a rejected or unreachable
// store write. The detail is logged at the boundary, the error string stays
// short.
type SubmitError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *SubmitError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("store rejected submission: status %d", e.StatusCode)
	}
	return fmt.Sprintf("store unreachable: %v", e.Err)
}

func (e *SubmitError) Unwrap() error {
	return e.Err
}

// Client submits mapped records to the Notion pages endpoint. One attempt
// per call, no internal retry.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	databaseID string
}

func NewClient(baseURL, token, databaseID string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: submitTimeout,
		},
		baseURL:    baseURL,
		token:      token,
		databaseID: databaseID,
	}
}

// Configured reports whether the client holds usable credentials.
func (c *Client) Configured() bool {
	return !config.IsPlaceholder(c.token) && !config.IsPlaceholder(c.databaseID)
}

type pageParent struct {
	DatabaseID string `json:"database_id"`
}

type pageRequest struct {
	Parent     pageParent     `json:"parent"`
	Properties map[string]any `json:"properties"`
}

type pageResponse struct {
	ID string `json:"id"`
}

// CreatePage posts the property mapping as a new page and returns the id the
// store assigned. Fails fast with ErrNotConfigured before any network I/O
// when credentials are absent.
func (c *Client) CreatePage(ctx context.Context, properties map[string]any) (string, error) {
	if !c.Configured() {
		return "", ErrNotConfigured
	}

	payload, err := json.Marshal(pageRequest{
		Parent:     pageParent{DatabaseID: c.databaseID},
		Properties: properties,
	})
	if err != nil {
		return "", errors.Wrap(err, "marshal page request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/pages", bytes.NewReader(payload))
	if err != nil {
		return "", errors.Wrap(err, "build page request")
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Notion-Version", notionVersion)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("Store submission transport failure", zap.Error(err))
		return "", &SubmitError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		log.Error("Store rejected submission",
			zap.Int("status_code", resp.StatusCode),
			zap.ByteString("response_body", body),
		)
		return "", &SubmitError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var page pageResponse
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		log.Error("Store returned malformed body", zap.Error(err))
		return "", &SubmitError{Err: err}
	}
	return page.ID, nil
}
