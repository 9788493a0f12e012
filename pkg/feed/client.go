package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"github.com/hallview/hallview/internal/metrics"
	"github.com/hallview/hallview/pkg/calendar"
	log "github.com/sirupsen/logrus"
)

const (
	maxRetries       = 3
	defaultBaseDelay = time.Second
	defaultMaxDelay  = 10 * time.Second
)

// StatusError reports a non-success HTTP status from the calendar backend.
// It is transient: the client retries it.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	if e.StatusCode == http.StatusBadGateway {
		return "proxy error (502 Bad Gateway)"
	}
	return fmt.Sprintf("backend returned status %d", e.StatusCode)
}

// ContractError reports a response that does not match the expected
// {"events": [...]} shape. Retrying cannot fix it, so the client fails fast.
type ContractError struct {
	Reason string
}

func (e *ContractError) Error() string {
	return "invalid calendar response: " + e.Reason
}

// Client retrieves the raw event list from the dashboard backend.
type Client struct {
	baseURL string
	http    *http.Client

	// Retry pacing, overridable in tests.
	baseDelay time.Duration
	maxDelay  time.Duration
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		http:      &http.Client{Timeout: timeout},
		baseDelay: defaultBaseDelay,
		maxDelay:  defaultMaxDelay,
	}
}

// FetchEvents issues GET /api/calendar, retrying transient failures up to
// three more times with capped exponential backoff and jitter. Contract
// violations are returned immediately without retry, and after the last
// attempt the final transient error is returned to the caller.
func (c *Client) FetchEvents(ctx context.Context) ([]calendar.RawEvent, error) {
	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			delay := c.retryDelay(attempt - 1)
			log.Infof("Retrying calendar fetch in %s (attempt %d/%d)", delay.Round(time.Millisecond), attempt+1, maxRetries+1)
			metrics.FetchRetries.Inc()
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}

		events, err := c.fetchOnce(ctx)
		if err == nil {
			return events, nil
		}

		var contractErr *ContractError
		if errors.As(err, &contractErr) {
			return nil, err
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		log.Warnf("Calendar fetch attempt %d/%d failed: %v", attempt+1, maxRetries+1, err)
		lastErr = err
	}

	return nil, fmt.Errorf("failed to fetch calendar events after %d attempts: %w", maxRetries+1, lastErr)
}

// retryDelay computes min(2^attempt * base + random(0, base), max).
func (c *Client) retryDelay(attempt int) time.Duration {
	delay := time.Duration(1<<uint(attempt))*c.baseDelay + time.Duration(rand.Int63n(int64(c.baseDelay)))
	if delay > c.maxDelay {
		delay = c.maxDelay
	}
	return delay
}

func (c *Client) fetchOnce(ctx context.Context) ([]calendar.RawEvent, error) {
	metrics.FetchAttempts.Inc()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/calendar", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calendar request failed: %w", err)
	}
	defer resp.Body.Close()

	log.Debugf("Calendar API response status: %d", resp.StatusCode)

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, &StatusError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return decodeEvents(body)
}

// decodeEvents validates the response shape. Individual entries that are not
// objects are kept as nil records so the normalizer can reject them without
// aborting the batch; a malformed envelope is a contract violation.
func decodeEvents(body []byte) ([]calendar.RawEvent, error) {
	var payload struct {
		Events json.RawMessage `json:"events"`
		Error  string          `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, &ContractError{Reason: "body is not a JSON object"}
	}
	if payload.Error != "" {
		return nil, &ContractError{Reason: "backend reported an error: " + payload.Error}
	}
	if len(payload.Events) == 0 || string(payload.Events) == "null" {
		return nil, &ContractError{Reason: "missing events field"}
	}

	var items []json.RawMessage
	if err := json.Unmarshal(payload.Events, &items); err != nil {
		return nil, &ContractError{Reason: "events field is not an array"}
	}

	raws := make([]calendar.RawEvent, 0, len(items))
	for _, item := range items {
		var raw calendar.RawEvent
		if err := json.Unmarshal(item, &raw); err != nil {
			raws = append(raws, nil)
			continue
		}
		raws = append(raws, raw)
	}
	return raws, nil
}
