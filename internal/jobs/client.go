package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/kamusis/jobskill-cli/internal/logging"
)

const maxBodyBytes = 8 << 20

// ErrUnreachable marks failures to establish a connection to the service.
var ErrUnreachable = errors.New("service unreachable")

// StatusError is returned for non-2xx responses.
type StatusError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("HTTP %s", e.Status)
	}
	return fmt.Sprintf("HTTP %s: %s", e.Status, e.Body)
}

// Client talks to the job aggregation API. Every call makes exactly one
// request; failures are returned, never retried.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient constructs a client for baseURL (e.g. http://localhost:3000/api).
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// BaseURL returns the normalized API base.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Search requests up to limit postings matching all skills.
// A response with success=false is returned as a result, not an error.
func (c *Client) Search(ctx context.Context, skills []string, limit int) (*SearchResult, error) {
	if len(skills) == 0 {
		return nil, fmt.Errorf("at least one skill is required")
	}
	var res SearchResult
	if err := c.getJSON(ctx, Target(c.baseURL, skills, limit), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Skills fetches the service's skill catalog.
func (c *Client) Skills(ctx context.Context) (SkillCatalog, error) {
	var body catalogResponse
	if err := c.getJSON(ctx, c.baseURL+catalogPath, &body); err != nil {
		return nil, err
	}
	if !body.Success {
		return nil, fmt.Errorf("skills request reported failure")
	}
	return SkillCatalog(body.Skills), nil
}

func (c *Client) getJSON(ctx context.Context, target string, out any) error {
	log := logging.FromContext(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("cannot build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "jobskill-cli")

	log.Debug("sending request", "method", req.Method, "url", target)
	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		if isConnectError(err) {
			return fmt.Errorf("%w: %w", ErrUnreachable, err)
		}
		return err
	}
	defer resp.Body.Close()
	log.Debug("received response", "status", resp.Status, "elapsed", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 8192))
		return &StatusError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(out); err != nil {
		return fmt.Errorf("cannot decode response from %s: %w", target, err)
	}
	return nil
}

// isConnectError reports whether err happened before a connection existed:
// refused/unroutable dials and DNS failures.
func isConnectError(err error) bool {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	var opErr *net.OpError
	return errors.As(err, &opErr) && opErr.Op == "dial"
}
