package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	analyzePath = "/analyze"
	healthPath  = "/health"
)

type Client struct {
	http *http.Client
	base *url.URL
}

// New creates a client for the analysis backend at base. A zero timeout
// leaves requests unbounded.
func New(base *url.URL, headers map[string]string, timeout time.Duration) *Client {
	// Create http client
	client := &http.Client{
		Timeout: timeout,
		Transport: AuthMiddleware{
			Headers: headers,
			Proxied: http.DefaultTransport,
		},
	}

	return &Client{
		http: client,
		base: base,
	}
}

// Analyze sends text to POST /analyze. The HTTP status is not inspected:
// the envelope decides between success and a BackendError.
func (c *Client) Analyze(ctx context.Context, text string) (*AnalysisResponse, error) {
	body, err := json.Marshal(AnalyzeRequest{Text: text})
	if err != nil {
		return nil, &NetworkError{Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(analyzePath), bytes.NewReader(body))
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	var envelope AnalyzeEnvelope
	if err := c.do(req, &envelope); err != nil {
		return nil, &NetworkError{Err: err}
	}

	if envelope.Error {
		return nil, &BackendError{Message: envelope.Message}
	}
	if envelope.Data == nil {
		return nil, &NetworkError{Err: ErrNoData}
	}

	return envelope.Data, nil
}

// Health queries GET /health.
func (c *Client) Health(ctx context.Context) (*Health, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(healthPath), nil)
	if err != nil {
		return nil, err
	}

	var health Health
	if err := c.do(req, &health); err != nil {
		return nil, err
	}

	return &health, nil
}

func (c *Client) do(req *http.Request, out any) error {
	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("could not read response: %w", err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("could not decode response (status %d): %w", res.StatusCode, err)
	}

	return nil
}

func (c *Client) endpoint(path string) string {
	return c.base.JoinPath(path).String()
}

type AuthMiddleware struct {
	Headers map[string]string
	Proxied http.RoundTripper
}

func (am AuthMiddleware) RoundTrip(req *http.Request) (res *http.Response, e error) {
	for k, v := range am.Headers {
		req.Header.Add(k, v)
	}

	return am.Proxied.RoundTrip(req)
}
