// Package connectorclient submits content to a connector ingest endpoint.
package connectorclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	defaultRoutePrefix = "/connector/v1"
	defaultTimeout     = 10 * time.Second
	maxResponseBytes   = 64 << 10
)

type Client struct {
	Endpoint    string
	APIKey      string
	RoutePrefix string
	Timeout     time.Duration
	HTTPClient  *http.Client
}

// Submission is one piece of content to file as a draft.
type Submission struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Category    string   `json:"category,omitempty"`
	MediaURL    string   `json:"media_url,omitempty"`
}

type Result struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	PostID  int64  `json:"postId,omitempty"`
}

// RejectedError is returned when the connector answers with a non-2xx status.
type RejectedError struct {
	StatusCode int
	Result     Result
}

func (e *RejectedError) Error() string {
	if e.Result.Message != "" {
		return fmt.Sprintf("connector rejected submission: status=%d %s: %s", e.StatusCode, e.Result.Status, e.Result.Message)
	}
	return fmt.Sprintf("connector rejected submission: status=%d", e.StatusCode)
}

// Submit posts the submission as JSON with the API key as a bearer token.
func (c Client) Submit(ctx context.Context, submission Submission) (Result, error) {
	endpoint := strings.TrimSpace(c.Endpoint)
	apiKey := strings.TrimSpace(c.APIKey)
	if endpoint == "" || apiKey == "" {
		return Result{}, fmt.Errorf("endpoint/api key are required")
	}

	body, err := json.Marshal(submission)
	if err != nil {
		return Result{}, fmt.Errorf("encode submission: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.ingestURL(endpoint), bytes.NewReader(body))
	if err != nil {
		return Result{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return Result{}, fmt.Errorf("read response: %w", err)
	}

	var result Result
	if len(bytes.TrimSpace(payload)) > 0 {
		if err := json.Unmarshal(payload, &result); err != nil && resp.StatusCode < http.StatusMultipleChoices {
			return Result{}, fmt.Errorf("decode response: %w", err)
		}
	}
	if resp.StatusCode >= http.StatusMultipleChoices {
		if result.Message == "" {
			result.Message = strings.TrimSpace(string(payload))
		}
		return result, &RejectedError{StatusCode: resp.StatusCode, Result: result}
	}
	return result, nil
}

func (c Client) ingestURL(endpoint string) string {
	prefix := strings.TrimSpace(c.RoutePrefix)
	if prefix == "" {
		prefix = defaultRoutePrefix
	}
	return strings.TrimRight(endpoint, "/") + "/" + strings.Trim(prefix, "/") + "/ingest"
}

func (c Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &http.Client{Timeout: timeout, Transport: otelhttp.NewTransport(http.DefaultTransport)}
}
