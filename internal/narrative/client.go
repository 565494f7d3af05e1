package narrative

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/value-edge/internal/config"
	"github.com/yourusername/value-edge/internal/metrics"
)

// Client calls the hosted reasoning service over REST. The service's internal
// protocol details (model selection, keys) stay behind this type.
type Client struct {
	http   *RateLimitedHTTPClient
	config *config.NarrativeConfig
	logger *logrus.Logger
}

// NewClient creates a reasoning service client from configuration.
func NewClient(cfg *config.NarrativeConfig, logger *logrus.Logger) *Client {
	httpCfg := DefaultHTTPClientConfig()
	if cfg.RequestTimeoutSeconds > 0 {
		httpCfg.Timeout = time.Duration(cfg.RequestTimeoutSeconds) * time.Second
	}
	if cfg.MaxRetries > 0 {
		httpCfg.MaxRetries = cfg.MaxRetries
	}
	if cfg.RateLimit > 0 {
		httpCfg.RateLimit = cfg.RateLimit
	}

	return &Client{
		http:   NewRateLimitedHTTPClient(httpCfg, logger),
		config: cfg,
		logger: logger,
	}
}

// generateRequest is the payload sent to the reasoning service.
type generateRequest struct {
	Model  string `json:"model,omitempty"`
	Prompt string `json:"prompt"`
}

// generateResponse is the payload returned by the reasoning service.
type generateResponse struct {
	Text string `json:"text"`
}

// Generate sends the computed facts to the reasoning service and returns its
// free-text analysis. Errors are returned for the caller to degrade on; the
// caller must never treat them as fatal.
func (c *Client) Generate(ctx context.Context, facts Facts) (string, error) {
	start := time.Now()
	defer func() {
		metrics.NarrativeLatency.Observe(time.Since(start).Seconds())
	}()

	reqBody := generateRequest{
		Model:  c.config.Model,
		Prompt: BuildPrompt(facts),
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+"/v1/generate", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.config.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	}

	resp, err := c.http.Do(ctx, req)
	if err != nil {
		metrics.NarrativeRequestsTotal.WithLabelValues("network_error").Inc()
		return "", fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		metrics.NarrativeRequestsTotal.WithLabelValues("http_error").Inc()
		return "", fmt.Errorf("%w: status %d: %s", ErrServiceUnavailable, resp.StatusCode, string(body))
	}

	var genResp generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&genResp); err != nil {
		metrics.NarrativeRequestsTotal.WithLabelValues("decode_error").Inc()
		return "", fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	text := strings.TrimSpace(genResp.Text)
	if text == "" {
		metrics.NarrativeRequestsTotal.WithLabelValues("empty").Inc()
		c.logger.Debug("Reasoning service returned empty analysis text")
		return "", nil
	}

	metrics.NarrativeRequestsTotal.WithLabelValues("success").Inc()
	return text, nil
}

// HealthCheck checks reasoning service health.
func (c *Client) HealthCheck(ctx context.Context) error {
	resp, err := c.http.Get(ctx, c.config.BaseURL+"/health")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", ErrServiceUnavailable, resp.StatusCode)
	}

	return nil
}

// Ping adapts HealthCheck to the health server's pinger interface.
func (c *Client) Ping(ctx context.Context) error {
	return c.HealthCheck(ctx)
}

// Close releases the underlying HTTP resources.
func (c *Client) Close() error {
	return c.http.Close()
}
