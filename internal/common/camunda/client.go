// internal/common/camunda/client.go
package camunda

import (
	"context"
	"fmt"
	"strings"
	"time"

	"loan-eligibility-workers/internal/common/config"
	"loan-eligibility-workers/internal/common/errors"
	"loan-eligibility-workers/internal/common/logger"

	"github.com/camunda/zeebe/clients/go/v8/pkg/zbc"
)

type RetryConfig struct {
	MaxRetries int
	BaseDelay  time.Duration
	MaxDelay   time.Duration
}

var DefaultRetryConfig = RetryConfig{
	MaxRetries: 10,
	BaseDelay:  2 * time.Second,
	MaxDelay:   30 * time.Second,
}

// Client wraps a zbc.Client that has answered a topology request.
type Client struct {
	client         zbc.Client
	requestTimeout time.Duration
}

// Connect creates a Zeebe client and waits for the gateway with exponential
// backoff. Only transient errors are retried.
func Connect(ctx context.Context, cfg config.CamundaConfig, retry RetryConfig, log logger.Logger) (*Client, error) {
	requestTimeout := config.GetDuration(cfg.RequestTimeout)
	if requestTimeout <= 0 {
		requestTimeout = 30 * time.Second
	}

	zeebeClient, err := zbc.NewClient(&zbc.ClientConfig{
		GatewayAddress:         cfg.BrokerAddress,
		UsePlaintextConnection: cfg.UsePlaintextConnection,
	})
	if err != nil {
		return nil, errors.NewExternalServiceError("zeebe", fmt.Errorf("create client: %w", err))
	}

	c := &Client{client: zeebeClient, requestTimeout: requestTimeout}

	err = Retry(ctx, retry, func() error { return c.HealthCheck(ctx) }, func(attempt int, err error, next time.Duration) {
		log.Warn("zeebe gateway not ready, retrying", map[string]interface{}{
			"address":     cfg.BrokerAddress,
			"attempt":     attempt,
			"maxRetries":  retry.MaxRetries,
			"nextRetryIn": next.String(),
			"error":       err,
		})
	})
	if err != nil {
		_ = zeebeClient.Close()
		return nil, mapZeebeError(err, "connect")
	}

	return c, nil
}

// Retry runs op until it succeeds, returns a non-retryable error, exhausts
// MaxRetries attempts or ctx is done.
func Retry(ctx context.Context, cfg RetryConfig, op func() error, onRetry func(attempt int, err error, next time.Duration)) error {
	var lastErr error
	delay := cfg.BaseDelay

	for attempt := 1; attempt <= cfg.MaxRetries; attempt++ {
		lastErr = op()
		if lastErr == nil {
			return nil
		}
		if !isRetryableZeebeError(lastErr) || attempt == cfg.MaxRetries {
			break
		}

		if onRetry != nil {
			onRetry(attempt, lastErr, delay)
		}

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return fmt.Errorf("cancelled after %d attempts: %w", attempt, ctx.Err())
		}

		delay *= 2
		if delay > cfg.MaxDelay {
			delay = cfg.MaxDelay
		}
	}

	return lastErr
}

func (c *Client) Zeebe() zbc.Client {
	return c.client
}

func (c *Client) Close() error {
	return c.client.Close()
}

func (c *Client) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.requestTimeout)
	defer cancel()

	if _, err := c.client.NewTopologyCommand().Send(ctx); err != nil {
		return fmt.Errorf("zeebe health check failed: %w", err)
	}
	return nil
}

func isRetryableZeebeError(err error) bool {
	msg := strings.ToLower(err.Error())
	for _, phrase := range []string{
		"connection refused",
		"connection reset",
		"timeout",
		"deadline exceeded",
		"unavailable",
		"unreachable",
		"broken pipe",
	} {
		if strings.Contains(msg, phrase) {
			return true
		}
	}
	return false
}

func mapZeebeError(err error, operation string) error {
	wrapped := fmt.Errorf("zeebe operation '%s' failed: %w", operation, err)
	lowerMsg := strings.ToLower(err.Error())

	if strings.Contains(lowerMsg, "timeout") || strings.Contains(lowerMsg, "deadline exceeded") {
		return errors.NewTimeoutError("zeebe", wrapped)
	}
	return errors.NewExternalServiceError("zeebe", wrapped)
}
