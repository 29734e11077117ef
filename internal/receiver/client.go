package receiver

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/feral-file/nft-ledger/internal/adapter"
	"github.com/feral-file/nft-ledger/internal/logger"
	"github.com/feral-file/nft-ledger/internal/store/schema"
)

// maxResultBytes bounds the hook result body read into memory
const maxResultBytes = 4 * 1024

// Config holds the configuration for the receiver hook client
type Config struct {
	// Timeout bounds one HTTP attempt
	Timeout time.Duration
	// MaxRetries is the number of retries per hook call. Connection
	// failures and non-2xx responses are both retried.
	MaxRetries uint64
	// ApprovePoolSize bounds concurrent fire-and-forget approval notifications
	ApprovePoolSize int
}

// Client defines the interface for invoking receiver contract hooks
//
//go:generate mockgen -source=client.go -destination=../mocks/receiver_client.go -package=mocks -mock_names=Client=MockReceiverClient
type Client interface {
	// OnTransfer invokes the receiver's nft_on_transfer hook and returns the
	// raw result string. An error means the call itself failed.
	OnTransfer(ctx context.Context, hook *schema.ReceiverHook, req OnTransferRequest) (string, error)
	// OnApprove invokes the receiver's nft_on_approve hook asynchronously;
	// the outcome is ignored
	OnApprove(hook *schema.ReceiverHook, req OnApproveRequest)
	// Close waits for in-flight approval notifications and releases resources
	Close()
}

type client struct {
	http        *http.Client
	config      Config
	clock       adapter.Clock
	approvePool pond.Pool
}

// NewClient creates a new receiver hook client
func NewClient(cfg Config, clock adapter.Clock) Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.ApprovePoolSize <= 0 {
		cfg.ApprovePoolSize = 10
	}

	return &client{
		http:        &http.Client{Timeout: cfg.Timeout},
		config:      cfg,
		clock:       clock,
		approvePool: pond.NewPool(cfg.ApprovePoolSize),
	}
}

// OnTransfer invokes the receiver's nft_on_transfer hook
func (c *client) OnTransfer(ctx context.Context, hook *schema.ReceiverHook, req OnTransferRequest) (string, error) {
	if hook == nil || !hook.IsActive || hook.TransferURL == "" {
		return "", fmt.Errorf("receiver has no active transfer hook")
	}

	var result string
	operation := func() error {
		body, err := c.post(ctx, hook.TransferURL, hook.Secret, req)
		if err != nil {
			return err
		}
		result = body
		return nil
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), c.config.MaxRetries),
		ctx,
	)
	if err := backoff.Retry(operation, policy); err != nil {
		return "", fmt.Errorf("nft_on_transfer call failed: %w", err)
	}
	return result, nil
}

// OnApprove invokes the receiver's nft_on_approve hook, fire-and-forget
func (c *client) OnApprove(hook *schema.ReceiverHook, req OnApproveRequest) {
	if hook == nil || !hook.IsActive || hook.ApproveURL == "" {
		return
	}

	c.approvePool.Submit(func() {
		ctx, cancel := context.WithTimeout(context.Background(), c.config.Timeout)
		defer cancel()

		if _, err := c.post(ctx, hook.ApproveURL, hook.Secret, req); err != nil {
			logger.Warn("nft_on_approve notification failed",
				zap.String("account", hook.AccountID),
				zap.String("token", string(req.TokenID)),
				zap.Error(err),
			)
		}
	})
}

// Close waits for in-flight approval notifications
func (c *client) Close() {
	c.approvePool.StopAndWait()
}

// post delivers one signed hook payload and returns the raw response body
func (c *client) post(ctx context.Context, url, secret string, body interface{}) (string, error) {
	timestamp := c.clock.Now().Unix()
	payload, signature, err := SignedPayload(secret, body, timestamp)
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build hook request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-Ledger-Signature", signature)
	httpReq.Header.Set("X-Ledger-Timestamp", strconv.FormatInt(timestamp, 10))

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("hook request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResultBytes))
	if err != nil {
		return "", fmt.Errorf("failed to read hook response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("hook returned status %d", resp.StatusCode)
	}

	return strings.TrimSpace(string(raw)), nil
}
