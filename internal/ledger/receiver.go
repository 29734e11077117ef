package ledger

import (
	"context"
	"fmt"
	"net/url"

	"github.com/feral-file/nft-ledger/internal/domain"
	"github.com/feral-file/nft-ledger/internal/store/schema"
)

// RegisterReceiver registers the caller's hook endpoints so future
// transfer-calls and approval notifications can reach it. Re-registration
// replaces the previous endpoints.
func (l *ledger) RegisterReceiver(ctx context.Context, call domain.CallContext, transferURL, approveURL, secret string) error {
	if !call.CallerID.Valid() {
		return domain.ErrInvalidAccountID
	}
	if err := validateHookURL(transferURL); err != nil {
		return fmt.Errorf("invalid transfer hook url: %w", err)
	}
	if approveURL != "" {
		if err := validateHookURL(approveURL); err != nil {
			return fmt.Errorf("invalid approve hook url: %w", err)
		}
	}
	if secret == "" {
		return fmt.Errorf("hook secret must not be empty")
	}

	return l.store.UpsertReceiverHook(ctx, &schema.ReceiverHook{
		AccountID:   call.CallerID.String(),
		TransferURL: transferURL,
		ApproveURL:  approveURL,
		Secret:      secret,
		IsActive:    true,
	})
}

func validateHookURL(raw string) error {
	parsed, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("unsupported scheme %q", parsed.Scheme)
	}
	if parsed.Host == "" {
		return fmt.Errorf("missing host")
	}
	return nil
}
