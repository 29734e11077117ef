// Package ledger implements the non-fungible token ownership ledger: minting,
// transfer, approval delegation, royalty payout and the transfer-call
// commit-then-resolve protocol. Every externally invoked mutation runs inside
// one store transaction and either fully applies or leaves no trace.
package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/feral-file/nft-ledger/internal/domain"
	"github.com/feral-file/nft-ledger/internal/logger"
	"github.com/feral-file/nft-ledger/internal/messaging"
	"github.com/feral-file/nft-ledger/internal/receiver"
	"github.com/feral-file/nft-ledger/internal/storage"
	"github.com/feral-file/nft-ledger/internal/store"
)

// Ledger defines the full contract operation set
//
//go:generate mockgen -source=ledger.go -destination=../mocks/ledger.go -package=mocks -mock_names=Ledger=MockLedger
type Ledger interface {
	// Mint creates a token owned by receiverID. The caller pays the measured
	// storage cost from the attached deposit; royalty is fixed forever.
	Mint(ctx context.Context, call domain.CallContext, tokenID domain.TokenID, receiverID domain.AccountID, metadata *domain.TokenMetadata, royalty []domain.RoyaltyEntry) (*domain.Token, error)

	// Token returns the ownership record of a token; nil if it was never minted
	Token(ctx context.Context, tokenID domain.TokenID) (*domain.Token, error)
	// TokenMetadata returns a token's metadata; nil when the token has none
	TokenMetadata(ctx context.Context, tokenID domain.TokenID) (*domain.TokenMetadata, error)
	// Tokens lists tokens in mint order
	Tokens(ctx context.Context, fromIndex *int64, limit *int) ([]*domain.Token, error)
	// TokensForOwner lists an owner's tokens in acquisition order
	TokensForOwner(ctx context.Context, owner domain.AccountID, fromIndex *int64, limit *int) ([]*domain.Token, error)
	// TotalSupply returns the number of minted tokens as a decimal string
	TotalSupply(ctx context.Context) (string, error)
	// SupplyForOwner returns the number of tokens held by owner as a decimal string
	SupplyForOwner(ctx context.Context, owner domain.AccountID) (string, error)
	// Metadata returns the contract metadata singleton; nil before bootstrap
	Metadata(ctx context.Context) (*domain.ContractMetadata, error)

	// Approve grants account the right to transfer the token and returns the
	// assigned approval id. Owner only; the deposit pays the new entry's
	// storage. When msg is set the receiver's approval hook is notified
	// asynchronously.
	Approve(ctx context.Context, call domain.CallContext, tokenID domain.TokenID, account domain.AccountID, msg *string) (uint64, error)
	// IsApproved reports whether account holds a live approval on the token,
	// optionally requiring an exact approval id match
	IsApproved(ctx context.Context, tokenID domain.TokenID, account domain.AccountID, approvalID *uint64) (bool, error)
	// Revoke removes one approval and refunds its storage to the owner
	Revoke(ctx context.Context, call domain.CallContext, tokenID domain.TokenID, account domain.AccountID) error
	// RevokeAll removes every approval and refunds their storage to the owner
	RevokeAll(ctx context.Context, call domain.CallContext, tokenID domain.TokenID) error

	// AuthorizeTransfer checks whether sender may move the token to receiver
	// and returns the delegate account when sender is not the owner
	AuthorizeTransfer(ctx context.Context, tokenID domain.TokenID, sender, receiverID domain.AccountID, approvalID *uint64) (*domain.AccountID, error)
	// Transfer moves the token to receiverID, clearing approvals
	Transfer(ctx context.Context, call domain.CallContext, receiverID domain.AccountID, tokenID domain.TokenID, approvalID *uint64, memo *string) error
	// TransferCall moves the token optimistically and returns the resolution
	// snapshot the resolve saga needs to confirm or revert it
	TransferCall(ctx context.Context, call domain.CallContext, receiverID domain.AccountID, tokenID domain.TokenID, approvalID *uint64, memo *string, msg string) (*domain.TransferResolution, error)
	// ResolveTransfer settles a pending transfer-call from the receiver hook's
	// outcome and reports whether the transfer stuck. Worker only.
	ResolveTransfer(ctx context.Context, res domain.TransferResolution, hookResult string, hookFailed bool) (bool, error)

	// Payout computes the royalty split of a sale balance
	Payout(ctx context.Context, tokenID domain.TokenID, balance string, maxLenPayout *uint32) (*domain.Payout, error)
	// TransferPayout transfers the token and returns the payout computed from
	// the pre-transfer owner and royalty table
	TransferPayout(ctx context.Context, call domain.CallContext, receiverID domain.AccountID, tokenID domain.TokenID, approvalID *uint64, memo *string, balance string, maxLenPayout *uint32) (*domain.Payout, error)

	// RegisterReceiver registers the caller's transfer/approve hook endpoints
	RegisterReceiver(ctx context.Context, call domain.CallContext, transferURL, approveURL, secret string) error
}

type ledger struct {
	store     store.Store
	publisher messaging.Publisher
	hooks     receiver.Client
}

// New creates a ledger over the given store, event publisher and receiver
// hook client. The publisher may be nil; events are then only logged.
func New(st store.Store, publisher messaging.Publisher, hooks receiver.Client) Ledger {
	return &ledger{
		store:     st,
		publisher: publisher,
		hooks:     hooks,
	}
}

// emit writes the event record to the log in the exact shape indexers scrape
// and publishes it to the broker. Called after the owning transaction
// committed; failures here never undo a committed mutation.
func (l *ledger) emit(ctx context.Context, event *domain.NFTEvent) {
	raw, err := json.Marshal(event)
	if err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to marshal ledger event: %w", err))
		return
	}

	logger.InfoCtx(ctx, "EVENT_JSON:"+string(raw))

	if l.publisher == nil {
		return
	}
	if err := l.publisher.PublishEvent(ctx, event); err != nil {
		logger.WarnCtx(ctx, "failed to publish ledger event",
			zap.String("event", string(event.Event)),
			zap.Error(err),
		)
	}
}

// Mint creates a token owned by receiverID
func (l *ledger) Mint(ctx context.Context, call domain.CallContext, tokenID domain.TokenID, receiverID domain.AccountID, metadata *domain.TokenMetadata, royalty []domain.RoyaltyEntry) (*domain.Token, error) {
	if !tokenID.Valid() {
		return nil, domain.ErrInvalidTokenID
	}
	if !receiverID.Valid() {
		return nil, domain.ErrInvalidAccountID
	}
	if err := validateRoyalty(royalty); err != nil {
		return nil, err
	}

	token := &domain.Token{
		TokenID:            tokenID,
		OwnerID:            receiverID,
		ApprovedAccountIDs: []domain.ApprovalEntry{},
		NextApprovalID:     0,
		Royalty:            royalty,
	}

	err := l.store.Atomically(ctx, func(tx store.Store) error {
		if err := tx.CreateToken(ctx, token); err != nil {
			return err
		}
		if metadata != nil {
			if err := tx.CreateTokenMetadata(ctx, tokenID, metadata); err != nil {
				return fmt.Errorf("failed to store token metadata: %w", err)
			}
		}
		if err := tx.AddToOwner(ctx, receiverID, tokenID); err != nil {
			return fmt.Errorf("failed to index token for owner: %w", err)
		}

		accountant := storage.NewAccountant(tx)
		return accountant.Charge(ctx, call.CallerID, call.Deposit, storage.MintBytes(token, metadata))
	})
	if err != nil {
		return nil, err
	}

	event, err := domain.NewMintEvent(receiverID, tokenID)
	if err != nil {
		return token, err
	}
	l.emit(ctx, event)

	return token, nil
}

func validateRoyalty(royalty []domain.RoyaltyEntry) error {
	if len(royalty) > domain.MaxRoyaltyEntries {
		return domain.ErrTooManyRoyalties
	}
	var total uint64
	for _, entry := range royalty {
		if !entry.AccountID.Valid() {
			return domain.ErrInvalidAccountID
		}
		total += uint64(entry.BasisPoints)
	}
	// the aggregate share must leave a non-negative owner remainder
	if total > domain.BasisPointsTotal {
		return domain.ErrInvalidRoyalty
	}
	return nil
}

// Token returns the ownership record of a token
func (l *ledger) Token(ctx context.Context, tokenID domain.TokenID) (*domain.Token, error) {
	return l.store.GetToken(ctx, tokenID)
}

// TokenMetadata returns a token's metadata
func (l *ledger) TokenMetadata(ctx context.Context, tokenID domain.TokenID) (*domain.TokenMetadata, error) {
	return l.store.GetTokenMetadata(ctx, tokenID)
}

// Tokens lists tokens in mint order
func (l *ledger) Tokens(ctx context.Context, fromIndex *int64, limit *int) ([]*domain.Token, error) {
	from, lim, err := enumerationWindow(fromIndex, limit)
	if err != nil {
		return nil, err
	}
	return l.store.ListTokens(ctx, from, lim)
}

// TokensForOwner lists an owner's tokens in acquisition order
func (l *ledger) TokensForOwner(ctx context.Context, owner domain.AccountID, fromIndex *int64, limit *int) ([]*domain.Token, error) {
	from, lim, err := enumerationWindow(fromIndex, limit)
	if err != nil {
		return nil, err
	}

	tokenIDs, err := l.store.ListTokensForOwner(ctx, owner, from, lim)
	if err != nil {
		return nil, err
	}

	tokens := make([]*domain.Token, 0, len(tokenIDs))
	for _, tokenID := range tokenIDs {
		token, err := l.store.GetToken(ctx, tokenID)
		if err != nil {
			return nil, err
		}
		if token == nil {
			return nil, fmt.Errorf("owner index references missing token %s: %w", tokenID, domain.ErrOwnerIndexCorrupted)
		}
		tokens = append(tokens, token)
	}
	return tokens, nil
}

// TotalSupply returns the number of minted tokens as a decimal string
func (l *ledger) TotalSupply(ctx context.Context) (string, error) {
	count, err := l.store.CountTokens(ctx)
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(count, 10), nil
}

// SupplyForOwner returns the number of tokens held by owner as a decimal string
func (l *ledger) SupplyForOwner(ctx context.Context, owner domain.AccountID) (string, error) {
	count, err := l.store.CountTokensForOwner(ctx, owner)
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(count, 10), nil
}

// Metadata returns the contract metadata singleton
func (l *ledger) Metadata(ctx context.Context) (*domain.ContractMetadata, error) {
	return l.store.GetContractMetadata(ctx)
}

func enumerationWindow(fromIndex *int64, limit *int) (int64, int, error) {
	var from int64
	if fromIndex != nil {
		if *fromIndex < 0 {
			return 0, 0, domain.ErrInvalidLimit
		}
		from = *fromIndex
	}

	lim := domain.DefaultEnumerationLimit
	if limit != nil {
		if *limit <= 0 {
			return 0, 0, domain.ErrInvalidLimit
		}
		lim = *limit
	}
	return from, lim, nil
}
