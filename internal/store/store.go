package store

import (
	"context"
	"math/big"

	"github.com/feral-file/nft-ledger/internal/domain"
	"github.com/feral-file/nft-ledger/internal/store/schema"
)

// Store defines the interface for ledger state persistence
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// Atomically runs fn against a store bound to one database transaction.
	// Every externally invoked mutating operation runs inside exactly one
	// such transaction so failures leave no partial state behind.
	Atomically(ctx context.Context, fn func(Store) error) error

	// CreateToken inserts a new token record; returns
	// domain.ErrTokenAlreadyExists if the token ID is taken
	CreateToken(ctx context.Context, token *domain.Token) error
	// GetToken retrieves a token by its ID; nil if absent
	GetToken(ctx context.Context, tokenID domain.TokenID) (*domain.Token, error)
	// UpdateToken replaces an existing token record; returns
	// domain.ErrTokenNotFound if the token does not exist
	UpdateToken(ctx context.Context, token *domain.Token) error
	// ListTokens returns tokens in mint order, skipping fromIndex rows
	ListTokens(ctx context.Context, fromIndex int64, limit int) ([]*domain.Token, error)
	// CountTokens returns the total number of minted tokens
	CountTokens(ctx context.Context) (int64, error)

	// CreateTokenMetadata attaches a metadata record to a token at mint
	CreateTokenMetadata(ctx context.Context, tokenID domain.TokenID, metadata *domain.TokenMetadata) error
	// GetTokenMetadata retrieves a token's metadata; nil if the token has none
	GetTokenMetadata(ctx context.Context, tokenID domain.TokenID) (*domain.TokenMetadata, error)

	// AddToOwner records a token in the owner's index entry
	AddToOwner(ctx context.Context, owner domain.AccountID, tokenID domain.TokenID) error
	// RemoveFromOwner deletes a token from the owner's index entry; returns
	// domain.ErrOwnerIndexCorrupted if the owner does not hold the token
	RemoveFromOwner(ctx context.Context, owner domain.AccountID, tokenID domain.TokenID) error
	// ListTokensForOwner returns the owner's token IDs in acquisition order
	ListTokensForOwner(ctx context.Context, owner domain.AccountID, fromIndex int64, limit int) ([]domain.TokenID, error)
	// CountTokensForOwner returns the number of tokens the owner holds
	CountTokensForOwner(ctx context.Context, owner domain.AccountID) (int64, error)

	// AccrueCredit adds a refund amount, in yocto, owed to an account
	AccrueCredit(ctx context.Context, account domain.AccountID, amount *big.Int) error
	// GetCredit returns the accrued refund balance of an account
	GetCredit(ctx context.Context, account domain.AccountID) (*big.Int, error)

	// GetReceiverHook retrieves the registered hook endpoints of a receiving
	// contract; nil if the account never registered one
	GetReceiverHook(ctx context.Context, account domain.AccountID) (*schema.ReceiverHook, error)
	// UpsertReceiverHook registers or updates a receiver's hook endpoints
	UpsertReceiverHook(ctx context.Context, hook *schema.ReceiverHook) error

	// GetContractMetadata returns the contract metadata singleton; nil if the
	// contract was never initialized
	GetContractMetadata(ctx context.Context) (*domain.ContractMetadata, error)
	// SetContractMetadata stores the contract metadata singleton; returns
	// domain.ErrAlreadyInitialized if it was set before
	SetContractMetadata(ctx context.Context, metadata *domain.ContractMetadata) error
}
