package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/feral-file/nft-ledger/internal/domain"
	"github.com/feral-file/nft-ledger/internal/store/schema"
)

const contractMetadataKey = "contract_metadata"

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM
// database connection. Zero values fall back to reasonable defaults.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// Atomically runs fn against a store bound to one database transaction
func (s *pgStore) Atomically(ctx context.Context, fn func(Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&pgStore{db: tx})
	})
}

// CreateToken inserts a new token record
func (s *pgStore) CreateToken(ctx context.Context, token *domain.Token) error {
	row, err := schema.TokenFromDomain(token)
	if err != nil {
		return err
	}

	err = s.db.WithContext(ctx).Create(row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrTokenAlreadyExists
		}
		return fmt.Errorf("failed to create token: %w", err)
	}
	return nil
}

// GetToken retrieves a token by its ID
func (s *pgStore) GetToken(ctx context.Context, tokenID domain.TokenID) (*domain.Token, error) {
	var row schema.Token
	err := s.db.WithContext(ctx).Where("token_id = ?", tokenID.String()).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get token: %w", err)
	}
	return row.ToDomain()
}

// UpdateToken replaces the mutable fields of an existing token record
func (s *pgStore) UpdateToken(ctx context.Context, token *domain.Token) error {
	row, err := schema.TokenFromDomain(token)
	if err != nil {
		return err
	}

	result := s.db.WithContext(ctx).
		Model(&schema.Token{}).
		Where("token_id = ?", row.TokenID).
		Updates(map[string]interface{}{
			"owner_id":         row.OwnerID,
			"next_approval_id": row.NextApprovalID,
			"approvals":        row.Approvals,
			"updated_at":       gorm.Expr("now()"),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update token: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrTokenNotFound
	}
	return nil
}

// ListTokens returns tokens in mint order
func (s *pgStore) ListTokens(ctx context.Context, fromIndex int64, limit int) ([]*domain.Token, error) {
	if limit <= 0 {
		limit = domain.DefaultEnumerationLimit
	}

	var rows []*schema.Token
	err := s.db.WithContext(ctx).
		Order("id ASC").
		Offset(int(fromIndex)).
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list tokens: %w", err)
	}

	tokens := make([]*domain.Token, 0, len(rows))
	for _, row := range rows {
		token, err := row.ToDomain()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, token)
	}
	return tokens, nil
}

// CountTokens returns the total number of minted tokens
func (s *pgStore) CountTokens(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&schema.Token{}).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count tokens: %w", err)
	}
	return count, nil
}

// CreateTokenMetadata attaches a metadata record to a token at mint
func (s *pgStore) CreateTokenMetadata(ctx context.Context, tokenID domain.TokenID, metadata *domain.TokenMetadata) error {
	row, err := schema.TokenMetadataFromDomain(tokenID, metadata)
	if err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).Create(row).Error; err != nil {
		return fmt.Errorf("failed to create token metadata: %w", err)
	}
	return nil
}

// GetTokenMetadata retrieves a token's metadata
func (s *pgStore) GetTokenMetadata(ctx context.Context, tokenID domain.TokenID) (*domain.TokenMetadata, error) {
	var row schema.TokenMetadata
	err := s.db.WithContext(ctx).Where("token_id = ?", tokenID.String()).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get token metadata: %w", err)
	}
	return row.ToDomain()
}

// AddToOwner records a token in the owner's index entry
func (s *pgStore) AddToOwner(ctx context.Context, owner domain.AccountID, tokenID domain.TokenID) error {
	entry := &schema.OwnerIndexEntry{
		OwnerID: owner.String(),
		TokenID: tokenID.String(),
	}
	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to add token to owner index: %w", err)
	}
	return nil
}

// RemoveFromOwner deletes a token from the owner's index entry. Hitting an
// owner that does not hold the token signals a prior invariant breach.
func (s *pgStore) RemoveFromOwner(ctx context.Context, owner domain.AccountID, tokenID domain.TokenID) error {
	result := s.db.WithContext(ctx).
		Where("owner_id = ? AND token_id = ?", owner.String(), tokenID.String()).
		Delete(&schema.OwnerIndexEntry{})
	if result.Error != nil {
		return fmt.Errorf("failed to remove token from owner index: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrOwnerIndexCorrupted
	}
	return nil
}

// ListTokensForOwner returns the owner's token IDs in acquisition order
func (s *pgStore) ListTokensForOwner(ctx context.Context, owner domain.AccountID, fromIndex int64, limit int) ([]domain.TokenID, error) {
	if limit <= 0 {
		limit = domain.DefaultEnumerationLimit
	}

	var rows []*schema.OwnerIndexEntry
	err := s.db.WithContext(ctx).
		Where("owner_id = ?", owner.String()).
		Order("id ASC").
		Offset(int(fromIndex)).
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list tokens for owner: %w", err)
	}

	tokenIDs := make([]domain.TokenID, 0, len(rows))
	for _, row := range rows {
		tokenIDs = append(tokenIDs, domain.TokenID(row.TokenID))
	}
	return tokenIDs, nil
}

// CountTokensForOwner returns the number of tokens the owner holds
func (s *pgStore) CountTokensForOwner(ctx context.Context, owner domain.AccountID) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&schema.OwnerIndexEntry{}).
		Where("owner_id = ?", owner.String()).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count tokens for owner: %w", err)
	}
	return count, nil
}

// AccrueCredit adds a refund amount owed to an account
func (s *pgStore) AccrueCredit(ctx context.Context, account domain.AccountID, amount *big.Int) error {
	if amount == nil || amount.Sign() <= 0 {
		return nil
	}

	credit := &schema.AccountCredit{
		AccountID: account.String(),
		Amount:    amount.String(),
	}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "account_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"amount":     gorm.Expr("account_credits.amount + EXCLUDED.amount"),
				"updated_at": gorm.Expr("now()"),
			}),
		}).
		Create(credit).Error
	if err != nil {
		return fmt.Errorf("failed to accrue credit: %w", err)
	}
	return nil
}

// GetCredit returns the accrued refund balance of an account
func (s *pgStore) GetCredit(ctx context.Context, account domain.AccountID) (*big.Int, error) {
	var credit schema.AccountCredit
	err := s.db.WithContext(ctx).Where("account_id = ?", account.String()).First(&credit).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return big.NewInt(0), nil
		}
		return nil, fmt.Errorf("failed to get credit: %w", err)
	}

	amount, ok := new(big.Int).SetString(credit.Amount, 10)
	if !ok {
		return nil, fmt.Errorf("invalid credit amount %q for account %s", credit.Amount, account)
	}
	return amount, nil
}

// GetReceiverHook retrieves the registered hook endpoints of a receiving contract
func (s *pgStore) GetReceiverHook(ctx context.Context, account domain.AccountID) (*schema.ReceiverHook, error) {
	var hook schema.ReceiverHook
	err := s.db.WithContext(ctx).Where("account_id = ?", account.String()).First(&hook).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get receiver hook: %w", err)
	}
	return &hook, nil
}

// UpsertReceiverHook registers or updates a receiver's hook endpoints
func (s *pgStore) UpsertReceiverHook(ctx context.Context, hook *schema.ReceiverHook) error {
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "account_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"transfer_url", "approve_url", "secret", "is_active", "updated_at",
			}),
		}).
		Create(hook).Error
	if err != nil {
		return fmt.Errorf("failed to upsert receiver hook: %w", err)
	}
	return nil
}

// GetContractMetadata returns the contract metadata singleton
func (s *pgStore) GetContractMetadata(ctx context.Context) (*domain.ContractMetadata, error) {
	var kv schema.KeyValueStore
	err := s.db.WithContext(ctx).Where("key = ?", contractMetadataKey).First(&kv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get contract metadata: %w", err)
	}

	var metadata domain.ContractMetadata
	if err := json.Unmarshal([]byte(kv.Value), &metadata); err != nil {
		return nil, fmt.Errorf("failed to decode contract metadata: %w", err)
	}
	return &metadata, nil
}

// SetContractMetadata stores the contract metadata singleton exactly once
func (s *pgStore) SetContractMetadata(ctx context.Context, metadata *domain.ContractMetadata) error {
	value, err := json.Marshal(metadata)
	if err != nil {
		return fmt.Errorf("failed to encode contract metadata: %w", err)
	}

	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoNothing: true,
		}).
		Create(&schema.KeyValueStore{Key: contractMetadataKey, Value: string(value)})
	if result.Error != nil {
		return fmt.Errorf("failed to set contract metadata: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrAlreadyInitialized
	}
	return nil
}
