package schema

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"

	"github.com/feral-file/nft-ledger/internal/domain"
)

// Token represents the tokens table. The auto-incrementing ID records mint
// order and drives enumeration; token_id is the caller-supplied identifier.
// Approvals and royalty are stored as ordered JSONB lists so iteration order
// stays deterministic across reads.
type Token struct {
	// ID is an auto-incrementing sequence number; tokens enumerate in ID order
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// TokenID is the caller-supplied token identifier, unique for the life of the contract
	TokenID string `gorm:"column:token_id;not null;unique;type:text"`
	// OwnerID is the current owner account
	OwnerID string `gorm:"column:owner_id;not null;type:text;index:idx_tokens_owner"`
	// NextApprovalID is the next approval id to assign; never decreases
	NextApprovalID uint64 `gorm:"column:next_approval_id;not null;default:0"`
	// Approvals is the ordered list of approval entries
	Approvals datatypes.JSON `gorm:"column:approvals;not null;type:jsonb"`
	// Royalty is the ordered list of royalty entries fixed at mint
	Royalty datatypes.JSON `gorm:"column:royalty;not null;type:jsonb"`
	// CreatedAt is the mint timestamp
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp of the last mutation
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Token model
func (Token) TableName() string {
	return "tokens"
}

// ToDomain converts the row into a domain token
func (t *Token) ToDomain() (*domain.Token, error) {
	approvals := []domain.ApprovalEntry{}
	if len(t.Approvals) > 0 {
		if err := json.Unmarshal(t.Approvals, &approvals); err != nil {
			return nil, fmt.Errorf("failed to decode approvals for token %s: %w", t.TokenID, err)
		}
	}
	royalty := []domain.RoyaltyEntry{}
	if len(t.Royalty) > 0 {
		if err := json.Unmarshal(t.Royalty, &royalty); err != nil {
			return nil, fmt.Errorf("failed to decode royalty for token %s: %w", t.TokenID, err)
		}
	}
	return &domain.Token{
		TokenID:            domain.TokenID(t.TokenID),
		OwnerID:            domain.AccountID(t.OwnerID),
		ApprovedAccountIDs: approvals,
		NextApprovalID:     t.NextApprovalID,
		Royalty:            royalty,
	}, nil
}

// TokenFromDomain converts a domain token into a row. The sequence ID is left
// zero and assigned by the database on insert.
func TokenFromDomain(token *domain.Token) (*Token, error) {
	approvals := token.ApprovedAccountIDs
	if approvals == nil {
		approvals = []domain.ApprovalEntry{}
	}
	approvalsJSON, err := json.Marshal(approvals)
	if err != nil {
		return nil, fmt.Errorf("failed to encode approvals for token %s: %w", token.TokenID, err)
	}
	royalty := token.Royalty
	if royalty == nil {
		royalty = []domain.RoyaltyEntry{}
	}
	royaltyJSON, err := json.Marshal(royalty)
	if err != nil {
		return nil, fmt.Errorf("failed to encode royalty for token %s: %w", token.TokenID, err)
	}
	return &Token{
		TokenID:        token.TokenID.String(),
		OwnerID:        token.OwnerID.String(),
		NextApprovalID: token.NextApprovalID,
		Approvals:      approvalsJSON,
		Royalty:        royaltyJSON,
	}, nil
}
