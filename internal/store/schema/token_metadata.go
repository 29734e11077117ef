package schema

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"

	"github.com/feral-file/nft-ledger/internal/domain"
)

// TokenMetadata represents the token_metadata table - the optional descriptive
// record attached to a token at mint. A token without a row here is a valid
// "no metadata" state.
type TokenMetadata struct {
	// TokenID references the token this metadata belongs to
	TokenID string `gorm:"column:token_id;primaryKey;type:text"`
	// Metadata is the full metadata document
	Metadata datatypes.JSON `gorm:"column:metadata;not null;type:jsonb"`
	// CreatedAt is the mint timestamp
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the TokenMetadata model
func (TokenMetadata) TableName() string {
	return "token_metadata"
}

// ToDomain converts the row into domain metadata
func (m *TokenMetadata) ToDomain() (*domain.TokenMetadata, error) {
	var metadata domain.TokenMetadata
	if err := json.Unmarshal(m.Metadata, &metadata); err != nil {
		return nil, fmt.Errorf("failed to decode metadata for token %s: %w", m.TokenID, err)
	}
	return &metadata, nil
}

// TokenMetadataFromDomain converts domain metadata into a row
func TokenMetadataFromDomain(tokenID domain.TokenID, metadata *domain.TokenMetadata) (*TokenMetadata, error) {
	doc, err := json.Marshal(metadata)
	if err != nil {
		return nil, fmt.Errorf("failed to encode metadata for token %s: %w", tokenID, err)
	}
	return &TokenMetadata{
		TokenID:  tokenID.String(),
		Metadata: doc,
	}, nil
}
