package schema

import "time"

// OwnerIndexEntry represents the owner_index table - the secondary index from
// owner account to the token IDs it holds. The index is sparse: rows are
// deleted on removal, so an owner with no tokens has no rows at all. The
// sequence ID preserves per-owner insertion order for enumeration.
type OwnerIndexEntry struct {
	// ID is an auto-incrementing sequence number; per-owner enumeration follows ID order
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// OwnerID is the owning account
	OwnerID string `gorm:"column:owner_id;not null;type:text;uniqueIndex:idx_owner_index_owner_token,priority:1"`
	// TokenID is the owned token
	TokenID string `gorm:"column:token_id;not null;type:text;uniqueIndex:idx_owner_index_owner_token,priority:2"`
	// CreatedAt is when the owner acquired the token
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the OwnerIndexEntry model
func (OwnerIndexEntry) TableName() string {
	return "owner_index"
}
