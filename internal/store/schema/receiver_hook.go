package schema

import "time"

// ReceiverHook represents the receiver_hooks table - endpoints registered by
// receiving contracts that implement the nft_on_transfer / nft_on_approve
// hooks. A transfer-call to an account with no registered hook behaves like a
// failed cross-contract call and rolls back.
type ReceiverHook struct {
	// AccountID is the receiving contract's account
	AccountID string `gorm:"column:account_id;primaryKey;type:text"`
	// TransferURL is the endpoint invoked for nft_on_transfer
	TransferURL string `gorm:"column:transfer_url;not null;type:text"`
	// ApproveURL is the endpoint invoked for nft_on_approve; empty if the
	// receiver does not handle approvals
	ApproveURL string `gorm:"column:approve_url;type:text"`
	// Secret is the key used for HMAC-SHA256 payload signatures
	Secret string `gorm:"column:secret;not null;type:text"`
	// IsActive indicates whether this hook should be invoked
	IsActive bool `gorm:"column:is_active;not null;default:true"`
	// CreatedAt is the timestamp when this hook was registered
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this hook was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the ReceiverHook model
func (ReceiverHook) TableName() string {
	return "receiver_hooks"
}
