package schema

import "time"

// AccountCredit represents the account_credits table - yocto amounts owed to
// accounts from storage refunds, accrued by the storage accountant and settled
// by the hosting platform. Amounts are stored as strings to support the full
// 128-bit value range.
type AccountCredit struct {
	// AccountID is the account the credit is owed to
	AccountID string `gorm:"column:account_id;primaryKey;type:text"`
	// Amount is the accrued refund in yocto
	Amount string `gorm:"column:amount;not null;type:numeric(40,0);default:0"`
	// UpdatedAt is the timestamp of the last accrual
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the AccountCredit model
func (AccountCredit) TableName() string {
	return "account_credits"
}
