package dto

import (
	"github.com/feral-file/nft-ledger/internal/domain"
)

// MintRequest creates a new token
type MintRequest struct {
	TokenID    string                `json:"token_id" binding:"required"`
	ReceiverID string                `json:"receiver_id" binding:"required"`
	Metadata   *domain.TokenMetadata `json:"metadata"`
	Royalty    []RoyaltyEntry        `json:"royalty"`
	// Deposit is the attached payment in yocto as a decimal string; it must
	// cover the mint's storage cost
	Deposit string `json:"deposit" binding:"required"`
}

// TransferRequest moves a token to a new owner
type TransferRequest struct {
	ReceiverID string  `json:"receiver_id" binding:"required"`
	ApprovalID *uint64 `json:"approval_id"`
	Memo       *string `json:"memo"`
	Deposit    string  `json:"deposit" binding:"required"`
}

// TransferCallRequest moves a token and asks the receiver's hook for a verdict
type TransferCallRequest struct {
	ReceiverID string  `json:"receiver_id" binding:"required"`
	ApprovalID *uint64 `json:"approval_id"`
	Memo       *string `json:"memo"`
	// Msg is forwarded verbatim to the receiver's transfer hook
	Msg     string `json:"msg" binding:"required"`
	Deposit string `json:"deposit" binding:"required"`
}

// TransferPayoutRequest moves a token and returns the sale split
type TransferPayoutRequest struct {
	ReceiverID   string  `json:"receiver_id" binding:"required"`
	ApprovalID   *uint64 `json:"approval_id"`
	Memo         *string `json:"memo"`
	Balance      string  `json:"balance" binding:"required"`
	MaxLenPayout *uint32 `json:"max_len_payout"`
	Deposit      string  `json:"deposit" binding:"required"`
}

// ApproveRequest grants an account the right to transfer a token
type ApproveRequest struct {
	AccountID string `json:"account_id" binding:"required"`
	// Msg, when set, triggers an asynchronous approval notification to the
	// approved account's hook
	Msg     *string `json:"msg"`
	Deposit string  `json:"deposit" binding:"required"`
}

// RevokeRequest removes one or all approvals from a token
type RevokeRequest struct {
	Deposit string `json:"deposit" binding:"required"`
}

// RegisterReceiverRequest registers the caller's hook endpoints
type RegisterReceiverRequest struct {
	TransferURL string `json:"transfer_url" binding:"required"`
	ApproveURL  string `json:"approve_url"`
	Secret      string `json:"secret" binding:"required"`
}
