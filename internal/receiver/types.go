package receiver

import "github.com/feral-file/nft-ledger/internal/domain"

// ResultAccept is the literal hook result meaning the receiver keeps the
// token. Any other result, or a failed call, means the receiver rejected it.
// The asymmetry is part of the wire contract with existing receivers and must
// not be normalized.
const ResultAccept = "false"

// OnTransferRequest is the payload delivered to a receiver's nft_on_transfer hook
type OnTransferRequest struct {
	// SenderID is the account that initiated the transfer
	SenderID domain.AccountID `json:"sender_id"`
	// PreviousOwnerID is the owner before the transfer
	PreviousOwnerID domain.AccountID `json:"previous_owner_id"`
	TokenID         domain.TokenID   `json:"token_id"`
	// Msg is the caller-supplied message interpreted by the receiver
	Msg string `json:"msg"`
}

// OnApproveRequest is the payload delivered to a receiver's nft_on_approve
// hook. Fire-and-forget: the result is never read.
type OnApproveRequest struct {
	TokenID    domain.TokenID   `json:"token_id"`
	OwnerID    domain.AccountID `json:"owner_id"`
	ApprovalID uint64           `json:"approval_id"`
	Msg        string           `json:"msg"`
}
