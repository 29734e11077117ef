package dto

import (
	"github.com/feral-file/nft-ledger/internal/domain"
)

// ApprovalEntry is one delegated transfer right in API responses
type ApprovalEntry struct {
	AccountID  string `json:"account_id"`
	ApprovalID uint64 `json:"approval_id"`
}

// RoyaltyEntry is one secondary-sale beneficiary in API requests and responses
type RoyaltyEntry struct {
	AccountID   string `json:"account_id" binding:"required"`
	BasisPoints uint32 `json:"basis_points"`
}

// Token is the API view of one ownership record
type Token struct {
	TokenID            string          `json:"token_id"`
	OwnerID            string          `json:"owner_id"`
	ApprovedAccountIDs []ApprovalEntry `json:"approved_account_ids"`
	Royalty            []RoyaltyEntry  `json:"royalty,omitempty"`
}

// TokenFromDomain converts a domain token into its API view
func TokenFromDomain(token *domain.Token) *Token {
	if token == nil {
		return nil
	}

	approvals := make([]ApprovalEntry, 0, len(token.ApprovedAccountIDs))
	for _, entry := range token.ApprovedAccountIDs {
		approvals = append(approvals, ApprovalEntry{
			AccountID:  entry.AccountID.String(),
			ApprovalID: entry.ApprovalID,
		})
	}

	royalty := make([]RoyaltyEntry, 0, len(token.Royalty))
	for _, entry := range token.Royalty {
		royalty = append(royalty, RoyaltyEntry{
			AccountID:   entry.AccountID.String(),
			BasisPoints: entry.BasisPoints,
		})
	}

	return &Token{
		TokenID:            token.TokenID.String(),
		OwnerID:            token.OwnerID.String(),
		ApprovedAccountIDs: approvals,
		Royalty:            royalty,
	}
}

// TokensFromDomain converts a token list into its API view
func TokensFromDomain(tokens []*domain.Token) []*Token {
	out := make([]*Token, 0, len(tokens))
	for _, token := range tokens {
		out = append(out, TokenFromDomain(token))
	}
	return out
}

// RoyaltyToDomain converts request royalty entries into domain entries
func RoyaltyToDomain(entries []RoyaltyEntry) []domain.RoyaltyEntry {
	if entries == nil {
		return nil
	}
	out := make([]domain.RoyaltyEntry, 0, len(entries))
	for _, entry := range entries {
		out = append(out, domain.RoyaltyEntry{
			AccountID:   domain.AccountID(entry.AccountID),
			BasisPoints: entry.BasisPoints,
		})
	}
	return out
}

// PayoutEntry is one beneficiary share in a payout response
type PayoutEntry struct {
	AccountID string `json:"account_id"`
	Amount    string `json:"amount"`
}

// Payout is the API view of a computed sale split
type Payout struct {
	Payout []PayoutEntry `json:"payout"`
}

// PayoutFromDomain converts a computed payout into its API view
func PayoutFromDomain(payout *domain.Payout) *Payout {
	if payout == nil {
		return nil
	}
	entries := make([]PayoutEntry, 0, len(payout.Payout))
	for _, entry := range payout.Payout {
		entries = append(entries, PayoutEntry{
			AccountID: entry.AccountID.String(),
			Amount:    entry.Amount,
		})
	}
	return &Payout{Payout: entries}
}
