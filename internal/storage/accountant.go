// Package storage implements storage-rent accounting: every mutation that
// grows persistent state is paid for by the caller's attached deposit, and
// every mutation that shrinks it accrues a refund to the stated beneficiary.
package storage

import (
	"context"
	"encoding/json"
	"math/big"

	"github.com/feral-file/nft-ledger/internal/domain"
	"github.com/feral-file/nft-ledger/internal/store"
)

// accountIDOverheadBytes approximates the serialization overhead of one map
// entry keyed by an account ID: a 4-byte string length prefix plus the 8-byte
// approval id value.
const accountIDOverheadBytes = 4 + 8

// refundThreshold is the negligible-rounding cutoff: excess deposit at or
// below 1 yocto is kept rather than refunded.
var refundThreshold = big.NewInt(1)

// AccountIDBytes returns the storage bytes one approval table entry occupies
func AccountIDBytes(account domain.AccountID) int64 {
	return int64(len(account)) + accountIDOverheadBytes
}

// ApprovalTableBytes returns the aggregate storage bytes of an approval table
func ApprovalTableBytes(entries []domain.ApprovalEntry) int64 {
	var total int64
	for _, entry := range entries {
		total += AccountIDBytes(entry.AccountID)
	}
	return total
}

// MintBytes returns the storage bytes a mint adds to persistent state: the
// token record, its owner-index entry, and the metadata document if present.
func MintBytes(token *domain.Token, metadata *domain.TokenMetadata) int64 {
	// token record: keyed by token_id, holds owner and the approval counter
	total := int64(len(token.TokenID)) + 4 + int64(len(token.OwnerID)) + 4 + 8
	total += ApprovalTableBytes(token.ApprovedAccountIDs)
	for _, entry := range token.Royalty {
		// royalty entry: account key plus a 4-byte basis-points value
		total += int64(len(entry.AccountID)) + 4 + 4
	}

	// owner index entry
	total += int64(len(token.OwnerID)) + 4 + int64(len(token.TokenID)) + 4

	if metadata != nil {
		doc, err := json.Marshal(metadata)
		if err == nil {
			total += int64(len(token.TokenID)) + 4 + int64(len(doc))
		}
	}

	return total
}

// Accountant charges and refunds storage rent against account credits
type Accountant struct {
	store store.Store
}

// NewAccountant creates a storage accountant backed by the given store
func NewAccountant(st store.Store) *Accountant {
	return &Accountant{store: st}
}

// Cost returns the yocto cost of the given storage bytes
func (a *Accountant) Cost(bytes int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(bytes), domain.StorageByteCost)
}

// Charge verifies the attached deposit covers the cost of the given byte
// growth and accrues any excess above the rounding threshold back to the
// payer. A deposit below cost fails with domain.ErrInsufficientDeposit.
func (a *Accountant) Charge(ctx context.Context, payer domain.AccountID, deposit *big.Int, bytes int64) error {
	cost := a.Cost(bytes)
	if deposit == nil || deposit.Cmp(cost) < 0 {
		return domain.ErrInsufficientDeposit
	}

	refund := new(big.Int).Sub(deposit, cost)
	if refund.Cmp(refundThreshold) > 0 {
		return a.store.AccrueCredit(ctx, payer, refund)
	}
	return nil
}

// Release accrues the value of freed storage bytes to the beneficiary.
// No-op for zero bytes or a value at or below the rounding threshold.
func (a *Accountant) Release(ctx context.Context, beneficiary domain.AccountID, bytes int64) error {
	if bytes <= 0 {
		return nil
	}
	refund := a.Cost(bytes)
	if refund.Cmp(refundThreshold) <= 0 {
		return nil
	}
	return a.store.AccrueCredit(ctx, beneficiary, refund)
}

// ReleaseApprovals refunds the storage occupied by an approval table
func (a *Accountant) ReleaseApprovals(ctx context.Context, beneficiary domain.AccountID, entries []domain.ApprovalEntry) error {
	return a.Release(ctx, beneficiary, ApprovalTableBytes(entries))
}
