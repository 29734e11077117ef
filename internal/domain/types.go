package domain

import (
	"math/big"
	"regexp"
)

// AccountID identifies an account on the hosting platform
type AccountID string

// TokenID is the caller-supplied, contract-unique token identifier
type TokenID string

const (
	// NFTStandardName is the event standard identifier consumed by indexers
	NFTStandardName = "nep171"
	// NFTMetadataSpec is the metadata spec version reported in contract metadata and events
	NFTMetadataSpec = "nft-1.0.0"

	// BasisPointsTotal is the denominator of royalty shares (10000 = 100%)
	BasisPointsTotal = 10000
	// MaxRoyaltyEntries is the maximum number of royalty beneficiaries fixed at mint
	MaxRoyaltyEntries = 10
	// DefaultEnumerationLimit is the page size used when a list call omits limit
	DefaultEnumerationLimit = 50
)

var accountIDPattern = regexp.MustCompile(`^[a-z0-9]([a-z0-9_-]*[a-z0-9])?(\.[a-z0-9]([a-z0-9_-]*[a-z0-9])?)*$`)

// Valid checks if an account ID is well formed
func (a AccountID) Valid() bool {
	if len(a) < 2 || len(a) > 64 {
		return false
	}
	return accountIDPattern.MatchString(string(a))
}

func (a AccountID) String() string {
	return string(a)
}

// Valid checks if a token ID is well formed. Token IDs are opaque but bounded
// so that storage costs stay measurable.
func (t TokenID) Valid() bool {
	return len(t) > 0 && len(t) <= 256
}

func (t TokenID) String() string {
	return string(t)
}

// ApprovalEntry is one delegated transfer right on a token. Entries are kept
// as an ordered list so iteration order is deterministic.
type ApprovalEntry struct {
	AccountID  AccountID `json:"account_id"`
	ApprovalID uint64    `json:"approval_id"`
}

// RoyaltyEntry is one secondary-sale beneficiary with its share in basis points.
// The royalty table is fixed at mint and never mutated.
type RoyaltyEntry struct {
	AccountID   AccountID `json:"account_id"`
	BasisPoints uint32    `json:"basis_points"`
}

// Token is the on-ledger ownership record for one non-fungible unit
type Token struct {
	TokenID TokenID `json:"token_id"`
	// OwnerID is the current owner; never empty for an existing token
	OwnerID AccountID `json:"owner_id"`
	// ApprovedAccountIDs lists accounts currently allowed to transfer the token
	ApprovedAccountIDs []ApprovalEntry `json:"approved_account_ids"`
	// NextApprovalID is the id assigned to the next approval; monotonically increasing
	NextApprovalID uint64 `json:"next_approval_id"`
	// Royalty is the secondary-sale split table fixed at mint
	Royalty []RoyaltyEntry `json:"royalty"`
}

// ApprovalFor returns the approval entry for an account, if any
func (t *Token) ApprovalFor(account AccountID) (ApprovalEntry, bool) {
	for _, entry := range t.ApprovedAccountIDs {
		if entry.AccountID == account {
			return entry, true
		}
	}
	return ApprovalEntry{}, false
}

// TokenMetadata is the optional descriptive record attached to a token at mint.
// Absence is a valid state distinct from token non-existence.
type TokenMetadata struct {
	Title         *string `json:"title"`
	Description   *string `json:"description"`
	Media         *string `json:"media"`
	MediaHash     *string `json:"media_hash"`
	Copies        *uint64 `json:"copies"`
	IssuedAt      *int64  `json:"issued_at"`
	ExpiresAt     *int64  `json:"expires_at"`
	StartsAt      *int64  `json:"starts_at"`
	UpdatedAt     *int64  `json:"updated_at"`
	Extra         *string `json:"extra"`
	Reference     *string `json:"reference"`
	ReferenceHash *string `json:"reference_hash"`
}

// ContractMetadata is the contract-level singleton set at construction
type ContractMetadata struct {
	Spec          string  `json:"spec"`
	Name          string  `json:"name"`
	Symbol        string  `json:"symbol"`
	Icon          *string `json:"icon"`
	BaseURI       *string `json:"base_uri"`
	Reference     *string `json:"reference"`
	ReferenceHash *string `json:"reference_hash"`
}

// PayoutEntry is one beneficiary of a sale balance split. Amounts are decimal
// strings so consumers never hit numeric overflow.
type PayoutEntry struct {
	AccountID AccountID `json:"account_id"`
	Amount    string    `json:"amount"`
}

// Payout is the computed split of a sale balance among royalty beneficiaries
// and the owner; the amounts always sum to the input balance exactly.
type Payout struct {
	Payout []PayoutEntry `json:"payout"`
}

// AmountFor returns the payout amount for an account, or "" if absent
func (p *Payout) AmountFor(account AccountID) string {
	for _, entry := range p.Payout {
		if entry.AccountID == account {
			return entry.Amount
		}
	}
	return ""
}

// CallContext carries the platform-provided facts about one external call:
// who invoked the contract and how much value they attached.
type CallContext struct {
	// CallerID is the predecessor account that invoked the operation
	CallerID AccountID
	// Deposit is the attached payment in yocto, the platform's smallest value unit
	Deposit *big.Int
}

// TransferResolution is the persisted pending-resolution context of a
// transfer-call saga: the pre-transfer facts captured at commit time and
// passed opaquely to the resolve step. The resolve step must re-read current
// ledger state rather than trust anything here beyond the snapshot itself.
type TransferResolution struct {
	// OwnerID is the owner before the optimistic transfer
	OwnerID AccountID `json:"owner_id"`
	// ReceiverID is the account the token was optimistically transferred to
	ReceiverID AccountID `json:"receiver_id"`
	TokenID    TokenID   `json:"token_id"`
	Memo       *string   `json:"memo,omitempty"`
	// AuthorizedID is the approved delegate that initiated the transfer, if the
	// sender was not the owner
	AuthorizedID *AccountID `json:"authorized_id,omitempty"`
	// ApprovedAccountIDs is the approval table held before the transfer
	ApprovedAccountIDs []ApprovalEntry `json:"approved_account_ids"`
	// NextApprovalID is the approval counter before the transfer; restored on
	// rollback so the counter never regresses
	NextApprovalID uint64 `json:"next_approval_id"`
}
