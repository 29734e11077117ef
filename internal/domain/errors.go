package domain

import "errors"

var (
	// ErrTokenAlreadyExists is returned when minting a token ID already present
	ErrTokenAlreadyExists = errors.New("token already exists")

	// ErrTokenNotFound is returned when a required token is absent
	ErrTokenNotFound = errors.New("token not found")

	// ErrSelfTransfer is returned when the receiver already owns the token
	ErrSelfTransfer = errors.New("the token receiver cannot be the owner")

	// ErrUnauthorized is returned when the caller is neither the owner nor an
	// approved delegate
	ErrUnauthorized = errors.New("unauthorized")

	// ErrApprovalMismatch is returned when a supplied approval id differs from
	// the recorded one
	ErrApprovalMismatch = errors.New("approval id does not match the recorded approval")

	// ErrTooManyRoyalties is returned when a mint supplies more than the
	// allowed number of royalty beneficiaries
	ErrTooManyRoyalties = errors.New("cannot add more than 10 perpetual royalty amounts")

	// ErrTooManyReceivers is returned when a payout would exceed the caller's
	// maximum payee count
	ErrTooManyReceivers = errors.New("cannot payout to that many receivers")

	// ErrInvalidRoyalty is returned when a royalty share is outside 0..10000
	// basis points
	ErrInvalidRoyalty = errors.New("royalty share must be between 0 and 10000 basis points")

	// ErrInsufficientDeposit is returned when the attached payment does not
	// cover the required storage cost
	ErrInsufficientDeposit = errors.New("attached deposit does not cover storage cost")

	// ErrOneYoctoRequired is returned when an operation requires an attached
	// payment of exactly 1 yocto
	ErrOneYoctoRequired = errors.New("requires attached deposit of exactly 1 yocto")

	// ErrAtLeastOneYoctoRequired is returned when an operation requires an
	// attached payment of at least 1 yocto
	ErrAtLeastOneYoctoRequired = errors.New("requires attached deposit of at least 1 yocto")

	// ErrOwnerIndexCorrupted signals a prior invariant breach: a token removal
	// hit an owner with no index entry. Fatal for the operation.
	ErrOwnerIndexCorrupted = errors.New("owner index entry missing for token removal")

	// ErrInvalidAccountID is returned when an account ID fails validation
	ErrInvalidAccountID = errors.New("invalid account id")

	// ErrInvalidTokenID is returned when a token ID fails validation
	ErrInvalidTokenID = errors.New("invalid token id")

	// ErrInvalidBalance is returned when a payout balance is not a valid
	// non-negative decimal string
	ErrInvalidBalance = errors.New("invalid balance")

	// ErrInvalidLimit is returned when an enumeration limit is zero or negative
	ErrInvalidLimit = errors.New("limit must be positive")

	// ErrAlreadyInitialized is returned when contract metadata is set twice
	ErrAlreadyInitialized = errors.New("contract metadata already set")
)
