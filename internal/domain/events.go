package domain

import "encoding/json"

// EventType is the ledger event name consumed by indexers
type EventType string

const (
	// EventTypeMint is emitted when a token is created
	EventTypeMint EventType = "nft_mint"
	// EventTypeTransfer is emitted when ownership changes, including saga rollbacks
	EventTypeTransfer EventType = "nft_transfer"
)

// MintData is the payload of one nft_mint event
type MintData struct {
	OwnerID  AccountID `json:"owner_id"`
	TokenIDs []TokenID `json:"token_ids"`
}

// TransferData is the payload of one nft_transfer event
type TransferData struct {
	OldOwnerID AccountID `json:"old_owner_id"`
	NewOwnerID AccountID `json:"new_owner_id"`
	// AuthorizedID is set when the transfer was initiated by an approved
	// delegate rather than the owner
	AuthorizedID *AccountID `json:"authorized_id,omitempty"`
	TokenIDs     []TokenID  `json:"token_ids"`
	Memo         *string    `json:"memo,omitempty"`
}

// NFTEvent is the structured log record emitted by every ownership mutation.
// Indexers rely on this exact shape; the data field always holds a list.
type NFTEvent struct {
	Standard string          `json:"standard"`
	Version  string          `json:"version"`
	Event    EventType       `json:"event"`
	Data     json.RawMessage `json:"data"`
}

// NewMintEvent builds an nft_mint event for a single token
func NewMintEvent(owner AccountID, tokenIDs ...TokenID) (*NFTEvent, error) {
	data, err := json.Marshal([]MintData{{OwnerID: owner, TokenIDs: tokenIDs}})
	if err != nil {
		return nil, err
	}
	return &NFTEvent{
		Standard: NFTStandardName,
		Version:  NFTMetadataSpec,
		Event:    EventTypeMint,
		Data:     data,
	}, nil
}

// NewTransferEvent builds an nft_transfer event for a single token
func NewTransferEvent(oldOwner, newOwner AccountID, authorizedID *AccountID, memo *string, tokenIDs ...TokenID) (*NFTEvent, error) {
	data, err := json.Marshal([]TransferData{{
		OldOwnerID:   oldOwner,
		NewOwnerID:   newOwner,
		AuthorizedID: authorizedID,
		TokenIDs:     tokenIDs,
		Memo:         memo,
	}})
	if err != nil {
		return nil, err
	}
	return &NFTEvent{
		Standard: NFTStandardName,
		Version:  NFTMetadataSpec,
		Event:    EventTypeTransfer,
		Data:     data,
	}, nil
}
