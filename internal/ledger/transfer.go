package ledger

import (
	"context"
	"fmt"

	"github.com/feral-file/nft-ledger/internal/domain"
	"github.com/feral-file/nft-ledger/internal/receiver"
	"github.com/feral-file/nft-ledger/internal/storage"
	"github.com/feral-file/nft-ledger/internal/store"
)

// AuthorizeTransfer checks whether sender may move the token to receiverID
func (l *ledger) AuthorizeTransfer(ctx context.Context, tokenID domain.TokenID, sender, receiverID domain.AccountID, approvalID *uint64) (*domain.AccountID, error) {
	token, err := l.store.GetToken(ctx, tokenID)
	if err != nil {
		return nil, err
	}
	if token == nil {
		return nil, domain.ErrTokenNotFound
	}
	return authorizeTransfer(token, sender, receiverID, approvalID)
}

// authorizeTransfer is the single transfer gate. It returns the delegate
// account when sender acts under an approval, nil when sender is the owner.
func authorizeTransfer(token *domain.Token, sender, receiverID domain.AccountID, approvalID *uint64) (*domain.AccountID, error) {
	if receiverID == token.OwnerID {
		return nil, domain.ErrSelfTransfer
	}
	if sender == token.OwnerID {
		return nil, nil
	}

	entry, ok := token.ApprovalFor(sender)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if approvalID != nil && *approvalID != entry.ApprovalID {
		return nil, domain.ErrApprovalMismatch
	}
	return &sender, nil
}

// moveToken reassigns ownership inside the current transaction: owner index
// fixed on both sides, approvals cleared and the approval counter reset. The
// cleared approval table is returned so the caller decides when its storage
// is refunded.
func moveToken(ctx context.Context, tx store.Store, token *domain.Token, receiverID domain.AccountID) ([]domain.ApprovalEntry, error) {
	previousOwner := token.OwnerID

	if err := tx.RemoveFromOwner(ctx, previousOwner, token.TokenID); err != nil {
		return nil, err
	}
	if err := tx.AddToOwner(ctx, receiverID, token.TokenID); err != nil {
		return nil, fmt.Errorf("failed to index token for receiver: %w", err)
	}

	released := token.ApprovedAccountIDs
	token.OwnerID = receiverID
	token.ApprovedAccountIDs = []domain.ApprovalEntry{}
	token.NextApprovalID = 0

	if err := tx.UpdateToken(ctx, token); err != nil {
		return nil, err
	}
	return released, nil
}

// Transfer moves the token to receiverID
func (l *ledger) Transfer(ctx context.Context, call domain.CallContext, receiverID domain.AccountID, tokenID domain.TokenID, approvalID *uint64, memo *string) error {
	if !domain.IsOneYocto(call.Deposit) {
		return domain.ErrOneYoctoRequired
	}
	if !receiverID.Valid() {
		return domain.ErrInvalidAccountID
	}

	var event *domain.NFTEvent
	err := l.store.Atomically(ctx, func(tx store.Store) error {
		token, err := tx.GetToken(ctx, tokenID)
		if err != nil {
			return err
		}
		if token == nil {
			return domain.ErrTokenNotFound
		}

		authorizedID, err := authorizeTransfer(token, call.CallerID, receiverID, approvalID)
		if err != nil {
			return err
		}
		previousOwner := token.OwnerID

		released, err := moveToken(ctx, tx, token, receiverID)
		if err != nil {
			return err
		}

		accountant := storage.NewAccountant(tx)
		if err := accountant.ReleaseApprovals(ctx, previousOwner, released); err != nil {
			return err
		}

		event, err = domain.NewTransferEvent(previousOwner, receiverID, authorizedID, memo, tokenID)
		return err
	})
	if err != nil {
		return err
	}

	l.emit(ctx, event)
	return nil
}

// TransferCall moves the token optimistically and returns the resolution
// snapshot. The cleared approval table's storage is not refunded here; the
// resolve step settles it once the receiver's verdict is known.
func (l *ledger) TransferCall(ctx context.Context, call domain.CallContext, receiverID domain.AccountID, tokenID domain.TokenID, approvalID *uint64, memo *string, msg string) (*domain.TransferResolution, error) {
	if !domain.IsOneYocto(call.Deposit) {
		return nil, domain.ErrOneYoctoRequired
	}
	if !receiverID.Valid() {
		return nil, domain.ErrInvalidAccountID
	}

	var (
		event      *domain.NFTEvent
		resolution *domain.TransferResolution
	)
	err := l.store.Atomically(ctx, func(tx store.Store) error {
		token, err := tx.GetToken(ctx, tokenID)
		if err != nil {
			return err
		}
		if token == nil {
			return domain.ErrTokenNotFound
		}

		authorizedID, err := authorizeTransfer(token, call.CallerID, receiverID, approvalID)
		if err != nil {
			return err
		}

		resolution = &domain.TransferResolution{
			OwnerID:            token.OwnerID,
			ReceiverID:         receiverID,
			TokenID:            tokenID,
			Memo:               memo,
			AuthorizedID:       authorizedID,
			ApprovedAccountIDs: token.ApprovedAccountIDs,
			NextApprovalID:     token.NextApprovalID,
		}

		if _, err := moveToken(ctx, tx, token, receiverID); err != nil {
			return err
		}

		event, err = domain.NewTransferEvent(resolution.OwnerID, receiverID, authorizedID, memo, tokenID)
		return err
	})
	if err != nil {
		return nil, err
	}

	l.emit(ctx, event)
	return resolution, nil
}

// ResolveTransfer settles a pending transfer-call. A hook result of exactly
// "false" means the receiver keeps the token; any other result, or a failed
// call, asks for a revert. The revert only happens when the token still sits
// with the receiver; anything that moved or vanished in the meantime stands.
func (l *ledger) ResolveTransfer(ctx context.Context, res domain.TransferResolution, hookResult string, hookFailed bool) (bool, error) {
	if !hookFailed && hookResult == receiver.ResultAccept {
		err := l.store.Atomically(ctx, func(tx store.Store) error {
			accountant := storage.NewAccountant(tx)
			return accountant.ReleaseApprovals(ctx, res.OwnerID, res.ApprovedAccountIDs)
		})
		if err != nil {
			return false, err
		}
		return true, nil
	}

	var (
		event *domain.NFTEvent
		stuck bool
	)
	err := l.store.Atomically(ctx, func(tx store.Store) error {
		token, err := tx.GetToken(ctx, res.TokenID)
		if err != nil {
			return err
		}
		accountant := storage.NewAccountant(tx)

		if token == nil || token.OwnerID != res.ReceiverID {
			// The token was re-transferred during the call window; the
			// optimistic transfer stands and only the old approvals settle.
			stuck = true
			return accountant.ReleaseApprovals(ctx, res.OwnerID, res.ApprovedAccountIDs)
		}

		if err := tx.RemoveFromOwner(ctx, res.ReceiverID, res.TokenID); err != nil {
			return err
		}
		if err := tx.AddToOwner(ctx, res.OwnerID, res.TokenID); err != nil {
			return fmt.Errorf("failed to index reverted token for owner: %w", err)
		}

		// approvals the receiver granted during the window are wiped and
		// their storage refunded to the receiver
		if err := accountant.ReleaseApprovals(ctx, res.ReceiverID, token.ApprovedAccountIDs); err != nil {
			return err
		}

		token.OwnerID = res.OwnerID
		token.ApprovedAccountIDs = res.ApprovedAccountIDs
		token.NextApprovalID = res.NextApprovalID
		if err := tx.UpdateToken(ctx, token); err != nil {
			return err
		}

		event, err = domain.NewTransferEvent(res.ReceiverID, res.OwnerID, nil, nil, res.TokenID)
		return err
	})
	if err != nil {
		return false, err
	}

	if event != nil {
		l.emit(ctx, event)
	}
	return stuck, nil
}
