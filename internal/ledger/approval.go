package ledger

import (
	"context"

	"github.com/feral-file/nft-ledger/internal/domain"
	"github.com/feral-file/nft-ledger/internal/receiver"
	"github.com/feral-file/nft-ledger/internal/storage"
	"github.com/feral-file/nft-ledger/internal/store"
	"github.com/feral-file/nft-ledger/internal/store/schema"
)

// Approve grants account the right to transfer the token. A fresh approval id
// is assigned even when the account was already approved; the counter only
// ever moves forward.
func (l *ledger) Approve(ctx context.Context, call domain.CallContext, tokenID domain.TokenID, account domain.AccountID, msg *string) (uint64, error) {
	if !domain.IsAtLeastOneYocto(call.Deposit) {
		return 0, domain.ErrAtLeastOneYoctoRequired
	}
	if !account.Valid() {
		return 0, domain.ErrInvalidAccountID
	}

	var (
		approvalID uint64
		hook       *schema.ReceiverHook
	)
	err := l.store.Atomically(ctx, func(tx store.Store) error {
		token, err := tx.GetToken(ctx, tokenID)
		if err != nil {
			return err
		}
		if token == nil {
			return domain.ErrTokenNotFound
		}
		if call.CallerID != token.OwnerID {
			return domain.ErrUnauthorized
		}

		approvalID = token.NextApprovalID
		token.NextApprovalID++

		// re-approval refreshes the id in place and grows nothing
		var grownBytes int64
		if existing, ok := token.ApprovalFor(account); ok {
			for i, entry := range token.ApprovedAccountIDs {
				if entry.AccountID == existing.AccountID {
					token.ApprovedAccountIDs[i].ApprovalID = approvalID
					break
				}
			}
		} else {
			token.ApprovedAccountIDs = append(token.ApprovedAccountIDs, domain.ApprovalEntry{
				AccountID:  account,
				ApprovalID: approvalID,
			})
			grownBytes = storage.AccountIDBytes(account)
		}

		if err := tx.UpdateToken(ctx, token); err != nil {
			return err
		}

		accountant := storage.NewAccountant(tx)
		if err := accountant.Charge(ctx, call.CallerID, call.Deposit, grownBytes); err != nil {
			return err
		}

		if msg != nil {
			hook, err = tx.GetReceiverHook(ctx, account)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	if msg != nil && hook != nil {
		l.hooks.OnApprove(hook, receiver.OnApproveRequest{
			TokenID:    tokenID,
			OwnerID:    call.CallerID,
			ApprovalID: approvalID,
			Msg:        *msg,
		})
	}

	return approvalID, nil
}

// IsApproved reports whether account holds a live approval on the token
func (l *ledger) IsApproved(ctx context.Context, tokenID domain.TokenID, account domain.AccountID, approvalID *uint64) (bool, error) {
	token, err := l.store.GetToken(ctx, tokenID)
	if err != nil {
		return false, err
	}
	if token == nil {
		return false, domain.ErrTokenNotFound
	}

	entry, ok := token.ApprovalFor(account)
	if !ok {
		return false, nil
	}
	if approvalID != nil {
		return *approvalID == entry.ApprovalID, nil
	}
	return true, nil
}

// Revoke removes one approval. Revoking an account that holds no approval is
// a no-op, not an error.
func (l *ledger) Revoke(ctx context.Context, call domain.CallContext, tokenID domain.TokenID, account domain.AccountID) error {
	if !domain.IsOneYocto(call.Deposit) {
		return domain.ErrOneYoctoRequired
	}

	return l.store.Atomically(ctx, func(tx store.Store) error {
		token, err := tx.GetToken(ctx, tokenID)
		if err != nil {
			return err
		}
		if token == nil {
			return domain.ErrTokenNotFound
		}
		if call.CallerID != token.OwnerID {
			return domain.ErrUnauthorized
		}

		if _, ok := token.ApprovalFor(account); !ok {
			return nil
		}

		kept := make([]domain.ApprovalEntry, 0, len(token.ApprovedAccountIDs)-1)
		for _, entry := range token.ApprovedAccountIDs {
			if entry.AccountID != account {
				kept = append(kept, entry)
			}
		}
		token.ApprovedAccountIDs = kept

		if err := tx.UpdateToken(ctx, token); err != nil {
			return err
		}

		accountant := storage.NewAccountant(tx)
		return accountant.Release(ctx, token.OwnerID, storage.AccountIDBytes(account))
	})
}

// RevokeAll removes every approval on the token. The approval counter is
// untouched so future ids stay monotone.
func (l *ledger) RevokeAll(ctx context.Context, call domain.CallContext, tokenID domain.TokenID) error {
	if !domain.IsOneYocto(call.Deposit) {
		return domain.ErrOneYoctoRequired
	}

	return l.store.Atomically(ctx, func(tx store.Store) error {
		token, err := tx.GetToken(ctx, tokenID)
		if err != nil {
			return err
		}
		if token == nil {
			return domain.ErrTokenNotFound
		}
		if call.CallerID != token.OwnerID {
			return domain.ErrUnauthorized
		}

		if len(token.ApprovedAccountIDs) == 0 {
			return nil
		}

		released := token.ApprovedAccountIDs
		token.ApprovedAccountIDs = []domain.ApprovalEntry{}

		if err := tx.UpdateToken(ctx, token); err != nil {
			return err
		}

		accountant := storage.NewAccountant(tx)
		return accountant.ReleaseApprovals(ctx, token.OwnerID, released)
	})
}
