package ledger

import (
	"context"
	"math/big"

	"github.com/feral-file/nft-ledger/internal/domain"
	"github.com/feral-file/nft-ledger/internal/storage"
	"github.com/feral-file/nft-ledger/internal/store"
)

var basisPointsTotal = big.NewInt(domain.BasisPointsTotal)

// computePayout splits balance among the token's royalty beneficiaries and
// its owner. Each non-owner share is floored; the owner takes the remainder,
// so the entries always sum to balance exactly.
func computePayout(token *domain.Token, balance *big.Int, maxLenPayout *uint32) (*domain.Payout, error) {
	if maxLenPayout != nil && len(token.Royalty) > int(*maxLenPayout) {
		return nil, domain.ErrTooManyReceivers
	}

	entries := make([]domain.PayoutEntry, 0, len(token.Royalty)+1)
	nonOwnerTotal := new(big.Int)
	for _, r := range token.Royalty {
		if r.AccountID == token.OwnerID {
			continue
		}
		amount := new(big.Int).Mul(balance, big.NewInt(int64(r.BasisPoints)))
		amount.Quo(amount, basisPointsTotal)
		nonOwnerTotal.Add(nonOwnerTotal, amount)
		entries = append(entries, domain.PayoutEntry{
			AccountID: r.AccountID,
			Amount:    amount.String(),
		})
	}

	ownerAmount := new(big.Int).Sub(balance, nonOwnerTotal)
	entries = append(entries, domain.PayoutEntry{
		AccountID: token.OwnerID,
		Amount:    ownerAmount.String(),
	})

	return &domain.Payout{Payout: entries}, nil
}

// Payout computes the royalty split of a sale balance
func (l *ledger) Payout(ctx context.Context, tokenID domain.TokenID, balance string, maxLenPayout *uint32) (*domain.Payout, error) {
	amount, err := domain.ParseAmount(balance)
	if err != nil {
		return nil, err
	}

	token, err := l.store.GetToken(ctx, tokenID)
	if err != nil {
		return nil, err
	}
	if token == nil {
		return nil, domain.ErrTokenNotFound
	}

	return computePayout(token, amount, maxLenPayout)
}

// TransferPayout transfers the token and returns the payout computed from the
// pre-transfer owner and royalty table
func (l *ledger) TransferPayout(ctx context.Context, call domain.CallContext, receiverID domain.AccountID, tokenID domain.TokenID, approvalID *uint64, memo *string, balance string, maxLenPayout *uint32) (*domain.Payout, error) {
	if !domain.IsOneYocto(call.Deposit) {
		return nil, domain.ErrOneYoctoRequired
	}
	if !receiverID.Valid() {
		return nil, domain.ErrInvalidAccountID
	}
	amount, err := domain.ParseAmount(balance)
	if err != nil {
		return nil, err
	}

	var (
		event  *domain.NFTEvent
		payout *domain.Payout
	)
	err = l.store.Atomically(ctx, func(tx store.Store) error {
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

		// the payout reflects the owner and royalty table the sale was
		// priced against, before ownership moves
		payout, err = computePayout(token, amount, maxLenPayout)
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
		return nil, err
	}

	l.emit(ctx, event)
	return payout, nil
}
