package storage_test

import (
	"context"
	"math/big"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/nft-ledger/internal/domain"
	"github.com/feral-file/nft-ledger/internal/mocks"
	"github.com/feral-file/nft-ledger/internal/storage"
)

func TestAccountIDBytes(t *testing.T) {
	// account length plus the fixed per-entry overhead
	assert.Equal(t, int64(len("alice.near")+12), storage.AccountIDBytes("alice.near"))
}

func TestApprovalTableBytes(t *testing.T) {
	entries := []domain.ApprovalEntry{
		{AccountID: "market.near", ApprovalID: 0},
		{AccountID: "broker.near", ApprovalID: 1},
	}
	expected := storage.AccountIDBytes("market.near") + storage.AccountIDBytes("broker.near")
	assert.Equal(t, expected, storage.ApprovalTableBytes(entries))
	assert.Equal(t, int64(0), storage.ApprovalTableBytes(nil))
}

func TestMintBytes(t *testing.T) {
	token := &domain.Token{
		TokenID:            "token-1",
		OwnerID:            "alice.near",
		ApprovedAccountIDs: []domain.ApprovalEntry{},
		Royalty: []domain.RoyaltyEntry{
			{AccountID: "artist.near", BasisPoints: 500},
		},
	}

	bare := storage.MintBytes(token, nil)
	assert.Greater(t, bare, int64(0))

	title := "Olympus Mons"
	withMetadata := storage.MintBytes(token, &domain.TokenMetadata{Title: &title})
	assert.Greater(t, withMetadata, bare)
}

func TestAccountant_Charge(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStore(ctrl)
	accountant := storage.NewAccountant(st)
	ctx := context.Background()

	bytes := int64(100)
	cost := accountant.Cost(bytes)

	// exact deposit settles with no refund
	err := accountant.Charge(ctx, "alice.near", new(big.Int).Set(cost), bytes)
	require.NoError(t, err)

	// 1 yocto of excess falls under the rounding threshold
	err = accountant.Charge(ctx, "alice.near", new(big.Int).Add(cost, big.NewInt(1)), bytes)
	require.NoError(t, err)

	// anything above the threshold accrues back to the payer
	st.EXPECT().AccrueCredit(ctx, domain.AccountID("alice.near"), big.NewInt(2)).Return(nil)
	err = accountant.Charge(ctx, "alice.near", new(big.Int).Add(cost, big.NewInt(2)), bytes)
	require.NoError(t, err)
}

func TestAccountant_Charge_Insufficient(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStore(ctrl)
	accountant := storage.NewAccountant(st)
	ctx := context.Background()

	short := new(big.Int).Sub(accountant.Cost(100), big.NewInt(1))
	err := accountant.Charge(ctx, "alice.near", short, 100)
	assert.ErrorIs(t, err, domain.ErrInsufficientDeposit)

	err = accountant.Charge(ctx, "alice.near", nil, 100)
	assert.ErrorIs(t, err, domain.ErrInsufficientDeposit)
}

func TestAccountant_Charge_ZeroBytes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStore(ctrl)
	accountant := storage.NewAccountant(st)

	// zero growth costs nothing; a 1 yocto deposit stays below the threshold
	err := accountant.Charge(context.Background(), "alice.near", big.NewInt(1), 0)
	require.NoError(t, err)
}

func TestAccountant_Release(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStore(ctrl)
	accountant := storage.NewAccountant(st)
	ctx := context.Background()

	require.NoError(t, accountant.Release(ctx, "alice.near", 0))
	require.NoError(t, accountant.Release(ctx, "alice.near", -3))

	st.EXPECT().AccrueCredit(ctx, domain.AccountID("alice.near"), accountant.Cost(50)).Return(nil)
	require.NoError(t, accountant.Release(ctx, "alice.near", 50))
}

func TestAccountant_ReleaseApprovals(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStore(ctrl)
	accountant := storage.NewAccountant(st)
	ctx := context.Background()

	entries := []domain.ApprovalEntry{
		{AccountID: "market.near", ApprovalID: 0},
	}
	st.EXPECT().AccrueCredit(ctx, domain.AccountID("alice.near"), accountant.Cost(storage.ApprovalTableBytes(entries))).Return(nil)
	require.NoError(t, accountant.ReleaseApprovals(ctx, "alice.near", entries))

	// an empty table releases nothing
	require.NoError(t, accountant.ReleaseApprovals(ctx, "alice.near", nil))
}
