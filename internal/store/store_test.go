package store

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/nft-ledger/internal/domain"
	"github.com/feral-file/nft-ledger/internal/store/schema"
)

// =============================================================================
// Test Data Builders
// =============================================================================

// buildTestToken creates a bare token record owned by owner
func buildTestToken(tokenID, owner string) *domain.Token {
	return &domain.Token{
		TokenID:            domain.TokenID(tokenID),
		OwnerID:            domain.AccountID(owner),
		ApprovedAccountIDs: []domain.ApprovalEntry{},
		Royalty:            []domain.RoyaltyEntry{},
	}
}

func strPtr(s string) *string { return &s }

// =============================================================================
// Token CRUD
// =============================================================================

func testCreateAndGetToken(t *testing.T, st Store) {
	ctx := context.Background()

	token := buildTestToken("token-1", "alice.near")
	token.NextApprovalID = 3
	token.ApprovedAccountIDs = []domain.ApprovalEntry{
		{AccountID: "market.near", ApprovalID: 1},
		{AccountID: "broker.near", ApprovalID: 2},
	}
	token.Royalty = []domain.RoyaltyEntry{
		{AccountID: "artist.near", BasisPoints: 500},
	}
	require.NoError(t, st.CreateToken(ctx, token))

	got, err := st.GetToken(ctx, "token-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, domain.AccountID("alice.near"), got.OwnerID)
	assert.Equal(t, uint64(3), got.NextApprovalID)
	assert.Equal(t, token.ApprovedAccountIDs, got.ApprovedAccountIDs)
	assert.Equal(t, token.Royalty, got.Royalty)

	// Never-minted token reads back as nil, not an error
	missing, err := st.GetToken(ctx, "ghost")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func testCreateTokenDuplicate(t *testing.T, st Store) {
	ctx := context.Background()

	require.NoError(t, st.CreateToken(ctx, buildTestToken("token-1", "alice.near")))

	err := st.CreateToken(ctx, buildTestToken("token-1", "bob.near"))
	assert.ErrorIs(t, err, domain.ErrTokenAlreadyExists)
}

func testUpdateToken(t *testing.T, st Store) {
	ctx := context.Background()

	token := buildTestToken("token-1", "alice.near")
	token.NextApprovalID = 2
	token.ApprovedAccountIDs = []domain.ApprovalEntry{
		{AccountID: "market.near", ApprovalID: 1},
	}
	require.NoError(t, st.CreateToken(ctx, token))

	// Move ownership and clear approvals the way a transfer does
	token.OwnerID = "bob.near"
	token.ApprovedAccountIDs = []domain.ApprovalEntry{}
	token.NextApprovalID = 0
	require.NoError(t, st.UpdateToken(ctx, token))

	got, err := st.GetToken(ctx, "token-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, domain.AccountID("bob.near"), got.OwnerID)
	assert.Empty(t, got.ApprovedAccountIDs)
	assert.Equal(t, uint64(0), got.NextApprovalID)

	err = st.UpdateToken(ctx, buildTestToken("ghost", "alice.near"))
	assert.ErrorIs(t, err, domain.ErrTokenNotFound)
}

func testListTokensMintOrder(t *testing.T, st Store) {
	ctx := context.Background()

	for _, id := range []string{"token-a", "token-b", "token-c", "token-d"} {
		require.NoError(t, st.CreateToken(ctx, buildTestToken(id, "alice.near")))
	}

	tokens, err := st.ListTokens(ctx, 0, 10)
	require.NoError(t, err)
	require.Len(t, tokens, 4)
	assert.Equal(t, domain.TokenID("token-a"), tokens[0].TokenID)
	assert.Equal(t, domain.TokenID("token-d"), tokens[3].TokenID)

	// Paging skips fromIndex rows and caps at limit
	page, err := st.ListTokens(ctx, 1, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, domain.TokenID("token-b"), page[0].TokenID)
	assert.Equal(t, domain.TokenID("token-c"), page[1].TokenID)

	// A window past the end is empty
	tail, err := st.ListTokens(ctx, 10, 2)
	require.NoError(t, err)
	assert.Empty(t, tail)
}

func testCountTokens(t *testing.T, st Store) {
	ctx := context.Background()

	count, err := st.CountTokens(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	require.NoError(t, st.CreateToken(ctx, buildTestToken("token-1", "alice.near")))
	require.NoError(t, st.CreateToken(ctx, buildTestToken("token-2", "bob.near")))

	count, err = st.CountTokens(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

// =============================================================================
// Token metadata
// =============================================================================

func testTokenMetadata(t *testing.T, st Store) {
	ctx := context.Background()

	require.NoError(t, st.CreateToken(ctx, buildTestToken("token-1", "alice.near")))

	copies := uint64(1)
	metadata := &domain.TokenMetadata{
		Title:       strPtr("Sunrise #1"),
		Description: strPtr("Generative series"),
		Media:       strPtr("https://cdn.example/sunrise-1.png"),
		Copies:      &copies,
	}
	require.NoError(t, st.CreateTokenMetadata(ctx, "token-1", metadata))

	got, err := st.GetTokenMetadata(ctx, "token-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, metadata, got)

	// Tokens minted without metadata read back nil
	missing, err := st.GetTokenMetadata(ctx, "ghost")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

// =============================================================================
// Owner index
// =============================================================================

func testOwnerIndex(t *testing.T, st Store) {
	ctx := context.Background()

	require.NoError(t, st.AddToOwner(ctx, "alice.near", "token-1"))
	require.NoError(t, st.AddToOwner(ctx, "alice.near", "token-2"))
	require.NoError(t, st.AddToOwner(ctx, "bob.near", "token-3"))

	count, err := st.CountTokensForOwner(ctx, "alice.near")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	require.NoError(t, st.RemoveFromOwner(ctx, "alice.near", "token-1"))

	count, err = st.CountTokensForOwner(ctx, "alice.near")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	// Removing a token the owner does not hold signals index corruption
	err = st.RemoveFromOwner(ctx, "alice.near", "token-3")
	assert.ErrorIs(t, err, domain.ErrOwnerIndexCorrupted)
}

func testListTokensForOwnerAcquisitionOrder(t *testing.T, st Store) {
	ctx := context.Background()

	require.NoError(t, st.AddToOwner(ctx, "alice.near", "token-c"))
	require.NoError(t, st.AddToOwner(ctx, "alice.near", "token-a"))
	require.NoError(t, st.AddToOwner(ctx, "bob.near", "token-b"))
	require.NoError(t, st.AddToOwner(ctx, "alice.near", "token-d"))

	// Order follows acquisition, not token id
	tokenIDs, err := st.ListTokensForOwner(ctx, "alice.near", 0, 10)
	require.NoError(t, err)
	assert.Equal(t, []domain.TokenID{"token-c", "token-a", "token-d"}, tokenIDs)

	page, err := st.ListTokensForOwner(ctx, "alice.near", 1, 1)
	require.NoError(t, err)
	assert.Equal(t, []domain.TokenID{"token-a"}, page)

	empty, err := st.ListTokensForOwner(ctx, "carol.near", 0, 10)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

// =============================================================================
// Account credits
// =============================================================================

func testAccountCredits(t *testing.T, st Store) {
	ctx := context.Background()

	// Unknown accounts start at zero
	credit, err := st.GetCredit(ctx, "alice.near")
	require.NoError(t, err)
	assert.Equal(t, 0, credit.Sign())

	// Accruals sum, including values beyond 64 bits
	first, ok := new(big.Int).SetString("10000000000000000000000", 10)
	require.True(t, ok)
	second, ok := new(big.Int).SetString("340282366920938463463374607431768211455", 10)
	require.True(t, ok)

	require.NoError(t, st.AccrueCredit(ctx, "alice.near", first))
	require.NoError(t, st.AccrueCredit(ctx, "alice.near", second))

	credit, err = st.GetCredit(ctx, "alice.near")
	require.NoError(t, err)
	assert.Equal(t, new(big.Int).Add(first, second), credit)

	// Nil and non-positive amounts are no-ops
	require.NoError(t, st.AccrueCredit(ctx, "bob.near", nil))
	require.NoError(t, st.AccrueCredit(ctx, "bob.near", big.NewInt(0)))

	credit, err = st.GetCredit(ctx, "bob.near")
	require.NoError(t, err)
	assert.Equal(t, 0, credit.Sign())
}

// =============================================================================
// Receiver hooks
// =============================================================================

func testReceiverHooks(t *testing.T, st Store) {
	ctx := context.Background()

	missing, err := st.GetReceiverHook(ctx, "market.near")
	require.NoError(t, err)
	assert.Nil(t, missing)

	hook := &schema.ReceiverHook{
		AccountID:   "market.near",
		TransferURL: "https://market.example/on-transfer",
		Secret:      "s3cret",
		IsActive:    true,
	}
	require.NoError(t, st.UpsertReceiverHook(ctx, hook))

	got, err := st.GetReceiverHook(ctx, "market.near")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "https://market.example/on-transfer", got.TransferURL)
	assert.Empty(t, got.ApproveURL)
	assert.True(t, got.IsActive)

	// Re-registering replaces the endpoints in place
	hook.TransferURL = "https://market.example/v2/on-transfer"
	hook.ApproveURL = "https://market.example/v2/on-approve"
	hook.Secret = "rotated"
	require.NoError(t, st.UpsertReceiverHook(ctx, hook))

	got, err = st.GetReceiverHook(ctx, "market.near")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "https://market.example/v2/on-transfer", got.TransferURL)
	assert.Equal(t, "https://market.example/v2/on-approve", got.ApproveURL)
	assert.Equal(t, "rotated", got.Secret)
}

// =============================================================================
// Contract metadata singleton
// =============================================================================

func testContractMetadata(t *testing.T, st Store) {
	ctx := context.Background()

	// Uninitialized contract has no metadata
	missing, err := st.GetContractMetadata(ctx)
	require.NoError(t, err)
	assert.Nil(t, missing)

	metadata := &domain.ContractMetadata{
		Spec:    domain.NFTMetadataSpec,
		Name:    "Test Collection",
		Symbol:  "TEST",
		BaseURI: strPtr("https://cdn.example"),
	}
	require.NoError(t, st.SetContractMetadata(ctx, metadata))

	got, err := st.GetContractMetadata(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, metadata, got)

	// The singleton is written once for the life of the contract
	err = st.SetContractMetadata(ctx, &domain.ContractMetadata{Name: "Other"})
	assert.ErrorIs(t, err, domain.ErrAlreadyInitialized)

	got, err = st.GetContractMetadata(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Test Collection", got.Name)
}

// =============================================================================
// Transaction boundary
// =============================================================================

func testAtomicallyCommits(t *testing.T, st Store) {
	ctx := context.Background()

	err := st.Atomically(ctx, func(tx Store) error {
		if err := tx.CreateToken(ctx, buildTestToken("token-1", "alice.near")); err != nil {
			return err
		}
		return tx.AddToOwner(ctx, "alice.near", "token-1")
	})
	require.NoError(t, err)

	got, err := st.GetToken(ctx, "token-1")
	require.NoError(t, err)
	assert.NotNil(t, got)

	count, err := st.CountTokensForOwner(ctx, "alice.near")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func testAtomicallyRollsBack(t *testing.T, st Store) {
	ctx := context.Background()

	boom := errors.New("boom")
	err := st.Atomically(ctx, func(tx Store) error {
		if err := tx.CreateToken(ctx, buildTestToken("token-1", "alice.near")); err != nil {
			return err
		}
		if err := tx.AddToOwner(ctx, "alice.near", "token-1"); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	// Neither write survives the failed transaction
	got, err := st.GetToken(ctx, "token-1")
	require.NoError(t, err)
	assert.Nil(t, got)

	count, err := st.CountTokensForOwner(ctx, "alice.near")
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

// RunStoreTests runs the store test suite against one Store implementation
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"CreateAndGetToken", testCreateAndGetToken},
		{"CreateTokenDuplicate", testCreateTokenDuplicate},
		{"UpdateToken", testUpdateToken},
		{"ListTokensMintOrder", testListTokensMintOrder},
		{"CountTokens", testCountTokens},
		{"TokenMetadata", testTokenMetadata},
		{"OwnerIndex", testOwnerIndex},
		{"ListTokensForOwnerAcquisitionOrder", testListTokensForOwnerAcquisitionOrder},
		{"AccountCredits", testAccountCredits},
		{"ReceiverHooks", testReceiverHooks},
		{"ContractMetadata", testContractMetadata},
		{"AtomicallyCommits", testAtomicallyCommits},
		{"AtomicallyRollsBack", testAtomicallyRollsBack},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}
