package domain_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/feral-file/nft-ledger/internal/domain"
)

func TestAccountID_Valid(t *testing.T) {
	valid := []string{
		"alice.near",
		"ab",
		"sub.account.near",
		"token_holder-1.near",
		"0x1234",
		strings.Repeat("a", 64),
	}
	for _, account := range valid {
		assert.True(t, domain.AccountID(account).Valid(), account)
	}

	invalid := []string{
		"",
		"a",
		"Alice.near",
		".near",
		"near.",
		"double..dot",
		"-leading.near",
		"trailing-.near",
		"spa ce.near",
		strings.Repeat("a", 65),
	}
	for _, account := range invalid {
		assert.False(t, domain.AccountID(account).Valid(), account)
	}
}

func TestTokenID_Valid(t *testing.T) {
	assert.True(t, domain.TokenID("token-1").Valid())
	assert.True(t, domain.TokenID("1").Valid())
	assert.True(t, domain.TokenID(strings.Repeat("x", 256)).Valid())

	assert.False(t, domain.TokenID("").Valid())
	assert.False(t, domain.TokenID(strings.Repeat("x", 257)).Valid())
}

func TestToken_ApprovalFor(t *testing.T) {
	token := &domain.Token{
		TokenID: "token-1",
		OwnerID: "alice.near",
		ApprovedAccountIDs: []domain.ApprovalEntry{
			{AccountID: "market.near", ApprovalID: 3},
		},
	}

	entry, ok := token.ApprovalFor("market.near")
	assert.True(t, ok)
	assert.Equal(t, uint64(3), entry.ApprovalID)

	_, ok = token.ApprovalFor("stranger.near")
	assert.False(t, ok)
}

func TestPayout_AmountFor(t *testing.T) {
	payout := &domain.Payout{
		Payout: []domain.PayoutEntry{
			{AccountID: "artist.near", Amount: "50"},
			{AccountID: "alice.near", Amount: "950"},
		},
	}
	assert.Equal(t, "950", payout.AmountFor("alice.near"))
	assert.Equal(t, "", payout.AmountFor("stranger.near"))
}
