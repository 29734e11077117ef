package rest_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/client"

	"github.com/feral-file/nft-ledger/internal/api/middleware"
	"github.com/feral-file/nft-ledger/internal/api/rest"
	"github.com/feral-file/nft-ledger/internal/api/rest/dto"
	"github.com/feral-file/nft-ledger/internal/domain"
	"github.com/feral-file/nft-ledger/internal/logger"
	"github.com/feral-file/nft-ledger/internal/mocks"
	"github.com/feral-file/nft-ledger/internal/workflows"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)

	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

// fakeWorkflowRun satisfies client.WorkflowRun for orchestrator stubs
type fakeWorkflowRun struct {
	id    string
	runID string
}

func (r *fakeWorkflowRun) GetID() string    { return r.id }
func (r *fakeWorkflowRun) GetRunID() string { return r.runID }
func (r *fakeWorkflowRun) Get(ctx context.Context, valuePtr interface{}) error {
	return nil
}
func (r *fakeWorkflowRun) GetWithOptions(ctx context.Context, valuePtr interface{}, options client.WorkflowRunGetOptions) error {
	return nil
}

// testHandlerMocks contains all the mocks needed for testing the handlers
type testHandlerMocks struct {
	ctrl         *gomock.Controller
	ledger       *mocks.MockLedger
	orchestrator *mocks.MockTemporalOrchestrator
	router       *gin.Engine
}

// setupTestHandler builds a router with the caller identity injected the way
// the auth middleware would after validating a platform JWT
func setupTestHandler(t *testing.T, caller string) *testHandlerMocks {
	ctrl := gomock.NewController(t)

	tm := &testHandlerMocks{
		ctrl:         ctrl,
		ledger:       mocks.NewMockLedger(ctrl),
		orchestrator: mocks.NewMockTemporalOrchestrator(ctrl),
	}

	handler := rest.NewHandler(tm.ledger, tm.orchestrator, workflows.TaskQueue)

	router := gin.New()
	if caller != "" {
		router.Use(func(c *gin.Context) {
			c.Set(middleware.AUTH_SUBJECT_KEY, caller)
			c.Next()
		})
	}

	v1 := router.Group("/api/v1")
	v1.GET("/metadata", handler.GetContractMetadata)
	v1.GET("/supply", handler.GetTotalSupply)
	v1.GET("/owners/:account_id/supply", handler.GetSupplyForOwner)
	v1.GET("/owners/:account_id/tokens", handler.ListTokensForOwner)
	v1.GET("/tokens", handler.ListTokens)
	v1.GET("/tokens/:token_id", handler.GetToken)
	v1.GET("/tokens/:token_id/metadata", handler.GetTokenMetadata)
	v1.GET("/tokens/:token_id/payout", handler.GetPayout)
	v1.GET("/tokens/:token_id/approvals/:account_id", handler.IsApproved)
	v1.POST("/tokens", handler.Mint)
	v1.POST("/tokens/:token_id/transfer", handler.Transfer)
	v1.POST("/tokens/:token_id/transfer-call", handler.TransferCall)
	v1.POST("/tokens/:token_id/transfer-payout", handler.TransferPayout)
	v1.POST("/tokens/:token_id/approvals", handler.Approve)
	v1.DELETE("/tokens/:token_id/approvals/:account_id", handler.Revoke)
	v1.DELETE("/tokens/:token_id/approvals", handler.RevokeAll)
	v1.PUT("/receivers", handler.RegisterReceiver)

	tm.router = router
	return tm
}

func (tm *testHandlerMocks) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	tm.router.ServeHTTP(w, req)
	return w
}

func TestHandler_Mint(t *testing.T) {
	tm := setupTestHandler(t, "minter.near")
	defer tm.ctrl.Finish()

	minted := &domain.Token{
		TokenID:            "token-1",
		OwnerID:            "alice.near",
		ApprovedAccountIDs: []domain.ApprovalEntry{},
		Royalty: []domain.RoyaltyEntry{
			{AccountID: "artist.near", BasisPoints: 500},
		},
	}
	tm.ledger.EXPECT().Mint(gomock.Any(), gomock.Any(), domain.TokenID("token-1"), domain.AccountID("alice.near"), gomock.Nil(), gomock.Any()).
		Return(minted, nil)

	w := tm.do(t, http.MethodPost, "/api/v1/tokens", dto.MintRequest{
		TokenID:    "token-1",
		ReceiverID: "alice.near",
		Royalty:    []dto.RoyaltyEntry{{AccountID: "artist.near", BasisPoints: 500}},
		Deposit:    "10000000000000000000000000",
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var resp dto.MintResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "token-1", resp.Token.TokenID)
	assert.Equal(t, "alice.near", resp.Token.OwnerID)
}

func TestHandler_Mint_MissingFields(t *testing.T) {
	tm := setupTestHandler(t, "minter.near")
	defer tm.ctrl.Finish()

	w := tm.do(t, http.MethodPost, "/api/v1/tokens", map[string]string{"token_id": "token-1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Mint_InvalidDeposit(t *testing.T) {
	tm := setupTestHandler(t, "minter.near")
	defer tm.ctrl.Finish()

	w := tm.do(t, http.MethodPost, "/api/v1/tokens", dto.MintRequest{
		TokenID:    "token-1",
		ReceiverID: "alice.near",
		Deposit:    "lots",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Mint_NoCaller(t *testing.T) {
	tm := setupTestHandler(t, "")
	defer tm.ctrl.Finish()

	w := tm.do(t, http.MethodPost, "/api/v1/tokens", dto.MintRequest{
		TokenID:    "token-1",
		ReceiverID: "alice.near",
		Deposit:    "1",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_GetToken(t *testing.T) {
	tm := setupTestHandler(t, "")
	defer tm.ctrl.Finish()

	token := &domain.Token{
		TokenID:            "token-1",
		OwnerID:            "alice.near",
		ApprovedAccountIDs: []domain.ApprovalEntry{},
	}
	tm.ledger.EXPECT().Token(gomock.Any(), domain.TokenID("token-1")).Return(token, nil)

	w := tm.do(t, http.MethodGet, "/api/v1/tokens/token-1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.Token
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "alice.near", resp.OwnerID)
}

func TestHandler_GetToken_NotFound(t *testing.T) {
	tm := setupTestHandler(t, "")
	defer tm.ctrl.Finish()

	tm.ledger.EXPECT().Token(gomock.Any(), domain.TokenID("ghost")).Return(nil, nil)

	w := tm.do(t, http.MethodGet, "/api/v1/tokens/ghost", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ListTokens_CapsLimit(t *testing.T) {
	tm := setupTestHandler(t, "")
	defer tm.ctrl.Finish()

	capped := rest.MAX_PAGE_SIZE
	tm.ledger.EXPECT().Tokens(gomock.Any(), gomock.Nil(), &capped).Return([]*domain.Token{}, nil)

	w := tm.do(t, http.MethodGet, "/api/v1/tokens?limit=5000", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_GetSupply(t *testing.T) {
	tm := setupTestHandler(t, "")
	defer tm.ctrl.Finish()

	tm.ledger.EXPECT().TotalSupply(gomock.Any()).Return("42", nil)

	w := tm.do(t, http.MethodGet, "/api/v1/supply", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.SupplyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "42", resp.Supply)
}

func TestHandler_Transfer(t *testing.T) {
	tm := setupTestHandler(t, "alice.near")
	defer tm.ctrl.Finish()

	tm.ledger.EXPECT().Transfer(gomock.Any(), gomock.Any(), domain.AccountID("bob.near"), domain.TokenID("token-1"), gomock.Nil(), gomock.Nil()).
		Return(nil)

	w := tm.do(t, http.MethodPost, "/api/v1/tokens/token-1/transfer", dto.TransferRequest{
		ReceiverID: "bob.near",
		Deposit:    "1",
	})
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestHandler_Transfer_ErrorMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", domain.ErrTokenNotFound, http.StatusNotFound},
		{"unauthorized", domain.ErrUnauthorized, http.StatusForbidden},
		{"approval mismatch", domain.ErrApprovalMismatch, http.StatusForbidden},
		{"self transfer", domain.ErrSelfTransfer, http.StatusBadRequest},
		{"deposit gate", domain.ErrOneYoctoRequired, http.StatusPaymentRequired},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tm := setupTestHandler(t, "alice.near")
			defer tm.ctrl.Finish()

			tm.ledger.EXPECT().Transfer(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				Return(tc.err)

			w := tm.do(t, http.MethodPost, "/api/v1/tokens/token-1/transfer", dto.TransferRequest{
				ReceiverID: "bob.near",
				Deposit:    "1",
			})
			assert.Equal(t, tc.status, w.Code)
		})
	}
}

func TestHandler_TransferCall(t *testing.T) {
	tm := setupTestHandler(t, "alice.near")
	defer tm.ctrl.Finish()

	resolution := &domain.TransferResolution{
		OwnerID:            "alice.near",
		ReceiverID:         "market.near",
		TokenID:            "token-1",
		ApprovedAccountIDs: []domain.ApprovalEntry{},
	}
	tm.ledger.EXPECT().TransferCall(gomock.Any(), gomock.Any(), domain.AccountID("market.near"), domain.TokenID("token-1"), gomock.Nil(), gomock.Nil(), "buy").
		Return(resolution, nil)
	tm.orchestrator.EXPECT().ExecuteWorkflow(gomock.Any(), gomock.Any(), workflows.ResolveTransferWorkflowName, gomock.Any()).
		DoAndReturn(func(_ context.Context, options client.StartWorkflowOptions, _ interface{}, args ...interface{}) (client.WorkflowRun, error) {
			assert.Equal(t, workflows.TaskQueue, options.TaskQueue)
			require.Len(t, args, 1)
			input, ok := args[0].(workflows.ResolveTransferInput)
			require.True(t, ok)
			assert.Equal(t, *resolution, input.Resolution)
			assert.Equal(t, domain.AccountID("alice.near"), input.SenderID)
			assert.Equal(t, "buy", input.Msg)
			return &fakeWorkflowRun{id: options.ID, runID: "run-1"}, nil
		})

	w := tm.do(t, http.MethodPost, "/api/v1/tokens/token-1/transfer-call", dto.TransferCallRequest{
		ReceiverID: "market.near",
		Msg:        "buy",
		Deposit:    "1",
	})
	require.Equal(t, http.StatusAccepted, w.Code)

	var resp dto.TransferCallResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.WorkflowID)
	assert.Equal(t, "run-1", resp.RunID)
}

func TestHandler_TransferCall_OrchestratorDown(t *testing.T) {
	tm := setupTestHandler(t, "alice.near")
	defer tm.ctrl.Finish()

	tm.ledger.EXPECT().TransferCall(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&domain.TransferResolution{}, nil)
	tm.orchestrator.EXPECT().ExecuteWorkflow(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, assert.AnError)

	w := tm.do(t, http.MethodPost, "/api/v1/tokens/token-1/transfer-call", dto.TransferCallRequest{
		ReceiverID: "market.near",
		Msg:        "buy",
		Deposit:    "1",
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestHandler_GetPayout(t *testing.T) {
	tm := setupTestHandler(t, "")
	defer tm.ctrl.Finish()

	payout := &domain.Payout{
		Payout: []domain.PayoutEntry{
			{AccountID: "artist.near", Amount: "50"},
			{AccountID: "alice.near", Amount: "950"},
		},
	}
	tm.ledger.EXPECT().Payout(gomock.Any(), domain.TokenID("token-1"), "1000", gomock.Nil()).Return(payout, nil)

	w := tm.do(t, http.MethodGet, "/api/v1/tokens/token-1/payout?balance=1000", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.Payout
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Payout, 2)
	assert.Equal(t, "50", resp.Payout[0].Amount)
}

func TestHandler_GetPayout_MissingBalance(t *testing.T) {
	tm := setupTestHandler(t, "")
	defer tm.ctrl.Finish()

	w := tm.do(t, http.MethodGet, "/api/v1/tokens/token-1/payout", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Approve(t *testing.T) {
	tm := setupTestHandler(t, "alice.near")
	defer tm.ctrl.Finish()

	tm.ledger.EXPECT().Approve(gomock.Any(), gomock.Any(), domain.TokenID("token-1"), domain.AccountID("market.near"), gomock.Nil()).
		Return(uint64(7), nil)

	w := tm.do(t, http.MethodPost, "/api/v1/tokens/token-1/approvals", dto.ApproveRequest{
		AccountID: "market.near",
		Deposit:   "10000000000000000000000",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.ApproveResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, uint64(7), resp.ApprovalID)
}

func TestHandler_IsApproved(t *testing.T) {
	tm := setupTestHandler(t, "")
	defer tm.ctrl.Finish()

	approvalID := uint64(3)
	tm.ledger.EXPECT().IsApproved(gomock.Any(), domain.TokenID("token-1"), domain.AccountID("market.near"), &approvalID).
		Return(true, nil)

	w := tm.do(t, http.MethodGet, "/api/v1/tokens/token-1/approvals/market.near?approval_id=3", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.IsApprovedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Approved)
}

func TestHandler_Revoke(t *testing.T) {
	tm := setupTestHandler(t, "alice.near")
	defer tm.ctrl.Finish()

	tm.ledger.EXPECT().Revoke(gomock.Any(), gomock.Any(), domain.TokenID("token-1"), domain.AccountID("market.near")).
		Return(nil)

	w := tm.do(t, http.MethodDelete, "/api/v1/tokens/token-1/approvals/market.near", dto.RevokeRequest{Deposit: "1"})
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestHandler_RevokeAll(t *testing.T) {
	tm := setupTestHandler(t, "alice.near")
	defer tm.ctrl.Finish()

	tm.ledger.EXPECT().RevokeAll(gomock.Any(), gomock.Any(), domain.TokenID("token-1")).Return(nil)

	w := tm.do(t, http.MethodDelete, "/api/v1/tokens/token-1/approvals", dto.RevokeRequest{Deposit: "1"})
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestHandler_RegisterReceiver(t *testing.T) {
	tm := setupTestHandler(t, "market.near")
	defer tm.ctrl.Finish()

	tm.ledger.EXPECT().RegisterReceiver(gomock.Any(), gomock.Any(), "https://market.example/on-transfer", "", "s3cret").
		Return(nil)

	w := tm.do(t, http.MethodPut, "/api/v1/receivers", dto.RegisterReceiverRequest{
		TransferURL: "https://market.example/on-transfer",
		Secret:      "s3cret",
	})
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestHandler_GetContractMetadata(t *testing.T) {
	tm := setupTestHandler(t, "")
	defer tm.ctrl.Finish()

	tm.ledger.EXPECT().Metadata(gomock.Any()).Return(&domain.ContractMetadata{
		Spec:   domain.NFTMetadataSpec,
		Name:   "Test Collection",
		Symbol: "TEST",
	}, nil)

	w := tm.do(t, http.MethodGet, "/api/v1/metadata", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp domain.ContractMetadata
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "nft-1.0.0", resp.Spec)
}
