package rest

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.temporal.io/api/enums/v1"
	"go.temporal.io/sdk/client"
	"go.uber.org/zap"

	"github.com/feral-file/nft-ledger/internal/api/middleware"
	"github.com/feral-file/nft-ledger/internal/api/rest/dto"
	"github.com/feral-file/nft-ledger/internal/domain"
	"github.com/feral-file/nft-ledger/internal/ledger"
	"github.com/feral-file/nft-ledger/internal/providers/temporal"
	"github.com/feral-file/nft-ledger/internal/workflows"
)

// Handler defines the interface for REST API handlers
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// Mint creates a new token
	// POST /api/v1/tokens
	Mint(c *gin.Context)

	// GetToken retrieves a single token by its ID
	// GET /api/v1/tokens/:token_id
	GetToken(c *gin.Context)

	// GetTokenMetadata retrieves a token's metadata
	// GET /api/v1/tokens/:token_id/metadata
	GetTokenMetadata(c *gin.Context)

	// ListTokens retrieves tokens in mint order
	// GET /api/v1/tokens?from_index=<n>&limit=<n>
	ListTokens(c *gin.Context)

	// ListTokensForOwner retrieves an owner's tokens in acquisition order
	// GET /api/v1/owners/:account_id/tokens?from_index=<n>&limit=<n>
	ListTokensForOwner(c *gin.Context)

	// GetTotalSupply returns the number of minted tokens
	// GET /api/v1/supply
	GetTotalSupply(c *gin.Context)

	// GetSupplyForOwner returns the number of tokens an owner holds
	// GET /api/v1/owners/:account_id/supply
	GetSupplyForOwner(c *gin.Context)

	// GetContractMetadata returns the contract metadata singleton
	// GET /api/v1/metadata
	GetContractMetadata(c *gin.Context)

	// Transfer moves a token to a new owner
	// POST /api/v1/tokens/:token_id/transfer
	Transfer(c *gin.Context)

	// TransferCall moves a token and starts the resolve saga for the
	// receiver's verdict
	// POST /api/v1/tokens/:token_id/transfer-call
	TransferCall(c *gin.Context)

	// TransferPayout moves a token and returns the sale split
	// POST /api/v1/tokens/:token_id/transfer-payout
	TransferPayout(c *gin.Context)

	// GetPayout computes the sale split without transferring
	// GET /api/v1/tokens/:token_id/payout?balance=<yocto>&max_len_payout=<n>
	GetPayout(c *gin.Context)

	// Approve grants an account the right to transfer a token
	// POST /api/v1/tokens/:token_id/approvals
	Approve(c *gin.Context)

	// IsApproved reports whether an account holds a live approval
	// GET /api/v1/tokens/:token_id/approvals/:account_id?approval_id=<n>
	IsApproved(c *gin.Context)

	// Revoke removes one approval
	// DELETE /api/v1/tokens/:token_id/approvals/:account_id
	Revoke(c *gin.Context)

	// RevokeAll removes every approval on a token
	// DELETE /api/v1/tokens/:token_id/approvals
	RevokeAll(c *gin.Context)

	// RegisterReceiver registers the caller's hook endpoints
	// PUT /api/v1/receivers
	RegisterReceiver(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	ledger       ledger.Ledger
	orchestrator temporal.TemporalOrchestrator
	taskQueue    string
}

// NewHandler creates a new REST API handler
func NewHandler(ldg ledger.Ledger, orchestrator temporal.TemporalOrchestrator, taskQueue string) Handler {
	return &handler{
		ledger:       ldg,
		orchestrator: orchestrator,
		taskQueue:    taskQueue,
	}
}

// callContext builds the caller context of one contract operation from the
// authenticated subject and the attached deposit field
func callContext(c *gin.Context, deposit string) (domain.CallContext, bool) {
	caller, ok := middleware.CallerAccount(c)
	if !ok {
		respondWithError(c, http.StatusUnauthorized, errCodeUnauthorized, "Caller identity missing")
		return domain.CallContext{}, false
	}

	amount, err := domain.ParseAmount(deposit)
	if err != nil {
		respondValidationError(c, "deposit must be a non-negative decimal yocto amount")
		return domain.CallContext{}, false
	}

	return domain.CallContext{CallerID: caller, Deposit: amount}, true
}

// tokenIDParam extracts and validates the token_id path parameter
func tokenIDParam(c *gin.Context) (domain.TokenID, bool) {
	tokenID := domain.TokenID(c.Param("token_id"))
	if !tokenID.Valid() {
		respondBadRequest(c, "Invalid token ID")
		return "", false
	}
	return tokenID, true
}

// accountIDParam extracts and validates the account_id path parameter
func accountIDParam(c *gin.Context) (domain.AccountID, bool) {
	account := domain.AccountID(c.Param("account_id"))
	if !account.Valid() {
		respondBadRequest(c, "Invalid account ID")
		return "", false
	}
	return account, true
}

// Mint creates a new token
func (h *handler) Mint(c *gin.Context) {
	var req dto.MintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	call, ok := callContext(c, req.Deposit)
	if !ok {
		return
	}

	token, err := h.ledger.Mint(c.Request.Context(), call,
		domain.TokenID(req.TokenID),
		domain.AccountID(req.ReceiverID),
		req.Metadata,
		dto.RoyaltyToDomain(req.Royalty),
	)
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.MintResponse{Token: dto.TokenFromDomain(token)})
}

// GetToken retrieves a single token by its ID
func (h *handler) GetToken(c *gin.Context) {
	tokenID, ok := tokenIDParam(c)
	if !ok {
		return
	}

	token, err := h.ledger.Token(c.Request.Context(), tokenID)
	if err != nil {
		respondInternalError(c, err, "Failed to load token", zap.String("token", tokenID.String()))
		return
	}
	if token == nil {
		respondNotFound(c, "Token not found")
		return
	}

	c.JSON(http.StatusOK, dto.TokenFromDomain(token))
}

// GetTokenMetadata retrieves a token's metadata
func (h *handler) GetTokenMetadata(c *gin.Context) {
	tokenID, ok := tokenIDParam(c)
	if !ok {
		return
	}

	metadata, err := h.ledger.TokenMetadata(c.Request.Context(), tokenID)
	if err != nil {
		respondInternalError(c, err, "Failed to load token metadata", zap.String("token", tokenID.String()))
		return
	}
	if metadata == nil {
		respondNotFound(c, "Token has no metadata")
		return
	}

	c.JSON(http.StatusOK, metadata)
}

// ListTokens retrieves tokens in mint order
func (h *handler) ListTokens(c *gin.Context) {
	params, err := ParseEnumerationQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	tokens, err := h.ledger.Tokens(c.Request.Context(), params.FromIndex, params.Limit)
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TokensResponse{Tokens: dto.TokensFromDomain(tokens)})
}

// ListTokensForOwner retrieves an owner's tokens in acquisition order
func (h *handler) ListTokensForOwner(c *gin.Context) {
	owner, ok := accountIDParam(c)
	if !ok {
		return
	}
	params, err := ParseEnumerationQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	tokens, err := h.ledger.TokensForOwner(c.Request.Context(), owner, params.FromIndex, params.Limit)
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TokensResponse{Tokens: dto.TokensFromDomain(tokens)})
}

// GetTotalSupply returns the number of minted tokens
func (h *handler) GetTotalSupply(c *gin.Context) {
	supply, err := h.ledger.TotalSupply(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "Failed to count tokens")
		return
	}
	c.JSON(http.StatusOK, dto.SupplyResponse{Supply: supply})
}

// GetSupplyForOwner returns the number of tokens an owner holds
func (h *handler) GetSupplyForOwner(c *gin.Context) {
	owner, ok := accountIDParam(c)
	if !ok {
		return
	}

	supply, err := h.ledger.SupplyForOwner(c.Request.Context(), owner)
	if err != nil {
		respondInternalError(c, err, "Failed to count owner tokens", zap.String("owner", owner.String()))
		return
	}
	c.JSON(http.StatusOK, dto.SupplyResponse{Supply: supply})
}

// GetContractMetadata returns the contract metadata singleton
func (h *handler) GetContractMetadata(c *gin.Context) {
	metadata, err := h.ledger.Metadata(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "Failed to load contract metadata")
		return
	}
	if metadata == nil {
		respondNotFound(c, "Contract metadata not initialized")
		return
	}
	c.JSON(http.StatusOK, metadata)
}

// Transfer moves a token to a new owner
func (h *handler) Transfer(c *gin.Context) {
	tokenID, ok := tokenIDParam(c)
	if !ok {
		return
	}
	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}
	call, ok := callContext(c, req.Deposit)
	if !ok {
		return
	}

	err := h.ledger.Transfer(c.Request.Context(), call,
		domain.AccountID(req.ReceiverID), tokenID, req.ApprovalID, req.Memo)
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// TransferCall moves a token and starts the resolve saga
func (h *handler) TransferCall(c *gin.Context) {
	tokenID, ok := tokenIDParam(c)
	if !ok {
		return
	}
	var req dto.TransferCallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}
	call, ok := callContext(c, req.Deposit)
	if !ok {
		return
	}

	resolution, err := h.ledger.TransferCall(c.Request.Context(), call,
		domain.AccountID(req.ReceiverID), tokenID, req.ApprovalID, req.Memo, req.Msg)
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	// The transfer is committed; its settlement rides on the saga. The
	// workflow carries the full resolution snapshot so the verdict lands
	// even across worker restarts.
	workflowOptions := client.StartWorkflowOptions{
		ID:                    fmt.Sprintf("resolve-transfer-%s-%s", tokenID, uuid.New().String()),
		TaskQueue:             h.taskQueue,
		WorkflowRunTimeout:    30 * time.Minute,
		WorkflowIDReusePolicy: enums.WORKFLOW_ID_REUSE_POLICY_REJECT_DUPLICATE,
	}
	input := workflows.ResolveTransferInput{
		Resolution: *resolution,
		SenderID:   call.CallerID,
		Msg:        req.Msg,
	}
	run, err := h.orchestrator.ExecuteWorkflow(c.Request.Context(), workflowOptions, workflows.ResolveTransferWorkflowName, input)
	if err != nil {
		// The optimistic transfer stands but nothing will settle it; this
		// needs operator attention
		respondInternalError(c, err, "Failed to start transfer resolution",
			zap.String("token", tokenID.String()),
			zap.String("receiver", req.ReceiverID))
		return
	}

	c.JSON(http.StatusAccepted, dto.TransferCallResponse{
		WorkflowID: run.GetID(),
		RunID:      run.GetRunID(),
	})
}

// TransferPayout moves a token and returns the sale split
func (h *handler) TransferPayout(c *gin.Context) {
	tokenID, ok := tokenIDParam(c)
	if !ok {
		return
	}
	var req dto.TransferPayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}
	call, ok := callContext(c, req.Deposit)
	if !ok {
		return
	}

	payout, err := h.ledger.TransferPayout(c.Request.Context(), call,
		domain.AccountID(req.ReceiverID), tokenID, req.ApprovalID, req.Memo,
		req.Balance, req.MaxLenPayout)
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PayoutFromDomain(payout))
}

// GetPayout computes the sale split without transferring
func (h *handler) GetPayout(c *gin.Context) {
	tokenID, ok := tokenIDParam(c)
	if !ok {
		return
	}
	var params PayoutQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	payout, err := h.ledger.Payout(c.Request.Context(), tokenID, params.Balance, params.MaxLenPayout)
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PayoutFromDomain(payout))
}

// Approve grants an account the right to transfer a token
func (h *handler) Approve(c *gin.Context) {
	tokenID, ok := tokenIDParam(c)
	if !ok {
		return
	}
	var req dto.ApproveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}
	call, ok := callContext(c, req.Deposit)
	if !ok {
		return
	}

	approvalID, err := h.ledger.Approve(c.Request.Context(), call, tokenID,
		domain.AccountID(req.AccountID), req.Msg)
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ApproveResponse{ApprovalID: approvalID})
}

// IsApproved reports whether an account holds a live approval
func (h *handler) IsApproved(c *gin.Context) {
	tokenID, ok := tokenIDParam(c)
	if !ok {
		return
	}
	account, ok := accountIDParam(c)
	if !ok {
		return
	}
	var params IsApprovedQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	approved, err := h.ledger.IsApproved(c.Request.Context(), tokenID, account, params.ApprovalID)
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.IsApprovedResponse{Approved: approved})
}

// Revoke removes one approval
func (h *handler) Revoke(c *gin.Context) {
	tokenID, ok := tokenIDParam(c)
	if !ok {
		return
	}
	account, ok := accountIDParam(c)
	if !ok {
		return
	}
	var req dto.RevokeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}
	call, ok := callContext(c, req.Deposit)
	if !ok {
		return
	}

	if err := h.ledger.Revoke(c.Request.Context(), call, tokenID, account); err != nil {
		respondLedgerError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// RevokeAll removes every approval on a token
func (h *handler) RevokeAll(c *gin.Context) {
	tokenID, ok := tokenIDParam(c)
	if !ok {
		return
	}
	var req dto.RevokeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}
	call, ok := callContext(c, req.Deposit)
	if !ok {
		return
	}

	if err := h.ledger.RevokeAll(c.Request.Context(), call, tokenID); err != nil {
		respondLedgerError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// RegisterReceiver registers the caller's hook endpoints
func (h *handler) RegisterReceiver(c *gin.Context) {
	var req dto.RegisterReceiverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}
	caller, ok := middleware.CallerAccount(c)
	if !ok {
		respondWithError(c, http.StatusUnauthorized, errCodeUnauthorized, "Caller identity missing")
		return
	}

	call := domain.CallContext{CallerID: caller}
	if err := h.ledger.RegisterReceiver(c.Request.Context(), call, req.TransferURL, req.ApproveURL, req.Secret); err != nil {
		respondLedgerError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
