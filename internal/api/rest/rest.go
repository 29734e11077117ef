package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/feral-file/nft-ledger/internal/api/middleware"
)

// SetupRoutes configures all REST API routes. View operations are public;
// every mutating operation needs an authenticated caller account because the
// ledger's authorization rules key off who invokes it.
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Contract and supply views (public read access)
		v1.GET("/metadata", handler.GetContractMetadata)
		v1.GET("/supply", handler.GetTotalSupply)
		v1.GET("/owners/:account_id/supply", handler.GetSupplyForOwner)
		v1.GET("/owners/:account_id/tokens", handler.ListTokensForOwner)

		// Token views (public read access)
		v1.GET("/tokens", handler.ListTokens)
		v1.GET("/tokens/:token_id", handler.GetToken)
		v1.GET("/tokens/:token_id/metadata", handler.GetTokenMetadata)
		v1.GET("/tokens/:token_id/payout", handler.GetPayout)
		v1.GET("/tokens/:token_id/approvals/:account_id", handler.IsApproved)

		// Ownership mutations (authenticated caller account required)
		auth := middleware.Auth(authCfg)
		v1.POST("/tokens", auth, handler.Mint)
		v1.POST("/tokens/:token_id/transfer", auth, handler.Transfer)
		v1.POST("/tokens/:token_id/transfer-call", auth, handler.TransferCall)
		v1.POST("/tokens/:token_id/transfer-payout", auth, handler.TransferPayout)

		// Approval mutations
		v1.POST("/tokens/:token_id/approvals", auth, handler.Approve)
		v1.DELETE("/tokens/:token_id/approvals/:account_id", auth, handler.Revoke)
		v1.DELETE("/tokens/:token_id/approvals", auth, handler.RevokeAll)

		// Receiver hook registration
		v1.PUT("/receivers", auth, handler.RegisterReceiver)
	}
}
