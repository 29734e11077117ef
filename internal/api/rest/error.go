package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/feral-file/nft-ledger/internal/domain"
	"github.com/feral-file/nft-ledger/internal/logger"
)

// ErrorCode represents a standardized error code
type ErrorCode string

const (
	// Client errors (4xx)
	errCodeBadRequest       ErrorCode = "bad_request"
	errCodeNotFound         ErrorCode = "not_found"
	errCodeValidationFailed ErrorCode = "validation_failed"
	errCodeUnauthorized     ErrorCode = "unauthorized"
	errCodeForbidden        ErrorCode = "forbidden"
	errCodeConflict         ErrorCode = "conflict"
	errCodePaymentRequired  ErrorCode = "payment_required"

	// Server errors (5xx)
	errCodeInternalError ErrorCode = "internal_error"
)

// errorResponse represents a standardized error response
type errorResponse struct {
	Error errorDetail `json:"error"`
}

// errorDetail contains error information
type errorDetail struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

// respondWithError sends a standardized error response
func respondWithError(c *gin.Context, statusCode int, code ErrorCode, message string, details ...string) {
	response := errorResponse{
		Error: errorDetail{
			Code:    code,
			Message: message,
		},
	}

	if len(details) > 0 {
		response.Error.Details = details[0]
	}

	c.JSON(statusCode, response)
}

// respondBadRequest sends a 400 Bad Request response
func respondBadRequest(c *gin.Context, message string, details ...string) {
	respondWithError(c, http.StatusBadRequest, errCodeBadRequest, message, details...)
}

// respondNotFound sends a 404 Not Found response
func respondNotFound(c *gin.Context, message string, details ...string) {
	respondWithError(c, http.StatusNotFound, errCodeNotFound, message, details...)
}

// respondValidationError sends a 400 Bad Request with validation error
func respondValidationError(c *gin.Context, details string) {
	respondWithError(c, http.StatusBadRequest, errCodeValidationFailed, "Validation failed", details)
}

// respondInternalError sends a 500 Internal Server Error response and logs the error
func respondInternalError(c *gin.Context, err error, message string, fields ...zap.Field) {
	logger.Error(err, fields...)
	respondWithError(c, http.StatusInternalServerError, errCodeInternalError, message)
}

// respondLedgerError maps ledger operation failures onto the error envelope.
// Unknown errors become 500s without leaking internals.
func respondLedgerError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrTokenNotFound):
		respondNotFound(c, "Token not found")
	case errors.Is(err, domain.ErrTokenAlreadyExists):
		respondWithError(c, http.StatusConflict, errCodeConflict, "Token already exists")
	case errors.Is(err, domain.ErrUnauthorized):
		respondWithError(c, http.StatusForbidden, errCodeForbidden, "Caller is not allowed to perform this operation")
	case errors.Is(err, domain.ErrApprovalMismatch):
		respondWithError(c, http.StatusForbidden, errCodeForbidden, "Approval id does not match", err.Error())
	case errors.Is(err, domain.ErrSelfTransfer):
		respondBadRequest(c, "Receiver already owns the token")
	case errors.Is(err, domain.ErrInsufficientDeposit),
		errors.Is(err, domain.ErrOneYoctoRequired),
		errors.Is(err, domain.ErrAtLeastOneYoctoRequired):
		respondWithError(c, http.StatusPaymentRequired, errCodePaymentRequired, "Attached deposit does not satisfy the operation", err.Error())
	case errors.Is(err, domain.ErrTooManyRoyalties),
		errors.Is(err, domain.ErrTooManyReceivers),
		errors.Is(err, domain.ErrInvalidRoyalty),
		errors.Is(err, domain.ErrInvalidAccountID),
		errors.Is(err, domain.ErrInvalidTokenID),
		errors.Is(err, domain.ErrInvalidBalance),
		errors.Is(err, domain.ErrInvalidLimit):
		respondValidationError(c, err.Error())
	default:
		respondInternalError(c, err, "Operation failed")
	}
}
