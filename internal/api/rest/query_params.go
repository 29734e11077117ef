package rest

import (
	"github.com/gin-gonic/gin"
)

const MAX_PAGE_SIZE = 100

// EnumerationQueryParams holds pagination parameters for token listings.
// from_index counts records in insertion order; limit defaults to the
// contract's enumeration page size when omitted.
type EnumerationQueryParams struct {
	FromIndex *int64 `form:"from_index"`
	Limit     *int   `form:"limit"`
}

// PayoutQueryParams holds parameters for payout views
type PayoutQueryParams struct {
	Balance      string  `form:"balance" binding:"required"`
	MaxLenPayout *uint32 `form:"max_len_payout"`
}

// IsApprovedQueryParams holds the optional exact-id filter for approval checks
type IsApprovedQueryParams struct {
	ApprovalID *uint64 `form:"approval_id"`
}

// ParseEnumerationQuery parses and caps pagination parameters
func ParseEnumerationQuery(c *gin.Context) (*EnumerationQueryParams, error) {
	var params EnumerationQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	if params.Limit != nil && *params.Limit > MAX_PAGE_SIZE {
		capped := MAX_PAGE_SIZE
		params.Limit = &capped
	}

	return &params, nil
}
