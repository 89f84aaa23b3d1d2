package rest

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/cfd-platform/cfd-backend/internal/api/shared/constants"
	"github.com/cfd-platform/cfd-backend/internal/domain"
)

// ListDistributionsQueryParams holds query parameters for GET /dividends/distributions
type ListDistributionsQueryParams struct {
	Page  int `form:"page,default=1"`
	Limit int `form:"limit,default=10"`
}

// ParseListDistributionsQuery parses query parameters for GET /dividends/distributions
func ParseListDistributionsQuery(c *gin.Context) (*ListDistributionsQueryParams, error) {
	var params ListDistributionsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	if params.Page < 1 {
		params.Page = constants.DEFAULT_PAGE
	}
	if params.Limit < 1 {
		params.Limit = constants.DEFAULT_DISTRIBUTIONS_LIMIT
	}
	if params.Limit > constants.MAX_DISTRIBUTIONS_LIMIT {
		params.Limit = constants.MAX_DISTRIBUTIONS_LIMIT
	}

	return &params, nil
}

// ListTransactionsQueryParams holds query parameters for wallet ledger listings
type ListTransactionsQueryParams struct {
	Page  int    `form:"page,default=1"`
	Limit int    `form:"limit,default=20"`
	Type  string `form:"type"`
}

// ParseListTransactionsQuery parses query parameters for wallet ledger listings
func ParseListTransactionsQuery(c *gin.Context) (*ListTransactionsQueryParams, error) {
	var params ListTransactionsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	if params.Page < 1 {
		params.Page = constants.DEFAULT_PAGE
	}
	if params.Limit < 1 {
		params.Limit = constants.DEFAULT_TRANSACTIONS_LIMIT
	}
	if params.Limit > constants.MAX_TRANSACTIONS_LIMIT {
		params.Limit = constants.MAX_TRANSACTIONS_LIMIT
	}
	if params.Type != "" && !domain.TransactionType(params.Type).Valid() {
		return nil, domain.NewValidationError("type", "unknown transaction type")
	}

	return &params, nil
}

// TransactionType returns the type filter, nil when every type is listed
func (p *ListTransactionsQueryParams) TransactionType() *domain.TransactionType {
	if p.Type == "" {
		return nil
	}
	t := domain.TransactionType(p.Type)
	return &t
}

// ParseICOPhaseNumber parses the :phase path parameter
func ParseICOPhaseNumber(c *gin.Context) (int, error) {
	phase, err := strconv.Atoi(c.Param("phase"))
	if err != nil || phase < 1 {
		return 0, domain.NewValidationError("phase", "must be a positive number")
	}
	return phase, nil
}

// ParseMonthlyProfit parses the optional monthly_profit query parameter
func ParseMonthlyProfit(c *gin.Context) (*decimal.Decimal, error) {
	raw, ok := c.GetQuery("monthly_profit")
	if !ok || raw == "" {
		return nil, nil
	}

	profit, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, domain.NewValidationError("monthly_profit", "must be a number")
	}
	if !profit.IsPositive() {
		return nil, domain.NewValidationError("monthly_profit", "must be greater than zero")
	}

	return &profit, nil
}
