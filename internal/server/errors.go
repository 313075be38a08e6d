package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	availabilitydomain "github.com/campreserv/keepr/internal/availability/domain"
	campgrounddomain "github.com/campreserv/keepr/internal/campground/domain"
	"github.com/campreserv/keepr/internal/deposit"
	feedomain "github.com/campreserv/keepr/internal/fee/domain"
	pricingdomain "github.com/campreserv/keepr/internal/pricing/domain"
	quotedomain "github.com/campreserv/keepr/internal/quote/domain"
	ratedomain "github.com/campreserv/keepr/internal/rate/domain"
	reservationdomain "github.com/campreserv/keepr/internal/reservation/domain"
)

// APIError is the wire shape for every non-2xx response.
type APIError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string { return e.Message }

var ErrUnauthorized = &APIError{
	Status:  http.StatusUnauthorized,
	Code:    "unauthorized",
	Message: "missing or invalid API key",
}

func invalidRequestError() *APIError {
	return &APIError{
		Status:  http.StatusBadRequest,
		Code:    "invalid_request",
		Message: "request body or query is malformed",
	}
}

func invalidIDError(field string) *APIError {
	return &APIError{
		Status:  http.StatusBadRequest,
		Code:    "invalid_id",
		Message: field + " is not a valid id",
	}
}

// AbortWithError maps a domain error onto an HTTP status and writes the
// error envelope. Unrecognized errors become opaque 500s.
func AbortWithError(c *gin.Context, err error) {
	apiErr := toAPIError(err)
	_ = c.Error(err)
	c.AbortWithStatusJSON(apiErr.Status, gin.H{"error": apiErr})
}

func toAPIError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	switch {
	case errors.Is(err, campgrounddomain.ErrCampgroundNotFound),
		errors.Is(err, campgrounddomain.ErrSiteNotFound),
		errors.Is(err, ratedomain.ErrRateEntryNotFound),
		errors.Is(err, pricingdomain.ErrRuleNotFound),
		errors.Is(err, feedomain.ErrTaxRuleNotFound),
		errors.Is(err, feedomain.ErrUpsellNotFound),
		errors.Is(err, reservationdomain.ErrReservationNotFound),
		errors.Is(err, quotedomain.ErrNotFound):
		return &APIError{Status: http.StatusNotFound, Code: "not_found", Message: err.Error()}

	case errors.Is(err, ratedomain.ErrInvalidDateRange),
		errors.Is(err, availabilitydomain.ErrInvalidDateRange):
		return &APIError{Status: http.StatusUnprocessableEntity, Code: "invalid_date_range", Message: err.Error()}

	case errors.Is(err, ratedomain.ErrNoRateConfigured):
		return &APIError{Status: http.StatusUnprocessableEntity, Code: "no_rate_configured", Message: err.Error()}

	case errors.Is(err, feedomain.ErrTaxRuleMissing):
		return &APIError{Status: http.StatusUnprocessableEntity, Code: "tax_rule_missing", Message: err.Error()}

	case errors.Is(err, deposit.ErrInvalidConfig):
		return &APIError{Status: http.StatusUnprocessableEntity, Code: "invalid_deposit_config", Message: err.Error()}

	case errors.Is(err, ratedomain.ErrInvalidRateEntry),
		errors.Is(err, pricingdomain.ErrInvalidTrigger),
		errors.Is(err, pricingdomain.ErrInvalidAdjustmentType),
		errors.Is(err, pricingdomain.ErrInvalidPriority),
		errors.Is(err, feedomain.ErrInvalidTaxRule),
		errors.Is(err, feedomain.ErrInvalidUpsell),
		errors.Is(err, campgrounddomain.ErrInvalidCampground),
		errors.Is(err, campgrounddomain.ErrInvalidSite),
		errors.Is(err, campgrounddomain.ErrInvalidPolicy),
		errors.Is(err, reservationdomain.ErrInvalidReservation):
		return &APIError{Status: http.StatusUnprocessableEntity, Code: "validation_failed", Message: err.Error()}

	case errors.Is(err, reservationdomain.ErrSiteUnavailable):
		return &APIError{Status: http.StatusConflict, Code: "site_unavailable", Message: err.Error()}

	case errors.Is(err, reservationdomain.ErrInvalidCancellationState),
		errors.Is(err, reservationdomain.ErrInvalidTransition):
		return &APIError{Status: http.StatusConflict, Code: "invalid_state", Message: err.Error()}

	default:
		return &APIError{Status: http.StatusInternalServerError, Code: "internal_error", Message: "internal error"}
	}
}
