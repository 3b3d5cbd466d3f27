package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"bidstar/internal/marketerrors"
	"bidstar/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and
// message. Each validation failure keeps its own message so the client
// can render a specific prompt.
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, marketerrors.ErrArtistNotFound):
		return http.StatusNotFound, "artist not found"
	case errors.Is(err, marketerrors.ErrLabelNotFound):
		return http.StatusNotFound, "label not found"
	case errors.Is(err, marketerrors.ErrAuctionNotFound):
		return http.StatusNotFound, "auction not found"
	case errors.Is(err, marketerrors.ErrMissingRequiredField):
		return http.StatusBadRequest, "missing or invalid required field"
	case errors.Is(err, marketerrors.ErrGenreLimitExceeded):
		return http.StatusBadRequest, "too many genres selected"
	case errors.Is(err, marketerrors.ErrTermsNotAccepted):
		return http.StatusBadRequest, "terms and conditions must be accepted"
	case errors.Is(err, marketerrors.ErrInvalidBidAmount):
		return http.StatusBadRequest, "bid amount must be a positive number"
	case errors.Is(err, marketerrors.ErrBidBelowCurrent):
		return http.StatusConflict, "bid amount must be higher than current bid"
	case errors.Is(err, marketerrors.ErrAuctionNotLive):
		return http.StatusConflict, "auction is not live"
	case errors.Is(err, marketerrors.ErrQuotaExceeded):
		return http.StatusConflict, "post limit reached"
	case errors.Is(err, marketerrors.ErrTrialExpired):
		return http.StatusForbidden, "trial period has expired"
	case errors.Is(err, marketerrors.ErrNoBids):
		return http.StatusNotFound, "no bids found for auction"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
