package handlers

import (
	"errors"
	"net/http"

	"voyago/services/completion"
	"voyago/services/search"
	"voyago/services/trip"
	"voyago/utils"

	"github.com/gin-gonic/gin"
)

// SessionIDHeader identifies the trip session on every request.
const SessionIDHeader = "X-Session-ID"

// sessionID pulls the session identifier from the request header; responds
// 400 and returns false when absent.
func sessionID(c *gin.Context) (string, bool) {
	id := c.GetHeader(SessionIDHeader)
	if id == "" {
		utils.JSONErrorCode(c, http.StatusBadRequest, "session_missing", "missing "+SessionIDHeader+" header")
		return "", false
	}
	return id, true
}

// respondSearchError maps pipeline failures onto HTTP statuses with
// machine-readable codes. Synthetic fallback never reaches this path; only
// hard failures do.
func respondSearchError(c *gin.Context, err error) {
	var missing *search.MissingParamError
	var reqErr *completion.RequestError

	switch {
	case errors.As(err, &missing):
		utils.JSONErrorCode(c, http.StatusBadRequest, "missing_parameter", missing.Error())
	case errors.Is(err, completion.ErrCredentialMissing):
		utils.JSONErrorCode(c, http.StatusUnauthorized, "credential_missing", "no completion key is configured for this session")
	case errors.Is(err, completion.ErrCredentialInvalid):
		utils.JSONErrorCode(c, http.StatusUnauthorized, "credential_invalid", "the completion endpoint rejected the configured key")
	case errors.Is(err, completion.ErrRateLimited):
		utils.JSONErrorCode(c, http.StatusTooManyRequests, "rate_limited", "the completion endpoint is rate limiting requests")
	case errors.Is(err, completion.ErrTimeout):
		utils.JSONErrorCode(c, http.StatusGatewayTimeout, "timeout", "the completion request timed out")
	case errors.Is(err, completion.ErrEmptyCompletion):
		utils.JSONErrorCode(c, http.StatusBadGateway, "empty_completion", "the completion endpoint returned no content")
	case errors.As(err, &reqErr):
		utils.JSONErrorCode(c, http.StatusBadGateway, "request_failed", reqErr.Error())
	case errors.Is(err, search.ErrLoadMoreBusy):
		utils.JSONErrorCode(c, http.StatusConflict, "load_more_busy", err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "search failed", err.Error())
	}
}

// respondTripError maps trip session failures onto HTTP statuses.
func respondTripError(c *gin.Context, err error) {
	var illegal *trip.IllegalTransitionError

	switch {
	case errors.Is(err, trip.ErrSessionNotFound):
		utils.JSONErrorCode(c, http.StatusNotFound, "session_not_found", err.Error())
	case errors.As(err, &illegal):
		utils.JSONErrorCode(c, http.StatusConflict, "illegal_transition", illegal.Error())
	case errors.Is(err, trip.ErrNotRoundTrip):
		utils.JSONErrorCode(c, http.StatusConflict, "not_round_trip", err.Error())
	case errors.Is(err, trip.ErrLodgingNotFound):
		utils.JSONErrorCode(c, http.StatusNotFound, "lodging_not_found", err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "trip session operation failed", err.Error())
	}
}
