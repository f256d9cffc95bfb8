package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/dicegame-go/internal/model"
	"github.com/mcoot/dicegame-go/internal/services/auth"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeInvalidDieIndex    = "INVALID_DIE_INDEX"
	CodeUnknownStrategy    = "UNKNOWN_STRATEGY"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodePlayerNotFound     = "PLAYER_NOT_FOUND"
	CodeMatchNotFound      = "MATCH_NOT_FOUND"
	CodeNotMatchOwner      = "NOT_MATCH_OWNER"
	CodeMatchInProgress    = "MATCH_IN_PROGRESS"
	CodeNoMatchInProgress  = "NO_MATCH_IN_PROGRESS"
	CodeMatchComplete      = "MATCH_COMPLETE"
	CodeMatchAbandoned     = "MATCH_ABANDONED"
	CodeRollLimitReached   = "ROLL_LIMIT_REACHED"
	CodeNotRolledYet       = "NOT_ROLLED_YET"
	CodeUsernameExists     = "USERNAME_EXISTS"
	CodeInvalidUsername    = "INVALID_USERNAME"
	CodePasswordTooShort   = "PASSWORD_TOO_SHORT"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeInternalError      = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player not found"}}
	case errors.Is(err, model.ErrMatchNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeMatchNotFound, "Match not found"}}
	case errors.Is(err, model.ErrNotMatchOwner):
		return &httpError{http.StatusForbidden, APIError{CodeNotMatchOwner, "Match belongs to another player"}}
	case errors.Is(err, model.ErrMatchInProgress):
		return &httpError{http.StatusConflict, APIError{CodeMatchInProgress, "A match is already in progress"}}
	case errors.Is(err, model.ErrNoMatchInProgress):
		return &httpError{http.StatusNotFound, APIError{CodeNoMatchInProgress, "No match in progress"}}
	case errors.Is(err, model.ErrMatchComplete):
		return &httpError{http.StatusConflict, APIError{CodeMatchComplete, "Match is already complete"}}
	case errors.Is(err, model.ErrMatchAbandoned):
		return &httpError{http.StatusConflict, APIError{CodeMatchAbandoned, "Match has been abandoned"}}
	case errors.Is(err, model.ErrRollLimitReached):
		return &httpError{http.StatusConflict, APIError{CodeRollLimitReached, "No rolls left this round"}}
	case errors.Is(err, model.ErrNotRolledYet):
		return &httpError{http.StatusConflict, APIError{CodeNotRolledYet, "Roll the dice first"}}
	case errors.Is(err, model.ErrInvalidDieIndex):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidDieIndex, "Die index must be 0-4"}}
	case errors.Is(err, model.ErrUnknownStrategy):
		return &httpError{http.StatusBadRequest, APIError{CodeUnknownStrategy, "Unknown opponent strategy"}}

	// Map auth errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		return &httpError{http.StatusUnauthorized, APIError{CodeInvalidCredentials, "Invalid username or password"}}
	case errors.Is(err, auth.ErrInvalidSession):
		return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Invalid or expired session"}}
	case errors.Is(err, auth.ErrUsernameExists):
		return &httpError{http.StatusConflict, APIError{CodeUsernameExists, "Username already exists"}}
	case errors.Is(err, auth.ErrInvalidUsername):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidUsername, auth.ErrInvalidUsername.Error()}}
	case errors.Is(err, auth.ErrPasswordTooShort):
		return &httpError{http.StatusBadRequest, APIError{CodePasswordTooShort, auth.ErrPasswordTooShort.Error()}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Authentication required"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
