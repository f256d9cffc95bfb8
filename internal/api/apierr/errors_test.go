package apierr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/dicegame-go/internal/model"
	"github.com/mcoot/dicegame-go/internal/services/auth"
)

func TestToHTTPError(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{model.ErrMatchNotFound, http.StatusNotFound, CodeMatchNotFound},
		{model.ErrNotMatchOwner, http.StatusForbidden, CodeNotMatchOwner},
		{model.ErrMatchInProgress, http.StatusConflict, CodeMatchInProgress},
		{model.ErrNoMatchInProgress, http.StatusNotFound, CodeNoMatchInProgress},
		{model.ErrMatchComplete, http.StatusConflict, CodeMatchComplete},
		{model.ErrMatchAbandoned, http.StatusConflict, CodeMatchAbandoned},
		{model.ErrRollLimitReached, http.StatusConflict, CodeRollLimitReached},
		{model.ErrNotRolledYet, http.StatusConflict, CodeNotRolledYet},
		{model.ErrInvalidDieIndex, http.StatusBadRequest, CodeInvalidDieIndex},
		{fmt.Errorf("%w: psychic", model.ErrUnknownStrategy), http.StatusBadRequest, CodeUnknownStrategy},
		{auth.ErrInvalidSession, http.StatusUnauthorized, CodeUnauthorized},
		{auth.ErrInvalidCredentials, http.StatusUnauthorized, CodeInvalidCredentials},
		{auth.ErrPasswordTooShort, http.StatusBadRequest, CodePasswordTooShort},
		{NewInvalidRequestError("bad"), http.StatusBadRequest, CodeInvalidRequest},
		{errors.New("boom"), http.StatusInternalServerError, CodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			he := toHTTPError(tt.err)
			assert.Equal(t, tt.status, he.status)
			assert.Equal(t, tt.code, he.apiError.Code)
		})
	}
}

func TestWriteError(t *testing.T) {
	rr := httptest.NewRecorder()

	WriteError(rr, model.ErrNotRolledYet)

	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, CodeNotRolledYet, resp.Error.Code)
}
