package apiErrors

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteError(rec, ErrSyncAlreadyRunning, "Sincronização push já em andamento", nil)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"code":"SYNC_001","message":"Sincronização push já em andamento"}`, rec.Body.String())
}

func TestStatusForUnknownCode(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, StatusFor("XYZ_999"))
}

func TestFromError(t *testing.T) {
	assert.Equal(t, APIError{Code: ErrExternalService, Message: "boom"}, FromError(errors.New("boom"), ErrExternalService))
	assert.Equal(t, ErrInternalServer, FromError(nil, ErrExternalService).Code)
}
