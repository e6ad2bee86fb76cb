package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/autopilot-sync/internal/config"
	"github.com/vfg2006/autopilot-sync/internal/domain"
	"github.com/vfg2006/autopilot-sync/internal/usecases/authenticating"
	"github.com/vfg2006/autopilot-sync/pkg/log"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
}

func newAuth(secret string) *authenticating.Service {
	return authenticating.NewService(&config.Config{Auth: config.Auth{Secret: secret}})
}

func serve(h http.Handler, path, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestAuthMiddleware(t *testing.T) {
	auth := newAuth("segredo")
	h := AuthMiddleware(auth)(AdminOrOperator()(okHandler()))

	operatorToken, err := auth.GenerateToken("ana", domain.RoleOperator, time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name          string
		path          string
		authorization string
		wantStatus    int
	}{
		{"rota pública sem token", "/healthcheck", "", http.StatusNoContent},
		{"sem header", "/v1/cron/push/run", "", http.StatusUnauthorized},
		{"sem Bearer", "/v1/cron/push/run", operatorToken, http.StatusUnauthorized},
		{"token inválido", "/v1/cron/push/run", "Bearer abc", http.StatusUnauthorized},
		{"operador autenticado", "/v1/cron/push/run", "Bearer " + operatorToken, http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(h, tt.path, tt.authorization)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestAuthMiddlewareDisabled(t *testing.T) {
	h := AuthMiddleware(newAuth(""))(okHandler())

	assert.Equal(t, http.StatusServiceUnavailable, serve(h, "/v1/cron/status", "Bearer x").Code)
	assert.Equal(t, http.StatusNoContent, serve(h, "/metrics", "").Code)
}

func TestAdminOnly(t *testing.T) {
	auth := newAuth("segredo")
	h := AuthMiddleware(auth)(AdminOnly()(okHandler()))

	operatorToken, err := auth.GenerateToken("ana", domain.RoleOperator, time.Hour)
	require.NoError(t, err)
	adminToken, err := auth.GenerateToken("root", domain.RoleAdmin, time.Hour)
	require.NoError(t, err)

	assert.Equal(t, http.StatusForbidden, serve(h, "/v1/x", "Bearer "+operatorToken).Code)
	assert.Equal(t, http.StatusNoContent, serve(h, "/v1/x", "Bearer "+adminToken).Code)
}

func TestRoleMiddlewareWithoutClaims(t *testing.T) {
	rec := serve(AdminOnly()(okHandler()), "/v1/x", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoggingAndPanicMiddleware(t *testing.T) {
	log.SetupTestLogger()

	var correlationID string
	h := LogPanicMiddleware()(LoggingMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		correlationID = log.GetCorrelationID(r.Context())
		panic("boom")
	})))

	rec := serve(h, "/v1/x", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotEmpty(t, correlationID)
}
