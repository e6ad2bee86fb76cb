package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/autopilot-sync/internal/config"
	"github.com/vfg2006/autopilot-sync/internal/domain"
	"github.com/vfg2006/autopilot-sync/internal/usecases/authenticating"
)

func TestServerWiring(t *testing.T) {
	cfg := &config.Config{
		Server: config.Server{Host: "127.0.0.1", Port: "0"},
		Auth:   config.Auth{Secret: ""},
	}

	srv, err := New(cfg, authenticating.NewService(cfg), nil, nil)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/cron/push/run", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code, "sem AUTH_SECRET os disparos ficam desabilitados")
}

func TestCronStatusAcceptsAnyValidToken(t *testing.T) {
	cfg := &config.Config{
		Server: config.Server{Host: "127.0.0.1", Port: "0"},
		Auth:   config.Auth{Secret: "segredo-de-teste"},
	}

	srv, err := New(cfg, authenticating.NewService(cfg), nil, nil)
	require.NoError(t, err)

	// papel fora de admin/operador
	claims := domain.Claims{
		Operator: "auditor",
		RoleID:   99,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "auditor",
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.Auth.Secret))
	require.NoError(t, err)

	tests := []struct {
		name     string
		method   string
		path     string
		auth     string
		expected int
	}{
		{name: "Status com papel qualquer", method: http.MethodGet, path: "/v1/cron/status", auth: "Bearer " + token, expected: http.StatusOK},
		{name: "Status sem token", method: http.MethodGet, path: "/v1/cron/status", expected: http.StatusUnauthorized},
		{name: "Disparo exige admin ou operador", method: http.MethodPost, path: "/v1/cron/push/run", auth: "Bearer " + token, expected: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.auth != "" {
				req.Header.Set("Authorization", tt.auth)
			}

			rec := httptest.NewRecorder()
			srv.Handler().ServeHTTP(rec, req)
			assert.Equal(t, tt.expected, rec.Code)
		})
	}
}
