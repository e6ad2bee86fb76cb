package utils

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateID(t *testing.T) {
	id, err := GenerateID()
	require.NoError(t, err)
	assert.Len(t, id, idLength)
}

func TestPrettyJSON(t *testing.T) {
	assert.Equal(t, "{\n  \"a\": 1\n}", PrettyJSON([]byte(`{"a":1}`)))
	assert.Equal(t, "not json", PrettyJSON("not json"))
	assert.Equal(t, "[\n  1,\n  2\n]", PrettyJSON([]int{1, 2}))
}

func TestProbeStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	status, err := ProbeStatus(context.Background(), srv.Client(), srv.URL, map[string]string{"Authorization": "secret"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, status)

	status, err = ProbeStatus(context.Background(), srv.Client(), srv.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, status)
}
