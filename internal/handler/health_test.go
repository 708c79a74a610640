package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bharaths07/sportsv1.1-sub000/internal/handler"
)

func TestHealth(t *testing.T) {
	cases := []struct {
		name     string
		path     string
		redisErr error
		wantCode int
	}{
		{"live root", "/live", errors.New("down"), http.StatusOK},
		{"live api", handler.APIV1Prefix + "/health/live", nil, http.StatusOK},
		{"ready root", "/ready", nil, http.StatusOK},
		{"ready api", handler.APIV1Prefix + "/health/ready", nil, http.StatusOK},
		{"ready with redis down", "/ready", errors.New("redis down"), http.StatusServiceUnavailable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			probes := map[string]handler.Pinger{
				"postgres": stubPinger{},
				"redis":    stubPinger{err: tc.redisErr},
			}
			r := newRouter(probes, handler.Services{})
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.path, nil))
			assert.Equal(t, tc.wantCode, w.Code, w.Body.String())
		})
	}
}

func TestReadiness_ReportsEachCheck(t *testing.T) {
	probes := map[string]handler.Pinger{
		"postgres": stubPinger{},
		"redis":    stubPinger{err: errors.New("redis down")},
	}
	r := newRouter(probes, handler.Services{})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))

	var body struct {
		Status string            `json:"status"`
		Checks map[string]string `json:"checks"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "unavailable", body.Status)
	assert.Equal(t, "ok", body.Checks["postgres"])
	assert.Equal(t, "redis down", body.Checks["redis"])
}
