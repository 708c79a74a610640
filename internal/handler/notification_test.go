package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bharaths07/sportsv1.1-sub000/internal/handler"
	"github.com/bharaths07/sportsv1.1-sub000/internal/model"
	"github.com/bharaths07/sportsv1.1-sub000/internal/repository"
)

const notificationsPath = handler.APIV1Prefix + "/notifications"

func serveNotifications(stub *stubNotificationService, method, path, body string) *httptest.ResponseRecorder {
	r := newRouter(nil, handler.Services{Notifications: stub})
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestNotificationHandler_List(t *testing.T) {
	stub := &stubNotificationService{items: []model.Notification{{ID: "n1", Title: "Match started"}}}

	w := serveNotifications(stub, http.MethodGet, notificationsPath, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 50, stub.limit)
	assert.Contains(t, w.Body.String(), `"id":"n1"`)

	serveNotifications(stub, http.MethodGet, notificationsPath+"?limit=5", "")
	assert.Equal(t, 5, stub.limit)
}

func TestNotificationHandler_MarkRead(t *testing.T) {
	stub := &stubNotificationService{}
	w := serveNotifications(stub, http.MethodPost, notificationsPath+"/n1/read", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "n1", stub.readID)

	stub = &stubNotificationService{err: repository.ErrNotFound}
	w = serveNotifications(stub, http.MethodPost, notificationsPath+"/gone/read", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNotificationHandler_Preferences(t *testing.T) {
	stub := &stubNotificationService{prefs: model.NotificationPreferences{Enabled: true, MatchStart: true}}
	w := serveNotifications(stub, http.MethodGet, notificationsPath+"/preferences", "")
	require.Equal(t, http.StatusOK, w.Code)
	var got model.NotificationPreferences
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.True(t, got.MatchStart)

	w = serveNotifications(stub, http.MethodPut, notificationsPath+"/preferences", `{"enabled":false}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.True(t, stub.prefs.Enabled, "partial update must not apply")

	w = serveNotifications(stub, http.MethodPut, notificationsPath+"/preferences",
		`{"enabled":true,"match_start":false,"match_result":true,"tournament":false}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, model.NotificationPreferences{Enabled: true, MatchResult: true}, stub.prefs)
}
