package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/bharaths07/sportsv1.1-sub000/internal/handler"
	"github.com/bharaths07/sportsv1.1-sub000/internal/model"
	"github.com/bharaths07/sportsv1.1-sub000/internal/service"
)

func TestIdentity(t *testing.T) {
	cases := []struct {
		name    string
		headers map[string]string
		want    model.User
		wantOK  bool
	}{
		{"anonymous", nil, model.User{}, false},
		{"member", map[string]string{handler.HeaderUserID: "u1", handler.HeaderUserName: "Ravi"},
			model.User{ID: "u1", Name: "Ravi", Role: model.RoleMember}, true},
		{"admin any case", map[string]string{handler.HeaderUserID: "u2", handler.HeaderUserRole: "Admin"},
			model.User{ID: "u2", Role: model.RoleAdmin}, true},
		{"unknown role is member", map[string]string{handler.HeaderUserID: "u3", handler.HeaderUserRole: "root"},
			model.User{ID: "u3", Role: model.RoleMember}, true},
		{"blank id", map[string]string{handler.HeaderUserID: "  ", handler.HeaderUserRole: "admin"}, model.User{}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			r := gin.New()
			var got model.User
			var ok bool
			r.Use(handler.Identity())
			r.GET("/who", func(c *gin.Context) {
				got, ok = service.ContextIdentity{}.CurrentUser(c.Request.Context())
				c.Status(http.StatusNoContent)
			})

			req := httptest.NewRequest(http.MethodGet, "/who", nil)
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}
			r.ServeHTTP(httptest.NewRecorder(), req)
			assert.Equal(t, tc.wantOK, ok)
			if tc.wantOK {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestCORS(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(handler.CORS([]string{"https://scores.example.com"}))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	preflight := func(origin string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodOptions, "/x", nil)
		req.Header.Set("Origin", origin)
		req.Header.Set("Access-Control-Request-Method", http.MethodGet)
		req.Header.Set("Access-Control-Request-Headers", handler.HeaderUserID)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	w := preflight("https://scores.example.com")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://scores.example.com", w.Header().Get("Access-Control-Allow-Origin"))

	w = preflight("https://evil.example.com")
	assert.Equal(t, http.StatusForbidden, w.Code)
}
