package handler

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/bharaths07/sportsv1.1-sub000/internal/model"
	"github.com/bharaths07/sportsv1.1-sub000/internal/service"
)

// Identity headers set by the upstream gateway.
const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"
	HeaderUserName = "X-User-Name"
)

// Identity stamps the caller from the gateway headers on the request context.
// Unknown roles are treated as members.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(HeaderUserID))
		if id != "" {
			role := model.RoleMember
			if strings.EqualFold(c.GetHeader(HeaderUserRole), string(model.RoleAdmin)) {
				role = model.RoleAdmin
			}
			u := model.User{ID: id, Name: strings.TrimSpace(c.GetHeader(HeaderUserName)), Role: role}
			c.Request = c.Request.WithContext(service.WithUser(c.Request.Context(), u))
		}
		c.Next()
	}
}

// RequestLogger logs one line per request.
func RequestLogger(logger zerolog.Logger) gin.HandlerFunc {
	l := logger.With().Str("module", "handler").Logger()
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		ev := l.Debug()
		switch {
		case status >= 500:
			ev = l.Error()
		case status >= 400:
			ev = l.Info()
		}
		ev.Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("http request")
	}
}

// CORS allows browser clients from origins; an empty list allows any origin.
func CORS(origins []string) gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	cfg.AddAllowHeaders(HeaderUserID, HeaderUserRole, HeaderUserName)
	cfg.MaxAge = 12 * time.Hour
	return cors.New(cfg)
}
