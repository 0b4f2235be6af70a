package middleware

import (
	"net/http"
	"path"
	"strings"

	"schoolbackend/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Context keys under which the gate stores the authenticated identity.
const (
	ContextKeyUsername = "username"
	ContextKeyRole     = "role"
	ContextKeyClaims   = "claims"
)

// GateResponse is the JSON body returned on rejection.
type GateResponse struct {
	ResponseCode    int    `json:"responseCode"`
	ResponseMessage string `json:"responseMessage"`
}

// exemptPaths are matched exactly against the normalized request path.
var exemptPaths = map[string]struct{}{
	"/api/Authentication/Login":    {},
	"/api/Authentication/Register": {},
	"/api/schoolNotifications":     {},
	"/favicon.ico":                 {},
	"/ping":                        {},
}

// exemptPrefixes cover route subtrees (documentation UI, static assets).
// An enumerated table avoids the accidental over-matching a substring check
// would allow, e.g. a protected route containing "Login".
var exemptPrefixes = []string{
	"/swagger/",
	"/static/",
}

func isExempt(requestPath string) bool {
	normalized := path.Clean(requestPath)
	if _, ok := exemptPaths[normalized]; ok {
		return true
	}
	for _, prefix := range exemptPrefixes {
		if strings.HasPrefix(normalized+"/", prefix) {
			return true
		}
	}
	return false
}

// RequestGate returns the authentication middleware that fronts every route.
// Exempt paths pass through untouched; everything else must present a bearer
// token the validator accepts, which then has its identity attached to the
// request context. Rejection always aborts the pipeline with a 401.
func RequestGate(tokens *service.TokenService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if isExempt(c.Request.URL.Path) {
			c.Next()
			return
		}

		authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
		if authHeader == "" {
			logger.Warn("No Authorization token supplied", zap.String("path", c.Request.URL.Path))
			c.AbortWithStatusJSON(http.StatusUnauthorized, GateResponse{
				ResponseCode:    http.StatusUnauthorized,
				ResponseMessage: "No Authorization Token Supplied!",
			})
			return
		}

		// Scheme-prefixed header; the token is the last space-delimited field.
		parts := strings.Fields(authHeader)
		tokenString := parts[len(parts)-1]

		claims, err := tokens.Validate(tokenString)
		if err != nil {
			logger.Warn("Invalid Authorization token", zap.String("path", c.Request.URL.Path), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, GateResponse{
				ResponseCode:    http.StatusUnauthorized,
				ResponseMessage: "Invalid Authorization Token!",
			})
			return
		}

		c.Set(ContextKeyUsername, claims.Subject)
		c.Set(ContextKeyRole, claims.Role)
		c.Set(ContextKeyClaims, claims)

		c.Next()
	}
}
