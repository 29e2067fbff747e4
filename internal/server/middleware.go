package server

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shelftrack/shelftrack/internal/identity"
	"go.uber.org/zap"
)

const contextIdentityKey = "identity"

// RequestLogger emits one structured log line per request.
func RequestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
		}
		if ident, ok := identity.FromContext(c.Request.Context()); ok {
			fields = append(fields, zap.Int64("user_id", ident.UserID))
		}
		if last := c.Errors.Last(); last != nil {
			fields = append(fields, zap.Error(last.Err))
		}
		log.Info("http_request", fields...)
	}
}

// AuthRequired resolves the caller identity from the Bearer token issued by
// the external authentication service. Token issuance is not handled here.
func (s *Server) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		raw, found := strings.CutPrefix(header, "Bearer ")
		if !found || strings.TrimSpace(raw) == "" {
			AbortWithError(c, ErrUnauthorized)
			return
		}

		// json.Number keeps snowflake-sized ids exact; float64 would not.
		token, err := jwt.Parse(strings.TrimSpace(raw), func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(s.cfg.AuthJWTSecret), nil
		}, jwt.WithJSONNumber())
		if err != nil || !token.Valid {
			AbortWithError(c, ErrUnauthorized)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			AbortWithError(c, ErrUnauthorized)
			return
		}

		ident := identityFromClaims(claims)
		if ident.IsZero() {
			AbortWithError(c, ErrUnauthorized)
			return
		}

		c.Set(contextIdentityKey, ident)
		c.Request = c.Request.WithContext(identity.WithIdentity(c.Request.Context(), ident))
		c.Next()
	}
}

// RequireRole gates a route to the given roles.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, ok := identityFromGin(c)
		if !ok {
			AbortWithError(c, ErrUnauthorized)
			return
		}
		for _, role := range roles {
			if ident.Role == role {
				c.Next()
				return
			}
		}
		AbortWithError(c, ErrForbidden)
	}
}

func identityFromGin(c *gin.Context) (identity.Identity, bool) {
	value, ok := c.Get(contextIdentityKey)
	if !ok {
		return identity.Identity{}, false
	}
	ident, ok := value.(identity.Identity)
	return ident, ok
}

func identityFromClaims(claims jwt.MapClaims) identity.Identity {
	var ident identity.Identity

	switch v := claims["user_id"].(type) {
	case json.Number:
		parsed, err := v.Int64()
		if err == nil {
			ident.UserID = parsed
		}
	case float64:
		ident.UserID = int64(v)
	case string:
		// Numeric ids may arrive as strings from some token issuers.
		parsed, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err == nil {
			ident.UserID = parsed
		}
	}

	if role, ok := claims["role"].(string); ok {
		ident.Role = role
	}

	return ident
}
