package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"procommunity/internal/auth"
	"procommunity/internal/repository"
)

const currentUserContextKey = "current-user"

// RequestUser is the authenticated identity attached to the request context.
type RequestUser struct {
	ID      int64
	Name    string
	IsAdmin bool
}

// CurrentUser returns the authenticated user for the request, or nil.
func CurrentUser(c *gin.Context) *RequestUser {
	value, exists := c.Get(currentUserContextKey)
	if !exists {
		return nil
	}
	user, ok := value.(*RequestUser)
	if !ok {
		return nil
	}
	return user
}

// sessionToken extracts the session token from the Authorization header or,
// for browser clients, the session cookie.
func sessionToken(c *gin.Context) string {
	header := strings.TrimSpace(c.GetHeader("Authorization"))
	if header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
	}
	if cookie, err := c.Cookie(auth.SessionCookie); err == nil {
		return strings.TrimSpace(cookie)
	}
	return ""
}

// resolveSession parses the token and re-checks the user against the store,
// so a deleted account cannot keep an otherwise valid session alive.
func (h *Handler) resolveSession(c *gin.Context, token string) (*RequestUser, error) {
	claims, err := h.sessions.Parse(token)
	if err != nil {
		return nil, err
	}

	user, err := h.users.GetByID(c.Request.Context(), claims.UserID)
	if err != nil {
		return nil, err
	}

	return &RequestUser{
		ID:      user.ID,
		Name:    user.Name,
		IsAdmin: user.IsAdmin,
	}, nil
}

// OptionalSession attaches the current user when a valid session is present
// and continues anonymously otherwise.
func (h *Handler) OptionalSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := sessionToken(c); token != "" {
			if user, err := h.resolveSession(c, token); err == nil {
				c.Set(currentUserContextKey, user)
			}
		}
		c.Next()
	}
}

// RequireSession rejects requests without a valid session.
func (h *Handler) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := sessionToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, APIError{
				Code:    ErrCodeUnauthorized,
				Message: "login required",
			})
			return
		}

		user, err := h.resolveSession(c, token)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, APIError{
					Code:    ErrCodeUserNotFound,
					Message: "user no longer exists",
				})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, APIError{
				Code:    ErrCodeSessionExpired,
				Message: "session is invalid or expired",
			})
			return
		}

		c.Set(currentUserContextKey, user)
		c.Next()
	}
}

// RequireAdmin guards admin routes. It must run after RequireSession.
func (h *Handler) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil || !user.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, APIError{
				Code:    ErrCodeForbidden,
				Message: "admin access required",
			})
			return
		}
		c.Next()
	}
}

// RequestLogger logs one structured line per request.
func RequestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.WithFields(logrus.Fields{
			"method":    c.Request.Method,
			"path":      c.Request.URL.Path,
			"status":    c.Writer.Status(),
			"duration":  time.Since(start).String(),
			"client_ip": c.ClientIP(),
		}).Info("http_request")
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
