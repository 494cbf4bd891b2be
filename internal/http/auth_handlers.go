package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"procommunity/internal/auth"
	"procommunity/internal/domain"
	"procommunity/internal/repository"
	"procommunity/internal/service"
)

type registerRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Bio             string `json:"bio"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SessionResponse is returned by register and login. The same token is also
// set as an HttpOnly cookie for browser clients.
type SessionResponse struct {
	Token     string       `json:"token"`
	ExpiresAt string       `json:"expires_at"`
	User      UserResponse `json:"user"`
}

// register creates an account and logs the new user straight in.
func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c)
		return
	}

	if req.Name == "" || req.Email == "" || req.Password == "" || req.ConfirmPassword == "" {
		BadRequest(c, ErrCodeInvalidRequest, "all fields are required")
		return
	}
	if req.Password != req.ConfirmPassword {
		BadRequest(c, ErrCodePasswordMismatch, "passwords do not match")
		return
	}

	user, err := h.users.Register(c.Request.Context(), req.Name, req.Email, req.Bio, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateEmail):
			BadRequest(c, ErrCodeEmailExists, "email already registered, please use a different email")
		case errors.Is(err, service.ErrEmptyName):
			BadRequest(c, ErrCodeEmptyName, "name must not be empty")
		default:
			h.logger.WithError(err).Error("failed to register user")
			InternalError(c, "failed to register user")
		}
		return
	}

	resp, err := h.issueSession(c, user)
	if err != nil {
		h.logger.WithError(err).Error("failed to create session")
		InternalError(c, "failed to create session")
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// login verifies credentials. Unknown email and wrong password produce the
// same response, so accounts cannot be enumerated.
func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c)
		return
	}

	user, err := h.users.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			ErrorResponse(c, http.StatusUnauthorized, ErrCodeInvalidCredentials, "invalid email or password")
			return
		}
		h.logger.WithError(err).Error("failed to authenticate user")
		InternalError(c, "failed to log in")
		return
	}

	resp, err := h.issueSession(c, user)
	if err != nil {
		h.logger.WithError(err).Error("failed to create session")
		InternalError(c, "failed to create session")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// logout clears the session cookie. The bearer token itself simply expires.
func (h *Handler) logout(c *gin.Context) {
	c.SetCookie(auth.SessionCookie, "", -1, "/", "", h.secureCookies, true)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

func (h *Handler) me(c *gin.Context) {
	current := CurrentUser(c)
	user, err := h.users.GetByID(c.Request.Context(), current.ID)
	if err != nil {
		NotFound(c, ErrCodeUserNotFound, "user not found")
		return
	}
	c.JSON(http.StatusOK, userToResponse(user))
}

func (h *Handler) issueSession(c *gin.Context, user *domain.User) (SessionResponse, error) {
	token, expiresAt, err := h.sessions.Issue(user)
	if err != nil {
		return SessionResponse{}, err
	}

	maxAge := int(h.sessions.TTL() / time.Second)
	c.SetCookie(auth.SessionCookie, token, maxAge, "/", "", h.secureCookies, true)

	return SessionResponse{
		Token:     token,
		ExpiresAt: expiresAt.Format(time.RFC3339),
		User:      userToResponse(user),
	}, nil
}
