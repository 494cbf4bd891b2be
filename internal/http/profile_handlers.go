package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"procommunity/internal/repository"
	"procommunity/internal/service"
)

type updateProfileRequest struct {
	Name string `json:"name"`
	Bio  string `json:"bio"`
}

type profileResponse struct {
	User         UserResponse   `json:"user"`
	Posts        []PostResponse `json:"posts"`
	IsOwnProfile bool           `json:"is_own_profile"`
}

// profile shows a user together with their posts, newest first.
func (h *Handler) profile(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		BadRequest(c, ErrCodeInvalidRequest, "invalid user id")
		return
	}

	user, err := h.users.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			NotFound(c, ErrCodeUserNotFound, "user not found")
			return
		}
		h.logger.WithError(err).Error("failed to load user")
		InternalError(c, "failed to load profile")
		return
	}

	posts, err := h.posts.ListByUser(c.Request.Context(), id)
	if err != nil {
		h.logger.WithError(err).Error("failed to list user posts")
		InternalError(c, "failed to load profile")
		return
	}

	current := CurrentUser(c)
	c.JSON(http.StatusOK, profileResponse{
		User:         userToResponse(user),
		Posts:        postsToResponse(posts),
		IsOwnProfile: current != nil && current.ID == id,
	})
}

// updateProfile edits the caller's own name and bio. Existing posts pick up
// the new name through the author-name sync.
func (h *Handler) updateProfile(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c)
		return
	}

	current := CurrentUser(c)
	user, err := h.users.UpdateProfile(c.Request.Context(), current.ID, req.Name, req.Bio)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyName):
			BadRequest(c, ErrCodeEmptyName, "name cannot be empty")
		case errors.Is(err, repository.ErrUserNotFound):
			NotFound(c, ErrCodeUserNotFound, "user not found")
		default:
			h.logger.WithError(err).Error("failed to update profile")
			InternalError(c, "failed to update profile")
		}
		return
	}

	c.JSON(http.StatusOK, userToResponse(user))
}
