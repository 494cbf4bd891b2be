package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"procommunity/internal/repository"
	"procommunity/internal/service"
)

type dashboardResponse struct {
	TotalUsers  int            `json:"total_users"`
	TotalPosts  int            `json:"total_posts"`
	TotalAdmins int            `json:"total_admins"`
	RecentUsers []UserResponse `json:"recent_users"`
	RecentPosts []PostResponse `json:"recent_posts"`
}

// adminDashboard serves the platform totals and recent activity.
func (h *Handler) adminDashboard(c *gin.Context) {
	stats, err := h.stats.Dashboard(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("failed to build dashboard stats")
		InternalError(c, "failed to load dashboard")
		return
	}

	c.JSON(http.StatusOK, dashboardResponse{
		TotalUsers:  stats.TotalUsers,
		TotalPosts:  stats.TotalPosts,
		TotalAdmins: stats.TotalAdmins,
		RecentUsers: usersToResponse(stats.RecentUsers),
		RecentPosts: postsToResponse(stats.RecentPosts),
	})
}

// adminUsers lists all non-admin users, most recently registered first.
func (h *Handler) adminUsers(c *gin.Context) {
	users, err := h.users.ListMembers(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("failed to list users")
		InternalError(c, "failed to list users")
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": usersToResponse(users)})
}

// adminPosts lists every post, newest first.
func (h *Handler) adminPosts(c *gin.Context) {
	posts, err := h.posts.Feed(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("failed to list posts")
		InternalError(c, "failed to list posts")
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": postsToResponse(posts)})
}

func (h *Handler) adminDeletePost(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		BadRequest(c, ErrCodeInvalidRequest, "invalid post id")
		return
	}

	if err := h.posts.DeletePost(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			NotFound(c, ErrCodePostNotFound, "post not found")
			return
		}
		h.logger.WithError(err).Error("failed to delete post")
		InternalError(c, "failed to delete post")
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

// adminDeleteUser removes a non-admin user and every post they wrote.
func (h *Handler) adminDeleteUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		BadRequest(c, ErrCodeInvalidRequest, "invalid user id")
		return
	}

	if err := h.users.DeleteUser(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, service.ErrCannotDeleteAdmin):
			Forbidden(c, ErrCodeCannotDeleteAdmin, "cannot delete admin users")
		case errors.Is(err, repository.ErrUserNotFound):
			NotFound(c, ErrCodeUserNotFound, "user not found")
		default:
			h.logger.WithError(err).Error("failed to delete user")
			InternalError(c, "failed to delete user")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

func (h *Handler) adminPromoteUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		BadRequest(c, ErrCodeInvalidRequest, "invalid user id")
		return
	}

	if err := h.users.PromoteToAdmin(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			NotFound(c, ErrCodeUserNotFound, "user not found")
			return
		}
		h.logger.WithError(err).Error("failed to promote user")
		InternalError(c, "failed to promote user")
		return
	}

	user, err := h.users.GetByID(c.Request.Context(), id)
	if err != nil {
		h.logger.WithError(err).Error("failed to load promoted user")
		InternalError(c, "failed to promote user")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": user.Name + " is now an administrator", "user": userToResponse(user)})
}

// adminSettings reports the runtime configuration snapshot.
func (h *Handler) adminSettings(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"session_ttl":             h.sessions.TTL().String(),
		"session_secret_insecure": h.settings.SessionSecretInsecure,
		"seed_demo":               h.settings.SeedDemo,
	})
}
