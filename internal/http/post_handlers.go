package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"procommunity/internal/service"
)

type createPostRequest struct {
	Content string `json:"content"`
}

type feedResponse struct {
	Posts         []PostResponse `json:"posts"`
	CurrentUserID *int64         `json:"current_user_id,omitempty"`
}

// feed returns every post, newest first. Logged-in viewers also get their
// own id back so clients can mark their posts.
func (h *Handler) feed(c *gin.Context) {
	posts, err := h.posts.Feed(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("failed to list posts")
		InternalError(c, "failed to load feed")
		return
	}

	resp := feedResponse{Posts: postsToResponse(posts)}
	if user := CurrentUser(c); user != nil {
		resp.CurrentUserID = &user.ID
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) createPost(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c)
		return
	}

	user := CurrentUser(c)
	post, err := h.posts.CreatePost(c.Request.Context(), user.ID, req.Content, user.Name)
	if err != nil {
		if errors.Is(err, service.ErrEmptyContent) {
			BadRequest(c, ErrCodeEmptyContent, "post content cannot be empty")
			return
		}
		h.logger.WithError(err).Error("failed to create post")
		InternalError(c, "failed to create post")
		return
	}

	c.JSON(http.StatusCreated, postToResponse(post))
}
