package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"procommunity/internal/auth"
	"procommunity/internal/domain"
	"procommunity/internal/service"
)

// Handler wires HTTP routes to domain services.
type Handler struct {
	users    service.UserService
	posts    service.PostService
	stats    service.StatsService
	sessions *auth.SessionManager
	logger   *logrus.Logger
	settings AdminSettings

	// secureCookies controls the Secure attribute on session cookies; off in
	// plain-HTTP development.
	secureCookies bool
}

// AdminSettings is the runtime configuration snapshot shown on the admin
// settings page.
type AdminSettings struct {
	SessionSecretInsecure bool
	SeedDemo              bool
}

func NewHandler(users service.UserService, posts service.PostService, stats service.StatsService, sessions *auth.SessionManager, logger *logrus.Logger, settings AdminSettings) *Handler {
	if logger == nil {
		logger = logrus.New()
	}
	return &Handler{
		users:    users,
		posts:    posts,
		stats:    stats,
		sessions: sessions,
		logger:   logger,
		settings: settings,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(corsMiddleware())

	api := router.Group("/api")
	{
		api.GET("/health", func(ctx *gin.Context) {
			ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		authGroup := api.Group("/auth")
		authGroup.POST("/register", h.register)
		authGroup.POST("/login", h.login)
		authGroup.POST("/logout", h.logout)
		authGroup.GET("/me", h.RequireSession(), h.me)

		api.GET("/posts", h.OptionalSession(), h.feed)
		api.POST("/posts", h.RequireSession(), h.createPost)

		api.GET("/users/:id", h.OptionalSession(), h.profile)
		api.PUT("/profile", h.RequireSession(), h.updateProfile)

		admin := api.Group("/admin", h.RequireSession(), h.RequireAdmin())
		admin.GET("/dashboard", h.adminDashboard)
		admin.GET("/users", h.adminUsers)
		admin.GET("/posts", h.adminPosts)
		admin.DELETE("/posts/:id", h.adminDeletePost)
		admin.DELETE("/users/:id", h.adminDeleteUser)
		admin.POST("/users/:id/promote", h.adminPromoteUser)
		admin.GET("/settings", h.adminSettings)
	}
}

// UserResponse is the public view of a user; the password hash never leaves
// the service layer.
type UserResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Bio     string `json:"bio"`
	IsAdmin bool   `json:"is_admin"`
}

type PostResponse struct {
	ID         int64  `json:"id"`
	UserID     int64  `json:"user_id"`
	Content    string `json:"content"`
	AuthorName string `json:"author_name"`
	CreatedAt  string `json:"created_at"`
}

func userToResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:      user.ID,
		Name:    user.Name,
		Email:   user.Email,
		Bio:     user.Bio,
		IsAdmin: user.IsAdmin,
	}
}

func usersToResponse(users []domain.User) []UserResponse {
	resp := make([]UserResponse, len(users))
	for i := range users {
		resp[i] = userToResponse(&users[i])
	}
	return resp
}

func postToResponse(post *domain.Post) PostResponse {
	return PostResponse{
		ID:         post.ID,
		UserID:     post.UserID,
		Content:    post.Content,
		AuthorName: post.AuthorName,
		CreatedAt:  post.CreatedAt.Format(time.RFC3339),
	}
}

func postsToResponse(posts []domain.Post) []PostResponse {
	resp := make([]PostResponse, len(posts))
	for i := range posts {
		resp[i] = postToResponse(&posts[i])
	}
	return resp
}
