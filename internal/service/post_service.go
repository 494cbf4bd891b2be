package service

import (
	"context"
	"errors"
	"sort"
	"strings"

	"procommunity/internal/domain"
	"procommunity/internal/repository"
)

// ErrEmptyContent is returned when a post body is empty or all whitespace.
var ErrEmptyContent = errors.New("post content must not be empty")

// PostService describes post lifecycle operations.
type PostService interface {
	CreatePost(ctx context.Context, userID int64, content, authorName string) (*domain.Post, error)
	Feed(ctx context.Context) ([]domain.Post, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Post, error)
	DeletePost(ctx context.Context, id int64) error
}

type postService struct {
	posts repository.PostRepository
}

func NewPostService(posts repository.PostRepository) PostService {
	return &postService{posts: posts}
}

// CreatePost validates and stores a new post. The author name is passed by
// the caller, which holds the current session; the content is stored as
// written, only the emptiness check trims.
func (s *postService) CreatePost(ctx context.Context, userID int64, content, authorName string) (*domain.Post, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}

	post := &domain.Post{
		UserID:     userID,
		Content:    content,
		AuthorName: authorName,
	}

	if _, err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// Feed returns every post, newest first.
func (s *postService) Feed(ctx context.Context) ([]domain.Post, error) {
	posts, err := s.posts.List(ctx)
	if err != nil {
		return nil, err
	}
	sortPostsNewestFirst(posts)
	return posts, nil
}

func (s *postService) ListByUser(ctx context.Context, userID int64) ([]domain.Post, error) {
	posts, err := s.posts.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	sortPostsNewestFirst(posts)
	return posts, nil
}

func (s *postService) DeletePost(ctx context.Context, id int64) error {
	return s.posts.Delete(ctx, id)
}

// sortPostsNewestFirst orders by creation time descending; equal timestamps
// fall back to id descending so the order stays deterministic.
func sortPostsNewestFirst(posts []domain.Post) {
	sort.Slice(posts, func(i, j int) bool {
		if posts[i].CreatedAt.Equal(posts[j].CreatedAt) {
			return posts[i].ID > posts[j].ID
		}
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
}
