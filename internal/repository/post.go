package repository

import (
	"context"
	"errors"

	"procommunity/internal/domain"
)

// ErrPostNotFound is returned when no post exists for the given id.
var ErrPostNotFound = errors.New("post not found")

// PostRepository exposes storage operations for Post records.
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) (int64, error)
	Get(ctx context.Context, id int64) (*domain.Post, error)
	List(ctx context.Context) ([]domain.Post, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Post, error)
	SyncAuthorName(ctx context.Context, userID int64, name string) error
	DeleteByUser(ctx context.Context, userID int64) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
}
