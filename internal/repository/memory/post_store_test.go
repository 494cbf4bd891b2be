package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"procommunity/internal/domain"
	"procommunity/internal/repository"
)

func TestPostStoreAssignsIDsAndTimestamps(t *testing.T) {
	store := NewPostStore()
	fixed := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return fixed }
	ctx := context.Background()

	post := &domain.Post{UserID: 1, Content: "hello", AuthorName: "A"}
	id, err := store.Create(ctx, post)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 1 || post.ID != 1 {
		t.Fatalf("expected first id 1, got %d", id)
	}
	if !post.CreatedAt.Equal(fixed) {
		t.Fatalf("expected creation timestamp %v, got %v", fixed, post.CreatedAt)
	}

	second := &domain.Post{UserID: 1, Content: "again", AuthorName: "A"}
	if id, _ := store.Create(ctx, second); id != 2 {
		t.Fatalf("expected id 2, got %d", id)
	}
}

func TestPostStoreListByUser(t *testing.T) {
	store := NewPostStore()
	ctx := context.Background()

	store.Create(ctx, &domain.Post{UserID: 1, Content: "one", AuthorName: "A"})
	store.Create(ctx, &domain.Post{UserID: 2, Content: "two", AuthorName: "B"})
	store.Create(ctx, &domain.Post{UserID: 1, Content: "three", AuthorName: "A"})

	posts, err := store.ListByUser(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("expected 2 posts for user 1, got %d", len(posts))
	}
	for _, p := range posts {
		if p.UserID != 1 {
			t.Fatalf("post %d belongs to user %d", p.ID, p.UserID)
		}
	}
}

func TestPostStoreSyncAuthorNameTouchesOnlyMatchingPosts(t *testing.T) {
	store := NewPostStore()
	ctx := context.Background()

	store.Create(ctx, &domain.Post{UserID: 1, Content: "mine", AuthorName: "A"})
	store.Create(ctx, &domain.Post{UserID: 2, Content: "theirs", AuthorName: "B"})

	if err := store.SyncAuthorName(ctx, 1, "Alex"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	posts, _ := store.List(ctx)
	for _, p := range posts {
		switch p.UserID {
		case 1:
			if p.AuthorName != "Alex" {
				t.Fatalf("expected synced name, got %q", p.AuthorName)
			}
		case 2:
			if p.AuthorName != "B" {
				t.Fatalf("other user's post was touched: %q", p.AuthorName)
			}
		}
	}
}

func TestPostStoreDeleteByUser(t *testing.T) {
	store := NewPostStore()
	ctx := context.Background()

	store.Create(ctx, &domain.Post{UserID: 1, Content: "gone", AuthorName: "A"})
	store.Create(ctx, &domain.Post{UserID: 2, Content: "kept", AuthorName: "B"})
	store.Create(ctx, &domain.Post{UserID: 1, Content: "gone too", AuthorName: "A"})

	if err := store.DeleteByUser(ctx, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	posts, _ := store.List(ctx)
	if len(posts) != 1 || posts[0].UserID != 2 {
		t.Fatalf("expected only user 2's post to survive, got %+v", posts)
	}

	// cascading over a user without posts is a no-op
	if err := store.DeleteByUser(ctx, 99); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPostStoreDelete(t *testing.T) {
	store := NewPostStore()
	ctx := context.Background()

	id, _ := store.Create(ctx, &domain.Post{UserID: 1, Content: "x", AuthorName: "A"})
	if err := store.Delete(ctx, id); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := store.Get(ctx, id); !errors.Is(err, repository.ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
	if err := store.Delete(ctx, id); !errors.Is(err, repository.ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound on missing id, got %v", err)
	}
}
