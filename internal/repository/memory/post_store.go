package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"procommunity/internal/domain"
	"procommunity/internal/repository"
)

// PostStore is an in-memory PostRepository with monotonic ids starting at 1.
type PostStore struct {
	mu     sync.RWMutex
	posts  map[int64]*domain.Post
	nextID int64

	// now is swappable in tests to control timestamps.
	now func() time.Time
}

func NewPostStore() *PostStore {
	return &PostStore{
		posts:  make(map[int64]*domain.Post),
		nextID: 1,
		now:    time.Now,
	}
}

var _ repository.PostRepository = (*PostStore)(nil)

// Create stores a new post, stamps its creation time and returns its id.
// The caller supplies AuthorName; the store does not resolve user records.
func (s *PostStore) Create(ctx context.Context, post *domain.Post) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++

	stored := *post
	stored.ID = id
	stored.CreatedAt = s.now()
	s.posts[id] = &stored

	post.ID = id
	post.CreatedAt = stored.CreatedAt
	return id, nil
}

func (s *PostStore) Get(ctx context.Context, id int64) (*domain.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	post, ok := s.posts[id]
	if !ok {
		return nil, repository.ErrPostNotFound
	}
	copied := *post
	return &copied, nil
}

func (s *PostStore) List(ctx context.Context) ([]domain.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	posts := make([]domain.Post, 0, len(s.posts))
	for _, post := range s.posts {
		posts = append(posts, *post)
	}
	sortByID(posts)
	return posts, nil
}

func (s *PostStore) ListByUser(ctx context.Context, userID int64) ([]domain.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var posts []domain.Post
	for _, post := range s.posts {
		if post.UserID == userID {
			posts = append(posts, *post)
		}
	}
	sortByID(posts)
	return posts, nil
}

// SyncAuthorName overwrites the denormalized author name on every post by
// the given user, so already-created posts never show a stale name.
func (s *PostStore) SyncAuthorName(ctx context.Context, userID int64, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, post := range s.posts {
		if post.UserID == userID {
			post.AuthorName = name
		}
	}
	return nil
}

// DeleteByUser removes every post by the given user. Removing zero posts is
// not an error; cascade deletion of a user without posts is valid.
func (s *PostStore) DeleteByUser(ctx context.Context, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, post := range s.posts {
		if post.UserID == userID {
			delete(s.posts, id)
		}
	}
	return nil
}

func (s *PostStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.posts[id]; !ok {
		return repository.ErrPostNotFound
	}
	delete(s.posts, id)
	return nil
}

func (s *PostStore) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.posts), nil
}

func sortByID(posts []domain.Post) {
	sort.Slice(posts, func(i, j int) bool { return posts[i].ID < posts[j].ID })
}
