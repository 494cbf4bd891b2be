package memory

import (
	"context"
	"sort"
	"sync"

	"procommunity/internal/domain"
	"procommunity/internal/repository"
)

// UserStore is an in-memory UserRepository. Ids are assigned monotonically
// starting at 1 and never reused. All state is lost when the process exits.
type UserStore struct {
	mu     sync.RWMutex
	users  map[int64]*domain.User
	nextID int64
}

func NewUserStore() *UserStore {
	return &UserStore{
		users:  make(map[int64]*domain.User),
		nextID: 1,
	}
}

var _ repository.UserRepository = (*UserStore)(nil)

// Create stores a new user and returns its id. The email uniqueness check is
// a case-sensitive exact match; a duplicate leaves the store untouched and
// does not consume an id.
func (s *UserStore) Create(ctx context.Context, user *domain.User) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Email == user.Email {
			return 0, repository.ErrDuplicateEmail
		}
	}

	id := s.nextID
	s.nextID++

	stored := *user
	stored.ID = id
	s.users[id] = &stored
	user.ID = id
	return id, nil
}

func (s *UserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

// GetByEmail scans for the first user with an exactly matching email.
// Creation enforces uniqueness, so at most one can match.
func (s *UserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

// UpdateProfile overwrites name and bio in place. Email is immutable here,
// so no uniqueness re-check is needed.
func (s *UserStore) UpdateProfile(ctx context.Context, id int64, name, bio string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	user.Name = name
	user.Bio = bio
	copied := *user
	return &copied, nil
}

// Promote sets the admin flag. Promoting an admin again is a no-op.
func (s *UserStore) Promote(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return repository.ErrUserNotFound
	}
	user.IsAdmin = true
	return nil
}

func (s *UserStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return repository.ErrUserNotFound
	}
	delete(s.users, id)
	return nil
}

func (s *UserStore) ListAdmins(ctx context.Context) ([]domain.User, error) {
	return s.list(true), nil
}

func (s *UserStore) ListNonAdmins(ctx context.Context) ([]domain.User, error) {
	return s.list(false), nil
}

func (s *UserStore) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users), nil
}

// list returns copies sorted by id ascending so callers see a deterministic
// order regardless of map iteration.
func (s *UserStore) list(admins bool) []domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]domain.User, 0, len(s.users))
	for _, user := range s.users {
		if user.IsAdmin == admins {
			users = append(users, *user)
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users
}
