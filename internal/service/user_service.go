package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"procommunity/internal/auth"
	"procommunity/internal/domain"
	"procommunity/internal/repository"
)

var (
	// ErrInvalidCredentials indicates that provided login credentials are incorrect.
	// Unknown email and wrong password are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrEmptyName is returned when a profile edit would leave the display name blank.
	ErrEmptyName = errors.New("name must not be empty")
	// ErrCannotDeleteAdmin is returned when deletion targets an admin account.
	ErrCannotDeleteAdmin = errors.New("cannot delete admin users")
)

// UserService describes user lifecycle operations.
type UserService interface {
	Register(ctx context.Context, name, email, bio, password string) (*domain.User, error)
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	UpdateProfile(ctx context.Context, id int64, name, bio string) (*domain.User, error)
	PromoteToAdmin(ctx context.Context, id int64) error
	DeleteUser(ctx context.Context, id int64) error
	ListMembers(ctx context.Context) ([]domain.User, error)
	ListAdmins(ctx context.Context) ([]domain.User, error)
}

type userService struct {
	users repository.UserRepository
	posts repository.PostRepository
}

// NewUserService builds a UserService over the user store. The post store is
// needed as well: renames fan out to the denormalized author name on posts,
// and deleting a user cascades to their posts. Cross-store operations always
// touch the user store before the post store.
func NewUserService(users repository.UserRepository, posts repository.PostRepository) UserService {
	return &userService{
		users: users,
		posts: posts,
	}
}

func (s *userService) Register(ctx context.Context, name, email, bio, password string) (*domain.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	if name == "" {
		return nil, ErrEmptyName
	}
	if email == "" {
		return nil, errors.New("email is required")
	}
	if strings.TrimSpace(password) == "" {
		return nil, errors.New("password is required")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		Bio:          bio,
		PasswordHash: hash,
	}

	if _, err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return sanitizeUser(user), nil
}

func (s *userService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := auth.VerifyPassword(user.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	return sanitizeUser(user), nil
}

func (s *userService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return sanitizeUser(user), nil
}

// UpdateProfile overwrites name and bio, then syncs the new name onto every
// existing post by the user.
func (s *userService) UpdateProfile(ctx context.Context, id int64, name, bio string) (*domain.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	user, err := s.users.UpdateProfile(ctx, id, name, bio)
	if err != nil {
		return nil, err
	}

	if err := s.posts.SyncAuthorName(ctx, id, name); err != nil {
		return nil, fmt.Errorf("sync author name: %w", err)
	}

	return sanitizeUser(user), nil
}

func (s *userService) PromoteToAdmin(ctx context.Context, id int64) error {
	return s.users.Promote(ctx, id)
}

// DeleteUser removes a non-admin user and cascades to their posts. Admin
// accounts cannot be deleted.
func (s *userService) DeleteUser(ctx context.Context, id int64) error {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user.IsAdmin {
		return ErrCannotDeleteAdmin
	}

	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.posts.DeleteByUser(ctx, id); err != nil {
		return fmt.Errorf("cascade delete posts: %w", err)
	}
	return nil
}

// ListMembers returns all non-admin users, most recently registered first.
func (s *userService) ListMembers(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.ListNonAdmins(ctx)
	if err != nil {
		return nil, err
	}
	sortUsersNewestFirst(users)
	return sanitizeUsers(users), nil
}

func (s *userService) ListAdmins(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.ListAdmins(ctx)
	if err != nil {
		return nil, err
	}
	sortUsersNewestFirst(users)
	return sanitizeUsers(users), nil
}

func sortUsersNewestFirst(users []domain.User) {
	sort.Slice(users, func(i, j int) bool { return users[i].ID > users[j].ID })
}

func sanitizeUser(user *domain.User) *domain.User {
	if user == nil {
		return nil
	}
	copied := *user
	copied.PasswordHash = ""
	return &copied
}

func sanitizeUsers(users []domain.User) []domain.User {
	for i := range users {
		users[i].PasswordHash = ""
	}
	return users
}
