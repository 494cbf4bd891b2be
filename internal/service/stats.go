package service

import (
	"context"

	"procommunity/internal/domain"
	"procommunity/internal/repository"
)

const recentLimit = 5

// DashboardStats aggregates the platform numbers shown on the admin dashboard.
type DashboardStats struct {
	TotalUsers  int
	TotalPosts  int
	TotalAdmins int
	RecentUsers []domain.User
	RecentPosts []domain.Post
}

// StatsService produces admin dashboard aggregates.
type StatsService interface {
	Dashboard(ctx context.Context) (*DashboardStats, error)
}

type statsService struct {
	users repository.UserRepository
	posts repository.PostRepository
}

func NewStatsService(users repository.UserRepository, posts repository.PostRepository) StatsService {
	return &statsService{
		users: users,
		posts: posts,
	}
}

// Dashboard counts members, admins and posts, and picks the five most recent
// members (by id) and posts (by time).
func (s *statsService) Dashboard(ctx context.Context) (*DashboardStats, error) {
	members, err := s.users.ListNonAdmins(ctx)
	if err != nil {
		return nil, err
	}
	admins, err := s.users.ListAdmins(ctx)
	if err != nil {
		return nil, err
	}
	posts, err := s.posts.List(ctx)
	if err != nil {
		return nil, err
	}

	sortUsersNewestFirst(members)
	sortPostsNewestFirst(posts)

	stats := &DashboardStats{
		TotalUsers:  len(members),
		TotalPosts:  len(posts),
		TotalAdmins: len(admins),
		RecentUsers: sanitizeUsers(limitUsers(members)),
		RecentPosts: limitPosts(posts),
	}
	return stats, nil
}

func limitUsers(users []domain.User) []domain.User {
	if len(users) > recentLimit {
		return users[:recentLimit]
	}
	return users
}

func limitPosts(posts []domain.Post) []domain.Post {
	if len(posts) > recentLimit {
		return posts[:recentLimit]
	}
	return posts
}
