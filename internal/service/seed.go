package service

import (
	"context"
	"fmt"

	"procommunity/internal/config"
	"procommunity/internal/domain"
)

type seedUser struct {
	Name     string
	Email    string
	Bio      string
	Password string
}

type seedPost struct {
	UserIndex int // index into the seeded users, admin first
	Content   string
}

var demoUsers = []seedUser{
	{
		Name:     "Arjun Sharma",
		Email:    "arjun.sharma@email.com",
		Bio:      "Software Engineer passionate about building scalable web applications. Love coding in Python and JavaScript.",
		Password: "password123",
	},
	{
		Name:     "Priya Patel",
		Email:    "priya.patel@email.com",
		Bio:      "Full Stack Developer with 3+ years experience. Interested in AI/ML and cloud technologies.",
		Password: "password123",
	},
	{
		Name:     "Rahul Gupta",
		Email:    "rahul.gupta@email.com",
		Bio:      "Data Scientist working on machine learning projects. Python enthusiast and tech blogger.",
		Password: "password123",
	},
	{
		Name:     "Sneha Reddy",
		Email:    "sneha.reddy@email.com",
		Bio:      "UI/UX Designer and Frontend Developer. Creating beautiful and intuitive user experiences.",
		Password: "password123",
	},
}

var demoPosts = []seedPost{
	{UserIndex: 0, Content: "Excited to share that I just completed a new web application using Go and JavaScript! The journey of learning new technologies never stops. 🚀"},
	{UserIndex: 1, Content: "Just finished reading an amazing article about the future of AI in software development. The possibilities are endless!"},
	{UserIndex: 2, Content: "Working on a machine learning model that can predict user behavior. Data science is truly fascinating! 📊"},
	{UserIndex: 3, Content: "Designed a new user interface for a mobile app today. Clean, minimal, and user-friendly. Design matters! ✨"},
	{UserIndex: 0, Content: "Attending a tech conference next week. Looking forward to networking with fellow developers and learning about new technologies."},
}

// Seed populates fresh stores with the platform admin and, when enabled, the
// demo members and posts. It expects to run once per process against empty
// stores; passwords are hashed at seed time.
func Seed(ctx context.Context, users UserService, posts PostService, cfg config.Config) error {
	admin, err := users.Register(ctx, "Admin User", cfg.Admin.Email,
		"Platform Administrator - Managing the ProCommunity platform", cfg.Admin.Password)
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	if err := users.PromoteToAdmin(ctx, admin.ID); err != nil {
		return fmt.Errorf("promote seed admin: %w", err)
	}
	admin.IsAdmin = true

	if !cfg.Seed.Demo {
		return nil
	}

	seeded := []*domain.User{admin}
	for _, su := range demoUsers {
		user, err := users.Register(ctx, su.Name, su.Email, su.Bio, su.Password)
		if err != nil {
			return fmt.Errorf("seed user %s: %w", su.Email, err)
		}
		seeded = append(seeded, user)
	}

	for _, sp := range demoPosts {
		author := seeded[sp.UserIndex]
		if _, err := posts.CreatePost(ctx, author.ID, sp.Content, author.Name); err != nil {
			return fmt.Errorf("seed post for %s: %w", author.Email, err)
		}
	}

	return nil
}
