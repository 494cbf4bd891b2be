package service

import (
	"context"
	"testing"

	"procommunity/internal/config"
	"procommunity/internal/repository/memory"
)

func seedConfig(demo bool) config.Config {
	var cfg config.Config
	cfg.Admin.Email = "admin@procommunity.com"
	cfg.Admin.Password = "admin123"
	cfg.Seed.Demo = demo
	return cfg
}

func TestSeedCreatesAdminAndDemoData(t *testing.T) {
	userStore := memory.NewUserStore()
	postStore := memory.NewPostStore()
	users := NewUserService(userStore, postStore)
	posts := NewPostService(postStore)
	ctx := context.Background()

	if err := Seed(ctx, users, posts, seedConfig(true)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	admins, _ := users.ListAdmins(ctx)
	if len(admins) != 1 {
		t.Fatalf("expected 1 admin, got %d", len(admins))
	}
	if admins[0].ID != 1 || admins[0].Email != "admin@procommunity.com" {
		t.Fatalf("unexpected admin record: %+v", admins[0])
	}

	members, _ := users.ListMembers(ctx)
	if len(members) != 4 {
		t.Fatalf("expected 4 demo members, got %d", len(members))
	}

	feed, _ := posts.Feed(ctx)
	if len(feed) != 5 {
		t.Fatalf("expected 5 demo posts, got %d", len(feed))
	}
	for _, p := range feed {
		if p.AuthorName == "" {
			t.Fatalf("post %d has no author name", p.ID)
		}
	}

	// admin logs in with the seeded password
	if _, err := users.Authenticate(ctx, "admin@procommunity.com", "admin123"); err != nil {
		t.Fatalf("seeded admin should authenticate: %v", err)
	}
}

func TestSeedWithoutDemoData(t *testing.T) {
	userStore := memory.NewUserStore()
	postStore := memory.NewPostStore()
	users := NewUserService(userStore, postStore)
	posts := NewPostService(postStore)
	ctx := context.Background()

	if err := Seed(ctx, users, posts, seedConfig(false)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	members, _ := users.ListMembers(ctx)
	if len(members) != 0 {
		t.Fatalf("expected no demo members, got %d", len(members))
	}
	feed, _ := posts.Feed(ctx)
	if len(feed) != 0 {
		t.Fatalf("expected no demo posts, got %d", len(feed))
	}
}
