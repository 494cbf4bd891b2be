package memory

import (
	"context"
	"errors"
	"testing"

	"procommunity/internal/domain"
	"procommunity/internal/repository"
)

func TestUserStoreAssignsMonotonicIDs(t *testing.T) {
	store := NewUserStore()
	ctx := context.Background()

	var last int64
	for _, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		id, err := store.Create(ctx, &domain.User{Name: "User", Email: email})
		if err != nil {
			t.Fatalf("unexpected error creating %s: %v", email, err)
		}
		if id <= last {
			t.Fatalf("expected strictly increasing ids, got %d after %d", id, last)
		}
		last = id
	}
	if last != 3 {
		t.Fatalf("expected ids to start at 1, last id was %d", last)
	}
}

func TestUserStoreRejectsDuplicateEmail(t *testing.T) {
	store := NewUserStore()
	ctx := context.Background()

	if _, err := store.Create(ctx, &domain.User{Name: "First", Email: "x@y.com"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := store.Create(ctx, &domain.User{Name: "Second", Email: "x@y.com"}); !errors.Is(err, repository.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}

	count, _ := store.Count(ctx)
	if count != 1 {
		t.Fatalf("expected store unchanged after duplicate, have %d users", count)
	}

	// failed create must not consume an id
	id, err := store.Create(ctx, &domain.User{Name: "Third", Email: "z@y.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 2 {
		t.Fatalf("expected id 2 after one successful create, got %d", id)
	}
}

func TestUserStoreEmailMatchIsCaseSensitive(t *testing.T) {
	store := NewUserStore()
	ctx := context.Background()

	if _, err := store.Create(ctx, &domain.User{Name: "Lower", Email: "x@y.com"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := store.Create(ctx, &domain.User{Name: "Upper", Email: "X@Y.com"}); err != nil {
		t.Fatalf("expected differently-cased email to be accepted: %v", err)
	}
	if _, err := store.GetByEmail(ctx, "X@y.com"); !errors.Is(err, repository.ErrUserNotFound) {
		t.Fatalf("expected exact-match lookup to miss, got %v", err)
	}
}

func TestUserStoreUpdateProfile(t *testing.T) {
	store := NewUserStore()
	ctx := context.Background()

	id, err := store.Create(ctx, &domain.User{Name: "A", Email: "a@y.com", Bio: "old"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated, err := store.UpdateProfile(ctx, id, "Alex", "new bio")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Name != "Alex" || updated.Bio != "new bio" {
		t.Fatalf("unexpected updated record: %+v", updated)
	}
	if updated.Email != "a@y.com" {
		t.Fatalf("email must be immutable, got %q", updated.Email)
	}

	if _, err := store.UpdateProfile(ctx, 999, "Nobody", ""); !errors.Is(err, repository.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserStorePromoteIsIdempotent(t *testing.T) {
	store := NewUserStore()
	ctx := context.Background()

	id, _ := store.Create(ctx, &domain.User{Name: "A", Email: "a@y.com"})
	for i := 0; i < 2; i++ {
		if err := store.Promote(ctx, id); err != nil {
			t.Fatalf("unexpected error on promote %d: %v", i, err)
		}
	}
	user, _ := store.GetByID(ctx, id)
	if !user.IsAdmin {
		t.Fatal("expected user to be admin after promote")
	}

	if err := store.Promote(ctx, 42); !errors.Is(err, repository.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserStoreDeleteAndLookup(t *testing.T) {
	store := NewUserStore()
	ctx := context.Background()

	id, _ := store.Create(ctx, &domain.User{Name: "A", Email: "a@y.com"})
	if err := store.Delete(ctx, id); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := store.GetByID(ctx, id); !errors.Is(err, repository.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound after delete, got %v", err)
	}
	if err := store.Delete(ctx, id); !errors.Is(err, repository.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound on repeated delete, got %v", err)
	}
}

func TestUserStoreListsSplitByAdminFlag(t *testing.T) {
	store := NewUserStore()
	ctx := context.Background()

	adminID, _ := store.Create(ctx, &domain.User{Name: "Admin", Email: "admin@y.com"})
	_ = store.Promote(ctx, adminID)
	store.Create(ctx, &domain.User{Name: "B", Email: "b@y.com"})
	store.Create(ctx, &domain.User{Name: "C", Email: "c@y.com"})

	admins, _ := store.ListAdmins(ctx)
	if len(admins) != 1 || admins[0].ID != adminID {
		t.Fatalf("unexpected admins: %+v", admins)
	}

	members, _ := store.ListNonAdmins(ctx)
	if len(members) != 2 {
		t.Fatalf("expected 2 members, got %d", len(members))
	}
	if members[0].ID > members[1].ID {
		t.Fatal("expected id-ascending order from the store")
	}
}

func TestUserStoreReturnsCopies(t *testing.T) {
	store := NewUserStore()
	ctx := context.Background()

	id, _ := store.Create(ctx, &domain.User{Name: "A", Email: "a@y.com"})
	user, _ := store.GetByID(ctx, id)
	user.Name = "mutated"

	again, _ := store.GetByID(ctx, id)
	if again.Name != "A" {
		t.Fatalf("store state leaked through returned pointer: %q", again.Name)
	}
}
