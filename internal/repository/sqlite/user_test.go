package sqlite

import (
	"context"
	"testing"

	"github.com/nwatkins/streamtracker/internal/domain/user"
	"github.com/nwatkins/streamtracker/internal/pkg/errors"
	"github.com/nwatkins/streamtracker/internal/testutil"
)

func TestUserRepository_CreateAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := &user.User{Email: "Alice@Example.com", PasswordHash: "hashed"}
	if err := repo.Create(ctx, u); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if u.ID == 0 {
		t.Fatal("ID not assigned")
	}
	if u.Email != "alice@example.com" {
		t.Errorf("Email = %q, want lowercased", u.Email)
	}

	byID, err := repo.GetByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if byID.Email != "alice@example.com" || byID.PasswordHash != "hashed" {
		t.Errorf("got %+v, want created user back", byID)
	}

	byEmail, err := repo.GetByEmail(ctx, "ALICE@example.com")
	if err != nil {
		t.Fatalf("GetByEmail() error = %v", err)
	}
	if byEmail.ID != u.ID {
		t.Errorf("GetByEmail ID = %d, want %d", byEmail.ID, u.ID)
	}
}

func TestUserRepository_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, 42)
	appErr, ok := err.(*errors.AppError)
	if !ok || appErr.Code != errors.ErrCodeNotFound {
		t.Errorf("GetByID error = %v, want not found", err)
	}

	_, err = repo.GetByEmail(ctx, "ghost@example.com")
	appErr, ok = err.(*errors.AppError)
	if !ok || appErr.Code != errors.ErrCodeNotFound {
		t.Errorf("GetByEmail error = %v, want not found", err)
	}
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	if err := repo.Create(ctx, &user.User{Email: "alice@example.com", PasswordHash: "h1"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := repo.Create(ctx, &user.User{Email: "alice@example.com", PasswordHash: "h2"}); err == nil {
		t.Error("second Create() with the same email should fail")
	}
}
