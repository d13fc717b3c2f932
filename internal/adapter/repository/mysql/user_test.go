package mysql

import (
	"context"
	"errors"
	"testing"

	domain "peerlend/internal/domain/user"
	"peerlend/pkg/id"

	"gorm.io/gorm"
)

func strptr(s string) *string { return &s }

func TestUserCreateAndGetByUserID(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	userID := id.NewID32()
	u := &domain.User{
		UserID:       userID,
		Name:         "Asha",
		Email:        strptr("asha@example.com"),
		PasswordHash: "hashed",
		Role:         domain.RoleLender,
	}
	if err := repo.Create(ctx, u); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByUserID(ctx, userID)
	if err != nil {
		t.Fatalf("GetByUserID: %v", err)
	}
	if got.Name != "Asha" || got.Role != domain.RoleLender {
		t.Fatalf("got %+v", got)
	}

	if _, err := repo.GetByUserID(ctx, id.NewID32()); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("missing user err = %v, want ErrRecordNotFound", err)
	}
}

func TestUserGetByIdentifier(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	byEmail := &domain.User{UserID: id.NewID32(), Name: "A", Email: strptr("a@example.com"), Role: domain.RoleLender}
	byPhone := &domain.User{UserID: id.NewID32(), Name: "B", Phone: strptr("9876543210"), Role: domain.RoleBorrower}
	for _, u := range []*domain.User{byEmail, byPhone} {
		if err := repo.Create(ctx, u); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	got, err := repo.GetByIdentifier(ctx, "a@example.com")
	if err != nil {
		t.Fatalf("lookup by email: %v", err)
	}
	if got.UserID != byEmail.UserID {
		t.Fatalf("got %s, want the email user", got.UserID)
	}

	got, err = repo.GetByIdentifier(ctx, "9876543210")
	if err != nil {
		t.Fatalf("lookup by phone: %v", err)
	}
	if got.UserID != byPhone.UserID {
		t.Fatalf("got %s, want the phone user", got.UserID)
	}

	if _, err := repo.GetByIdentifier(ctx, "nobody@example.com"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("err = %v, want ErrRecordNotFound", err)
	}
}

func TestUserUniqueIdentities(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	first := &domain.User{UserID: id.NewID32(), Name: "A", Email: strptr("dup@example.com"), Role: domain.RoleLender}
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("Create: %v", err)
	}

	dup := &domain.User{UserID: id.NewID32(), Name: "B", Email: strptr("dup@example.com"), Role: domain.RoleBorrower}
	if err := repo.Create(ctx, dup); err == nil {
		t.Fatal("duplicate email should violate the unique index")
	}

	// NULL emails never collide.
	for i := 0; i < 2; i++ {
		u := &domain.User{UserID: id.NewID32(), Name: "P", Phone: strptr(id.NewID32()[:10]), Role: domain.RoleBorrower}
		if err := repo.Create(ctx, u); err != nil {
			t.Fatalf("phone-only user %d: %v", i, err)
		}
	}
}

func TestUserListByRole(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	for i, role := range []domain.Role{domain.RoleLender, domain.RoleBorrower, domain.RoleBorrower} {
		u := &domain.User{UserID: id.NewID32(), Name: "U", Phone: strptr(id.NewID32()[:10]), Role: role}
		if err := repo.Create(ctx, u); err != nil {
			t.Fatalf("Create %d: %v", i, err)
		}
	}

	borrowers, err := repo.ListByRole(ctx, domain.RoleBorrower)
	if err != nil {
		t.Fatalf("ListByRole: %v", err)
	}
	if len(borrowers) != 2 {
		t.Fatalf("len = %d, want 2 borrowers", len(borrowers))
	}
}
