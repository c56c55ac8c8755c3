package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"

	"github.com/deppfellow/lightbnb/internal/repository"
	"github.com/deppfellow/lightbnb/internal/sqlerr"
)

// mockUserStore is an in-memory UserStore keyed by normalized email, with
// the same duplicate-email behavior as the real table's unique index.
type mockUserStore struct {
	byEmail map[string]*repository.User
	nextID  int64
}

func newMockUserStore() *mockUserStore {
	return &mockUserStore{byEmail: make(map[string]*repository.User), nextID: 1}
}

func (m *mockUserStore) GetByEmail(_ context.Context, email string) (*repository.User, error) {
	user, ok := m.byEmail[repository.NormalizeEmail(email)]
	if !ok {
		return nil, nil
	}
	return user, nil
}

func (m *mockUserStore) GetByID(_ context.Context, id int64) (*repository.User, error) {
	for _, user := range m.byEmail {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, nil
}

func (m *mockUserStore) Create(_ context.Context, params repository.CreateUserParams) (*repository.User, error) {
	email := repository.NormalizeEmail(params.Email)
	if _, exists := m.byEmail[email]; exists {
		return nil, fmt.Errorf("inserting user: %w", &pgconn.PgError{
			Code:           "23505",
			TableName:      "users",
			ConstraintName: "users_email_key",
			Detail:         fmt.Sprintf("Key (email)=(%s) already exists.", email),
		})
	}

	user := &repository.User{
		ID:           m.nextID,
		Name:         params.Name,
		Email:        email,
		PasswordHash: params.PasswordHash,
	}
	m.nextID++
	m.byEmail[email] = user
	return user, nil
}

func TestUsersService_Register_Success(t *testing.T) {
	store := newMockUserStore()
	svc := NewUsersService(store, nil)

	user, err := svc.Register(context.Background(), RegisterUserInput{
		Name:     "Eva Stanley",
		Email:    "Eva.Stanley@example.com",
		Password: "sevenletters",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.ID == 0 {
		t.Error("expected an assigned user id")
	}
	if user.Email != "eva.stanley@example.com" {
		t.Errorf("expected lowercased email, got %q", user.Email)
	}
	if user.PasswordHash == "sevenletters" {
		t.Fatal("password was stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("sevenletters")); err != nil {
		t.Errorf("stored hash does not verify against the original password: %v", err)
	}
}

func TestUsersService_Register_DuplicateEmail(t *testing.T) {
	store := newMockUserStore()
	svc := NewUsersService(store, nil)

	input := RegisterUserInput{Name: "Eva Stanley", Email: "eva@example.com", Password: "pw"}
	if _, err := svc.Register(context.Background(), input); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}

	_, err := svc.Register(context.Background(), input)
	if err == nil {
		t.Fatal("expected duplicate registration to fail")
	}
	if code := sqlerr.ErrCode(err); code != sqlerr.UniqueViolation {
		t.Errorf("expected unique violation classification, got %v", code)
	}
}

func TestUsersService_GetByEmail_NotFound(t *testing.T) {
	svc := NewUsersService(newMockUserStore(), nil)

	user, err := svc.GetByEmail(context.Background(), "nobody@example.com")
	if err != nil {
		t.Fatalf("missing account must not be an error, got %v", err)
	}
	if user != nil {
		t.Errorf("expected nil user for unknown email, got %+v", user)
	}
}

func TestUsersService_GetByID_NotFound(t *testing.T) {
	svc := NewUsersService(newMockUserStore(), nil)

	user, err := svc.GetByID(context.Background(), 404)
	if err != nil {
		t.Fatalf("missing account must not be an error, got %v", err)
	}
	if user != nil {
		t.Errorf("expected nil user for unknown id, got %+v", user)
	}
}
