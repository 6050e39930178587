package service

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/itemvault/inventory-api/internal/core/domain"
)

type stubUserRepo struct {
	byEmail map[string]*domain.User
	nextID  int
	// findErr, when set, fails every lookup the way a store outage would.
	findErr error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byEmail: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	// The unique index is the store's constraint; duplicates fail on write.
	if _, exists := r.byEmail[user.Email]; exists {
		return nil, domain.ErrEmailExists
	}
	r.nextID++
	created := cloneUser(user)
	created.ID = "user_" + strconv.Itoa(r.nextID)
	r.byEmail[created.Email] = cloneUser(created)
	return created, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	if u, ok := r.byEmail[email]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func newTestAuthService(repo *stubUserRepo) *AuthService {
	tokens := NewTokenService("secret", time.Hour)
	hasher := NewBcryptHasher(4)
	return NewAuthService(repo, hasher, tokens, zerolog.Nop())
}

func TestAuthService_Signup_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	token, user, err := svc.Signup(context.Background(), "a@x.com", "Abc12345!")
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("expected default role %s, got %s", domain.RoleUser, user.Role)
	}
	if user.PasswordHash == "Abc12345!" {
		t.Fatalf("password stored in plaintext")
	}

	// The issued token must decode back to the created identity.
	claims, err := NewTokenService("secret", time.Hour).Verify(token)
	if err != nil {
		t.Fatalf("token invalid: %v", err)
	}
	if claims.UserID != user.ID || claims.Email != "a@x.com" || claims.Role != domain.RoleUser {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestAuthService_Signup_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	if _, _, err := svc.Signup(context.Background(), "a@x.com", "Abc12345!"); err != nil {
		t.Fatalf("first signup failed: %v", err)
	}

	_, _, err := svc.Signup(context.Background(), "a@x.com", "Other123!")
	if !errors.Is(err, domain.ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}
	if len(repo.byEmail) != 1 {
		t.Fatalf("duplicate signup created a second record")
	}
}

func TestAuthService_Signup_EmptyInput(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo())

	if _, _, err := svc.Signup(context.Background(), "", "Abc12345!"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for empty email, got %v", err)
	}
	if _, _, err := svc.Signup(context.Background(), "a@x.com", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for empty password, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	_, created, err := svc.Signup(context.Background(), "a@x.com", "Abc12345!")
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "a@x.com", "Abc12345!")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user.ID != created.ID {
		t.Fatalf("login returned a different user: %s vs %s", user.ID, created.ID)
	}
}

func TestAuthService_Login_IndistinguishableFailures(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	if _, _, err := svc.Signup(context.Background(), "a@x.com", "Abc12345!"); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	// Unknown email and wrong password must be the same external error.
	_, _, errAbsent := svc.Login(context.Background(), "ghost@x.com", "Abc12345!")
	_, _, errWrongPw := svc.Login(context.Background(), "a@x.com", "Wrong1234!")

	if !errors.Is(errAbsent, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for absent user, got %v", errAbsent)
	}
	if !errors.Is(errWrongPw, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", errWrongPw)
	}
	if errAbsent.Error() != errWrongPw.Error() {
		t.Fatalf("failure modes are distinguishable: %q vs %q", errAbsent, errWrongPw)
	}
}

func TestAuthService_Login_StoreFailurePropagates(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	if _, _, err := svc.Signup(context.Background(), "a@x.com", "Abc12345!"); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	// A store outage is not a credential problem; it must surface as itself so
	// the error handler turns it into a 500 instead of a 401.
	outage := errors.New("server selection timeout")
	repo.findErr = outage

	_, _, err := svc.Login(context.Background(), "a@x.com", "Abc12345!")
	if !errors.Is(err, outage) {
		t.Fatalf("expected the store error to propagate, got %v", err)
	}
	if errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("store failure collapsed into ErrInvalidCredentials")
	}
}

func TestAuthService_Login_IssuesIndependentTokens(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	first, _, err := svc.Signup(context.Background(), "a@x.com", "Abc12345!")
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	second, _, err := svc.Login(context.Background(), "a@x.com", "Abc12345!")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	verifier := NewTokenService("secret", time.Hour)
	for _, token := range []string{first, second} {
		if _, err := verifier.Verify(token); err != nil {
			t.Fatalf("token invalid: %v", err)
		}
	}
}

func TestAuthService_Profile(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	_, created, err := svc.Signup(context.Background(), "a@x.com", "Abc12345!")
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	user, err := svc.Profile(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("profile failed: %v", err)
	}
	if user.Email != "a@x.com" {
		t.Fatalf("unexpected profile: %+v", user)
	}

	if _, err := svc.Profile(context.Background(), "missing"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if _, err := svc.Profile(context.Background(), ""); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound for empty id, got %v", err)
	}
}
