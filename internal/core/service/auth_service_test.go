package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/soulofsrilanka/travel-api/internal/core/domain"
	"github.com/soulofsrilanka/travel-api/internal/core/ports"
)

type stubUserRepo struct {
	users map[string]*domain.User // keyed by username
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrDuplicateEmail
		}
	}
	if _, exists := r.users[user.Username]; exists {
		return nil, domain.ErrDuplicateUsername
	}
	created := cloneUser(user)
	created.ID = "id_" + user.Username
	r.users[created.Username] = cloneUser(created)
	return created, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	if u, ok := r.users[username]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}
	return out, nil
}

// stubNotifier records welcome calls and optionally fails them.
type stubNotifier struct {
	mu       sync.Mutex
	sent     []string
	failWith error
	done     chan struct{}
}

func newStubNotifier(failWith error) *stubNotifier {
	return &stubNotifier{failWith: failWith, done: make(chan struct{}, 8)}
}

func (n *stubNotifier) SendWelcome(_ context.Context, email, _ string) error {
	n.mu.Lock()
	n.sent = append(n.sent, email)
	n.mu.Unlock()
	n.done <- struct{}{}
	return n.failWith
}

func (n *stubNotifier) wait(t *testing.T) {
	t.Helper()
	select {
	case <-n.done:
	case <-time.After(2 * time.Second):
		t.Fatalf("welcome notification never attempted")
	}
}

func newTestAuthService(repo ports.UserRepository, notifier ports.Notifier) *AuthService {
	return NewAuthService(repo, notifier, "secret", time.Hour, zerolog.Nop())
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	notifier := newStubNotifier(nil)
	svc := newTestAuthService(repo, notifier)

	token, user, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "pass123",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token for immediate login")
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("expected default role user, got %s", user.Role)
	}
	if user.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}

	notifier.wait(t)
	if len(notifier.sent) != 1 || notifier.sent[0] != "alice@example.com" {
		t.Fatalf("unexpected notifications: %v", notifier.sent)
	}
}

func TestAuthService_Register_TokenClaims(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo, newStubNotifier(nil))

	token, user, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "vera", Email: "vera@example.com", Password: "pass123",
		Role: domain.RoleVendor, BusinessName: "Vera Tours",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["user_id"] != user.ID {
		t.Fatalf("expected user_id %s, got %v", user.ID, claims["user_id"])
	}
	if claims["username"] != "vera" || claims["role"] != domain.RoleVendor {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if _, ok := claims["exp"]; !ok {
		t.Fatalf("expected exp claim")
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo, newStubNotifier(nil))

	if _, _, err := svc.Register(context.Background(), ports.RegisterInput{Username: "bob", Email: "bob@example.com", Password: "pass"}); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	_, _, err := svc.Register(context.Background(), ports.RegisterInput{Username: "bobby", Email: "bob@example.com", Password: "pass2"})
	if !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
	if len(repo.users) != 1 {
		t.Fatalf("expected no new record, have %d", len(repo.users))
	}
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo, newStubNotifier(nil))

	_, _, _ = svc.Register(context.Background(), ports.RegisterInput{Username: "bob", Email: "bob@example.com", Password: "pass"})

	_, _, err := svc.Register(context.Background(), ports.RegisterInput{Username: "bob", Email: "other@example.com", Password: "pass"})
	if !errors.Is(err, domain.ErrDuplicateUsername) {
		t.Fatalf("expected ErrDuplicateUsername, got %v", err)
	}
}

func TestAuthService_Register_VendorNeedsBusinessName(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo, newStubNotifier(nil))

	_, _, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "vendy", Email: "vendy@example.com", Password: "pass", Role: domain.RoleVendor,
	})
	if !errors.Is(err, domain.ErrMissingBusinessName) {
		t.Fatalf("expected ErrMissingBusinessName, got %v", err)
	}
	if len(repo.users) != 0 {
		t.Fatalf("expected no record created")
	}
}

func TestAuthService_Register_InvalidRole(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo, newStubNotifier(nil))

	_, _, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "eve", Email: "eve@example.com", Password: "pass", Role: "superuser",
	})
	if !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestAuthService_Register_NotificationFailureIsNonFatal(t *testing.T) {
	repo := newStubUserRepo()
	notifier := newStubNotifier(errors.New("smtp down"))
	svc := newTestAuthService(repo, notifier)

	_, user, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "carol", Email: "carol@example.com", Password: "pass123",
	})
	if err != nil {
		t.Fatalf("registration must survive notification failure: %v", err)
	}
	if user == nil {
		t.Fatalf("expected user")
	}
	notifier.wait(t)

	// The account is usable despite the failed mail.
	if _, _, err := svc.Login(context.Background(), "carol@example.com", "pass123"); err != nil {
		t.Fatalf("login after failed notification: %v", err)
	}
}

func TestAuthService_Login_RoundTrip(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo, newStubNotifier(nil))

	if _, _, err := svc.Register(context.Background(), ports.RegisterInput{Username: "dana", Email: "dana@example.com", Password: "s3cret"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "dana@example.com", "s3cret")
	if err != nil {
		t.Fatalf("login with exact password failed: %v", err)
	}
	if token == "" || user == nil || user.Username != "dana" {
		t.Fatalf("unexpected login result: %q %+v", token, user)
	}

	if _, _, err := svc.Login(context.Background(), "dana@example.com", "s3cret "); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for near-miss password, got %v", err)
	}
}

func TestAuthService_Login_FailuresAreIndistinguishable(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo, newStubNotifier(nil))

	_, _, _ = svc.Register(context.Background(), ports.RegisterInput{Username: "frank", Email: "frank@example.com", Password: "goodpass"})

	_, _, wrongPass := svc.Login(context.Background(), "frank@example.com", "badpass")
	_, _, noSuchUser := svc.Login(context.Background(), "ghost@example.com", "whatever")

	if !errors.Is(wrongPass, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongPass)
	}
	if !errors.Is(noSuchUser, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", noSuchUser)
	}
	if wrongPass.Error() != noSuchUser.Error() {
		t.Fatalf("failure modes must be indistinguishable: %q vs %q", wrongPass, noSuchUser)
	}
}
