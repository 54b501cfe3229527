package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/soulofsrilanka/travel-api/internal/api/metrics"
	"github.com/soulofsrilanka/travel-api/internal/core/domain"
	"github.com/soulofsrilanka/travel-api/internal/core/ports"
)

const welcomeMailTimeout = 15 * time.Second

// AuthService implements registration and login.
type AuthService struct {
	repo      ports.UserRepository
	notifier  ports.Notifier
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, notifier ports.Notifier, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = time.Hour
	}
	return &AuthService{repo: repo, notifier: notifier, jwtSecret: jwtSecret, tokenTTL: tokenTTL, log: log}
}

// Register creates a new account and returns a session token for it. Each
// failure mode is distinct: duplicate email, duplicate username, vendor
// without a business name, unknown role. The welcome notification is
// fire-and-forget; its failure never rolls back the registration.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (string, *domain.User, error) {
	role := in.Role
	if role == "" {
		role = domain.RoleUser
	}
	if !domain.ValidRole(role) {
		return "", nil, domain.ErrInvalidRole
	}
	if role == domain.RoleVendor && in.BusinessName == "" {
		return "", nil, domain.ErrMissingBusinessName
	}

	if _, err := s.repo.FindByEmail(ctx, in.Email); err == nil {
		return "", nil, domain.ErrDuplicateEmail
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return "", nil, err
	}
	if _, err := s.repo.FindByUsername(ctx, in.Username); err == nil {
		return "", nil, domain.ErrDuplicateUsername
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return "", nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	user := &domain.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}
	if role == domain.RoleVendor {
		user.BusinessName = in.BusinessName
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return "", nil, err
	}

	go s.sendWelcome(created.Email, created.Username)

	token, err := s.generateToken(created)
	if err != nil {
		return "", nil, err
	}

	metrics.RegistrationsTotal.WithLabelValues(created.Role).Inc()
	s.log.Info().Str("username", created.Username).Str("role", created.Role).Msg("user registered")
	return token, created, nil
}

// Login verifies credentials and returns a fresh session token. An unknown
// email and a wrong password both yield ErrInvalidCredentials so the caller
// cannot tell which check failed.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return token, user, nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"role":     user.Role,
		"exp":      time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

// sendWelcome runs detached from the request; registration has already
// succeeded by the time it is called.
func (s *AuthService) sendWelcome(email, username string) {
	ctx, cancel := context.WithTimeout(context.Background(), welcomeMailTimeout)
	defer cancel()

	if err := s.notifier.SendWelcome(ctx, email, username); err != nil {
		s.log.Warn().Err(err).Str("email", email).Msg("welcome notification failed")
		return
	}
	s.log.Info().Str("email", email).Msg("welcome notification sent")
}
