package auth

import (
	"fmt"
	"time"

	"coin-market/internal/marketerrors"
	"coin-market/utils"

	"github.com/lestrrat-go/jwx/jwa"
	"github.com/lestrrat-go/jwx/jwt"
	"golang.org/x/crypto/bcrypt"
)

// Service issues and verifies admin session tokens. Credentials are checked
// server-side against a bcrypt hash; sessions are HS256 JWTs.
type Service struct {
	username     string
	passwordHash string
	secret       []byte
	ttl          time.Duration
	now          func() time.Time
}

// NewService creates a new auth Service instance. An empty password hash or
// secret disables login entirely; every attempt then fails credential checks.
func NewService(username, passwordHash, secret string, ttl time.Duration) *Service {
	return &Service{
		username:     username,
		passwordHash: passwordHash,
		secret:       []byte(secret),
		ttl:          ttl,
		now:          time.Now,
	}
}

// Login verifies the credentials and returns a signed session token with its
// expiry. Username and password failures are indistinguishable to the caller.
func (s *Service) Login(username, password string) (string, time.Time, error) {
	if s.passwordHash == "" || len(s.secret) == 0 {
		return "", time.Time{}, fmt.Errorf("auth: admin login not configured: %w", marketerrors.ErrInvalidCredentials)
	}
	if username != s.username {
		return "", time.Time{}, fmt.Errorf("auth: %w", marketerrors.ErrInvalidCredentials)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)); err != nil {
		return "", time.Time{}, fmt.Errorf("auth: %w", marketerrors.ErrInvalidCredentials)
	}

	now := s.now().UTC()
	expiresAt := now.Add(s.ttl)

	token := jwt.New()
	_ = token.Set(jwt.SubjectKey, username)
	_ = token.Set(jwt.JwtIDKey, utils.GenerateID())
	_ = token.Set(jwt.IssuedAtKey, now.Unix())
	_ = token.Set(jwt.ExpirationKey, expiresAt.Unix())

	signed, err := jwt.Sign(token, jwa.HS256, s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("auth: failed to sign token: %w", err)
	}

	return string(signed), expiresAt, nil
}

// Verify checks the token signature and expiry and returns the subject.
func (s *Service) Verify(raw string) (string, error) {
	if raw == "" {
		return "", fmt.Errorf("auth: empty token: %w", marketerrors.ErrInvalidToken)
	}

	token, err := jwt.Parse(
		[]byte(raw),
		jwt.WithVerify(jwa.HS256, s.secret),
		jwt.WithValidate(true),
	)
	if err != nil {
		return "", fmt.Errorf("auth: %w: %v", marketerrors.ErrInvalidToken, err)
	}

	return token.Subject(), nil
}

// HashPassword produces a bcrypt hash suitable for ADMIN_PASSWORD_HASH.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("auth: failed to hash password: %w", err)
	}
	return string(hash), nil
}
