package services

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vaibhav/lifehub-api/internal/config"
	"github.com/vaibhav/lifehub-api/internal/models"
	"github.com/vaibhav/lifehub-api/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// AuthService verifies the dashboard PIN and manages server-side sessions.
// A successful verification mints a session row plus a JWT that references
// it, so logout and TTL expiry are enforced on the server, not in a client
// flag.
type AuthService struct {
	sessionRepo repository.SessionRepository
	cfg         *config.Config
}

// NewAuthService creates a new auth service
func NewAuthService(sessionRepo repository.SessionRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		sessionRepo: sessionRepo,
		cfg:         cfg,
	}
}

// VerifyResult is returned on successful PIN verification
type VerifyResult struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// VerifyPIN checks the submitted PIN against the configured credential and
// opens a session. APP_PIN_HASH (bcrypt) is preferred; the plaintext APP_PIN
// comparison exists for development only. There is no fallback PIN value.
func (s *AuthService) VerifyPIN(ctx context.Context, pin string) (*VerifyResult, error) {
	if !s.cfg.PINConfigured() {
		return nil, ErrPINNotSet
	}

	if s.cfg.AppPINHash != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.AppPINHash), []byte(pin)); err != nil {
			return nil, ErrInvalidPIN
		}
	} else {
		if subtle.ConstantTimeCompare([]byte(s.cfg.AppPIN), []byte(pin)) != 1 {
			return nil, ErrInvalidPIN
		}
	}

	return s.openSession(ctx)
}

// Logout revokes the session behind a token
func (s *AuthService) Logout(ctx context.Context, sessionToken string) error {
	return s.sessionRepo.Delete(ctx, sessionToken)
}

// ValidateSession checks that a session exists and has not expired. Expired
// rows are deleted on sight; the hourly cleanup job catches the rest.
func (s *AuthService) ValidateSession(ctx context.Context, token string) error {
	session, err := s.sessionRepo.FindByToken(ctx, token)
	if err != nil {
		return ErrUnauthorized
	}
	if session.IsExpired() {
		_ = s.sessionRepo.Delete(ctx, token)
		return ErrUnauthorized
	}
	_ = s.sessionRepo.Touch(ctx, session.ID)
	return nil
}

// CleanupExpiredSessions removes expired session rows
func (s *AuthService) CleanupExpiredSessions(ctx context.Context) (int64, error) {
	return s.sessionRepo.DeleteExpired(ctx)
}

func (s *AuthService) openSession(ctx context.Context) (*VerifyResult, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return nil, err
	}
	sessionToken := hex.EncodeToString(raw)
	expiresAt := time.Now().Add(time.Duration(s.cfg.SessionTTLHours) * time.Hour)

	session := &models.Session{
		Token:     sessionToken,
		ExpiresAt: expiresAt,
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}

	signed, err := s.signJWT(sessionToken, expiresAt)
	if err != nil {
		return nil, err
	}

	return &VerifyResult{Token: signed, ExpiresAt: expiresAt}, nil
}

func (s *AuthService) signJWT(sessionToken string, expiresAt time.Time) (string, error) {
	claims := jwt.MapClaims{
		"session_token": sessionToken,
		"exp":           expiresAt.Unix(),
		"iat":           time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

// HashPIN hashes a PIN using bcrypt, for generating APP_PIN_HASH values
func HashPIN(pin string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	return string(bytes), err
}
