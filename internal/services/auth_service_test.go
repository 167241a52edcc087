package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vaibhav/lifehub-api/internal/config"
	"github.com/vaibhav/lifehub-api/internal/models"
	"github.com/vaibhav/lifehub-api/internal/repository"
	"gorm.io/gorm"
)

type mockSessionRepo struct {
	repository.SessionRepository
	mockCreate      func(ctx context.Context, session *models.Session) error
	mockFindByToken func(ctx context.Context, token string) (*models.Session, error)
	mockDelete      func(ctx context.Context, token string) error
	mockTouch       func(ctx context.Context, id uint) error
}

func (m *mockSessionRepo) Create(ctx context.Context, session *models.Session) error {
	if m.mockCreate != nil {
		return m.mockCreate(ctx, session)
	}
	return nil
}

func (m *mockSessionRepo) FindByToken(ctx context.Context, token string) (*models.Session, error) {
	return m.mockFindByToken(ctx, token)
}

func (m *mockSessionRepo) Delete(ctx context.Context, token string) error {
	if m.mockDelete != nil {
		return m.mockDelete(ctx, token)
	}
	return nil
}

func (m *mockSessionRepo) Touch(ctx context.Context, id uint) error {
	if m.mockTouch != nil {
		return m.mockTouch(ctx, id)
	}
	return nil
}

func testConfig(pin string) *config.Config {
	return &config.Config{
		AppPIN:          pin,
		JWTSecret:       "test-secret",
		SessionTTLHours: 72,
	}
}

func TestAuthService_VerifyPIN_Success(t *testing.T) {
	repo := &mockSessionRepo{}
	service := NewAuthService(repo, testConfig("4821"))

	var created *models.Session
	repo.mockCreate = func(ctx context.Context, session *models.Session) error {
		created = session
		return nil
	}

	result, err := service.VerifyPIN(context.Background(), "4821")
	assert.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.NotNil(t, created)
	assert.Len(t, created.Token, 64) // 32 random bytes hex-encoded
	assert.WithinDuration(t, time.Now().Add(72*time.Hour), result.ExpiresAt, time.Minute)
}

func TestAuthService_VerifyPIN_WrongPIN(t *testing.T) {
	service := NewAuthService(&mockSessionRepo{}, testConfig("4821"))

	result, err := service.VerifyPIN(context.Background(), "0000")
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrInvalidPIN)
}

func TestAuthService_VerifyPIN_BcryptHash(t *testing.T) {
	hash, err := HashPIN("4821")
	assert.NoError(t, err)

	cfg := testConfig("")
	cfg.AppPINHash = hash
	service := NewAuthService(&mockSessionRepo{}, cfg)

	_, err = service.VerifyPIN(context.Background(), "4821")
	assert.NoError(t, err)

	_, err = service.VerifyPIN(context.Background(), "1234")
	assert.ErrorIs(t, err, ErrInvalidPIN)
}

func TestAuthService_VerifyPIN_NoPINConfigured(t *testing.T) {
	service := NewAuthService(&mockSessionRepo{}, testConfig(""))

	_, err := service.VerifyPIN(context.Background(), "anything")
	assert.ErrorIs(t, err, ErrPINNotSet)
}

func TestAuthService_ValidateSession_Expired(t *testing.T) {
	repo := &mockSessionRepo{}
	service := NewAuthService(repo, testConfig("4821"))

	repo.mockFindByToken = func(ctx context.Context, token string) (*models.Session, error) {
		return &models.Session{
			ID:        1,
			Token:     token,
			ExpiresAt: time.Now().Add(-time.Hour),
		}, nil
	}

	deleted := false
	repo.mockDelete = func(ctx context.Context, token string) error {
		deleted = true
		return nil
	}

	err := service.ValidateSession(context.Background(), "stale")
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.True(t, deleted)
}

func TestAuthService_ValidateSession_Unknown(t *testing.T) {
	repo := &mockSessionRepo{}
	service := NewAuthService(repo, testConfig("4821"))

	repo.mockFindByToken = func(ctx context.Context, token string) (*models.Session, error) {
		return nil, gorm.ErrRecordNotFound
	}

	err := service.ValidateSession(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestAuthService_ValidateSession_Valid(t *testing.T) {
	repo := &mockSessionRepo{}
	service := NewAuthService(repo, testConfig("4821"))

	repo.mockFindByToken = func(ctx context.Context, token string) (*models.Session, error) {
		return &models.Session{
			ID:        1,
			Token:     token,
			ExpiresAt: time.Now().Add(time.Hour),
		}, nil
	}

	touched := false
	repo.mockTouch = func(ctx context.Context, id uint) error {
		touched = true
		return nil
	}

	err := service.ValidateSession(context.Background(), "live")
	assert.NoError(t, err)
	assert.True(t, touched)
}
