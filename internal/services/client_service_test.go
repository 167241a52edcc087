package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vaibhav/lifehub-api/internal/models"
	"github.com/vaibhav/lifehub-api/internal/repository"
)

type mockClientRepo struct {
	repository.ClientRepository
	mockFindAll func(ctx context.Context) ([]models.Client, error)
	mockCreate  func(ctx context.Context, client *models.Client) error
}

func (m *mockClientRepo) FindAll(ctx context.Context) ([]models.Client, error) {
	return m.mockFindAll(ctx)
}

func (m *mockClientRepo) Create(ctx context.Context, client *models.Client) error {
	if m.mockCreate != nil {
		return m.mockCreate(ctx, client)
	}
	return nil
}

func fl(v float64) *float64 { return &v }

func TestClientService_Metrics_ARRByFrequency(t *testing.T) {
	repo := &mockClientRepo{}
	service := NewClientService(repo)

	repo.mockFindAll = func(ctx context.Context) ([]models.Client, error) {
		return []models.Client{
			{Status: models.ClientStatusActive, PaymentFrequency: models.FrequencyMonthly, ContractValue: fl(10000)},
			{Status: models.ClientStatusActive, PaymentFrequency: models.FrequencyQuarterly, ContractValue: fl(30000)},
			{Status: models.ClientStatusActive, PaymentFrequency: models.FrequencyAnnual, ContractValue: fl(50000)},
			// one-time and inactive contribute nothing
			{Status: models.ClientStatusActive, PaymentFrequency: models.FrequencyOneTime, ContractValue: fl(99999)},
			{Status: models.ClientStatusInactive, PaymentFrequency: models.FrequencyMonthly, ContractValue: fl(10000)},
			{Status: models.ClientStatusPending, PaymentFrequency: models.FrequencyMonthly},
		}, nil
	}

	metrics, err := service.Metrics(context.Background(), time.Date(2026, time.August, 28, 0, 0, 0, 0, time.UTC))
	assert.NoError(t, err)

	// 10000*12 + 30000*4 + 50000
	assert.Equal(t, 290000.0, metrics.TotalARR)
	assert.Equal(t, 4, metrics.ActiveClients)
	assert.Equal(t, 1, metrics.PendingClients)
	assert.Equal(t, 6, metrics.TotalClients)
}

func TestClientService_Metrics_MonthlyRevenueDueThisMonth(t *testing.T) {
	repo := &mockClientRepo{}
	service := NewClientService(repo)

	now := time.Date(2026, time.August, 28, 10, 0, 0, 0, time.UTC)
	aug := time.Date(2026, time.August, 5, 0, 0, 0, 0, time.UTC)
	sep := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	lastAug := time.Date(2025, time.August, 5, 0, 0, 0, 0, time.UTC)

	repo.mockFindAll = func(ctx context.Context) ([]models.Client, error) {
		return []models.Client{
			{Status: models.ClientStatusActive, PaymentFrequency: models.FrequencyAnnual, ContractValue: fl(1200), NextPaymentDate: &aug},
			{Status: models.ClientStatusPending, PaymentFrequency: models.FrequencyMonthly, ContractValue: fl(500), NextPaymentDate: &aug},
			// outside the current month, wrong year, inactive, and no date
			{Status: models.ClientStatusActive, PaymentFrequency: models.FrequencyMonthly, ContractValue: fl(900), NextPaymentDate: &sep},
			{Status: models.ClientStatusActive, PaymentFrequency: models.FrequencyMonthly, ContractValue: fl(700), NextPaymentDate: &lastAug},
			{Status: models.ClientStatusInactive, PaymentFrequency: models.FrequencyMonthly, ContractValue: fl(800), NextPaymentDate: &aug},
			{Status: models.ClientStatusActive, PaymentFrequency: models.FrequencyMonthly, ContractValue: fl(600)},
		}, nil
	}

	metrics, err := service.Metrics(context.Background(), now)
	assert.NoError(t, err)

	// full contract values, not annualized fractions
	assert.Equal(t, 1700.0, metrics.MonthlyRevenue)
	assert.Equal(t, 2, metrics.PaymentsThisMonth)
}

func TestClientService_CreateClient_Defaults(t *testing.T) {
	repo := &mockClientRepo{}
	service := NewClientService(repo)

	client, err := service.CreateClient(context.Background(), CreateClientInput{Name: "Acme"})
	assert.NoError(t, err)
	assert.Equal(t, models.ClientStatusPending, client.Status)
	assert.Equal(t, models.FrequencyMonthly, client.PaymentFrequency)
}

func TestClientService_CreateClient_RejectsUnknownEnums(t *testing.T) {
	service := NewClientService(&mockClientRepo{})

	_, err := service.CreateClient(context.Background(), CreateClientInput{Name: "Acme", Status: "vip"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = service.CreateClient(context.Background(), CreateClientInput{Name: "Acme", PaymentFrequency: "weekly"})
	assert.ErrorIs(t, err, ErrValidation)
}
