package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vaibhav/lifehub-api/internal/models"
	"github.com/vaibhav/lifehub-api/internal/repository"
	"gorm.io/gorm"
)

// ClientService manages client records and the revenue metrics derived from
// them.
type ClientService struct {
	clientRepo repository.ClientRepository
}

// NewClientService creates a new client service
func NewClientService(clientRepo repository.ClientRepository) *ClientService {
	return &ClientService{clientRepo: clientRepo}
}

// CreateClientInput carries the fields for creating a client
type CreateClientInput struct {
	Name             string     `json:"name" binding:"required"`
	Company          *string    `json:"company"`
	Email            *string    `json:"email" binding:"omitempty,email"`
	Phone            *string    `json:"phone"`
	ProductService   *string    `json:"product_service"`
	SetupFee         *float64   `json:"setup_fee"`
	ContractValue    *float64   `json:"contract_value"`
	PaymentFrequency string     `json:"payment_frequency"`
	NextPaymentDate  *time.Time `json:"next_payment_date"`
	Status           string     `json:"status"`
	Notes            *string    `json:"notes"`
}

// CreateClient creates a client record. Status defaults to pending and
// frequency to monthly.
func (s *ClientService) CreateClient(ctx context.Context, input CreateClientInput) (*models.Client, error) {
	status := input.Status
	if status == "" {
		status = models.ClientStatusPending
	}
	frequency := input.PaymentFrequency
	if frequency == "" {
		frequency = models.FrequencyMonthly
	}
	if err := validateClientEnums(status, frequency); err != nil {
		return nil, err
	}

	client := &models.Client{
		Name:             input.Name,
		Company:          input.Company,
		Email:            input.Email,
		Phone:            input.Phone,
		ProductService:   input.ProductService,
		SetupFee:         input.SetupFee,
		ContractValue:    input.ContractValue,
		PaymentFrequency: frequency,
		NextPaymentDate:  input.NextPaymentDate,
		Status:           status,
		Notes:            input.Notes,
	}
	if err := s.clientRepo.Create(ctx, client); err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}
	return client, nil
}

// GetClient returns a client by ID
func (s *ClientService) GetClient(ctx context.Context, id uint) (*models.Client, error) {
	client, err := s.clientRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return client, nil
}

// ListClients returns a filtered, paginated client list
func (s *ClientService) ListClients(ctx context.Context, query *repository.ListQuery) ([]models.Client, int64, error) {
	return s.clientRepo.List(ctx, query)
}

// UpdateClientInput carries the updatable client fields
type UpdateClientInput struct {
	Name             *string    `json:"name"`
	Company          *string    `json:"company"`
	Email            *string    `json:"email" binding:"omitempty,email"`
	Phone            *string    `json:"phone"`
	ProductService   *string    `json:"product_service"`
	SetupFee         *float64   `json:"setup_fee"`
	ContractValue    *float64   `json:"contract_value"`
	PaymentFrequency *string    `json:"payment_frequency"`
	NextPaymentDate  *time.Time `json:"next_payment_date"`
	Status           *string    `json:"status"`
	Notes            *string    `json:"notes"`
}

// UpdateClient applies a partial update to a client record
func (s *ClientService) UpdateClient(ctx context.Context, id uint, input UpdateClientInput) (*models.Client, error) {
	client, err := s.GetClient(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		client.Name = *input.Name
	}
	if input.Company != nil {
		client.Company = input.Company
	}
	if input.Email != nil {
		client.Email = input.Email
	}
	if input.Phone != nil {
		client.Phone = input.Phone
	}
	if input.ProductService != nil {
		client.ProductService = input.ProductService
	}
	if input.SetupFee != nil {
		client.SetupFee = input.SetupFee
	}
	if input.ContractValue != nil {
		client.ContractValue = input.ContractValue
	}
	if input.PaymentFrequency != nil {
		client.PaymentFrequency = *input.PaymentFrequency
	}
	if input.NextPaymentDate != nil {
		client.NextPaymentDate = input.NextPaymentDate
	}
	if input.Status != nil {
		client.Status = *input.Status
	}
	if input.Notes != nil {
		client.Notes = input.Notes
	}

	if err := validateClientEnums(client.Status, client.PaymentFrequency); err != nil {
		return nil, err
	}

	if err := s.clientRepo.Update(ctx, client); err != nil {
		return nil, fmt.Errorf("updating client %d: %w", id, err)
	}
	return client, nil
}

// DeleteClient removes a client record
func (s *ClientService) DeleteClient(ctx context.Context, id uint) error {
	if _, err := s.GetClient(ctx, id); err != nil {
		return err
	}
	return s.clientRepo.Delete(ctx, id)
}

// ClientMetrics is the revenue rollup across all clients
type ClientMetrics struct {
	TotalARR          float64 `json:"total_arr"`
	MonthlyRevenue    float64 `json:"monthly_revenue"`
	PaymentsThisMonth int     `json:"payments_this_month"`
	ActiveClients     int     `json:"active_clients"`
	PendingClients    int     `json:"pending_clients"`
	TotalClients      int     `json:"total_clients"`
}

// Metrics computes ARR and client counts over every client record.
// MonthlyRevenue is the sum of contract values for non-inactive clients whose
// next payment date lands in the calendar month of now.
func (s *ClientService) Metrics(ctx context.Context, now time.Time) (*ClientMetrics, error) {
	clients, err := s.clientRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	metrics := &ClientMetrics{TotalClients: len(clients)}
	for _, c := range clients {
		metrics.TotalARR += c.AnnualRecurringRevenue()
		switch c.Status {
		case models.ClientStatusActive:
			metrics.ActiveClients++
		case models.ClientStatusPending:
			metrics.PendingClients++
		}
		if c.Status != models.ClientStatusInactive && c.ContractValue != nil && c.NextPaymentDate != nil {
			if c.NextPaymentDate.Year() == now.Year() && c.NextPaymentDate.Month() == now.Month() {
				metrics.MonthlyRevenue += *c.ContractValue
				metrics.PaymentsThisMonth++
			}
		}
	}
	return metrics, nil
}

// UpcomingPayments returns non-inactive clients with a payment due within
// the next `days` days, soonest first.
func (s *ClientService) UpcomingPayments(ctx context.Context, today time.Time, days int) ([]models.Client, error) {
	from := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	to := from.AddDate(0, 0, days)
	return s.clientRepo.FindWithUpcomingPayments(ctx, from, to)
}

func validateClientEnums(status, frequency string) error {
	switch status {
	case models.ClientStatusActive, models.ClientStatusPending, models.ClientStatusInactive:
	default:
		return fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}
	switch frequency {
	case models.FrequencyMonthly, models.FrequencyQuarterly, models.FrequencyAnnual, models.FrequencyOneTime:
	default:
		return fmt.Errorf("%w: unknown payment frequency %q", ErrValidation, frequency)
	}
	return nil
}
