package repository

import (
	"context"
	"time"

	"github.com/vaibhav/lifehub-api/internal/models"

	"gorm.io/gorm"
)

// ClientRepository defines the interface for client data access
type ClientRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Client, error)
	FindAll(ctx context.Context) ([]models.Client, error)
	List(ctx context.Context, query *ListQuery) ([]models.Client, int64, error)
	FindWithUpcomingPayments(ctx context.Context, from, to time.Time) ([]models.Client, error)
	Create(ctx context.Context, client *models.Client) error
	Update(ctx context.Context, client *models.Client) error
	Delete(ctx context.Context, id uint) error
}

// clientSortColumns are the columns List accepts for user-supplied sorting
var clientSortColumns = map[string]bool{
	"name":              true,
	"status":            true,
	"created_at":        true,
	"next_payment_date": true,
}

type clientRepository struct {
	db *gorm.DB
}

// NewClientRepository creates a new client repository
func NewClientRepository(db *gorm.DB) ClientRepository {
	return &clientRepository{db: db}
}

func (r *clientRepository) FindByID(ctx context.Context, id uint) (*models.Client, error) {
	var client models.Client
	if err := r.db.WithContext(ctx).First(&client, id).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *clientRepository) FindAll(ctx context.Context) ([]models.Client, error) {
	var clients []models.Client
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&clients).Error
	return clients, err
}

func (r *clientRepository) List(ctx context.Context, query *ListQuery) ([]models.Client, int64, error) {
	var clients []models.Client
	var total int64

	db := r.db.WithContext(ctx).Model(&models.Client{})

	if query.Search != "" {
		search := "%" + query.Search + "%"
		db = db.Where("name ILIKE ? OR company ILIKE ? OR email ILIKE ?", search, search, search)
	}

	if query.Filters["status"] != "" {
		db = db.Where("status = ?", query.Filters["status"])
	}

	db.Count(&total)

	db = db.Order(query.OrderClause(clientSortColumns, "created_at DESC"))

	if query.PerPage > 0 {
		db = db.Offset((query.Page - 1) * query.PerPage).Limit(query.PerPage)
	}

	err := db.Find(&clients).Error
	return clients, total, err
}

// FindWithUpcomingPayments returns non-inactive clients whose next payment
// falls inside [from, to], ascending by date.
func (r *clientRepository) FindWithUpcomingPayments(ctx context.Context, from, to time.Time) ([]models.Client, error) {
	var clients []models.Client
	err := r.db.WithContext(ctx).
		Where("next_payment_date BETWEEN ? AND ?", from.Format("2006-01-02"), to.Format("2006-01-02")).
		Where("status <> ?", models.ClientStatusInactive).
		Order("next_payment_date ASC").
		Find(&clients).Error
	return clients, err
}

func (r *clientRepository) Create(ctx context.Context, client *models.Client) error {
	return r.db.WithContext(ctx).Create(client).Error
}

func (r *clientRepository) Update(ctx context.Context, client *models.Client) error {
	return r.db.WithContext(ctx).Save(client).Error
}

func (r *clientRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Client{}, id).Error
}
