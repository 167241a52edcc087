package repository

import (
	"context"

	"github.com/vaibhav/lifehub-api/internal/models"

	"gorm.io/gorm"
)

// LoanRepository defines the interface for loan data access
type LoanRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Loan, error)
	FindMostRecent(ctx context.Context) (*models.Loan, error)
	FindAll(ctx context.Context) ([]models.Loan, error)
	Create(ctx context.Context, loan *models.Loan) error
	Update(ctx context.Context, loan *models.Loan) error
	UpdateBalance(ctx context.Context, id uint, balance float64) error
	Delete(ctx context.Context, id uint) error
}

type loanRepository struct {
	db *gorm.DB
}

// NewLoanRepository creates a new loan repository
func NewLoanRepository(db *gorm.DB) LoanRepository {
	return &loanRepository{db: db}
}

func (r *loanRepository) FindByID(ctx context.Context, id uint) (*models.Loan, error) {
	var loan models.Loan
	if err := r.db.WithContext(ctx).First(&loan, id).Error; err != nil {
		return nil, err
	}
	return &loan, nil
}

// FindMostRecent returns the latest-created loan; the UI treats it as the
// active one.
func (r *loanRepository) FindMostRecent(ctx context.Context) (*models.Loan, error) {
	var loan models.Loan
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		First(&loan).Error
	if err != nil {
		return nil, err
	}
	return &loan, nil
}

func (r *loanRepository) FindAll(ctx context.Context) ([]models.Loan, error) {
	var loans []models.Loan
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&loans).Error
	return loans, err
}

func (r *loanRepository) Create(ctx context.Context, loan *models.Loan) error {
	return r.db.WithContext(ctx).Create(loan).Error
}

func (r *loanRepository) Update(ctx context.Context, loan *models.Loan) error {
	return r.db.WithContext(ctx).Save(loan).Error
}

// UpdateBalance writes only the running balance. It is deliberately a single
// independent statement: payment posting inserts the ledger row first and
// updates the balance second, with no transaction between them.
func (r *loanRepository) UpdateBalance(ctx context.Context, id uint, balance float64) error {
	return r.db.WithContext(ctx).
		Model(&models.Loan{}).
		Where("id = ?", id).
		Update("current_balance", balance).Error
}

func (r *loanRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Loan{}, id).Error
}

// LoanPaymentRepository defines the interface for the append-only payment
// ledger. There is no update method on purpose.
type LoanPaymentRepository interface {
	Create(ctx context.Context, payment *models.LoanPayment) error
	FindByLoanID(ctx context.Context, loanID uint) ([]models.LoanPayment, error)
	FindLatestByLoanID(ctx context.Context, loanID uint) (*models.LoanPayment, error)
	DeleteByLoanID(ctx context.Context, loanID uint) error
}

type loanPaymentRepository struct {
	db *gorm.DB
}

// NewLoanPaymentRepository creates a new loan payment repository
func NewLoanPaymentRepository(db *gorm.DB) LoanPaymentRepository {
	return &loanPaymentRepository{db: db}
}

func (r *loanPaymentRepository) Create(ctx context.Context, payment *models.LoanPayment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

func (r *loanPaymentRepository) FindByLoanID(ctx context.Context, loanID uint) ([]models.LoanPayment, error) {
	var payments []models.LoanPayment
	err := r.db.WithContext(ctx).
		Where("loan_id = ?", loanID).
		Order("payment_date DESC, created_at DESC").
		Find(&payments).Error
	return payments, err
}

// FindLatestByLoanID returns the most recent ledger row, used as the interest
// accrual reference date for the next posting.
func (r *loanPaymentRepository) FindLatestByLoanID(ctx context.Context, loanID uint) (*models.LoanPayment, error) {
	var payment models.LoanPayment
	err := r.db.WithContext(ctx).
		Where("loan_id = ?", loanID).
		Order("payment_date DESC").
		First(&payment).Error
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// DeleteByLoanID removes a loan's ledger when the loan itself is deleted
func (r *loanPaymentRepository) DeleteByLoanID(ctx context.Context, loanID uint) error {
	return r.db.WithContext(ctx).
		Where("loan_id = ?", loanID).
		Delete(&models.LoanPayment{}).Error
}
