package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vaibhav/lifehub-api/internal/finance"
	"github.com/vaibhav/lifehub-api/internal/models"
	"github.com/vaibhav/lifehub-api/internal/repository"
	"gorm.io/gorm"
)

// LoanService manages loans, their append-only payment ledger and payoff
// projections.
type LoanService struct {
	loanRepo    repository.LoanRepository
	paymentRepo repository.LoanPaymentRepository
}

// NewLoanService creates a new loan service
func NewLoanService(loanRepo repository.LoanRepository, paymentRepo repository.LoanPaymentRepository) *LoanService {
	return &LoanService{
		loanRepo:    loanRepo,
		paymentRepo: paymentRepo,
	}
}

// CreateLoanInput carries the fields for creating a loan
type CreateLoanInput struct {
	Name             string    `json:"name" binding:"required"`
	InitialPrincipal float64   `json:"initial_principal" binding:"required,gt=0"`
	InterestRate     float64   `json:"interest_rate" binding:"gte=0"`
	StartDate        time.Time `json:"start_date" binding:"required"`
}

// CreateLoan creates a loan with the balance starting at the full principal
func (s *LoanService) CreateLoan(ctx context.Context, input CreateLoanInput) (*models.Loan, error) {
	loan := &models.Loan{
		Name:             input.Name,
		InitialPrincipal: input.InitialPrincipal,
		CurrentBalance:   input.InitialPrincipal,
		InterestRate:     input.InterestRate,
		StartDate:        input.StartDate,
	}
	if err := s.loanRepo.Create(ctx, loan); err != nil {
		return nil, fmt.Errorf("creating loan: %w", err)
	}
	return loan, nil
}

// GetLoan returns a loan by ID
func (s *LoanService) GetLoan(ctx context.Context, id uint) (*models.Loan, error) {
	loan, err := s.loanRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return loan, nil
}

// GetActiveLoan returns the most recently created loan, which the dashboard
// treats as the active one. Returns ErrNotFound when no loan exists yet.
func (s *LoanService) GetActiveLoan(ctx context.Context) (*models.Loan, error) {
	loan, err := s.loanRepo.FindMostRecent(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return loan, nil
}

// ListLoans returns all loans, newest first
func (s *LoanService) ListLoans(ctx context.Context) ([]models.Loan, error) {
	return s.loanRepo.FindAll(ctx)
}

// UpdateLoanInput carries the updatable loan fields
type UpdateLoanInput struct {
	Name         *string  `json:"name"`
	InterestRate *float64 `json:"interest_rate"`
}

// UpdateLoan updates loan metadata. The balance is never edited directly;
// it only moves through posted payments.
func (s *LoanService) UpdateLoan(ctx context.Context, id uint, input UpdateLoanInput) (*models.Loan, error) {
	loan, err := s.GetLoan(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.Name != nil {
		loan.Name = *input.Name
	}
	if input.InterestRate != nil {
		loan.InterestRate = *input.InterestRate
	}
	if err := s.loanRepo.Update(ctx, loan); err != nil {
		return nil, fmt.Errorf("updating loan %d: %w", id, err)
	}
	return loan, nil
}

// DeleteLoan removes a loan and its payment ledger
func (s *LoanService) DeleteLoan(ctx context.Context, id uint) error {
	if _, err := s.GetLoan(ctx, id); err != nil {
		return err
	}
	if err := s.paymentRepo.DeleteByLoanID(ctx, id); err != nil {
		return fmt.Errorf("deleting payments for loan %d: %w", id, err)
	}
	return s.loanRepo.Delete(ctx, id)
}

// PostPaymentInput carries the fields for posting a payment
type PostPaymentInput struct {
	PaymentDate time.Time `json:"payment_date" binding:"required"`
	AmountPaid  float64   `json:"amount_paid" binding:"required,gt=0"`
	PaymentType string    `json:"payment_type"`
	Notes       *string   `json:"notes"`
}

// PostPayment appends a payment to the ledger and moves the balance. Interest
// accrues from the previous payment date, or the loan start date for the
// first payment. The ledger insert and the balance update are two independent
// statements; a crash between them leaves the ledger row authoritative.
func (s *LoanService) PostPayment(ctx context.Context, loanID uint, input PostPaymentInput) (*models.LoanPayment, error) {
	loan, err := s.GetLoan(ctx, loanID)
	if err != nil {
		return nil, err
	}

	accrualStart := loan.StartDate
	latest, err := s.paymentRepo.FindLatestByLoanID(ctx, loanID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if latest != nil {
		accrualStart = latest.PaymentDate
	}

	elapsed := finance.DaysBetween(accrualStart, input.PaymentDate)
	breakdown := finance.BreakdownPayment(loan.CurrentBalance, loan.InterestRate, elapsed, input.AmountPaid)

	paymentType := input.PaymentType
	if paymentType == "" {
		paymentType = models.LoanPaymentTypeRegular
	}
	if !models.IsValidLoanPaymentType(paymentType) {
		return nil, fmt.Errorf("%w: unknown payment type %q", ErrValidation, paymentType)
	}

	payment := &models.LoanPayment{
		LoanID:              loanID,
		PaymentDate:         input.PaymentDate,
		AmountPaid:          input.AmountPaid,
		PaymentType:         paymentType,
		Notes:               input.Notes,
		BalanceAfterPayment: breakdown.NewBalance,
		InterestAccrued:     breakdown.InterestAccrued,
		PrincipalPaid:       breakdown.PrincipalPaid,
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("recording payment: %w", err)
	}

	if err := s.loanRepo.UpdateBalance(ctx, loanID, breakdown.NewBalance); err != nil {
		return nil, fmt.Errorf("updating loan balance: %w", err)
	}

	return payment, nil
}

// ListPayments returns the payment ledger for a loan, newest first
func (s *LoanService) ListPayments(ctx context.Context, loanID uint) ([]models.LoanPayment, error) {
	if _, err := s.GetLoan(ctx, loanID); err != nil {
		return nil, err
	}
	return s.paymentRepo.FindByLoanID(ctx, loanID)
}

// ProjectPayoffInput carries the scenario knobs for a payoff projection
type ProjectPayoffInput struct {
	MonthlyPayment float64 `json:"monthly_payment" binding:"required,gt=0"`
	ExtraPayment   float64 `json:"extra_payment" binding:"gte=0"`
}

// ProjectPayoff simulates paying the loan off at a fixed monthly amount,
// optionally with an extra monthly payment, and reports the interest and
// months saved by the extra.
func (s *LoanService) ProjectPayoff(ctx context.Context, loanID uint, input ProjectPayoffInput) (*finance.PayoffProjection, error) {
	loan, err := s.GetLoan(ctx, loanID)
	if err != nil {
		return nil, err
	}
	proj, err := finance.ProjectPayoff(loan.CurrentBalance, loan.InterestRate, input.MonthlyPayment, input.ExtraPayment, time.Now())
	if err != nil {
		if errors.Is(err, finance.ErrNonAmortizing) {
			return nil, ErrNonAmortizing
		}
		return nil, err
	}
	return proj, nil
}

// SuggestedEMI returns the EMI that would clear the current balance over the
// given number of months at the loan's rate.
func (s *LoanService) SuggestedEMI(ctx context.Context, loanID uint, months int) (float64, error) {
	if months <= 0 {
		return 0, fmt.Errorf("%w: months must be positive", ErrValidation)
	}
	loan, err := s.GetLoan(ctx, loanID)
	if err != nil {
		return 0, err
	}
	return finance.EMI(loan.CurrentBalance, loan.InterestRate, months), nil
}
