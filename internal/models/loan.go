package models

import (
	"time"
)

// Loan represents a tracked loan. In practice a single loan is active at a
// time; the UI works against the most recently created one.
type Loan struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Name             string    `gorm:"not null" json:"name"`
	InitialPrincipal float64   `gorm:"type:decimal(15,2);not null" json:"initial_principal"`
	CurrentBalance   float64   `gorm:"type:decimal(15,2);not null" json:"current_balance"`
	InterestRate     float64   `gorm:"type:decimal(5,2);not null" json:"interest_rate"`
	StartDate        time.Time `gorm:"type:date;not null" json:"start_date"`
	CreatedAt        time.Time `gorm:"index" json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	// Associations
	Payments []LoanPayment `gorm:"foreignKey:LoanID" json:"payments,omitempty"`
}

// TableName specifies the table name for Loan
func (Loan) TableName() string {
	return "loans"
}

// FreedomPercentage returns the fraction of the initial principal already
// repaid, as a percent. Returns 0 for a zero-principal loan.
func (l *Loan) FreedomPercentage() float64 {
	if l.InitialPrincipal == 0 {
		return 0
	}
	return (l.InitialPrincipal - l.CurrentBalance) / l.InitialPrincipal * 100
}

// IsPaidOff returns true once the balance has reached zero
func (l *Loan) IsPaidOff() bool {
	return l.CurrentBalance <= 0
}

// LoanPayment is one row of the append-only payment ledger. Rows are never
// mutated after creation; derived fields are computed at posting time.
type LoanPayment struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	LoanID              uint      `gorm:"not null;index" json:"loan_id"`
	PaymentDate         time.Time `gorm:"type:date;not null;index" json:"payment_date"`
	AmountPaid          float64   `gorm:"type:decimal(15,2);not null" json:"amount_paid"`
	PaymentType         string    `gorm:"default:regular;not null" json:"payment_type"`
	Notes               *string   `json:"notes,omitempty"`
	BalanceAfterPayment float64   `gorm:"type:decimal(15,2);not null" json:"balance_after_payment"`
	InterestAccrued     float64   `gorm:"type:decimal(15,2);not null" json:"interest_accrued"`
	PrincipalPaid       float64   `gorm:"type:decimal(15,2);not null" json:"principal_paid"`
	CreatedAt           time.Time `json:"created_at"`

	// Associations
	Loan Loan `gorm:"foreignKey:LoanID" json:"-"`
}

// TableName specifies the table name for LoanPayment
func (LoanPayment) TableName() string {
	return "loan_payments"
}

// Payment type constants
const (
	LoanPaymentTypeRegular    = "regular"
	LoanPaymentTypeExtra      = "extra"
	LoanPaymentTypeAdjustment = "adjustment"
)

// IsValidLoanPaymentType checks whether a payment type is recognized
func IsValidLoanPaymentType(t string) bool {
	switch t {
	case LoanPaymentTypeRegular, LoanPaymentTypeExtra, LoanPaymentTypeAdjustment:
		return true
	}
	return false
}

// LoanResponse is the JSON response format for loans
type LoanResponse struct {
	ID                uint      `json:"id"`
	Name              string    `json:"name"`
	InitialPrincipal  float64   `json:"initial_principal"`
	CurrentBalance    float64   `json:"current_balance"`
	InterestRate      float64   `json:"interest_rate"`
	StartDate         time.Time `json:"start_date"`
	FreedomPercentage float64   `json:"freedom_percentage"`
	PaidOff           bool      `json:"paid_off"`
	CreatedAt         time.Time `json:"created_at"`
}

// ToResponse converts Loan to LoanResponse
func (l *Loan) ToResponse() LoanResponse {
	return LoanResponse{
		ID:                l.ID,
		Name:              l.Name,
		InitialPrincipal:  l.InitialPrincipal,
		CurrentBalance:    l.CurrentBalance,
		InterestRate:      l.InterestRate,
		StartDate:         l.StartDate,
		FreedomPercentage: l.FreedomPercentage(),
		PaidOff:           l.IsPaidOff(),
		CreatedAt:         l.CreatedAt,
	}
}
