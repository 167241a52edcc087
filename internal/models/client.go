package models

import (
	"time"
)

// Client represents a client/revenue record
type Client struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	Name             string     `gorm:"not null" json:"name"`
	Company          *string    `json:"company,omitempty"`
	Email            *string    `json:"email,omitempty"`
	Phone            *string    `json:"phone,omitempty"`
	ProductService   *string    `json:"product_service,omitempty"`
	SetupFee         *float64   `gorm:"type:decimal(15,2)" json:"setup_fee,omitempty"`
	ContractValue    *float64   `gorm:"type:decimal(15,2)" json:"contract_value,omitempty"`
	PaymentFrequency string     `gorm:"default:monthly;not null" json:"payment_frequency"`
	NextPaymentDate  *time.Time `gorm:"type:date;index" json:"next_payment_date,omitempty"`
	Status           string     `gorm:"default:pending;not null;index" json:"status"`
	Notes            *string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt        time.Time  `gorm:"index" json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// TableName specifies the table name for Client
func (Client) TableName() string {
	return "clients"
}

// Client status constants
const (
	ClientStatusActive   = "active"
	ClientStatusPending  = "pending"
	ClientStatusInactive = "inactive"
)

// Payment frequency constants
const (
	FrequencyMonthly   = "monthly"
	FrequencyQuarterly = "quarterly"
	FrequencyAnnual    = "annual"
	FrequencyOneTime   = "one-time"
)

// IsActive returns true if the client is in active status
func (c *Client) IsActive() bool {
	return c.Status == ClientStatusActive
}

// AnnualRecurringRevenue returns this client's contribution to ARR.
// Inactive clients and one-time contracts contribute zero.
func (c *Client) AnnualRecurringRevenue() float64 {
	if c.ContractValue == nil || c.Status == ClientStatusInactive {
		return 0
	}
	switch c.PaymentFrequency {
	case FrequencyMonthly:
		return *c.ContractValue * 12
	case FrequencyQuarterly:
		return *c.ContractValue * 4
	case FrequencyAnnual:
		return *c.ContractValue
	default:
		return 0
	}
}
