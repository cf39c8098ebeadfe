package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Service is a bookable catalog entry. Name is globally unique (trimmed);
// only active services accept new bookings.
type Service struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Description *string         `json:"description"`
	ImageURL    *string         `json:"image_url"`
	IsActive    bool            `json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
}

// CreateServiceInput carries the validated fields for a new catalog entry.
// Name and Category arrive already trimmed.
type CreateServiceInput struct {
	Name        string
	Category    string
	Price       decimal.Decimal
	Description *string
	ImageURL    *string
	IsActive    *bool
}
