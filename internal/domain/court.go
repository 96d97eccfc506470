package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Court struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Surface    string          `json:"surface"`
	Indoor     bool            `json:"indoor"`
	HourlyRate decimal.Decimal `json:"hourly_rate"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

type CreateCourtInput struct {
	Name       string
	Surface    string
	Indoor     bool
	HourlyRate decimal.Decimal
}

type UpdateCourtInput struct {
	Name       *string
	Surface    *string
	Indoor     *bool
	HourlyRate *decimal.Decimal
}
