package model

import "time"

// Budget is a per-category spending cap for one month.
type Budget struct {
	ID         string    `json:"id"`
	CategoryID string    `json:"category_id"`
	Month      int       `json:"month"`
	Year       int       `json:"year"`
	Amount     float64   `json:"amount"`
	CreatedAt  time.Time `json:"created_at"`
}

type SetBudgetRequest struct {
	CategoryID string  `json:"category_id" validate:"required"`
	Month      int     `json:"month" validate:"required,min=1,max=12"`
	Year       int     `json:"year" validate:"required"`
	Amount     float64 `json:"amount" validate:"required,gt=0"`
}
