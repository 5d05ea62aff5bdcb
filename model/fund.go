package model

import "time"

// Fund is a savings fund with a target amount the user contributes toward.
type Fund struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	TargetAmount  float64   `json:"target_amount"`
	CurrentAmount float64   `json:"current_amount"`
	CreatedAt     time.Time `json:"created_at"`
}

type CreateFundRequest struct {
	Name         string  `json:"name" validate:"required"`
	TargetAmount float64 `json:"target_amount" validate:"required,gt=0"`
}
