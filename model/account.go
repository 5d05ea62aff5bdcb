package model

import "time"

type Account struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Type            string    `json:"type"`
	Currency        string    `json:"currency"`
	StartingBalance float64   `json:"starting_balance"`
	CreatedAt       time.Time `json:"created_at"`
}

type CreateAccountRequest struct {
	Name            string  `json:"name" validate:"required"`
	Type            string  `json:"type" validate:"required"`
	Currency        string  `json:"currency,omitempty"`
	StartingBalance float64 `json:"starting_balance,omitempty"`
}
