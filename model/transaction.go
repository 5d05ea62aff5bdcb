package model

import "time"

type Transaction struct {
	ID         string    `json:"id"`
	AccountID  string    `json:"account_id"`
	CategoryID string    `json:"category_id"`
	Amount     float64   `json:"amount"`
	Currency   string    `json:"currency"`
	Date       string    `json:"date"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// CreateTransactionRequest defines the payload for recording a transaction.
// Amount is signed: expenses are negative, income positive.
type CreateTransactionRequest struct {
	AccountID  string  `json:"account_id" validate:"required"`
	CategoryID string  `json:"category_id" validate:"required"`
	Amount     float64 `json:"amount" validate:"required"`
	Currency   string  `json:"currency,omitempty"`
	Date       string  `json:"date" validate:"required"`
	Notes      string  `json:"notes,omitempty"`
}

// UpdateTransactionRequest carries the mutable fields of a transaction.
// Pointer fields are omitted from the payload when nil so partial updates
// leave the other fields untouched.
type UpdateTransactionRequest struct {
	AccountID  *string  `json:"account_id,omitempty"`
	CategoryID *string  `json:"category_id,omitempty"`
	Amount     *float64 `json:"amount,omitempty"`
	Currency   *string  `json:"currency,omitempty"`
	Date       *string  `json:"date,omitempty"`
	Notes      *string  `json:"notes,omitempty"`
}
