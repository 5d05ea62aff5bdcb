package model

import "time"

// Category types mirror how the dashboard buckets cashflow. Core expense
// categories feed the emergency-fund analytics.
const (
	CategoryTypeIncome  = "income"
	CategoryTypeExpense = "expense"
	CategoryTypeSaving  = "saving"
)

type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	IsCore    bool      `json:"is_core"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateCategoryRequest struct {
	Name   string `json:"name" validate:"required"`
	Type   string `json:"type" validate:"required,oneof=income expense saving"`
	IsCore bool   `json:"is_core,omitempty"`
}
