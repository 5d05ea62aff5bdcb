package model

// Envelope mirrors the API's uniform response wrapper. List endpoints also
// carry a count alongside the data.
type Envelope[T any] struct {
	Data  T   `json:"data"`
	Count int `json:"count,omitempty"`
}
