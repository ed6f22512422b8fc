package models

// Card kart tipi kaydı (Rupay, Visa ...)
type Card struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	TransactionCount int64  `json:"transaction_count"`
	Timestamps
}

type CreateCardRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

type UpdateCardRequest struct {
	ID   int64  `json:"id" validate:"required,gt=0"`
	Name string `json:"name" validate:"required,max=100"`
}
