package models

// Client ana defter müşterisi
type Client struct {
	ID               int64   `json:"id"`
	Name             string  `json:"name"`
	Email            *string `json:"email"`
	Mobile           *string `json:"mobile"`
	Address          *string `json:"address"`
	Notes            *string `json:"notes"`
	TransactionCount int64   `json:"transaction_count"`
	Timestamps
}

// CreateClientRequest müşteri oluşturma isteği
type CreateClientRequest struct {
	Name    string  `json:"name" validate:"required,max=100"`
	Email   *string `json:"email" validate:"omitempty,email,max=100"`
	Mobile  *string `json:"mobile" validate:"omitempty,max=20"`
	Address *string `json:"address" validate:"omitempty,max=500"`
	Notes   *string `json:"notes"`
}

// UpdateClientRequest kısmi güncelleme; nil alanlar eski değerini korur
type UpdateClientRequest struct {
	ID      int64   `json:"id" validate:"required,gt=0"`
	Name    *string `json:"name" validate:"omitempty,min=1,max=100"`
	Email   *string `json:"email" validate:"omitempty,email,max=100"`
	Mobile  *string `json:"mobile" validate:"omitempty,max=20"`
	Address *string `json:"address" validate:"omitempty,max=500"`
	Notes   *string `json:"notes"`
}
