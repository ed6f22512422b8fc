package models

import "github.com/shopspring/decimal"

// Transaction ana defter hareketi
type Transaction struct {
	ID                        int64           `json:"id"`
	TransactionType           string          `json:"transaction_type"`
	ClientID                  int64           `json:"client_id"`
	ClientName                string          `json:"client_name"`
	BankID                    *int64          `json:"bank_id"`
	BankName                  *string         `json:"bank_name"`
	CardID                    *int64          `json:"card_id"`
	CardName                  *string         `json:"card_name"`
	TransactionAmount         decimal.Decimal `json:"transaction_amount"`
	WithdrawChargesPercentage decimal.Decimal `json:"withdraw_charges_percentage"`
	WithdrawChargesAmount     decimal.Decimal `json:"withdraw_charges_amount"`
	Remark                    *string         `json:"remark"`
	Timestamps
}

// CreateTransactionRequest transaction oluşturma isteği
type CreateTransactionRequest struct {
	TransactionType           string           `json:"transaction_type" validate:"required,oneof=deposit withdraw"`
	ClientID                  int64            `json:"client_id" validate:"required,gt=0"`
	BankID                    *int64           `json:"bank_id" validate:"omitempty,gt=0"`
	CardID                    *int64           `json:"card_id" validate:"omitempty,gt=0"`
	TransactionAmount         decimal.Decimal  `json:"transaction_amount" validate:"gt=0"`
	WithdrawChargesPercentage *decimal.Decimal `json:"withdraw_charges_percentage" validate:"omitempty,gte=0,lte=100"`
	WithdrawChargesAmount     *decimal.Decimal `json:"withdraw_charges_amount" validate:"omitempty,gte=0"`
	Remark                    *string          `json:"remark" validate:"omitempty,max=500"`
}

// UpdateTransactionRequest kısmi güncelleme; gönderilmeyen alanlar korunur
type UpdateTransactionRequest struct {
	ID                        int64            `json:"id" validate:"required,gt=0"`
	TransactionType           *string          `json:"transaction_type" validate:"omitempty,oneof=deposit withdraw"`
	ClientID                  *int64           `json:"client_id" validate:"omitempty,gt=0"`
	BankID                    *int64           `json:"bank_id" validate:"omitempty,gt=0"`
	CardID                    *int64           `json:"card_id" validate:"omitempty,gt=0"`
	TransactionAmount         *decimal.Decimal `json:"transaction_amount" validate:"omitempty,gt=0"`
	WithdrawChargesPercentage *decimal.Decimal `json:"withdraw_charges_percentage" validate:"omitempty,gte=0,lte=100"`
	WithdrawChargesAmount     *decimal.Decimal `json:"withdraw_charges_amount" validate:"omitempty,gte=0"`
	Remark                    *string          `json:"remark" validate:"omitempty,max=500"`
}
