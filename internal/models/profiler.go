package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Profile durumları; sadece active -> done geçişi vardır
const (
	ProfileStatusActive = "active"
	ProfileStatusDone   = "done"
)

// ProfilerBank profiler defterindeki banka
type ProfilerBank struct {
	ID           int64  `json:"id"`
	BankName     string `json:"bank_name"`
	ProfileCount int64  `json:"profile_count"`
	Timestamps
}

type CreateProfilerBankRequest struct {
	BankName string `json:"bank_name" validate:"required,max=100"`
}

type UpdateProfilerBankRequest struct {
	ID       int64  `json:"id" validate:"required,gt=0"`
	BankName string `json:"bank_name" validate:"required,max=100"`
}

// ProfilerClient profiler defteri müşterisi
type ProfilerClient struct {
	ID                int64   `json:"id"`
	Name              string  `json:"name"`
	Email             *string `json:"email"`
	Mobile            *string `json:"mobile"`
	AadhaarCardNumber *string `json:"aadhaar_card_number"`
	Notes             *string `json:"notes"`
	ProfileCount      int64   `json:"profile_count"`
	Timestamps
}

type CreateProfilerClientRequest struct {
	Name              string  `json:"name" validate:"required,max=100"`
	Email             *string `json:"email" validate:"omitempty,email,max=100"`
	Mobile            *string `json:"mobile" validate:"omitempty,max=20"`
	AadhaarCardNumber *string `json:"aadhaar_card_number" validate:"omitempty,len=12,numeric"`
	Notes             *string `json:"notes"`
}

type UpdateProfilerClientRequest struct {
	ID                int64   `json:"id" validate:"required,gt=0"`
	Name              *string `json:"name" validate:"omitempty,min=1,max=100"`
	Email             *string `json:"email" validate:"omitempty,email,max=100"`
	Mobile            *string `json:"mobile" validate:"omitempty,max=20"`
	AadhaarCardNumber *string `json:"aadhaar_card_number" validate:"omitempty,len=12,numeric"`
	Notes             *string `json:"notes"`
}

// ProfilerProfile bir müşterinin kart bazlı planlı yatırım profili.
// RemainingBalance saklanmaz, her okumada hesaplanır.
type ProfilerProfile struct {
	ID                      int64           `json:"id"`
	ClientID                int64           `json:"client_id"`
	ClientName              string          `json:"client_name"`
	BankID                  int64           `json:"bank_id"`
	BankName                string          `json:"bank_name"`
	CreditCardNumber        string          `json:"credit_card_number"`
	PrePlannedDepositAmount decimal.Decimal `json:"pre_planned_deposit_amount"`
	CurrentBalance          decimal.Decimal `json:"current_balance"`
	TotalWithdrawnAmount    decimal.Decimal `json:"total_withdrawn_amount"`
	RemainingBalance        decimal.Decimal `json:"remaining_balance"`
	CarryForwardEnabled     bool            `json:"carry_forward_enabled"`
	Status                  string          `json:"status"`
	MarkedDoneAt            *time.Time      `json:"marked_done_at"`
	Notes                   *string         `json:"notes"`
	TransactionCount        int64           `json:"transaction_count"`
	Timestamps
}

// CreateProfileRequest profile oluşturma isteği
type CreateProfileRequest struct {
	ClientID                int64           `json:"client_id" validate:"required,gt=0"`
	BankID                  int64           `json:"bank_id" validate:"required,gt=0"`
	CreditCardNumber        string          `json:"credit_card_number" validate:"required,max=25"`
	PrePlannedDepositAmount decimal.Decimal `json:"pre_planned_deposit_amount" validate:"gt=0"`
	CarryForwardEnabled     bool            `json:"carry_forward_enabled"`
	Notes                   *string         `json:"notes" validate:"omitempty,max=1000"`
}

// UpdateProfileRequest kısmi güncelleme. client_id, bakiyeler ve status güncellenemez.
type UpdateProfileRequest struct {
	ID                      int64            `json:"id" validate:"required,gt=0"`
	BankID                  *int64           `json:"bank_id" validate:"omitempty,gt=0"`
	CreditCardNumber        *string          `json:"credit_card_number" validate:"omitempty,min=1,max=25"`
	PrePlannedDepositAmount *decimal.Decimal `json:"pre_planned_deposit_amount" validate:"omitempty,gt=0"`
	CarryForwardEnabled     *bool            `json:"carry_forward_enabled"`
	Notes                   *string          `json:"notes" validate:"omitempty,max=1000"`
}

// ProfilerTransaction bir profile uygulanan yatırma/çekme
type ProfilerTransaction struct {
	ID                        int64           `json:"id"`
	ProfileID                 int64           `json:"profile_id"`
	ClientName                string          `json:"client_name"`
	BankName                  string          `json:"bank_name"`
	CreditCardNumber          string          `json:"credit_card_number"`
	TransactionType           string          `json:"transaction_type"`
	Amount                    decimal.Decimal `json:"amount"`
	WithdrawChargesPercentage decimal.Decimal `json:"withdraw_charges_percentage"`
	WithdrawChargesAmount     decimal.Decimal `json:"withdraw_charges_amount"`
	Notes                     *string         `json:"notes"`
	Timestamps
}

// CreateProfilerTransactionRequest profile hareket ekleme isteği
type CreateProfilerTransactionRequest struct {
	ProfileID                 int64            `json:"profile_id" validate:"required,gt=0"`
	TransactionType           string           `json:"transaction_type" validate:"required,oneof=deposit withdraw"`
	Amount                    decimal.Decimal  `json:"amount" validate:"gt=0"`
	WithdrawChargesPercentage *decimal.Decimal `json:"withdraw_charges_percentage" validate:"omitempty,gte=0,lte=100"`
	WithdrawChargesAmount     *decimal.Decimal `json:"withdraw_charges_amount" validate:"omitempty,gte=0"`
	Notes                     *string          `json:"notes" validate:"omitempty,max=1000"`
}

// ProfilerTransactionResult hareket ve güncel profile birlikte döner
type ProfilerTransactionResult struct {
	Transaction *ProfilerTransaction `json:"transaction"`
	Profile     *ProfilerProfile     `json:"profile"`
}
