package models

import "github.com/shopspring/decimal"

// TransactionFilter ana defter listeleme filtreleri; boş alan uygulanmaz
type TransactionFilter struct {
	TransactionType string
	MinAmount       *decimal.Decimal
	MaxAmount       *decimal.Decimal
	StartDate       string
	EndDate         string
	BankIDs         []int64
	ClientIDs       []int64
	CardIDs         []int64
}

// ProfileFilter profile listeleme filtreleri. Balance filtreleri kalan bakiyeye uygulanır.
type ProfileFilter struct {
	Status              string
	CarryForwardEnabled *bool
	ClientID            *int64
	BankID              *int64
	MinBalance          *decimal.Decimal
	MaxBalance          *decimal.Decimal
	MinDepositAmount    *decimal.Decimal
	MaxDepositAmount    *decimal.Decimal
	// Dashboard sadece active ve kalan bakiyesi pozitif profiller
	Dashboard bool
}

// ProfilerTransactionFilter profiler hareket filtreleri
type ProfilerTransactionFilter struct {
	ProfileID       *int64
	TransactionType string
	StartDate       string
	EndDate         string
}
