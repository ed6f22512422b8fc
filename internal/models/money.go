package models

import "github.com/shopspring/decimal"

func init() {
	// Para alanları JSON'da string değil sayı olarak dönsün
	decimal.MarshalJSONWithoutQuotes = true
}

// Transaction tipleri (ana ve profiler defteri ortak)
const (
	TransactionTypeDeposit  = "deposit"
	TransactionTypeWithdraw = "withdraw"
)

// Timestamps tüm tablolarda ortak ayrık tarih/saat alanları
type Timestamps struct {
	CreateDate string  `json:"create_date"`
	CreateTime string  `json:"create_time"`
	ModifyDate *string `json:"modify_date"`
	ModifyTime *string `json:"modify_time"`
}

// IDRequest sadece id taşıyan body (delete, mark-done)
type IDRequest struct {
	ID int64 `json:"id" validate:"required,gt=0"`
}

// DeleteResponse silme işlemi yanıtı
type DeleteResponse struct {
	ID      int64 `json:"id"`
	Deleted bool  `json:"deleted"`
}
