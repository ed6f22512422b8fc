package models

import "github.com/shopspring/decimal"

// FinkedaSettings kart ağı başına ücret yüzdeleri (tek güncel satır)
type FinkedaSettings struct {
	ID                     int64           `json:"id"`
	RupayCardChargeAmount  decimal.Decimal `json:"rupay_card_charge_amount"`
	MasterCardChargeAmount decimal.Decimal `json:"master_card_charge_amount"`
	Timestamps
}

// FinkedaSettingsHistory her güncellemede eklenen önceki/yeni değer kaydı
type FinkedaSettingsHistory struct {
	ID                   int64           `json:"id"`
	SettingsID           int64           `json:"settings_id"`
	PreviousRupayAmount  decimal.Decimal `json:"previous_rupay_amount"`
	PreviousMasterAmount decimal.Decimal `json:"previous_master_amount"`
	NewRupayAmount       decimal.Decimal `json:"new_rupay_amount"`
	NewMasterAmount      decimal.Decimal `json:"new_master_amount"`
	CreateDate           string          `json:"create_date"`
	CreateTime           string          `json:"create_time"`
}

// UpdateFinkedaSettingsRequest upsert isteği
type UpdateFinkedaSettingsRequest struct {
	RupayCardChargeAmount  decimal.Decimal `json:"rupay_card_charge_amount" validate:"gte=0,lte=100"`
	MasterCardChargeAmount decimal.Decimal `json:"master_card_charge_amount" validate:"gte=0,lte=100"`
}
