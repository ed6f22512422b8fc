package models

// Bank ana defterdeki banka kaydı
type Bank struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	TransactionCount int64  `json:"transaction_count"`
	Timestamps
}

// CreateBankRequest banka oluşturma isteği
type CreateBankRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

// UpdateBankRequest banka güncelleme isteği; isim her zaman tam gönderilir
type UpdateBankRequest struct {
	ID   int64  `json:"id" validate:"required,gt=0"`
	Name string `json:"name" validate:"required,max=100"`
}
