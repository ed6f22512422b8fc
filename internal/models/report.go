package models

// GenerateReportRequest rapor isteği; tarihler YYYY-MM-DD
type GenerateReportRequest struct {
	StartDate string `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"endDate" validate:"required,datetime=2006-01-02"`
	ClientID  *int64 `json:"clientId" validate:"omitempty,gt=0"`
}

// ReportResponse base64 PDF içeriği
type ReportResponse struct {
	PDFContent       string `json:"pdfContent"`
	FileName         string `json:"fileName"`
	TransactionCount int    `json:"transaction_count"`
	ClientCount      int    `json:"client_count"`
}
