package repository

import "github.com/onerilhan/bookkeeping-api/internal/models"

var (
	createBank = models.CreateBankRequest{Name: "HDFC Bank"}
	updateBank = models.UpdateBankRequest{ID: 5, Name: "Axis Bank"}
)

func strPtr(s string) *string { return &s }
