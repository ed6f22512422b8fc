// Package report ana defter transaction'larını müşteri bazında gruplar ve PDF'e döker.
package report

import (
	"github.com/shopspring/decimal"

	"github.com/onerilhan/bookkeeping-api/internal/models"
)

// ClientSection bir müşterinin rapor bölümü
type ClientSection struct {
	ClientID      int64
	ClientName    string
	Transactions  []*models.Transaction
	TotalDeposit  decimal.Decimal
	TotalWithdraw decimal.Decimal
	TotalCharges  decimal.Decimal
}

// Net yatırma eksi çekme
func (c *ClientSection) Net() decimal.Decimal {
	return c.TotalDeposit.Sub(c.TotalWithdraw)
}

// Report render edilecek verinin tamamı
type Report struct {
	StartDate     string
	EndDate       string
	Sections      []*ClientSection
	TotalDeposit  decimal.Decimal
	TotalWithdraw decimal.Decimal
	TotalCharges  decimal.Decimal
}

// TransactionCount rapordaki toplam hareket sayısı
func (r *Report) TransactionCount() int {
	n := 0
	for _, s := range r.Sections {
		n += len(s.Transactions)
	}
	return n
}

// withdrawCharge çekme ücreti: sabit tutar + yüzde
func withdrawCharge(tx *models.Transaction) decimal.Decimal {
	if tx.TransactionType != models.TransactionTypeWithdraw {
		return decimal.Zero
	}
	pct := tx.TransactionAmount.Mul(tx.WithdrawChargesPercentage).Div(decimal.NewFromInt(100))
	return tx.WithdrawChargesAmount.Add(pct).Round(2)
}

// Group transaction'ları ilk görülme sırasına göre müşteri bölümlerine ayırır.
// Girdi repository'den müşteri ve tarih sıralı gelir.
func Group(startDate, endDate string, txs []*models.Transaction) *Report {
	r := &Report{
		StartDate:     startDate,
		EndDate:       endDate,
		Sections:      []*ClientSection{},
		TotalDeposit:  decimal.Zero,
		TotalWithdraw: decimal.Zero,
		TotalCharges:  decimal.Zero,
	}

	index := make(map[int64]*ClientSection)
	for _, tx := range txs {
		section, ok := index[tx.ClientID]
		if !ok {
			section = &ClientSection{
				ClientID:      tx.ClientID,
				ClientName:    tx.ClientName,
				TotalDeposit:  decimal.Zero,
				TotalWithdraw: decimal.Zero,
				TotalCharges:  decimal.Zero,
			}
			index[tx.ClientID] = section
			r.Sections = append(r.Sections, section)
		}
		section.Transactions = append(section.Transactions, tx)

		switch tx.TransactionType {
		case models.TransactionTypeDeposit:
			section.TotalDeposit = section.TotalDeposit.Add(tx.TransactionAmount)
			r.TotalDeposit = r.TotalDeposit.Add(tx.TransactionAmount)
		case models.TransactionTypeWithdraw:
			charge := withdrawCharge(tx)
			section.TotalWithdraw = section.TotalWithdraw.Add(tx.TransactionAmount)
			section.TotalCharges = section.TotalCharges.Add(charge)
			r.TotalWithdraw = r.TotalWithdraw.Add(tx.TransactionAmount)
			r.TotalCharges = r.TotalCharges.Add(charge)
		}
	}
	return r
}
