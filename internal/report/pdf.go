package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
)

var columns = []struct {
	title string
	width float64
}{
	{"Date", 28},
	{"Type", 22},
	{"Bank", 35},
	{"Card", 35},
	{"Amount", 30},
	{"Charges", 30},
}

// Render raporu A4 PDF olarak üretir
func Render(r *Report, generatedAt time.Time) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Transaction Report", false)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Transaction Report", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Period: %s - %s", r.StartDate, r.EndDate), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, "Generated: "+generatedAt.Format("2006-01-02 15:04"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	if len(r.Sections) == 0 {
		pdf.CellFormat(0, 8, "No transactions in the selected period.", "", 1, "L", false, 0, "")
	}

	for _, section := range r.Sections {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 8, tr(section.ClientName), "", 1, "L", false, 0, "")

		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(230, 230, 230)
		for _, c := range columns {
			pdf.CellFormat(c.width, 7, c.title, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Helvetica", "", 9)
		for _, tx := range section.Transactions {
			cells := []string{
				tx.CreateDate,
				tx.TransactionType,
				tr(deref(tx.BankName)),
				tr(deref(tx.CardName)),
				tx.TransactionAmount.StringFixed(2),
				withdrawCharge(tx).StringFixed(2),
			}
			for i, c := range columns {
				align := "L"
				if i >= 4 {
					align = "R"
				}
				pdf.CellFormat(c.width, 6, cells[i], "1", 0, align, false, 0, "")
			}
			pdf.Ln(-1)
		}

		pdf.SetFont("Helvetica", "I", 9)
		pdf.CellFormat(0, 6, fmt.Sprintf("Deposit: %s   Withdraw: %s   Charges: %s   Net: %s",
			section.TotalDeposit.StringFixed(2),
			section.TotalWithdraw.StringFixed(2),
			section.TotalCharges.StringFixed(2),
			section.Net().StringFixed(2)), "", 1, "R", false, 0, "")
		pdf.Ln(3)
	}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 7, fmt.Sprintf("Total deposit: %s   Total withdraw: %s   Total charges: %s",
		r.TotalDeposit.StringFixed(2),
		r.TotalWithdraw.StringFixed(2),
		r.TotalCharges.StringFixed(2)), "T", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf oluşturulamadı: %w", err)
	}
	return buf.Bytes(), nil
}

func deref(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

// FileName rapor dosya adı
func FileName(startDate, endDate string) string {
	return fmt.Sprintf("transaction-report_%s_%s.pdf", startDate, endDate)
}
