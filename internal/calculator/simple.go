package calculator

import "github.com/shopspring/decimal"

// SimpleInput basit hesaplayıcı girdisi; oranlar yüzde
type SimpleInput struct {
	Amount               decimal.Decimal `json:"amount"`
	BankRatePercentage   decimal.Decimal `json:"bank_rate_percentage"`
	OurRatePercentage    decimal.Decimal `json:"our_rate_percentage"`
	PlatformChargeAmount decimal.Decimal `json:"platform_charge_amount"`
}

// SimpleQuote basit hesaplayıcı sonucu. Markup ve kâr negatif olabilir.
type SimpleQuote struct {
	Amount               decimal.Decimal `json:"amount"`
	BankRatePercentage   decimal.Decimal `json:"bank_rate_percentage"`
	OurRatePercentage    decimal.Decimal `json:"our_rate_percentage"`
	PlatformChargeAmount decimal.Decimal `json:"platform_charge_amount"`
	GSTPercentage        decimal.Decimal `json:"gst_percentage"`
	GSTOnBank            decimal.Decimal `json:"gst_on_bank"`
	BankWithGST          decimal.Decimal `json:"bank_with_gst"`
	Markup               decimal.Decimal `json:"markup"`
	GrossEarn            decimal.Decimal `json:"gross_earn"`
	Payable              decimal.Decimal `json:"payable"`
	NetProfit            decimal.Decimal `json:"net_profit"`
}

// Simple banka oranı + GST üzerine markup hesaplar.
// Girdiler sınırda kırpılır; markup yüzde puanıdır.
func Simple(in SimpleInput) SimpleQuote {
	amount := clampNonNegative(in.Amount)
	bankRate := clampRate(in.BankRatePercentage)
	ourRate := clampRate(in.OurRatePercentage)
	platformCharge := clampNonNegative(in.PlatformChargeAmount)

	gstOnBank := percentOf(bankRate, GSTPercentage)
	bankWithGST := bankRate.Add(gstOnBank)
	markup := ourRate.Sub(bankWithGST)
	grossEarn := percentOf(amount, markup)
	payable := amount.Sub(percentOf(amount, ourRate))
	netProfit := grossEarn.Sub(platformCharge)

	return SimpleQuote{
		Amount:               amount,
		BankRatePercentage:   bankRate,
		OurRatePercentage:    ourRate,
		PlatformChargeAmount: platformCharge,
		GSTPercentage:        GSTPercentage,
		GSTOnBank:            gstOnBank.Round(2),
		BankWithGST:          bankWithGST.Round(2),
		Markup:               markup.Round(2),
		GrossEarn:            grossEarn.Round(2),
		Payable:              payable.Round(2),
		NetProfit:            netProfit.Round(2),
	}
}
