package calculator

import "github.com/shopspring/decimal"

// Kart ağları
const (
	CardTypeRupay  = "rupay"
	CardTypeMaster = "master"
)

// FinkedaInput finkeda hesaplayıcı girdisi
type FinkedaInput struct {
	Amount            decimal.Decimal `json:"amount"`
	OurRatePercentage decimal.Decimal `json:"our_rate_percentage"`
	FixedCharge       decimal.Decimal `json:"fixed_charge"`
	CardType          string          `json:"card_type" validate:"required,oneof=rupay master"`
}

// FinkedaQuote finkeda hesaplayıcı sonucu
type FinkedaQuote struct {
	Amount             decimal.Decimal `json:"amount"`
	OurRatePercentage  decimal.Decimal `json:"our_rate_percentage"`
	FixedCharge        decimal.Decimal `json:"fixed_charge"`
	CardType           string          `json:"card_type"`
	CardTypePercentage decimal.Decimal `json:"card_type_percentage"`
	GSTPercentage      decimal.Decimal `json:"gst_percentage"`
	FeeAmount          decimal.Decimal `json:"fee_amount"`
	CardSpecificFee    decimal.Decimal `json:"card_specific_fee"`
	TaxAmount          decimal.Decimal `json:"tax_amount"`
	TotalCharges       decimal.Decimal `json:"total_charges"`
	NetPayable         decimal.Decimal `json:"net_payable"`
	PayoutToClient     decimal.Decimal `json:"payout_to_client"`
	SettingsMissing    bool            `json:"settings_missing"`
}

// Finkeda kart ağına özel ücreti ekleyerek toplam masrafı hesaplar.
// cardRate güncel FinkedaSettings satırından okunur.
func Finkeda(in FinkedaInput, cardRate decimal.Decimal) FinkedaQuote {
	amount := clampNonNegative(in.Amount)
	ourRate := clampRate(in.OurRatePercentage)
	fixedCharge := clampNonNegative(in.FixedCharge)
	cardRate = clampRate(cardRate)

	feeAmount := percentOf(amount, ourRate)
	cardSpecificFee := percentOf(amount, cardRate)
	base := feeAmount.Add(fixedCharge).Add(cardSpecificFee)
	taxAmount := percentOf(base, GSTPercentage)
	totalCharges := base.Add(taxAmount)

	return FinkedaQuote{
		Amount:             amount,
		OurRatePercentage:  ourRate,
		FixedCharge:        fixedCharge,
		CardType:           in.CardType,
		CardTypePercentage: cardRate,
		GSTPercentage:      GSTPercentage,
		FeeAmount:          feeAmount.Round(2),
		CardSpecificFee:    cardSpecificFee.Round(2),
		TaxAmount:          taxAmount.Round(2),
		TotalCharges:       totalCharges.Round(2),
		NetPayable:         amount.Add(totalCharges).Round(2),
		PayoutToClient:     amount.Sub(totalCharges).Round(2),
	}
}
