package calculator

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, field string) {
	t.Helper()
	assert.True(t, d(want).Equal(got), "%s: want %s, got %s", field, want, got)
}

func TestSimple_Example(t *testing.T) {
	q := Simple(SimpleInput{
		Amount:               d("100000"),
		BankRatePercentage:   d("1.5"),
		OurRatePercentage:    d("3"),
		PlatformChargeAmount: d("200"),
	})

	assertDecimal(t, "0.27", q.GSTOnBank, "gst_on_bank")
	assertDecimal(t, "1.77", q.BankWithGST, "bank_with_gst")
	assertDecimal(t, "1.23", q.Markup, "markup")
	assertDecimal(t, "1230", q.GrossEarn, "gross_earn")
	assertDecimal(t, "97000", q.Payable, "payable")
	assertDecimal(t, "1030", q.NetProfit, "net_profit")
	assertDecimal(t, "18", q.GSTPercentage, "gst_percentage")
}

func TestSimple_NegativeMarkupIsRepresentable(t *testing.T) {
	for _, amount := range []string{"1", "500", "250000"} {
		q := Simple(SimpleInput{Amount: d(amount), BankRatePercentage: d("10"), OurRatePercentage: decimal.Zero})

		assert.True(t, q.Markup.IsNegative(), "amount=%s", amount)
		assert.True(t, q.NetProfit.IsNegative(), "amount=%s", amount)
		assertDecimal(t, "-11.8", q.Markup, "markup")
	}
}

func TestSimple_ClampsInputs(t *testing.T) {
	q := Simple(SimpleInput{
		Amount:               d("-50"),
		BankRatePercentage:   d("-3"),
		OurRatePercentage:    d("250"),
		PlatformChargeAmount: d("-10"),
	})

	assertDecimal(t, "0", q.Amount, "amount")
	assertDecimal(t, "0", q.BankRatePercentage, "bank_rate_percentage")
	assertDecimal(t, "100", q.OurRatePercentage, "our_rate_percentage")
	assertDecimal(t, "0", q.PlatformChargeAmount, "platform_charge_amount")
	assertDecimal(t, "0", q.NetProfit, "net_profit")
}

// Tam yarım kuruşlar yukarı yuvarlanır
func TestSimple_HalfPaisaRoundsUp(t *testing.T) {
	q := Simple(SimpleInput{Amount: d("1.15"), OurRatePercentage: d("50")})

	assertDecimal(t, "0.58", q.Payable, "payable")
}

func TestFinkeda_Example(t *testing.T) {
	q := Finkeda(FinkedaInput{
		Amount:            d("10000"),
		OurRatePercentage: d("2"),
		FixedCharge:       d("50"),
		CardType:          CardTypeRupay,
	}, d("1"))

	assertDecimal(t, "200", q.FeeAmount, "fee_amount")
	assertDecimal(t, "100", q.CardSpecificFee, "card_specific_fee")
	assertDecimal(t, "63", q.TaxAmount, "tax_amount")
	assertDecimal(t, "413", q.TotalCharges, "total_charges")
	assertDecimal(t, "10413", q.NetPayable, "net_payable")
	assertDecimal(t, "9587", q.PayoutToClient, "payout_to_client")
	assertDecimal(t, "1", q.CardTypePercentage, "card_type_percentage")
	assert.Equal(t, CardTypeRupay, q.CardType)
}

func TestFinkeda_ZeroCardRate(t *testing.T) {
	q := Finkeda(FinkedaInput{Amount: d("1000"), OurRatePercentage: d("1"), CardType: CardTypeMaster}, decimal.Zero)

	assertDecimal(t, "0", q.CardSpecificFee, "card_specific_fee")
	assertDecimal(t, "11.8", q.TotalCharges, "total_charges")
}

func TestFinkeda_HalfPaisaRoundsUp(t *testing.T) {
	q := Finkeda(FinkedaInput{Amount: d("100.5"), OurRatePercentage: d("1"), CardType: CardTypeRupay}, decimal.Zero)

	// 100.5 * %1 = 1.005
	assertDecimal(t, "1.01", q.FeeAmount, "fee_amount")
	// (1.005 * 1.18) = 1.1859
	assertDecimal(t, "1.19", q.TotalCharges, "total_charges")
	assertDecimal(t, "99.31", q.PayoutToClient, "payout_to_client")
}
