// Package calculator ücret hesaplayıcıları; saf fonksiyonlar, I/O yok.
// Tutarlar decimal tutulur, sonuçlar kuruşa half-up yuvarlanır.
package calculator

import "github.com/shopspring/decimal"

var (
	// GSTPercentage sabit vergi oranı
	GSTPercentage = decimal.NewFromInt(18)

	hundred = decimal.NewFromInt(100)
)

// clampRate oranı [0,100] aralığına çeker
func clampRate(v decimal.Decimal) decimal.Decimal {
	return decimal.Min(decimal.Max(v, decimal.Zero), hundred)
}

// clampNonNegative negatif tutarları sıfırlar
func clampNonNegative(v decimal.Decimal) decimal.Decimal {
	return decimal.Max(v, decimal.Zero)
}

// percentOf v'nin rate yüzdesi
func percentOf(v, rate decimal.Decimal) decimal.Decimal {
	return v.Mul(rate).Div(hundred)
}
