// Package ledger profiler profile bakiyelerinin saf hesap kurallarını içerir.
// Persistence yoktur; repository katmanı aynı kuralları SQL'e yansıtır.
package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/onerilhan/bookkeeping-api/internal/middleware/errors"
	"github.com/onerilhan/bookkeeping-api/internal/models"
)

// Balances profile'ın iki koşan toplamı. İkisi de sadece artar.
type Balances struct {
	Current   decimal.Decimal
	Withdrawn decimal.Decimal
}

// Remaining her zaman hesaplanır, saklanmaz. Negatif olabilir (müşteri açıkta).
func (b Balances) Remaining() decimal.Decimal {
	return b.Current.Sub(b.Withdrawn)
}

// profiler_profiles koşan toplam kolonları
const (
	ColumnCurrentBalance = "current_balance"
	ColumnTotalWithdrawn = "total_withdrawn_amount"
)

// Posting doğrulanmış bir hareketin bakiyeye etkisi: hangi toplam, ne kadar artar.
// Repository UPDATE'i sadece Posting'den kurar.
type Posting struct {
	Column string
	Amount decimal.Decimal
}

// NewPosting hareketi doğrular. Tutar pozitif, tip deposit veya withdraw olmalı.
// Plan tutarı üst sınır değildir, fazla yatırma kabul edilir.
func NewPosting(transactionType string, amount decimal.Decimal) (Posting, error) {
	if !amount.IsPositive() {
		return Posting{}, errors.NewValidationError("amount", amount.String(), "0'dan büyük")
	}

	switch transactionType {
	case models.TransactionTypeDeposit:
		return Posting{Column: ColumnCurrentBalance, Amount: amount}, nil
	case models.TransactionTypeWithdraw:
		return Posting{Column: ColumnTotalWithdrawn, Amount: amount}, nil
	default:
		return Posting{}, errors.NewValidationError("transaction_type", transactionType, "deposit veya withdraw")
	}
}

// Post posting'i bellekteki bakiyelere uygular; SQL tarafındaki artışın aynısı
func (b Balances) Post(p Posting) Balances {
	switch p.Column {
	case ColumnCurrentBalance:
		b.Current = b.Current.Add(p.Amount)
	case ColumnTotalWithdrawn:
		b.Withdrawn = b.Withdrawn.Add(p.Amount)
	}
	return b
}

// Charges bir çekmenin ücret alanları
type Charges struct {
	Percentage decimal.Decimal
	Amount     decimal.Decimal
}

// NormalizeCharges gönderilen ücret alanlarını olduğu gibi saklar, eksikleri sıfırlar.
// Yatırmada ücret anlamsızdır ve sıfır kaydedilir.
func NormalizeCharges(transactionType string, percentage, amount *decimal.Decimal) Charges {
	charges := Charges{Percentage: decimal.Zero, Amount: decimal.Zero}
	if transactionType != models.TransactionTypeWithdraw {
		return charges
	}
	if percentage != nil {
		charges.Percentage = *percentage
	}
	if amount != nil {
		charges.Amount = *amount
	}
	return charges
}

// CanTransition sadece active -> done geçişine izin verir
func CanTransition(from, to string) error {
	if from == models.ProfileStatusActive && to == models.ProfileStatusDone {
		return nil
	}
	return errors.NewValidationError("status", from, fmt.Sprintf("%s -> %s geçişi için %s", from, to, models.ProfileStatusActive))
}

// AcceptsTransactions done profile'a yeni hareket eklenemez
func AcceptsTransactions(status string) error {
	if status != models.ProfileStatusActive {
		return errors.NewValidationError("profile_id", status, "active durumda profile")
	}
	return nil
}
