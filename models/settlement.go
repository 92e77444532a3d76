package models

import "github.com/shopspring/decimal"

type TransactionStatus string

const (
	TransactionStatusUnpaid  TransactionStatus = "Unpaid"
	TransactionStatusPartial TransactionStatus = "Partial"
	TransactionStatusPaid    TransactionStatus = "Paid"
)

// DeriveStatus classifies settlement from the document total and the
// amount paid so far. Paid whenever nothing remains due (overpayment
// included); Partial needs a positive payment with a remainder; else
// Unpaid.
func DeriveStatus(total, amountPaid decimal.Decimal) TransactionStatus {
	if total.Sub(amountPaid).LessThanOrEqual(decimal.Zero) {
		return TransactionStatusPaid
	}
	if amountPaid.GreaterThan(decimal.Zero) {
		return TransactionStatusPartial
	}
	return TransactionStatusUnpaid
}

// BalanceDue is total minus paid, deliberately unclamped: a negative
// balance due records an overpayment and must round-trip as-is.
func BalanceDue(total, amountPaid decimal.Decimal) decimal.Decimal {
	return total.Sub(amountPaid)
}
