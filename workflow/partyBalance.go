package workflow

import (
	"errors"

	"github.com/aurumsoft/jewelbooks_backend/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ApplyPartyBalanceDelta shifts a counterparty's materialized balance
// inside the caller's transaction scope. The sign convention follows
// the party role: positive delta means the counterparty side owes more
// (vendor: shop owes vendor; customer: customer owes shop).
func ApplyPartyBalanceDelta(tx *gorm.DB, partyType models.PartyType, partyId int, delta decimal.Decimal) error {
	if delta.IsZero() {
		return nil
	}
	switch partyType {
	case models.PartyTypeCustomer:
		return tx.Model(&models.Customer{}).
			Where("id = ?", partyId).
			Update("balance", gorm.Expr("balance + ?", delta)).Error
	case models.PartyTypeVendor:
		return tx.Model(&models.Vendor{}).
			Where("id = ?", partyId).
			Update("balance", gorm.Expr("balance + ?", delta)).Error
	default:
		return errors.New("unknown party type")
	}
}

// paymentBalanceDelta maps a payment to its balance effect. Money
// flowing in the settling direction reduces what the party side owes;
// the opposite direction (refunds, advances) increases it.
func paymentBalanceDelta(partyType models.PartyType, direction models.PaymentDirection, amount decimal.Decimal) decimal.Decimal {
	settling := (partyType == models.PartyTypeCustomer && direction == models.PaymentDirectionIn) ||
		(partyType == models.PartyTypeVendor && direction == models.PaymentDirectionOut)
	if settling {
		return amount.Neg()
	}
	return amount
}
