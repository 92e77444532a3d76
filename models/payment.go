package models

import (
	"context"
	"errors"
	"time"

	"github.com/aurumsoft/jewelbooks_backend/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PaymentDirection string

const (
	PaymentDirectionIn  PaymentDirection = "IN"
	PaymentDirectionOut PaymentDirection = "OUT"
)

const PaymentNumberPrefix = "PAY"

// PaymentRecord is immutable once created; the only mutation is an
// explicit delete through the payment workflow, which also reverses
// the balance effect.
type PaymentRecord struct {
	ID            int              `gorm:"primary_key" json:"id"`
	PaymentNumber string           `gorm:"size:50;not null" json:"payment_number"`
	Date          time.Time        `gorm:"index;not null" json:"date"`
	Type          PaymentDirection `gorm:"size:3;not null" json:"type"`
	PartyType     PartyType        `gorm:"size:10;not null;index:idx_payments_party" json:"party_type"`
	PartyId       int              `gorm:"not null;index:idx_payments_party" json:"party_id"`
	Amount        decimal.Decimal  `gorm:"type:decimal(20,4);not null" json:"amount"`
	Mode          string           `gorm:"size:50" json:"mode"`
	Notes         string           `gorm:"type:text" json:"notes"`
	CreatedAt     time.Time        `gorm:"autoCreateTime" json:"created_at"`
}

func (PaymentRecord) TableName() string { return "payments" }

type NewPaymentRecord struct {
	Date      time.Time        `json:"date" binding:"required"`
	Type      PaymentDirection `json:"type" binding:"required"`
	PartyType PartyType        `json:"party_type" binding:"required"`
	PartyId   int              `json:"party_id" binding:"required"`
	Amount    utils.Numeric    `json:"amount"`
	Mode      string           `json:"mode"`
	Notes     string           `json:"notes"`
}

func (input *NewPaymentRecord) Validate(ctx context.Context, db *gorm.DB) error {
	if input.Type != PaymentDirectionIn && input.Type != PaymentDirectionOut {
		return errors.New("payment type must be IN or OUT")
	}
	if !input.Amount.GreaterThan(decimal.Zero) {
		return errors.New("payment amount must be positive")
	}
	switch input.PartyType {
	case PartyTypeCustomer:
		if err := utils.ValidateResourceId[Customer](ctx, db, input.PartyId); err != nil {
			return errors.New("customer not found")
		}
	case PartyTypeVendor:
		if err := utils.ValidateResourceId[Vendor](ctx, db, input.PartyId); err != nil {
			return errors.New("vendor not found")
		}
	default:
		return errors.New("party type must be CUSTOMER or VENDOR")
	}
	return nil
}

func GetPayment(ctx context.Context, db *gorm.DB, id int) (*PaymentRecord, error) {
	return utils.FetchModel[PaymentRecord](ctx, db, id)
}

func GetPaymentsAll(ctx context.Context, db *gorm.DB, partyType *PartyType, partyId *int) ([]*PaymentRecord, error) {
	var results []*PaymentRecord

	dbCtx := db.WithContext(ctx)
	if partyType != nil && *partyType != "" {
		dbCtx = dbCtx.Where("party_type = ?", *partyType)
	}
	if partyId != nil && *partyId > 0 {
		dbCtx = dbCtx.Where("party_id = ?", *partyId)
	}
	// db query
	err := dbCtx.Order("date DESC, id DESC").Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
