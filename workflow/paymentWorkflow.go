package workflow

import (
	"context"
	"time"

	"github.com/aurumsoft/jewelbooks_backend/config"
	"github.com/aurumsoft/jewelbooks_backend/models"
	"github.com/aurumsoft/jewelbooks_backend/utils"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// RecordPayment creates a standalone payment entry and shifts the
// counterparty balance in the same transaction scope.
func RecordPayment(ctx context.Context, db *gorm.DB, logger *logrus.Logger, input models.NewPaymentRecord) (*models.PaymentRecord, error) {
	if err := input.Validate(ctx, db); err != nil {
		return nil, err
	}

	payment := models.PaymentRecord{
		PaymentNumber: utils.GeneratePaymentReference(models.PaymentNumberPrefix, time.Now()),
		Date:          input.Date,
		Type:          input.Type,
		PartyType:     input.PartyType,
		PartyId:       input.PartyId,
		Amount:        input.Amount.Decimal,
		Mode:          input.Mode,
		Notes:         input.Notes,
	}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}
		delta := paymentBalanceDelta(payment.PartyType, payment.Type, payment.Amount)
		return ApplyPartyBalanceDelta(tx, payment.PartyType, payment.PartyId, delta)
	})
	if err != nil {
		config.LogError(logger, "paymentWorkflow.go", "RecordPayment", "Transaction", input, err)
		return nil, err
	}
	return &payment, nil
}

// DeletePayment removes a payment record and reverses its balance
// effect atomically, keeping the materialized balance reconstructable
// from the remaining log.
func DeletePayment(ctx context.Context, db *gorm.DB, logger *logrus.Logger, id int) (*models.PaymentRecord, error) {
	payment, err := models.GetPayment(ctx, db, id)
	if err != nil {
		return nil, err
	}

	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.PaymentRecord{}, payment.ID).Error; err != nil {
			return err
		}
		delta := paymentBalanceDelta(payment.PartyType, payment.Type, payment.Amount).Neg()
		return ApplyPartyBalanceDelta(tx, payment.PartyType, payment.PartyId, delta)
	})
	if err != nil {
		config.LogError(logger, "paymentWorkflow.go", "DeletePayment", "Transaction", id, err)
		return nil, err
	}
	return payment, nil
}
