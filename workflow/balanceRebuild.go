package workflow

import (
	"context"
	"errors"

	"github.com/aurumsoft/jewelbooks_backend/config"
	"github.com/aurumsoft/jewelbooks_backend/models"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// RebuildPartyBalance recomputes a counterparty balance from first
// principles: opening balance plus every document total plus every
// payment's signed effect. It then rewrites the materialized balance.
//
// The materialized value can drift from the log when documents are
// deleted or edited (those paths deliberately leave the balance
// alone); this is the reconciliation tool that restores the invariant.
func RebuildPartyBalance(ctx context.Context, db *gorm.DB, logger *logrus.Logger, partyType models.PartyType, partyId int) (decimal.Decimal, error) {

	var expected decimal.Decimal
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var opening decimal.Decimal
		var docTotal decimal.Decimal

		switch partyType {
		case models.PartyTypeCustomer:
			var customer models.Customer
			if err := tx.First(&customer, "id = ?", partyId).Error; err != nil {
				return err
			}
			opening = customer.OpeningBalance
			if err := tx.Model(&models.Invoice{}).
				Where("party_id = ?", partyId).
				Select("COALESCE(SUM(total), 0)").
				Scan(&docTotal).Error; err != nil {
				return err
			}
		case models.PartyTypeVendor:
			var vendor models.Vendor
			if err := tx.First(&vendor, "id = ?", partyId).Error; err != nil {
				return err
			}
			opening = vendor.OpeningBalance
			if err := tx.Model(&models.Purchase{}).
				Where("party_id = ?", partyId).
				Select("COALESCE(SUM(total), 0)").
				Scan(&docTotal).Error; err != nil {
				return err
			}
		default:
			return errors.New("unknown party type")
		}

		var payments []*models.PaymentRecord
		if err := tx.Where("party_type = ? AND party_id = ?", partyType, partyId).
			Find(&payments).Error; err != nil {
			return err
		}

		expected = opening.Add(docTotal)
		for _, p := range payments {
			expected = expected.Add(paymentBalanceDelta(p.PartyType, p.Type, p.Amount))
		}

		switch partyType {
		case models.PartyTypeCustomer:
			return tx.Model(&models.Customer{}).
				Where("id = ?", partyId).
				Update("balance", expected).Error
		default:
			return tx.Model(&models.Vendor{}).
				Where("id = ?", partyId).
				Update("balance", expected).Error
		}
	})
	if err != nil {
		config.LogError(logger, "balanceRebuild.go", "RebuildPartyBalance", "Transaction", partyId, err)
		return decimal.Zero, err
	}
	return expected, nil
}

// RebuildAllBalances walks every counterparty. Used by the
// balance-rebuild maintenance tool.
func RebuildAllBalances(ctx context.Context, db *gorm.DB, logger *logrus.Logger) error {
	var customerIds []int
	if err := db.WithContext(ctx).Model(&models.Customer{}).Select("id").Scan(&customerIds).Error; err != nil {
		return err
	}
	for _, id := range customerIds {
		if _, err := RebuildPartyBalance(ctx, db, logger, models.PartyTypeCustomer, id); err != nil {
			return err
		}
	}

	var vendorIds []int
	if err := db.WithContext(ctx).Model(&models.Vendor{}).Select("id").Scan(&vendorIds).Error; err != nil {
		return err
	}
	for _, id := range vendorIds {
		if _, err := RebuildPartyBalance(ctx, db, logger, models.PartyTypeVendor, id); err != nil {
			return err
		}
	}
	return nil
}
