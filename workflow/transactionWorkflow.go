package workflow

import (
	"context"
	"time"

	"github.com/aurumsoft/jewelbooks_backend/config"
	"github.com/aurumsoft/jewelbooks_backend/models"
	"github.com/aurumsoft/jewelbooks_backend/utils"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ReconcileBalanceOnEdit controls whether editing an existing document
// re-applies the counterparty balance delta. The shipped behavior keeps
// it off: edits rewrite the document but leave the party balance as the
// original save left it. Flipping this makes edits adjust the balance
// by (new total - old total) in the same transaction.
var ReconcileBalanceOnEdit = false

// ImmediatePayment is the optional pay-now sub-object of a draft.
// IsFullyPaid wins over AmountPaid.
type ImmediatePayment struct {
	IsFullyPaid bool          `json:"is_fully_paid"`
	AmountPaid  utils.Numeric `json:"amount_paid"`
	Mode        string        `json:"mode"`
	Notes       string        `json:"notes"`
}

// TransactionDraft is what the billing form assembles. ID zero means
// create; a non-zero ID edits that document in place.
type TransactionDraft struct {
	ID         int                          `json:"id"`
	PartyId    int                          `json:"party_id"`
	Date       time.Time                    `json:"date"`
	DueDate    *time.Time                   `json:"due_date"`
	Items      []models.NewTransactionItem  `json:"items"`
	Details    models.NewTransactionDetails `json:"details"`
	GstEnabled bool                         `json:"gst_enabled"`
	RoundOff   bool                         `json:"round_off"`
	Payment    *ImmediatePayment            `json:"payment"`
}

// validate rejects a draft before any write happens.
func (draft *TransactionDraft) validate() error {
	if draft.PartyId <= 0 {
		return utils.ErrorPartyRequired
	}
	if len(draft.Items) == 0 {
		return utils.ErrorItemsRequired
	}
	return nil
}

// amountPaid resolves the immediate payment against the computed total.
func (draft *TransactionDraft) amountPaid(total decimal.Decimal) decimal.Decimal {
	if draft.Payment == nil {
		return decimal.Zero
	}
	if draft.Payment.IsFullyPaid {
		return total
	}
	return draft.Payment.AmountPaid.Decimal
}

func (draft *TransactionDraft) buildCore(number string, partyId int, partyName string, partyPhone string, totals models.Totals, amountPaid decimal.Decimal) models.TransactionCore {
	date := draft.Date
	if date.IsZero() {
		date = time.Now()
	}
	return models.TransactionCore{
		Number:           number,
		Date:             date,
		DueDate:          draft.DueDate,
		PartyId:          partyId,
		PartyName:        partyName,
		PartyPhone:       partyPhone,
		Reference:        draft.Details.Reference,
		Notes:            draft.Details.Notes,
		Terms:            draft.Details.Terms,
		ExtraDiscount:    draft.Details.ExtraDiscount.Decimal,
		ShippingCharges:  draft.Details.ShippingCharges.Decimal,
		PackagingCharges: draft.Details.PackagingCharges.Decimal,
		GstEnabled:       draft.GstEnabled,
		Totals:           totals,
		Status:           models.DeriveStatus(totals.Total, amountPaid),
		BalanceDue:       models.BalanceDue(totals.Total, amountPaid),
	}
}

// SavePurchase persists a vendor purchase as one atomic unit: the
// document, the vendor balance shift and the optional immediate
// payment record all commit together or not at all.
func SavePurchase(ctx context.Context, db *gorm.DB, logger *logrus.Logger, draft TransactionDraft) (int, error) {
	if err := draft.validate(); err != nil {
		return 0, err
	}

	vendor, err := models.GetVendor(ctx, db, draft.PartyId)
	if err != nil {
		config.LogError(logger, "transactionWorkflow.go", "SavePurchase", "GetVendor", draft.PartyId, err)
		return 0, err
	}

	totals := models.ComputeTotals(draft.Items, draft.Details, draft.GstEnabled, draft.RoundOff)
	amountPaid := draft.amountPaid(totals.Total)
	isNew := draft.ID == 0

	var savedId int
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if isNew {
			number, err := models.NextDocumentNumber(tx, models.ModulePurchase, models.PrefixPurchase)
			if err != nil {
				return err
			}
			purchase := models.Purchase{
				TransactionCore: draft.buildCore(number, vendor.ID, vendor.Name, vendor.Phone, totals, amountPaid),
				Items:           models.MapTransactionItems(draft.Items),
			}
			if err := tx.Create(&purchase).Error; err != nil {
				return err
			}
			savedId = purchase.ID

			// The purchase raises what the shop owes, the immediate
			// payment settles part of it, both in one shift.
			if err := ApplyPartyBalanceDelta(tx, models.PartyTypeVendor, vendor.ID, totals.Total.Sub(amountPaid)); err != nil {
				return err
			}
			if amountPaid.GreaterThan(decimal.Zero) {
				payment := models.PaymentRecord{
					PaymentNumber: utils.GeneratePaymentReference(models.PaymentNumberPrefix, time.Now()),
					Date:          purchase.Date,
					Type:          models.PaymentDirectionOut,
					PartyType:     models.PartyTypeVendor,
					PartyId:       vendor.ID,
					Amount:        amountPaid,
					Mode:          draft.Payment.Mode,
					Notes:         draft.Payment.Notes,
				}
				if err := tx.Create(&payment).Error; err != nil {
					return err
				}
			}
			return nil
		}

		// Edit path: rewrite the document in place.
		var existing models.Purchase
		if err := tx.First(&existing, "id = ?", draft.ID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return utils.ErrorRecordNotFound
			}
			return err
		}
		oldTotal := existing.Totals.Total

		core := draft.buildCore(existing.Number, vendor.ID, vendor.Name, vendor.Phone, totals, amountPaid)
		core.CreatedAt = existing.CreatedAt
		existing.TransactionCore = core
		existing.Items = nil
		if err := tx.Save(&existing).Error; err != nil {
			return err
		}

		if err := tx.Where("reference_id = ? AND reference_type = ?", existing.ID, models.ItemReferencePurchase).
			Delete(&models.TransactionItem{}).Error; err != nil {
			return err
		}
		items := models.MapTransactionItems(draft.Items)
		for i := range items {
			items[i].ReferenceID = existing.ID
			items[i].ReferenceType = models.ItemReferencePurchase
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}

		if ReconcileBalanceOnEdit {
			if err := ApplyPartyBalanceDelta(tx, models.PartyTypeVendor, vendor.ID, totals.Total.Sub(oldTotal)); err != nil {
				return err
			}
		}
		savedId = existing.ID
		return nil
	})
	if err != nil {
		config.LogError(logger, "transactionWorkflow.go", "SavePurchase", "Transaction", draft.PartyId, err)
		return 0, err
	}
	return savedId, nil
}

// SaveInvoice is the customer-side twin of SavePurchase.
func SaveInvoice(ctx context.Context, db *gorm.DB, logger *logrus.Logger, draft TransactionDraft) (int, error) {
	if err := draft.validate(); err != nil {
		return 0, err
	}

	customer, err := models.GetCustomer(ctx, db, draft.PartyId)
	if err != nil {
		config.LogError(logger, "transactionWorkflow.go", "SaveInvoice", "GetCustomer", draft.PartyId, err)
		return 0, err
	}

	totals := models.ComputeTotals(draft.Items, draft.Details, draft.GstEnabled, draft.RoundOff)
	amountPaid := draft.amountPaid(totals.Total)
	isNew := draft.ID == 0

	var savedId int
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if isNew {
			number, err := models.NextDocumentNumber(tx, models.ModuleInvoice, models.PrefixInvoice)
			if err != nil {
				return err
			}
			invoice := models.Invoice{
				TransactionCore: draft.buildCore(number, customer.ID, customer.Name, customer.Phone, totals, amountPaid),
				Items:           models.MapTransactionItems(draft.Items),
			}
			if err := tx.Create(&invoice).Error; err != nil {
				return err
			}
			savedId = invoice.ID

			if err := ApplyPartyBalanceDelta(tx, models.PartyTypeCustomer, customer.ID, totals.Total.Sub(amountPaid)); err != nil {
				return err
			}
			if amountPaid.GreaterThan(decimal.Zero) {
				payment := models.PaymentRecord{
					PaymentNumber: utils.GeneratePaymentReference(models.PaymentNumberPrefix, time.Now()),
					Date:          invoice.Date,
					Type:          models.PaymentDirectionIn,
					PartyType:     models.PartyTypeCustomer,
					PartyId:       customer.ID,
					Amount:        amountPaid,
					Mode:          draft.Payment.Mode,
					Notes:         draft.Payment.Notes,
				}
				if err := tx.Create(&payment).Error; err != nil {
					return err
				}
			}
			return nil
		}

		var existing models.Invoice
		if err := tx.First(&existing, "id = ?", draft.ID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return utils.ErrorRecordNotFound
			}
			return err
		}
		oldTotal := existing.Totals.Total

		core := draft.buildCore(existing.Number, customer.ID, customer.Name, customer.Phone, totals, amountPaid)
		core.CreatedAt = existing.CreatedAt
		existing.TransactionCore = core
		existing.Items = nil
		if err := tx.Save(&existing).Error; err != nil {
			return err
		}

		if err := tx.Where("reference_id = ? AND reference_type = ?", existing.ID, models.ItemReferenceInvoice).
			Delete(&models.TransactionItem{}).Error; err != nil {
			return err
		}
		items := models.MapTransactionItems(draft.Items)
		for i := range items {
			items[i].ReferenceID = existing.ID
			items[i].ReferenceType = models.ItemReferenceInvoice
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}

		if ReconcileBalanceOnEdit {
			if err := ApplyPartyBalanceDelta(tx, models.PartyTypeCustomer, customer.ID, totals.Total.Sub(oldTotal)); err != nil {
				return err
			}
		}
		savedId = existing.ID
		return nil
	})
	if err != nil {
		config.LogError(logger, "transactionWorkflow.go", "SaveInvoice", "Transaction", draft.PartyId, err)
		return 0, err
	}
	return savedId, nil
}
