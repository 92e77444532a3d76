package models

import (
	"context"

	"github.com/aurumsoft/jewelbooks_backend/utils"
	"gorm.io/gorm"
)

// Purchase is a vendor-side document: gold bought into the shop.
type Purchase struct {
	ID              int `gorm:"primary_key" json:"id"`
	TransactionCore `gorm:"embedded"`
	Items           []TransactionItem `gorm:"polymorphic:Reference;polymorphicValue:purchase" json:"items"`
}

func (Purchase) TableName() string { return "purchases" }

func GetPurchase(ctx context.Context, db *gorm.DB, id int) (*Purchase, error) {
	return utils.FetchModel[Purchase](ctx, db, id, "Items")
}

func GetPurchasesAll(ctx context.Context, db *gorm.DB, number *string, vendorId *int) ([]*Purchase, error) {
	var results []*Purchase

	dbCtx := db.WithContext(ctx)
	if number != nil && len(*number) > 0 {
		dbCtx = dbCtx.Where("number LIKE ?", "%"+*number+"%")
	}
	if vendorId != nil && *vendorId > 0 {
		dbCtx = dbCtx.Where("party_id = ?", *vendorId)
	}
	// db query
	err := dbCtx.Preload("Items").Order("date DESC, id DESC").Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

// DeletePurchase removes the document and its items. The vendor balance
// keeps its history; reversing it is the payment workflow's business.
func DeletePurchase(ctx context.Context, db *gorm.DB, id int) (*Purchase, error) {
	result, err := utils.FetchModel[Purchase](ctx, db, id, "Items")
	if err != nil {
		return nil, err
	}

	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("reference_id = ? AND reference_type = ?", result.ID, ItemReferencePurchase).
			Delete(&TransactionItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&Purchase{}, result.ID).Error
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
