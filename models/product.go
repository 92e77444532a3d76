package models

import (
	"context"
	"time"

	"github.com/aurumsoft/jewelbooks_backend/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product is a catalog entry the billing form drafts line items from.
type Product struct {
	ID          int             `gorm:"primary_key" json:"id"`
	Name        string          `gorm:"size:255;not null" json:"name" binding:"required"`
	Purity      string          `gorm:"size:20" json:"purity"`
	Hsn         string          `gorm:"size:20" json:"hsn"`
	RatePerGram decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"rate_per_gram"`
	Weight      decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"weight"`
	Quantity    int             `gorm:"default:0" json:"quantity"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewProduct struct {
	Name        string        `json:"name" binding:"required"`
	Purity      string        `json:"purity"`
	Hsn         string        `json:"hsn"`
	RatePerGram utils.Numeric `json:"rate_per_gram"`
	Weight      utils.Numeric `json:"weight"`
	Quantity    int           `json:"quantity"`
}

func CreateProduct(ctx context.Context, db *gorm.DB, input *NewProduct) (*Product, error) {
	product := Product{
		Name:        input.Name,
		Purity:      input.Purity,
		Hsn:         input.Hsn,
		RatePerGram: input.RatePerGram.Decimal,
		Weight:      input.Weight.Decimal,
		Quantity:    input.Quantity,
	}

	// db action
	err := db.WithContext(ctx).Create(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func UpdateProduct(ctx context.Context, db *gorm.DB, id int, input *NewProduct) (*Product, error) {
	product, err := utils.FetchModel[Product](ctx, db, id)
	if err != nil {
		return nil, err
	}

	// db action
	err = db.WithContext(ctx).Model(product).
		Updates(map[string]interface{}{
			"Name":        input.Name,
			"Purity":      input.Purity,
			"Hsn":         input.Hsn,
			"RatePerGram": input.RatePerGram.Decimal,
			"Weight":      input.Weight.Decimal,
			"Quantity":    input.Quantity,
		}).Error
	if err != nil {
		return nil, err
	}
	return product, nil
}

func DeleteProduct(ctx context.Context, db *gorm.DB, id int) (*Product, error) {
	result, err := utils.FetchModel[Product](ctx, db, id)
	if err != nil {
		return nil, err
	}

	// db action
	err = db.WithContext(ctx).Delete(&result).Error
	if err != nil {
		return nil, err
	}
	return result, nil
}

func GetProduct(ctx context.Context, db *gorm.DB, id int) (*Product, error) {
	return utils.FetchModel[Product](ctx, db, id)
}

func GetProductsAll(ctx context.Context, db *gorm.DB, name *string) ([]*Product, error) {
	var results []*Product

	dbCtx := db.WithContext(ctx)
	if name != nil && len(*name) > 0 {
		dbCtx = dbCtx.Where("name LIKE ?", "%"+*name+"%")
	}
	// db query
	err := dbCtx.Order("name").Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
