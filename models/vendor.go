package models

import (
	"context"
	"errors"
	"time"

	"github.com/aurumsoft/jewelbooks_backend/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Vendor balance sign convention: positive means the shop owes the
// vendor. Mirrors Customer otherwise.
type Vendor struct {
	ID             int             `gorm:"primary_key" json:"id"`
	Name           string          `gorm:"size:100;not null" json:"name" binding:"required"`
	Phone          string          `gorm:"size:20" json:"phone"`
	Email          string          `gorm:"size:100" json:"email"`
	Gstin          string          `gorm:"size:20" json:"gstin"`
	Address        string          `gorm:"type:text" json:"address"`
	OpeningBalance decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"opening_balance"`
	Balance        decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"balance"`
	CreatedAt      time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewVendor struct {
	Name           string        `json:"name" binding:"required"`
	Phone          string        `json:"phone"`
	Email          string        `json:"email"`
	Gstin          string        `json:"gstin"`
	Address        string        `json:"address"`
	OpeningBalance utils.Numeric `json:"opening_balance"`
}

// validate input for both create & update. (id = 0 for create)
func (input *NewVendor) validate(ctx context.Context, db *gorm.DB, id int) error {
	if input.Phone != "" {
		if err := utils.ValidatePhoneNumber(input.Phone, utils.CountryCode); err != nil {
			return errors.New("invalid phone number")
		}
		if err := utils.ValidateUnique[Vendor](ctx, db, "phone", input.Phone, id); err != nil {
			return errors.New("phone number already used")
		}
	}
	if input.Email != "" && !utils.IsValidEmail(input.Email) {
		return errors.New("invalid email")
	}
	return nil
}

func CreateVendor(ctx context.Context, db *gorm.DB, input *NewVendor) (*Vendor, error) {
	if err := input.validate(ctx, db, 0); err != nil {
		return nil, err
	}

	vendor := Vendor{
		Name:           input.Name,
		Phone:          input.Phone,
		Email:          input.Email,
		Gstin:          input.Gstin,
		Address:        input.Address,
		OpeningBalance: input.OpeningBalance.Decimal,
		Balance:        input.OpeningBalance.Decimal,
	}

	// db action
	err := db.WithContext(ctx).Create(&vendor).Error
	if err != nil {
		return nil, err
	}
	return &vendor, nil
}

func UpdateVendor(ctx context.Context, db *gorm.DB, id int, input *NewVendor) (*Vendor, error) {
	if err := input.validate(ctx, db, id); err != nil {
		return nil, err
	}

	vendor, err := utils.FetchModel[Vendor](ctx, db, id)
	if err != nil {
		return nil, err
	}

	// db action
	err = db.WithContext(ctx).Model(vendor).
		Updates(map[string]interface{}{
			"Name":    input.Name,
			"Phone":   input.Phone,
			"Email":   input.Email,
			"Gstin":   input.Gstin,
			"Address": input.Address,
		}).Error
	if err != nil {
		return nil, err
	}
	return vendor, nil
}

func DeleteVendor(ctx context.Context, db *gorm.DB, id int) (*Vendor, error) {
	result, err := utils.FetchModel[Vendor](ctx, db, id)
	if err != nil {
		return nil, err
	}

	// Do not delete while purchases reference this vendor
	var count int64
	if err = db.WithContext(ctx).Model(&Purchase{}).
		Where("party_id = ?", result.ID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errors.New("used by purchases")
	}

	// db action
	err = db.WithContext(ctx).Delete(&result).Error
	if err != nil {
		return nil, err
	}
	return result, nil
}

func GetVendor(ctx context.Context, db *gorm.DB, id int) (*Vendor, error) {
	return utils.FetchModel[Vendor](ctx, db, id)
}

func GetVendorsAll(ctx context.Context, db *gorm.DB, name *string) ([]*Vendor, error) {
	var results []*Vendor

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
