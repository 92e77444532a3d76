package models

import (
	"context"
	"errors"
	"time"

	"github.com/aurumsoft/jewelbooks_backend/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Customer balance sign convention: positive means the customer owes
// the shop. Balance is a materialized view over invoices and payments;
// only workflow code writes it.
type Customer struct {
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

type NewCustomer struct {
	Name           string        `json:"name" binding:"required"`
	Phone          string        `json:"phone"`
	Email          string        `json:"email"`
	Gstin          string        `json:"gstin"`
	Address        string        `json:"address"`
	OpeningBalance utils.Numeric `json:"opening_balance"`
}

// validate input for both create & update. (id = 0 for create)
func (input *NewCustomer) validate(ctx context.Context, db *gorm.DB, id int) error {
	if input.Phone != "" {
		if err := utils.ValidatePhoneNumber(input.Phone, utils.CountryCode); err != nil {
			return errors.New("invalid phone number")
		}
		if err := utils.ValidateUnique[Customer](ctx, db, "phone", input.Phone, id); err != nil {
			return errors.New("phone number already used")
		}
	}
	if input.Email != "" && !utils.IsValidEmail(input.Email) {
		return errors.New("invalid email")
	}
	return nil
}

func CreateCustomer(ctx context.Context, db *gorm.DB, input *NewCustomer) (*Customer, error) {
	if err := input.validate(ctx, db, 0); err != nil {
		return nil, err
	}

	customer := Customer{
		Name:           input.Name,
		Phone:          input.Phone,
		Email:          input.Email,
		Gstin:          input.Gstin,
		Address:        input.Address,
		OpeningBalance: input.OpeningBalance.Decimal,
		Balance:        input.OpeningBalance.Decimal,
	}

	// db action
	err := db.WithContext(ctx).Create(&customer).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

// UpdateCustomer never touches Balance: that column belongs to the
// transaction and payment workflows.
func UpdateCustomer(ctx context.Context, db *gorm.DB, id int, input *NewCustomer) (*Customer, error) {
	if err := input.validate(ctx, db, id); err != nil {
		return nil, err
	}

	customer, err := utils.FetchModel[Customer](ctx, db, id)
	if err != nil {
		return nil, err
	}

	// db action
	err = db.WithContext(ctx).Model(customer).
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
	return customer, nil
}

func DeleteCustomer(ctx context.Context, db *gorm.DB, id int) (*Customer, error) {
	result, err := utils.FetchModel[Customer](ctx, db, id)
	if err != nil {
		return nil, err
	}

	// Do not delete while invoices reference this customer
	var count int64
	if err = db.WithContext(ctx).Model(&Invoice{}).
		Where("party_id = ?", result.ID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errors.New("used by invoices")
	}

	// db action
	err = db.WithContext(ctx).Delete(&result).Error
	if err != nil {
		return nil, err
	}
	return result, nil
}

func GetCustomer(ctx context.Context, db *gorm.DB, id int) (*Customer, error) {
	return utils.FetchModel[Customer](ctx, db, id)
}

func GetCustomersAll(ctx context.Context, db *gorm.DB, name *string) ([]*Customer, error) {
	var results []*Customer

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
