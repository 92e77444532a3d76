package models

import (
	"context"
	"errors"
	"time"

	"github.com/aurumsoft/jewelbooks_backend/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Expense struct {
	ID        int             `gorm:"primary_key" json:"id"`
	Date      time.Time       `gorm:"index;not null" json:"date"`
	Category  string          `gorm:"size:100" json:"category"`
	Amount    decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"amount"`
	Mode      string          `gorm:"size:50" json:"mode"`
	Notes     string          `gorm:"type:text" json:"notes"`
	CreatedAt time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewExpense struct {
	Date     time.Time     `json:"date" binding:"required"`
	Category string        `json:"category"`
	Amount   utils.Numeric `json:"amount"`
	Mode     string        `json:"mode"`
	Notes    string        `json:"notes"`
}

func (input *NewExpense) validate() error {
	if !input.Amount.GreaterThan(decimal.Zero) {
		return errors.New("expense amount must be positive")
	}
	return nil
}

func CreateExpense(ctx context.Context, db *gorm.DB, input *NewExpense) (*Expense, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	expense := Expense{
		Date:     input.Date,
		Category: input.Category,
		Amount:   input.Amount.Decimal,
		Mode:     input.Mode,
		Notes:    input.Notes,
	}

	// db action
	err := db.WithContext(ctx).Create(&expense).Error
	if err != nil {
		return nil, err
	}
	return &expense, nil
}

func UpdateExpense(ctx context.Context, db *gorm.DB, id int, input *NewExpense) (*Expense, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	expense, err := utils.FetchModel[Expense](ctx, db, id)
	if err != nil {
		return nil, err
	}

	// db action
	err = db.WithContext(ctx).Model(expense).
		Updates(map[string]interface{}{
			"Date":     input.Date,
			"Category": input.Category,
			"Amount":   input.Amount.Decimal,
			"Mode":     input.Mode,
			"Notes":    input.Notes,
		}).Error
	if err != nil {
		return nil, err
	}
	return expense, nil
}

func DeleteExpense(ctx context.Context, db *gorm.DB, id int) (*Expense, error) {
	result, err := utils.FetchModel[Expense](ctx, db, id)
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

func GetExpensesAll(ctx context.Context, db *gorm.DB, from *time.Time, to *time.Time) ([]*Expense, error) {
	var results []*Expense

	dbCtx := db.WithContext(ctx)
	if from != nil {
		dbCtx = dbCtx.Where("date >= ?", *from)
	}
	if to != nil {
		dbCtx = dbCtx.Where("date <= ?", *to)
	}
	// db query
	err := dbCtx.Order("date DESC, id DESC").Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
