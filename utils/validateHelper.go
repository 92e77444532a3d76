package utils

import (
	"context"
	"reflect"

	"gorm.io/gorm"
)

// check if id exists, return ErrorRecordNotFound
func ValidateResourceId[T any](ctx context.Context, db *gorm.DB, id interface{}) error {
	var model T
	var count int64
	err := db.WithContext(ctx).Model(&model).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return err
	}
	if count <= 0 {
		return ErrorRecordNotFound
	}
	return nil
}

func ValidateUnique[T any](ctx context.Context, db *gorm.DB, column string, value interface{}, exceptId interface{}) error {
	var model T
	var count int64
	var err error
	if reflect.ValueOf(exceptId).IsZero() {
		err = db.WithContext(ctx).Model(&model).
			Where(column+" = ?", value).Count(&count).Error
	} else {
		err = db.WithContext(ctx).Model(&model).
			Where(column+" = ?", value).
			Where("id <> ?", exceptId).Count(&count).Error
	}
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrorDuplicateValue
	}
	return nil
}

// FetchModel loads a record by primary key, translating gorm's
// not-found into the shared sentinel.
func FetchModel[T any](ctx context.Context, db *gorm.DB, id interface{}, preloads ...string) (*T, error) {
	var result T
	dbCtx := db.WithContext(ctx)
	for _, preload := range preloads {
		dbCtx = dbCtx.Preload(preload)
	}
	err := dbCtx.First(&result, "id = ?", id).Error
	if err == gorm.ErrRecordNotFound {
		return nil, ErrorRecordNotFound
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}
