package utils

import "errors"

var (
	ErrorRecordNotFound = errors.New("record not found")

	ErrorDuplicateValue = errors.New("value already exists")

	ErrorPartyRequired = errors.New("counterparty is required")
	ErrorItemsRequired = errors.New("at least one item is required")
)
