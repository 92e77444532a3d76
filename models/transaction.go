package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type PartyType string

const (
	PartyTypeCustomer PartyType = "CUSTOMER"
	PartyTypeVendor   PartyType = "VENDOR"
)

// Polymorphic reference values for transaction_items rows.
const (
	ItemReferencePurchase = "purchase"
	ItemReferenceInvoice  = "invoice"
)

// TransactionCore is shared by purchases and invoices: both are
// weight-priced documents against a counterparty. The party name and
// phone are denormalized at save time so historical documents stay
// stable when the party is later renamed.
type TransactionCore struct {
	Number           string            `gorm:"size:50;uniqueIndex;not null" json:"number"`
	Date             time.Time         `gorm:"index;not null" json:"date"`
	DueDate          *time.Time        `json:"due_date"`
	PartyId          int               `gorm:"index;not null" json:"party_id"`
	PartyName        string            `gorm:"size:100;not null" json:"party_name"`
	PartyPhone       string            `gorm:"size:20" json:"party_phone"`
	Reference        string            `gorm:"size:255" json:"reference"`
	Notes            string            `gorm:"type:text" json:"notes"`
	Terms            string            `gorm:"type:text" json:"terms"`
	ExtraDiscount    decimal.Decimal   `gorm:"type:decimal(20,4);default:0" json:"extra_discount"`
	ShippingCharges  decimal.Decimal   `gorm:"type:decimal(20,4);default:0" json:"shipping_charges"`
	PackagingCharges decimal.Decimal   `gorm:"type:decimal(20,4);default:0" json:"packaging_charges"`
	GstEnabled       bool              `gorm:"not null;default:false" json:"gst_enabled"`
	Totals           Totals            `gorm:"embedded" json:"totals"`
	Status           TransactionStatus `gorm:"size:10;not null;default:'Unpaid'" json:"status"`
	BalanceDue       decimal.Decimal   `gorm:"type:decimal(20,4);default:0" json:"balance_due"`
	CreatedAt        time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time         `gorm:"autoUpdateTime" json:"updated_at"`
}

// TransactionItem is a persisted line item. EffectiveWeight and
// ItemTotal are derived at save time and stored with the row so a
// printed document never depends on recomputation.
type TransactionItem struct {
	ID              int             `gorm:"primary_key" json:"id"`
	ReferenceID     int             `gorm:"index:idx_transaction_items_ref" json:"reference_id"`
	ReferenceType   string          `gorm:"size:50;index:idx_transaction_items_ref" json:"reference_type"`
	Name            string          `gorm:"size:255" json:"name"`
	NetWeight       decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"net_weight"`
	GrossWeight     decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"gross_weight"`
	Wastage         decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"wastage"`
	RatePerGram     decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"rate_per_gram"`
	Quantity        int             `gorm:"not null;default:1" json:"quantity"`
	Purity          string          `gorm:"size:20" json:"purity"`
	Hsn             string          `gorm:"size:20" json:"hsn"`
	EffectiveWeight decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"effective_weight"`
	ItemTotal       decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"item_total"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

// MapTransactionItems converts draft items into persistable rows,
// computing the derived weight and amount columns once.
func MapTransactionItems(input []NewTransactionItem) []TransactionItem {
	items := make([]TransactionItem, 0, len(input))
	for _, in := range input {
		qty := in.Quantity
		if qty < 1 {
			qty = 1
		}
		items = append(items, TransactionItem{
			Name:            in.Name,
			NetWeight:       clampNonNegative(in.NetWeight.Decimal),
			GrossWeight:     clampNonNegative(in.GrossWeight.Decimal),
			Wastage:         clampNonNegative(in.Wastage.Decimal),
			RatePerGram:     clampNonNegative(in.RatePerGram.Decimal),
			Quantity:        qty,
			Purity:          in.Purity,
			Hsn:             in.Hsn,
			EffectiveWeight: in.EffectiveWeight(),
			ItemTotal:       in.ItemTotal(),
		})
	}
	return items
}
