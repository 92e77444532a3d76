package models

import (
	"os"

	"github.com/aurumsoft/jewelbooks_backend/utils"
	"github.com/shopspring/decimal"
)

// GST on jewelry splits into equal central and state halves.
var (
	cgstRate = decimal.NewFromFloat(1.5)
	sgstRate = decimal.NewFromFloat(1.5)
)

func init() {
	// Rate overrides for jurisdictions with a different split.
	if v := os.Getenv("CGST_RATE"); v != "" {
		cgstRate = utils.ParseDecimalOrZero(v)
	}
	if v := os.Getenv("SGST_RATE"); v != "" {
		sgstRate = utils.ParseDecimalOrZero(v)
	}
}

// Totals carries every derived amount of a document. RawTotal always
// holds the pre-rounding value; RoundOffAmount = Total - RawTotal and
// stays inside (-1, 1).
type Totals struct {
	Subtotal       decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"subtotal"`
	Cgst           decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"cgst"`
	Sgst           decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"sgst"`
	Igst           decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"igst"`
	TotalTax       decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"total_tax"`
	Total          decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"total"`
	RoundOffAmount decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"round_off_amount"`
	RawTotal       decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"raw_total"`
}

// NewTransactionItem is a draft line item as assembled by the billing
// form. Weight and rate fields tolerate whatever the form sends.
type NewTransactionItem struct {
	Name        string        `json:"name"`
	NetWeight   utils.Numeric `json:"net_weight"`
	GrossWeight utils.Numeric `json:"gross_weight"`
	Wastage     utils.Numeric `json:"wastage"`
	RatePerGram utils.Numeric `json:"rate_per_gram"`
	Quantity    int           `json:"quantity"`
	Purity      string        `json:"purity"`
	Hsn         string        `json:"hsn"`
}

type NewTransactionDetails struct {
	Reference        string        `json:"reference"`
	Notes            string        `json:"notes"`
	Terms            string        `json:"terms"`
	ExtraDiscount    utils.Numeric `json:"extra_discount"`
	ShippingCharges  utils.Numeric `json:"shipping_charges"`
	PackagingCharges utils.Numeric `json:"packaging_charges"`
}

func clampNonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// EffectiveWeight is the pricing basis: net weight plus wastage.
// Wastage is additive, never a deduction.
func (item NewTransactionItem) EffectiveWeight() decimal.Decimal {
	return clampNonNegative(item.NetWeight.Decimal).
		Add(clampNonNegative(item.Wastage.Decimal))
}

// ItemTotal = effective weight x rate per gram x quantity.
// A missing quantity counts as one piece.
func (item NewTransactionItem) ItemTotal() decimal.Decimal {
	qty := item.Quantity
	if qty < 1 {
		qty = 1
	}
	return item.EffectiveWeight().
		Mul(clampNonNegative(item.RatePerGram.Decimal)).
		Mul(decimal.NewFromInt(int64(qty)))
}

// ComputeTotals turns draft line items and document-level charges into
// the full Totals breakdown. Pure and total-defined: bad numeric input
// has already been coerced to zero by the Numeric type, so this never
// fails.
//
// Round-off, when requested, rounds half away from zero to the nearest
// whole rupee, matching the printed-bill convention.
func ComputeTotals(items []NewTransactionItem, details NewTransactionDetails, gstEnabled bool, roundOff bool) Totals {

	decimalOneHundred := decimal.NewFromFloat(100)

	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.ItemTotal())
	}

	cgst := decimal.Zero
	sgst := decimal.Zero
	if gstEnabled {
		cgst = subtotal.DivRound(decimalOneHundred, 4).Mul(cgstRate)
		sgst = subtotal.DivRound(decimalOneHundred, 4).Mul(sgstRate)
	}
	totalTax := cgst.Add(sgst)

	rawTotal := subtotal.
		Add(totalTax).
		Add(details.ShippingCharges.Decimal).
		Add(details.PackagingCharges.Decimal).
		Sub(details.ExtraDiscount.Decimal)

	total := rawTotal
	roundOffAmount := decimal.Zero
	if roundOff {
		total = rawTotal.Round(0)
		roundOffAmount = total.Sub(rawTotal)
	}

	return Totals{
		Subtotal:       subtotal,
		Cgst:           cgst,
		Sgst:           sgst,
		Igst:           decimal.Zero,
		TotalTax:       totalTax,
		Total:          total,
		RoundOffAmount: roundOffAmount,
		RawTotal:       rawTotal,
	}
}
