package workflow

import (
	"context"
	"errors"
	"testing"

	"github.com/aurumsoft/jewelbooks_backend/models"
	"github.com/aurumsoft/jewelbooks_backend/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func TestSavePurchase_RejectsInvalidDraft(t *testing.T) {
	db := newTestDB(t)
	logger := newTestLogger()
	ctx := context.Background()

	_, err := SavePurchase(ctx, db, logger, TransactionDraft{
		Items: []models.NewTransactionItem{goldItem("10", "5000")},
	})
	if !errors.Is(err, utils.ErrorPartyRequired) {
		t.Fatalf("missing party: expected ErrorPartyRequired, got %v", err)
	}

	vendor := seedVendor(t, db, "Sharma Bullion")
	_, err = SavePurchase(ctx, db, logger, TransactionDraft{PartyId: vendor.ID})
	if !errors.Is(err, utils.ErrorItemsRequired) {
		t.Fatalf("empty items: expected ErrorItemsRequired, got %v", err)
	}

	// Nothing may be written by a rejected draft.
	if n := countRows(t, db, &models.Purchase{}); n != 0 {
		t.Fatalf("rejected drafts must not persist, found %d purchases", n)
	}
}

func TestSavePurchase_FullyPaidGolden(t *testing.T) {
	db := newTestDB(t)
	logger := newTestLogger()
	ctx := context.Background()

	vendor := seedVendor(t, db, "Sharma Bullion")

	id, err := SavePurchase(ctx, db, logger, TransactionDraft{
		PartyId:    vendor.ID,
		Items:      []models.NewTransactionItem{goldItem("10", "5000")},
		GstEnabled: true,
		Payment:    &ImmediatePayment{IsFullyPaid: true, Mode: "cash"},
	})
	if err != nil {
		t.Fatalf("save purchase: %v", err)
	}

	purchase, err := models.GetPurchase(ctx, db, id)
	if err != nil {
		t.Fatalf("load purchase: %v", err)
	}

	if purchase.Number != "PUR-0001" {
		t.Errorf("number = %s, expected PUR-0001", purchase.Number)
	}
	if !purchase.Totals.Subtotal.Equal(decimal.NewFromInt(50000)) {
		t.Errorf("subtotal = %s, expected 50000", purchase.Totals.Subtotal)
	}
	if !purchase.Totals.Cgst.Equal(decimal.NewFromInt(750)) || !purchase.Totals.Sgst.Equal(decimal.NewFromInt(750)) {
		t.Errorf("tax = %s/%s, expected 750/750", purchase.Totals.Cgst, purchase.Totals.Sgst)
	}
	if !purchase.Totals.Total.Equal(decimal.NewFromInt(51500)) {
		t.Errorf("total = %s, expected 51500", purchase.Totals.Total)
	}
	if purchase.Status != models.TransactionStatusPaid {
		t.Errorf("status = %s, expected PAID", purchase.Status)
	}
	if !purchase.BalanceDue.IsZero() {
		t.Errorf("balance due = %s, expected 0", purchase.BalanceDue)
	}
	if len(purchase.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(purchase.Items))
	}

	// Fully paid on the spot: the vendor balance nets to zero.
	if balance := vendorBalance(t, db, vendor.ID); !balance.IsZero() {
		t.Errorf("vendor balance = %s, expected 0", balance)
	}

	// The immediate payment landed as an OUT record for the full total.
	payments, err := models.GetPaymentsAll(ctx, db, nil, &vendor.ID)
	if err != nil {
		t.Fatalf("list payments: %v", err)
	}
	if len(payments) != 1 {
		t.Fatalf("expected 1 payment, got %d", len(payments))
	}
	if payments[0].Type != models.PaymentDirectionOut {
		t.Errorf("payment type = %s, expected OUT", payments[0].Type)
	}
	if !payments[0].Amount.Equal(decimal.NewFromInt(51500)) {
		t.Errorf("payment amount = %s, expected 51500", payments[0].Amount)
	}
}

func TestSavePurchase_PartialPayment(t *testing.T) {
	db := newTestDB(t)
	logger := newTestLogger()
	ctx := context.Background()

	vendor := seedVendor(t, db, "Mehta Gold")

	id, err := SavePurchase(ctx, db, logger, TransactionDraft{
		PartyId: vendor.ID,
		Items:   []models.NewTransactionItem{goldItem("10", "100")},
		Payment: &ImmediatePayment{AmountPaid: testNum("400"), Mode: "upi"},
	})
	if err != nil {
		t.Fatalf("save purchase: %v", err)
	}

	purchase, err := models.GetPurchase(ctx, db, id)
	if err != nil {
		t.Fatalf("load purchase: %v", err)
	}
	if purchase.Status != models.TransactionStatusPartial {
		t.Errorf("status = %s, expected PARTIAL", purchase.Status)
	}
	if !purchase.BalanceDue.Equal(decimal.NewFromInt(600)) {
		t.Errorf("balance due = %s, expected 600", purchase.BalanceDue)
	}
	if balance := vendorBalance(t, db, vendor.ID); !balance.Equal(decimal.NewFromInt(600)) {
		t.Errorf("vendor balance = %s, expected 600", balance)
	}
}

func TestSaveInvoice_UnpaidAndOverpaid(t *testing.T) {
	db := newTestDB(t)
	logger := newTestLogger()
	ctx := context.Background()

	customer := seedCustomer(t, db, "Anita Jewellers", "0")

	unpaidId, err := SaveInvoice(ctx, db, logger, TransactionDraft{
		PartyId: customer.ID,
		Items:   []models.NewTransactionItem{goldItem("10", "100")},
	})
	if err != nil {
		t.Fatalf("save unpaid invoice: %v", err)
	}
	unpaid, err := models.GetInvoice(ctx, db, unpaidId)
	if err != nil {
		t.Fatalf("load invoice: %v", err)
	}
	if unpaid.Number != "INV-0001" {
		t.Errorf("number = %s, expected INV-0001", unpaid.Number)
	}
	if unpaid.Status != models.TransactionStatusUnpaid {
		t.Errorf("status = %s, expected UNPAID", unpaid.Status)
	}
	if balance := customerBalance(t, db, customer.ID); !balance.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("customer balance = %s, expected 1000", balance)
	}

	// Overpayment stays on record as a negative balance due.
	overpaidId, err := SaveInvoice(ctx, db, logger, TransactionDraft{
		PartyId: customer.ID,
		Items:   []models.NewTransactionItem{goldItem("10", "100")},
		Payment: &ImmediatePayment{AmountPaid: testNum("1200"), Mode: "cash"},
	})
	if err != nil {
		t.Fatalf("save overpaid invoice: %v", err)
	}
	overpaid, err := models.GetInvoice(ctx, db, overpaidId)
	if err != nil {
		t.Fatalf("load invoice: %v", err)
	}
	if overpaid.Status != models.TransactionStatusPaid {
		t.Errorf("status = %s, expected PAID", overpaid.Status)
	}
	if !overpaid.BalanceDue.Equal(decimal.NewFromInt(-200)) {
		t.Errorf("balance due = %s, expected -200", overpaid.BalanceDue)
	}
	// 1000 owed, then 1000 - 1200 from the second invoice.
	if balance := customerBalance(t, db, customer.ID); !balance.Equal(decimal.NewFromInt(800)) {
		t.Errorf("customer balance = %s, expected 800", balance)
	}
}

func TestSavePurchase_EditLeavesBalanceAlone(t *testing.T) {
	db := newTestDB(t)
	logger := newTestLogger()
	ctx := context.Background()

	vendor := seedVendor(t, db, "Mehta Gold")

	id, err := SavePurchase(ctx, db, logger, TransactionDraft{
		PartyId: vendor.ID,
		Items:   []models.NewTransactionItem{goldItem("10", "100")},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if balance := vendorBalance(t, db, vendor.ID); !balance.Equal(decimal.NewFromInt(1000)) {
		t.Fatalf("balance after create = %s, expected 1000", balance)
	}

	editedId, err := SavePurchase(ctx, db, logger, TransactionDraft{
		ID:      id,
		PartyId: vendor.ID,
		Items: []models.NewTransactionItem{
			goldItem("10", "200"),
			goldItem("5", "100"),
		},
	})
	if err != nil {
		t.Fatalf("edit: %v", err)
	}
	if editedId != id {
		t.Fatalf("edit returned id %d, expected %d", editedId, id)
	}

	purchase, err := models.GetPurchase(ctx, db, id)
	if err != nil {
		t.Fatalf("load purchase: %v", err)
	}
	if purchase.Number != "PUR-0001" {
		t.Errorf("edit must keep the document number, got %s", purchase.Number)
	}
	if !purchase.Totals.Total.Equal(decimal.NewFromInt(2500)) {
		t.Errorf("total = %s, expected 2500", purchase.Totals.Total)
	}
	if len(purchase.Items) != 2 {
		t.Errorf("items must be replaced, got %d", len(purchase.Items))
	}
	if n := countRows(t, db, &models.TransactionItem{}); n != 2 {
		t.Errorf("stale item rows left behind: %d", n)
	}

	// The shipped policy: edits do not touch the balance.
	if balance := vendorBalance(t, db, vendor.ID); !balance.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("balance after edit = %s, expected unchanged 1000", balance)
	}
}

func TestSavePurchase_EditReconcilesWhenEnabled(t *testing.T) {
	db := newTestDB(t)
	logger := newTestLogger()
	ctx := context.Background()

	vendor := seedVendor(t, db, "Mehta Gold")

	id, err := SavePurchase(ctx, db, logger, TransactionDraft{
		PartyId: vendor.ID,
		Items:   []models.NewTransactionItem{goldItem("10", "100")},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	ReconcileBalanceOnEdit = true
	defer func() { ReconcileBalanceOnEdit = false }()

	_, err = SavePurchase(ctx, db, logger, TransactionDraft{
		ID:      id,
		PartyId: vendor.ID,
		Items:   []models.NewTransactionItem{goldItem("10", "150")},
	})
	if err != nil {
		t.Fatalf("edit: %v", err)
	}

	// 1000 from create, shifted by the 1500 - 1000 delta.
	if balance := vendorBalance(t, db, vendor.ID); !balance.Equal(decimal.NewFromInt(1500)) {
		t.Errorf("balance = %s, expected 1500", balance)
	}
}

func TestSavePurchase_EditMissingDocument(t *testing.T) {
	db := newTestDB(t)
	logger := newTestLogger()

	vendor := seedVendor(t, db, "Mehta Gold")

	_, err := SavePurchase(context.Background(), db, logger, TransactionDraft{
		ID:      9999,
		PartyId: vendor.ID,
		Items:   []models.NewTransactionItem{goldItem("10", "100")},
	})
	if !errors.Is(err, utils.ErrorRecordNotFound) {
		t.Fatalf("expected ErrorRecordNotFound, got %v", err)
	}
}

func TestSavePurchase_PaymentFailureRollsBackEverything(t *testing.T) {
	db := newTestDB(t)
	logger := newTestLogger()
	ctx := context.Background()

	vendor := seedVendor(t, db, "Sharma Bullion")

	// Force the payment insert, the last write of the transaction, to
	// fail. Document, balance shift and number series must all unwind.
	forced := errors.New("forced payment failure")
	err := db.Callback().Create().Before("gorm:create").Register("force_payment_failure", func(d *gorm.DB) {
		if d.Statement.Table == "payments" {
			d.AddError(forced)
		}
	})
	if err != nil {
		t.Fatalf("register callback: %v", err)
	}

	_, err = SavePurchase(ctx, db, logger, TransactionDraft{
		PartyId: vendor.ID,
		Items:   []models.NewTransactionItem{goldItem("10", "5000")},
		Payment: &ImmediatePayment{IsFullyPaid: true, Mode: "cash"},
	})
	if !errors.Is(err, forced) {
		t.Fatalf("expected forced failure to surface, got %v", err)
	}

	if n := countRows(t, db, &models.Purchase{}); n != 0 {
		t.Errorf("purchase survived rollback: %d rows", n)
	}
	if n := countRows(t, db, &models.TransactionItem{}); n != 0 {
		t.Errorf("items survived rollback: %d rows", n)
	}
	if n := countRows(t, db, &models.PaymentRecord{}); n != 0 {
		t.Errorf("payment survived rollback: %d rows", n)
	}
	if balance := vendorBalance(t, db, vendor.ID); !balance.IsZero() {
		t.Errorf("vendor balance shifted despite rollback: %s", balance)
	}

	if err := db.Callback().Create().Remove("force_payment_failure"); err != nil {
		t.Fatalf("remove callback: %v", err)
	}

	// The rolled-back number allocation left no gap.
	id, err := SavePurchase(ctx, db, logger, TransactionDraft{
		PartyId: vendor.ID,
		Items:   []models.NewTransactionItem{goldItem("10", "5000")},
	})
	if err != nil {
		t.Fatalf("save after rollback: %v", err)
	}
	purchase, err := models.GetPurchase(ctx, db, id)
	if err != nil {
		t.Fatalf("load purchase: %v", err)
	}
	if purchase.Number != "PUR-0001" {
		t.Errorf("number = %s, expected PUR-0001 after rollback", purchase.Number)
	}
}

func TestSavedDocuments_KeepPartySnapshotAfterRename(t *testing.T) {
	db := newTestDB(t)
	logger := newTestLogger()
	ctx := context.Background()

	customer, err := models.CreateCustomer(ctx, db, &models.NewCustomer{
		Name:  "Anita Jewellers",
		Phone: "+919876543210",
	})
	if err != nil {
		t.Fatalf("create customer: %v", err)
	}
	vendor, err := models.CreateVendor(ctx, db, &models.NewVendor{
		Name:  "Sharma Bullion",
		Phone: "+919812345678",
	})
	if err != nil {
		t.Fatalf("create vendor: %v", err)
	}

	invoiceId, err := SaveInvoice(ctx, db, logger, TransactionDraft{
		PartyId: customer.ID,
		Items:   []models.NewTransactionItem{goldItem("10", "100")},
	})
	if err != nil {
		t.Fatalf("save invoice: %v", err)
	}
	purchaseId, err := SavePurchase(ctx, db, logger, TransactionDraft{
		PartyId: vendor.ID,
		Items:   []models.NewTransactionItem{goldItem("10", "100")},
	})
	if err != nil {
		t.Fatalf("save purchase: %v", err)
	}

	if _, err := models.UpdateCustomer(ctx, db, customer.ID, &models.NewCustomer{
		Name:  "Anita Gems and Jewels",
		Phone: "+919811111111",
	}); err != nil {
		t.Fatalf("rename customer: %v", err)
	}
	if _, err := models.UpdateVendor(ctx, db, vendor.ID, &models.NewVendor{
		Name:  "Sharma Sons Bullion",
		Phone: "+919822222222",
	}); err != nil {
		t.Fatalf("rename vendor: %v", err)
	}

	// Historical documents keep the party details captured at save time.
	invoice, err := models.GetInvoice(ctx, db, invoiceId)
	if err != nil {
		t.Fatalf("load invoice: %v", err)
	}
	if invoice.PartyName != "Anita Jewellers" {
		t.Errorf("invoice party name = %q, expected snapshot Anita Jewellers", invoice.PartyName)
	}
	if invoice.PartyPhone != "+919876543210" {
		t.Errorf("invoice party phone = %q, expected snapshot +919876543210", invoice.PartyPhone)
	}

	purchase, err := models.GetPurchase(ctx, db, purchaseId)
	if err != nil {
		t.Fatalf("load purchase: %v", err)
	}
	if purchase.PartyName != "Sharma Bullion" {
		t.Errorf("purchase party name = %q, expected snapshot Sharma Bullion", purchase.PartyName)
	}
	if purchase.PartyPhone != "+919812345678" {
		t.Errorf("purchase party phone = %q, expected snapshot +919812345678", purchase.PartyPhone)
	}
}

func TestSavePurchase_SequentialNumbers(t *testing.T) {
	db := newTestDB(t)
	logger := newTestLogger()
	ctx := context.Background()

	vendor := seedVendor(t, db, "Sharma Bullion")

	expected := []string{"PUR-0001", "PUR-0002", "PUR-0003"}
	for _, want := range expected {
		id, err := SavePurchase(ctx, db, logger, TransactionDraft{
			PartyId: vendor.ID,
			Items:   []models.NewTransactionItem{goldItem("1", "100")},
		})
		if err != nil {
			t.Fatalf("save: %v", err)
		}
		purchase, err := models.GetPurchase(ctx, db, id)
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if purchase.Number != want {
			t.Fatalf("number = %s, expected %s", purchase.Number, want)
		}
	}
}
