package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aurumsoft/jewelbooks_backend/config"
	"github.com/aurumsoft/jewelbooks_backend/models"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func newHandlerTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := config.OpenDatabase(":memory:")
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := models.MigrateAll(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}

func newHandlerTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestCustomerCreate_BindFailureReturnsFieldMap(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := newHandlerTestDB(t)
	h := NewCustomerHandler(db, newHandlerTestLogger())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(http.MethodPost, "/api/customers", `{"phone":"+919876543210"}`)

	h.Create(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, expected 400", w.Code)
	}

	var body struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Error != "validation failed" {
		t.Errorf("error = %q, expected validation failed", body.Error)
	}
	if body.Fields["Name"] != "required" {
		t.Errorf("fields = %v, expected Name mapped to required", body.Fields)
	}

	// Nothing was written by the rejected request.
	var count int64
	if err := db.Model(&models.Customer{}).Count(&count).Error; err != nil {
		t.Fatalf("count customers: %v", err)
	}
	if count != 0 {
		t.Fatalf("rejected create persisted %d customers", count)
	}
}

func TestCustomerCreate_MalformedJsonIsPlainError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := newHandlerTestDB(t)
	h := NewCustomerHandler(db, newHandlerTestLogger())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(http.MethodPost, "/api/customers", `{"name":`)

	h.Create(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, expected 400", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if _, ok := body["fields"]; ok {
		t.Error("malformed json must not produce a validator field map")
	}
}

func TestNumberSeriesEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := newHandlerTestDB(t)
	h := NewSettingHandler(db, newHandlerTestLogger())

	err := db.Transaction(func(tx *gorm.DB) error {
		if _, err := models.NextDocumentNumber(tx, models.ModulePurchase, models.PrefixPurchase); err != nil {
			return err
		}
		_, err := models.NextDocumentNumber(tx, models.ModuleInvoice, models.PrefixInvoice)
		return err
	})
	if err != nil {
		t.Fatalf("seed series: %v", err)
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/number-series", nil)

	h.NumberSeries(c)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, expected 200", w.Code)
	}
	var body struct {
		Data []models.DocumentNumberSeries `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(body.Data) != 2 {
		t.Fatalf("expected 2 series, got %d", len(body.Data))
	}
	// Ordered by module name: invoice before purchase.
	if body.Data[0].ModuleName != models.ModuleInvoice || body.Data[0].NextSequence != 2 {
		t.Errorf("first series = %+v, expected invoice at sequence 2", body.Data[0])
	}
	if body.Data[1].ModuleName != models.ModulePurchase || body.Data[1].NextSequence != 2 {
		t.Errorf("second series = %+v, expected purchase at sequence 2", body.Data[1])
	}
}
