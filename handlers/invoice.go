package handlers

import (
	"github.com/aurumsoft/jewelbooks_backend/models"
	"github.com/aurumsoft/jewelbooks_backend/utils"
	"github.com/aurumsoft/jewelbooks_backend/workflow"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type InvoiceHandler struct {
	DB     *gorm.DB
	Logger *logrus.Logger
}

func NewInvoiceHandler(db *gorm.DB, logger *logrus.Logger) *InvoiceHandler {
	return &InvoiceHandler{DB: db, Logger: logger}
}

func (h *InvoiceHandler) Create(c *gin.Context) {
	var draft workflow.TransactionDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		utils.RespondInvalidInput(c, err)
		return
	}
	draft.ID = 0

	id, err := workflow.SaveInvoice(c.Request.Context(), h.DB, h.Logger, draft)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondCreated(c, gin.H{"id": id})
}

func (h *InvoiceHandler) Update(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		utils.RespondBadRequest(c, err)
		return
	}
	var draft workflow.TransactionDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		utils.RespondInvalidInput(c, err)
		return
	}
	draft.ID = id

	savedId, err := workflow.SaveInvoice(c.Request.Context(), h.DB, h.Logger, draft)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, gin.H{"id": savedId})
}

func (h *InvoiceHandler) Get(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		utils.RespondBadRequest(c, err)
		return
	}
	invoice, err := models.GetInvoice(c.Request.Context(), h.DB, id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, invoice)
}

func (h *InvoiceHandler) List(c *gin.Context) {
	results, err := models.GetInvoicesAll(c.Request.Context(), h.DB, queryString(c, "number"), queryInt(c, "customer_id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, results)
}

func (h *InvoiceHandler) Delete(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		utils.RespondBadRequest(c, err)
		return
	}
	invoice, err := models.DeleteInvoice(c.Request.Context(), h.DB, id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, invoice)
}
