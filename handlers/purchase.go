package handlers

import (
	"github.com/aurumsoft/jewelbooks_backend/models"
	"github.com/aurumsoft/jewelbooks_backend/utils"
	"github.com/aurumsoft/jewelbooks_backend/workflow"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type PurchaseHandler struct {
	DB     *gorm.DB
	Logger *logrus.Logger
}

func NewPurchaseHandler(db *gorm.DB, logger *logrus.Logger) *PurchaseHandler {
	return &PurchaseHandler{DB: db, Logger: logger}
}

func (h *PurchaseHandler) Create(c *gin.Context) {
	var draft workflow.TransactionDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		utils.RespondInvalidInput(c, err)
		return
	}
	draft.ID = 0

	id, err := workflow.SavePurchase(c.Request.Context(), h.DB, h.Logger, draft)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondCreated(c, gin.H{"id": id})
}

func (h *PurchaseHandler) Update(c *gin.Context) {
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

	savedId, err := workflow.SavePurchase(c.Request.Context(), h.DB, h.Logger, draft)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, gin.H{"id": savedId})
}

func (h *PurchaseHandler) Get(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		utils.RespondBadRequest(c, err)
		return
	}
	purchase, err := models.GetPurchase(c.Request.Context(), h.DB, id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, purchase)
}

func (h *PurchaseHandler) List(c *gin.Context) {
	results, err := models.GetPurchasesAll(c.Request.Context(), h.DB, queryString(c, "number"), queryInt(c, "vendor_id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, results)
}

func (h *PurchaseHandler) Delete(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		utils.RespondBadRequest(c, err)
		return
	}
	purchase, err := models.DeletePurchase(c.Request.Context(), h.DB, id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, purchase)
}
