package handlers

import (
	"github.com/aurumsoft/jewelbooks_backend/models"
	"github.com/aurumsoft/jewelbooks_backend/utils"
	"github.com/aurumsoft/jewelbooks_backend/workflow"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type PaymentHandler struct {
	DB     *gorm.DB
	Logger *logrus.Logger
}

func NewPaymentHandler(db *gorm.DB, logger *logrus.Logger) *PaymentHandler {
	return &PaymentHandler{DB: db, Logger: logger}
}

func (h *PaymentHandler) Create(c *gin.Context) {
	var input models.NewPaymentRecord
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondInvalidInput(c, err)
		return
	}
	payment, err := workflow.RecordPayment(c.Request.Context(), h.DB, h.Logger, input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondCreated(c, payment)
}

func (h *PaymentHandler) Get(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		utils.RespondBadRequest(c, err)
		return
	}
	payment, err := models.GetPayment(c.Request.Context(), h.DB, id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, payment)
}

func (h *PaymentHandler) List(c *gin.Context) {
	var partyType *models.PartyType
	if v := queryString(c, "party_type"); v != nil {
		pt := models.PartyType(*v)
		partyType = &pt
	}
	results, err := models.GetPaymentsAll(c.Request.Context(), h.DB, partyType, queryInt(c, "party_id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, results)
}

func (h *PaymentHandler) Delete(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		utils.RespondBadRequest(c, err)
		return
	}
	payment, err := workflow.DeletePayment(c.Request.Context(), h.DB, h.Logger, id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, payment)
}
