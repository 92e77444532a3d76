package handlers

import (
	"github.com/aurumsoft/jewelbooks_backend/models"
	"github.com/aurumsoft/jewelbooks_backend/utils"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type CustomerHandler struct {
	DB     *gorm.DB
	Logger *logrus.Logger
}

func NewCustomerHandler(db *gorm.DB, logger *logrus.Logger) *CustomerHandler {
	return &CustomerHandler{DB: db, Logger: logger}
}

func (h *CustomerHandler) Create(c *gin.Context) {
	var input models.NewCustomer
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondInvalidInput(c, err)
		return
	}
	customer, err := models.CreateCustomer(c.Request.Context(), h.DB, &input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondCreated(c, customer)
}

func (h *CustomerHandler) Update(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		utils.RespondBadRequest(c, err)
		return
	}
	var input models.NewCustomer
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondInvalidInput(c, err)
		return
	}
	customer, err := models.UpdateCustomer(c.Request.Context(), h.DB, id, &input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, customer)
}

func (h *CustomerHandler) Get(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		utils.RespondBadRequest(c, err)
		return
	}
	customer, err := models.GetCustomer(c.Request.Context(), h.DB, id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, customer)
}

func (h *CustomerHandler) List(c *gin.Context) {
	results, err := models.GetCustomersAll(c.Request.Context(), h.DB, queryString(c, "name"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, results)
}

func (h *CustomerHandler) Delete(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		utils.RespondBadRequest(c, err)
		return
	}
	customer, err := models.DeleteCustomer(c.Request.Context(), h.DB, id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, customer)
}
