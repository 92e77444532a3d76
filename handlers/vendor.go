package handlers

import (
	"github.com/aurumsoft/jewelbooks_backend/models"
	"github.com/aurumsoft/jewelbooks_backend/utils"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type VendorHandler struct {
	DB     *gorm.DB
	Logger *logrus.Logger
}

func NewVendorHandler(db *gorm.DB, logger *logrus.Logger) *VendorHandler {
	return &VendorHandler{DB: db, Logger: logger}
}

func (h *VendorHandler) Create(c *gin.Context) {
	var input models.NewVendor
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondInvalidInput(c, err)
		return
	}
	vendor, err := models.CreateVendor(c.Request.Context(), h.DB, &input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondCreated(c, vendor)
}

func (h *VendorHandler) Update(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		utils.RespondBadRequest(c, err)
		return
	}
	var input models.NewVendor
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondInvalidInput(c, err)
		return
	}
	vendor, err := models.UpdateVendor(c.Request.Context(), h.DB, id, &input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, vendor)
}

func (h *VendorHandler) Get(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		utils.RespondBadRequest(c, err)
		return
	}
	vendor, err := models.GetVendor(c.Request.Context(), h.DB, id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, vendor)
}

func (h *VendorHandler) List(c *gin.Context) {
	results, err := models.GetVendorsAll(c.Request.Context(), h.DB, queryString(c, "name"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, results)
}

func (h *VendorHandler) Delete(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		utils.RespondBadRequest(c, err)
		return
	}
	vendor, err := models.DeleteVendor(c.Request.Context(), h.DB, id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, vendor)
}
