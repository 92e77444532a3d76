package handlers

import (
	"github.com/aurumsoft/jewelbooks_backend/models"
	"github.com/aurumsoft/jewelbooks_backend/utils"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ProductHandler struct {
	DB     *gorm.DB
	Logger *logrus.Logger
}

func NewProductHandler(db *gorm.DB, logger *logrus.Logger) *ProductHandler {
	return &ProductHandler{DB: db, Logger: logger}
}

func (h *ProductHandler) Create(c *gin.Context) {
	var input models.NewProduct
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondInvalidInput(c, err)
		return
	}
	product, err := models.CreateProduct(c.Request.Context(), h.DB, &input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondCreated(c, product)
}

func (h *ProductHandler) Update(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		utils.RespondBadRequest(c, err)
		return
	}
	var input models.NewProduct
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondInvalidInput(c, err)
		return
	}
	product, err := models.UpdateProduct(c.Request.Context(), h.DB, id, &input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, product)
}

func (h *ProductHandler) Get(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		utils.RespondBadRequest(c, err)
		return
	}
	product, err := models.GetProduct(c.Request.Context(), h.DB, id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, product)
}

func (h *ProductHandler) List(c *gin.Context) {
	results, err := models.GetProductsAll(c.Request.Context(), h.DB, queryString(c, "name"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, results)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		utils.RespondBadRequest(c, err)
		return
	}
	product, err := models.DeleteProduct(c.Request.Context(), h.DB, id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, product)
}
