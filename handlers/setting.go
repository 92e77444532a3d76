package handlers

import (
	"github.com/aurumsoft/jewelbooks_backend/models"
	"github.com/aurumsoft/jewelbooks_backend/utils"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type SettingHandler struct {
	DB     *gorm.DB
	Logger *logrus.Logger
}

func NewSettingHandler(db *gorm.DB, logger *logrus.Logger) *SettingHandler {
	return &SettingHandler{DB: db, Logger: logger}
}

type putSettingInput struct {
	Value string `json:"value"`
}

func (h *SettingHandler) Get(c *gin.Context) {
	setting, err := models.GetSetting(c.Request.Context(), h.DB, c.Param("key"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if setting == nil {
		utils.RespondError(c, utils.ErrorRecordNotFound)
		return
	}
	utils.RespondOK(c, setting)
}

func (h *SettingHandler) Put(c *gin.Context) {
	var input putSettingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondInvalidInput(c, err)
		return
	}
	setting, err := models.PutSetting(c.Request.Context(), h.DB, c.Param("key"), input.Value)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, setting)
}

func (h *SettingHandler) List(c *gin.Context) {
	results, err := models.GetSettingsAll(c.Request.Context(), h.DB)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, results)
}

// NumberSeries lists the document number series so the UI can show
// the next purchase and invoice numbers before saving.
func (h *SettingHandler) NumberSeries(c *gin.Context) {
	results, err := models.GetDocumentNumberSeriesAll(c.Request.Context(), h.DB)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, results)
}
