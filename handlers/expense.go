package handlers

import (
	"time"

	"github.com/aurumsoft/jewelbooks_backend/models"
	"github.com/aurumsoft/jewelbooks_backend/utils"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ExpenseHandler struct {
	DB     *gorm.DB
	Logger *logrus.Logger
}

func NewExpenseHandler(db *gorm.DB, logger *logrus.Logger) *ExpenseHandler {
	return &ExpenseHandler{DB: db, Logger: logger}
}

func queryDate(c *gin.Context, key string) *time.Time {
	if v, ok := c.GetQuery(key); ok && v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			return &t
		}
	}
	return nil
}

func (h *ExpenseHandler) Create(c *gin.Context) {
	var input models.NewExpense
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondInvalidInput(c, err)
		return
	}
	expense, err := models.CreateExpense(c.Request.Context(), h.DB, &input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondCreated(c, expense)
}

func (h *ExpenseHandler) Update(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		utils.RespondBadRequest(c, err)
		return
	}
	var input models.NewExpense
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondInvalidInput(c, err)
		return
	}
	expense, err := models.UpdateExpense(c.Request.Context(), h.DB, id, &input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, expense)
}

func (h *ExpenseHandler) List(c *gin.Context) {
	results, err := models.GetExpensesAll(c.Request.Context(), h.DB, queryDate(c, "from"), queryDate(c, "to"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, results)
}

func (h *ExpenseHandler) Delete(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		utils.RespondBadRequest(c, err)
		return
	}
	expense, err := models.DeleteExpense(c.Request.Context(), h.DB, id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, expense)
}
