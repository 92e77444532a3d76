package routes

import (
	"github.com/aurumsoft/jewelbooks_backend/handlers"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, logger *logrus.Logger) {

	purchaseHandler := handlers.NewPurchaseHandler(db, logger)
	invoiceHandler := handlers.NewInvoiceHandler(db, logger)
	customerHandler := handlers.NewCustomerHandler(db, logger)
	vendorHandler := handlers.NewVendorHandler(db, logger)
	paymentHandler := handlers.NewPaymentHandler(db, logger)
	productHandler := handlers.NewProductHandler(db, logger)
	expenseHandler := handlers.NewExpenseHandler(db, logger)
	settingHandler := handlers.NewSettingHandler(db, logger)

	api := r.Group("/api")
	{
		purchases := api.Group("/purchases")
		{
			purchases.GET("", purchaseHandler.List)
			purchases.GET("/:id", purchaseHandler.Get)
			purchases.POST("", purchaseHandler.Create)
			purchases.PUT("/:id", purchaseHandler.Update)
			purchases.DELETE("/:id", purchaseHandler.Delete)
		}

		invoices := api.Group("/invoices")
		{
			invoices.GET("", invoiceHandler.List)
			invoices.GET("/:id", invoiceHandler.Get)
			invoices.POST("", invoiceHandler.Create)
			invoices.PUT("/:id", invoiceHandler.Update)
			invoices.DELETE("/:id", invoiceHandler.Delete)
		}

		customers := api.Group("/customers")
		{
			customers.GET("", customerHandler.List)
			customers.GET("/:id", customerHandler.Get)
			customers.POST("", customerHandler.Create)
			customers.PUT("/:id", customerHandler.Update)
			customers.DELETE("/:id", customerHandler.Delete)
		}

		vendors := api.Group("/vendors")
		{
			vendors.GET("", vendorHandler.List)
			vendors.GET("/:id", vendorHandler.Get)
			vendors.POST("", vendorHandler.Create)
			vendors.PUT("/:id", vendorHandler.Update)
			vendors.DELETE("/:id", vendorHandler.Delete)
		}

		payments := api.Group("/payments")
		{
			payments.GET("", paymentHandler.List)
			payments.GET("/:id", paymentHandler.Get)
			payments.POST("", paymentHandler.Create)
			payments.DELETE("/:id", paymentHandler.Delete)
		}

		products := api.Group("/products")
		{
			products.GET("", productHandler.List)
			products.GET("/:id", productHandler.Get)
			products.POST("", productHandler.Create)
			products.PUT("/:id", productHandler.Update)
			products.DELETE("/:id", productHandler.Delete)
		}

		expenses := api.Group("/expenses")
		{
			expenses.GET("", expenseHandler.List)
			expenses.POST("", expenseHandler.Create)
			expenses.PUT("/:id", expenseHandler.Update)
			expenses.DELETE("/:id", expenseHandler.Delete)
		}

		settings := api.Group("/settings")
		{
			settings.GET("", settingHandler.List)
			settings.GET("/:key", settingHandler.Get)
			settings.PUT("/:key", settingHandler.Put)
		}

		api.GET("/number-series", settingHandler.NumberSeries)
	}
}
