package routes

import (
	"thaki_platform/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

// addAdminRoutes registers the back-office dashboard surface.
func addAdminRoutes(rg *gin.RouterGroup, admin *handlers.AdminHandler, payment *handlers.PaymentHandler) {
	adminGroup := rg.Group("/admin")

	adminGroup.GET("/dashboard", admin.GetDashboard)
	adminGroup.GET("/export/:collection", admin.ExportCollection)

	adminGroup.PATCH("/payments/approve", payment.ApprovePayment)
	adminGroup.PATCH("/payments/reject", payment.RejectPayment)
}
