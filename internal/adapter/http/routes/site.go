package routes

import (
	"thaki_platform/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

// addSiteRoutes registers everything the public marketing pages call.
func addSiteRoutes(
	rg *gin.RouterGroup,
	interest *handlers.InterestHandler,
	review *handlers.ReviewHandler,
	payment *handlers.PaymentHandler,
	message *handlers.MessageHandler,
	application *handlers.ApplicationHandler,
	order *handlers.OrderHandler,
	visitor *handlers.VisitorHandler,
	tool *handlers.ToolHandler,
) {
	rg.POST("/interests", interest.CreateInterest)

	rg.GET("/reviews", review.ListReviews)
	rg.POST("/reviews", review.CreateReview)

	rg.POST("/payments", payment.SubmitPayment)
	rg.POST("/checkout", payment.CheckoutPlan)

	rg.POST("/messages", message.CreateMessage)

	rg.GET("/jobs", application.ListJobs)
	rg.POST("/applications", application.CreateApplication)

	rg.GET("/orders", order.ListOrders)
	rg.POST("/orders", order.PlaceOrder)

	rg.POST("/visits", visitor.RecordVisit)
	rg.GET("/visits", visitor.GetVisitorCount)

	rg.GET("/tools", tool.ListTools)
	rg.POST("/tools/:id/run", tool.RunTool)
	rg.GET("/hero-image", tool.GetHeroImage)
}
