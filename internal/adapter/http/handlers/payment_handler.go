package handlers

import (
	"errors"
	"log"
	"net/http"

	request "thaki_platform/internal/adapter/http/dto/request"
	response "thaki_platform/internal/adapter/http/dto/response"
	"thaki_platform/internal/domain/entities"
	"thaki_platform/internal/usecase"
	"thaki_platform/pkg"

	"github.com/gin-gonic/gin"
)

// PaymentHandler covers both payment paths: manual receipt submission plus
// the admin approve/reject, and the optional online checkout.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

func (h *PaymentHandler) SubmitPayment(c *gin.Context) {
	var payload request.SubmitPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.SubmitPayment(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] submit success payment_id=%s", created.ID)

	c.JSON(http.StatusCreated, response.FromPayment(created))
}

func (h *PaymentHandler) ApprovePayment(c *gin.Context) {
	h.resolvePayment(c, entities.PaymentStatusApproved)
}

func (h *PaymentHandler) RejectPayment(c *gin.Context) {
	h.resolvePayment(c, entities.PaymentStatusRejected)
}

func (h *PaymentHandler) resolvePayment(c *gin.Context, status entities.PaymentStatus) {
	var payload request.ResolvePaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	resolved, err := h.usecase.ResolvePayment(c.Request.Context(), payload.PaymentID, status)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] resolve success payment_id=%s status=%s", resolved.ID, resolved.Status)

	c.JSON(http.StatusOK, response.FromPayment(resolved))
}

func (h *PaymentHandler) CheckoutPlan(c *gin.Context) {
	var payload request.CheckoutRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.CheckoutPlan(c.Request.Context(), payload.PlanID, payload.PayerEmail, payload.DepositorName, payload.Phone)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] checkout success payment_id=%s status=%s", created.ID, created.Status)

	c.JSON(http.StatusCreated, response.FromPayment(created))
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingPaymentFields), errors.Is(err, usecase.ErrInvalidPaymentStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrUnknownPlan):
		return pkg.NewDomainErrorSimple("UNKNOWN_PLAN", "Unknown pricing plan", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPlanNotChargeable):
		return pkg.NewDomainErrorSimple("PLAN_NOT_CHARGEABLE", "Plan has no charge amount", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayNotOnline):
		return pkg.NewDomainErrorSimple("CHECKOUT_UNAVAILABLE", "Online checkout is not available", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
