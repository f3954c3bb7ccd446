package request

import "thaki_platform/internal/domain/entities"

// SubmitPaymentRequest carries a manual bank-transfer receipt. ReceiptImage
// is the uploaded scan as a data URI.

type SubmitPaymentRequest struct {
	Plan          string `json:"plan" binding:"required"`
	DepositorName string `json:"depositorName" binding:"required"`
	Phone         string `json:"phone"`
	ReceiptNumber string `json:"receiptNumber" binding:"required"`
	ReceiptImage  string `json:"receiptImageBase64" binding:"required"`
}

func (r SubmitPaymentRequest) ToEntity() entities.PaymentRequest {
	return entities.PaymentRequest{
		Plan:          r.Plan,
		DepositorName: r.DepositorName,
		Phone:         r.Phone,
		ReceiptNumber: r.ReceiptNumber,
		ReceiptImage:  r.ReceiptImage,
	}
}

// ResolvePaymentRequest identifies the pending payment an admin is
// approving or rejecting.

type ResolvePaymentRequest struct {
	PaymentID string `json:"payment_id" binding:"required"`
}

// CheckoutRequest starts an online card payment for a pricing plan.

type CheckoutRequest struct {
	PlanID        string `json:"plan_id" binding:"required"`
	PayerEmail    string `json:"payer_email" binding:"required"`
	DepositorName string `json:"depositorName"`
	Phone         string `json:"phone"`
}
