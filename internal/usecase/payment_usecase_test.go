package usecase

import (
	"context"
	"errors"
	"testing"

	"thaki_platform/internal/domain/entities"
	mock_interfaces "thaki_platform/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func submitTestPayment(t *testing.T, uc *PaymentUseCase) entities.PaymentRequest {
	t.Helper()
	p, err := uc.SubmitPayment(context.Background(), entities.PaymentRequest{
		Plan:          "pro",
		DepositorName: "Ali",
		Phone:         "777",
		ReceiptNumber: "R-1",
		ReceiptImage:  "data:image/png;base64,abc",
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	return p
}

func TestPaymentUseCase_SubmitPayment(t *testing.T) {
	ctx := context.Background()

	t.Run("missing fields", func(t *testing.T) {
		uc := NewPaymentUseCase(newTestRepo(), nil)

		_, err := uc.SubmitPayment(ctx, entities.PaymentRequest{Plan: "pro", DepositorName: "Ali"})
		if !errors.Is(err, ErrMissingPaymentFields) {
			t.Fatalf("expected ErrMissingPaymentFields, got %v", err)
		}
	})

	t.Run("always enters as pending", func(t *testing.T) {
		uc := NewPaymentUseCase(newTestRepo(), nil)

		p, err := uc.SubmitPayment(ctx, entities.PaymentRequest{
			Plan:          "pro",
			DepositorName: "Ali",
			ReceiptNumber: "R-1",
			ReceiptImage:  "data:image/png;base64,abc",
			Status:        entities.PaymentStatusApproved,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Status != entities.PaymentStatusPending {
			t.Fatalf("expected pending, got %s", p.Status)
		}
		if p.ID == "" || p.Date.IsZero() {
			t.Fatalf("id and date must be assigned: %+v", p)
		}
	})
}

func TestPaymentUseCase_ResolvePayment(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown id", func(t *testing.T) {
		uc := NewPaymentUseCase(newTestRepo(), nil)

		_, err := uc.ResolvePayment(ctx, "nope", entities.PaymentStatusApproved)
		if !errors.Is(err, ErrPaymentNotFound) {
			t.Fatalf("expected ErrPaymentNotFound, got %v", err)
		}
	})

	t.Run("pending is not a resolution", func(t *testing.T) {
		uc := NewPaymentUseCase(newTestRepo(), nil)

		_, err := uc.ResolvePayment(ctx, "any", entities.PaymentStatusPending)
		if !errors.Is(err, ErrInvalidPaymentStatus) {
			t.Fatalf("expected ErrInvalidPaymentStatus, got %v", err)
		}
	})

	t.Run("approve a pending payment", func(t *testing.T) {
		uc := NewPaymentUseCase(newTestRepo(), nil)
		p := submitTestPayment(t, uc)

		resolved, err := uc.ResolvePayment(ctx, p.ID, entities.PaymentStatusApproved)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resolved.Status != entities.PaymentStatusApproved {
			t.Fatalf("expected approved, got %s", resolved.Status)
		}

		list, err := uc.ListPayments(ctx)
		if err != nil || len(list) != 1 || list[0].Status != entities.PaymentStatusApproved {
			t.Fatalf("resolution not persisted: err=%v list=%+v", err, list)
		}
	})

	t.Run("terminal status wins over a later resolve", func(t *testing.T) {
		uc := NewPaymentUseCase(newTestRepo(), nil)
		p := submitTestPayment(t, uc)

		if _, err := uc.ResolvePayment(ctx, p.ID, entities.PaymentStatusApproved); err != nil {
			t.Fatalf("approve failed: %v", err)
		}

		resolved, err := uc.ResolvePayment(ctx, p.ID, entities.PaymentStatusRejected)
		if err != nil {
			t.Fatalf("stale resolve must be a no-op, got %v", err)
		}
		if resolved.Status != entities.PaymentStatusApproved {
			t.Fatalf("stored record must win, got %s", resolved.Status)
		}
	})
}

func TestPaymentUseCase_CheckoutPlan(t *testing.T) {
	ctx := context.Background()

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewPaymentUseCase(newTestRepo(), nil)

		_, err := uc.CheckoutPlan(ctx, "pro", "x@test.com", "Ali", "777")
		if !errors.Is(err, ErrPaymentGatewayNotOnline) {
			t.Fatalf("expected ErrPaymentGatewayNotOnline, got %v", err)
		}
	})

	t.Run("unknown plan", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(newTestRepo(), gateway)

		_, err := uc.CheckoutPlan(ctx, "platinum", "x@test.com", "Ali", "777")
		if !errors.Is(err, ErrUnknownPlan) {
			t.Fatalf("expected ErrUnknownPlan, got %v", err)
		}
	})

	t.Run("free plan has nothing to charge", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(newTestRepo(), gateway)

		_, err := uc.CheckoutPlan(ctx, "free", "x@test.com", "Ali", "777")
		if !errors.Is(err, ErrPlanNotChargeable) {
			t.Fatalf("expected ErrPlanNotChargeable, got %v", err)
		}
	})

	t.Run("approved charge is recorded approved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(newTestRepo(), gateway)

		gateway.EXPECT().ChargePlan(gomock.Any(), "Professional", 29.0, "x@test.com").Return("mp-1", "approved", nil)

		p, err := uc.CheckoutPlan(ctx, "pro", "x@test.com", "Ali", "777")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Status != entities.PaymentStatusApproved {
			t.Fatalf("expected approved, got %s", p.Status)
		}
		if p.ReceiptNumber != "mp-1" {
			t.Fatalf("provider payment id must be kept: %+v", p)
		}

		list, err := uc.ListPayments(ctx)
		if err != nil || len(list) != 1 {
			t.Fatalf("checkout not persisted: err=%v list=%+v", err, list)
		}
	})

	t.Run("any other provider status is recorded rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(newTestRepo(), gateway)

		gateway.EXPECT().ChargePlan(gomock.Any(), "Professional", 29.0, "x@test.com").Return("mp-2", "in_process", nil)

		p, err := uc.CheckoutPlan(ctx, "pro", "x@test.com", "Ali", "777")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Status != entities.PaymentStatusRejected {
			t.Fatalf("expected rejected, got %s", p.Status)
		}
	})

	t.Run("gateway failure surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(newTestRepo(), gateway)

		gateway.EXPECT().ChargePlan(gomock.Any(), "Professional", 29.0, gomock.Any()).Return("", "", errors.New("boom"))

		_, err := uc.CheckoutPlan(ctx, "pro", "x@test.com", "Ali", "777")
		if err == nil || err.Error() != "boom" {
			t.Fatalf("expected boom, got %v", err)
		}
	})
}
