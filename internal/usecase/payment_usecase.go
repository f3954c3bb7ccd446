package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"thaki_platform/internal/domain/catalog"
	"thaki_platform/internal/domain/entities"
	"thaki_platform/internal/usecase/interfaces"
)

var (
	ErrMissingPaymentFields    = errors.New("missing payment fields")
	ErrPaymentNotFound         = errors.New("payment not found")
	ErrInvalidPaymentStatus    = errors.New("invalid payment status")
	ErrUnknownPlan             = errors.New("unknown pricing plan")
	ErrPlanNotChargeable       = errors.New("plan has no charge amount")
	ErrPaymentGatewayNotOnline = errors.New("payment gateway not configured")
)

// IPaymentUseCase covers both payment paths: the manual bank-transfer
// receipt reviewed by an admin, and the optional online checkout that is
// resolved by the provider immediately.

type IPaymentUseCase interface {
	SubmitPayment(ctx context.Context, in entities.PaymentRequest) (entities.PaymentRequest, error)
	ResolvePayment(ctx context.Context, id string, status entities.PaymentStatus) (entities.PaymentRequest, error)
	CheckoutPlan(ctx context.Context, planID, payerEmail, depositorName, phone string) (entities.PaymentRequest, error)
	ListPayments(ctx context.Context) ([]entities.PaymentRequest, error)
}

type PaymentUseCase struct {
	repo    interfaces.IRecordRepository
	gateway interfaces.IPaymentGateway
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(repo interfaces.IRecordRepository, gateway interfaces.IPaymentGateway) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, gateway: gateway}
}

// SubmitPayment stores a new receipt. Whatever the caller sent, the record
// always enters the collection as pending.
func (u *PaymentUseCase) SubmitPayment(ctx context.Context, in entities.PaymentRequest) (entities.PaymentRequest, error) {
	in.Plan = strings.TrimSpace(in.Plan)
	in.DepositorName = strings.TrimSpace(in.DepositorName)
	in.Phone = strings.TrimSpace(in.Phone)
	in.ReceiptNumber = strings.TrimSpace(in.ReceiptNumber)
	if in.Plan == "" || in.DepositorName == "" || in.ReceiptNumber == "" || in.ReceiptImage == "" {
		return entities.PaymentRequest{}, ErrMissingPaymentFields
	}

	in.ID = ensureRecordID(in.ID)
	in.Date = ensureRecordDate(in.Date)
	in.Status = entities.PaymentStatusPending

	list, err := u.repo.Payments(ctx)
	if err != nil {
		return entities.PaymentRequest{}, err
	}
	list = append(list, in)
	if err := u.repo.SavePayments(ctx, list); err != nil {
		return entities.PaymentRequest{}, err
	}
	log.Printf("[payment][usecase] submit success id=%s plan=%q", in.ID, in.Plan)
	return in, nil
}

// ResolvePayment moves a pending payment to approved or rejected. Resolving
// a payment that already reached a terminal status is a deliberate no-op:
// the stored record wins and comes back unchanged.
func (u *PaymentUseCase) ResolvePayment(ctx context.Context, id string, status entities.PaymentStatus) (entities.PaymentRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PaymentRequest{}, ErrPaymentNotFound
	}
	if !status.Resolution() {
		return entities.PaymentRequest{}, ErrInvalidPaymentStatus
	}

	list, err := u.repo.Payments(ctx)
	if err != nil {
		return entities.PaymentRequest{}, err
	}

	for i := range list {
		if list[i].ID != id {
			continue
		}
		if list[i].Status.Terminal() {
			log.Printf("[payment][usecase] resolve no-op id=%s status=%s requested=%s", id, list[i].Status, status)
			return list[i], nil
		}
		list[i].Status = status
		if err := u.repo.SavePayments(ctx, list); err != nil {
			return entities.PaymentRequest{}, err
		}
		log.Printf("[payment][usecase] resolve success id=%s status=%s", id, status)
		return list[i], nil
	}

	return entities.PaymentRequest{}, ErrPaymentNotFound
}

// CheckoutPlan charges a pricing plan through the online gateway and
// records the outcome as an already-resolved payment.
func (u *PaymentUseCase) CheckoutPlan(ctx context.Context, planID, payerEmail, depositorName, phone string) (entities.PaymentRequest, error) {
	if u.gateway == nil {
		return entities.PaymentRequest{}, ErrPaymentGatewayNotOnline
	}

	plan, ok := catalog.PlanByID(strings.TrimSpace(planID))
	if !ok {
		return entities.PaymentRequest{}, ErrUnknownPlan
	}
	if plan.Price <= 0 {
		return entities.PaymentRequest{}, ErrPlanNotChargeable
	}

	providerID, providerStatus, err := u.gateway.ChargePlan(ctx, plan.Name, plan.Price, strings.TrimSpace(payerEmail))
	if err != nil {
		log.Printf("[payment][usecase] checkout gateway failed plan=%s err=%v", plan.ID, err)
		return entities.PaymentRequest{}, err
	}

	status := entities.PaymentStatusRejected
	if providerStatus == "approved" {
		status = entities.PaymentStatusApproved
	}

	p := entities.PaymentRequest{
		ID:            ensureRecordID(""),
		Plan:          plan.Name,
		DepositorName: strings.TrimSpace(depositorName),
		Phone:         strings.TrimSpace(phone),
		ReceiptNumber: providerID,
		Status:        status,
		Date:          time.Now().UTC(),
	}

	list, err := u.repo.Payments(ctx)
	if err != nil {
		return entities.PaymentRequest{}, err
	}
	list = append(list, p)
	if err := u.repo.SavePayments(ctx, list); err != nil {
		return entities.PaymentRequest{}, err
	}
	log.Printf("[payment][usecase] checkout success id=%s plan=%s provider_payment_id=%s status=%s", p.ID, plan.ID, providerID, p.Status)
	return p, nil
}

func (u *PaymentUseCase) ListPayments(ctx context.Context) ([]entities.PaymentRequest, error) {
	return u.repo.Payments(ctx)
}
