package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"thaki_platform/internal/domain/entities"
	"thaki_platform/internal/usecase/interfaces"
)

var (
	ErrInvalidOrderType     = errors.New("order type must be buy or sell")
	ErrInvalidOrderQuantity = errors.New("order quantity must be positive")
	ErrInvalidOrderPrice    = errors.New("order price must not be negative")
	ErrMissingOrderSymbol   = errors.New("missing order symbol")
)

// IOrderUseCase keeps the legacy market page's order book working. No live
// page submits orders anymore; the operations stay for interface
// compatibility with previously stored state.

type IOrderUseCase interface {
	PlaceOrder(ctx context.Context, in entities.StockOrder) (entities.StockOrder, error)
	ListOrders(ctx context.Context) ([]entities.StockOrder, error)
}

type OrderUseCase struct {
	repo interfaces.IRecordRepository
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(repo interfaces.IRecordRepository) *OrderUseCase {
	return &OrderUseCase{repo: repo}
}

func (u *OrderUseCase) PlaceOrder(ctx context.Context, in entities.StockOrder) (entities.StockOrder, error) {
	in.Symbol = strings.TrimSpace(in.Symbol)
	if in.Type != entities.OrderTypeBuy && in.Type != entities.OrderTypeSell {
		return entities.StockOrder{}, ErrInvalidOrderType
	}
	if in.Symbol == "" {
		return entities.StockOrder{}, ErrMissingOrderSymbol
	}
	if in.Quantity <= 0 {
		return entities.StockOrder{}, ErrInvalidOrderQuantity
	}
	if in.Price < 0 {
		return entities.StockOrder{}, ErrInvalidOrderPrice
	}

	in.ID = ensureRecordID(in.ID)
	in.Date = ensureRecordDate(in.Date)

	list, err := u.repo.Orders(ctx)
	if err != nil {
		return entities.StockOrder{}, err
	}
	list = append(list, in)
	if err := u.repo.SaveOrders(ctx, list); err != nil {
		return entities.StockOrder{}, err
	}
	log.Printf("[order][usecase] place success id=%s type=%s symbol=%s", in.ID, in.Type, in.Symbol)
	return in, nil
}

func (u *OrderUseCase) ListOrders(ctx context.Context) ([]entities.StockOrder, error) {
	return u.repo.Orders(ctx)
}
