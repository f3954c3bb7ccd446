package usecase

import (
	"context"
	"errors"
	"testing"

	"thaki_platform/internal/domain/entities"
)

func TestOrderUseCase_PlaceOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("validations", func(t *testing.T) {
		uc := NewOrderUseCase(newTestRepo())

		cases := []struct {
			name string
			in   entities.StockOrder
			want error
		}{
			{name: "bad type", in: entities.StockOrder{Type: "hold", Symbol: "THK", Quantity: 1}, want: ErrInvalidOrderType},
			{name: "blank symbol", in: entities.StockOrder{Type: entities.OrderTypeBuy, Symbol: "  ", Quantity: 1}, want: ErrMissingOrderSymbol},
			{name: "zero quantity", in: entities.StockOrder{Type: entities.OrderTypeBuy, Symbol: "THK"}, want: ErrInvalidOrderQuantity},
			{name: "negative price", in: entities.StockOrder{Type: entities.OrderTypeSell, Symbol: "THK", Quantity: 2, Price: -1}, want: ErrInvalidOrderPrice},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := uc.PlaceOrder(ctx, tc.in)
				if !errors.Is(err, tc.want) {
					t.Fatalf("expected %v, got %v", tc.want, err)
				}
			})
		}
	})

	t.Run("place and list", func(t *testing.T) {
		uc := NewOrderUseCase(newTestRepo())

		out, err := uc.PlaceOrder(ctx, entities.StockOrder{Type: entities.OrderTypeBuy, Symbol: "THK", Quantity: 10, Price: 4.5})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.ID == "" || out.Date.IsZero() {
			t.Fatalf("id and date must be assigned: %+v", out)
		}

		list, err := uc.ListOrders(ctx)
		if err != nil || len(list) != 1 || list[0].Symbol != "THK" {
			t.Fatalf("unexpected list err=%v list=%+v", err, list)
		}
	})
}
