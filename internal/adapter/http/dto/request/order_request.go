package request

import "thaki_platform/internal/domain/entities"

type PlaceOrderRequest struct {
	Type     string  `json:"type" binding:"required"`
	Symbol   string  `json:"symbol" binding:"required"`
	Quantity int     `json:"quantity" binding:"required"`
	Price    float64 `json:"price"`
}

func (r PlaceOrderRequest) ToEntity() entities.StockOrder {
	return entities.StockOrder{
		Type:     entities.OrderType(r.Type),
		Symbol:   r.Symbol,
		Quantity: r.Quantity,
		Price:    r.Price,
	}
}
