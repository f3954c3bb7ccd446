package entities

import "time"

// OrderType is the side of a simulated stock order.

type OrderType string

const (
	OrderTypeBuy  OrderType = "buy"
	OrderTypeSell OrderType = "sell"
)

// StockOrder is a record from the legacy market-analytics page. No live page
// submits these anymore; the collection is retained so previously stored
// orders keep round-tripping.
type StockOrder struct {
	ID       string    `json:"id"`
	Type     OrderType `json:"type"`
	Symbol   string    `json:"symbol"`
	Quantity int       `json:"quantity"`
	Price    float64   `json:"price"`
	Date     time.Time `json:"date"`
}
