package domain

import "github.com/shopspring/decimal"

// Order — заказ в том виде, в каком его отдаёт API заказов (GET /order?uid=).
// Значение живёт ровно один рендер и нигде не кэшируется.
type Order struct {
	OrderUID          string   `json:"order_uid"`
	TrackNumber       string   `json:"track_number"`
	Entry             string   `json:"entry"`
	Delivery          Delivery `json:"delivery"`
	Payment           Payment  `json:"payment"`
	Items             []Item   `json:"items"`
	Locale            string   `json:"locale"`
	InternalSignature string   `json:"internal_signature"`
	CustomerID        string   `json:"customer_id"`
	DeliveryService   string   `json:"delivery_service"`
	ShardKey          string   `json:"shardkey"`
	SmID              int      `json:"sm_id"`
	DateCreated       string   `json:"date_created"` // отображается как есть
	OofShard          string   `json:"oof_shard"`
}

// Delivery — данные получателя.
type Delivery struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Zip     string `json:"zip"`
	City    string `json:"city"`
	Address string `json:"address"`
	Region  string `json:"region"`
	Email   string `json:"email"`
}

// Payment — данные оплаты. Денежные суммы хранятся в decimal,
// чтобы дробные значения печатались без потерь.
type Payment struct {
	Transaction  string          `json:"transaction"`
	RequestID    string          `json:"request_id"`
	Currency     string          `json:"currency"`
	Provider     string          `json:"provider"`
	Amount       decimal.Decimal `json:"amount"`
	PaymentDT    int64           `json:"payment_dt"` // Unix-секунды
	Bank         string          `json:"bank"`
	DeliveryCost decimal.Decimal `json:"delivery_cost"`
	GoodsTotal   decimal.Decimal `json:"goods_total"`
	CustomFee    decimal.Decimal `json:"custom_fee"`
}

// Item — позиция заказа.
type Item struct {
	ChrtID      int64           `json:"chrt_id"`
	TrackNumber string          `json:"track_number"`
	Price       decimal.Decimal `json:"price"`
	RID         string          `json:"rid"`
	Name        string          `json:"name"`
	Sale        int             `json:"sale"` // процент скидки
	Size        string          `json:"size"`
	TotalPrice  decimal.Decimal `json:"total_price"`
	NmID        int64           `json:"nm_id"`
	Brand       string          `json:"brand"`
	Status      int             `json:"status"`
}
