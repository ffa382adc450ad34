package testutil

import (
	"github.com/Gunvolt24/wb_order_viewer/internal/domain"
	"github.com/shopspring/decimal"
)

// SampleOrderUID — UID заказа из SampleOrderJSON.
const SampleOrderUID = "b563feb7b2b84b6test"

// SampleOrderJSON — эталонный заказ в формате API заказов.
const SampleOrderJSON = `{
  "order_uid": "b563feb7b2b84b6test",
  "track_number": "WBILMTESTTRACK",
  "entry": "WBIL",
  "delivery": {
    "name": "Test Testov",
    "phone": "+9720000000",
    "zip": "2639809",
    "city": "Kiryat Mozkin",
    "address": "Ploshad Mira 15",
    "region": "Kraiot",
    "email": "test@gmail.com"
  },
  "payment": {
    "transaction": "b563feb7b2b84b6test",
    "request_id": "",
    "currency": "USD",
    "provider": "wbpay",
    "amount": 1817,
    "payment_dt": 1637907727,
    "bank": "alpha",
    "delivery_cost": 1500,
    "goods_total": 317,
    "custom_fee": 0
  },
  "items": [
    {
      "chrt_id": 9934930,
      "track_number": "WBILMTESTTRACK",
      "price": 453,
      "rid": "ab4219087a764ae0btest",
      "name": "Mascaras",
      "sale": 30,
      "size": "0",
      "total_price": 317,
      "nm_id": 2389212,
      "brand": "Vivienne Sabo",
      "status": 202
    }
  ],
  "locale": "en",
  "internal_signature": "",
  "customer_id": "test",
  "delivery_service": "meest",
  "shardkey": "9",
  "sm_id": 99,
  "date_created": "2021-11-26T06:22:19Z",
  "oof_shard": "1"
}`

// WithItems — заменяет позиции заказа.
func WithItems(items ...domain.Item) func(*domain.Order) {
	return func(o *domain.Order) { o.Items = items }
}

// MakeOrder — тот же заказ, что и SampleOrderJSON, но уже в доменном виде.
func MakeOrder(opts ...func(*domain.Order)) domain.Order {
	o := domain.Order{
		OrderUID:    SampleOrderUID,
		TrackNumber: "WBILMTESTTRACK",
		Entry:       "WBIL",
		Delivery: domain.Delivery{
			Name:    "Test Testov",
			Phone:   "+9720000000",
			Zip:     "2639809",
			City:    "Kiryat Mozkin",
			Address: "Ploshad Mira 15",
			Region:  "Kraiot",
			Email:   "test@gmail.com",
		},
		Payment: domain.Payment{
			Transaction:  SampleOrderUID,
			Currency:     "USD",
			Provider:     "wbpay",
			Amount:       decimal.NewFromInt(1817),
			PaymentDT:    1637907727,
			Bank:         "alpha",
			DeliveryCost: decimal.NewFromInt(1500),
			GoodsTotal:   decimal.NewFromInt(317),
			CustomFee:    decimal.Zero,
		},
		Items: []domain.Item{
			{
				ChrtID:      9934930,
				TrackNumber: "WBILMTESTTRACK",
				Price:       decimal.NewFromInt(453),
				RID:         "ab4219087a764ae0btest",
				Name:        "Mascaras",
				Sale:        30,
				Size:        "0",
				TotalPrice:  decimal.NewFromInt(317),
				NmID:        2389212,
				Brand:       "Vivienne Sabo",
				Status:      202,
			},
		},
		Locale:          "en",
		CustomerID:      "test",
		DeliveryService: "meest",
		ShardKey:        "9",
		SmID:            99,
		DateCreated:     "2021-11-26T06:22:19Z",
		OofShard:        "1",
	}

	for _, opt := range opts {
		opt(&o)
	}
	return o
}
