package orderapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/Gunvolt24/wb_order_viewer/internal/domain"
	"github.com/Gunvolt24/wb_order_viewer/pkg/validate"
)

// Схема ответа API. Обязательные поля — указатели: так отсутствующее поле
// отличается от нулевого значения, и валидатор ловит именно отсутствие.

type orderPayload struct {
	OrderUID          *string          `json:"order_uid" validate:"required"`
	TrackNumber       *string          `json:"track_number" validate:"required"`
	Entry             *string          `json:"entry" validate:"required"`
	Delivery          *deliveryPayload `json:"delivery" validate:"required"`
	Payment           *paymentPayload  `json:"payment" validate:"required"`
	Items             []itemPayload    `json:"items" validate:"required,dive"`
	Locale            string           `json:"locale"`
	InternalSignature string           `json:"internal_signature"`
	CustomerID        *string          `json:"customer_id" validate:"required"`
	DeliveryService   *string          `json:"delivery_service" validate:"required"`
	ShardKey          string           `json:"shardkey"`
	SmID              jsonInt          `json:"sm_id"`
	DateCreated       *string          `json:"date_created" validate:"required"`
	OofShard          string           `json:"oof_shard"`
}

type deliveryPayload struct {
	Name    *string `json:"name" validate:"required"`
	Phone   *string `json:"phone" validate:"required"`
	Zip     *string `json:"zip" validate:"required"`
	City    *string `json:"city" validate:"required"`
	Address *string `json:"address" validate:"required"`
	Region  *string `json:"region" validate:"required"`
	Email   *string `json:"email" validate:"required"`
}

type paymentPayload struct {
	Transaction  *string     `json:"transaction" validate:"required"`
	RequestID    string      `json:"request_id"`
	Currency     *string     `json:"currency" validate:"required"`
	Provider     *string     `json:"provider" validate:"required"`
	Amount       *jsonNumber `json:"amount" validate:"required"`
	PaymentDT    *jsonInt    `json:"payment_dt" validate:"required"`
	Bank         *string     `json:"bank" validate:"required"`
	DeliveryCost *jsonNumber `json:"delivery_cost" validate:"required"`
	GoodsTotal   *jsonNumber `json:"goods_total" validate:"required"`
	CustomFee    jsonNumber  `json:"custom_fee"`
}

type itemPayload struct {
	ChrtID      jsonInt     `json:"chrt_id"`
	TrackNumber string      `json:"track_number"`
	Price       *jsonNumber `json:"price" validate:"required"`
	RID         string      `json:"rid"`
	Name        *string     `json:"name" validate:"required"`
	Sale        *jsonInt    `json:"sale" validate:"required"`
	Size        *string     `json:"size" validate:"required"`
	TotalPrice  *jsonNumber `json:"total_price" validate:"required"`
	NmID        jsonInt     `json:"nm_id"`
	Brand       *string     `json:"brand" validate:"required"`
	Status      *jsonInt    `json:"status" validate:"required"`
}

// DecodeOrder — разбирает тело ответа API в заказ.
// Синтаксическая ошибка, несовпадение типов, отсутствие обязательного поля
// или мусор после объекта — всё это *DecodeError.
func DecodeOrder(raw []byte) (*domain.Order, error) {
	var p orderPayload
	dec := json.NewDecoder(bytes.NewReader(raw))
	if err := dec.Decode(&p); err != nil {
		return nil, &DecodeError{Err: fmt.Errorf("invalid json: %w", err)}
	}
	// После объекта допустимы только пробельные символы.
	if err := dec.Decode(new(json.RawMessage)); !errors.Is(err, io.EOF) {
		return nil, &DecodeError{Err: errors.New("invalid json: trailing data")}
	}

	if err := validate.Struct(p); err != nil {
		return nil, &DecodeError{Err: err}
	}
	return p.toDomain(), nil
}

// toDomain — вызывается только после успешной валидации: все указатели не nil.
func (p *orderPayload) toDomain() *domain.Order {
	order := &domain.Order{
		OrderUID:    *p.OrderUID,
		TrackNumber: *p.TrackNumber,
		Entry:       *p.Entry,
		Delivery: domain.Delivery{
			Name:    *p.Delivery.Name,
			Phone:   *p.Delivery.Phone,
			Zip:     *p.Delivery.Zip,
			City:    *p.Delivery.City,
			Address: *p.Delivery.Address,
			Region:  *p.Delivery.Region,
			Email:   *p.Delivery.Email,
		},
		Payment: domain.Payment{
			Transaction:  *p.Payment.Transaction,
			RequestID:    p.Payment.RequestID,
			Currency:     *p.Payment.Currency,
			Provider:     *p.Payment.Provider,
			Amount:       p.Payment.Amount.value,
			PaymentDT:    p.Payment.PaymentDT.value,
			Bank:         *p.Payment.Bank,
			DeliveryCost: p.Payment.DeliveryCost.value,
			GoodsTotal:   p.Payment.GoodsTotal.value,
			CustomFee:    p.Payment.CustomFee.value,
		},
		Items:             make([]domain.Item, 0, len(p.Items)),
		Locale:            p.Locale,
		InternalSignature: p.InternalSignature,
		CustomerID:        *p.CustomerID,
		DeliveryService:   *p.DeliveryService,
		ShardKey:          p.ShardKey,
		SmID:              int(p.SmID.value),
		DateCreated:       *p.DateCreated,
		OofShard:          p.OofShard,
	}

	for i := range p.Items {
		it := &p.Items[i]
		order.Items = append(order.Items, domain.Item{
			ChrtID:      it.ChrtID.value,
			TrackNumber: it.TrackNumber,
			Price:       it.Price.value,
			RID:         it.RID,
			Name:        *it.Name,
			Sale:        int(it.Sale.value),
			Size:        *it.Size,
			TotalPrice:  it.TotalPrice.value,
			NmID:        it.NmID.value,
			Brand:       *it.Brand,
			Status:      int(it.Status.value),
		})
	}
	return order
}
