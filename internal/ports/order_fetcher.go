package ports

import (
	"context"

	"github.com/Gunvolt24/wb_order_viewer/internal/domain"
)

// OrderFetcher — источник заказов (HTTP API заказов).
// Ошибки классифицируются реализацией: не найден, неверный UID, ошибка сервера,
// сетевой сбой, невалидное тело ответа.
type OrderFetcher interface {
	FetchOrder(ctx context.Context, orderUID string) (*domain.Order, error)
}
