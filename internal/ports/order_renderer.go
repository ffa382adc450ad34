package ports

import "github.com/Gunvolt24/wb_order_viewer/internal/domain"

// OrderRenderer — превращает заказ в HTML-фрагмент.
// Реализация обязана быть чистой функцией: одинаковый вход — одинаковый выход.
type OrderRenderer interface {
	Render(order *domain.Order) (string, error)
}
