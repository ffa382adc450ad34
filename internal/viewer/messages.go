package viewer

import (
	"errors"
	"fmt"

	"github.com/Gunvolt24/wb_order_viewer/internal/orderapi"
)

var (
	// ErrEmptyUID — пустой ввод; до сети дело не доходит.
	ErrEmptyUID = errors.New("empty order uid")
	// ErrRender — заказ получен, но не отрисован.
	ErrRender = errors.New("render failed")
)

const (
	msgEmptyUID    = "Please enter Order UID"
	msgNotFound    = "Order not found"
	msgInvalidUID  = "Invalid Order UID"
	msgFetchFailed = "Failed to fetch"
	msgBadPayload  = "Invalid order data"
	msgRender      = "Failed to render order"
)

// MessageFor — текст, который увидит пользователь.
// Все ошибки, кроме пустого ввода, показываются с префиксом "Error: ".
func MessageFor(err error) string {
	if errors.Is(err, ErrEmptyUID) {
		return msgEmptyUID
	}
	return "Error: " + reason(err)
}

func reason(err error) string {
	var (
		srvErr *orderapi.ServerError
		trErr  *orderapi.TransportError
		decErr *orderapi.DecodeError
	)
	switch {
	case errors.Is(err, orderapi.ErrNotFound):
		return msgNotFound
	case errors.Is(err, orderapi.ErrInvalidUID):
		return msgInvalidUID
	case errors.As(err, &srvErr):
		return fmt.Sprintf("Server error: %d", srvErr.StatusCode)
	case errors.As(err, &trErr):
		return msgFetchFailed
	case errors.As(err, &decErr):
		return msgBadPayload
	case errors.Is(err, ErrRender):
		return msgRender
	default:
		return err.Error()
	}
}

// Outcome — метка исхода поиска для метрик и логов.
func Outcome(err error) string {
	var (
		srvErr *orderapi.ServerError
		trErr  *orderapi.TransportError
		decErr *orderapi.DecodeError
	)
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrEmptyUID):
		return "validation"
	case errors.Is(err, orderapi.ErrNotFound):
		return "not_found"
	case errors.Is(err, orderapi.ErrInvalidUID):
		return "invalid_uid"
	case errors.As(err, &srvErr):
		return "server_error"
	case errors.As(err, &trErr):
		return "transport"
	case errors.As(err, &decErr):
		return "decode"
	case errors.Is(err, ErrRender):
		return "render"
	default:
		return "other"
	}
}
