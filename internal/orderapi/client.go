package orderapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Gunvolt24/wb_order_viewer/internal/domain"
	"github.com/Gunvolt24/wb_order_viewer/internal/ports"
	"github.com/Gunvolt24/wb_order_viewer/pkg/metrics"
	"github.com/go-resty/resty/v2"
)

// Проверка, что Client удовлетворяет порту приложения.
var _ ports.OrderFetcher = (*Client)(nil)

const (
	orderPath     = "/order"
	orderUIDParam = "uid"
)

// Client — HTTP-клиент API заказов. Один вызов FetchOrder — ровно один запрос,
// без повторов и без собственных заголовков.
type Client struct {
	http *resty.Client
	log  ports.Logger
}

// New — конструктор. timeout <= 0 означает «без таймаута».
func New(baseURL string, timeout time.Duration, log ports.Logger) *Client {
	rc := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetRetryCount(0)
	if timeout > 0 {
		rc.SetTimeout(timeout)
	}
	return &Client{http: rc, log: log}
}

// FetchOrder — GET /order?uid=<uid> и классификация ответа:
// 2xx — декодирование тела, 404 — ErrNotFound, 400 — ErrInvalidUID,
// прочее — *ServerError; сетевой сбой — *TransportError.
func (c *Client) FetchOrder(ctx context.Context, orderUID string) (*domain.Order, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		Get(orderURL(orderUID))
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("order api request: %w", ctxErr)
		}
		c.log.Warnf(ctx, "order api request failed uid=%s err=%v", orderUID, err)
		return nil, &TransportError{Err: err}
	}

	code := resp.StatusCode()
	metrics.APIResponses.WithLabelValues(strconv.Itoa(code)).Inc()

	switch {
	case resp.IsSuccess():
		order, decErr := DecodeOrder(resp.Body())
		if decErr != nil {
			c.log.Warnf(ctx, "order api returned malformed order uid=%s err=%v", orderUID, decErr)
			return nil, decErr
		}
		return order, nil
	case code == http.StatusNotFound:
		return nil, ErrNotFound
	case code == http.StatusBadRequest:
		return nil, ErrInvalidUID
	default:
		c.log.Errorf(ctx, "order api status=%d uid=%s", code, orderUID)
		return nil, &ServerError{StatusCode: code}
	}
}

// orderURL — путь с уже закодированным uid. Пробел кодируется как %20, а не "+"
// (как encodeURIComponent): "+" в query раскодирует обратно только form-декодер.
// Через SetQueryParam нельзя: resty кодирует параметры url.Values.Encode.
func orderURL(orderUID string) string {
	return orderPath + "?" + orderUIDParam + "=" + strings.ReplaceAll(url.QueryEscape(orderUID), "+", "%20")
}
