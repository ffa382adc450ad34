package render

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"

	"github.com/Gunvolt24/wb_order_viewer/internal/domain"
	"github.com/Gunvolt24/wb_order_viewer/internal/ports"
)

// Проверка, что Renderer удовлетворяет порту приложения.
var _ ports.OrderRenderer = (*Renderer)(nil)

//go:embed templates/order.html.tmpl
var templatesFS embed.FS

// ErrNilOrder — рендер вызван без заказа.
var ErrNilOrder = errors.New("render: nil order")

var (
	loadingFragment = `<div class="loading">Loading...</div>`
	errorTmpl       = template.Must(template.New("error").Parse(`<div class="error">{{.}}</div>`))
)

// Renderer — HTML-раскладка заказа. Потокобезопасен: шаблон только читается.
type Renderer struct {
	tmpl *template.Template
}

// New — рендерер с форматированием даты оплаты в заданной локали и часовом поясе.
func New(locale, timezone string) (*Renderer, error) {
	dates, err := NewLocaleDateFormatter(locale, timezone)
	if err != nil {
		return nil, err
	}
	return NewWithDates(dates)
}

// NewWithDates — то же, но с произвольным форматтером даты (удобно в тестах).
func NewWithDates(dates DateFormatter) (*Renderer, error) {
	tmpl, err := template.New("order.html.tmpl").
		Funcs(template.FuncMap{"paymentDate": dates.FormatUnix}).
		ParseFS(templatesFS, "templates/order.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse order template: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render — детерминированный HTML-фрагмент заказа; вход не изменяется.
func (r *Renderer) Render(order *domain.Order) (string, error) {
	if order == nil {
		return "", ErrNilOrder
	}
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, order); err != nil {
		return "", fmt.Errorf("render order %s: %w", order.OrderUID, err)
	}
	return buf.String(), nil
}

// LoadingFragment — индикатор загрузки.
func LoadingFragment() string { return loadingFragment }

// ErrorFragment — сообщение об ошибке; текст экранируется.
func ErrorFragment(message string) string {
	var buf bytes.Buffer
	// шаблон из одного действия над строкой не может упасть
	_ = errorTmpl.Execute(&buf, message)
	return buf.String()
}
