package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidOrder — базовая (sentinel error) ошибка валидации заказа.
var ErrInvalidOrder = errors.New("order validation failed")

var (
	once     sync.Once
	instance *validator.Validate
)

// engine — ленивый singleton валидатора: кэш метаданных структур живёт внутри него.
func engine() *validator.Validate {
	once.Do(func() {
		v := validator.New()
		// В ошибках показываем JSON-имена полей (delivery.email), а не Go-имена.
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		instance = v
	})
	return instance
}

// Struct — проверяет структуру по тегам `validate`.
// Возвращает ErrInvalidOrder с перечнем проблемных полей.
func Struct(s any) error {
	err := engine().Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidOrder, err)
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, describe(fe))
	}
	return fmt.Errorf("%w: %s", ErrInvalidOrder, strings.Join(fields, "; "))
}

// describe — человекочитаемое описание одной ошибки поля.
func describe(fe validator.FieldError) string {
	path := fieldPath(fe.Namespace())
	if fe.Tag() == "required" {
		return path + " обязателен"
	}
	return fmt.Sprintf("%s не прошёл проверку %q", path, fe.Tag())
}

// fieldPath — отрезает имя корневой структуры: "orderPayload.delivery.name" -> "delivery.name".
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}
