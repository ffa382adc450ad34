package orderapi

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound — API ответил 404.
	ErrNotFound = errors.New("order not found")
	// ErrInvalidUID — API ответил 400.
	ErrInvalidUID = errors.New("invalid order uid")
)

// ServerError — любой другой неуспешный HTTP-статус.
type ServerError struct {
	StatusCode int
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server error: %d", e.StatusCode)
}

// TransportError — запрос не дошёл до сервера или ответ не был получен.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return "order api transport: " + e.Err.Error() }
func (e *TransportError) Unwrap() error { return e.Err }

// DecodeError — успешный ответ, но тело не является корректным заказом.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string { return "order api decode: " + e.Err.Error() }
func (e *DecodeError) Unwrap() error { return e.Err }
