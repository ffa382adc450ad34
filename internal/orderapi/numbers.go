package orderapi

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	errQuotedNumber = errors.New("number expected, got string")
	errNotInteger   = errors.New("integer expected")
)

// jsonNumber — денежное значение. В JSON только число: decimal сам по себе
// принимает и "1817" в кавычках, здесь это ошибка.
type jsonNumber struct {
	value decimal.Decimal
}

func (n *jsonNumber) UnmarshalJSON(b []byte) error {
	if err := rejectQuoted(b); err != nil {
		return err
	}
	return n.value.UnmarshalJSON(b)
}

// jsonInt — целое поле. Число с нулевой дробной частью (30.0, 3e1) допустимо,
// 30.5 и строки — нет.
type jsonInt struct {
	value int64
}

func (n *jsonInt) UnmarshalJSON(b []byte) error {
	if err := rejectQuoted(b); err != nil {
		return err
	}
	if string(b) == "null" {
		return nil
	}
	d, err := decimal.NewFromString(string(b))
	if err != nil {
		return err
	}
	if !d.Equal(d.Truncate(0)) {
		return fmt.Errorf("%w: %s", errNotInteger, b)
	}
	v := d.IntPart()
	if !decimal.NewFromInt(v).Equal(d) {
		return fmt.Errorf("%w: %s out of range", errNotInteger, b)
	}
	n.value = v
	return nil
}

func rejectQuoted(b []byte) error {
	if b = bytes.TrimSpace(b); len(b) > 0 && b[0] == '"' {
		return fmt.Errorf("%w: %s", errQuotedNumber, b)
	}
	return nil
}
