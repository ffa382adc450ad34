package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/ru"
)

// DateFormatter — форматирование даты оплаты (Unix-секунды) для человека.
type DateFormatter interface {
	FormatUnix(sec int64) string
}

// LocaleDateFormatter — «короткая дата, время с секундами» в заданной локали и зоне.
type LocaleDateFormatter struct {
	tr  locales.Translator
	loc *time.Location
}

// translators — поддерживаемые локали.
var translators = map[string]func() locales.Translator{
	"en": en.New,
	"ru": ru.New,
}

// NewLocaleDateFormatter — locale: en|ru; timezone: IANA-имя, "UTC" или "Local".
func NewLocaleDateFormatter(locale, timezone string) (*LocaleDateFormatter, error) {
	newTr, ok := translators[strings.ToLower(strings.TrimSpace(locale))]
	if !ok {
		return nil, fmt.Errorf("unsupported locale %q", locale)
	}

	tz := strings.TrimSpace(timezone)
	if tz == "" {
		tz = "Local"
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", timezone, err)
	}

	return &LocaleDateFormatter{tr: newTr(), loc: loc}, nil
}

func (f *LocaleDateFormatter) FormatUnix(sec int64) string {
	t := time.Unix(sec, 0).In(f.loc)
	return f.tr.FmtDateShort(t) + ", " + f.tr.FmtTimeMedium(t)
}
