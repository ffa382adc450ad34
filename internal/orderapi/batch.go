package orderapi

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// InputFormat — формат пачки документов заказов.
type InputFormat string

const (
	FormatAuto  InputFormat = "auto"
	FormatJSON  InputFormat = "json"
	FormatJSONL InputFormat = "jsonl"
)

// DetectFormat — auto по расширению файла; без файла (stdin) — JSONL.
func DetectFormat(format InputFormat, path string) InputFormat {
	if format != FormatAuto && format != "" {
		return format
	}
	if path == "" {
		return FormatJSONL
	}
	if strings.EqualFold(filepath.Ext(path), ".jsonl") {
		return FormatJSONL
	}
	return FormatJSON
}

// BatchResult — статистика проверки пачки.
type BatchResult struct {
	Valid   int
	Invalid int
}

func (r BatchResult) String() string {
	return fmt.Sprintf("%d valid / %d invalid", r.Valid, r.Invalid)
}

// CheckBatch — прогоняет документы через DecodeOrder.
// UID каждого валидного заказа пишется строкой в ow (готовый ввод для lookup),
// причина отказа — строкой "line N: ..." в report. Пустые строки JSONL пропускаются.
func CheckBatch(ir io.Reader, format InputFormat, ow, report io.Writer) (BatchResult, error) {
	var res BatchResult

	check := func(line int, raw []byte) error {
		order, err := DecodeOrder(raw)
		if err != nil {
			res.Invalid++
			_, wErr := fmt.Fprintf(report, "line %d: %v\n", line, err)
			return wErr
		}
		res.Valid++
		_, wErr := fmt.Fprintln(ow, order.OrderUID)
		return wErr
	}

	switch format {
	case FormatJSON:
		raw, err := io.ReadAll(ir)
		if err != nil {
			return res, fmt.Errorf("read: %w", err)
		}
		if err := check(1, raw); err != nil {
			return res, fmt.Errorf("write: %w", err)
		}

	case FormatJSONL:
		scanner := bufio.NewScanner(ir)
		// запас на большие строки
		scanner.Buffer(make([]byte, 0, 64*1024), 10*1024*1024)

		for line := 1; scanner.Scan(); line++ {
			raw := scanner.Bytes()
			if len(bytes.TrimSpace(raw)) == 0 {
				continue
			}
			if err := check(line, raw); err != nil {
				return res, fmt.Errorf("write: %w", err)
			}
		}
		if err := scanner.Err(); err != nil {
			return res, fmt.Errorf("scan: %w", err)
		}

	default:
		return res, fmt.Errorf("unsupported format: %s", format)
	}

	return res, nil
}
