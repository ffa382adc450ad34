package sink

import (
	"io"
	"sync"

	"github.com/Gunvolt24/wb_order_viewer/internal/render"
)

// Writer — поток фрагментов в io.Writer (stdout CLI).
// Каждый фрагмент — отдельная запись, завершённая переводом строки.
type Writer struct {
	mu  sync.Mutex
	out io.Writer
	err error
}

func NewWriter(out io.Writer) *Writer { return &Writer{out: out} }

func (w *Writer) ShowLoading() { w.write(render.LoadingFragment()) }

func (w *Writer) ShowError(message string) { w.write(render.ErrorFragment(message)) }

func (w *Writer) ShowResult(fragment string) { w.write(fragment) }

// Err — первая ошибка записи, если была.
func (w *Writer) Err() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.err
}

func (w *Writer) write(fragment string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.err != nil {
		return
	}
	if _, err := io.WriteString(w.out, fragment+"\n"); err != nil {
		w.err = err
	}
}
