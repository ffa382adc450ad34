package sink

import (
	"html/template"
	"sync"

	"github.com/Gunvolt24/wb_order_viewer/internal/ports"
	"github.com/Gunvolt24/wb_order_viewer/internal/render"
)

var (
	_ ports.DisplaySink = (*Region)(nil)
	_ ports.DisplaySink = (*Writer)(nil)
)

// State — что сейчас показано в области.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateResult
	StateError
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateResult:
		return "result"
	case StateError:
		return "error"
	default:
		return "idle"
	}
}

// Region — область отображения в памяти (аналог #orderResult на странице).
// Каждая запись целиком заменяет содержимое: побеждает последний писатель.
type Region struct {
	mu      sync.RWMutex
	state   State
	content string
}

func NewRegion() *Region { return &Region{} }

func (r *Region) ShowLoading() { r.set(StateLoading, render.LoadingFragment()) }

func (r *Region) ShowError(message string) { r.set(StateError, render.ErrorFragment(message)) }

func (r *Region) ShowResult(fragment string) { r.set(StateResult, fragment) }

// Snapshot — текущее состояние и HTML.
func (r *Region) Snapshot() (State, string) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state, r.content
}

// HTML — содержимое для вставки в шаблон страницы.
// Фрагменты собираются только рендерером и уже экранированы.
func (r *Region) HTML() template.HTML {
	_, content := r.Snapshot()
	return template.HTML(content)
}

func (r *Region) set(state State, content string) {
	r.mu.Lock()
	r.state = state
	r.content = content
	r.mu.Unlock()
}
