package viewer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/Gunvolt24/wb_order_viewer/internal/ports"
	"github.com/Gunvolt24/wb_order_viewer/pkg/ctxmeta"
	"github.com/Gunvolt24/wb_order_viewer/pkg/metrics"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/Gunvolt24/wb_order_viewer/internal/viewer"

// Viewer — поиск заказа по UID и вывод результата в DisplaySink.
//
// Состояния области: Idle -> Loading -> {Result | Error}; новый SubmitLookup
// из любого состояния снова переводит её в Loading. Предыдущий запрос при этом
// не отменяется: по умолчанию на экране остаётся тот, что завершился последним.
type Viewer struct {
	fetcher  ports.OrderFetcher
	renderer ports.OrderRenderer
	sink     ports.DisplaySink
	log      ports.Logger
	tracer   trace.Tracer

	latestOnly bool

	mu         sync.Mutex // упорядочивает смену поколения и запись в sink
	generation uint64
}

// Option — настройка Viewer.
type Option func(*Viewer)

// WithLatestOnly — показывать только результат самого свежего поиска:
// завершившийся позже вытесненный поиск в область не пишет.
func WithLatestOnly() Option {
	return func(v *Viewer) { v.latestOnly = true }
}

// New — DI-конструктор.
func New(
	fetcher ports.OrderFetcher,
	renderer ports.OrderRenderer,
	sink ports.DisplaySink,
	log ports.Logger,
	opts ...Option,
) *Viewer {
	v := &Viewer{
		fetcher:  fetcher,
		renderer: renderer,
		sink:     sink,
		log:      log,
		tracer:   otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// SubmitLookup — обрабатывает ввод пользователя.
// Пустой (после обрезки) ввод: ошибка валидации в области, запроса нет.
// Иначе: индикатор загрузки синхронно, затем ровно один запрос в фоне.
// Возвращает управление сразу; результат — через Lookup.
func (v *Viewer) SubmitLookup(ctx context.Context, rawInput string) *Lookup {
	uid := strings.TrimSpace(rawInput)
	if uid == "" {
		v.mu.Lock()
		v.generation++
		v.sink.ShowError(MessageFor(ErrEmptyUID))
		v.mu.Unlock()
		metrics.Lookups.WithLabelValues(Outcome(ErrEmptyUID)).Inc()
		return finishedLookup(uid, ErrEmptyUID)
	}

	v.mu.Lock()
	v.generation++
	gen := v.generation
	v.sink.ShowLoading()
	v.mu.Unlock()

	l := newLookup(uid)
	go v.run(ctxmeta.WithOrderUID(ctx, uid), gen, l)
	return l
}

// run — тело фоновой задачи: запрос, классификация, вывод.
func (v *Viewer) run(ctx context.Context, gen uint64, l *Lookup) {
	start := time.Now()
	ctx, span := v.tracer.Start(ctx, "viewer.lookup", trace.WithAttributes(attribute.String("order.uid", l.uid)))
	defer span.End()

	fragment, err := v.lookup(ctx, l.uid)

	outcome := Outcome(err)
	metrics.Lookups.WithLabelValues(outcome).Inc()
	metrics.LookupDuration.Observe(time.Since(start).Seconds())
	span.SetAttributes(attribute.String("lookup.outcome", outcome))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, outcome)
	}

	shown := v.display(gen, fragment, err)
	if !shown {
		v.log.Infof(ctx, "lookup superseded, result dropped outcome=%s", outcome)
	} else {
		v.log.Infof(ctx, "lookup finished outcome=%s took=%s", outcome, time.Since(start))
	}
	l.finish(err, shown)
}

// display — пишет итог в область; при latestOnly устаревшее поколение отбрасывается.
func (v *Viewer) display(gen uint64, fragment string, err error) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.latestOnly && v.generation != gen {
		return false
	}
	if err != nil {
		v.sink.ShowError(MessageFor(err))
	} else {
		v.sink.ShowResult(fragment)
	}
	return true
}

func (v *Viewer) lookup(ctx context.Context, uid string) (string, error) {
	order, err := v.fetcher.FetchOrder(ctx, uid)
	if err != nil {
		return "", err
	}
	if order == nil {
		return "", errors.New("order api returned no order")
	}

	fragment, err := v.renderer.Render(order)
	if err != nil {
		v.log.Errorf(ctx, "render failed err=%v", err)
		return "", fmt.Errorf("%w: %w", ErrRender, err)
	}
	return fragment, nil
}
