package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Gunvolt24/wb_order_viewer/config"
	"github.com/Gunvolt24/wb_order_viewer/internal/orderapi"
	"github.com/Gunvolt24/wb_order_viewer/internal/ports"
	"github.com/Gunvolt24/wb_order_viewer/internal/render"
	rest "github.com/Gunvolt24/wb_order_viewer/internal/transport/http"
	"github.com/Gunvolt24/wb_order_viewer/internal/viewer"
	"github.com/Gunvolt24/wb_order_viewer/pkg/logger"
	"github.com/Gunvolt24/wb_order_viewer/pkg/metrics"
	"github.com/Gunvolt24/wb_order_viewer/pkg/telemetry"
	"github.com/gin-gonic/gin"
)

// Cleanup — функция освобождения ресурсов.
type Cleanup func()

// Components — зависимости, общие для всех режимов (веб, lookup, render).
type Components struct {
	Logger   ports.Logger
	Fetcher  *orderapi.Client
	Renderer *render.Renderer

	latestOnly bool
}

// NewViewer — просмотрщик поверх заданной области отображения.
func (c *Components) NewViewer(sink ports.DisplaySink) *viewer.Viewer {
	var opts []viewer.Option
	if c.latestOnly {
		opts = append(opts, viewer.WithLatestOnly())
	}
	return viewer.New(c.Fetcher, c.Renderer, sink, c.Logger, opts...)
}

// NewComponents — логгер, метрики, трейсинг, клиент API заказов и рендерер.
func NewComponents(ctx context.Context, cfg *config.Config) (*Components, Cleanup, error) {
	// Логгер (dev/prod режим задаётся конфигурацией).
	logg, cleanupLogger, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		return nil, func() {}, err
	}
	closeLogger := func() {
		// Sync на stderr/tty может вернуть EINVAL — это не ошибка приложения
		_ = cleanupLogger()
	}

	// Регистрация метрик (Prometheus).
	metrics.MustRegister()

	renderer, err := render.New(cfg.Render.Locale, cfg.Render.Timezone)
	if err != nil {
		closeLogger()
		return nil, func() {}, fmt.Errorf("renderer: %w", err)
	}

	// Трейсинг OTEL (при включённой конфигурации); по умолчанию — no-op.
	shutdownTrace, err := telemetry.Setup(ctx, cfg.Tracing)
	if err != nil {
		logg.Warnf(ctx, "failed to setup tracing: %v", err)
		shutdownTrace = func(context.Context) error { return nil }
	} else if cfg.Tracing.Enabled {
		logg.Infof(ctx, "otel tracing enabled service=%s endpoint=%s sample=%.2f",
			cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
	}

	c := &Components{
		Logger:     logg,
		Fetcher:    orderapi.New(cfg.API.BaseURL, cfg.API.Timeout, logg),
		Renderer:   renderer,
		latestOnly: cfg.Viewer.LatestOnly,
	}

	// Очистка ресурсов (в обратном порядке).
	cleanup := func() {
		if terr := shutdownTrace(context.Background()); terr != nil {
			logg.Warnf(ctx, "shutdown tracing: %v", terr)
		}
		closeLogger()
	}

	return c, cleanup, nil
}

// App — собранное веб-приложение.
type App struct {
	Logger          ports.Logger  // логгер
	HTTPServer      *http.Server  // HTTP-сервер
	gracefulTimeout time.Duration // время ожидания завершения HTTP-сервера
}

// applyGinMode — устанавливает режим Gin по строке;
// неизвестное значение → debug и предупреждение в лог.
func applyGinMode(ctx context.Context, mode string, log ports.Logger) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	case "", "debug":
		gin.SetMode(gin.DebugMode)
	default:
		gin.SetMode(gin.DebugMode)
		log.Warnf(ctx, "unknown GIN_MODE=%q, fallback to debug", mode)
	}
}

// Bootstrap — собирает зависимости и возвращает веб-приложение, функцию очистки и ошибку.
func Bootstrap(ctx context.Context, cfg *config.Config) (*App, Cleanup, error) {
	c, cleanup, err := NewComponents(ctx, cfg)
	if err != nil {
		return nil, cleanup, err
	}

	// Режим Gin.
	applyGinMode(ctx, cfg.HTTP.GinMode, c.Logger)

	// Имя сервиса для otelgin (только при включённом трейсинге).
	otelServiceName := ""
	if cfg.Tracing.Enabled {
		otelServiceName = cfg.Tracing.ServiceName
	}

	// Роутер и HTTP-сервер.
	httpHandler := rest.NewHandler(c.Fetcher, c.Renderer, c.Logger)
	router := rest.NewRouter(httpHandler, otelServiceName)

	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}

	c.Logger.Infof(ctx, "order api base_url=%s timeout=%s", cfg.API.BaseURL, cfg.API.Timeout)

	return &App{
		Logger:          c.Logger,
		HTTPServer:      httpSrv,
		gracefulTimeout: cfg.HTTP.GracefulTimeout,
	}, cleanup, nil
}

// Run — запускает HTTP-сервер; ждёт отмены контекста или ошибки и останавливает его.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	// Запуск HTTP-сервера.
	go func() {
		a.Logger.Infof(ctx, "http server starting (addr=%s)", a.HTTPServer.Addr)
		if err := a.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Ожидание сигнала остановки или ошибки сервера.
	var runErr error
	select {
	case <-ctx.Done():
		a.Logger.Infof(ctx, "shutdown requested, starting graceful shutdown")
	case runErr = <-errCh:
		a.Logger.Errorf(ctx, "http server failed: %v", runErr)
	}

	gt := a.gracefulTimeout
	if gt <= 0 {
		gt = 5 * time.Second
	}

	// Корректная остановка HTTP-сервера.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), gt)
	defer cancel()

	if err := a.HTTPServer.Shutdown(shutdownCtx); err != nil {
		a.Logger.Warnf(ctx, "http server shutdown failed: %v", err)
	} else {
		a.Logger.Infof(ctx, "http server stopped gracefully")
	}

	a.Logger.Infof(ctx, "service stopped")
	return runErr
}
