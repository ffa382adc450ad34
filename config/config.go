package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// DefaultPrefix — префикс переменных окружения (VIEWER_HTTP_ADDR и т.д.).
const DefaultPrefix = "VIEWER"

type HTTP struct {
	Addr              string        `default:":8081" envconfig:"ADDR"`
	GinMode           string        `default:"debug" envconfig:"GIN_MODE"`
	ReadTimeout       time.Duration `default:"10s" envconfig:"READ_TIMEOUT"`
	WriteTimeout      time.Duration `default:"10s" envconfig:"WRITE_TIMEOUT"`
	ReadHeaderTimeout time.Duration `default:"5s" envconfig:"READ_HEADER_TIMEOUT"`
	IdleTimeout       time.Duration `default:"60s" envconfig:"IDLE_TIMEOUT"`
	GracefulTimeout   time.Duration `default:"5s" envconfig:"GRACEFUL_TIMEOUT"`
}

// API — сервис заказов, к которому ходит просмотрщик.
// Timeout = 0 — без ограничения, запрос живёт, пока жив контекст.
type API struct {
	BaseURL string        `default:"http://localhost:8080" envconfig:"BASE_URL"`
	Timeout time.Duration `default:"0s" envconfig:"TIMEOUT"`
}

type Render struct {
	Locale   string `default:"en" envconfig:"LOCALE"`
	Timezone string `default:"Local" envconfig:"TIMEZONE"`
}

type Viewer struct {
	LatestOnly bool `default:"false" envconfig:"LATEST_ONLY"`
}

type Tracing struct {
	Enabled     bool    `default:"false" envconfig:"OTEL_ENABLED"`
	ServiceName string  `default:"order-viewer" envconfig:"OTEL_SERVICE_NAME"`
	Endpoint    string  `default:"jaeger:4318" envconfig:"OTEL_ENDPOINT"`
	SampleRatio float64 `default:"1" envconfig:"OTEL_SAMPLE_RATIO"`
}

type Logger struct {
	IsProd bool `default:"false" envconfig:"IS_PROD"`
}

type Config struct {
	HTTP    HTTP
	API     API
	Render  Render
	Viewer  Viewer
	Tracing Tracing
	Logger  Logger
}

// Load — конфигурация из окружения с префиксом VIEWER.
func Load() (Config, error) {
	return LoadWithPrefix(DefaultPrefix)
}

// LoadWithPrefix — то же, но с произвольным префиксом (удобно в тестах).
func LoadWithPrefix(prefix string) (Config, error) {
	var c Config

	if err := envconfig.Process(prefix, &c); err != nil {
		return Config{}, err
	}

	return c, nil
}
