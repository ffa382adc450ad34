package rest

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/Gunvolt24/wb_order_viewer/internal/ports"
	"github.com/Gunvolt24/wb_order_viewer/internal/sink"
	"github.com/Gunvolt24/wb_order_viewer/internal/viewer"
	"github.com/Gunvolt24/wb_order_viewer/pkg/httpx"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// HeaderLookupOutcome — исход поиска (ok, not_found, transport, ...).
// Сама страница всегда отдаётся с 200: ошибка показывается в области результата.
const HeaderLookupOutcome = "X-Lookup-Outcome"

const pageTemplate = "index.html.tmpl"

//go:embed web/index.html.tmpl
var webFS embed.FS

type pageData struct {
	UID    string
	Result template.HTML
}

type Handler struct {
	fetcher  ports.OrderFetcher
	renderer ports.OrderRenderer
	log      ports.Logger
}

func NewHandler(fetcher ports.OrderFetcher, renderer ports.OrderRenderer, log ports.Logger) *Handler {
	return &Handler{fetcher: fetcher, renderer: renderer, log: log}
}

// NewRouter — страница поиска, ручки поиска и служебные ручки.
// serviceName != "" включает otelgin.
func NewRouter(h *Handler, serviceName string) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.SetHTMLTemplate(template.Must(template.ParseFS(webFS, "web/"+pageTemplate)))

	r.Use(gin.Recovery())
	r.Use(httpx.RequestIDMiddleware())
	if serviceName != "" {
		r.Use(otelgin.Middleware(serviceName))
	}
	r.Use(httpx.RequestLogger(h.log))

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/", h.index)
	r.GET("/lookup", h.lookupPage)
	r.GET("/lookup/fragment", h.lookupFragment)

	return r
}

func (h *Handler) index(c *gin.Context) {
	c.HTML(http.StatusOK, pageTemplate, pageData{})
}

func (h *Handler) lookupPage(c *gin.Context) {
	region, ok := h.runLookup(c)
	if !ok {
		return
	}
	c.HTML(http.StatusOK, pageTemplate, pageData{UID: c.Query("uid"), Result: region.HTML()})
}

func (h *Handler) lookupFragment(c *gin.Context) {
	region, ok := h.runLookup(c)
	if !ok {
		return
	}
	_, content := region.Snapshot()
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(content))
}

// runLookup — один поиск в свежую область и ожидание результата.
// false — клиент ушёл раньше, чем поиск завершился; отвечать некому.
func (h *Handler) runLookup(c *gin.Context) (*sink.Region, bool) {
	ctx := c.Request.Context()
	region := sink.NewRegion()

	l := viewer.New(h.fetcher, h.renderer, region, h.log).SubmitLookup(ctx, c.Query("uid"))
	select {
	case <-l.Done():
	case <-ctx.Done():
		h.log.Warnf(ctx, "lookup abandoned: %v", ctx.Err())
		c.Abort()
		return nil, false
	}

	c.Header(HeaderLookupOutcome, viewer.Outcome(l.Err()))
	return region, true
}
