package rest_test

import (
	"context"
	"errors"
	"html"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Gunvolt24/wb_order_viewer/internal/orderapi"
	"github.com/Gunvolt24/wb_order_viewer/internal/ports"
	"github.com/Gunvolt24/wb_order_viewer/internal/ports/mocks"
	"github.com/Gunvolt24/wb_order_viewer/internal/render"
	"github.com/Gunvolt24/wb_order_viewer/internal/testutil"
	rest "github.com/Gunvolt24/wb_order_viewer/internal/transport/http"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
)

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

type utcDates struct{}

func (utcDates) FormatUnix(sec int64) string { return time.Unix(sec, 0).UTC().Format(time.RFC3339) }

func newRenderer(t *testing.T) *render.Renderer {
	t.Helper()
	r, err := render.NewWithDates(utcDates{})
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}
	return r
}

func newRouter(t *testing.T, fetcher ports.OrderFetcher) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	return rest.NewRouter(rest.NewHandler(fetcher, newRenderer(t), noopLogger{}), "")
}

func serve(r http.Handler, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, http.NoBody)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestIndex(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := newRouter(t, mocks.NewMockOrderFetcher(ctrl))

	w := serve(r, http.MethodGet, "/")

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", w.Code)
	}
	body := w.Body.String()
	for _, want := range []string{`id="orderUid"`, `name="uid"`, `<div id="orderResult"></div>`, `action="/lookup"`} {
		if !strings.Contains(body, want) {
			t.Fatalf("page must contain %q, body=%s", want, body)
		}
	}
}

func TestLookupFragment_Found(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockOrderFetcher(ctrl)

	ord := testutil.MakeOrder()
	fetcher.EXPECT().FetchOrder(gomock.Any(), "order-1").Return(&ord, nil).Times(1)

	w := serve(newRouter(t, fetcher), http.MethodGet, "/lookup/fragment?uid=%20order-1%20")

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
	if got := w.Header().Get(rest.HeaderLookupOutcome); got != "ok" {
		t.Fatalf("outcome: want ok, got %q", got)
	}
	if !strings.HasPrefix(w.Body.String(), `<div class="order-info">`) {
		t.Fatalf("fragment must start with order-info, body=%s", w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "<p><strong>Order UID:</strong> "+testutil.SampleOrderUID+"</p>") {
		t.Fatalf("fragment must contain order uid, body=%s", w.Body.String())
	}
}

func TestLookupFragment_EmptyUID_NoFetch(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockOrderFetcher(ctrl) // без EXPECT

	for _, target := range []string{"/lookup/fragment", "/lookup/fragment?uid=", "/lookup/fragment?uid=%20%09"} {
		w := serve(newRouter(t, fetcher), http.MethodGet, target)

		if w.Code != http.StatusOK {
			t.Fatalf("%s: want 200, got %d", target, w.Code)
		}
		if got := w.Body.String(); got != `<div class="error">Please enter Order UID</div>` {
			t.Fatalf("%s: unexpected body %q", target, got)
		}
		if got := w.Header().Get(rest.HeaderLookupOutcome); got != "validation" {
			t.Fatalf("%s: outcome: want validation, got %q", target, got)
		}
	}
}

func TestLookupFragment_FetchErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		body    string
		outcome string
	}{
		{"not_found", orderapi.ErrNotFound, "Error: Order not found", "not_found"},
		{"invalid_uid", orderapi.ErrInvalidUID, "Error: Invalid Order UID", "invalid_uid"},
		{"server", &orderapi.ServerError{StatusCode: 503}, "Error: Server error: 503", "server_error"},
		{"transport", &orderapi.TransportError{Err: errors.New("connection refused")}, "Error: Failed to fetch", "transport"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			fetcher := mocks.NewMockOrderFetcher(ctrl)
			fetcher.EXPECT().FetchOrder(gomock.Any(), "x").Return(nil, tt.err)

			w := serve(newRouter(t, fetcher), http.MethodGet, "/lookup/fragment?uid=x")

			if want := `<div class="error">` + tt.body + `</div>`; w.Body.String() != want {
				t.Fatalf("want %q, got %q", want, w.Body.String())
			}
			if got := w.Header().Get(rest.HeaderLookupOutcome); got != tt.outcome {
				t.Fatalf("outcome: want %q, got %q", tt.outcome, got)
			}
		})
	}
}

// Сквозной путь: страница -> viewer -> настоящий клиент -> фейковый API заказов.
func TestLookupPage_ThroughOrderAPI(t *testing.T) {
	var hits atomic.Int32
	var gotUID atomic.Value
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		gotUID.Store(r.URL.Query().Get("uid"))
		if r.URL.Path != "/order" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(testutil.SampleOrderJSON))
	}))
	defer api.Close()

	r := newRouter(t, orderapi.New(api.URL, 0, noopLogger{}))
	w := serve(r, http.MethodGet, "/lookup?uid=a%26b")

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", w.Code)
	}
	if hits.Load() != 1 {
		t.Fatalf("want exactly one API call, got %d", hits.Load())
	}
	if gotUID.Load() != "a&b" {
		t.Fatalf("API got uid %q", gotUID.Load())
	}

	body := w.Body.String()
	if !strings.Contains(body, `value="`+html.EscapeString("a&b")+`"`) {
		t.Fatalf("input must keep entered uid, body=%s", body)
	}
	if !strings.Contains(body, `<div id="orderResult"><div class="order-info">`) {
		t.Fatalf("result region must hold the order, body=%s", body)
	}
}

func TestLookupPage_ErrorShownInRegion(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockOrderFetcher(ctrl)
	fetcher.EXPECT().FetchOrder(gomock.Any(), "missing").Return(nil, orderapi.ErrNotFound)

	w := serve(newRouter(t, fetcher), http.MethodGet, "/lookup?uid=missing")

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `<div id="orderResult"><div class="error">Error: Order not found</div></div>`) {
		t.Fatalf("error must be shown in region, body=%s", w.Body.String())
	}
}

func TestPingAndMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := newRouter(t, mocks.NewMockOrderFetcher(ctrl))

	if w := serve(r, http.MethodGet, "/ping"); w.Code != http.StatusOK || w.Body.String() != "pong" {
		t.Fatalf("ping: %d %q", w.Code, w.Body.String())
	}
	if w := serve(r, http.MethodGet, "/metrics"); w.Code != http.StatusOK {
		t.Fatalf("metrics: want 200, got %d", w.Code)
	}
}

func TestRequestIDHeader(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := serve(newRouter(t, mocks.NewMockOrderFetcher(ctrl)), http.MethodGet, "/")

	if w.Header().Get("X-Request-ID") == "" {
		t.Fatalf("X-Request-ID must be set")
	}
}

func TestNoRoute_404(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := serve(newRouter(t, mocks.NewMockOrderFetcher(ctrl)), http.MethodGet, "/no-such-route")

	if w.Code != http.StatusNotFound {
		t.Fatalf("want 404, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestMethodNotAllowed_405(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := newRouter(t, mocks.NewMockOrderFetcher(ctrl))

	for _, target := range []string{"/", "/lookup", "/lookup/fragment"} {
		w := serve(r, http.MethodPost, target)
		if w.Code != http.StatusMethodNotAllowed {
			t.Fatalf("%s: want 405, got %d", target, w.Code)
		}
	}
}
