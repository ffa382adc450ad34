//go:generate mockgen -source=../order_fetcher.go  -destination=./mock_order_fetcher.go  -package=mocks
//go:generate mockgen -source=../order_renderer.go -destination=./mock_order_renderer.go -package=mocks
//go:generate mockgen -source=../display_sink.go   -destination=./mock_display_sink.go   -package=mocks

package mocks
