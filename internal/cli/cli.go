package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Gunvolt24/wb_order_viewer/config"
	"github.com/Gunvolt24/wb_order_viewer/internal/app"
	"github.com/Gunvolt24/wb_order_viewer/internal/orderapi"
	"github.com/Gunvolt24/wb_order_viewer/internal/sink"
	"github.com/Gunvolt24/wb_order_viewer/internal/viewer"
)

// ErrInvalidOrders — в пачке есть документы, которые не прошли проверку.
var ErrInvalidOrders = errors.New("invalid orders")

// ErrLookupFailed — поиск завершился ошибкой (сообщение уже выведено фрагментом).
var ErrLookupFailed = errors.New("lookup failed")

// rootOptions — общие флаги всех подкоманд.
type rootOptions struct {
	baseURL string
	cfg     config.Config
}

// NewRootCommand builds the order-viewer CLI.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "order-viewer",
		Short:         "Look up WB orders by UID and render them as HTML",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if opts.baseURL != "" {
				cfg.API.BaseURL = opts.baseURL
			}
			opts.cfg = cfg
			return nil
		},
	}
	root.PersistentFlags().StringVar(&opts.baseURL, "base-url", "", "order API base URL (overrides VIEWER_API_BASE_URL)")

	root.AddCommand(newServeCmd(opts))
	root.AddCommand(newLookupCmd(opts))
	root.AddCommand(newRenderCmd(opts))
	root.AddCommand(newValidateCmd())

	return root
}

// Execute runs the CLI until it finishes or SIGINT/SIGTERM arrives.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return err
	}
	return nil
}

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the web UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, cleanup, err := app.Bootstrap(cmd.Context(), &opts.cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			return a.Run(cmd.Context())
		},
	}
}

func newLookupCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup [uid]",
		Short: "Look up an order; without an argument every stdin line is a lookup",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, cleanup, err := app.NewComponents(cmd.Context(), &opts.cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			out := sink.NewWriter(cmd.OutOrStdout())
			v := c.NewViewer(out)

			if len(args) == 1 {
				err = lookupOne(cmd.Context(), v, args[0])
			} else {
				err = lookupLines(cmd.Context(), v, cmd.InOrStdin())
			}
			if wErr := out.Err(); wErr != nil {
				return fmt.Errorf("write output: %w", wErr)
			}
			return err
		},
	}
}

func lookupOne(ctx context.Context, v *viewer.Viewer, uid string) error {
	l := v.SubmitLookup(ctx, uid)
	if err := l.Wait(ctx); err != nil {
		return fmt.Errorf("%w: %s", ErrLookupFailed, viewer.Outcome(err))
	}
	return nil
}

// lookupLines — Enter (конец строки) запускает поиск; следующая строка
// читается, не дожидаясь ответа. На EOF ждём все начатые поиски.
func lookupLines(ctx context.Context, v *viewer.Viewer, in io.Reader) error {
	var pending []*viewer.Lookup

	sc := bufio.NewScanner(in)
	for sc.Scan() {
		pending = append(pending, v.SubmitLookup(ctx, sc.Text()))
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}

	for _, l := range pending {
		if err := l.Wait(ctx); errors.Is(err, context.Canceled) {
			return err
		}
	}
	return nil
}

func newRenderCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "render [file]",
		Short: "Render an order JSON document (file or stdin) without calling the API",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			raw, err := io.ReadAll(in)
			if err != nil {
				return fmt.Errorf("read order: %w", err)
			}

			order, err := orderapi.DecodeOrder(raw)
			if err != nil {
				return err
			}

			c, cleanup, err := app.NewComponents(cmd.Context(), &opts.cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			fragment, err := c.Renderer.Render(order)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), fragment)
			return err
		},
	}
}

func newValidateCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "Check order documents (.json or .jsonl, stdin = jsonl); prints UIDs of valid ones",
		Args:  cobra.MaximumNArgs(1),
		// конфигурация и API здесь не нужны
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			in, path := cmd.InOrStdin(), ""
			if len(args) == 1 {
				path = args[0]
				f, err := os.Open(path)
				if err != nil {
					return fmt.Errorf("open file: %w", err)
				}
				defer f.Close()
				in = f
			}

			res, err := orderapi.CheckBatch(in, orderapi.DetectFormat(orderapi.InputFormat(format), path),
				cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "validation: %s\n", res)
			if res.Invalid > 0 {
				return fmt.Errorf("%w: %s", ErrInvalidOrders, res)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", string(orderapi.FormatAuto), "input format: auto|json|jsonl")
	return cmd
}
