// Package cmd provides the root command and CLI setup for linemark.
package cmd

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/linemark/internal/adapter"
	"github.com/mouse-blink/linemark/internal/config"
	"github.com/mouse-blink/linemark/internal/controller"
	"github.com/mouse-blink/linemark/internal/domain"
	"github.com/mouse-blink/linemark/internal/log"
	m "github.com/mouse-blink/linemark/internal/model"
)

var cfg config.EnvConfig
var setupErr error
var logger *slog.Logger
var logCloser io.Closer
var sourceReader adapter.SourceReader
var sessionStore adapter.SessionStore
var exporter domain.Exporter
var workflow domain.Workflow
var ui controller.UI

func init() {
	var err error

	cfg, err = config.Load(".env")
	if err != nil {
		setupErr = errors.Join(setupErr, err)
		cfg = config.Default()
	}

	logger, logCloser, err = log.Open(cfg)
	setupErr = errors.Join(setupErr, err)

	// OSC 52 goes to stderr so it never interleaves with the TUI renderer.
	clipboard, err := adapter.NewClipboard(cfg.Clipboard, os.Stderr)
	if err != nil {
		setupErr = errors.Join(setupErr, err)
		clipboard = adapter.DiscardClipboard{}
	}

	ui = controller.NewUI(rootCmd, adapter.IsTTY(os.Stdout))
	sourceReader = adapter.NewLocalSourceReader()
	sessionStore = adapter.NewSessionStore()
	exporter = domain.NewExporter(clipboard)
	workflow = domain.NewWorkflow(
		sourceReader,
		sessionStore,
		exporter,
		ui,
		domain.WithLogger(logger),
		domain.WithSessionDir(m.Path(cfg.SessionDir)),
		domain.WithTheme(cfg.Theme),
	)
}

var filenameFlag string
var sessionFlag string
var formatFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "linemark [file]",
		Short: "Mark lines of a source file in or out and export them as ranges",
		Long: `Linemark opens a source file in a terminal code view where individual
lines can be marked as "in" (included) or "out" (excluded). Marked lines are
highlighted and can be exported as a compact range-encoded JSON token that is
copied to the clipboard:

  {{ {"filename":  "a.js",  "ins":  [[4, 6]],  "del":  []} }}

In the editor select lines with shift+up/down (a adds another selection),
then press i / o or open the context menu with m or a right click.

When stdout is not a terminal the session summary and payload are printed
instead, and the clipboard is left alone.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return setupErr
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := domain.ParseFormat(formatFlag)
			if err != nil {
				return err
			}

			var source m.Path
			if len(args) == 1 {
				source = m.Path(args[0])
			}

			return workflow.Annotate(cmd.Context(), domain.AnnotateArgs{
				Source:   source,
				Filename: filenameFlag,
				Session:  m.Path(sessionFlag),
				Format:   format,
			})
		},
	}
	cmd.Flags().StringVarP(&filenameFlag, "filename", "f", "", "filename written to the export (defaults to the file's base name)")
	cmd.Flags().StringVar(&sessionFlag, "session", "", "session file to restore and save annotations")
	cmd.Flags().StringVar(&formatFlag, "format", string(domain.FormatTemplate), "export format: template or json")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if logCloser != nil {
		_ = logCloser.Close()
	}

	if err != nil {
		os.Exit(1)
	}
}
