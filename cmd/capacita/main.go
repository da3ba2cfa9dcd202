package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"capacita/internal/bootstrap"
	progressoutadapter "capacita/internal/modules/progress/adapter/out"
	"capacita/internal/platform/config"
	"capacita/internal/platform/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type globalFlags struct {
	home    string
	verbose bool
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:           "capacita",
		Short:         "Terminal client for the training platform",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flags.home, "home", config.DefaultHome(), "directory for config, local state, cache and reports")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "also log to stderr")

	root.AddCommand(newTUICmd(flags))
	root.AddCommand(newLoginCmd(flags), newLogoutCmd(flags), newRegisterCmd(flags))
	root.AddCommand(newPasswordCmd(flags), newProfileCmd(flags))
	root.AddCommand(newTrainingCmd(flags))
	root.AddCommand(newViewCmd(flags))
	root.AddCommand(newProgressCmd(flags))
	root.AddCommand(newEvaluationCmd(flags))
	root.AddCommand(newFAQCmd(flags))
	root.AddCommand(newUserCmd(flags))
	return root
}

// loadApp builds the application for one command. Progress notices are
// printed to the command's stderr.
func loadApp(cmd *cobra.Command, flags *globalFlags) (*bootstrap.App, func(), error) {
	app, logger, err := buildApp(flags, flags.verbose)
	if err != nil {
		return nil, nil, err
	}
	app.Notices.Attach(progressoutadapter.NewWriterNotifier(cmd.ErrOrStderr()))
	return app, func() {
		_ = app.Close()
		_ = logger.Sync()
	}, nil
}

func buildApp(flags *globalFlags, verbose bool) (*bootstrap.App, *zap.Logger, error) {
	if err := os.MkdirAll(flags.home, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create home dir: %w", err)
	}
	cfg, err := config.New(flags.home)
	if err != nil {
		return nil, nil, err
	}
	logger, err := logging.New(logging.Options{Level: cfg.Log.Level, File: cfg.Log.File, Verbose: verbose})
	if err != nil {
		return nil, nil, err
	}
	app, err := bootstrap.New(cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	return app, logger, nil
}

func newTUICmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the terminal UI",
		RunE: func(cmd *cobra.Command, _ []string) error {
			// The TUI owns the terminal, so logs go to the file only.
			app, logger, err := buildApp(flags, false)
			if err != nil {
				return err
			}
			defer func() {
				_ = app.Close()
				_ = logger.Sync()
			}()
			if _, err := app.AuthCLI.Current(cmd.Context()); err != nil {
				return fmt.Errorf("%w: run capacita login first", err)
			}
			return bootstrap.RunTUI(app)
		},
	}
}
