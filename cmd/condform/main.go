// Command condform fills, validates and renders the conditional profile
// form.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/goliatone/go-condform/pkg/uischema"
)

// errInvalid marks a run that completed but found validation issues. It
// maps to exit status 1 without an extra error line.
var errInvalid = errors.New("condform: record is invalid")

type app struct {
	verbose bool
	uiPath  string
	logger  *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "condform",
		Short: "Conditional profile form: fill, validate and render",
		Long: `condform drives the profile form: a name, optional work experience,
an optional list of spoken languages and an education level whose answer
decides which follow-up field is required.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			config.OutputPaths = []string{"stderr"}
			if a.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			} else {
				config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
			}
			logger, err := config.Build()
			if err != nil {
				return fmt.Errorf("condform: initialize logger: %w", err)
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&a.uiPath, "ui", "", "UI schema file (JSON or YAML) overriding labels and help text")

	root.AddCommand(
		newFillCmd(a),
		newValidateCmd(a),
		newRenderCmd(a),
		newSchemaCmd(a),
	)
	return root
}

// uiDocument returns the bundled UI schema merged with --ui when given.
func (a *app) uiDocument() (*uischema.Document, error) {
	doc := uischema.Default()
	if a.uiPath == "" {
		return doc, nil
	}
	overlay, err := uischema.LoadFile(a.uiPath)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("ui schema loaded", zap.String("path", a.uiPath))
	return uischema.Merge(doc, overlay), nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errInvalid) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		stop()
		os.Exit(1)
	}
}
