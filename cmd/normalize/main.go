package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/baditaflorin/go_format_normalizer/internal/adapters/logger"
	"github.com/baditaflorin/go_format_normalizer/internal/config"
	"github.com/baditaflorin/go_format_normalizer/pkg/normalizer"
	"github.com/spf13/cobra"
)

// Exit codes.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

// DefaultTimeout bounds a single normalization.
const DefaultTimeout = 5 * time.Second

// exitError carries the process exit code for an error returned by RunE.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func usageError(err error) error   { return &exitError{code: exitUsage, err: err} }
func failureError(err error) error { return &exitError{code: exitFailure, err: err} }

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command with args and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	if err == nil {
		return exitOK
	}

	fmt.Fprintf(stderr, "Error: %v\n", err)
	var ee *exitError
	if errors.As(err, &ee) {
		if ee.code == exitUsage {
			fmt.Fprintln(stderr, "Run 'normalize --help' for usage.")
		}
		return ee.code
	}
	return exitUsage
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "normalize",
		Short: "Normalize phone numbers, dates and strings to a canonical format",
		Long: `normalize rewrites a single value into a predefined canonical format,
stripping formatting artifacts that could otherwise serve as distinguishing
identifiers. The result is printed on stdout; diagnostics go to stderr.

Every flag can also be set through a NORMALIZE_<FLAG> environment variable,
for example NORMALIZE_LOG_LEVEL=DEBUG.`,
		Example: strings.Join([]string{
			`  normalize --type phone --input "(555) 123-4567"`,
			`  normalize --type phone --input "123-456-7890" --output_format e164`,
			`  normalize --type date --input "01/01/2023" --input_format "%m/%d/%Y" --output_format "%Y-%m-%d"`,
			`  normalize --type date --input "14-03-2024" --input_format DD-MM-YYYY`,
			`  normalize --type string --input "  Hello World  "`,
		}, "\n"),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return normalizeValue(cmd, stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})

	config.RegisterFlags(cmd.Flags())
	return cmd
}

func normalizeValue(cmd *cobra.Command, stdout, stderr io.Writer) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return usageError(err)
	}

	log, err := logger.NewCustomStdLogger(logger.Options{
		Output: stderr,
		Level:  cfg.LogLevel,
		JSON:   cfg.LogJSON,
	})
	if err != nil {
		return failureError(fmt.Errorf("failed to create logger: %w", err))
	}
	defer log.Close()

	n, err := normalizer.New(
		normalizer.WithRegion(cfg.Region),
		normalizer.WithPortsLogger(log),
	)
	if err != nil {
		return usageError(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), DefaultTimeout)
	defer cancel()

	value, err := n.NormalizeString(ctx, cfg.Type, cfg.Input, cfg.InputFormat, cfg.OutputFormat)
	if err != nil {
		return failureError(err)
	}
	log.Debug("Normalized value", "type", cfg.Type, "value", value)

	fmt.Fprintln(stdout, value)
	return nil
}
