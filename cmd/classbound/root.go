package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/pthm/classbound/lib/catalog"
	"github.com/pthm/classbound/lib/encoding"
)

// keyEnv supplies the bundle key when --key is not given.
const keyEnv = "CLASSBOUND_KEY"

const defaultCatalog = "classbound.yaml"

type rootFlags struct {
	catalog  string
	key      string
	verbose  bool
	logLevel string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "classbound",
		Short:         "classbound renders class-bound components from declarative catalogs",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&flags.catalog, "catalog", "c", defaultCatalog, "Catalog file (.yaml or compiled "+catalog.BundleExt+")")
	cmd.PersistentFlags().StringVar(&flags.key, "key", "", "Signing key for compiled catalogs (default $"+keyEnv+")")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "info", "Log level (trace, debug, info, warn, error)")

	cmd.AddCommand(newListCmd(flags))
	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newCompileCmd(flags))
	cmd.AddCommand(newGenerateCmd(flags))
	cmd.AddCommand(newServeCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// logger writes human-readable logs to the command's stderr.
func (f *rootFlags) logger(cmd *cobra.Command) (zerolog.Logger, error) {
	level := zerolog.InfoLevel
	if f.logLevel != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(f.logLevel))
		if err != nil {
			return zerolog.Nop(), fmt.Errorf("invalid --log-level: %w", err)
		}
		level = parsed
	}
	if f.verbose && level > zerolog.DebugLevel {
		level = zerolog.DebugLevel
	}

	w := cmd.ErrOrStderr()
	console := zerolog.NewConsoleWriter()
	console.Out = w
	console.TimeFormat = time.RFC3339
	console.NoColor = !isTerminal(w)

	return zerolog.New(console).Level(level).With().Timestamp().Logger(), nil
}

// encoder builds the bundle encoder from --key or the environment.
func (f *rootFlags) encoder() (*encoding.Encoder, error) {
	key := f.key
	if key == "" {
		key = os.Getenv(keyEnv)
	}
	if key == "" {
		return nil, newCommandError("read key", "no signing key", encoding.ErrEmptyKey,
			"Pass --key or set "+keyEnv+".")
	}
	return encoding.NewEncoder([]byte(key))
}

// load reads the catalog named by --catalog. Compiled bundles are
// verified with the signing key.
func (f *rootFlags) load(cmd *cobra.Command) (*catalog.Catalog, zerolog.Logger, error) {
	log, err := f.logger(cmd)
	if err != nil {
		return nil, log, err
	}

	opts := []catalog.Option{catalog.WithLogger(log)}

	var cat *catalog.Catalog
	if catalog.IsBundle(f.catalog) {
		enc, encErr := f.encoder()
		if encErr != nil {
			return nil, log, encErr
		}
		cat, err = catalog.LoadBundle(f.catalog, enc, opts...)
	} else {
		cat, err = catalog.Load(f.catalog, opts...)
	}
	if err != nil {
		return nil, log, newCommandError("load catalog", f.catalog, err,
			"Check the catalog path and run 'classbound list' to validate it.")
	}
	return cat, log, nil
}

func isTerminal(w io.Writer) bool {
	if file, ok := w.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

func newCommandError(operation, context string, cause error, suggestion string) error {
	return &commandError{operation: operation, context: context, cause: cause, suggestion: suggestion}
}

type commandError struct {
	operation  string
	context    string
	cause      error
	suggestion string
}

func (e *commandError) Error() string {
	return fmt.Sprintf("Failed to %s: %s\n\nError: %v\n\nSuggestion: %s", e.operation, e.context, e.cause, e.suggestion)
}

func (e *commandError) Unwrap() error {
	return e.cause
}
