package cmd

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	configFile string
	schemaFile string
	logLevel   string
	serviceDB  string
	services   []string
)

var rootCmd = &cobra.Command{
	Use:           "apischema",
	Short:         "Sanitize, validate and describe JSON payloads with a YAML schema",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "options file path")
	rootCmd.PersistentFlags().StringVar(&schemaFile, "schema", "", "YAML schema definition (required)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error); overrides the options file")
	rootCmd.PersistentFlags().StringVar(&serviceDB, "service-db", "", "database URL for the service keyword (sqlite://path or postgres://...)")
	rootCmd.PersistentFlags().StringArrayVar(&services, "service", nil, "service as name=table.column, repeatable")
	_ = rootCmd.MarkPersistentFlagRequired("schema")
}

// Execute runs the root command and reports errors on stderr.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil && err != errInvalid {
		rootCmd.PrintErrln("Error:", err)
	}
	return err
}

func newLogger(level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}).Level(level).With().Timestamp().Logger()
}
