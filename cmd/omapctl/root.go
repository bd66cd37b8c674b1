package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/ordkit/cmd/omapctl/logger"
)

var (
	// Global flags
	verbose  bool
	quiet    bool
	jsonOut  bool
	encoding string
	crlf     bool
	strict   bool
	logDir   string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "omapctl",
	Short: "Inspect and edit ordered name=value documents",
	Long: `omapctl reads, edits, merges and verifies sectioned name=value documents
([Section] headers followed by name=value lines). Sections and names compare
case-insensitively and keep their order in the file; edits are written back
atomically.`,
	Version:           "0.1.0",
	SilenceUsage:      true,
	PersistentPreRunE: initLogging,
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().
		StringVar(&encoding, "encoding", "utf-8", "Document encoding (utf-8, utf-16le, windows-1252)")
	rootCmd.PersistentFlags().BoolVar(&crlf, "crlf", false, "Write \\r\\n line endings")
	rootCmd.PersistentFlags().
		BoolVar(&strict, "strict", false, "Reject names repeated within a section")
	rootCmd.PersistentFlags().
		StringVar(&logDir, "log-dir", "", "Write JSON logs to this directory (disabled when empty)")
	rootCmd.PersistentFlags().
		StringVar(&logLevel, "log-level", "info", "Minimum log level (debug, info, warn, error)")
}

func initLogging(cmd *cobra.Command, _ []string) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	opts := logger.Options{Dir: logDir, Level: level, Command: cmd.CommandPath(), Encoding: encoding}
	if err := logger.Init(opts); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	logger.Debug("command started")
	return nil
}

func execute() {
	err := rootCmd.Execute()
	if err != nil {
		logger.Error("command failed", "error", err)
	}
	logger.Close()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...any) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
