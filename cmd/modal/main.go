// Package main is the entry point for the modal editor.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/dshills/modal/internal/app"
	"github.com/dshills/modal/internal/config"
	"github.com/dshills/modal/internal/renderer/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// options holds the parsed command line.
type options struct {
	ConfigPath  string
	LogLevel    string
	LogFile     string
	ShowVersion bool
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	opts, err := parseFlags(args, os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	if opts.ShowVersion {
		fmt.Printf("modal %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		return 0
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	logger, closeLog, err := openLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer closeLog()

	km, err := cfg.Keymap()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if err := checkInteractive(term.IsTerminal); err != nil {
		return report(logger, err)
	}

	screen, err := backend.NewTerminal()
	if err != nil {
		return report(logger, &app.TerminalInitError{Step: "open", Err: err})
	}

	ed, err := app.New(screen, app.Options{
		StatusText: cfg.Editor.StatusText,
		Keymap:     km,
		Logger:     logger,
	})
	if err != nil {
		return report(logger, err)
	}

	// Ensure the terminal is restored on all exit paths
	defer ed.Close()

	return report(logger, ed.Run())
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options

	fs := flag.NewFlagSet("modal", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file")
	fs.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	fs.StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&opts.LogFile, "log-file", "", "Write logs to this file")
	fs.BoolVar(&opts.ShowVersion, "version", false, "Show version information")
	fs.BoolVar(&opts.ShowVersion, "v", false, "Show version information (shorthand)")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "modal - a minimal modal terminal editor\n\n")
		fmt.Fprintf(stderr, "Usage: modal [options]\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nKeys:\n")
		fmt.Fprintf(stderr, "  normal mode   h/j/k/l or arrows move, i inserts, q quits\n")
		fmt.Fprintf(stderr, "  insert mode   type to write, Enter starts a new line, Esc returns\n")
		fmt.Fprintf(stderr, "\nEnvironment:\n")
		fmt.Fprintf(stderr, "  %s, %s, %s\n", config.EnvLogLevel, config.EnvLogFile, config.EnvStatusText)
	}

	// -h and -help are handled by the flag package and reported as ErrHelp.
	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	if fs.NArg() > 0 {
		err := fmt.Errorf("unexpected arguments: %v", fs.Args())
		fmt.Fprintf(stderr, "Error: %v\n", err)
		fs.Usage()
		return opts, err
	}

	return opts, nil
}

// loadConfig layers the settings file, the environment and the command
// line, then validates the result.
func loadConfig(opts options) (*config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	cfg.ApplyEnv()

	if opts.LogLevel != "" {
		cfg.Logging.Level = opts.LogLevel
	}
	if opts.LogFile != "" {
		cfg.Logging.File = opts.LogFile
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openLogger returns the session logger. The terminal belongs to the
// editor, so logs only go to a file; with no file they are discarded.
func openLogger(lc config.LoggingConfig) (*app.Logger, func(), error) {
	if lc.File == "" {
		return app.NullLogger(), func() {}, nil
	}

	f, err := os.OpenFile(lc.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}

	cfg := app.DefaultLoggerConfig()
	cfg.Level = app.ParseLogLevel(lc.Level)
	cfg.Output = f
	return app.NewLogger(cfg), func() { _ = f.Close() }, nil
}

// checkInteractive fails when stdin or stdout is not a terminal, before
// any escape sequences are written.
func checkInteractive(isTerminal func(fd int) bool) error {
	if !isTerminal(int(os.Stdin.Fd())) || !isTerminal(int(os.Stdout.Fd())) {
		return &app.TerminalInitError{Step: "check", Err: app.ErrNotInteractive}
	}
	return nil
}

// report logs err, prints it to stderr and returns the process exit code.
// It is called after the terminal has been restored.
func report(logger *app.Logger, err error) int {
	if err == nil {
		return 0
	}

	var initErr *app.TerminalInitError
	var ioErr *app.IOError
	switch {
	case errors.As(err, &initErr):
		logger.Error("startup failed: %v", err)
	case errors.As(err, &ioErr):
		logger.Error("session aborted: %v", err)
	default:
		logger.Error("session failed: %v", err)
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return 1
}
