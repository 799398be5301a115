package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/harrison/cmdx/internal/config"
	"github.com/harrison/cmdx/internal/display"
	"github.com/harrison/cmdx/internal/filelock"
	"github.com/harrison/cmdx/internal/listing"
	"github.com/harrison/cmdx/internal/logger"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// NewLsCommand creates the ls command
func NewLsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ls [path]...",
		Short: "List files and directory contents",
		Long: `List the given paths. Plain files are printed first, then the contents
of each directory, sorted by name. Entries starting with "." are not shown
inside directories. With no arguments the current directory is listed.

Configuration is loaded from .cmdx/config.yaml (or $CMDX_CONFIG) if present.
CLI flags override configuration file settings.

Examples:
  cmdx ls                       # list the current directory
  cmdx ls notes.txt src/        # a file, then the src directory with a header
  cmdx ls --color never a b     # plain output even on a terminal
  cmdx ls --output listing.txt  # write the listing to a file
  cmdx ls --max-concurrency 4 /usr /etc /var`,
		Args: cobra.ArbitraryArgs,
		RunE: runLs,
	}

	cmd.Flags().String("config", "", "Path to config file (default: .cmdx/config.yaml)")
	cmd.Flags().Bool("verbose", false, "Log resolution details to stderr")
	cmd.Flags().String("log-level", "", "Log level: trace, debug, info, warn, error")
	cmd.Flags().String("color", "", "Color output: auto, always, never")
	cmd.Flags().Int("max-concurrency", 1, "Paths resolved in parallel (1 = sequential, 0 = unlimited)")
	cmd.Flags().StringP("output", "o", "", "Write the listing to a file instead of stdout")

	return cmd
}

// runLs implements the ls command logic
func runLs(cmd *cobra.Command, args []string) error {
	cfg, err := loadLsConfig(cmd)
	if err != nil {
		return &ExitError{Code: 1, Err: err}
	}

	stdout := cmd.OutOrStdout()
	stderr := cmd.ErrOrStderr()
	outputPath, _ := cmd.Flags().GetString("output")

	colorize := useColor(cfg.Color, stdout) && outputPath == ""
	stderrColor := useColor(cfg.Color, stderr)
	log := logger.NewConsoleLogger(stderr, cfg.LogLevel, stderrColor)
	log.LogTrace(fmt.Sprintf("config: log_level=%s color=%s max_concurrency=%d",
		cfg.LogLevel, cfg.Color, cfg.MaxConcurrency))

	lister := listing.NewLister(listing.Options{
		MaxConcurrency: cfg.MaxConcurrency,
		Colorize:       colorize,
		Logger:         log,
	})

	result := lister.List(listing.DefaultPaths(args))

	display.WritePathErrors(stderr, result.Errors, stderrColor)

	if outputPath != "" {
		if err := filelock.WriteListing(outputPath, result.Output); err != nil {
			log.LogError(fmt.Sprintf("writing %s: %v", outputPath, err))
			return &ExitError{Code: 1, Err: fmt.Errorf("failed to write listing: %w", err)}
		}
		log.LogInfo(fmt.Sprintf("listing written to %s", outputPath))
	} else if _, err := io.WriteString(stdout, result.Output); err != nil {
		return &ExitError{Code: 1, Err: err}
	}

	if result.HasErrors() {
		return &ExitError{Code: 1}
	}
	return nil
}

// loadLsConfig loads the config file and applies explicitly set flags.
func loadLsConfig(cmd *cobra.Command) (*config.Config, error) {
	configFlag, _ := cmd.Flags().GetString("config")
	configPath := config.ResolveConfigPath(configFlag, ".")

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
	}

	var logLevel, colorMode *string
	var maxConcurrency *int

	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level := "debug"
		logLevel = &level
	}
	if cmd.Flags().Changed("log-level") {
		level, _ := cmd.Flags().GetString("log-level")
		logLevel = &level
	}
	if cmd.Flags().Changed("color") {
		mode, _ := cmd.Flags().GetString("color")
		colorMode = &mode
	}
	if cmd.Flags().Changed("max-concurrency") {
		n, _ := cmd.Flags().GetInt("max-concurrency")
		maxConcurrency = &n
	}

	cfg.MergeWithFlags(logLevel, colorMode, maxConcurrency)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// useColor resolves a color mode for w. In auto mode only terminals get
// color, and NO_COLOR disables it.
func useColor(mode string, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}

	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
