package cmd

import (
	"eomarket/internal/config"
	"eomarket/internal/logging"
	"eomarket/internal/trace"
	"eomarket/internal/ui"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfgFile    string
	logFile    string
	debug      bool
	traceDB    string
	breakpoint int
)

var rootCmd = &cobra.Command{
	Use:   "eomarket",
	Short: "Browse EO Market listings in the terminal",
	Long: `eomarket is the EO Market site as a terminal program: a landing page,
property search and saved homes, with a bottom navigation bar on narrow
terminals and a full header on wide ones.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

// Execute runs the root command.
func Execute(version string) error {
	rootCmd.Version = version
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path (default: ~/.eomarket/config.yml)")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "write JSON logs to this file")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "log at debug level")
	rootCmd.Flags().StringVar(&traceDB, "trace-db", "", "record navigation transitions to this SQLite file")
	rootCmd.Flags().IntVar(&breakpoint, "breakpoint", 0, "smallest terminal width in px rendered as desktop")
}

// loadConfig resolves configuration: defaults, config file, environment,
// then flags that were set explicitly on cmd.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if err := config.LoadDotEnv(".env", ".env.local"); err != nil {
		return nil, err
	}

	path := cfgFile
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("log-file") {
		cfg.LogFile = logFile
	}
	if flags.Changed("debug") {
		cfg.Debug = debug
	}
	if flags.Changed("trace-db") {
		cfg.TraceDB = traceDB
	}
	if flags.Changed("breakpoint") {
		cfg.Breakpoint = breakpoint
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogFile, cfg.Debug)
	if err != nil {
		return err
	}
	defer logger.Sync()

	var recorder *trace.Recorder
	if cfg.TraceDB != "" {
		database, err := trace.Open(cfg.TraceDB)
		if err != nil {
			return err
		}
		defer database.Close()
		recorder = trace.NewRecorder(database)
		logger.Info("recording transitions",
			zap.String("db", cfg.TraceDB), zap.String("session", recorder.Session()))
	}

	logger.Info("starting",
		zap.Int("breakpoint", cfg.Breakpoint),
		zap.String("landing_page", cfg.LandingPage),
		zap.String("version", cmd.Root().Version))

	p := tea.NewProgram(
		ui.New(cfg, recorder, logger, ui.DetectTerminalCapabilities()),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run app: %w", err)
	}
	return nil
}
