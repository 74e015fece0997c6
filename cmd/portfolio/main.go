package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"bavatarinee.dev/internal/config"
	"bavatarinee.dev/internal/field"
	"bavatarinee.dev/internal/projects"
	"bavatarinee.dev/internal/services"
)

var (
	verbose bool

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Portfolio server with a live GitHub project grid",
	Long: `portfolio serves the personal portfolio page. The server owns the
animated particle field, the project grid synced from GitHub and the card
hover styles; the browser only renders what it is sent.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		zc := zap.NewProductionConfig()
		level, err := zapcore.ParseLevel(cfg.LogLevel)
		if err != nil {
			level = zapcore.InfoLevel
		}
		if verbose {
			level = zapcore.DebugLevel
		}
		zc.Level = zap.NewAtomicLevelAt(level)

		logger, err = zc.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		zap.ReplaceGlobals(logger)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(serveCmd, syncCmd, fieldCmd, generateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newProjectService wires the GitHub source into the grid state owner
func newProjectService(log *zap.Logger) (*services.ProjectService, error) {
	source, err := projects.NewGitHubSource(projects.SourceConfig{
		BaseURL: cfg.GitHub.APIURL,
		Token:   cfg.GitHub.Token,
		Timeout: cfg.GitHub.SyncTimeout,
	})
	if err != nil {
		return nil, err
	}
	pipeline := projects.NewPipeline(source, cfg.GitHub.Account)
	return services.NewProjectService(pipeline, cfg.GitHub.ProfileURL(), log), nil
}

// fieldOptions builds renderer options from config
func fieldOptions() field.Options {
	var theme *field.Theme
	if cfg.Site != nil {
		theme = cfg.Site.Theme
	}
	return field.Options{
		Width:         cfg.Field.Width,
		Height:        cfg.Field.Height,
		Seed:          cfg.Field.Seed,
		FrameInterval: cfg.Field.FrameInterval(),
		Theme:         theme,
	}
}
