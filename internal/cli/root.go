package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nickpending/newscheck/internal/api"
	"github.com/nickpending/newscheck/internal/config"
	"github.com/nickpending/newscheck/internal/logging"
	"github.com/nickpending/newscheck/internal/ui"
	"github.com/spf13/cobra"
)

const serviceName = "newscheck"

// App carries global flags and the configuration they are merged into
type App struct {
	BaseURL  string
	MLURL    string
	Timeout  int
	LogLevel string

	cfg *config.Config
}

// NewRootCmd builds the newscheck command tree
func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "newscheck",
		Short:        "Check news for fake-news patterns against a classification service",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  newscheck

  # Scriptable commands
  newscheck list --format json
  newscheck check --title "Headline" --content "Article text"
  newscheck export -o news.html
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI
			if len(args) == 0 {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return app.loadConfig(cmd)
	}

	cmd.PersistentFlags().StringVar(&app.BaseURL, "base-url", "", "News collection endpoint (default from config)")
	cmd.PersistentFlags().StringVar(&app.MLURL, "ml-url", "", "Model endpoint base (default derived from --base-url)")
	cmd.PersistentFlags().IntVar(&app.Timeout, "timeout", 0, "Per-request timeout in seconds, 0 disables")
	cmd.PersistentFlags().StringVar(&app.LogLevel, "log-level", "", "Log level (debug|info|warn|error)")

	cmd.AddCommand(newListCmd(app))
	cmd.AddCommand(newCheckCmd(app))
	cmd.AddCommand(newShowCmd(app))
	cmd.AddCommand(newDeleteCmd(app))
	cmd.AddCommand(newExportCmd(app))
	cmd.AddCommand(newPredictCmd(app))
	cmd.AddCommand(newHealthCmd(app))

	return cmd
}

// loadConfig reads config.toml and the environment, then applies any flags set
// on the command line
func (app *App) loadConfig(cmd *cobra.Command) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("base-url") {
		cfg.API.BaseURL = app.BaseURL
	}
	if flags.Changed("ml-url") {
		cfg.API.MLURL = app.MLURL
	}
	if flags.Changed("timeout") {
		if app.Timeout < 0 {
			return fmt.Errorf("invalid --timeout %d: want a non-negative number of seconds", app.Timeout)
		}
		cfg.API.TimeoutSeconds = app.Timeout
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = app.LogLevel
	}

	app.cfg = cfg
	return nil
}

// logger returns a stderr logger for scriptable commands
func (app *App) logger(cmd *cobra.Command) *logging.Logger {
	return logging.New(serviceName, app.cfg.Log.Level, cmd.ErrOrStderr())
}

func (app *App) client(log *logging.Logger) (*api.Client, error) {
	return api.NewClientFromConfig(app.cfg, log)
}

func runTUI(app *App) error {
	logFile, err := app.cfg.GetLogFile()
	if err != nil {
		return err
	}
	log, closer, err := logging.NewFile(serviceName, app.cfg.Log.Level, logFile)
	if err != nil {
		return err
	}
	defer closer.Close()

	client, err := app.client(log)
	if err != nil {
		return err
	}
	log.Service().WithField("base_url", client.BaseURL()).Info("starting tui")

	program := tea.NewProgram(ui.NewModel(client, app.cfg, log), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		log.WithError(err).Error("tui exited with error")
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}
