package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/nickpending/newscheck/internal/api"
	"github.com/nickpending/newscheck/internal/logging"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// healthTimeout bounds the health probes when no request timeout is configured
const healthTimeout = 10 * time.Second

func newPredictCmd(app *App) *cobra.Command {
	var (
		asJSON   bool
		detailed bool
	)

	cmd := &cobra.Command{
		Use:   "predict <text>...",
		Short: "Ask the model for a verdict without storing the text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := app.logger(cmd)
			client, err := app.client(log)
			if err != nil {
				return err
			}

			text := strings.Join(args, " ")
			if detailed {
				return runAnalyze(cmd, client, log, text, asJSON)
			}

			p, err := client.Predict(cmd.Context(), text)
			if err != nil {
				log.WithError(err).WithField("kind", api.Kind(err)).Error("prediction failed")
				return fmt.Errorf("prediction failed: %w", err)
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, p)
			}
			fmt.Fprintf(out, "%s (confidence %s)\n", oneLine(p.Prediction), oneLine(p.Confidence))
			if msg := oneLine(p.Message); msg != "" {
				fmt.Fprintln(out, msg)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the raw prediction as JSON")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "Use the detailed analysis endpoint")
	return cmd
}

func runAnalyze(cmd *cobra.Command, client *api.Client, log *logging.Logger, text string, asJSON bool) error {
	a, err := client.Analyze(cmd.Context(), text)
	if err != nil {
		log.WithError(err).WithField("kind", api.Kind(err)).Error("analysis failed")
		return fmt.Errorf("analysis failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if asJSON {
		return writeJSON(out, a)
	}
	fmt.Fprintf(out, "%s (score %.4f, model %s)\n", oneLine(a.Classification), a.ConfidenceScore, oneLine(a.Model))
	if msg := oneLine(a.Message); msg != "" {
		fmt.Fprintln(out, msg)
	}
	return nil
}

func newHealthCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Probe the news and model endpoints",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := app.logger(cmd)
			client, err := app.client(log)
			if err != nil {
				return err
			}

			ctx, cancel := probeContext(cmd.Context(), app.cfg.GetTimeout())
			defer cancel()

			// Both probes always run to completion so each gets a status line
			var (
				g         errgroup.Group
				count     int
				newsErr   error
				health    api.Health
				healthErr error
			)
			g.Go(func() error {
				items, err := client.ListNews(ctx)
				count, newsErr = len(items), err
				return err
			})
			g.Go(func() error {
				health, healthErr = client.Health(ctx)
				return healthErr
			})
			waitErr := g.Wait()

			out := cmd.OutOrStdout()
			if newsErr != nil {
				fmt.Fprintf(out, "news   %s  error (%s): %v\n", client.BaseURL(), api.Kind(newsErr), newsErr)
			} else {
				fmt.Fprintf(out, "news   %s  ok, %d items\n", client.BaseURL(), count)
			}
			if healthErr != nil {
				fmt.Fprintf(out, "model  %s  error (%s): %v\n", client.MLURL(), api.Kind(healthErr), healthErr)
			} else {
				fmt.Fprintf(out, "model  %s  %s, %s\n", client.MLURL(), oneLine(health.Status), oneLine(health.ModelName))
			}

			if waitErr != nil {
				log.WithError(waitErr).Warn("health check failed")
				return fmt.Errorf("health check failed: %w", waitErr)
			}
			return nil
		},
	}
}

// probeContext leaves a configured client timeout in charge, otherwise bounds the probes
func probeContext(parent context.Context, configured time.Duration) (context.Context, context.CancelFunc) {
	if configured > 0 {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, healthTimeout)
}
