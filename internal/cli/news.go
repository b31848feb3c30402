package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/nickpending/newscheck/internal/api"
	"github.com/nickpending/newscheck/internal/format"
	"github.com/nickpending/newscheck/internal/news"
	"github.com/nickpending/newscheck/internal/render"
	"github.com/spf13/cobra"
)

func newListCmd(app *App) *cobra.Command {
	var outFormat string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List checked news, most recent first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(outFormat); err != nil {
				return err
			}
			log := app.logger(cmd)
			client, err := app.client(log)
			if err != nil {
				return err
			}

			items, err := client.ListNews(cmd.Context())
			if err != nil {
				log.WithError(err).WithField("kind", api.Kind(err)).Error("error loading news")
				if outFormat == formatHTML {
					fmt.Fprintln(cmd.OutOrStdout(), render.ListError())
				}
				return fmt.Errorf("%s: %w", news.ListErrorMessage, err)
			}

			out := cmd.OutOrStdout()
			switch outFormat {
			case formatJSON:
				return writeJSON(out, news.DisplayOrder(items))
			case formatHTML:
				_, err := io.WriteString(out, render.NewsList(items))
				return err
			}

			if len(items) == 0 {
				fmt.Fprintln(out, news.EmptyListMessage)
				return nil
			}
			for _, item := range news.DisplayOrder(items) {
				writeItemLine(out, item)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&outFormat, "format", formatText, "Output format (text|json|html)")
	return cmd
}

func newCheckCmd(app *App) *cobra.Command {
	var (
		title     string
		content   string
		outFormat string
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Submit news for classification",
		Example: strings.TrimSpace(`
  newscheck check --title "Headline" --content "Article text"
  cat article.txt | newscheck check --title "Headline" --content -
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(outFormat); err != nil {
				return err
			}
			if content == "-" {
				b, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("failed to read content from stdin: %w", err)
				}
				content = string(b)
			}

			log := app.logger(cmd)
			client, err := app.client(log)
			if err != nil {
				return err
			}

			item, err := client.CheckNews(cmd.Context(), news.NewSubmission(title, content))
			if err != nil {
				log.WithError(err).WithField("kind", api.Kind(err)).Error("error checking news")
				return fmt.Errorf("%s: %w", news.SubmitFailedAlert, err)
			}

			out := cmd.OutOrStdout()
			switch outFormat {
			case formatJSON:
				return writeJSON(out, item)
			case formatHTML:
				_, err := fmt.Fprintln(out, render.Result(item))
				return err
			}
			writeVerdict(out, item)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "News title")
	cmd.Flags().StringVar(&content, "content", "", "News content, or - to read stdin")
	cmd.Flags().StringVar(&outFormat, "format", formatText, "Output format (text|json|html)")
	return cmd
}

func newShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one checked item in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			log := app.logger(cmd)
			client, err := app.client(log)
			if err != nil {
				return err
			}

			item, err := client.GetNews(cmd.Context(), id)
			if err != nil {
				if api.IsNotFound(err) {
					return fmt.Errorf("news item %d not found", id)
				}
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n%s\n\n", oneLine(item.Title), item.Verdict().Badge)
			fmt.Fprintln(out, format.SanitizeTerminal(item.Content, false))
			return nil
		},
	}
}

func newDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete one checked item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			log := app.logger(cmd)
			client, err := app.client(log)
			if err != nil {
				return err
			}

			if err := client.DeleteNews(cmd.Context(), id); err != nil {
				if api.IsNotFound(err) {
					return fmt.Errorf("news item %d not found", id)
				}
				return err
			}
			log.Service().WithField("id", id).Info("news item deleted")
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted news item %d\n", id)
			return nil
		},
	}
}

func newExportCmd(app *App) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the news list as a standalone HTML page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := app.logger(cmd)
			client, err := app.client(log)
			if err != nil {
				return err
			}

			items, err := client.ListNews(cmd.Context())
			if err != nil {
				log.WithError(err).WithField("kind", api.Kind(err)).Error("error loading news")
				return fmt.Errorf("%s: %w", news.ListErrorMessage, err)
			}

			if output == "" || output == "-" {
				return render.Page(cmd.OutOrStdout(), items, time.Now())
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", output, err)
			}
			if err := render.Page(f, items, time.Now()); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("failed to write %s: %w", output, err)
			}
			log.Service().WithField("path", output).WithField("items", len(items)).Info("exported news page")
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")
	return cmd
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q: want a positive integer", s)
	}
	return id, nil
}
