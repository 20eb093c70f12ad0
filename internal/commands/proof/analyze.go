package proof

import (
	"context"
	"fmt"
	"time"

	cfg "github.com/thomas-vilte/prproof/internal/config"
	"github.com/thomas-vilte/prproof/internal/i18n"
	"github.com/thomas-vilte/prproof/internal/logger"
	"github.com/thomas-vilte/prproof/internal/ui"
	"github.com/urfave/cli/v3"
)

type AnalyzeCommand struct {
	base
}

func NewAnalyzeCommand(provider ServiceProvider, resolver RepoResolver) *AnalyzeCommand {
	return &AnalyzeCommand{base{provider: provider, resolver: resolver}}
}

func (c *AnalyzeCommand) CreateCommand(t *i18n.Translations, _ *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:    "analyze",
		Aliases: []string{"a"},
		Usage:   t.GetMessage("analyze.usage", 0, nil),
		Flags:   append(sourceFlags(t), offlineFlag(t)),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			ctx = withJSONLogging(ctx, cmd)
			log := logger.FromContext(ctx)
			start := time.Now()
			offline := cmd.Bool("offline")

			svc, err := c.provider(ctx, offline)
			if err != nil {
				return fmt.Errorf("%s: %w", t.GetMessage("error.service_creation", 0, nil), err)
			}

			record, err := c.loadRecord(ctx, cmd, t, svc)
			if err != nil {
				return err
			}

			spinner := ui.NewSmartSpinner(t.GetMessage("ui.analyzing", 0, nil))
			spinner.Start()
			result := svc.Analyze(ctx, record)
			spinner.Stop()

			log.Info("analyze command finished",
				"pr_number", record.Number,
				"source", result.Source,
				"offline", offline,
				"duration_ms", time.Since(start).Milliseconds())

			w := output(cmd)
			if cmd.Bool("json") {
				return ui.WriteJSON(w, result)
			}
			ui.RenderAnalysis(w, result, result.Source, t)
			if result.Usage != nil {
				_, _ = fmt.Fprintln(w)
				ui.PrintTokenUsage(w, result.Usage, t)
			}
			return nil
		},
	}
}
