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

type ReportCommand struct {
	base
}

func NewReportCommand(provider ServiceProvider, resolver RepoResolver) *ReportCommand {
	return &ReportCommand{base{provider: provider, resolver: resolver}}
}

func (c *ReportCommand) CreateCommand(t *i18n.Translations, _ *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:    "report",
		Aliases: []string{"r"},
		Usage:   t.GetMessage("report.usage", 0, nil),
		Flags:   append(sourceFlags(t), offlineFlag(t)),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			ctx = withJSONLogging(ctx, cmd)
			log := logger.FromContext(ctx)
			start := time.Now()

			svc, err := c.provider(ctx, cmd.Bool("offline"))
			if err != nil {
				return fmt.Errorf("%s: %w", t.GetMessage("error.service_creation", 0, nil), err)
			}

			record, err := c.loadRecord(ctx, cmd, t, svc)
			if err != nil {
				return fmt.Errorf("%s: %w", t.GetMessage("error.report_failed", 0, nil), err)
			}

			spinner := ui.NewSmartSpinner(t.GetMessage("ui.analyzing", 0, nil))
			spinner.Start()
			report := svc.BuildReport(ctx, record)
			spinner.Stop()

			log.Info("report command finished",
				"pr_number", report.Number,
				"tier", report.Scores.Tier,
				"source", report.AnalysisSource,
				"duration_ms", time.Since(start).Milliseconds())

			w := output(cmd)
			if cmd.Bool("json") {
				return ui.WriteJSON(w, report)
			}
			ui.RenderReport(w, report, t)
			if report.Analysis.Usage != nil {
				_, _ = fmt.Fprintln(w)
				ui.PrintTokenUsage(w, report.Analysis.Usage, t)
			}
			return nil
		},
	}
}
