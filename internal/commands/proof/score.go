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

type ScoreCommand struct {
	base
}

func NewScoreCommand(provider ServiceProvider, resolver RepoResolver) *ScoreCommand {
	return &ScoreCommand{base{provider: provider, resolver: resolver}}
}

func (c *ScoreCommand) CreateCommand(t *i18n.Translations, _ *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:    "score",
		Aliases: []string{"s"},
		Usage:   t.GetMessage("score.usage", 0, nil),
		Flags:   sourceFlags(t),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			ctx = withJSONLogging(ctx, cmd)
			log := logger.FromContext(ctx)
			start := time.Now()

			svc, err := c.provider(ctx, true)
			if err != nil {
				return fmt.Errorf("%s: %w", t.GetMessage("error.service_creation", 0, nil), err)
			}

			record, err := c.loadRecord(ctx, cmd, t, svc)
			if err != nil {
				return err
			}

			scores := svc.Score(ctx, record)

			log.Info("score command finished",
				"pr_number", record.Number,
				"overall", scores.Overall,
				"duration_ms", time.Since(start).Milliseconds())

			w := output(cmd)
			if cmd.Bool("json") {
				return ui.WriteJSON(w, scores)
			}
			ui.RenderScores(w, scores, t)
			return nil
		},
	}
}
