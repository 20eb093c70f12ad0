package proof

import (
	"context"
	"fmt"

	cfg "github.com/thomas-vilte/prproof/internal/config"
	"github.com/thomas-vilte/prproof/internal/i18n"
	"github.com/thomas-vilte/prproof/internal/logger"
	"github.com/thomas-vilte/prproof/internal/ui"
	"github.com/urfave/cli/v3"
)

type PRsCommand struct {
	base
}

func NewPRsCommand(provider ServiceProvider, resolver RepoResolver) *PRsCommand {
	return &PRsCommand{base{provider: provider, resolver: resolver}}
}

func (c *PRsCommand) CreateCommand(t *i18n.Translations, _ *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:  "prs",
		Usage: t.GetMessage("prs.usage", 0, nil),
		Flags: []cli.Flag{repoFlag(t), jsonFlag(t), limitFlag(t)},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			ctx = withJSONLogging(ctx, cmd)
			svc, err := c.provider(ctx, true)
			if err != nil {
				return fmt.Errorf("%s: %w", t.GetMessage("error.service_creation", 0, nil), err)
			}

			ref, err := c.resolver.ResolveRepo(ctx, cmd.String("repo"))
			if err != nil {
				return err
			}

			spinner := ui.NewSmartSpinner(t.GetMessage("ui.listing", 0, nil))
			spinner.Start()
			prs, err := svc.ListClosedPRs(ctx, ref.Owner, ref.Name)
			spinner.Stop()
			if err != nil {
				return err
			}
			prs = limit(prs, cmd.Int("limit"))

			logger.Info(ctx, "closed pull requests listed", "repo", ref.String(), "count", len(prs))

			w := output(cmd)
			if cmd.Bool("json") {
				return ui.WriteJSON(w, prs)
			}
			ui.RenderPRList(w, ref.String(), prs, t)
			return nil
		},
	}
}
