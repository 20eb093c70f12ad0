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

type ReposCommand struct {
	base
}

func NewReposCommand(provider ServiceProvider) *ReposCommand {
	return &ReposCommand{base{provider: provider}}
}

func (c *ReposCommand) CreateCommand(t *i18n.Translations, _ *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:  "repos",
		Usage: t.GetMessage("repos.usage", 0, nil),
		Flags: []cli.Flag{jsonFlag(t), limitFlag(t)},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			ctx = withJSONLogging(ctx, cmd)
			svc, err := c.provider(ctx, true)
			if err != nil {
				return fmt.Errorf("%s: %w", t.GetMessage("error.service_creation", 0, nil), err)
			}

			spinner := ui.NewSmartSpinner(t.GetMessage("ui.listing", 0, nil))
			spinner.Start()
			repos, err := svc.ListRepos(ctx)
			spinner.Stop()
			if err != nil {
				return err
			}
			repos = limit(repos, cmd.Int("limit"))

			logger.Info(ctx, "repositories listed", "count", len(repos))

			w := output(cmd)
			if cmd.Bool("json") {
				return ui.WriteJSON(w, repos)
			}
			ui.RenderRepoList(w, repos, t)
			return nil
		},
	}
}
