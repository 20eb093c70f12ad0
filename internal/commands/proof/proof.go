package proof

import (
	"context"
	"io"
	"os"

	domainErrors "github.com/thomas-vilte/prproof/internal/errors"
	"github.com/thomas-vilte/prproof/internal/git"
	"github.com/thomas-vilte/prproof/internal/i18n"
	"github.com/thomas-vilte/prproof/internal/input"
	"github.com/thomas-vilte/prproof/internal/logger"
	"github.com/thomas-vilte/prproof/internal/models"
	"github.com/thomas-vilte/prproof/internal/ui"
	"github.com/urfave/cli/v3"
)

// ProofService is what the proof commands need from the service layer.
type ProofService interface {
	FetchRecord(ctx context.Context, owner, repo string, number int) (models.ChangeRecord, error)
	Score(ctx context.Context, record models.ChangeRecord) models.ScoreSet
	Analyze(ctx context.Context, record models.ChangeRecord) models.AnalysisResult
	BuildReport(ctx context.Context, record models.ChangeRecord) models.Report
	ListClosedPRs(ctx context.Context, owner, repo string) ([]models.PullRequestRef, error)
	ListRepos(ctx context.Context) ([]models.RepositoryRef, error)
}

// ServiceProvider builds a ProofService on demand. offline means no AI
// provider is contacted.
type ServiceProvider func(ctx context.Context, offline bool) (ProofService, error)

// RepoResolver turns a --repo value, possibly empty, into a repository.
type RepoResolver interface {
	ResolveRepo(ctx context.Context, ref string) (git.RepoRef, error)
}

type base struct {
	provider ServiceProvider
	resolver RepoResolver
}

func repoFlag(t *i18n.Translations) cli.Flag {
	return &cli.StringFlag{
		Name:    "repo",
		Aliases: []string{"r"},
		Usage:   t.GetMessage("flag.repo", 0, nil),
	}
}

func jsonFlag(t *i18n.Translations) cli.Flag {
	return &cli.BoolFlag{
		Name:  "json",
		Usage: t.GetMessage("flag.json", 0, nil),
	}
}

func offlineFlag(t *i18n.Translations) cli.Flag {
	return &cli.BoolFlag{
		Name:  "offline",
		Usage: t.GetMessage("flag.offline", 0, nil),
	}
}

func limitFlag(t *i18n.Translations) cli.Flag {
	return &cli.IntFlag{
		Name:    "limit",
		Aliases: []string{"l"},
		Usage:   t.GetMessage("flag.limit", 0, nil),
	}
}

// sourceFlags selects where the change record comes from.
func sourceFlags(t *i18n.Translations) []cli.Flag {
	return []cli.Flag{
		repoFlag(t),
		&cli.IntFlag{
			Name:    "pr",
			Aliases: []string{"n"},
			Usage:   t.GetMessage("flag.pr", 0, nil),
		},
		&cli.StringFlag{
			Name:    "input",
			Aliases: []string{"i"},
			Usage:   t.GetMessage("flag.input", 0, nil),
		},
		jsonFlag(t),
	}
}

// loadRecord reads the change record from --input or fetches it from
// GitHub using --repo and --pr. A pull request URL in --repo supplies the
// number when --pr is absent.
func (b *base) loadRecord(ctx context.Context, cmd *cli.Command, t *i18n.Translations, svc ProofService) (models.ChangeRecord, error) {
	path := cmd.String("input")
	number := cmd.Int("pr")

	if path != "" {
		if number != 0 {
			return models.ChangeRecord{}, domainErrors.ErrConflictingSources
		}
		logger.Debug(ctx, "loading change record from file", "path", path)
		return input.LoadChangeRecord(path)
	}

	ref, err := b.resolver.ResolveRepo(ctx, cmd.String("repo"))
	if err != nil {
		return models.ChangeRecord{}, err
	}
	if number == 0 {
		number = ref.Number
	}
	if number <= 0 {
		return models.ChangeRecord{}, domainErrors.ErrNoSource
	}

	spinner := ui.NewSmartSpinner(t.GetMessage("ui.fetching_pr", 0, struct {
		Number int
		Repo   string
	}{number, ref.String()}))
	spinner.Start()

	record, err := svc.FetchRecord(ctx, ref.Owner, ref.Name, number)
	if err != nil {
		spinner.Error(t.GetMessage("ui.fetch_failed", 0, nil))
		return models.ChangeRecord{}, err
	}
	spinner.Stop()

	return record, nil
}

// withJSONLogging switches the context logger to JSON on --json runs so
// stderr stays machine-readable too.
func withJSONLogging(ctx context.Context, cmd *cli.Command) context.Context {
	if !cmd.Bool("json") {
		return ctx
	}
	root := cmd.Root()
	return logger.WithLogger(ctx, logger.New(logger.Options{
		Debug:   root.Bool("debug"),
		Verbose: root.Bool("verbose"),
		JSON:    true,
		Output:  root.ErrWriter,
	}))
}

func output(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

func limit[T any](items []T, n int) []T {
	if n > 0 && len(items) > n {
		return items[:n]
	}
	return items
}
