package main

import (
	"context"
	"fmt"
	"os"

	"github.com/thomas-vilte/prproof/internal/cli/registry"
	configcmd "github.com/thomas-vilte/prproof/internal/commands/config"
	"github.com/thomas-vilte/prproof/internal/commands/proof"
	cfg "github.com/thomas-vilte/prproof/internal/config"
	"github.com/thomas-vilte/prproof/internal/git"
	"github.com/thomas-vilte/prproof/internal/i18n"
	"github.com/thomas-vilte/prproof/internal/logger"
	"github.com/thomas-vilte/prproof/internal/providers"
	"github.com/thomas-vilte/prproof/internal/services"
	"github.com/thomas-vilte/prproof/internal/ui"
	"github.com/thomas-vilte/prproof/internal/version"
	"github.com/urfave/cli/v3"
)

func main() {
	app, translations, err := initializeApp()
	if err != nil {
		ui.HandleAppError(err)
		os.Exit(1)
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		ui.StopActiveSpinner()
		ui.HandleAppError(err, translations)
		os.Exit(1)
	}
}

func initializeApp() (*cli.Command, *i18n.Translations, error) {
	cfg.LoadEnv()

	cfgApp, err := cfg.LoadConfig(os.Getenv("PRPROOF_CONFIG"))
	if err != nil {
		return nil, nil, err
	}
	cfgApp.ApplyEnv(os.Getenv)

	translations, err := i18n.NewTranslations(cfgApp.Language, "")
	if err != nil {
		return nil, nil, fmt.Errorf("error loading translations: %w", err)
	}

	gitService := git.NewGitService()

	serviceProvider := func(ctx context.Context, offline bool) (proof.ProofService, error) {
		analyzer, err := providers.NewAnalyzer(ctx, cfgApp, offline)
		if err != nil {
			return nil, err
		}
		return services.NewProofService(
			services.WithProofVCSClient(providers.NewVCSClient(cfgApp)),
			services.WithProofAnalyzer(analyzer),
		), nil
	}

	registerCommand := registry.NewRegistry(cfgApp, translations)
	factories := []struct {
		name    string
		factory registry.CommandFactory
	}{
		{"score", proof.NewScoreCommand(serviceProvider, gitService)},
		{"analyze", proof.NewAnalyzeCommand(serviceProvider, gitService)},
		{"report", proof.NewReportCommand(serviceProvider, gitService)},
		{"prs", proof.NewPRsCommand(serviceProvider, gitService)},
		{"repos", proof.NewReposCommand(serviceProvider)},
		{"config", configcmd.NewConfigCommandFactory()},
	}
	for _, f := range factories {
		if err := registerCommand.Register(f.name, f.factory); err != nil {
			return nil, nil, err
		}
	}

	return &cli.Command{
		Name:        "prproof",
		Usage:       translations.GetMessage("app_usage", 0, nil),
		Version:     version.FullVersion(),
		Description: translations.GetMessage("app_description", 0, nil),
		Commands:    registerCommand.CreateCommands(),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "debug",
				Usage: translations.GetMessage("flag.debug", 0, nil),
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: translations.GetMessage("flag.verbose", 0, nil),
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			l := logger.Initialize(logger.Options{
				Debug:   cmd.Bool("debug"),
				Verbose: cmd.Bool("verbose"),
			})
			return logger.WithLogger(ctx, l), nil
		},
		EnableShellCompletion: true,
	}, translations, nil
}
