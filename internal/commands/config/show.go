package config

import (
	"context"
	"fmt"
	"strconv"

	"github.com/thomas-vilte/prproof/internal/config"
	"github.com/thomas-vilte/prproof/internal/i18n"
	"github.com/thomas-vilte/prproof/internal/ui"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newShowCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: t.GetMessage("config.show_usage", 0, nil),
		Action: func(ctx context.Context, command *cli.Command) error {
			w := output(command)
			notSet := t.GetMessage("config.not_set", 0, nil)

			ui.PrintSectionBanner(w, t.GetMessage("config.usage", 0, nil))
			ui.PrintKeyValue(w, t.GetMessage("config.path", 0, nil), valueOr(cfg.PathFile, notSet))
			ui.PrintKeyValue(w, t.GetMessage("config.language", 0, nil), cfg.Language)

			active, provider := cfg.Provider()
			ui.PrintKeyValue(w, t.GetMessage("config.active_ai", 0, nil), valueOr(string(active), notSet))
			ui.PrintKeyValue(w, t.GetMessage("config.model", 0, nil), valueOr(string(cfg.ModelFor(active)), notSet))
			ui.PrintKeyValue(w, t.GetMessage("config.api_key", 0, nil), maskSecret(provider.APIKey, notSet))
			if provider.BaseURL != "" {
				ui.PrintKeyValue(w, t.GetMessage("config.base_url", 0, nil), provider.BaseURL)
			}
			ui.PrintKeyValue(w, t.GetMessage("config.github_token", 0, nil), maskSecret(cfg.GitHub.Token, notSet))

			ui.PrintKeyValue(w, t.GetMessage("config.max_files", 0, nil), strconv.Itoa(cfg.Analysis.MaxPatchFiles))
			ui.PrintKeyValue(w, t.GetMessage("config.patch_budget", 0, nil), strconv.Itoa(cfg.Analysis.PatchCharBudget))
			ui.PrintKeyValue(w, t.GetMessage("config.timeout", 0, nil), strconv.Itoa(cfg.Analysis.TimeoutSeconds))

			if len(cfg.AIConfig.Models) > 0 {
				_, _ = fmt.Fprintln(w)
				for _, ai := range config.SupportedAIs() {
					if model, ok := cfg.AIConfig.Models[ai]; ok {
						_, _ = fmt.Fprintf(w, "   - %s: %s\n", ai, model)
					}
				}
			}

			return nil
		},
	}
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

// maskSecret keeps the last four characters of long secrets.
func maskSecret(secret, notSet string) string {
	switch {
	case secret == "":
		return notSet
	case len(secret) <= 8:
		return "****"
	default:
		return "****" + secret[len(secret)-4:]
	}
}
