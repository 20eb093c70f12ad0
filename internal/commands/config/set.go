package config

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/thomas-vilte/prproof/internal/config"
	domainErrors "github.com/thomas-vilte/prproof/internal/errors"
	"github.com/thomas-vilte/prproof/internal/i18n"
	"github.com/thomas-vilte/prproof/internal/logger"
	"github.com/thomas-vilte/prproof/internal/ui"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newSetCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "set",
		Usage:     t.GetMessage("config.set_usage", 0, nil),
		ArgsUsage: t.GetMessage("config.set_args_usage", 0, nil),
		Action: func(ctx context.Context, command *cli.Command) error {
			w := output(command)
			if command.Args().Len() < 2 {
				ui.PrintError(w, t.GetMessage("config.set_error_args", 0, nil))
				return fmt.Errorf("missing arguments")
			}

			key := strings.ToLower(command.Args().Get(0))
			value := command.Args().Get(1)

			if err := applySetting(cfg, key, value); err != nil {
				return err
			}

			if err := config.SaveConfig(cfg); err != nil {
				return err
			}

			logger.Info(ctx, "configuration updated", "key", key)

			shown := value
			if key == "api-key" || key == "github-token" {
				shown = maskSecret(value, "")
			}
			ui.PrintSuccess(w, t.GetMessage("config.set_success", 0, struct {
				Key   string
				Value string
			}{Key: key, Value: shown}))

			return nil
		},
	}
}

func applySetting(cfg *config.Config, key, value string) error {
	switch key {
	case "lang", "language":
		if !config.IsSupportedLanguage(value) {
			return fmt.Errorf("invalid language: %s", value)
		}
		cfg.Language = value
	case "active-ai", "active_ai":
		ai := config.AI(strings.ToLower(value))
		if !config.IsSupportedAI(ai) {
			return domainErrors.ErrProviderNotSupported.WithContext("provider", value)
		}
		cfg.AIConfig.ActiveAI = ai
	case "model":
		if cfg.AIConfig.ActiveAI == "" {
			return fmt.Errorf("no active AI provider configured")
		}
		if cfg.AIConfig.Models == nil {
			cfg.AIConfig.Models = make(map[config.AI]config.Model)
		}
		cfg.AIConfig.Models[cfg.AIConfig.ActiveAI] = config.Model(value)
	case "api-key", "api_key":
		updateProvider(cfg, func(pc *config.AIProviderConfig) { pc.APIKey = value })
	case "base-url", "base_url":
		updateProvider(cfg, func(pc *config.AIProviderConfig) { pc.BaseURL = value })
	case "github-token", "github_token":
		cfg.GitHub.Token = value
	case "timeout":
		n, err := positiveInt(value)
		if err != nil {
			return err
		}
		cfg.Analysis.TimeoutSeconds = n
	case "patch-budget", "patch_budget":
		n, err := positiveInt(value)
		if err != nil {
			return err
		}
		cfg.Analysis.PatchCharBudget = n
	case "max-files", "max_files":
		n, err := positiveInt(value)
		if err != nil {
			return err
		}
		cfg.Analysis.MaxPatchFiles = n
	default:
		return domainErrors.ErrUnknownConfigKey.WithContext("key", key)
	}
	return nil
}

func updateProvider(cfg *config.Config, update func(*config.AIProviderConfig)) {
	active, pc := cfg.Provider()
	update(&pc)
	if cfg.AIProviders == nil {
		cfg.AIProviders = make(map[string]config.AIProviderConfig)
	}
	cfg.AIProviders[string(active)] = pc
}

func positiveInt(value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid number (must be greater than 0): %s", value)
	}
	return n, nil
}
