package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	domainErrors "github.com/thomas-vilte/prproof/internal/errors"
)

type (
	Config struct {
		Language string `json:"language"`
		PathFile string `json:"-"`

		AIConfig    AIConfig                    `json:"ai_config"`
		AIProviders map[string]AIProviderConfig `json:"ai_providers,omitempty"`
		GitHub      GitHubConfig                `json:"github"`
		Analysis    AnalysisConfig              `json:"analysis"`
	}

	AIConfig struct {
		ActiveAI AI           `json:"active_ai"`
		Models   map[AI]Model `json:"models,omitempty"`
	}

	AIProviderConfig struct {
		APIKey  string `json:"api_key,omitempty"`
		BaseURL string `json:"base_url,omitempty"`
	}

	GitHubConfig struct {
		Token string `json:"token,omitempty"`
	}

	// AnalysisConfig bounds what is sent to the remote model.
	AnalysisConfig struct {
		MaxPatchFiles   int `json:"max_patch_files"`
		PatchCharBudget int `json:"patch_char_budget"`
		TimeoutSeconds  int `json:"timeout_seconds"`
	}
)

const (
	defaultLang            = "en"
	defaultMaxPatchFiles   = 5
	defaultPatchCharBudget = 3000
	defaultTimeoutSeconds  = 30

	minPatchCharBudget = 500
	maxPatchCharBudget = 4000

	configDirName  = ".prproof"
	configFileName = "config.json"
)

// Default returns a configuration holding every default value.
func Default() *Config {
	return &Config{
		Language: defaultLang,
		AIConfig: AIConfig{
			ActiveAI: AIGroq,
			Models: map[AI]Model{
				AIGroq:   DefaultModelForAI(AIGroq),
				AIGemini: DefaultModelForAI(AIGemini),
			},
		},
		AIProviders: map[string]AIProviderConfig{},
		Analysis: AnalysisConfig{
			MaxPatchFiles:   defaultMaxPatchFiles,
			PatchCharBudget: defaultPatchCharBudget,
			TimeoutSeconds:  defaultTimeoutSeconds,
		},
	}
}

// DefaultPath returns ~/.prproof/config.json.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("error getting home directory: %w", err)
	}
	if home == "" {
		return "", errors.New("home directory is empty")
	}
	return filepath.Join(home, configDirName, configFileName), nil
}

// LoadConfig reads the configuration at path, creating it with defaults when
// it does not exist yet. An empty path means DefaultPath.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return CreateDefaultConfig(path)
	} else if err != nil {
		return nil, fmt.Errorf("error checking configuration file: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading configuration file: %w", err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error decoding configuration file: %w", err)
	}
	cfg.PathFile = path
	cfg.fillDefaults()

	if err := validateConfig(cfg); err != nil {
		return nil, domainErrors.ErrConfigInvalid.WithError(err).WithContext("path", path)
	}

	return cfg, nil
}

func CreateDefaultConfig(path string) (*Config, error) {
	cfg := Default()
	cfg.PathFile = path

	if err := SaveConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func SaveConfig(cfg *Config) error {
	if err := validateConfig(cfg); err != nil {
		return domainErrors.ErrConfigInvalid.WithError(err)
	}

	if cfg.PathFile == "" {
		return domainErrors.ErrConfigPathMissing
	}

	if err := os.MkdirAll(filepath.Dir(cfg.PathFile), 0o755); err != nil {
		return fmt.Errorf("error creating configuration directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding configuration: %w", err)
	}

	// The file may hold API keys.
	if err := os.WriteFile(cfg.PathFile, data, 0o600); err != nil {
		return fmt.Errorf("error saving configuration: %w", err)
	}

	return nil
}

// LoadEnv loads a .env file from the working directory when present. Values
// already set in the process environment win.
func LoadEnv(files ...string) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		_ = godotenv.Load(f)
	}
}

// ApplyEnv overlays credentials and the active provider from environment
// variables. It only touches the in-memory configuration.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if getenv == nil {
		getenv = os.Getenv
	}

	if p := getenv("PRPROOF_AI_PROVIDER"); p != "" {
		c.AIConfig.ActiveAI = AI(p)
	}

	for _, ai := range SupportedAIs() {
		if key := getenv(EnvKeyForAI(ai)); key != "" {
			pc := c.AIProviders[string(ai)]
			pc.APIKey = key
			c.setProvider(ai, pc)
		}
	}

	if url := getenv("PRPROOF_GROQ_BASE_URL"); url != "" {
		pc := c.AIProviders[string(AIGroq)]
		pc.BaseURL = url
		c.setProvider(AIGroq, pc)
	}

	if token := getenv("GITHUB_TOKEN"); token != "" {
		c.GitHub.Token = token
	}
}

// Provider returns the settings of the active provider.
func (c *Config) Provider() (AI, AIProviderConfig) {
	ai := c.AIConfig.ActiveAI
	return ai, c.AIProviders[string(ai)]
}

// ModelFor returns the configured model for ai, or its default.
func (c *Config) ModelFor(ai AI) Model {
	if m, ok := c.AIConfig.Models[ai]; ok && m != "" {
		return m
	}
	return DefaultModelForAI(ai)
}

// Timeout is the per-request deadline for the remote model.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Analysis.TimeoutSeconds) * time.Second
}

func (c *Config) setProvider(ai AI, pc AIProviderConfig) {
	if c.AIProviders == nil {
		c.AIProviders = make(map[string]AIProviderConfig)
	}
	c.AIProviders[string(ai)] = pc
}

func (c *Config) fillDefaults() {
	if c.Language == "" {
		c.Language = defaultLang
	}
	if c.Analysis.MaxPatchFiles == 0 {
		c.Analysis.MaxPatchFiles = defaultMaxPatchFiles
	}
	if c.Analysis.PatchCharBudget == 0 {
		c.Analysis.PatchCharBudget = defaultPatchCharBudget
	}
	if c.Analysis.TimeoutSeconds == 0 {
		c.Analysis.TimeoutSeconds = defaultTimeoutSeconds
	}
	if c.AIProviders == nil {
		c.AIProviders = map[string]AIProviderConfig{}
	}
}

func validateConfig(cfg *Config) error {
	if cfg.Language == "" {
		return errors.New("language cannot be empty")
	}
	if !IsSupportedLanguage(cfg.Language) {
		return fmt.Errorf("language not supported: %s", cfg.Language)
	}
	if cfg.AIConfig.ActiveAI != "" && !IsSupportedAI(cfg.AIConfig.ActiveAI) {
		return fmt.Errorf("AI provider not supported: %s", cfg.AIConfig.ActiveAI)
	}
	if cfg.Analysis.MaxPatchFiles < 1 {
		return errors.New("max_patch_files must be greater than 0")
	}
	if cfg.Analysis.PatchCharBudget < minPatchCharBudget || cfg.Analysis.PatchCharBudget > maxPatchCharBudget {
		return fmt.Errorf("patch_char_budget must be between %d and %d", minPatchCharBudget, maxPatchCharBudget)
	}
	if cfg.Analysis.TimeoutSeconds < 1 {
		return errors.New("timeout_seconds must be greater than 0")
	}
	return nil
}

const (
	LangEN = "en"
	LangES = "es"
)

func IsSupportedLanguage(lang string) bool {
	return lang == LangEN || lang == LangES
}
