package errors

import "fmt"

// ErrorType defines the category of the error
type ErrorType string

const (
	TypeConfiguration ErrorType = "CONFIGURATION"
	TypeAI            ErrorType = "AI"
	TypeVCS           ErrorType = "VCS"
	TypeGit           ErrorType = "GIT"
	TypeInput         ErrorType = "INPUT"
	TypeInternal      ErrorType = "INTERNAL"
)

// AppError represents a domain-level error with a type and an underlying error
type AppError struct {
	Type       ErrorType
	Message    string
	Context    map[string]interface{}
	Err        error
	Suggestion string
}

func (e *AppError) Error() string {
	var msg string
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %s (%v)", e.Type, e.Message, e.Err)
	} else {
		msg = fmt.Sprintf("%s: %s", e.Type, e.Message)
	}

	if e.Context != nil {
		if status, ok := e.Context["status"].(int); ok && status != 0 {
			msg += fmt.Sprintf(" - HTTP %d", status)
		}
	}

	return msg
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches AppErrors of the same type and message, so wrapped copies of a
// sentinel still satisfy errors.Is.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Type == t.Type && e.Message == t.Message
}

// WithError creates a new AppError with an underlying error
func (e *AppError) WithError(err error) *AppError {
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    e.Context,
		Err:        err,
		Suggestion: e.Suggestion,
	}
}

// WithContext creates a new AppError with additional context
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	ctx := make(map[string]interface{})
	for k, v := range e.Context {
		ctx[k] = v
	}
	ctx[key] = value
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    ctx,
		Err:        e.Err,
		Suggestion: e.Suggestion,
	}
}

func (e *AppError) WithSuggestion(suggestion string) *AppError {
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    e.Context,
		Err:        e.Err,
		Suggestion: suggestion,
	}
}

// NewAppError creates a new AppError
func NewAppError(t ErrorType, msg string, err error) *AppError {
	return &AppError{
		Type:    t,
		Message: msg,
		Err:     err,
	}
}

// Configuration errors
var (
	ErrConfigInvalid = NewAppError(TypeConfiguration, "configuration is invalid", nil).
				WithSuggestion("Inspect it with: prproof config show")

	ErrConfigPathMissing = NewAppError(TypeConfiguration, "configuration file path is not defined", nil)

	ErrProviderNotSupported = NewAppError(TypeConfiguration, "AI provider not supported", nil).
				WithSuggestion("Supported providers: groq, gemini\nRun: prproof config set active-ai groq")

	ErrUnknownConfigKey = NewAppError(TypeConfiguration, "unknown configuration key", nil).
				WithSuggestion("Valid keys: lang, active-ai, model, api-key, base-url, github-token, timeout, patch-budget, max-files")
)

// Git errors
var (
	ErrNotInGitRepo = NewAppError(TypeGit, "Not in a git repository", nil).
			WithSuggestion("Pass the repository explicitly: --repo owner/name")

	ErrGetRepoURL = NewAppError(TypeGit, "Failed to get repository URL", nil).
			WithSuggestion("Add a remote: git remote add origin <url>")

	ErrExtractRepoInfo = NewAppError(TypeGit, "Failed to extract repository info", nil)
)

// VCS errors
var (
	ErrTokenMissing = NewAppError(TypeConfiguration, "GitHub token is missing", nil).
			WithSuggestion("Export GITHUB_TOKEN or run: prproof config set github-token <token>")

	ErrRepositoryNotFound = NewAppError(TypeVCS, "repository or pull request not found", nil).
				WithSuggestion("Check the repository name, the PR number and your token's access")

	ErrInvalidRepo = NewAppError(TypeVCS, "invalid repository reference", nil).
			WithSuggestion("Use owner/name or a pull request URL")

	ErrGitHubTokenInvalid = NewAppError(TypeVCS, "GitHub token is invalid or expired", nil).
				WithSuggestion("Generate a new token at: https://github.com/settings/tokens")

	ErrGitHubRateLimit = NewAppError(TypeVCS, "GitHub API rate limit exceeded", nil).
				WithSuggestion("Wait a few minutes or use a personal access token for higher limits")

	ErrFetchPR = NewAppError(TypeVCS, "failed to fetch pull request details", nil)

	ErrGitHubAPI = NewAppError(TypeVCS, "GitHub API request failed", nil)
)

// AI errors. None of these reach the caller of the analyzer; they are
// logged before falling back.
var (
	ErrAPIKeyMissing = NewAppError(TypeConfiguration, "AI API key is missing", nil).
				WithSuggestion("Export GROQ_API_KEY (or GEMINI_API_KEY) to enable model analysis")

	ErrAIGeneration = NewAppError(TypeAI, "AI generation failed", nil)

	ErrAIStatus = NewAppError(TypeAI, "AI provider returned an error status", nil)

	ErrInvalidAIOutput = NewAppError(TypeAI, "invalid AI output format", nil)
)

// Input errors
var (
	ErrReadInput = NewAppError(TypeInput, "failed to read change record", nil).
			WithSuggestion("Provide a JSON or YAML file with title, additions, deletions, patches and reviews")

	ErrUnsupportedInput = NewAppError(TypeInput, "unsupported input format", nil).
				WithSuggestion("Use a .json, .yaml or .yml file")

	ErrNoSource = NewAppError(TypeInput, "no change record source given", nil).
			WithSuggestion("Use --pr <number> (with --repo) or --input <file>")

	ErrConflictingSources = NewAppError(TypeInput, "--pr and --input cannot be used together", nil).
				WithSuggestion("Pick one source: a pull request or a change record file")
)
