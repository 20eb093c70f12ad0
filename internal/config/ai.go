package config

type AI string

const (
	AIGroq   AI = "groq"
	AIGemini AI = "gemini"
)

type Model string

const (
	ModelLlama31Instant Model = "llama-3.1-8b-instant"
	ModelLlama33        Model = "llama-3.3-70b-versatile"

	ModelGeminiV25Flash     Model = "gemini-2.5-flash"
	ModelGeminiV25FlashLite Model = "gemini-2.5-flash-lite"
	ModelGeminiV25Pro       Model = "gemini-2.5-pro"
)

const DefaultGroqURL = "https://api.groq.com/openai/v1/chat/completions"

func SupportedAIs() []AI {
	return []AI{
		AIGroq,
		AIGemini,
	}
}

func IsSupportedAI(ai AI) bool {
	for _, s := range SupportedAIs() {
		if s == ai {
			return true
		}
	}
	return false
}

func ModelsForAI(ai AI) []Model {
	switch ai {
	case AIGroq:
		return []Model{
			ModelLlama31Instant,
			ModelLlama33,
		}
	case AIGemini:
		return []Model{
			ModelGeminiV25Flash,
			ModelGeminiV25FlashLite,
			ModelGeminiV25Pro,
		}
	default:
		return []Model{}
	}
}

func DefaultModelForAI(ai AI) Model {
	models := ModelsForAI(ai)
	if len(models) == 0 {
		return ""
	}
	return models[0]
}

// EnvKeyForAI is the environment variable holding the provider's API key.
func EnvKeyForAI(ai AI) string {
	switch ai {
	case AIGroq:
		return "GROQ_API_KEY"
	case AIGemini:
		return "GEMINI_API_KEY"
	default:
		return ""
	}
}
