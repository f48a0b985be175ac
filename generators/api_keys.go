package generators

import (
	"os"

	"probelab/configs"
	"probelab/vars"
)

type (
	AnthropicAPIKey string
	OpenAIAPIKey    string
)

func (Module) AnthropicAPIKey(
	loader configs.Loader,
) AnthropicAPIKey {
	return vars.FirstNonZero(
		configs.First[AnthropicAPIKey](loader, "anthropic_api_key"),
		AnthropicAPIKey(os.Getenv("ANTHROPIC_API_KEY")),
	)
}

func (Module) OpenAIAPIKey(
	loader configs.Loader,
) OpenAIAPIKey {
	return vars.FirstNonZero(
		configs.First[OpenAIAPIKey](loader, "openai_api_key"),
		OpenAIAPIKey(os.Getenv("OPENAI_API_KEY")),
	)
}
