package generators

import (
	"context"
	"fmt"
	"strings"

	"probelab/vars"
)

// Generator is one model profile's backend: submit a prompt, get the
// generated text plus timing and token usage. A failed call is
// reported, never retried here.
type Generator interface {
	Args() GeneratorArgs
	Generate(ctx context.Context, prompt string) (Result, error)
}

type GetGenerator func(name string) (Generator, error)

func (Module) GetGenerator(
	newAnthropic NewAnthropic,
	newOpenAI NewOpenAI,
	newCommand NewCommand,
	getSpecs GetGeneratorSpecs,
) GetGenerator {
	return func(name string) (Generator, error) {

		// user-defined first
		specs, err := getSpecs()
		if err != nil {
			return nil, err
		}
		for _, spec := range specs {
			if spec.Name != name {
				continue
			}
			switch strings.ToLower(spec.Type) {
			case "anthropic":
				return newAnthropic(spec.GeneratorArgs, spec.APIKey), nil
			case "openai", "open-ai", "open_ai":
				return newOpenAI(spec.GeneratorArgs, spec.APIKey), nil
			case "ollama":
				spec.GeneratorArgs.BaseURL = "http://127.0.0.1:11434/v1"
				return newOpenAI(spec.GeneratorArgs, ""), nil
			case "cmd", "command":
				return newCommand(spec.GeneratorArgs), nil
			default:
				return nil, fmt.Errorf("unknown generator type: %q", spec.Type)
			}
		}

		// ollama
		provider, modelName, ok := strings.Cut(name, ":")
		if ok && provider == "ollama" {
			return newOpenAI(GeneratorArgs{
				BaseURL: "http://127.0.0.1:11434/v1",
				Model:   modelName,
			}, ""), nil
		}

		// built-in profiles
		switch name {

		case "haiku":
			return newAnthropic(GeneratorArgs{
				Model:             "claude-haiku-4-5-20251001",
				MaxGenerateTokens: vars.PtrTo(8 * K),
			}, ""), nil

		case "sonnet":
			return newAnthropic(GeneratorArgs{
				Model:             "claude-sonnet-4-6-20250514",
				MaxGenerateTokens: vars.PtrTo(8 * K),
			}, ""), nil

		case "opus":
			return newAnthropic(GeneratorArgs{
				Model:             "claude-opus-4-6-20250414",
				MaxGenerateTokens: vars.PtrTo(8 * K),
			}, ""), nil

		}

		return nil, fmt.Errorf("invalid model: %s", name)
	}
}

const K = 1024
