package generators

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/reusee/dscope"

	"probelab/debugs"
	"probelab/logs"
	"probelab/nets"
	"probelab/vars"
)

const openAIBaseURL = "https://api.openai.com/v1"

type OpenAI struct {
	args   GeneratorArgs
	apiKey string
	client nets.HTTPClient

	Key     dscope.Inject[OpenAIAPIKey]
	Timeout dscope.Inject[GenerateTimeout]
	Logger  dscope.Inject[logs.Logger]
	Tap     dscope.Inject[debugs.Tap]
}

var _ Generator = new(OpenAI)

func (o *OpenAI) Args() GeneratorArgs {
	return o.args
}

type ChatCompletionMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatCompletionRequest struct {
	Model               string                  `json:"model"`
	Messages            []ChatCompletionMessage `json:"messages"`
	MaxCompletionTokens int                     `json:"max_completion_tokens,omitempty"`
	Temperature         *float32                `json:"temperature,omitempty"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message ChatCompletionMessage `json:"message"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
	} `json:"usage"`
}

type openAIErrorResponse struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

func (o *OpenAI) Generate(ctx context.Context, prompt string) (ret Result, err error) {
	ctx, cancel := context.WithTimeout(ctx, timeoutFor(o.args, o.Timeout()))
	defer cancel()

	req := ChatCompletionRequest{
		Model: o.args.Model,
		Messages: []ChatCompletionMessage{
			{
				Role:    "user",
				Content: prompt,
			},
		},
		MaxCompletionTokens: vars.DerefOrZero(o.args.MaxGenerateTokens),
		Temperature:         o.args.Temperature,
	}

	if *tapBackend {
		o.Tap()(ctx, "before chat completion call", map[string]any{
			"request": req,
		})
	}

	o.Logger().InfoContext(ctx, "generating",
		"model", o.args.Model,
	)

	bodyBytes, err := json.Marshal(req)
	if err != nil {
		return ret, wrap(err)
	}
	baseURL := vars.FirstNonZero(o.args.BaseURL, openAIBaseURL)
	httpReq, err := http.NewRequestWithContext(ctx, "POST", baseURL+"/chat/completions", bytes.NewReader(bodyBytes))
	if err != nil {
		return ret, wrap(err)
	}
	if key := vars.FirstNonZero(o.apiKey, string(o.Key())); key != "" {
		httpReq.Header.Set("Authorization", "Bearer "+key)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	t0 := time.Now()
	resp, err := o.client.Do(httpReq)
	ret.Elapsed = time.Since(t0)
	if err != nil {
		if ctx.Err() != nil {
			return ret, errors.Join(err, ErrBackendTimeout)
		}
		return ret, errors.Join(err, ErrBackendUnavailable)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	ret.Elapsed = time.Since(t0)
	if err != nil {
		if ctx.Err() != nil {
			return ret, errors.Join(err, ErrBackendTimeout)
		}
		return ret, errors.Join(err, ErrBackendUnavailable)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp openAIErrorResponse
		if err := json.Unmarshal(body, &errResp); err != nil || errResp.Error.Message == "" {
			return ret, errors.Join(
				fmt.Errorf("bad status: %d, body: %s", resp.StatusCode, body),
				ErrBackendUnavailable,
			)
		}
		return ret, errors.Join(
			fmt.Errorf("%s: %s", errResp.Error.Type, errResp.Error.Message),
			ErrBackendUnavailable,
		)
	}

	var chatResp chatCompletionResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return ret, errors.Join(
			fmt.Errorf("bad response body: %w", err),
			ErrBackendUnavailable,
		)
	}
	if len(chatResp.Choices) == 0 {
		return ret, errors.Join(
			errors.New("no choices"),
			ErrBackendUnavailable,
		)
	}

	ret.Text = chatResp.Choices[0].Message.Content
	ret.Usage = Usage{
		InputTokens:  chatResp.Usage.PromptTokens,
		OutputTokens: chatResp.Usage.CompletionTokens,
	}

	if *debugBackend {
		o.Logger().InfoContext(ctx, "open ai response",
			"usage", ret.Usage,
			"len", len(ret.Text),
		)
	}

	return ret, nil
}

type NewOpenAI func(args GeneratorArgs, apiKey string) *OpenAI

func (Module) NewOpenAI(
	inject dscope.InjectStruct,
	client nets.HTTPClient,
) NewOpenAI {
	return func(args GeneratorArgs, apiKey string) *OpenAI {
		ret := &OpenAI{
			args:   args,
			apiKey: apiKey,
			client: client,
		}
		inject(&ret)
		return ret
	}
}
