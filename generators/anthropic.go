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

	"probelab/cmds"
	"probelab/debugs"
	"probelab/logs"
	"probelab/nets"
	"probelab/vars"
)

var (
	tapBackend   = cmds.Switch("-tap-backend")
	debugBackend = cmds.Switch("-debug-backend")
)

const anthropicBaseURL = "https://api.anthropic.com/v1"

const anthropicVersion = "2023-06-01"

type Anthropic struct {
	args   GeneratorArgs
	apiKey string
	client nets.HTTPClient

	Key     dscope.Inject[AnthropicAPIKey]
	Timeout dscope.Inject[GenerateTimeout]
	Logger  dscope.Inject[logs.Logger]
	Tap     dscope.Inject[debugs.Tap]
}

var _ Generator = new(Anthropic)

func (a *Anthropic) Args() GeneratorArgs {
	return a.args
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicRequest struct {
	Model       string             `json:"model"`
	MaxTokens   int                `json:"max_tokens"`
	Temperature *float32           `json:"temperature,omitempty"`
	Messages    []anthropicMessage `json:"messages"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Usage Usage `json:"usage"`
}

type anthropicErrorResponse struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

func (a *Anthropic) Generate(ctx context.Context, prompt string) (ret Result, err error) {
	ctx, cancel := context.WithTimeout(ctx, timeoutFor(a.args, a.Timeout()))
	defer cancel()

	maxTokens := vars.DerefOrZero(a.args.MaxGenerateTokens)
	if maxTokens == 0 {
		maxTokens = 2 * K
	}

	req := anthropicRequest{
		Model:       a.args.Model,
		MaxTokens:   maxTokens,
		Temperature: a.args.Temperature,
		Messages: []anthropicMessage{
			{
				Role:    "user",
				Content: prompt,
			},
		},
	}

	if *tapBackend {
		a.Tap()(ctx, "before messages call", map[string]any{
			"request": req,
		})
	}

	a.Logger().InfoContext(ctx, "generating",
		"model", a.args.Model,
	)

	bodyBytes, err := json.Marshal(req)
	if err != nil {
		return ret, wrap(err)
	}
	baseURL := vars.FirstNonZero(a.args.BaseURL, anthropicBaseURL)
	httpReq, err := http.NewRequestWithContext(ctx, "POST", baseURL+"/messages", bytes.NewReader(bodyBytes))
	if err != nil {
		return ret, wrap(err)
	}
	httpReq.Header.Set("x-api-key", vars.FirstNonZero(a.apiKey, string(a.Key())))
	httpReq.Header.Set("anthropic-version", anthropicVersion)
	httpReq.Header.Set("Content-Type", "application/json")

	t0 := time.Now()
	resp, err := a.client.Do(httpReq)
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
		var errResp anthropicErrorResponse
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

	var msgResp anthropicResponse
	if err := json.Unmarshal(body, &msgResp); err != nil {
		return ret, errors.Join(
			fmt.Errorf("bad response body: %w", err),
			ErrBackendUnavailable,
		)
	}

	for _, block := range msgResp.Content {
		if block.Type == "text" {
			ret.Text += block.Text
		}
	}
	ret.Usage = msgResp.Usage

	if *debugBackend {
		a.Logger().InfoContext(ctx, "anthropic response",
			"usage", ret.Usage,
			"len", len(ret.Text),
		)
	}

	return ret, nil
}

type NewAnthropic func(args GeneratorArgs, apiKey string) *Anthropic

func (Module) NewAnthropic(
	inject dscope.InjectStruct,
	client nets.HTTPClient,
) NewAnthropic {
	return func(args GeneratorArgs, apiKey string) *Anthropic {
		ret := &Anthropic{
			args:   args,
			apiKey: apiKey,
			client: client,
		}
		inject(&ret)
		return ret
	}
}
