package openaiclient

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	pkgerrors "github.com/pkg/errors"
	"github.com/vfg2006/ai-report-generator/internal/config"
	"github.com/vfg2006/ai-report-generator/internal/domain"
)

const stage = "openai"

var (
	ErrMissingAPIKey = errors.New("OPENAI_API_KEY não configurada")
	ErrNoChoices     = errors.New("resposta sem escolhas")
)

// Client usa qualquer endpoint compatível com a API de chat completions da OpenAI
type Client struct {
	openai      openai.Client
	model       string
	temperature float32
}

func NewClient(cfg *config.Config, opts ...option.RequestOption) (*Client, error) {
	if strings.TrimSpace(cfg.OpenAI.APIKey) == "" {
		return nil, domain.NewConfigurationError(stage, ErrMissingAPIKey)
	}

	reqOpts := []option.RequestOption{
		option.WithAPIKey(cfg.OpenAI.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.OpenAI.BaseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(cfg.OpenAI.BaseURL))
	}
	reqOpts = append(reqOpts, opts...)

	return &Client{
		openai:      openai.NewClient(reqOpts...),
		model:       cfg.OpenAI.Model,
		temperature: cfg.LLM.Temperature,
	}, nil
}

func (c *Client) Complete(ctx context.Context, prompt string) (*domain.Completion, error) {
	resp, err := c.openai.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Temperature: openai.Float(float64(c.temperature)),
	})
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) && (apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden) {
			return nil, domain.NewConfigurationError(stage, pkgerrors.WithStack(err))
		}
		return nil, domain.NewGenerationError(stage, pkgerrors.WithStack(err))
	}

	if len(resp.Choices) == 0 {
		return nil, domain.NewGenerationError(stage, ErrNoChoices)
	}

	model := resp.Model
	if model == "" {
		model = c.model
	}

	return &domain.Completion{
		Text:         resp.Choices[0].Message.Content,
		Model:        model,
		FinishReason: resp.Choices[0].FinishReason,
	}, nil
}
