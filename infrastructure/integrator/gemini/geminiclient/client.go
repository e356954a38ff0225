package geminiclient

import (
	"context"
	"errors"
	"net/http"
	"strings"

	pkgerrors "github.com/pkg/errors"
	"github.com/vfg2006/ai-report-generator/internal/config"
	"github.com/vfg2006/ai-report-generator/internal/domain"
	"google.golang.org/genai"
)

const stage = "gemini"

var ErrMissingAPIKey = errors.New("GOOGLE_API_KEY não configurada")

// Client gera texto com a API do Gemini. Construído uma vez por processo e
// só lido depois disso.
type Client struct {
	genai       *genai.Client
	model       string
	temperature float32
}

type Option func(*genai.ClientConfig)

// WithHTTPClient substitui o cliente HTTP usado pelo SDK
func WithHTTPClient(httpClient *http.Client) Option {
	return func(cc *genai.ClientConfig) {
		cc.HTTPClient = httpClient
	}
}

func NewClient(ctx context.Context, cfg *config.Config, opts ...Option) (*Client, error) {
	if strings.TrimSpace(cfg.Gemini.APIKey) == "" {
		return nil, domain.NewConfigurationError(stage, ErrMissingAPIKey)
	}

	clientConfig := &genai.ClientConfig{
		APIKey:  cfg.Gemini.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.Gemini.BaseURL != "" {
		clientConfig.HTTPOptions.BaseURL = cfg.Gemini.BaseURL
	}
	for _, opt := range opts {
		opt(clientConfig)
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, domain.NewConfigurationError(stage, pkgerrors.WithStack(err))
	}

	return &Client{
		genai:       client,
		model:       cfg.Gemini.Model,
		temperature: cfg.LLM.Temperature,
	}, nil
}

// Complete faz uma única chamada a generateContent, sem retry e sem timeout
// próprio além do contexto recebido.
func (c *Client) Complete(ctx context.Context, prompt string) (*domain.Completion, error) {
	resp, err := c.genai.Models.GenerateContent(ctx, c.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature: genai.Ptr(c.temperature),
	})
	if err != nil {
		return nil, classify(err)
	}

	if len(resp.Candidates) == 0 {
		reason := "nenhum candidato retornado"
		if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
			reason = "prompt bloqueado: " + string(resp.PromptFeedback.BlockReason)
		}
		return nil, domain.NewGenerationError(stage, errors.New(reason))
	}

	model := resp.ModelVersion
	if model == "" {
		model = c.model
	}

	return &domain.Completion{
		Text:         resp.Text(),
		Model:        model,
		FinishReason: string(resp.Candidates[0].FinishReason),
	}, nil
}

// classify separa credencial inválida (configuração) das demais falhas da API
func classify(err error) error {
	code, message := apiErrorDetails(err)
	if isCredentialFailure(code, message) {
		return domain.NewConfigurationError(stage, pkgerrors.WithStack(err))
	}
	return domain.NewGenerationError(stage, pkgerrors.WithStack(err))
}

func apiErrorDetails(err error) (int, string) {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code, apiErr.Message
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return apiErrPtr.Code, apiErrPtr.Message
	}
	return 0, ""
}

func isCredentialFailure(code int, message string) bool {
	switch code {
	case http.StatusUnauthorized, http.StatusForbidden:
		return true
	case http.StatusBadRequest:
		return strings.Contains(strings.ToLower(message), "api key")
	}
	return false
}
