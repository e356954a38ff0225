package completion

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ai-report-generator/infrastructure/integrator/gemini/geminiclient"
	"github.com/vfg2006/ai-report-generator/infrastructure/integrator/openai/openaiclient"
	"github.com/vfg2006/ai-report-generator/internal/config"
	"github.com/vfg2006/ai-report-generator/internal/domain"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		cfg      *config.Config
		validate func(t *testing.T, client Client, err error)
	}{
		{
			name: "Gemini é o provedor padrão",
			cfg: &config.Config{
				LLM:    config.LLM{Temperature: 0.7},
				Gemini: config.Gemini{APIKey: "test-key", Model: "gemini-2.5-flash"},
			},
			validate: func(t *testing.T, client Client, err error) {
				require.NoError(t, err)
				assert.IsType(t, &geminiclient.Client{}, client)
			},
		},
		{
			name: "OpenAI quando configurado",
			cfg: &config.Config{
				LLM:    config.LLM{Provider: config.ProviderOpenAI, Temperature: 0.7},
				OpenAI: config.OpenAI{APIKey: "sk-test", Model: "gpt-4o-mini"},
			},
			validate: func(t *testing.T, client Client, err error) {
				require.NoError(t, err)
				assert.IsType(t, &openaiclient.Client{}, client)
			},
		},
		{
			name: "Sem credencial é erro de configuração",
			cfg: &config.Config{
				LLM: config.LLM{Provider: config.ProviderGemini},
			},
			validate: func(t *testing.T, client Client, err error) {
				assert.Nil(t, client)
				assert.ErrorIs(t, err, domain.ErrConfiguration)
			},
		},
		{
			name: "Provedor desconhecido é erro de configuração",
			cfg: &config.Config{
				LLM: config.LLM{Provider: "anthropic"},
			},
			validate: func(t *testing.T, client Client, err error) {
				assert.Nil(t, client)
				assert.ErrorIs(t, err, domain.ErrConfiguration)
				assert.Contains(t, err.Error(), "anthropic")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := New(context.Background(), tt.cfg)
			tt.validate(t, client, err)
		})
	}
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Gemini", DisplayName(&config.Config{}))
	assert.Equal(t, "OpenAI", DisplayName(&config.Config{LLM: config.LLM{Provider: config.ProviderOpenAI}}))
}
