package geminiclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ai-report-generator/internal/config"
	"github.com/vfg2006/ai-report-generator/internal/domain"
)

func testConfig(baseURL string) *config.Config {
	return &config.Config{
		LLM: config.LLM{Provider: config.ProviderGemini, Temperature: 0.7},
		Gemini: config.Gemini{
			APIKey:  "test-key",
			Model:   "gemini-2.5-flash",
			BaseURL: baseURL,
		},
	}
}

func TestNewClient_MissingAPIKey(t *testing.T) {
	cfg := testConfig("")
	cfg.Gemini.APIKey = "  "

	client, err := NewClient(context.Background(), cfg)

	assert.Nil(t, client)
	assert.ErrorIs(t, err, domain.ErrConfiguration)
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestClient_Complete(t *testing.T) {
	var (
		mu       sync.Mutex
		lastPath string
		lastBody string
	)

	tests := []struct {
		name     string
		status   int
		body     string
		validate func(t *testing.T, completion *domain.Completion, err error)
	}{
		{
			name:   "Resposta com texto",
			status: http.StatusOK,
			body: `{
				"candidates": [{
					"content": {"role": "model", "parts": [{"text": "Olá Loja do Zé, tivemos uma ótima semana!"}]},
					"finishReason": "STOP"
				}],
				"modelVersion": "gemini-2.5-flash-001"
			}`,
			validate: func(t *testing.T, completion *domain.Completion, err error) {
				require.NoError(t, err)
				assert.Equal(t, "Olá Loja do Zé, tivemos uma ótima semana!", completion.Text)
				assert.Equal(t, "gemini-2.5-flash-001", completion.Model)
				assert.Equal(t, "STOP", completion.FinishReason)

				mu.Lock()
				defer mu.Unlock()
				assert.Contains(t, lastPath, "gemini-2.5-flash:generateContent")
				assert.Contains(t, lastBody, "resumo semanal")
				assert.Contains(t, lastBody, `"temperature":0.7`)
			},
		},
		{
			name:   "Resposta sem candidatos é erro de geração",
			status: http.StatusOK,
			body:   `{"promptFeedback": {"blockReason": "SAFETY"}}`,
			validate: func(t *testing.T, completion *domain.Completion, err error) {
				assert.Nil(t, completion)
				assert.ErrorIs(t, err, domain.ErrGeneration)
				assert.Contains(t, err.Error(), "SAFETY")
			},
		},
		{
			name:   "Chave inválida é erro de configuração",
			status: http.StatusBadRequest,
			body:   `{"error": {"code": 400, "message": "API key not valid. Please pass a valid API key.", "status": "INVALID_ARGUMENT"}}`,
			validate: func(t *testing.T, completion *domain.Completion, err error) {
				assert.Nil(t, completion)
				assert.ErrorIs(t, err, domain.ErrConfiguration)
				assert.Contains(t, err.Error(), "API key not valid")
			},
		},
		{
			name:   "Permissão negada é erro de configuração",
			status: http.StatusForbidden,
			body:   `{"error": {"code": 403, "message": "Method doesn't allow unregistered callers.", "status": "PERMISSION_DENIED"}}`,
			validate: func(t *testing.T, completion *domain.Completion, err error) {
				assert.ErrorIs(t, err, domain.ErrConfiguration)
			},
		},
		{
			name:   "Falha interna do provedor é erro de geração",
			status: http.StatusInternalServerError,
			body:   `{"error": {"code": 500, "message": "An internal error has occurred.", "status": "INTERNAL"}}`,
			validate: func(t *testing.T, completion *domain.Completion, err error) {
				assert.Nil(t, completion)
				assert.ErrorIs(t, err, domain.ErrGeneration)
				assert.NotErrorIs(t, err, domain.ErrConfiguration)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				body, _ := io.ReadAll(r.Body)
				mu.Lock()
				lastPath = r.URL.Path
				lastBody = string(body)
				mu.Unlock()

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client, err := NewClient(context.Background(), testConfig(server.URL), WithHTTPClient(server.Client()))
			require.NoError(t, err)

			completion, err := client.Complete(context.Background(), "Escreva o resumo semanal")
			tt.validate(t, completion, err)
		})
	}
}

func TestIsCredentialFailure(t *testing.T) {
	assert.True(t, isCredentialFailure(http.StatusUnauthorized, ""))
	assert.True(t, isCredentialFailure(http.StatusBadRequest, strings.ToUpper("api key expired")))
	assert.False(t, isCredentialFailure(http.StatusBadRequest, "Invalid JSON payload"))
	assert.False(t, isCredentialFailure(http.StatusTooManyRequests, "Resource has been exhausted"))
	assert.False(t, isCredentialFailure(0, ""))
}
