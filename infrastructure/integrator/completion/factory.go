// Package completion escolhe e constrói o provedor de geração de texto configurado
package completion

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ai-report-generator/infrastructure/integrator/gemini/geminiclient"
	"github.com/vfg2006/ai-report-generator/infrastructure/integrator/openai/openaiclient"
	"github.com/vfg2006/ai-report-generator/internal/config"
	"github.com/vfg2006/ai-report-generator/internal/domain"
)

// Client é implementado por todos os provedores
type Client interface {
	Complete(ctx context.Context, prompt string) (*domain.Completion, error)
}

// New constrói o cliente do provedor indicado em LLM_PROVIDER.
// Deve ser chamado uma única vez na inicialização do processo.
func New(ctx context.Context, cfg *config.Config) (Client, error) {
	logger := logrus.WithFields(logrus.Fields{
		"provider":    cfg.LLM.Provider,
		"temperature": cfg.LLM.Temperature,
	})

	switch cfg.LLM.Provider {
	case config.ProviderGemini, "":
		client, err := geminiclient.NewClient(ctx, cfg)
		if err != nil {
			return nil, err
		}
		logger.WithField("model", cfg.Gemini.Model).Info("Cliente do Gemini configurado")
		return client, nil
	case config.ProviderOpenAI:
		client, err := openaiclient.NewClient(cfg)
		if err != nil {
			return nil, err
		}
		logger.WithField("model", cfg.OpenAI.Model).Info("Cliente compatível com OpenAI configurado")
		return client, nil
	default:
		return nil, domain.NewConfigurationError("completion", fmt.Errorf("provedor desconhecido: %q", cfg.LLM.Provider))
	}
}

// DisplayName é o nome do provedor mostrado no indicador de carregamento
func DisplayName(cfg *config.Config) string {
	if cfg.LLM.Provider == config.ProviderOpenAI {
		return "OpenAI"
	}
	return "Gemini"
}
