package reporting

import (
	"context"

	"github.com/vfg2006/ai-report-generator/infrastructure/integrator/completion"
	"github.com/vfg2006/ai-report-generator/internal/config"
	"github.com/vfg2006/ai-report-generator/internal/domain"
)

// Build monta a chain (template -> provedor -> extração de texto) a partir da
// configuração. Chamado uma vez por processo; qualquer falha aqui é de configuração.
func Build(ctx context.Context, cfg *config.Config) (Generator, error) {
	client, err := completion.New(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var opts []PromptOption
	if cfg.Prompt.SanitizeInput {
		opts = append(opts, WithInputSanitizer())
	}
	renderer, err := NewPromptRenderer(opts...)
	if err != nil {
		return nil, domain.NewConfigurationError("template", err)
	}

	return NewService(client, renderer), nil
}
