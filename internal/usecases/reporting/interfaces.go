package reporting

import (
	"context"

	"github.com/vfg2006/ai-report-generator/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

// Completer envia um prompt para o provedor de geração de texto
type Completer interface {
	// Complete faz uma única chamada síncrona, sem retry
	Complete(ctx context.Context, prompt string) (*domain.Completion, error)
}

// Generator executa a chain completa: template -> modelo -> texto
type Generator interface {
	Generate(ctx context.Context, input domain.MetricsInput) (*domain.Report, error)
}
