package reporting

import (
	"context"
	"errors"
	"time"

	"github.com/vfg2006/ai-report-generator/internal/domain"
	"github.com/vfg2006/ai-report-generator/pkg/log"
	"github.com/vfg2006/ai-report-generator/pkg/utils"
)

type Service struct {
	completer Completer
	renderer  *PromptRenderer
	now       func() time.Time
	newID     func() (string, error)
}

func NewService(completer Completer, renderer *PromptRenderer) *Service {
	return &Service{
		completer: completer,
		renderer:  renderer,
		now:       time.Now,
		newID:     utils.GenerateID,
	}
}

// Generate monta o prompt, chama o modelo e extrai o texto.
// Não há retry: a primeira falha é devolvida ao chamador.
func (s *Service) Generate(ctx context.Context, input domain.MetricsInput) (*domain.Report, error) {
	logger := log.ForContext(ctx).WithField("client_name", input.ClientName)

	prompt, err := s.renderer.Render(input)
	if err != nil {
		return nil, domain.NewGenerationError("template", err)
	}

	id, err := s.newID()
	if err != nil {
		return nil, domain.NewGenerationError("report_id", err)
	}

	logger.WithField("report_id", id).Debug("reporting: invoking completion")

	start := s.now()
	completion, err := s.completer.Complete(ctx, prompt)
	if err != nil {
		var stageErr *domain.StageError
		if !errors.As(err, &stageErr) {
			err = domain.NewGenerationError("completion", err)
		}

		logger.WithFields(log.Fields{
			"report_id": id,
			"error":     err.Error(),
		}).Warn("reporting: completion failed")
		return nil, err
	}

	report := &domain.Report{
		ID:          id,
		ClientName:  input.ClientName,
		Text:        ExtractText(completion),
		Model:       completion.Model,
		GeneratedAt: s.now(),
	}

	logger.WithFields(log.Fields{
		"report_id":     id,
		"model":         report.Model,
		"finish_reason": completion.FinishReason,
		"duration_ms":   report.GeneratedAt.Sub(start).Milliseconds(),
	}).Info("reporting: summary generated")

	return report, nil
}
