// Package cli oferece o mesmo formulário de métricas no terminal
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/AlecAivazis/survey/v2"
	"github.com/vfg2006/ai-report-generator/internal/domain"
	"github.com/vfg2006/ai-report-generator/internal/usecases/reporting"
)

// Prompter coleta os quatro campos do formulário
type Prompter interface {
	Ask(ctx context.Context) (domain.MetricsInput, error)
}

type answers struct {
	ClientName  string `survey:"client_name"`
	Clicks      string `survey:"clicks"`
	Cost        string `survey:"cost"`
	Conversions string `survey:"conversions"`
}

// SurveyPrompter pergunta os campos de forma interativa
type SurveyPrompter struct {
	Options []survey.AskOpt
}

func (p SurveyPrompter) Ask(ctx context.Context) (domain.MetricsInput, error) {
	if err := ctx.Err(); err != nil {
		return domain.MetricsInput{}, err
	}

	questions := []*survey.Question{
		{
			Name:   domain.FieldClientName,
			Prompt: &survey.Input{Message: "Nome do Cliente", Help: "Ex: Loja do Zé"},
		},
		{
			Name:     domain.FieldClicks,
			Prompt:   &survey.Input{Message: "Cliques (Google Ads)", Default: "0"},
			Validate: countValidator(domain.FieldClicks),
		},
		{
			Name:     domain.FieldCost,
			Prompt:   &survey.Input{Message: "Custo (R$)", Default: "0.00"},
			Validate: amountValidator(domain.FieldCost),
		},
		{
			Name:     domain.FieldConversions,
			Prompt:   &survey.Input{Message: "Conversões (Leads/Vendas)", Default: "0"},
			Validate: countValidator(domain.FieldConversions),
		},
	}

	var a answers
	if err := survey.Ask(questions, &a, p.Options...); err != nil {
		return domain.MetricsInput{}, err
	}

	return a.toInput()
}

func (a answers) toInput() (domain.MetricsInput, error) {
	input := domain.MetricsInput{ClientName: a.ClientName}

	var err error
	if input.Clicks, err = domain.ParseCount(domain.FieldClicks, a.Clicks); err != nil {
		return input, err
	}
	if input.Cost, err = domain.ParseAmount(domain.FieldCost, a.Cost); err != nil {
		return input, err
	}
	if input.Conversions, err = domain.ParseCount(domain.FieldConversions, a.Conversions); err != nil {
		return input, err
	}
	return input, nil
}

func countValidator(field string) survey.Validator {
	return func(ans interface{}) error {
		s, _ := ans.(string)
		_, err := domain.ParseCount(field, s)
		return err
	}
}

func amountValidator(field string) survey.Validator {
	return func(ans interface{}) error {
		s, _ := ans.(string)
		_, err := domain.ParseAmount(field, s)
		return err
	}
}

// Run coleta as métricas, gera o resumo e escreve o resultado em out.
// Erro de configuração é devolvido; os demais estados só são exibidos.
func Run(ctx context.Context, prompter Prompter, controller *reporting.FormController, provider string, out io.Writer) error {
	if idle := controller.Idle(); idle.Blocking {
		fmt.Fprintf(out, "❌ %s\n", idle.Message)
		return idle.Err
	}

	input, err := prompter.Ask(ctx)
	var view reporting.FormView
	if err != nil {
		if !errors.Is(err, domain.ErrInvalidNumber) {
			return err
		}
		view = controller.Reject(input, err)
	} else {
		fmt.Fprintf(out, "⏳ Gerando texto com o %s...\n", provider)
		view = controller.Submit(ctx, input)
	}

	switch view.State {
	case reporting.StateInvalid:
		fmt.Fprintf(out, "⚠️  %s\n", view.Message)
	case reporting.StateFailed:
		fmt.Fprintf(out, "❌ %s\n", view.Message)
		if view.Blocking {
			return view.Err
		}
	case reporting.StateDisplayed:
		fmt.Fprintln(out, "✅ Resumo Gerado para Copiar")
		fmt.Fprintln(out)
		fmt.Fprintln(out, view.Report.Text)
	}
	return nil
}
