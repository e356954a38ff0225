package reporting

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/flosch/pongo2/v6"
	"github.com/microcosm-cc/bluemonday"
	"github.com/pkg/errors"
	"github.com/vfg2006/ai-report-generator/internal/domain"
	"github.com/vfg2006/ai-report-generator/pkg/utils"
)

// Prompt Mestre: o roteiro que o modelo deve seguir.
// Os valores do formulário são interpolados sem escape.
const promptTemplate = `{% autoescape off %}
Você é um Gerente de Contas Sênior em uma agência de marketing digital. Sua linguagem é
otimista, profissional e focada em resultados (mas sem ser robótica).

Sua tarefa é escrever um parágrafo curto (3-4 frases) para um e-mail de
atualização semanal para o cliente.

Use os dados fornecidos abaixo. Foque no que deu certo.

DADOS DA CAMPANHA:
- Nome do Cliente: {{ nome_cliente }}
- Total de Cliques: {{ cliques }}
- Custo Total (R$): {{ custo }}
- Total de Conversões (Vendas/Leads): {{ conversoes }}

Exemplo de Tom: "Olá [Cliente], tivemos uma ótima semana! Conseguimos aumentar
o engajamento e as conversões ficaram bem acima da meta..."

Escreva agora o parágrafo de resumo para o cliente:
{% endautoescape %}`

// PromptRenderer preenche o template fixo com as métricas da semana
type PromptRenderer struct {
	tpl      *pongo2.Template
	sanitize *bluemonday.Policy
}

type PromptOption func(*PromptRenderer)

// WithInputSanitizer remove marcação HTML do nome do cliente antes da
// interpolação. Desligado por padrão.
func WithInputSanitizer() PromptOption {
	return func(r *PromptRenderer) {
		r.sanitize = bluemonday.StrictPolicy()
	}
}

func NewPromptRenderer(opts ...PromptOption) (*PromptRenderer, error) {
	tpl, err := pongo2.FromString(promptTemplate)
	if err != nil {
		return nil, errors.Wrap(err, "reporting: parse prompt template")
	}

	r := &PromptRenderer{tpl: tpl}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

func (r *PromptRenderer) Render(input domain.MetricsInput) (string, error) {
	clientName := input.ClientName
	if r.sanitize != nil {
		clientName = html.UnescapeString(r.sanitize.Sanitize(clientName))
	}

	out, err := r.tpl.Execute(pongo2.Context{
		"nome_cliente": clientName,
		"cliques":      strconv.FormatInt(input.Clicks, 10),
		"custo":        FormatCost(input.Cost),
		"conversoes":   strconv.FormatInt(input.Conversions, 10),
	})
	if err != nil {
		return "", errors.Wrap(err, "reporting: execute prompt template")
	}

	return strings.TrimSpace(out), nil
}

// FormatCost formata o custo com duas casas decimais
func FormatCost(cost float64) string {
	return fmt.Sprintf("%.2f", utils.RoundWithTwoDecimalPlace(cost))
}
