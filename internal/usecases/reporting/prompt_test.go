package reporting

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ai-report-generator/internal/domain"
)

const lojaDoZePrompt = `Você é um Gerente de Contas Sênior em uma agência de marketing digital. Sua linguagem é
otimista, profissional e focada em resultados (mas sem ser robótica).

Sua tarefa é escrever um parágrafo curto (3-4 frases) para um e-mail de
atualização semanal para o cliente.

Use os dados fornecidos abaixo. Foque no que deu certo.

DADOS DA CAMPANHA:
- Nome do Cliente: Loja do Zé
- Total de Cliques: 120
- Custo Total (R$): 45.00
- Total de Conversões (Vendas/Leads): 8

Exemplo de Tom: "Olá [Cliente], tivemos uma ótima semana! Conseguimos aumentar
o engajamento e as conversões ficaram bem acima da meta..."

Escreva agora o parágrafo de resumo para o cliente:`

func TestPromptRenderer_Render(t *testing.T) {
	renderer, err := NewPromptRenderer()
	require.NoError(t, err)

	t.Run("Prompt completo para a Loja do Zé", func(t *testing.T) {
		prompt, err := renderer.Render(domain.MetricsInput{ClientName: "Loja do Zé", Clicks: 120, Cost: 45.00, Conversions: 8})
		require.NoError(t, err)

		if diff := cmp.Diff(lojaDoZePrompt, prompt); diff != "" {
			t.Errorf("prompt mismatch (-want +got):\n%s", diff)
		}
	})

	inputs := []domain.MetricsInput{
		{ClientName: "Ótica Central", Clicks: 1, Cost: 0, Conversions: 1},
		{ClientName: "Padaria & Cia", Clicks: 98765, Cost: 1234.5, Conversions: 321},
		{ClientName: "<b>Loja</b> {{ cliques }}", Clicks: 7, Cost: 10.129, Conversions: 2},
	}

	for _, input := range inputs {
		t.Run("Contém os quatro valores literais: "+input.ClientName, func(t *testing.T) {
			prompt, err := renderer.Render(input)
			require.NoError(t, err)

			assert.Contains(t, prompt, "Nome do Cliente: "+input.ClientName)
			assert.Contains(t, prompt, "Total de Cliques: "+itoa(input.Clicks))
			assert.Contains(t, prompt, "Custo Total (R$): "+FormatCost(input.Cost))
			assert.Contains(t, prompt, "Total de Conversões (Vendas/Leads): "+itoa(input.Conversions))
		})
	}
}

func TestPromptRenderer_WithInputSanitizer(t *testing.T) {
	renderer, err := NewPromptRenderer(WithInputSanitizer())
	require.NoError(t, err)

	prompt, err := renderer.Render(domain.MetricsInput{ClientName: "<script>x</script>Padaria & Cia", Clicks: 1, Conversions: 1})
	require.NoError(t, err)

	assert.Contains(t, prompt, "Nome do Cliente: Padaria & Cia")
	assert.NotContains(t, prompt, "<script>")
}

func TestFormatCost(t *testing.T) {
	assert.Equal(t, "45.00", FormatCost(45))
	assert.Equal(t, "0.00", FormatCost(0))
	assert.Equal(t, "10.13", FormatCost(10.129))

	huge := FormatCost(1e307)
	assert.NotContains(t, huge, "Inf")
	assert.True(t, strings.HasSuffix(huge, ".00"))
}

func TestPromptRenderer_LargeCostKeepsLiteralValue(t *testing.T) {
	renderer, err := NewPromptRenderer()
	require.NoError(t, err)

	prompt, err := renderer.Render(domain.MetricsInput{ClientName: "Loja do Zé", Clicks: 1, Cost: 1e307, Conversions: 1})
	require.NoError(t, err)

	assert.Contains(t, prompt, "Custo Total (R$): "+FormatCost(1e307))
	assert.NotContains(t, prompt, "Inf")
}
