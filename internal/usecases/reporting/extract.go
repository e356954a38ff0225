package reporting

import "github.com/vfg2006/ai-report-generator/internal/domain"

// ExtractText devolve o texto da resposta exatamente como veio do modelo
func ExtractText(completion *domain.Completion) string {
	if completion == nil {
		return ""
	}
	return completion.Text
}
