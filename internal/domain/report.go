package domain

import "time"

// Completion é a resposta bruta de um provedor de geração de texto
type Completion struct {
	Text         string
	Model        string
	FinishReason string
}

// Report é o resumo gerado para o cliente, devolvido para cópia
type Report struct {
	ID          string    `json:"id"`
	ClientName  string    `json:"client_name"`
	Text        string    `json:"text"`
	Model       string    `json:"model"`
	GeneratedAt time.Time `json:"generated_at"`
}
