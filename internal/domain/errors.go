package domain

import (
	"errors"
	"fmt"
)

// Tipos de falha do pipeline de geração
var (
	// ErrConfiguration indica que o cliente do modelo não pode ser construído
	// ou que a credencial foi recusada. Bloqueia a interação.
	ErrConfiguration = errors.New("erro ao inicializar o modelo de IA")

	// ErrGeneration cobre qualquer falha durante a chamada ao modelo
	// (rede, cota, resposta malformada). O formulário continua utilizável.
	ErrGeneration = errors.New("erro ao gerar o texto")
)

// StageError associa uma falha de uma etapa do pipeline ao seu tipo
type StageError struct {
	Kind  error  // ErrConfiguration ou ErrGeneration
	Stage string // Etapa ou provedor que falhou
	Err   error  // Erro original, exibido sem tratamento
}

// Error implementa a interface error
func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind.Error(), e.Err.Error())
}

// Unwrap permite errors.Is tanto no tipo quanto no erro original
func (e *StageError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// NewConfigurationError cria um StageError do tipo ErrConfiguration
func NewConfigurationError(stage string, err error) *StageError {
	return &StageError{Kind: ErrConfiguration, Stage: stage, Err: err}
}

// NewGenerationError cria um StageError do tipo ErrGeneration
func NewGenerationError(stage string, err error) *StageError {
	return &StageError{Kind: ErrGeneration, Stage: stage, Err: err}
}
