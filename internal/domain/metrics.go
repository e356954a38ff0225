package domain

import (
	"errors"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
)

var (
	// ErrMissingFields indica que nome do cliente, cliques ou conversões estão vazios
	ErrMissingFields = errors.New("por favor, preencha todos os campos para gerar o resumo")
	ErrInvalidNumber = errors.New("valor numérico inválido")
)

// Nomes dos campos do formulário de métricas
const (
	FieldClientName  = "client_name"
	FieldClicks      = "clicks"
	FieldCost        = "cost"
	FieldConversions = "conversions"
)

// MetricsInput representa as métricas semanais de campanha informadas no formulário.
// Existe apenas durante uma submissão e nunca é persistido.
type MetricsInput struct {
	ClientName  string  `json:"client_name"`
	Clicks      int64   `json:"clicks"`
	Cost        float64 `json:"cost"`
	Conversions int64   `json:"conversions"`
}

// Validate aplica a mesma regra do formulário original: nome, cliques e
// conversões precisam ser não vazios/não zero. O custo não é verificado,
// então custo zero passa.
func (m MetricsInput) Validate() error {
	if m.ClientName == "" || m.Clicks == 0 || m.Conversions == 0 {
		return ErrMissingFields
	}
	return nil
}

// CheckRanges rejeita valores negativos, que o formulário não permite digitar,
// e custos que não são números finitos
func (m MetricsInput) CheckRanges() error {
	switch {
	case m.Clicks < 0:
		return numberError(FieldClicks, strconv.FormatInt(m.Clicks, 10))
	case !isAmount(m.Cost):
		return numberError(FieldCost, strconv.FormatFloat(m.Cost, 'f', -1, 64))
	case m.Cost < 0:
		return numberError(FieldCost, strconv.FormatFloat(m.Cost, 'f', 2, 64))
	case m.Conversions < 0:
		return numberError(FieldConversions, strconv.FormatInt(m.Conversions, 10))
	}
	return nil
}

// ParseMetricsForm lê os quatro campos de um formulário url-encoded.
// Campos numéricos vazios valem zero, como um number input não preenchido.
func ParseMetricsForm(values url.Values) (MetricsInput, error) {
	input := MetricsInput{
		ClientName: values.Get(FieldClientName),
	}

	var err error
	if input.Clicks, err = ParseCount(FieldClicks, values.Get(FieldClicks)); err != nil {
		return input, err
	}
	if input.Cost, err = ParseAmount(FieldCost, values.Get(FieldCost)); err != nil {
		return input, err
	}
	if input.Conversions, err = ParseCount(FieldConversions, values.Get(FieldConversions)); err != nil {
		return input, err
	}

	return input, nil
}

// ParseCount converte um inteiro não negativo
func ParseCount(field, raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}

	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n < 0 {
		return 0, numberError(field, raw)
	}
	return n, nil
}

// ParseAmount converte um decimal não negativo, aceitando vírgula como separador
func ParseAmount(field, raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}

	f, err := strconv.ParseFloat(strings.Replace(raw, ",", ".", 1), 64)
	if err != nil || f < 0 || !isAmount(f) {
		return 0, numberError(field, raw)
	}
	return f, nil
}

// ParseFloat aceita "NaN" e "Inf"
func isAmount(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func numberError(field, raw string) error {
	return fmt.Errorf("%w: %s=%q (use um número maior ou igual a zero)", ErrInvalidNumber, field, raw)
}
