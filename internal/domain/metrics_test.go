package domain

import (
	"math"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsInput_Validate(t *testing.T) {
	tests := []struct {
		name    string
		input   MetricsInput
		wantErr error
	}{
		{
			name:  "Todos os campos preenchidos",
			input: MetricsInput{ClientName: "Loja do Zé", Clicks: 120, Cost: 45.00, Conversions: 8},
		},
		{
			name:  "Custo zero passa na validação",
			input: MetricsInput{ClientName: "Loja do Zé", Clicks: 120, Cost: 0, Conversions: 8},
		},
		{
			name:    "Nome do cliente vazio",
			input:   MetricsInput{ClientName: "", Clicks: 120, Cost: 45, Conversions: 8},
			wantErr: ErrMissingFields,
		},
		{
			name:    "Cliques zerados",
			input:   MetricsInput{ClientName: "Loja do Zé", Clicks: 0, Cost: 45, Conversions: 8},
			wantErr: ErrMissingFields,
		},
		{
			name:    "Conversões zeradas",
			input:   MetricsInput{ClientName: "Loja do Zé", Clicks: 120, Cost: 45, Conversions: 0},
			wantErr: ErrMissingFields,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.input.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParseMetricsForm(t *testing.T) {
	t.Run("Converte todos os campos", func(t *testing.T) {
		values := url.Values{
			FieldClientName:  {"Loja do Zé"},
			FieldClicks:      {"120"},
			FieldCost:        {"45,50"},
			FieldConversions: {" 8 "},
		}

		input, err := ParseMetricsForm(values)
		require.NoError(t, err)
		assert.Equal(t, MetricsInput{ClientName: "Loja do Zé", Clicks: 120, Cost: 45.50, Conversions: 8}, input)
	})

	t.Run("Campos numéricos vazios valem zero", func(t *testing.T) {
		input, err := ParseMetricsForm(url.Values{FieldClientName: {"Loja"}})
		require.NoError(t, err)
		assert.Zero(t, input.Clicks)
		assert.Zero(t, input.Cost)
		assert.Zero(t, input.Conversions)
		assert.ErrorIs(t, input.Validate(), ErrMissingFields)
	})

	t.Run("Número negativo é rejeitado", func(t *testing.T) {
		_, err := ParseMetricsForm(url.Values{FieldClientName: {"Loja"}, FieldClicks: {"-3"}})
		assert.ErrorIs(t, err, ErrInvalidNumber)
		assert.Contains(t, err.Error(), FieldClicks)
	})

	t.Run("Texto em campo numérico é rejeitado", func(t *testing.T) {
		_, err := ParseMetricsForm(url.Values{FieldClientName: {"Loja"}, FieldCost: {"muito"}})
		assert.ErrorIs(t, err, ErrInvalidNumber)
	})

	t.Run("Custo que não é número finito é rejeitado", func(t *testing.T) {
		for _, raw := range []string{"NaN", "nan", "Inf", "+Inf", "-Inf", "infinity"} {
			_, err := ParseMetricsForm(url.Values{
				FieldClientName:  {"Loja"},
				FieldClicks:      {"10"},
				FieldCost:        {raw},
				FieldConversions: {"2"},
			})
			assert.ErrorIs(t, err, ErrInvalidNumber, raw)
			assert.ErrorContains(t, err, FieldCost, raw)
		}
	})
}

func TestMetricsInput_CheckRanges(t *testing.T) {
	tests := []struct {
		name    string
		input   MetricsInput
		wantErr bool
	}{
		{"Custo zero", MetricsInput{Clicks: 1, Cost: 0, Conversions: 1}, false},
		{"Custo muito alto mas finito", MetricsInput{Clicks: 1, Cost: 1e307, Conversions: 1}, false},
		{"Custo negativo", MetricsInput{Cost: -1}, true},
		{"Conversões negativas", MetricsInput{Conversions: -1}, true},
		{"Custo NaN", MetricsInput{Clicks: 1, Cost: math.NaN(), Conversions: 1}, true},
		{"Custo infinito", MetricsInput{Clicks: 1, Cost: math.Inf(1), Conversions: 1}, true},
		{"Custo infinito negativo", MetricsInput{Clicks: 1, Cost: math.Inf(-1), Conversions: 1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.input.CheckRanges()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidNumber)
		})
	}
}
