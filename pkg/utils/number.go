package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	// Valores muito grandes estouram em f*100 e já não têm casas decimais
	if math.IsInf(f*100, 0) {
		return f
	}

	return math.Round(f*100) / 100
}
