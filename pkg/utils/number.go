package utils

import "math"

func RoundWithOneDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*10) / 10
}

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// SafeRatio retorna num/den, ou 0 quando o denominador é zero. Toda razão
// de atingimento/ritmo do sistema passa por aqui para não dividir por zero.
func SafeRatio(num, den float64) float64 {
	if den == 0 {
		return 0
	}

	return num / den
}
