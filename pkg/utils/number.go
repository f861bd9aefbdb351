package utils

import "math"

// RoundWithTwoDecimalPlace arredonda para duas casas decimais usando a
// regra half-to-even, a mesma aplicada pelas médias exibidas no dashboard.
func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.RoundToEven(f*100) / 100
}
