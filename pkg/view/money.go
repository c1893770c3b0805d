package view

import (
	"fmt"
	"math"
)

// Round2 rounds for display only; stored amounts stay unrounded.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Money formats an amount with a currency symbol, two decimals.
func Money(v float64, currency string) string {
	return fmt.Sprintf("%s%.2f", currencySymbol(currency), Round2(v))
}

func currencySymbol(code string) string {
	switch code {
	case "EUR":
		return "€"
	case "USD":
		return "$"
	case "GBP":
		return "£"
	case "DKK":
		return "kr "
	default:
		return code + " "
	}
}
