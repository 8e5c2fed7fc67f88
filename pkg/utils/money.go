package utils

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Peruvian procurement documents write amounts with comma as thousands
// separator and dot for decimals ("S/ 1,234.56"), which matches the
// en-US number shape rather than es-ES.
var moneyPrinter = message.NewPrinter(language.AmericanEnglish)

// FormatSoles renders a monetary amount as "S/ 1,234.56".
func FormatSoles(v decimal.Decimal) string {
	f, _ := v.Round(2).Float64()
	return "S/ " + FormatAmount(f)
}

// FormatAmount renders a plain number with thousands separator and two decimals.
func FormatAmount(f float64) string {
	return moneyPrinter.Sprintf("%.2f", f)
}
