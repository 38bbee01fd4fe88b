package currency

import (
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Codes that x/text renders with a region prefix or a fullwidth glyph.
var symbolOverrides = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"CNY": "¥",
	"AUD": "A$",
	"CAD": "C$",
	"INR": "₹",
	"SEK": "kr",
	"NOK": "kr",
	"DKK": "kr",
}

var printer = message.NewPrinter(language.English)

// Normalize upper-cases and trims a currency code.
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Valid reports whether code is a known ISO 4217 currency.
func Valid(code string) bool {
	code = Normalize(code)
	if len(code) != 3 {
		return false
	}
	_, err := currency.ParseISO(code)
	return err == nil
}

// Symbol returns the display symbol for code. Unknown codes are returned as-is.
func Symbol(code string) string {
	code = Normalize(code)
	if sym, ok := symbolOverrides[code]; ok {
		return sym
	}
	unit, err := currency.ParseISO(code)
	if err != nil {
		return code
	}
	return printer.Sprint(currency.NarrowSymbol(unit))
}
