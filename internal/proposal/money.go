package proposal

import (
	"regexp"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// brl renders integer amounts with Brazilian digit grouping ("3.500").
var brl = message.NewPrinter(language.BrazilianPortuguese)

// currencyLabelRegex is the single accepted display format for prices:
// "R$" followed by a dot-grouped integer, no whitespace, no cents.
var currencyLabelRegex = regexp.MustCompile(`^R\$\d{1,3}(\.\d{3})*$`)

// FormatPrice renders an integer BRL amount as a display label ("R$3.500").
func FormatPrice(amount int) string {
	return "R$" + brl.Sprintf("%d", amount)
}

// ValidPriceLabel reports whether a label follows the accepted format.
func ValidPriceLabel(label string) bool {
	return currencyLabelRegex.MatchString(label)
}

// phoneRegex accepts Brazilian phone shapes with optional country code,
// e.g. "+55 11 91234-5678" or "(11) 1234-5678".
var phoneRegex = regexp.MustCompile(`^\+?[\d() -]{8,20}$`)

// ValidPhone reports whether a phone string is structurally plausible.
func ValidPhone(phone string) bool {
	return phoneRegex.MatchString(phone)
}
