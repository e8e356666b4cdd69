// Package money formatea montos en la convención brasileña (R$ 1.234,56) usando golang.org/x/text.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.BrazilianPortuguese)

// Separadores de la locale, tomados una vez de x/text; los dígitos salen del decimal
// sin pasar por float64.
var groupSep, decimalSep = separators()

func separators() (group, dec string) {
	group, dec = ".", ","
	s := printer.Sprint(number.Decimal(1234.5, number.Scale(1)))
	i, j := strings.Index(s, "1"), strings.Index(s, "234")
	if i < 0 || j <= i {
		return
	}
	group = s[i+1 : j]
	rest := s[j+3:]
	if k := strings.LastIndex(rest, "5"); k > 0 {
		dec = rest[:k]
	}
	return
}

// BRL formatea el monto con símbolo y dos decimales.
func BRL(v decimal.Decimal) string {
	return "R$ " + Number(v, 2)
}

// USD formatea un monto en dólares con separadores brasileños.
func USD(v decimal.Decimal) string {
	return "US$ " + Number(v, 2)
}

// Percent formatea un porcentaje ya expresado en 0–100 (dos decimales: 9,65 %).
func Percent(v decimal.Decimal) string {
	return Number(v, 2) + " %"
}

// Number formatea con separador de miles y places decimales (redondeo half-up).
func Number(v decimal.Decimal, places int) string {
	s := v.StringFixed(int32(places))
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")
	out := sign + groupThousands(intPart)
	if frac != "" {
		out += decimalSep + frac
	}
	return out
}

// groupThousands inserta el separador de miles en un string de dígitos.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	var b strings.Builder
	b.Grow(n + n/3*len(groupSep))
	for i := 0; i < n; i++ {
		if i > 0 && (n-i)%3 == 0 {
			b.WriteString(groupSep)
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
