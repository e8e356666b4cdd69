package money

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestBRL(t *testing.T) {
	s := BRL(decimal.RequireFromString("10357.15"))
	assert.True(t, strings.HasPrefix(s, "R$ "), s)
	assert.Contains(t, s, "15")
	assert.NotContains(t, s, "10357.15", "separadores brasileños, no el formato Go")
}

func TestPercent(t *testing.T) {
	s := Percent(decimal.RequireFromString("9.65"))
	assert.True(t, strings.HasSuffix(s, " %"), s)
	assert.Contains(t, s, "65")
}

func TestNumber_PrecisionDecimal(t *testing.T) {
	v := decimal.RequireFromString("123456789012345678.91")
	assert.Equal(t, "123.456.789.012.345.678,91", Number(v, 2), "sin pérdida por float64")
	assert.Equal(t, "R$ 10.357,15", BRL(decimal.RequireFromString("10357.15")))
	assert.Equal(t, "-1.234,50", Number(decimal.RequireFromString("-1234.5"), 2))
	assert.Equal(t, "5,2983", Number(decimal.RequireFromString("5.29825"), 4))
	assert.Equal(t, "999", Number(decimal.RequireFromString("999.4"), 0))
	assert.Equal(t, "0,00", Number(decimal.Zero, 2))
}

func TestSeparadoresPtBR(t *testing.T) {
	assert.Equal(t, ".", groupSep)
	assert.Equal(t, ",", decimalSep)
}
