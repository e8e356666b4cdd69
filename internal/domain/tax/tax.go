// Package tax implementa la calculadora de tributos en cascada de la importación brasileña:
// impuestos simples, impuestos cuya base incluye otros ya calculados y el ICMS "por dentro" (gross-up).
package tax

import (
	"fmt"
	"strings"

	"github.com/jhoicas/comex-api/internal/domain"
	"github.com/shopspring/decimal"
)

// ID identificador tipado de un tributo. Nunca se deriva de la etiqueta que muestra la interfaz.
type ID string

// Tributos soportados.
const (
	II     ID = "II"     // Imposto de Importação
	IPI    ID = "IPI"    // Imposto sobre Produtos Industrializados
	PIS    ID = "PIS"    // PIS-Importação
	COFINS ID = "COFINS" // COFINS-Importação
	ICMS   ID = "ICMS"   // ICMS (calculado por dentro)
	AFRMM  ID = "AFRMM"  // Adicional ao Frete para Renovação da Marinha Mercante
	IOF    ID = "IOF"    // IOF câmbio
)

var allIDs = []ID{II, IPI, PIS, COFINS, ICMS, AFRMM, IOF}

var hundred = decimal.NewFromInt(100)

// AllIDs devuelve los tributos conocidos en orden de cálculo.
func AllIDs() []ID {
	out := make([]ID, len(allIDs))
	copy(out, allIDs)
	return out
}

// Valid indica si el identificador pertenece a la enumeración.
func (id ID) Valid() bool {
	for _, known := range allIDs {
		if id == known {
			return true
		}
	}
	return false
}

// ParseID convierte un código externo (config, CLI) en ID.
func ParseID(s string) (ID, error) {
	id := ID(strings.ToUpper(strings.TrimSpace(s)))
	if !id.Valid() {
		return "", fmt.Errorf("%w: tributo desconocido %q", domain.ErrInvalidInput, s)
	}
	return id, nil
}

// Line es un tributo ya calculado. Inmutable una vez creado.
type Line struct {
	ID     ID              `json:"id"`
	Base   decimal.Decimal `json:"base"`
	Rate   decimal.Decimal `json:"rate"`
	Amount decimal.Decimal `json:"amount"`
}

// Amounts mapea cada tributo a su valor calculado.
type Amounts map[ID]decimal.Decimal

// Get devuelve el valor del tributo o cero si no fue calculado.
func (a Amounts) Get(id ID) decimal.Decimal {
	if v, ok := a[id]; ok {
		return v
	}
	return decimal.Zero
}

// RateFromPercent convierte un porcentaje 0–100 en fracción. Rechaza negativos.
func RateFromPercent(pct decimal.Decimal) (decimal.Decimal, error) {
	if pct.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: %s%% es negativa", domain.ErrInvalidRate, pct.String())
	}
	return pct.Div(hundred), nil
}

// ValidateRate exige rate >= 0 (impuestos multiplicativos).
func ValidateRate(rate decimal.Decimal) error {
	if rate.IsNegative() {
		return fmt.Errorf("%w: %s es negativa", domain.ErrInvalidRate, rate.String())
	}
	return nil
}

// ValidateGrossUpRate exige 0 <= rate < 1; con rate = 1 la base sería infinita.
func ValidateGrossUpRate(rate decimal.Decimal) error {
	if err := ValidateRate(rate); err != nil {
		return err
	}
	if rate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return fmt.Errorf("%w: %s no admite cálculo por dentro (debe ser < 1)", domain.ErrInvalidRate, rate.String())
	}
	return nil
}

// SimpleTax = base * rate. Se usa para II, PIS, COFINS, IOF.
func SimpleTax(base, rate decimal.Decimal) decimal.Decimal {
	if rate.IsZero() {
		return decimal.Zero
	}
	return base.Mul(rate)
}

// CompoundedTax = (base + precedingTax) * rate. La base del IPI incluye el II ya calculado.
func CompoundedTax(base, precedingTax, rate decimal.Decimal) decimal.Decimal {
	if rate.IsZero() {
		return decimal.Zero
	}
	return base.Add(precedingTax).Mul(rate)
}

// GrossUpTax calcula el tributo "por dentro": amount = (base / (1 - rate)) * rate,
// de modo que amount = (base + amount) * rate. Con rate = 0 devuelve 0.
func GrossUpTax(baseExcludingThisTax, rate decimal.Decimal) (decimal.Decimal, error) {
	if err := ValidateGrossUpRate(rate); err != nil {
		return decimal.Zero, err
	}
	if rate.IsZero() {
		return decimal.Zero, nil
	}
	grossBase := baseExcludingThisTax.Div(decimal.NewFromInt(1).Sub(rate))
	return grossBase.Mul(rate), nil
}

// Aggregate suma los valores de las líneas. El orden no afecta la suma.
func Aggregate(lines []Line) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Amount)
	}
	return total
}
