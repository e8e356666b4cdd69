package tax

import (
	"fmt"

	"github.com/jhoicas/comex-api/internal/domain"
	"github.com/shopspring/decimal"
)

// Chain calcula tributos en un orden fijo y registra cada valor en un mapa tipado
// en el momento en que se calcula. El primer error detiene la cadena.
type Chain struct {
	lines   []Line
	amounts Amounts
	places  int32
	round   bool
	err     error
}

// NewChain crea una cadena vacía con precisión completa.
func NewChain() *Chain {
	return &Chain{amounts: make(Amounts)}
}

// NewRoundedChain redondea (half-up) cada base y valor a places decimales al registrarlo,
// de modo que los tributos siguientes usan el valor ya liquidado.
func NewRoundedChain(places int32) *Chain {
	return &Chain{amounts: make(Amounts), places: places, round: true}
}

// Simple agrega base * rate.
func (c *Chain) Simple(id ID, base, rate decimal.Decimal) decimal.Decimal {
	if !c.ok(id) {
		return decimal.Zero
	}
	if err := ValidateRate(rate); err != nil {
		c.err = fmt.Errorf("tax: %s: %w", id, err)
		return decimal.Zero
	}
	return c.record(id, base, rate, SimpleTax(base, rate))
}

// Compounded agrega (base + suma de preceding) * rate. Los tributos de preceding deben estar ya en la cadena.
func (c *Chain) Compounded(id ID, base, rate decimal.Decimal, preceding ...ID) decimal.Decimal {
	if !c.ok(id) {
		return decimal.Zero
	}
	if err := ValidateRate(rate); err != nil {
		c.err = fmt.Errorf("tax: %s: %w", id, err)
		return decimal.Zero
	}
	prev := decimal.Zero
	for _, p := range preceding {
		v, found := c.amounts[p]
		if !found {
			c.err = fmt.Errorf("tax: %s: %w: %s aún no calculado", id, domain.ErrInvalidInput, p)
			return decimal.Zero
		}
		prev = prev.Add(v)
	}
	return c.record(id, base.Add(prev), rate, CompoundedTax(base, prev, rate))
}

// GrossUp agrega el tributo por dentro sobre base (que no lo incluye).
func (c *Chain) GrossUp(id ID, base, rate decimal.Decimal) decimal.Decimal {
	if !c.ok(id) {
		return decimal.Zero
	}
	amount, err := GrossUpTax(base, rate)
	if err != nil {
		c.err = fmt.Errorf("tax: %s: %w", id, err)
		return decimal.Zero
	}
	return c.record(id, base.Add(amount), rate, amount)
}

// Fixed agrega un valor declarado por el usuario (por ejemplo AFRMM ya liquidado).
func (c *Chain) Fixed(id ID, amount decimal.Decimal) decimal.Decimal {
	if !c.ok(id) {
		return decimal.Zero
	}
	if amount.IsNegative() {
		c.err = fmt.Errorf("tax: %s: %w: valor negativo", id, domain.ErrInvalidInput)
		return decimal.Zero
	}
	return c.record(id, amount, decimal.Zero, amount)
}

// Err devuelve el primer error de la cadena.
func (c *Chain) Err() error { return c.err }

// Lines devuelve una copia de las líneas en orden de cálculo.
func (c *Chain) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Amounts devuelve una copia del mapa tipado.
func (c *Chain) Amounts() Amounts {
	out := make(Amounts, len(c.amounts))
	for k, v := range c.amounts {
		out[k] = v
	}
	return out
}

// Total suma lo calculado hasta el momento.
func (c *Chain) Total() decimal.Decimal { return Aggregate(c.lines) }

func (c *Chain) ok(id ID) bool {
	if c.err != nil {
		return false
	}
	if !id.Valid() {
		c.err = fmt.Errorf("tax: %w: tributo desconocido %q", domain.ErrInvalidInput, id)
		return false
	}
	if _, dup := c.amounts[id]; dup {
		c.err = fmt.Errorf("tax: %w: %s calculado dos veces", domain.ErrInvalidInput, id)
		return false
	}
	return true
}

func (c *Chain) record(id ID, base, rate, amount decimal.Decimal) decimal.Decimal {
	if c.round {
		base, amount = base.Round(c.places), amount.Round(c.places)
	}
	c.lines = append(c.lines, Line{ID: id, Base: base, Rate: rate, Amount: amount})
	c.amounts[id] = amount
	return amount
}
