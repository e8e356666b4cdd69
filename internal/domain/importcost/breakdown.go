// Package importcost arma el costo de internación de cada escenario de importación
// (aérea, marítima, simplificada) encadenando el normalizador y la calculadora de tributos.
package importcost

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jhoicas/comex-api/internal/domain"
	"github.com/jhoicas/comex-api/internal/domain/tax"
	"github.com/jhoicas/comex-api/internal/domain/valuation"
	"github.com/shopspring/decimal"
)

// MoneyPlaces decimales con los que se liquidan montos en BRL.
const MoneyPlaces int32 = 2

// ExpenseKind tipo de gasto accesorio.
type ExpenseKind string

const (
	ExpenseSiscomex      ExpenseKind = "siscomex"
	ExpenseBroker        ExpenseKind = "broker"         // despachante aduanero
	ExpenseStorage       ExpenseKind = "storage"        // armazenagem
	ExpenseAWBRelease    ExpenseKind = "awb_release"    // liberação AWB
	ExpenseCapatazia     ExpenseKind = "capatazia"      // manipulación en terminal
	ExpenseTerminalFees  ExpenseKind = "terminal_fees"  // tasas aeroportuarias / portuarias
	ExpenseRoadTransport ExpenseKind = "road_transport" // transporte rodoviário
	ExpenseOther         ExpenseKind = "other"
)

var expenseKinds = []ExpenseKind{
	ExpenseSiscomex, ExpenseBroker, ExpenseStorage, ExpenseAWBRelease,
	ExpenseCapatazia, ExpenseTerminalFees, ExpenseRoadTransport, ExpenseOther,
}

// ParseExpenseKind valida el tipo de gasto recibido en la frontera.
func ParseExpenseKind(s string) (ExpenseKind, error) {
	k := ExpenseKind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range expenseKinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: tipo de gasto %q", domain.ErrInvalidInput, s)
}

// Expense gasto accesorio en BRL.
type Expense struct {
	Kind   ExpenseKind     `json:"kind"`
	Amount decimal.Decimal `json:"amount"`
}

// Rates alícuotas (fracción) de los tributos federales y del ICMS.
type Rates struct {
	II     decimal.Decimal
	IPI    decimal.Decimal
	PIS    decimal.Decimal
	COFINS decimal.Decimal
	ICMS   decimal.Decimal
}

// CostBreakdown resultado de una simulación. Propiedad exclusiva de la petición que lo generó.
type CostBreakdown struct {
	Mode             valuation.TransportMode
	Quantity         decimal.Decimal
	ChargeableWeight decimal.Decimal
	ExchangeRate     decimal.Decimal // tasa efectiva aplicada (con spread)
	FOBForeign       decimal.Decimal
	FreightForeign   decimal.Decimal
	InsuranceForeign decimal.Decimal
	CIFForeign       decimal.Decimal
	CustomsValue     decimal.Decimal // CIF en BRL, valor aduaneiro o VMLD según el escenario
	Taxes            []tax.Line
	Amounts          tax.Amounts
	Expenses         []Expense
	TotalTaxes       decimal.Decimal
	TotalExpenses    decimal.Decimal
	TotalCost        decimal.Decimal
	UnitCost         decimal.Decimal
}

// SumExpenses suma los gastos accesorios.
func SumExpenses(expenses []Expense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	return total
}

func validateRates(r Rates) error {
	var errs []error
	for _, v := range []struct {
		id   tax.ID
		rate decimal.Decimal
	}{{tax.II, r.II}, {tax.IPI, r.IPI}, {tax.PIS, r.PIS}, {tax.COFINS, r.COFINS}} {
		if err := tax.ValidateRate(v.rate); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", v.id, err))
		}
	}
	if err := tax.ValidateGrossUpRate(r.ICMS); err != nil {
		errs = append(errs, fmt.Errorf("%s: %w", tax.ICMS, err))
	}
	return errors.Join(errs...)
}

func validateExpenses(expenses []Expense) error {
	var errs []error
	for _, e := range expenses {
		if e.Amount.IsNegative() {
			errs = append(errs, fmt.Errorf("%w: gasto %s negativo", domain.ErrInvalidInput, e.Kind))
		}
	}
	return errors.Join(errs...)
}

func nonNegative(field string, v decimal.Decimal, sentinel error) error {
	if v.IsNegative() {
		return fmt.Errorf("%w: %s = %s", sentinel, field, v.String())
	}
	return nil
}

// federalTaxes encadena II, IPI (base + II), PIS y COFINS sobre la base aduanera.
func federalTaxes(c *tax.Chain, base decimal.Decimal, r Rates) {
	c.Simple(tax.II, base, r.II)
	c.Compounded(tax.IPI, base, r.IPI, tax.II)
	c.Simple(tax.PIS, base, r.PIS)
	c.Simple(tax.COFINS, base, r.COFINS)
}

func roundExpenses(expenses []Expense) []Expense {
	out := make([]Expense, 0, len(expenses))
	for _, e := range expenses {
		out = append(out, Expense{Kind: e.Kind, Amount: e.Amount.Round(MoneyPlaces)})
	}
	return out
}

// finish completa totales a partir de las líneas ya liquidadas.
func finish(b CostBreakdown, c *tax.Chain) CostBreakdown {
	b.Taxes = c.Lines()
	b.Amounts = c.Amounts()
	b.TotalTaxes = tax.Aggregate(b.Taxes)
	b.TotalExpenses = SumExpenses(b.Expenses)
	b.TotalCost = b.CustomsValue.Add(b.TotalTaxes).Add(b.TotalExpenses)
	b.UnitCost = valuation.UnitCost(b.TotalCost, b.Quantity).Round(MoneyPlaces)
	return b
}
