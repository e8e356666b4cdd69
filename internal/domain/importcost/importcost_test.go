package importcost_test

import (
	"encoding/json"
	"testing"

	"github.com/jhoicas/comex-api/internal/domain"
	"github.com/jhoicas/comex-api/internal/domain/importcost"
	"github.com/jhoicas/comex-api/internal/domain/tax"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func assertMoney(t *testing.T, want string, got decimal.Decimal, msg string) {
	t.Helper()
	assert.Equal(t, want, got.StringFixed(2), msg)
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenario aéreo de referencia: 100 unidades x 10 USD, flete 100 USD, seguro 1%,
// cambio 5,30; II 10%, IPI 5%, PIS 2,1%, COFINS 9,65%, ICMS 18%; gastos 1.000 BRL.
// ──────────────────────────────────────────────────────────────────────────────

func airInput() importcost.AirInput {
	return importcost.AirInput{
		Quantity:      d("100"),
		GrossWeightKg: d("10"),
		VolumeM3:      d("1"),
		UnitPriceUSD:  d("10"),
		FreightUSD:    d("100"),
		InsuranceRate: d("0.01"),
		ExchangeRate:  d("5.30"),
		Rates: importcost.Rates{
			II: d("0.10"), IPI: d("0.05"), PIS: d("0.021"), COFINS: d("0.0965"), ICMS: d("0.18"),
		},
		Expenses: []importcost.Expense{
			{Kind: importcost.ExpenseSiscomex, Amount: d("154.23")},
			{Kind: importcost.ExpenseBroker, Amount: d("845.77")},
		},
	}
}

func TestAirImport_EscenarioReferencia(t *testing.T) {
	b, err := importcost.AirImport(airInput())
	require.NoError(t, err)

	assertMoney(t, "167.00", b.ChargeableWeight, "peso volumétrico domina")
	assertMoney(t, "1000.00", b.FOBForeign, "FOB")
	assertMoney(t, "11.00", b.InsuranceForeign, "seguro sobre FOB + flete")
	assertMoney(t, "1111.00", b.CIFForeign, "CIF USD")
	assertMoney(t, "5888.30", b.CustomsValue, "CIF BRL")

	assertMoney(t, "588.83", b.Amounts.Get(tax.II), "II")
	assertMoney(t, "323.86", b.Amounts.Get(tax.IPI), "IPI sobre CIF + II")
	assertMoney(t, "123.65", b.Amounts.Get(tax.PIS), "PIS")
	assertMoney(t, "568.22", b.Amounts.Get(tax.COFINS), "COFINS")
	assertMoney(t, "1864.29", b.Amounts.Get(tax.ICMS), "ICMS por dentro")

	require.Len(t, b.Taxes, 5, "sin IOF cuando la alícuota es cero")
	assertMoney(t, "3468.85", b.TotalTaxes, "suma de las cinco líneas")
	assertMoney(t, "1000.00", b.TotalExpenses, "gastos")
	assertMoney(t, "10357.15", b.TotalCost, "CIF + tributos + gastos")
	assertMoney(t, "103.57", b.UnitCost, "costo unitario")
}

func TestAirImport_OrdenDeCalculo(t *testing.T) {
	b, err := importcost.AirImport(airInput())
	require.NoError(t, err)
	ids := make([]tax.ID, 0, len(b.Taxes))
	for _, l := range b.Taxes {
		ids = append(ids, l.ID)
	}
	assert.Equal(t, []tax.ID{tax.II, tax.IPI, tax.PIS, tax.COFINS, tax.ICMS}, ids)
}

func TestAirImport_IOFCambioOpcional(t *testing.T) {
	in := airInput()
	in.IOFRate = d("0.0038")
	b, err := importcost.AirImport(in)
	require.NoError(t, err)
	require.Len(t, b.Taxes, 6)
	assertMoney(t, "22.38", b.Amounts.Get(tax.IOF), "IOF sobre CIF BRL")
	assertMoney(t, "1864.29", b.Amounts.Get(tax.ICMS), "IOF no entra en la base del ICMS")
}

func TestAirImport_CantidadCeroNoDivide(t *testing.T) {
	in := airInput()
	in.Quantity = decimal.Zero
	b, err := importcost.AirImport(in)
	require.NoError(t, err)
	assert.True(t, b.FOBForeign.IsZero())
	assert.True(t, b.UnitCost.IsZero())
}

func TestAirImport_AlicuotaICMSInvalida(t *testing.T) {
	in := airInput()
	in.Rates.ICMS = d("1")
	_, err := importcost.AirImport(in)
	assert.ErrorIs(t, err, domain.ErrInvalidRate)
}

func TestAirImport_CambioCeroRechazado(t *testing.T) {
	in := airInput()
	in.ExchangeRate = decimal.Zero
	_, err := importcost.AirImport(in)
	assert.ErrorIs(t, err, domain.ErrInvalidRate)
}

func TestAirImport_AgregaTodosLosErrores(t *testing.T) {
	in := airInput()
	in.Quantity = d("-1")
	in.Rates.II = d("-0.1")
	_, err := importcost.AirImport(in)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	assert.ErrorIs(t, err, domain.ErrInvalidRate)
}

// Idempotencia: mismas entradas, bytes idénticos.
func TestAirImport_Idempotente(t *testing.T) {
	b1, err := importcost.AirImport(airInput())
	require.NoError(t, err)
	b2, err := importcost.AirImport(airInput())
	require.NoError(t, err)

	j1, err := json.Marshal(b1)
	require.NoError(t, err)
	j2, err := json.Marshal(b2)
	require.NoError(t, err)
	assert.Equal(t, j1, j2)
}

// ── Marítima ──────────────────────────────────────────────────────────────────

func seaInput() importcost.SeaInput {
	return importcost.SeaInput{
		Quantity:   d("500"),
		GoodsValue: d("50000"),
		Freight:    d("5000"),
		Insurance:  d("500"),
		AFRMMRate:  d("0.08"),
		Rates: importcost.Rates{
			II: d("0.14"), IPI: d("0.10"), PIS: d("0.021"), COFINS: d("0.0965"), ICMS: d("0.18"),
		},
		Expenses: []importcost.Expense{
			{Kind: importcost.ExpenseStorage, Amount: d("1500")},
			{Kind: importcost.ExpenseBroker, Amount: d("1000")},
			{Kind: importcost.ExpenseRoadTransport, Amount: d("500")},
		},
	}
}

func TestSeaImport_AFRMMEnBaseDelICMS(t *testing.T) {
	b, err := importcost.SeaImport(seaInput())
	require.NoError(t, err)

	assertMoney(t, "55500.00", b.CustomsValue, "valor aduaneiro")
	assertMoney(t, "7770.00", b.Amounts.Get(tax.II), "II")
	assertMoney(t, "6327.00", b.Amounts.Get(tax.IPI), "IPI")
	assertMoney(t, "400.00", b.Amounts.Get(tax.AFRMM), "AFRMM 8% del flete")
	assertMoney(t, "16796.69", b.Amounts.Get(tax.ICMS), "ICMS")
	assertMoney(t, "37814.94", b.TotalTaxes, "tributos")
	assertMoney(t, "96314.94", b.TotalCost, "costo final")
	assertMoney(t, "192.63", b.UnitCost, "costo unitario")
}

func TestSeaImport_AFRMMDeclarado(t *testing.T) {
	in := seaInput()
	in.AFRMMRate = decimal.Zero
	in.AFRMM = d("250")
	b, err := importcost.SeaImport(in)
	require.NoError(t, err)
	assertMoney(t, "250.00", b.Amounts.Get(tax.AFRMM), "AFRMM declarado")
}

// ── Simplificada ──────────────────────────────────────────────────────────────

func TestSimplifiedImport(t *testing.T) {
	b, err := importcost.SimplifiedImport(importcost.SimplifiedInput{
		PurchaseUSD:  d("100"),
		ExchangeRate: d("5.30"),
		Freight:      d("50"),
		Insurance:    d("10"),
		IIRate:       d("0.60"),
		ICMSRate:     d("0.17"),
		IOFRate:      d("0.0638"),
	})
	require.NoError(t, err)

	assertMoney(t, "590.00", b.CustomsValue, "VMLD")
	assertMoney(t, "354.00", b.Amounts.Get(tax.II), "II")
	assertMoney(t, "193.35", b.Amounts.Get(tax.ICMS), "ICMS por dentro sobre VMLD + II")
	assertMoney(t, "33.81", b.Amounts.Get(tax.IOF), "IOF sobre el valor en BRL")
	assertMoney(t, "581.16", b.TotalTaxes, "tributos")
	assertMoney(t, "1171.16", b.TotalCost, "costo final")
	assert.True(t, b.UnitCost.IsZero(), "sin cantidad no hay costo unitario")
}

func TestParseExpenseKind(t *testing.T) {
	k, err := importcost.ParseExpenseKind(" AWB_Release ")
	require.NoError(t, err)
	assert.Equal(t, importcost.ExpenseAWBRelease, k)

	_, err = importcost.ParseExpenseKind("propina")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
