package drawback_test

import (
	"testing"
	"time"

	"github.com/jhoicas/comex-api/internal/domain"
	"github.com/jhoicas/comex-api/internal/domain/drawback"
	"github.com/jhoicas/comex-api/internal/domain/tax"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func date(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

func sampleLines() []tax.Line {
	return []tax.Line{
		{ID: tax.II, Amount: d("100")},
		{ID: tax.IPI, Amount: d("50")},
		{ID: tax.PIS, Amount: d("20")},
		{ID: tax.COFINS, Amount: d("20")},
		{ID: tax.ICMS, Amount: d("10")},
	}
}

// ── Estado de plazo ───────────────────────────────────────────────────────────

func TestStatusFor_Limites(t *testing.T) {
	cases := []struct {
		days int
		want drawback.Status
	}{
		{61, drawback.StatusRegular},
		{60, drawback.StatusAttention},
		{1, drawback.StatusAttention},
		{0, drawback.StatusExpired},
		{-5, drawback.StatusExpired},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, drawback.StatusFor(tc.days), "días=%d", tc.days)
	}
}

func TestDaysRemaining_IgnoraHora(t *testing.T) {
	today := time.Date(2026, 3, 1, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, 61, drawback.DaysRemaining(date("2026-05-01"), today))
	assert.Equal(t, 0, drawback.DaysRemaining(date("2026-03-01"), today))
	assert.Equal(t, -5, drawback.DaysRemaining(date("2026-02-24"), today))
}

func TestDaysRemaining_HorizonteLargo(t *testing.T) {
	today := date("2026-01-01")
	assert.Equal(t, 136600, drawback.DaysRemaining(date("2400-01-01"), today))
	assert.Equal(t, -136600, drawback.DaysRemaining(today, date("2400-01-01")))
}

// ── Tabla de reglas ───────────────────────────────────────────────────────────

func TestDefaultRuleTable_Modalidades(t *testing.T) {
	rules := drawback.DefaultRuleTable()

	set, err := rules.EligibleTaxes(drawback.Restitution)
	require.NoError(t, err)
	assert.Equal(t, []tax.ID{tax.II, tax.IPI}, set.IDs())

	set, err = rules.EligibleTaxes(drawback.Suspension)
	require.NoError(t, err)
	assert.Equal(t, []tax.ID{tax.II, tax.IPI, tax.PIS, tax.COFINS}, set.IDs())
}

func TestEligibleTaxes_ModalidadDesconocida(t *testing.T) {
	_, err := drawback.DefaultRuleTable().EligibleTaxes(drawback.Modality("intermediario"))
	assert.ErrorIs(t, err, domain.ErrUnknownModality)
}

func TestNewRuleTable_FallaAlArrancar(t *testing.T) {
	_, err := drawback.NewRuleTable(map[drawback.Modality][]tax.ID{
		drawback.Suspension: {tax.II},
		drawback.Exemption:  {tax.II},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "falta restitution")

	raw := drawback.DefaultRules()
	raw["generico"] = []tax.ID{tax.II}
	_, err = drawback.NewRuleTable(raw)
	assert.ErrorIs(t, err, domain.ErrUnknownModality)

	raw = drawback.DefaultRules()
	raw[drawback.Exemption] = nil
	_, err = drawback.NewRuleTable(raw)
	assert.Error(t, err, "conjunto vacío no se acepta")
}

func TestParseRules(t *testing.T) {
	raw, err := drawback.ParseRules("suspensão=II,IPI,PIS,COFINS; isencao=II,IPI,PIS,COFINS; restitution=ii,ipi")
	require.NoError(t, err)
	rules, err := drawback.NewRuleTable(raw)
	require.NoError(t, err)
	assert.Equal(t, drawback.DefaultRuleTable().Snapshot(), rules.Snapshot())

	_, err = drawback.ParseRules("drawback-web=II")
	assert.ErrorIs(t, err, domain.ErrUnknownModality)
}

func TestRuleTableFromConfig(t *testing.T) {
	rules, err := drawback.RuleTableFromConfig("  ")
	require.NoError(t, err)
	assert.Equal(t, drawback.DefaultRuleTable().Snapshot(), rules.Snapshot())

	rules, err = drawback.RuleTableFromConfig("suspension=II;exemption=II,IPI;restitution=II,IPI,PIS")
	require.NoError(t, err)
	set, err := rules.EligibleTaxes(drawback.Restitution)
	require.NoError(t, err)
	assert.Equal(t, []tax.ID{tax.II, tax.IPI, tax.PIS}, set.IDs())

	_, err = drawback.RuleTableFromConfig("suspension=II")
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "faltan modalidades")

	_, err = drawback.RuleTableFromConfig("restitution")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRuleTable_StringCanonico(t *testing.T) {
	assert.Equal(t,
		"exemption=II,IPI,PIS,COFINS;restitution=II,IPI;suspension=II,IPI,PIS,COFINS",
		drawback.DefaultRuleTable().String())

	raw, err := drawback.ParseRules("restitution=IPI,II;suspension=COFINS,PIS,IPI,II;exemption=II,IPI,PIS,COFINS")
	require.NoError(t, err)
	rules, err := drawback.NewRuleTable(raw)
	require.NoError(t, err)
	assert.Equal(t, drawback.DefaultRuleTable().String(), rules.String(), "independiente del orden de entrada")
}

// ── Beneficio ─────────────────────────────────────────────────────────────────

func TestBenefitAmount_RestitucionSoloIIeIPI(t *testing.T) {
	set, err := drawback.DefaultRuleTable().EligibleTaxes(drawback.Restitution)
	require.NoError(t, err)

	benefited, notBenefited, in, out := drawback.BenefitAmount(sampleLines(), set)
	assert.True(t, benefited.Equal(d("150")), "got %s", benefited)
	assert.True(t, notBenefited.Equal(d("50")), "PIS+COFINS+ICMS, got %s", notBenefited)
	assert.Len(t, in, 2)
	assert.Len(t, out, 3)
}

func TestBenefitAmount_SuspensionExcluyeICMS(t *testing.T) {
	set, err := drawback.DefaultRuleTable().EligibleTaxes(drawback.Suspension)
	require.NoError(t, err)
	benefited, notBenefited, _, out := drawback.BenefitAmount(sampleLines(), set)
	assert.True(t, benefited.Equal(d("190")))
	assert.True(t, notBenefited.Equal(d("10")))
	require.Len(t, out, 1)
	assert.Equal(t, tax.ICMS, out[0].ID)
}

// ── Cumplimiento y saldos ─────────────────────────────────────────────────────

func TestComplianceRatio(t *testing.T) {
	assert.True(t, drawback.ComplianceRatio(d("0"), d("0")).IsZero())
	assert.True(t, drawback.ComplianceRatio(d("50"), d("100")).Equal(d("50")))
	assert.True(t, drawback.ComplianceRatio(d("150"), d("100")).Equal(d("150")), "sobrecumplimiento no se limita")
	assert.True(t, drawback.ComplianceRatio(d("10"), d("-1")).IsZero())
}

func TestRemainingBalance_PuedeSerNegativo(t *testing.T) {
	assert.True(t, drawback.RemainingBalance(d("1000"), d("400")).Equal(d("600")))
	assert.True(t, drawback.RemainingBalance(d("1000"), d("1200")).Equal(d("-200")))
}

// ── Evaluate ──────────────────────────────────────────────────────────────────

func baseAct() drawback.Act {
	return drawback.Act{
		Number:             "20260001234",
		Modality:           drawback.Restitution,
		AuthorizedQuantity: d("1000"),
		AuthorizedValue:    d("50000"),
		Start:              date("2026-01-01"),
		End:                date("2026-12-31"),
	}
}

func TestEvaluate_Restitucion(t *testing.T) {
	mv := drawback.Movement{ImportedQuantity: d("400"), ImportedValue: d("20000"), ExportedQuantity: d("200")}
	res, err := drawback.Evaluate(drawback.DefaultRuleTable(), baseAct(), mv, sampleLines(), date("2026-10-31"))
	require.NoError(t, err)

	assert.True(t, res.Benefited.Equal(d("150")))
	assert.True(t, res.NotBenefited.Equal(d("50")))
	assert.True(t, res.ComplianceRatio.Equal(d("50")))
	assert.True(t, res.RemainingQuantity.Equal(d("600")))
	assert.True(t, res.RemainingValue.Equal(d("30000")))
	assert.Equal(t, 61, res.DaysRemaining)
	assert.Equal(t, drawback.StatusRegular, res.Status)
}

func TestEvaluate_FinAnteriorAlInicio(t *testing.T) {
	act := baseAct()
	act.End = date("2025-12-31")
	_, err := drawback.Evaluate(drawback.DefaultRuleTable(), act, drawback.Movement{}, nil, date("2026-01-10"))
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
}

func TestEvaluate_ModalidadDesconocida(t *testing.T) {
	act := baseAct()
	act.Modality = "generico"
	_, err := drawback.Evaluate(drawback.DefaultRuleTable(), act, drawback.Movement{}, nil, date("2026-01-10"))
	assert.ErrorIs(t, err, domain.ErrUnknownModality)
}

func TestEvaluate_MovimientoNegativo(t *testing.T) {
	mv := drawback.Movement{ImportedQuantity: d("-1")}
	_, err := drawback.Evaluate(drawback.DefaultRuleTable(), baseAct(), mv, nil, date("2026-01-10"))
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestPotentialTaxes(t *testing.T) {
	lines, err := drawback.PotentialTaxes(d("1000"), drawback.PotentialRates{
		II: d("0.10"), IPI: d("0.05"), PIS: d("0.021"), COFINS: d("0.0965"), ICMS: d("0.18"),
	})
	require.NoError(t, err)
	require.Len(t, lines, 5)

	amounts := map[tax.ID]decimal.Decimal{}
	for _, l := range lines {
		amounts[l.ID] = l.Amount
	}
	assert.True(t, amounts[tax.II].Equal(d("100")))
	assert.True(t, amounts[tax.IPI].Equal(d("55")), "IPI sobre valor + II")
	assert.True(t, amounts[tax.PIS].Equal(d("21")))
	assert.True(t, amounts[tax.COFINS].Equal(d("96.5")))
	assert.True(t, amounts[tax.ICMS].Equal(d("180")))
}
