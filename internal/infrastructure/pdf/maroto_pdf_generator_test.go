package pdf

import (
	"bytes"
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/comex-api/internal/application/dto"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestRenderCost(t *testing.T) {
	g := NewMarotoPDFGenerator("")
	out, err := g.RenderCost(context.Background(), &dto.CostResponse{
		CalculationID: "5c1f0d4e-2f7b-5c43-9d3e-1a2b3c4d5e6f",
		Scenario:      "air",
		Product:       "Sensor industrial",
		CustomsValue:  d("5888.30"),
		Taxes: []dto.TaxLineResponse{
			{ID: "II", Base: d("5888.30"), RatePercent: d("10"), Amount: d("588.83")},
			{ID: "ICMS", Base: d("10357.15"), RatePercent: d("18"), Amount: d("1864.29")},
		},
		Expenses:   []dto.ExpenseResponse{{Kind: "siscomex", Amount: d("154.23")}},
		TotalTaxes: d("2453.12"),
		TotalCost:  d("8495.65"),
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "cabecera PDF")
	assert.Equal(t, "application/pdf", g.ContentType())
}

func TestRenderDrawback(t *testing.T) {
	g := NewMarotoPDFGenerator("comex-api")
	out, err := g.RenderDrawback(context.Background(), &dto.DrawbackResponse{
		CalculationID:     "5c1f0d4e-2f7b-5c43-9d3e-1a2b3c4d5e6f",
		ActNumber:         "20260001234",
		Modality:          "restitution",
		CurrentDate:       "2026-10-31",
		BenefitedTaxes:    []dto.TaxLineResponse{{ID: "II", Amount: d("100")}},
		NotBenefitedTaxes: []dto.TaxLineResponse{{ID: "ICMS", Amount: d("10")}},
		BenefitedAmount:   d("100"),
		DaysRemaining:     12,
		Status:            "Attention",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestRender_Nulo(t *testing.T) {
	g := NewMarotoPDFGenerator("")
	_, err := g.RenderCost(context.Background(), nil)
	assert.Error(t, err)
	_, err = g.RenderDrawback(context.Background(), nil)
	assert.Error(t, err)
}

func TestExpenseLabel(t *testing.T) {
	assert.Equal(t, "Tasa Siscomex", expenseLabel("siscomex"))
	assert.Equal(t, "flete interno", expenseLabel("flete_interno"))
}
