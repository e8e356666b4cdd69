package xmlmemo

import (
	"bytes"
	"context"
	"testing"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/comex-api/internal/application/dto"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func costResponse() *dto.CostResponse {
	return &dto.CostResponse{
		CalculationID: "5c1f0d4e-2f7b-5c43-9d3e-1a2b3c4d5e6f",
		Scenario:      "air",
		Product:       "Sensor & módulo",
		CustomsValue:  d("5888.30"),
		Taxes: []dto.TaxLineResponse{
			{ID: "II", Base: d("5888.30"), RatePercent: d("10"), Amount: d("588.83")},
		},
		Expenses:  []dto.ExpenseResponse{{Kind: "broker", Amount: d("845.77")}},
		TotalCost: d("10357.15"),
	}
}

func TestRenderCost_Verificable(t *testing.T) {
	r := NewRenderer()
	out, err := r.RenderCost(context.Background(), costResponse())
	require.NoError(t, err)
	require.NoError(t, Verify(out))

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))
	assert.Equal(t, "10357.15", doc.FindElement("//Totales/CostoFinal").Text())
	assert.Equal(t, "588.83", doc.FindElement("//Tributos/Tributo[@id='II']/Monto").Text())
	assert.Equal(t, "Sensor & módulo", doc.FindElement("//Producto").Text())
}

func TestRenderCost_Determinista(t *testing.T) {
	r := NewRenderer()
	a, err := r.RenderCost(context.Background(), costResponse())
	require.NoError(t, err)
	b, err := r.RenderCost(context.Background(), costResponse())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestVerify_DetectaAlteracion(t *testing.T) {
	r := NewRenderer()
	out, err := r.RenderCost(context.Background(), costResponse())
	require.NoError(t, err)

	tampered := bytes.Replace(out, []byte("10357.15"), []byte("9357.15"), 1)
	require.NotEqual(t, out, tampered)
	assert.Error(t, Verify(tampered))
}

func TestRenderDrawback_Verificable(t *testing.T) {
	r := NewRenderer()
	out, err := r.RenderDrawback(context.Background(), &dto.DrawbackResponse{
		CalculationID:   "0b6a3f1e-8cde-5a7f-b3c1-2d4e6f8a0b1c",
		ActNumber:       "20260001234",
		Modality:        "restitution",
		CurrentDate:     "2026-10-31",
		EligibleTaxes:   []string{"II", "IPI"},
		BenefitedAmount: d("150"),
		DaysRemaining:   61,
		Status:          "Regular",
	})
	require.NoError(t, err)
	require.NoError(t, Verify(out))
	assert.Contains(t, string(out), "<DiasRestantes>61</DiasRestantes>")
	assert.Equal(t, ContentType, r.ContentType())
}

func TestVerify_Errores(t *testing.T) {
	assert.Error(t, Verify([]byte("no es xml <")))
	assert.Error(t, Verify([]byte("<MemoriaCalculo/>")))
}
