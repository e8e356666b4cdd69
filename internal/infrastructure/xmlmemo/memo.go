// Package xmlmemo genera la memoria de cálculo en XML con resumen SHA-256 sobre
// la forma canónica (C14N) del bloque <Calculo>, para que el receptor verifique
// que los valores no fueron alterados.
package xmlmemo

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/xml"
	"fmt"
	"strconv"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/ucarion/c14n"

	"github.com/jhoicas/comex-api/internal/application/dto"
)

const (
	ContentType = "application/xml"
	// AlgC14N algoritmo de canonicalización del bloque resumido.
	AlgC14N = "http://www.w3.org/TR/2001/REC-xml-c14n-20010315"
	// AlgSHA256 algoritmo del resumen.
	AlgSHA256 = "http://www.w3.org/2001/04/xmlenc#sha256"
	// Version del formato de la memoria.
	Version = "1.0"
)

// Renderer implementa simulation.Renderer en XML.
type Renderer struct{}

// NewRenderer construye el renderer.
func NewRenderer() *Renderer { return &Renderer{} }

// ContentType cabecera HTTP del documento.
func (r *Renderer) ContentType() string { return ContentType }

// RenderCost memoria de una simulación de importación.
func (r *Renderer) RenderCost(_ context.Context, res *dto.CostResponse) ([]byte, error) {
	if res == nil {
		return nil, fmt.Errorf("xmlmemo: resultado nulo")
	}
	doc, calc := newMemo("importacion", res.CalculationID)
	calc.CreateAttr("escenario", res.Scenario)
	optional(calc, "Producto", res.Product)
	optional(calc, "NCM", res.NCM)

	val := calc.CreateElement("Valoracion")
	amount(val, "Cantidad", res.Quantity)
	amount(val, "PesoTasableKg", res.ChargeableWeightKg)
	amount(val, "TipoCambio", res.ExchangeRate)
	amount(val, "FOB", res.FOBForeign)
	amount(val, "Flete", res.FreightForeign)
	amount(val, "Seguro", res.InsuranceForeign)
	amount(val, "CIF", res.CIFForeign)
	amount(val, "ValorAduanero", res.CustomsValue)

	taxes(calc, "Tributos", res.Taxes)

	exp := calc.CreateElement("Gastos")
	for _, e := range res.Expenses {
		g := exp.CreateElement("Gasto")
		g.CreateAttr("tipo", e.Kind)
		g.SetText(e.Amount.StringFixed(2))
	}

	tot := calc.CreateElement("Totales")
	amount(tot, "Tributos", res.TotalTaxes)
	amount(tot, "Gastos", res.TotalExpenses)
	amount(tot, "CostoFinal", res.TotalCost)
	amount(tot, "CostoUnitario", res.UnitCost)

	return seal(doc)
}

// RenderDrawback memoria de una evaluación de drawback.
func (r *Renderer) RenderDrawback(_ context.Context, res *dto.DrawbackResponse) ([]byte, error) {
	if res == nil {
		return nil, fmt.Errorf("xmlmemo: resultado nulo")
	}
	doc, calc := newMemo("drawback", res.CalculationID)
	calc.CreateAttr("modalidad", res.Modality)

	act := calc.CreateElement("Acto")
	act.CreateAttr("numero", res.ActNumber)
	act.CreateElement("FechaReferencia").SetText(res.CurrentDate)
	act.CreateElement("DiasRestantes").SetText(strconv.Itoa(res.DaysRemaining))
	act.CreateElement("Estado").SetText(res.Status)

	el := calc.CreateElement("TributosElegibles")
	for _, id := range res.EligibleTaxes {
		el.CreateElement("Tributo").SetText(id)
	}
	taxes(calc, "Beneficiados", res.BenefitedTaxes)
	taxes(calc, "NoBeneficiados", res.NotBenefitedTaxes)

	tot := calc.CreateElement("Totales")
	amount(tot, "Beneficio", res.BenefitedAmount)
	amount(tot, "NoBeneficiado", res.NotBenefitedAmount)
	amount(tot, "Cumplimiento", res.ComplianceRatio)
	amount(tot, "SaldoCantidad", res.RemainingQuantity)
	amount(tot, "SaldoValor", res.RemainingValue)

	return seal(doc)
}

// Verify recalcula el resumen del bloque <Calculo> y lo compara con <Resumen>.
func Verify(data []byte) error {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return fmt.Errorf("xmlmemo: parsear XML: %w", err)
	}
	root := doc.Root()
	if root == nil {
		return fmt.Errorf("xmlmemo: documento sin raíz")
	}
	calc := root.SelectElement("Calculo")
	digest := root.SelectElement("Resumen")
	if calc == nil || digest == nil {
		return fmt.Errorf("xmlmemo: faltan Calculo o Resumen")
	}
	got, err := digestOf(calc)
	if err != nil {
		return err
	}
	if got != digest.Text() {
		return fmt.Errorf("xmlmemo: resumen no coincide (documento alterado)")
	}
	return nil
}

// ── helpers ───────────────────────────────────────────────────────────────────

func newMemo(kind, id string) (*etree.Document, *etree.Element) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement("MemoriaCalculo")
	root.CreateAttr("version", Version)
	root.CreateAttr("tipo", kind)
	calc := root.CreateElement("Calculo")
	calc.CreateAttr("Id", id)
	return doc, calc
}

// seal agrega <Resumen> sobre la forma canónica de <Calculo> y serializa.
func seal(doc *etree.Document) ([]byte, error) {
	root := doc.Root()
	digest, err := digestOf(root.SelectElement("Calculo"))
	if err != nil {
		return nil, err
	}
	d := root.CreateElement("Resumen")
	d.CreateAttr("canonicalizacion", AlgC14N)
	d.CreateAttr("algoritmo", AlgSHA256)
	d.SetText(digest)

	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("xmlmemo: serializar: %w", err)
	}
	return out, nil
}

// digestOf SHA-256 en base64 del elemento canonicalizado como documento propio.
func digestOf(el *etree.Element) (string, error) {
	sub := etree.NewDocument()
	sub.SetRoot(el.Copy())
	raw, err := sub.WriteToBytes()
	if err != nil {
		return "", fmt.Errorf("xmlmemo: serializar bloque: %w", err)
	}
	canonical, err := canonicalizeXML(raw)
	if err != nil {
		return "", fmt.Errorf("xmlmemo: canonicalizar: %w", err)
	}
	sum := sha256.Sum256(canonical)
	return base64.StdEncoding.EncodeToString(sum[:]), nil
}

func canonicalizeXML(data []byte) ([]byte, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Entity = map[string]string{}
	return c14n.Canonicalize(dec)
}

func taxes(parent *etree.Element, tag string, lines []dto.TaxLineResponse) {
	group := parent.CreateElement(tag)
	for _, l := range lines {
		t := group.CreateElement("Tributo")
		t.CreateAttr("id", l.ID)
		amount(t, "Base", l.Base)
		amount(t, "Alicuota", l.RatePercent)
		amount(t, "Monto", l.Amount)
	}
}

func amount(parent *etree.Element, tag string, v decimal.Decimal) {
	parent.CreateElement(tag).SetText(v.StringFixed(2))
}

func optional(parent *etree.Element, tag, v string) {
	if v != "" {
		parent.CreateElement(tag).SetText(v)
	}
}
