package simulation

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/comex-api/internal/application/dto"
	"github.com/jhoicas/comex-api/internal/domain"
	"github.com/jhoicas/comex-api/internal/domain/drawback"
	"github.com/jhoicas/comex-api/internal/domain/importcost"
	"github.com/jhoicas/comex-api/internal/domain/tax"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// collector acumula errores de conversión para devolverlos todos juntos.
type collector struct {
	errs []error
}

func (c *collector) rate(field string, pct decimal.Decimal) decimal.Decimal {
	r, err := tax.RateFromPercent(pct)
	if err != nil {
		c.errs = append(c.errs, fmt.Errorf("%s: %w", field, err))
	}
	return r
}

func (c *collector) date(field, s string) time.Time {
	t, err := time.Parse(time.DateOnly, strings.TrimSpace(s))
	if err != nil {
		c.errs = append(c.errs, fmt.Errorf("%w: %s %q (formato YYYY-MM-DD)", domain.ErrInvalidDateRange, field, s))
		return time.Time{}
	}
	return t
}

func (c *collector) err() error { return errors.Join(c.errs...) }

func (c *collector) rates(r dto.TaxRatesRequest) importcost.Rates {
	return importcost.Rates{
		II:     c.rate("rates.ii", r.II),
		IPI:    c.rate("rates.ipi", r.IPI),
		PIS:    c.rate("rates.pis", r.PIS),
		COFINS: c.rate("rates.cofins", r.COFINS),
		ICMS:   c.rate("rates.icms", r.ICMS),
	}
}

func (c *collector) expenses(in []dto.ExpenseRequest) []importcost.Expense {
	out := make([]importcost.Expense, 0, len(in))
	for _, e := range in {
		kind, err := importcost.ParseExpenseKind(e.Kind)
		if err != nil {
			c.errs = append(c.errs, err)
			continue
		}
		out = append(out, importcost.Expense{Kind: kind, Amount: e.Amount})
	}
	return out
}

func airInput(req dto.AirImportRequest) (importcost.AirInput, error) {
	var c collector
	in := importcost.AirInput{
		Quantity:      req.Quantity,
		GrossWeightKg: req.GrossWeightKg,
		VolumeM3:      req.VolumeM3,
		UnitPriceUSD:  req.UnitPriceUSD,
		FreightUSD:    req.FreightUSD,
		InsuranceRate: c.rate("insurance_percent", req.InsurancePercent),
		ExchangeRate:  req.ExchangeRate,
		SpreadRate:    c.rate("spread_percent", req.SpreadPercent),
		IOFRate:       c.rate("iof_percent", req.IOFPercent),
		Rates:         c.rates(req.Rates),
		Expenses:      c.expenses(req.Expenses),
	}
	return in, c.err()
}

func seaInput(req dto.SeaImportRequest) (importcost.SeaInput, error) {
	var c collector
	in := importcost.SeaInput{
		Quantity:      req.Quantity,
		GrossWeightKg: req.GrossWeightKg,
		VolumeM3:      req.VolumeM3,
		GoodsValue:    req.GoodsValue,
		Freight:       req.Freight,
		Insurance:     req.Insurance,
		AFRMM:         req.AFRMM,
		AFRMMRate:     c.rate("afrmm_percent", req.AFRMMPercent),
		Rates:         c.rates(req.Rates),
		Expenses:      c.expenses(req.Expenses),
	}
	return in, c.err()
}

func simplifiedInput(req dto.SimplifiedImportRequest) (importcost.SimplifiedInput, error) {
	var c collector
	in := importcost.SimplifiedInput{
		Quantity:     req.Quantity,
		PurchaseUSD:  req.PurchaseUSD,
		ExchangeRate: req.ExchangeRate,
		Freight:      req.Freight,
		Insurance:    req.Insurance,
		IIRate:       c.rate("ii_percent", req.IIPercent),
		ICMSRate:     c.rate("icms_percent", req.ICMSPercent),
		IOFRate:      c.rate("iof_percent", req.IOFPercent),
	}
	return in, c.err()
}

// drawbackInput convierte la petición en acto, movimiento, tributos y fecha de referencia.
func drawbackInput(req dto.DrawbackRequest) (drawback.Act, drawback.Movement, []tax.Line, time.Time, error) {
	var c collector
	modality, err := drawback.ParseModality(req.Modality)
	if err != nil {
		c.errs = append(c.errs, err)
	}
	act := drawback.Act{
		Number:               req.ActNumber,
		Modality:             modality,
		NCM:                  req.NCM,
		FinalProduct:         req.FinalProduct,
		TechnicalCoefficient: req.TechnicalCoefficient,
		AuthorizedQuantity:   req.AuthorizedQuantity,
		AuthorizedValue:      req.AuthorizedValue,
		Start:                c.date("start_date", req.StartDate),
		End:                  c.date("end_date", req.EndDate),
	}
	today := c.date("current_date", req.CurrentDate)
	mv := drawback.Movement{
		ImportedQuantity: req.ImportedQuantity,
		ImportedValue:    req.ImportedValue,
		ExportedQuantity: req.ExportedQuantity,
	}

	var lines []tax.Line
	if len(req.Taxes) > 0 {
		lines = c.explicitTaxes(req.Taxes)
	} else {
		r := c.rates(req.Rates)
		if err := c.err(); err == nil {
			lines, err = drawback.PotentialTaxes(req.ImportedValue, drawback.PotentialRates{
				II: r.II, IPI: r.IPI, PIS: r.PIS, COFINS: r.COFINS, ICMS: r.ICMS,
			})
			if err != nil {
				c.errs = append(c.errs, err)
			}
		}
	}
	return act, mv, roundLines(lines), today, c.err()
}

func (c *collector) explicitTaxes(in []dto.TaxAmountRequest) []tax.Line {
	ch := tax.NewChain()
	for _, t := range in {
		id, err := tax.ParseID(t.ID)
		if err != nil {
			c.errs = append(c.errs, err)
			continue
		}
		ch.Fixed(id, t.Amount)
	}
	if err := ch.Err(); err != nil {
		c.errs = append(c.errs, err)
	}
	return ch.Lines()
}

func roundLines(lines []tax.Line) []tax.Line {
	out := make([]tax.Line, 0, len(lines))
	for _, l := range lines {
		out = append(out, tax.Line{
			ID:     l.ID,
			Base:   l.Base.Round(importcost.MoneyPlaces),
			Rate:   l.Rate,
			Amount: l.Amount.Round(importcost.MoneyPlaces),
		})
	}
	return out
}

func toTaxLines(lines []tax.Line) []dto.TaxLineResponse {
	out := make([]dto.TaxLineResponse, 0, len(lines))
	for _, l := range lines {
		out = append(out, dto.TaxLineResponse{
			ID:          string(l.ID),
			Base:        l.Base.Round(importcost.MoneyPlaces),
			RatePercent: l.Rate.Mul(hundred),
			Amount:      l.Amount.Round(importcost.MoneyPlaces),
		})
	}
	return out
}

func toCostResponse(id, product, ncm string, b importcost.CostBreakdown) *dto.CostResponse {
	expenses := make([]dto.ExpenseResponse, 0, len(b.Expenses))
	for _, e := range b.Expenses {
		expenses = append(expenses, dto.ExpenseResponse{Kind: string(e.Kind), Amount: e.Amount})
	}
	return &dto.CostResponse{
		CalculationID:      id,
		Scenario:           string(b.Mode),
		Product:            product,
		NCM:                ncm,
		Quantity:           b.Quantity,
		ChargeableWeightKg: b.ChargeableWeight,
		ExchangeRate:       b.ExchangeRate,
		FOBForeign:         b.FOBForeign,
		FreightForeign:     b.FreightForeign,
		InsuranceForeign:   b.InsuranceForeign,
		CIFForeign:         b.CIFForeign,
		CustomsValue:       b.CustomsValue,
		Taxes:              toTaxLines(b.Taxes),
		Expenses:           expenses,
		TotalTaxes:         b.TotalTaxes,
		TotalExpenses:      b.TotalExpenses,
		TotalCost:          b.TotalCost,
		UnitCost:           b.UnitCost,
	}
}

func toDrawbackResponse(id, actNumber string, today time.Time, lines []tax.Line, r drawback.Result) *dto.DrawbackResponse {
	eligible := make([]string, 0, len(r.EligibleTaxes))
	for _, e := range r.EligibleTaxes {
		eligible = append(eligible, string(e))
	}
	return &dto.DrawbackResponse{
		CalculationID:      id,
		ActNumber:          actNumber,
		Modality:           string(r.Modality),
		CurrentDate:        today.Format(time.DateOnly),
		EligibleTaxes:      eligible,
		Taxes:              toTaxLines(lines),
		BenefitedTaxes:     toTaxLines(r.BenefitedLines),
		NotBenefitedTaxes:  toTaxLines(r.NotBenefitedLines),
		BenefitedAmount:    r.Benefited.Round(importcost.MoneyPlaces),
		NotBenefitedAmount: r.NotBenefited.Round(importcost.MoneyPlaces),
		ComplianceRatio:    r.ComplianceRatio.Round(2),
		RemainingQuantity:  r.RemainingQuantity,
		RemainingValue:     r.RemainingValue.Round(importcost.MoneyPlaces),
		DaysRemaining:      r.DaysRemaining,
		Status:             string(r.Status),
	}
}
