package main

import (
	"fmt"
	"strings"

	"github.com/jhoicas/comex-api/internal/application/dto"
	"github.com/jhoicas/comex-api/pkg/money"
)

func costText(res *dto.CostResponse) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Simulación %s  (id %s)\n", res.Scenario, res.CalculationID)
	if res.Product != "" {
		fmt.Fprintf(&b, "Producto: %s\n", res.Product)
	}
	fmt.Fprintf(&b, "Valor aduanero: %s\n", money.BRL(res.CustomsValue))
	b.WriteString("Tributos:\n")
	for _, l := range res.Taxes {
		fmt.Fprintf(&b, "  %-7s %10s  %s\n", l.ID, money.Percent(l.RatePercent), money.BRL(l.Amount))
	}
	fmt.Fprintf(&b, "Total tributos: %s\n", money.BRL(res.TotalTaxes))
	fmt.Fprintf(&b, "Total gastos:   %s\n", money.BRL(res.TotalExpenses))
	fmt.Fprintf(&b, "COSTO FINAL:    %s\n", money.BRL(res.TotalCost))
	fmt.Fprintf(&b, "Costo unitario: %s\n", money.BRL(res.UnitCost))
	return b.String()
}

func drawbackText(res *dto.DrawbackResponse) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Drawback %s, acto %s  (id %s)\n", res.Modality, res.ActNumber, res.CalculationID)
	fmt.Fprintf(&b, "Tributos elegibles: %s\n", strings.Join(res.EligibleTaxes, ", "))
	fmt.Fprintf(&b, "Beneficio:        %s\n", money.BRL(res.BenefitedAmount))
	fmt.Fprintf(&b, "No beneficiado:   %s\n", money.BRL(res.NotBenefitedAmount))
	fmt.Fprintf(&b, "Cumplimiento:     %s\n", money.Percent(res.ComplianceRatio))
	fmt.Fprintf(&b, "Estado:           %s (%d días)\n", res.Status, res.DaysRemaining)
	return b.String()
}
