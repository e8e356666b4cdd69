package dto

import "github.com/shopspring/decimal"

// TaxAmountRequest tributo ya calculado por el llamador (por ejemplo desde una simulación previa).
type TaxAmountRequest struct {
	ID     string          `json:"id"`
	Amount decimal.Decimal `json:"amount"`
}

// DrawbackRequest body para POST /api/drawback/evaluate.
// Si Taxes viene vacío se calculan los tributos potenciales sobre ImportedValue con Rates.
// Fechas en formato YYYY-MM-DD; CurrentDate vacío usa la fecha del servidor.
type DrawbackRequest struct {
	ActNumber            string             `json:"act_number"`
	Modality             string             `json:"modality"`
	NCM                  string             `json:"ncm,omitempty"`
	FinalProduct         string             `json:"final_product,omitempty"`
	TechnicalCoefficient decimal.Decimal    `json:"technical_coefficient"`
	AuthorizedQuantity   decimal.Decimal    `json:"authorized_quantity"`
	AuthorizedValue      decimal.Decimal    `json:"authorized_value"`
	StartDate            string             `json:"start_date"`
	EndDate              string             `json:"end_date"`
	CurrentDate          string             `json:"current_date,omitempty"`
	ImportedQuantity     decimal.Decimal    `json:"imported_quantity"`
	ImportedValue        decimal.Decimal    `json:"imported_value"`
	ExportedQuantity     decimal.Decimal    `json:"exported_quantity"`
	Rates                TaxRatesRequest    `json:"rates"`
	Taxes                []TaxAmountRequest `json:"taxes,omitempty"`
}

// DrawbackResponse resultado del régimen (RegimeResult).
// ComplianceRatio no se limita a 100: valores mayores indican sobrecumplimiento.
type DrawbackResponse struct {
	CalculationID      string            `json:"calculation_id"`
	ActNumber          string            `json:"act_number"`
	Modality           string            `json:"modality"`
	CurrentDate        string            `json:"current_date"`
	EligibleTaxes      []string          `json:"eligible_taxes"`
	Taxes              []TaxLineResponse `json:"taxes"`
	BenefitedTaxes     []TaxLineResponse `json:"benefited_taxes"`
	NotBenefitedTaxes  []TaxLineResponse `json:"not_benefited_taxes"`
	BenefitedAmount    decimal.Decimal   `json:"benefited_amount"`
	NotBenefitedAmount decimal.Decimal   `json:"not_benefited_amount"`
	ComplianceRatio    decimal.Decimal   `json:"compliance_ratio"`
	RemainingQuantity  decimal.Decimal   `json:"remaining_quantity"`
	RemainingValue     decimal.Decimal   `json:"remaining_value"`
	DaysRemaining      int               `json:"days_remaining"`
	Status             string            `json:"status"`
}

// RulesResponse tabla modalidad → tributos activa.
type RulesResponse struct {
	Rules map[string][]string `json:"rules"`
}
