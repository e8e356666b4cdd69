package dto

import "github.com/shopspring/decimal"

// Las alícuotas viajan como porcentaje 0–100; los montos como decimal (número o string).

// TaxRatesRequest alícuotas (%) de los tributos.
type TaxRatesRequest struct {
	II     decimal.Decimal `json:"ii"`
	IPI    decimal.Decimal `json:"ipi"`
	PIS    decimal.Decimal `json:"pis"`
	COFINS decimal.Decimal `json:"cofins"`
	ICMS   decimal.Decimal `json:"icms"`
}

// ExpenseRequest gasto accesorio en BRL. Kind: siscomex, broker, storage, awb_release,
// capatazia, terminal_fees, road_transport, other.
type ExpenseRequest struct {
	Kind   string          `json:"kind"`
	Amount decimal.Decimal `json:"amount"`
}

// AirImportRequest body para POST /api/simulations/air.
type AirImportRequest struct {
	Product          string           `json:"product,omitempty"`
	NCM              string           `json:"ncm,omitempty"`
	Quantity         decimal.Decimal  `json:"quantity"`
	GrossWeightKg    decimal.Decimal  `json:"gross_weight_kg"`
	VolumeM3         decimal.Decimal  `json:"volume_m3"`
	UnitPriceUSD     decimal.Decimal  `json:"unit_price_usd"`
	FreightUSD       decimal.Decimal  `json:"freight_usd"`
	InsurancePercent decimal.Decimal  `json:"insurance_percent"`
	ExchangeRate     decimal.Decimal  `json:"exchange_rate"`
	SpreadPercent    decimal.Decimal  `json:"spread_percent"`
	IOFPercent       decimal.Decimal  `json:"iof_percent"`
	Rates            TaxRatesRequest  `json:"rates"`
	Expenses         []ExpenseRequest `json:"expenses"`
}

// SeaImportRequest body para POST /api/simulations/sea. Montos en BRL.
type SeaImportRequest struct {
	Product       string           `json:"product,omitempty"`
	NCM           string           `json:"ncm,omitempty"`
	Quantity      decimal.Decimal  `json:"quantity"`
	GrossWeightKg decimal.Decimal  `json:"gross_weight_kg"`
	VolumeM3      decimal.Decimal  `json:"volume_m3"`
	GoodsValue    decimal.Decimal  `json:"goods_value"`
	Freight       decimal.Decimal  `json:"freight"`
	Insurance     decimal.Decimal  `json:"insurance"`
	AFRMM         decimal.Decimal  `json:"afrmm"`
	AFRMMPercent  decimal.Decimal  `json:"afrmm_percent"`
	Rates         TaxRatesRequest  `json:"rates"`
	Expenses      []ExpenseRequest `json:"expenses"`
}

// SimplifiedImportRequest body para POST /api/simulations/simplified.
type SimplifiedImportRequest struct {
	Product      string          `json:"product,omitempty"`
	Quantity     decimal.Decimal `json:"quantity"`
	PurchaseUSD  decimal.Decimal `json:"purchase_usd"`
	ExchangeRate decimal.Decimal `json:"exchange_rate"`
	Freight      decimal.Decimal `json:"freight"`
	Insurance    decimal.Decimal `json:"insurance"`
	IIPercent    decimal.Decimal `json:"ii_percent"`
	ICMSPercent  decimal.Decimal `json:"icms_percent"`
	IOFPercent   decimal.Decimal `json:"iof_percent"`
}

// TaxLineResponse tributo calculado.
type TaxLineResponse struct {
	ID          string          `json:"id"`
	Base        decimal.Decimal `json:"base"`
	RatePercent decimal.Decimal `json:"rate_percent"`
	Amount      decimal.Decimal `json:"amount"`
}

// ExpenseResponse gasto accesorio liquidado.
type ExpenseResponse struct {
	Kind   string          `json:"kind"`
	Amount decimal.Decimal `json:"amount"`
}

// CostResponse desglose de costo de importación (CostBreakdown).
// CalculationID es determinista: mismas entradas, mismo id.
type CostResponse struct {
	CalculationID      string            `json:"calculation_id"`
	Scenario           string            `json:"scenario"`
	Product            string            `json:"product,omitempty"`
	NCM                string            `json:"ncm,omitempty"`
	Quantity           decimal.Decimal   `json:"quantity"`
	ChargeableWeightKg decimal.Decimal   `json:"chargeable_weight_kg"`
	ExchangeRate       decimal.Decimal   `json:"exchange_rate"`
	FOBForeign         decimal.Decimal   `json:"fob_foreign"`
	FreightForeign     decimal.Decimal   `json:"freight_foreign"`
	InsuranceForeign   decimal.Decimal   `json:"insurance_foreign"`
	CIFForeign         decimal.Decimal   `json:"cif_foreign"`
	CustomsValue       decimal.Decimal   `json:"customs_value"`
	Taxes              []TaxLineResponse `json:"taxes"`
	Expenses           []ExpenseResponse `json:"expenses"`
	TotalTaxes         decimal.Decimal   `json:"total_taxes"`
	TotalExpenses      decimal.Decimal   `json:"total_expenses"`
	TotalCost          decimal.Decimal   `json:"total_cost"`
	UnitCost           decimal.Decimal   `json:"unit_cost"`
}
