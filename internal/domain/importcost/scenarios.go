package importcost

import (
	"errors"
	"fmt"

	"github.com/jhoicas/comex-api/internal/domain"
	"github.com/jhoicas/comex-api/internal/domain/tax"
	"github.com/jhoicas/comex-api/internal/domain/valuation"
	"github.com/shopspring/decimal"
)

// AirInput importación aérea. Valores de mercadería y flete en USD, gastos en BRL, alícuotas en fracción.
type AirInput struct {
	Quantity      decimal.Decimal
	GrossWeightKg decimal.Decimal
	VolumeM3      decimal.Decimal
	UnitPriceUSD  decimal.Decimal
	FreightUSD    decimal.Decimal
	InsuranceRate decimal.Decimal
	ExchangeRate  decimal.Decimal
	SpreadRate    decimal.Decimal
	IOFRate       decimal.Decimal // IOF câmbio; 0 = sin línea IOF
	Rates         Rates
	Expenses      []Expense
}

// Validate rechaza la entrada completa antes de calcular.
func (in AirInput) Validate() error {
	errs := []error{
		nonNegative("quantity", in.Quantity, domain.ErrInvalidQuantity),
		nonNegative("gross_weight_kg", in.GrossWeightKg, domain.ErrInvalidQuantity),
		nonNegative("volume_m3", in.VolumeM3, domain.ErrInvalidQuantity),
		nonNegative("unit_price_usd", in.UnitPriceUSD, domain.ErrInvalidInput),
		nonNegative("freight_usd", in.FreightUSD, domain.ErrInvalidInput),
		nonNegative("insurance_rate", in.InsuranceRate, domain.ErrInvalidRate),
		nonNegative("spread_rate", in.SpreadRate, domain.ErrInvalidRate),
		nonNegative("iof_rate", in.IOFRate, domain.ErrInvalidRate),
		validateRates(in.Rates),
		validateExpenses(in.Expenses),
	}
	if !in.ExchangeRate.IsPositive() {
		errs = append(errs, fmt.Errorf("%w: exchange_rate debe ser > 0", domain.ErrInvalidRate))
	}
	return errors.Join(errs...)
}

// AirImport: peso tasable (1 m³ = 167 kg), FOB = cantidad * unitario, seguro sobre FOB + flete,
// CIF convertido a BRL, II/IPI/PIS/COFINS sobre el CIF e ICMS por dentro sobre CIF + tributos + gastos.
func AirImport(in AirInput) (CostBreakdown, error) {
	if err := in.Validate(); err != nil {
		return CostBreakdown{}, fmt.Errorf("importcost: aérea: %w", err)
	}
	weight, err := valuation.ChargeableWeight(in.GrossWeightKg, in.VolumeM3, valuation.AirVolumetricDivisor)
	if err != nil {
		return CostBreakdown{}, fmt.Errorf("importcost: aérea: %w", err)
	}
	fob, err := valuation.FOB(in.Quantity, in.UnitPriceUSD)
	if err != nil {
		return CostBreakdown{}, fmt.Errorf("importcost: aérea: %w", err)
	}
	insurance := valuation.InsuranceOnBase(fob.Add(in.FreightUSD), in.InsuranceRate)
	cifUSD := fob.Add(in.FreightUSD).Add(insurance)

	rate, err := valuation.EffectiveExchangeRate(in.ExchangeRate, in.SpreadRate)
	if err != nil {
		return CostBreakdown{}, fmt.Errorf("importcost: aérea: %w", err)
	}
	cifBRL, err := valuation.Convert(cifUSD, rate)
	if err != nil {
		return CostBreakdown{}, fmt.Errorf("importcost: aérea: %w", err)
	}
	cifBRL = cifBRL.Round(MoneyPlaces)
	expenses := roundExpenses(in.Expenses)

	c := tax.NewRoundedChain(MoneyPlaces)
	federalTaxes(c, cifBRL, in.Rates)
	c.GrossUp(tax.ICMS, cifBRL.Add(c.Total()).Add(SumExpenses(expenses)), in.Rates.ICMS)
	if in.IOFRate.IsPositive() {
		c.Simple(tax.IOF, cifBRL, in.IOFRate)
	}
	if err := c.Err(); err != nil {
		return CostBreakdown{}, fmt.Errorf("importcost: aérea: %w", err)
	}

	return finish(CostBreakdown{
		Mode:             valuation.ModeAir,
		Quantity:         in.Quantity,
		ChargeableWeight: weight,
		ExchangeRate:     rate,
		FOBForeign:       fob.Round(MoneyPlaces),
		FreightForeign:   in.FreightUSD.Round(MoneyPlaces),
		InsuranceForeign: insurance.Round(MoneyPlaces),
		CIFForeign:       cifUSD.Round(MoneyPlaces),
		CustomsValue:     cifBRL,
		Expenses:         expenses,
	}, c), nil
}

// SeaInput importación marítima. Todos los montos en BRL, alícuotas en fracción.
// AFRMMRate > 0 calcula el AFRMM sobre el flete; si no, se usa AFRMM declarado.
type SeaInput struct {
	Quantity      decimal.Decimal
	GrossWeightKg decimal.Decimal
	VolumeM3      decimal.Decimal
	GoodsValue    decimal.Decimal
	Freight       decimal.Decimal
	Insurance     decimal.Decimal
	AFRMM         decimal.Decimal
	AFRMMRate     decimal.Decimal
	Rates         Rates
	Expenses      []Expense
}

// Validate rechaza la entrada completa antes de calcular.
func (in SeaInput) Validate() error {
	return errors.Join(
		nonNegative("quantity", in.Quantity, domain.ErrInvalidQuantity),
		nonNegative("gross_weight_kg", in.GrossWeightKg, domain.ErrInvalidQuantity),
		nonNegative("volume_m3", in.VolumeM3, domain.ErrInvalidQuantity),
		nonNegative("goods_value", in.GoodsValue, domain.ErrInvalidInput),
		nonNegative("freight", in.Freight, domain.ErrInvalidInput),
		nonNegative("insurance", in.Insurance, domain.ErrInvalidInput),
		nonNegative("afrmm", in.AFRMM, domain.ErrInvalidInput),
		nonNegative("afrmm_rate", in.AFRMMRate, domain.ErrInvalidRate),
		validateRates(in.Rates),
		validateExpenses(in.Expenses),
	)
}

// SeaImport: valor aduaneiro = mercadería + flete + seguro; II/IPI/PIS/COFINS sobre ese valor;
// AFRMM; ICMS por dentro sobre valor aduaneiro + tributos federales + AFRMM.
func SeaImport(in SeaInput) (CostBreakdown, error) {
	if err := in.Validate(); err != nil {
		return CostBreakdown{}, fmt.Errorf("importcost: marítima: %w", err)
	}
	weight, err := valuation.ChargeableWeight(in.GrossWeightKg, in.VolumeM3, valuation.SeaVolumetricDivisor)
	if err != nil {
		return CostBreakdown{}, fmt.Errorf("importcost: marítima: %w", err)
	}
	customs := in.GoodsValue.Add(in.Freight).Add(in.Insurance).Round(MoneyPlaces)

	c := tax.NewRoundedChain(MoneyPlaces)
	federalTaxes(c, customs, in.Rates)
	if in.AFRMMRate.IsPositive() {
		c.Simple(tax.AFRMM, in.Freight, in.AFRMMRate)
	} else {
		c.Fixed(tax.AFRMM, in.AFRMM)
	}
	c.GrossUp(tax.ICMS, customs.Add(c.Total()), in.Rates.ICMS)
	if err := c.Err(); err != nil {
		return CostBreakdown{}, fmt.Errorf("importcost: marítima: %w", err)
	}

	return finish(CostBreakdown{
		Mode:             valuation.ModeSea,
		Quantity:         in.Quantity,
		ChargeableWeight: weight,
		ExchangeRate:     decimal.NewFromInt(1),
		FreightForeign:   in.Freight.Round(MoneyPlaces),
		InsuranceForeign: in.Insurance.Round(MoneyPlaces),
		FOBForeign:       in.GoodsValue.Round(MoneyPlaces),
		CIFForeign:       customs,
		CustomsValue:     customs,
		Expenses:         roundExpenses(in.Expenses),
	}, c), nil
}

// SimplifiedInput remesa expresa / DSI. Compra en USD; flete y seguro en BRL.
type SimplifiedInput struct {
	Quantity     decimal.Decimal
	PurchaseUSD  decimal.Decimal
	ExchangeRate decimal.Decimal
	Freight      decimal.Decimal
	Insurance    decimal.Decimal
	IIRate       decimal.Decimal
	ICMSRate     decimal.Decimal
	IOFRate      decimal.Decimal
}

// Validate rechaza la entrada completa antes de calcular.
func (in SimplifiedInput) Validate() error {
	errs := []error{
		nonNegative("quantity", in.Quantity, domain.ErrInvalidQuantity),
		nonNegative("purchase_usd", in.PurchaseUSD, domain.ErrInvalidInput),
		nonNegative("freight", in.Freight, domain.ErrInvalidInput),
		nonNegative("insurance", in.Insurance, domain.ErrInvalidInput),
		nonNegative("ii_rate", in.IIRate, domain.ErrInvalidRate),
		nonNegative("iof_rate", in.IOFRate, domain.ErrInvalidRate),
	}
	if err := tax.ValidateGrossUpRate(in.ICMSRate); err != nil {
		errs = append(errs, fmt.Errorf("%s: %w", tax.ICMS, err))
	}
	if !in.ExchangeRate.IsPositive() {
		errs = append(errs, fmt.Errorf("%w: exchange_rate debe ser > 0", domain.ErrInvalidRate))
	}
	return errors.Join(errs...)
}

// SimplifiedImport: valor en BRL = compra * cambio; VMLD = valor + flete + seguro;
// II sobre VMLD, ICMS por dentro sobre VMLD + II, IOF sobre el valor en BRL.
func SimplifiedImport(in SimplifiedInput) (CostBreakdown, error) {
	if err := in.Validate(); err != nil {
		return CostBreakdown{}, fmt.Errorf("importcost: simplificada: %w", err)
	}
	valueBRL, err := valuation.Convert(in.PurchaseUSD, in.ExchangeRate)
	if err != nil {
		return CostBreakdown{}, fmt.Errorf("importcost: simplificada: %w", err)
	}
	valueBRL = valueBRL.Round(MoneyPlaces)
	vmld := valueBRL.Add(in.Freight).Add(in.Insurance).Round(MoneyPlaces)

	c := tax.NewRoundedChain(MoneyPlaces)
	ii := c.Simple(tax.II, vmld, in.IIRate)
	c.GrossUp(tax.ICMS, vmld.Add(ii), in.ICMSRate)
	c.Simple(tax.IOF, valueBRL, in.IOFRate)
	if err := c.Err(); err != nil {
		return CostBreakdown{}, fmt.Errorf("importcost: simplificada: %w", err)
	}

	return finish(CostBreakdown{
		Mode:         valuation.ModeSimplified,
		Quantity:     in.Quantity,
		ExchangeRate: in.ExchangeRate,
		FOBForeign:   in.PurchaseUSD.Round(MoneyPlaces),
		CIFForeign:   in.PurchaseUSD.Round(MoneyPlaces),
		CustomsValue: vmld,
		Expenses:     []Expense{},
	}, c), nil
}
