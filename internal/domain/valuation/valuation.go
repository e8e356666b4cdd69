// Package valuation normaliza cantidades y costos a una base de valoración común:
// peso tasable, FOB, seguro sobre base con flete y conversión de moneda. Funciones puras.
package valuation

import (
	"fmt"
	"strings"

	"github.com/jhoicas/comex-api/internal/domain"
	"github.com/shopspring/decimal"
)

// TransportMode modo de transporte del escenario.
type TransportMode string

const (
	ModeAir        TransportMode = "air"
	ModeSea        TransportMode = "sea"
	ModeSimplified TransportMode = "simplified"
)

// Divisores volumétricos (kg por m³).
var (
	// AirVolumetricDivisor relación IATA 1 m³ = 167 kg.
	AirVolumetricDivisor = decimal.NewFromInt(167)
	// SeaVolumetricDivisor regla W/M: 1 m³ = 1 t.
	SeaVolumetricDivisor = decimal.NewFromInt(1000)
)

// ParseTransportMode acepta air|sea|simplified sin distinguir mayúsculas.
func ParseTransportMode(s string) (TransportMode, error) {
	switch m := TransportMode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeAir, ModeSea, ModeSimplified:
		return m, nil
	default:
		return "", fmt.Errorf("%w: modo de transporte %q", domain.ErrInvalidInput, s)
	}
}

// VolumetricDivisorFor devuelve el divisor del modo. Las remesas simplificadas se tasan como aéreas.
func VolumetricDivisorFor(mode TransportMode) (decimal.Decimal, error) {
	switch mode {
	case ModeAir, ModeSimplified:
		return AirVolumetricDivisor, nil
	case ModeSea:
		return SeaVolumetricDivisor, nil
	default:
		return decimal.Zero, fmt.Errorf("%w: modo %q sin divisor", domain.ErrInvalidDivisor, mode)
	}
}

// ChargeableWeight = max(grossWeight, volume * divisor).
func ChargeableWeight(grossWeight, volume, divisor decimal.Decimal) (decimal.Decimal, error) {
	if !divisor.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: %s (debe ser > 0)", domain.ErrInvalidDivisor, divisor.String())
	}
	if grossWeight.IsNegative() || volume.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: peso o volumen negativo", domain.ErrInvalidQuantity)
	}
	return decimal.Max(grossWeight, volume.Mul(divisor)), nil
}

// FOB = quantity * unitPriceForeign.
func FOB(quantity, unitPriceForeign decimal.Decimal) (decimal.Decimal, error) {
	if quantity.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: cantidad %s", domain.ErrInvalidQuantity, quantity.String())
	}
	if unitPriceForeign.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: precio unitario %s", domain.ErrInvalidInput, unitPriceForeign.String())
	}
	return quantity.Mul(unitPriceForeign), nil
}

// InsuranceOnBase = base * insuranceRate. base ya incluye el flete (FOB + flete), nunca solo el FOB.
func InsuranceOnBase(base, insuranceRate decimal.Decimal) decimal.Decimal {
	return base.Mul(insuranceRate)
}

// Convert = amountForeign * exchangeRate. La tasa debe ser > 0.
func Convert(amountForeign, exchangeRate decimal.Decimal) (decimal.Decimal, error) {
	if !exchangeRate.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: tasa de cambio %s (debe ser > 0)", domain.ErrInvalidRate, exchangeRate.String())
	}
	return amountForeign.Mul(exchangeRate), nil
}

// EffectiveExchangeRate aplica el spread cambiario: rate * (1 + spread).
func EffectiveExchangeRate(rate, spread decimal.Decimal) (decimal.Decimal, error) {
	if !rate.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: tasa de cambio %s (debe ser > 0)", domain.ErrInvalidRate, rate.String())
	}
	if spread.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: spread %s negativo", domain.ErrInvalidRate, spread.String())
	}
	return rate.Mul(decimal.NewFromInt(1).Add(spread)), nil
}

// UnitCost = total / quantity. Sin unidades el costo unitario es 0 (política, no error).
func UnitCost(total, quantity decimal.Decimal) decimal.Decimal {
	if !quantity.IsPositive() {
		return decimal.Zero
	}
	return total.Div(quantity)
}
