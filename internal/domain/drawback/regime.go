package drawback

import (
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/comex-api/internal/domain"
	"github.com/jhoicas/comex-api/internal/domain/tax"
	"github.com/shopspring/decimal"
)

// Status estado de plazo del acto concesorio.
type Status string

const (
	StatusRegular   Status = "Regular"   // más de 60 días
	StatusAttention Status = "Attention" // entre 1 y 60 días
	StatusExpired   Status = "Expired"   // vencido
)

// AttentionWindowDays umbral a partir del cual el acto pasa a Attention.
const AttentionWindowDays = 60

var hundred = decimal.NewFromInt(100)

// Act acto concesorio de drawback.
type Act struct {
	Number               string
	Modality             Modality
	NCM                  string
	FinalProduct         string
	TechnicalCoefficient decimal.Decimal
	AuthorizedQuantity   decimal.Decimal
	AuthorizedValue      decimal.Decimal
	Start                time.Time
	End                  time.Time
}

// Movement movimiento acumulado del acto.
type Movement struct {
	ImportedQuantity decimal.Decimal
	ImportedValue    decimal.Decimal
	ExportedQuantity decimal.Decimal
}

// Result resultado de evaluar el régimen. Se construye por evaluación y no se persiste.
type Result struct {
	Modality          Modality
	EligibleTaxes     []tax.ID
	Benefited         decimal.Decimal
	NotBenefited      decimal.Decimal
	BenefitedLines    []tax.Line
	NotBenefitedLines []tax.Line
	ComplianceRatio   decimal.Decimal
	RemainingQuantity decimal.Decimal
	RemainingValue    decimal.Decimal
	DaysRemaining     int
	Status            Status
}

const secondsPerDay = 24 * 60 * 60

// DaysRemaining días de calendario entre today y end (hora del día ignorada).
// Ambas fechas se llevan a medianoche UTC, así la diferencia es siempre múltiplo de un día.
func DaysRemaining(end, today time.Time) int {
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return int((e.Unix() - t.Unix()) / secondsPerDay)
}

// StatusFor: Regular si días > 60; Attention si 0 < días <= 60; Expired si días <= 0.
func StatusFor(daysRemaining int) Status {
	switch {
	case daysRemaining > AttentionWindowDays:
		return StatusRegular
	case daysRemaining > 0:
		return StatusAttention
	default:
		return StatusExpired
	}
}

// BenefitAmount suma las líneas cuyo tributo está en eligible. Las demás se devuelven
// aparte como no beneficiadas.
func BenefitAmount(lines []tax.Line, eligible Set) (benefited, notBenefited decimal.Decimal, in, out []tax.Line) {
	benefited, notBenefited = decimal.Zero, decimal.Zero
	in, out = []tax.Line{}, []tax.Line{}
	for _, l := range lines {
		if eligible.Has(l.ID) {
			benefited = benefited.Add(l.Amount)
			in = append(in, l)
			continue
		}
		notBenefited = notBenefited.Add(l.Amount)
		out = append(out, l)
	}
	return benefited, notBenefited, in, out
}

// ComplianceRatio = exported / imported * 100; 0 si imported <= 0.
// No se limita a 100: el sobrecumplimiento queda visible.
func ComplianceRatio(exportedQuantity, importedQuantity decimal.Decimal) decimal.Decimal {
	if !importedQuantity.IsPositive() {
		return decimal.Zero
	}
	return exportedQuantity.Div(importedQuantity).Mul(hundred)
}

// RemainingBalance = authorized - imported. Negativo indica sobreconsumo del acto.
func RemainingBalance(authorized, imported decimal.Decimal) decimal.Decimal {
	return authorized.Sub(imported)
}

// ValidateAct valida el acto en la frontera de entrada.
func ValidateAct(act Act) error {
	var errs []error
	if !act.Modality.Valid() {
		errs = append(errs, fmt.Errorf("%w: %q", domain.ErrUnknownModality, act.Modality))
	}
	if act.Start.IsZero() || act.End.IsZero() {
		errs = append(errs, fmt.Errorf("%w: fechas de inicio y fin obligatorias", domain.ErrInvalidDateRange))
	} else if act.End.Before(act.Start) {
		errs = append(errs, fmt.Errorf("%w: fin %s anterior al inicio %s", domain.ErrInvalidDateRange,
			act.End.Format(time.DateOnly), act.Start.Format(time.DateOnly)))
	}
	if act.AuthorizedQuantity.IsNegative() || act.AuthorizedValue.IsNegative() || act.TechnicalCoefficient.IsNegative() {
		errs = append(errs, fmt.Errorf("%w: valores autorizados negativos", domain.ErrInvalidQuantity))
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// ValidateMovement valida las cantidades del movimiento.
func ValidateMovement(mv Movement) error {
	if mv.ImportedQuantity.IsNegative() || mv.ExportedQuantity.IsNegative() || mv.ImportedValue.IsNegative() {
		return fmt.Errorf("%w: movimiento con valores negativos", domain.ErrInvalidQuantity)
	}
	return nil
}

// Evaluate arma el resultado del régimen para el acto, su movimiento y los tributos calculados.
func Evaluate(rules *RuleTable, act Act, mv Movement, lines []tax.Line, today time.Time) (Result, error) {
	if rules == nil {
		return Result{}, fmt.Errorf("drawback: %w: tabla de reglas nula", domain.ErrInvalidInput)
	}
	if err := errors.Join(ValidateAct(act), ValidateMovement(mv)); err != nil {
		return Result{}, fmt.Errorf("drawback: %w", err)
	}
	eligible, err := rules.EligibleTaxes(act.Modality)
	if err != nil {
		return Result{}, fmt.Errorf("drawback: %w", err)
	}
	benefited, notBenefited, in, out := BenefitAmount(lines, eligible)
	days := DaysRemaining(act.End, today)
	return Result{
		Modality:          act.Modality,
		EligibleTaxes:     eligible.IDs(),
		Benefited:         benefited,
		NotBenefited:      notBenefited,
		BenefitedLines:    in,
		NotBenefitedLines: out,
		ComplianceRatio:   ComplianceRatio(mv.ExportedQuantity, mv.ImportedQuantity),
		RemainingQuantity: RemainingBalance(act.AuthorizedQuantity, mv.ImportedQuantity),
		RemainingValue:    RemainingBalance(act.AuthorizedValue, mv.ImportedValue),
		DaysRemaining:     days,
		Status:            StatusFor(days),
	}, nil
}

// PotentialRates alícuotas (fracción) para los tributos potenciales sobre lo importado.
type PotentialRates struct {
	II     decimal.Decimal
	IPI    decimal.Decimal
	PIS    decimal.Decimal
	COFINS decimal.Decimal
	ICMS   decimal.Decimal
}

// PotentialTaxes tributos que el acto deja de recaudar sobre el valor importado:
// II, IPI sobre (valor + II), PIS, COFINS e ICMS simples sobre el valor.
func PotentialTaxes(importedValue decimal.Decimal, r PotentialRates) ([]tax.Line, error) {
	if importedValue.IsNegative() {
		return nil, fmt.Errorf("drawback: %w: valor importado negativo", domain.ErrInvalidQuantity)
	}
	c := tax.NewChain()
	c.Simple(tax.II, importedValue, r.II)
	c.Compounded(tax.IPI, importedValue, r.IPI, tax.II)
	c.Simple(tax.PIS, importedValue, r.PIS)
	c.Simple(tax.COFINS, importedValue, r.COFINS)
	c.Simple(tax.ICMS, importedValue, r.ICMS)
	if err := c.Err(); err != nil {
		return nil, fmt.Errorf("drawback: %w", err)
	}
	return c.Lines(), nil
}
