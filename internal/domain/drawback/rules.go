// Package drawback implementa el motor del régimen aduanero especial de drawback:
// qué tributos beneficia cada modalidad, el monto del beneficio, el cumplimiento
// del compromiso de exportación y el estado de plazo del acto concesorio.
package drawback

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jhoicas/comex-api/internal/domain"
	"github.com/jhoicas/comex-api/internal/domain/tax"
)

// Modality modalidad del acto concesorio.
type Modality string

const (
	Suspension  Modality = "suspension"  // Suspensão
	Exemption   Modality = "exemption"   // Isenção
	Restitution Modality = "restitution" // Restituição
)

var knownModalities = []Modality{Suspension, Exemption, Restitution}

// Modalities devuelve las modalidades conocidas.
func Modalities() []Modality {
	out := make([]Modality, len(knownModalities))
	copy(out, knownModalities)
	return out
}

// Valid indica si la modalidad pertenece a la tabla fija.
func (m Modality) Valid() bool {
	for _, k := range knownModalities {
		if m == k {
			return true
		}
	}
	return false
}

// ParseModality acepta el nombre en inglés o en portugués (con o sin acento).
func ParseModality(s string) (Modality, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "suspension", "suspensao", "suspensão":
		return Suspension, nil
	case "exemption", "isencao", "isenção":
		return Exemption, nil
	case "restitution", "restituicao", "restituição":
		return Restitution, nil
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownModality, s)
	}
}

// DefaultRules tabla legal modalidad → tributos beneficiados.
func DefaultRules() map[Modality][]tax.ID {
	return map[Modality][]tax.ID{
		Suspension:  {tax.II, tax.IPI, tax.PIS, tax.COFINS},
		Exemption:   {tax.II, tax.IPI, tax.PIS, tax.COFINS},
		Restitution: {tax.II, tax.IPI},
	}
}

// Set conjunto de tributos.
type Set map[tax.ID]struct{}

// Has indica si id está en el conjunto.
func (s Set) Has(id tax.ID) bool {
	_, ok := s[id]
	return ok
}

// IDs devuelve los tributos en el orden de cálculo.
func (s Set) IDs() []tax.ID {
	out := make([]tax.ID, 0, len(s))
	for _, id := range tax.AllIDs() {
		if s.Has(id) {
			out = append(out, id)
		}
	}
	return out
}

// RuleTable tabla declarativa validada. Inmutable tras NewRuleTable.
type RuleTable struct {
	rules map[Modality]Set
}

// NewRuleTable valida la tabla: cada modalidad conocida presente, ninguna desconocida,
// tributos válidos y ningún conjunto vacío. Se llama al arrancar para fallar de inmediato.
func NewRuleTable(raw map[Modality][]tax.ID) (*RuleTable, error) {
	var errs []error
	rules := make(map[Modality]Set, len(raw))
	for m, ids := range raw {
		if !m.Valid() {
			errs = append(errs, fmt.Errorf("%w: %q en la tabla de reglas", domain.ErrUnknownModality, m))
			continue
		}
		if len(ids) == 0 {
			errs = append(errs, fmt.Errorf("%w: %s sin tributos beneficiados", domain.ErrInvalidInput, m))
			continue
		}
		set := make(Set, len(ids))
		for _, id := range ids {
			if !id.Valid() {
				errs = append(errs, fmt.Errorf("%w: %s tributo desconocido %q", domain.ErrInvalidInput, m, id))
				continue
			}
			set[id] = struct{}{}
		}
		rules[m] = set
	}
	for _, m := range knownModalities {
		if _, ok := raw[m]; !ok {
			errs = append(errs, fmt.Errorf("%w: falta la modalidad %s", domain.ErrInvalidInput, m))
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("drawback: tabla de reglas: %w", errors.Join(errs...))
	}
	return &RuleTable{rules: rules}, nil
}

// DefaultRuleTable construye la tabla legal por defecto.
func DefaultRuleTable() *RuleTable {
	t, err := NewRuleTable(DefaultRules())
	if err != nil {
		panic(err)
	}
	return t
}

// ParseRules interpreta "suspension=II,IPI,PIS,COFINS;exemption=...;restitution=II,IPI".
// El resultado debe pasar por NewRuleTable.
func ParseRules(s string) (map[Modality][]tax.ID, error) {
	out := make(map[Modality][]tax.ID)
	for _, entry := range strings.Split(s, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		name, list, ok := strings.Cut(entry, "=")
		if !ok {
			return nil, fmt.Errorf("%w: regla %q sin '='", domain.ErrInvalidInput, entry)
		}
		m, err := ParseModality(name)
		if err != nil {
			return nil, err
		}
		var ids []tax.ID
		for _, code := range strings.Split(list, ",") {
			if strings.TrimSpace(code) == "" {
				continue
			}
			id, err := tax.ParseID(code)
			if err != nil {
				return nil, err
			}
			ids = append(ids, id)
		}
		out[m] = ids
	}
	return out, nil
}

// RuleTableFromConfig construye la tabla desde DRAWBACK_RULES. Vacío usa la tabla legal por defecto.
func RuleTableFromConfig(raw string) (*RuleTable, error) {
	if strings.TrimSpace(raw) == "" {
		return DefaultRuleTable(), nil
	}
	parsed, err := ParseRules(raw)
	if err != nil {
		return nil, fmt.Errorf("drawback: DRAWBACK_RULES: %w", err)
	}
	return NewRuleTable(parsed)
}

// EligibleTaxes devuelve los tributos beneficiados por la modalidad.
func (t *RuleTable) EligibleTaxes(m Modality) (Set, error) {
	set, ok := t.rules[m]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownModality, m)
	}
	cp := make(Set, len(set))
	for id := range set {
		cp[id] = struct{}{}
	}
	return cp, nil
}

// Snapshot devuelve la tabla como mapa ordenado (modalidad → tributos) para exponerla.
func (t *RuleTable) Snapshot() map[Modality][]tax.ID {
	out := make(map[Modality][]tax.ID, len(t.rules))
	for m, set := range t.rules {
		out[m] = set.IDs()
	}
	return out
}

// String forma canónica de la tabla, en el formato de ParseRules:
// modalidades en orden alfabético y tributos en orden de cálculo.
func (t *RuleTable) String() string {
	parts := make([]string, 0, len(t.rules))
	for _, m := range t.SortedModalities() {
		ids := t.rules[m].IDs()
		names := make([]string, len(ids))
		for i, id := range ids {
			names[i] = string(id)
		}
		parts = append(parts, string(m)+"="+strings.Join(names, ","))
	}
	return strings.Join(parts, ";")
}

// SortedModalities modalidades de la tabla en orden alfabético.
func (t *RuleTable) SortedModalities() []Modality {
	out := make([]Modality, 0, len(t.rules))
	for m := range t.rules {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
