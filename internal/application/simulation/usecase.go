package simulation

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jhoicas/comex-api/internal/application/dto"
	"github.com/jhoicas/comex-api/internal/domain"
	"github.com/jhoicas/comex-api/internal/domain/drawback"
	"github.com/jhoicas/comex-api/internal/domain/importcost"
	"github.com/jhoicas/comex-api/pkg/logger"
)

// Escenarios expuestos (también usados como prefijo de la huella).
const (
	ScenarioAir        = "air"
	ScenarioSea        = "sea"
	ScenarioSimplified = "simplified"
	ScenarioDrawback   = "drawback"
)

// UseCase orquesta normalización, cálculo tributario y régimen de drawback.
// Sin estado mutable propio: la tabla de reglas es de solo lectura y la caché es opcional.
type UseCase struct {
	rules *drawback.RuleTable
	// drawbackScope prefijo de huella del drawback: incluye la tabla activa, de modo que
	// una caché compartida nunca sirva un beneficio calculado con otra tabla.
	drawbackScope string
	cache Cache
	ttl   time.Duration
	now   func() time.Time
	log   *logger.Logger
}

// Option configura dependencias opcionales del UseCase.
type Option func(*UseCase)

// WithCache activa la memoización de resultados.
func WithCache(c Cache, ttl time.Duration) Option {
	return func(uc *UseCase) {
		uc.cache = c
		uc.ttl = ttl
	}
}

// WithClock reemplaza el reloj usado cuando el drawback no trae fecha de referencia.
func WithClock(now func() time.Time) Option {
	return func(uc *UseCase) { uc.now = now }
}

// WithLogger inyecta el logger.
func WithLogger(l *logger.Logger) Option {
	return func(uc *UseCase) { uc.log = l }
}

// NewUseCase construye el caso de uso. rules nil usa la tabla legal por defecto.
func NewUseCase(rules *drawback.RuleTable, opts ...Option) *UseCase {
	if rules == nil {
		rules = drawback.DefaultRuleTable()
	}
	uc := &UseCase{
		rules:         rules,
		drawbackScope: ScenarioDrawback + "\n" + rules.String(),
		now:           time.Now,
		log:           logger.Nop(),
	}
	for _, o := range opts {
		o(uc)
	}
	return uc
}

// SimulateAir costo de importación aérea.
func (uc *UseCase) SimulateAir(ctx context.Context, req dto.AirImportRequest) (*dto.CostResponse, error) {
	return memo(ctx, uc, ScenarioAir, ScenarioAir, req, func(id string) (*dto.CostResponse, error) {
		in, err := airInput(req)
		if err != nil {
			return nil, err
		}
		b, err := importcost.AirImport(in)
		if err != nil {
			return nil, err
		}
		return toCostResponse(id, req.Product, req.NCM, b), nil
	})
}

// SimulateSea costo de importación marítima.
func (uc *UseCase) SimulateSea(ctx context.Context, req dto.SeaImportRequest) (*dto.CostResponse, error) {
	return memo(ctx, uc, ScenarioSea, ScenarioSea, req, func(id string) (*dto.CostResponse, error) {
		in, err := seaInput(req)
		if err != nil {
			return nil, err
		}
		b, err := importcost.SeaImport(in)
		if err != nil {
			return nil, err
		}
		return toCostResponse(id, req.Product, req.NCM, b), nil
	})
}

// SimulateSimplified costo de importación simplificada (courier / RTS).
func (uc *UseCase) SimulateSimplified(ctx context.Context, req dto.SimplifiedImportRequest) (*dto.CostResponse, error) {
	return memo(ctx, uc, ScenarioSimplified, ScenarioSimplified, req, func(id string) (*dto.CostResponse, error) {
		in, err := simplifiedInput(req)
		if err != nil {
			return nil, err
		}
		b, err := importcost.SimplifiedImport(in)
		if err != nil {
			return nil, err
		}
		return toCostResponse(id, req.Product, "", b), nil
	})
}

// EvaluateDrawback evalúa el acto concesorio. Sin current_date usa la fecha del reloj,
// que pasa a formar parte de la huella.
func (uc *UseCase) EvaluateDrawback(ctx context.Context, req dto.DrawbackRequest) (*dto.DrawbackResponse, error) {
	if req.CurrentDate == "" {
		req.CurrentDate = uc.now().Format(time.DateOnly)
	}
	return memo(ctx, uc, ScenarioDrawback, uc.drawbackScope, req, func(id string) (*dto.DrawbackResponse, error) {
		act, mv, lines, today, err := drawbackInput(req)
		if err != nil {
			return nil, err
		}
		res, err := drawback.Evaluate(uc.rules, act, mv, lines, today)
		if err != nil {
			return nil, err
		}
		return toDrawbackResponse(id, act.Number, today, lines, res), nil
	})
}

// Rules tabla modalidad → tributos activa.
func (uc *UseCase) Rules() dto.RulesResponse {
	snap := uc.rules.Snapshot()
	out := make(map[string][]string, len(snap))
	for m, ids := range snap {
		names := make([]string, 0, len(ids))
		for _, id := range ids {
			names = append(names, string(id))
		}
		out[string(m)] = names
	}
	return dto.RulesResponse{Rules: out}
}

// memo calcula el id determinista sobre scope y la entrada, consulta la caché y, si no hay
// acierto, ejecuta compute. Los errores de validación nunca se memoizan.
func memo[T any](ctx context.Context, uc *UseCase, scenario, scope string, req any, compute func(id string) (*T, error)) (*T, error) {
	id, err := Fingerprint(scope, req)
	if err != nil {
		return nil, err
	}
	log := uc.log.WithScenario(scenario)

	if uc.cache != nil {
		raw, ok, err := uc.cache.Get(ctx, id)
		switch {
		case err != nil:
			log.Warn().Err(err).Str("calculation_id", id).Msg("cache get falló")
		case ok:
			var cached T
			if err := json.Unmarshal(raw, &cached); err == nil {
				log.Debug().Str("calculation_id", id).Msg("cache hit")
				return &cached, nil
			}
			log.Warn().Str("calculation_id", id).Msg("entrada de cache corrupta, se recalcula")
		}
	}

	res, err := compute(id)
	if err != nil {
		if domain.IsValidation(err) {
			log.Debug().Err(err).Msg("entrada rechazada")
		} else {
			log.Error().Err(err).Msg("cálculo falló")
		}
		return nil, fmt.Errorf("simulation %s: %w", scenario, err)
	}
	log.Info().Str("calculation_id", id).Msg("cálculo completado")

	if uc.cache != nil {
		raw, err := json.Marshal(res)
		if err == nil {
			err = uc.cache.Set(ctx, id, raw, uc.ttl)
		}
		if err != nil {
			log.Warn().Err(err).Str("calculation_id", id).Msg("cache set falló")
		}
	}
	return res, nil
}
