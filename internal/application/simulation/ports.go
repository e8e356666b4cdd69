package simulation

import (
	"context"
	"time"

	"github.com/jhoicas/comex-api/internal/application/dto"
)

// Cache memoiza resultados serializados por huella de la entrada.
// Un fallo de la caché nunca invalida el cálculo: el use case lo registra y sigue.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// Renderer produce una representación del resultado (PDF, XML).
type Renderer interface {
	ContentType() string
	RenderCost(ctx context.Context, res *dto.CostResponse) ([]byte, error)
	RenderDrawback(ctx context.Context, res *dto.DrawbackResponse) ([]byte, error)
}
