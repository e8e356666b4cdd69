package simulation

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// namespace UUID v5 de las simulaciones.
var namespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://comex-api/simulations"))

// Fingerprint id determinista (UUID v5) del escenario y su entrada canónica (JSON).
// Mismas entradas producen el mismo id, sin reloj ni aleatoriedad.
func Fingerprint(scenario string, req any) (string, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("simulation: serializar entrada: %w", err)
	}
	data := append([]byte(scenario+"\n"), payload...)
	return uuid.NewSHA1(namespace, data).String(), nil
}
