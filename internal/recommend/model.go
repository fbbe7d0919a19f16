package recommend

import "akcayapi/internal/catalog"

// Selection maps criterion key -> chosen option value. One Selection
// exists per wizard session.
type Selection map[string]string

// Recommendation is the computed bundle shown after the wizard. It is
// derived fresh from a Selection and the catalog, never cached or
// partially mutated.
type Recommendation struct {
	Materials  []catalog.Material `json:"materials"`
	Products   []catalog.Product  `json:"products"`
	WindFactor float64            `json:"wind_factor"`
	Reasons    []string           `json:"reasons"`
}
