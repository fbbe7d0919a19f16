package quote

import "akcayapi/internal/catalog"

// Input is the live-updating quote form state. Mutated field-by-field
// by the caller; every change triggers a full recompute.
type Input struct {
	Category            catalog.Category `json:"category"`
	WidthCM             float64          `json:"width_cm"`
	HeightCM            float64          `json:"height_cm"`
	Quantity            int              `json:"quantity"`
	MaterialID          string           `json:"material_id"`
	IncludeInstallation bool             `json:"include_installation"`
}

// Line is one row of the itemized breakdown, as an unrounded per-order
// min/max band.
type Line struct {
	Label string  `json:"label"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
}

// Result is the computed estimate. A price indication, not a binding
// offer. Totals are rounded to whole currency units; the breakdown
// keeps the raw amounts.
type Result struct {
	AreaSquareMeters float64 `json:"area_m2"`
	MinTotal         int     `json:"min_total"`
	MaxTotal         int     `json:"max_total"`
	InstallationCost float64 `json:"installation_cost"`
	Lines            []Line  `json:"lines"`
}
