package quote

import (
	"errors"
	"math"

	"akcayapi/internal/catalog"
)

// ErrUnknownCategory is returned when no price table exists for the
// requested category.
var ErrUnknownCategory = errors.New("unknown pricing category")

// Input bounds enforced by ClampInput before the engine runs.
const (
	MinQuantity    = 1
	MaxQuantity    = 20
	MinDimensionCM = 30
	MaxDimensionCM = 300
)

// Engine is the pure price calculator. It holds only the read-only
// catalog and no per-request state: the same Input always produces the
// same Result.
type Engine struct {
	store *catalog.Store
}

func NewEngine(store *catalog.Store) *Engine {
	return &Engine{store: store}
}

// Compute turns an Input into a Result.
//
// Precondition: in.Quantity >= 1. The input layer clamps quantities
// before calling; the engine does not defend against zero or negative
// counts. Non-positive dimensions are floored to zero area so a bad
// measurement can never produce a negative price.
func (e *Engine) Compute(in Input) (Result, error) {
	pricing, ok := e.store.PricingForCategory(in.Category)
	if !ok {
		return Result{}, ErrUnknownCategory
	}

	area := 0.0
	if in.WidthCM > 0 && in.HeightCM > 0 {
		area = (in.WidthCM / 100) * (in.HeightCM / 100)
	}

	meshDelta := 0.0
	meshLabel := ""
	if u, ok := pricing.Upgrade(in.MaterialID); ok {
		meshDelta = u.AddPerSquareMeter
		meshLabel = u.Name
	}

	qty := float64(in.Quantity)
	minUnit := (pricing.BasePerSquareMeter.Min + meshDelta) * area
	maxUnit := (pricing.BasePerSquareMeter.Max + meshDelta) * area

	install := 0.0
	if in.IncludeInstallation {
		// flat rate per unit: labor scales with fittings, not area
		install = pricing.InstallationFee * qty
	}

	res := Result{
		AreaSquareMeters: area,
		MinTotal:         int(math.Round(minUnit*qty + install)),
		MaxTotal:         int(math.Round(maxUnit*qty + install)),
		InstallationCost: install,
	}

	res.Lines = append(res.Lines, Line{
		Label: pricing.Name,
		Min:   pricing.BasePerSquareMeter.Min * area * qty,
		Max:   pricing.BasePerSquareMeter.Max * area * qty,
	})
	if meshDelta > 0 {
		res.Lines = append(res.Lines, Line{
			Label: meshLabel,
			Min:   meshDelta * area * qty,
			Max:   meshDelta * area * qty,
		})
	}
	if in.IncludeInstallation {
		res.Lines = append(res.Lines, Line{Label: "Montaj", Min: install, Max: install})
	}

	return res, nil
}

// ClampInput bounds the user-editable fields to the ranges the form
// allows, upholding the engine's quantity precondition.
func ClampInput(in Input) Input {
	if in.Quantity < MinQuantity {
		in.Quantity = MinQuantity
	}
	if in.Quantity > MaxQuantity {
		in.Quantity = MaxQuantity
	}
	in.WidthCM = clampDimension(in.WidthCM)
	in.HeightCM = clampDimension(in.HeightCM)
	return in
}

func clampDimension(cm float64) float64 {
	if cm < MinDimensionCM {
		return MinDimensionCM
	}
	if cm > MaxDimensionCM {
		return MaxDimensionCM
	}
	return cm
}
