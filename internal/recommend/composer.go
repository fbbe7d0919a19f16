package recommend

import "akcayapi/internal/catalog"

// Baseline material pair used when neither allergy nor pet ownership
// dictates the mesh choice.
var defaultMaterialIDs = []string{"standard-fiberglass", "nano-clear-antidust"}

// At most this many products are surfaced, in catalog order.
const maxProducts = 2

// Wind factor at or above which the high-wind justification is shown.
const highWindThreshold = 3

// Compose turns matcher signals into the final recommendation.
//
// Material priority, in order: a severe allergy answer wins outright
// (respiratory safety outranks durability), then any pet ownership,
// then the baseline pair. Product categories come from the floor-level
// answer alone. Compose never fails: missing signals degrade to the
// defaults.
func Compose(store *catalog.Store, sig Signals) Recommendation {
	rec := Recommendation{WindFactor: sig.WindFactor}

	allergy, hasAllergy := sig.Resolved[catalog.CriterionAllergyStatus]
	pet, hasPet := sig.Resolved[catalog.CriterionPetOwnership]
	floor, hasFloor := sig.Resolved[catalog.CriterionFloorLevel]
	usage, hasUsage := sig.Resolved[catalog.CriterionUsageFrequency]

	var materialIDs []string
	switch {
	case hasAllergy && allergy.Value == "severe":
		materialIDs = allergy.Materials
	case hasPet && pet.Value != "none":
		materialIDs = pet.Materials
	default:
		materialIDs = defaultMaterialIDs
	}

	for _, id := range materialIDs {
		if m, ok := store.Material(id); ok {
			rec.Materials = append(rec.Materials, m)
		}
	}

	// Products come from the floor-level answer alone; without it the
	// list stays empty and the caller decides whether to prompt for the
	// rest of the wizard.
	if hasFloor && len(floor.Categories) > 0 {
		wanted := make(map[catalog.Category]bool, len(floor.Categories))
		for _, cat := range floor.Categories {
			wanted[cat] = true
		}
		for _, p := range store.Products() {
			if !wanted[p.Category] {
				continue
			}
			rec.Products = append(rec.Products, p)
			if len(rec.Products) == maxProducts {
				break
			}
		}
	}

	// Justifications are additive and independent of the ranking above.
	if hasPet && pet.Value != "none" {
		rec.Reasons = append(rec.Reasons, "Evcil hayvanınız için dayanıklı tül gerekli")
	}
	if hasAllergy && allergy.Value != "none" {
		rec.Reasons = append(rec.Reasons, "Alerji koruması için özel filtre tül öneriliyor")
	}
	if sig.WindFactor >= highWindThreshold {
		rec.Reasons = append(rec.Reasons, "Yüksek kat için rüzgara dayanıklı sistem öneriliyor")
	}
	if hasUsage && (usage.Value == "high" || usage.Value == "constant") {
		rec.Reasons = append(rec.Reasons, "Yoğun kullanım için dayanıklı mekanizma gerekli")
	}

	return rec
}
