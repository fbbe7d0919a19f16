package recommend

import "akcayapi/internal/catalog"

// Signals is the matcher output: every criterion of the active wizard
// resolved against the Selection, plus the cross-criteria unions.
type Signals struct {
	// Resolved holds the chosen option per criterion key. Criteria the
	// Selection does not answer, or answers with a value the criterion
	// does not define, are simply absent.
	Resolved map[string]catalog.Option

	// MaterialIDs is the union of endorsed material ids across all
	// resolved options, deduplicated, first-seen order preserved.
	MaterialIDs []string

	// Categories is the same union over endorsed product categories.
	Categories []catalog.Category

	// WindFactor is the highest environmental factor among resolved
	// options, floored at 1.
	WindFactor float64
}

// Match resolves a Selection against the ordered criteria list.
// Unknown values are skipped, never fatal: the composer tolerates
// partial signals. The union (not intersection) of endorsements is
// collected deliberately — an empty "no valid match" result is worse
// for the customer than a broader one.
func Match(criteria []catalog.Criterion, sel Selection) Signals {
	sig := Signals{
		Resolved:   make(map[string]catalog.Option, len(criteria)),
		WindFactor: 1,
	}

	seenMat := make(map[string]bool)
	seenCat := make(map[catalog.Category]bool)

	for _, crit := range criteria {
		value, answered := sel[crit.Key]
		if !answered {
			continue
		}
		opt, ok := crit.Option(value)
		if !ok {
			// invalid selection value: skip this criterion's contribution
			continue
		}
		sig.Resolved[crit.Key] = opt

		for _, id := range opt.Materials {
			if !seenMat[id] {
				seenMat[id] = true
				sig.MaterialIDs = append(sig.MaterialIDs, id)
			}
		}
		for _, cat := range opt.Categories {
			if !seenCat[cat] {
				seenCat[cat] = true
				sig.Categories = append(sig.Categories, cat)
			}
		}
		if opt.WindFactor > sig.WindFactor {
			sig.WindFactor = opt.WindFactor
		}
	}

	return sig
}
