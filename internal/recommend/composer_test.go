package recommend

import (
	"reflect"
	"testing"

	"akcayapi/internal/catalog"
)

func testService(t *testing.T) *Service {
	t.Helper()
	store, err := catalog.NewDefault()
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	return NewService(store)
}

func materialIDs(rec Recommendation) []string {
	ids := make([]string, 0, len(rec.Materials))
	for _, m := range rec.Materials {
		ids = append(ids, m.ID)
	}
	return ids
}

func TestCatOwnerGetsPetMaterials(t *testing.T) {
	service := testService(t)

	rec := service.Compute(Selection{
		catalog.CriterionPetOwnership:   "cat",
		catalog.CriterionFloorLevel:     "ground",
		catalog.CriterionUsageFrequency: "low",
		catalog.CriterionAllergyStatus:  "none",
	})

	want := []string{"petscreen-vinyl", "tuffscreen-heavy"}
	if got := materialIDs(rec); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected pet materials %v, got %v", want, got)
	}
}

func TestSevereAllergyOverridesPetSignal(t *testing.T) {
	service := testService(t)

	allergyOnly := service.Compute(Selection{
		catalog.CriterionAllergyStatus: "severe",
	})
	withPet := service.Compute(Selection{
		catalog.CriterionPetOwnership:  "cat",
		catalog.CriterionAllergyStatus: "severe",
	})

	if !reflect.DeepEqual(materialIDs(withPet), materialIDs(allergyOnly)) {
		t.Fatalf("pet signal altered allergy-first materials: %v vs %v",
			materialIDs(withPet), materialIDs(allergyOnly))
	}
	if got := materialIDs(withPet); !reflect.DeepEqual(got, []string{"poll-tex-allergy"}) {
		t.Fatalf("expected allergy mesh only, got %v", got)
	}
}

func TestEmptySelectionDegradesToDefaults(t *testing.T) {
	service := testService(t)

	rec := service.Compute(Selection{})

	want := []string{"standard-fiberglass", "nano-clear-antidust"}
	if got := materialIDs(rec); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected default pair %v, got %v", want, got)
	}
	if len(rec.Products) != 0 {
		t.Fatalf("expected no products without a floor-level answer, got %d", len(rec.Products))
	}
	if rec.WindFactor != 1 {
		t.Fatalf("expected wind factor 1, got %v", rec.WindFactor)
	}
	if len(rec.Reasons) != 0 {
		t.Fatalf("expected no reasons, got %v", rec.Reasons)
	}
}

func TestNilSelectionDoesNotPanic(t *testing.T) {
	service := testService(t)

	rec := service.Compute(nil)
	if len(rec.Materials) == 0 {
		t.Fatalf("nil selection must still yield the default bundle")
	}
}

func TestProductsComeFromFloorLevelCappedAtTwo(t *testing.T) {
	service := testService(t)

	// "low" floor endorses plise + surme; the catalog declares two
	// plise products first, so only those surface.
	rec := service.Compute(Selection{
		catalog.CriterionFloorLevel: "low",
	})

	if len(rec.Products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(rec.Products))
	}
	if rec.Products[0].ID != "plise-dikey" || rec.Products[1].ID != "plise-yatay" {
		t.Fatalf("catalog order not honored: %s, %s", rec.Products[0].ID, rec.Products[1].ID)
	}
}

func TestReasonsAreAdditive(t *testing.T) {
	service := testService(t)

	rec := service.Compute(Selection{
		catalog.CriterionPetOwnership:   "dog",
		catalog.CriterionFloorLevel:     "high",
		catalog.CriterionUsageFrequency: "constant",
		catalog.CriterionAllergyStatus:  "mild",
	})

	if len(rec.Reasons) != 4 {
		t.Fatalf("expected all 4 reasons, got %d: %v", len(rec.Reasons), rec.Reasons)
	}
}

func TestGroundFloorLowUsageYieldsNoReasons(t *testing.T) {
	service := testService(t)

	rec := service.Compute(Selection{
		catalog.CriterionPetOwnership:   "none",
		catalog.CriterionFloorLevel:     "ground",
		catalog.CriterionUsageFrequency: "low",
		catalog.CriterionAllergyStatus:  "none",
	})

	if len(rec.Reasons) != 0 {
		t.Fatalf("expected no reasons, got %v", rec.Reasons)
	}
}
