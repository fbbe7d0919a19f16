package quote

import (
	"errors"
	"reflect"
	"testing"

	"akcayapi/internal/catalog"
)

func testEngine(t *testing.T) *Engine {
	t.Helper()
	store, err := catalog.NewDefault()
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	return NewEngine(store)
}

func TestPliseQuoteWithInstallation(t *testing.T) {
	engine := testEngine(t)

	res, err := engine.Compute(Input{
		Category:            catalog.CategoryPlise,
		WidthCM:             100,
		HeightCM:            200,
		Quantity:            1,
		MaterialID:          "standard-fiberglass", // delta 0
		IncludeInstallation: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.AreaSquareMeters != 2.0 {
		t.Fatalf("expected area 2.00, got %v", res.AreaSquareMeters)
	}
	// 850*2 + 150 = 1850
	if res.MinTotal != 1850 {
		t.Fatalf("expected min 1850, got %d", res.MinTotal)
	}
	if res.MaxTotal != 2550 {
		t.Fatalf("expected max 2550, got %d", res.MaxTotal)
	}
	if res.InstallationCost != 150 {
		t.Fatalf("expected installation 150, got %v", res.InstallationCost)
	}
}

func TestPliseQuoteQuantityThreeWithoutInstallation(t *testing.T) {
	engine := testEngine(t)

	res, err := engine.Compute(Input{
		Category:            catalog.CategoryPlise,
		WidthCM:             100,
		HeightCM:            200,
		Quantity:            3,
		MaterialID:          "standard-fiberglass",
		IncludeInstallation: false,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.MinTotal != 5100 {
		t.Fatalf("expected min 5100, got %d", res.MinTotal)
	}
	if res.MaxTotal != 7200 {
		t.Fatalf("expected max 7200, got %d", res.MaxTotal)
	}
	if res.InstallationCost != 0 {
		t.Fatalf("expected no installation cost, got %v", res.InstallationCost)
	}
}

func TestMeshUpgradeDeltaApplies(t *testing.T) {
	engine := testEngine(t)

	res, err := engine.Compute(Input{
		Category:            catalog.CategoryPlise,
		WidthCM:             100,
		HeightCM:            200,
		Quantity:            1,
		MaterialID:          "poll-tex-allergy", // +350/m²
		IncludeInstallation: false,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// (850+350)*2 = 2400, (1200+350)*2 = 3100
	if res.MinTotal != 2400 || res.MaxTotal != 3100 {
		t.Fatalf("expected 2400/3100, got %d/%d", res.MinTotal, res.MaxTotal)
	}
}

func TestQuoteIsIdempotent(t *testing.T) {
	engine := testEngine(t)

	in := Input{
		Category:            catalog.CategoryKedi,
		WidthCM:             120,
		HeightCM:            180,
		Quantity:            2,
		MaterialID:          "steel-reinforced",
		IncludeInstallation: true,
	}

	first, err := engine.Compute(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := engine.Compute(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("same input produced different results:\n%v\n%v", first, second)
	}
}

func TestQuoteMonotonicInQuantity(t *testing.T) {
	engine := testEngine(t)

	prevMin, prevMax := 0, 0
	for qty := MinQuantity; qty <= MaxQuantity; qty++ {
		res, err := engine.Compute(Input{
			Category:            catalog.CategoryStor,
			WidthCM:             90,
			HeightCM:            150,
			Quantity:            qty,
			MaterialID:          "premium-polyester",
			IncludeInstallation: true,
		})
		if err != nil {
			t.Fatalf("qty %d: %v", qty, err)
		}
		if res.MinTotal < prevMin || res.MaxTotal < prevMax {
			t.Fatalf("totals decreased at qty %d", qty)
		}
		prevMin, prevMax = res.MinTotal, res.MaxTotal
	}
}

func TestQuoteMinNeverExceedsMax(t *testing.T) {
	store, err := catalog.NewDefault()
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	engine := NewEngine(store)

	for _, cat := range store.Categories() {
		pricing, _ := store.PricingForCategory(cat)
		for _, u := range pricing.MeshUpgrades {
			for _, dims := range [][2]float64{{30, 30}, {100, 200}, {300, 300}} {
				res, err := engine.Compute(Input{
					Category:            cat,
					WidthCM:             dims[0],
					HeightCM:            dims[1],
					Quantity:            5,
					MaterialID:          u.MaterialID,
					IncludeInstallation: true,
				})
				if err != nil {
					t.Fatalf("%s/%s: %v", cat, u.MaterialID, err)
				}
				if res.MinTotal > res.MaxTotal {
					t.Fatalf("%s/%s %vx%v: min %d above max %d",
						cat, u.MaterialID, dims[0], dims[1], res.MinTotal, res.MaxTotal)
				}
			}
		}
	}
}

func TestNonPositiveDimensionsFloorAreaAtZero(t *testing.T) {
	engine := testEngine(t)

	res, err := engine.Compute(Input{
		Category:            catalog.CategoryPlise,
		WidthCM:             -40,
		HeightCM:            200,
		Quantity:            1,
		IncludeInstallation: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.AreaSquareMeters != 0 {
		t.Fatalf("expected zero area, got %v", res.AreaSquareMeters)
	}
	// only the flat installation fee remains
	if res.MinTotal != 150 || res.MaxTotal != 150 {
		t.Fatalf("expected 150/150, got %d/%d", res.MinTotal, res.MaxTotal)
	}
}

func TestUnknownCategoryIsAnError(t *testing.T) {
	engine := testEngine(t)

	_, err := engine.Compute(Input{Category: "pergola", WidthCM: 100, HeightCM: 100, Quantity: 1})
	if !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}
}

func TestUnknownMaterialContributesZeroDelta(t *testing.T) {
	engine := testEngine(t)

	base, err := engine.Compute(Input{
		Category: catalog.CategoryPlise, WidthCM: 100, HeightCM: 200, Quantity: 1,
		MaterialID: "standard-fiberglass",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	unknown, err := engine.Compute(Input{
		Category: catalog.CategoryPlise, WidthCM: 100, HeightCM: 200, Quantity: 1,
		MaterialID: "unobtainium-mesh",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if unknown.MinTotal != base.MinTotal || unknown.MaxTotal != base.MaxTotal {
		t.Fatalf("unknown material changed totals: %d/%d vs %d/%d",
			unknown.MinTotal, unknown.MaxTotal, base.MinTotal, base.MaxTotal)
	}
}

func TestClampInput(t *testing.T) {
	in := ClampInput(Input{Quantity: 0, WidthCM: 10, HeightCM: 9000})
	if in.Quantity != MinQuantity {
		t.Fatalf("expected quantity clamped to %d, got %d", MinQuantity, in.Quantity)
	}
	if in.WidthCM != MinDimensionCM {
		t.Fatalf("expected width clamped to %d, got %v", MinDimensionCM, in.WidthCM)
	}
	if in.HeightCM != MaxDimensionCM {
		t.Fatalf("expected height clamped to %d, got %v", MaxDimensionCM, in.HeightCM)
	}

	in = ClampInput(Input{Quantity: 99, WidthCM: 100, HeightCM: 200})
	if in.Quantity != MaxQuantity {
		t.Fatalf("expected quantity clamped to %d, got %d", MaxQuantity, in.Quantity)
	}
}
