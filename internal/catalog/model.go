package catalog

// --------------------------------------------------
// PRODUCT CATALOG (READ-ONLY)
// --------------------------------------------------

// Category is the installation type of a fly screen system.
type Category string

const (
	CategoryPlise     Category = "plise"
	CategoryKedi      Category = "kedi"
	CategorySurme     Category = "surme"
	CategoryMenteseli Category = "menteseli"
	CategoryStor      Category = "stor"
)

// MaterialFamily groups mesh materials by base technology.
type MaterialFamily string

const (
	FamilyFiberglass     MaterialFamily = "fiberglass"
	FamilyPolyester      MaterialFamily = "polyester"
	FamilyVinylPolyester MaterialFamily = "vinyl_polyester"
	FamilySteel          MaterialFamily = "steel"
	FamilyNanoPolyester  MaterialFamily = "nano_polyester"
	FamilyElectrostatic  MaterialFamily = "electrostatic_polyester"
)

type FAQEntry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Product is a sellable system variant. Loaded once, never mutated.
type Product struct {
	ID          string     `json:"id"`
	Slug        string     `json:"slug"`
	Name        string     `json:"name"`
	Category    Category   `json:"category"`
	Tagline     string     `json:"tagline"`
	Description string     `json:"description"`
	Features    []string   `json:"features"`
	FAQ         []FAQEntry `json:"faq,omitempty"`
}

// Material is a selectable mesh upgrade.
type Material struct {
	ID                 string         `json:"id"`
	Name               string         `json:"name"`
	Family             MaterialFamily `json:"family"`
	MeshDensity        string         `json:"mesh_density,omitempty"`
	Durability         int            `json:"durability"` // 1-5
	Visibility         int            `json:"visibility"` // 1-5
	Airflow            int            `json:"airflow"`    // percentage
	StrengthMultiplier float64        `json:"strength_multiplier,omitempty"`
	PetResistant       bool           `json:"pet_resistant"`
	DustResistant      bool           `json:"dust_resistant"`
	PollenFilter       bool           `json:"pollen_filter"`
	PollenFilterRate   int            `json:"pollen_filter_rate,omitempty"`
	SelfCleaning       bool           `json:"self_cleaning,omitempty"`
	SecurityRated      bool           `json:"security_rated,omitempty"`
}

// --------------------------------------------------
// DECISION CRITERIA
// --------------------------------------------------

// Stable criterion keys used by the recommendation wizard.
const (
	CriterionPetOwnership   = "petOwnership"
	CriterionFloorLevel     = "floorLevel"
	CriterionUsageFrequency = "usageFrequency"
	CriterionAllergyStatus  = "allergyStatus"
)

// Option is one selectable answer of a Criterion, carrying its
// recommendation payload.
type Option struct {
	Value      string     `json:"value"`
	Label      string     `json:"label"`
	Materials  []string   `json:"materials,omitempty"`  // endorsed material ids
	Categories []Category `json:"categories,omitempty"` // endorsed product categories
	WindFactor float64    `json:"wind_factor,omitempty"`
}

// Criterion is one question of the decision wizard.
type Criterion struct {
	Key     string   `json:"key"`
	Label   string   `json:"label"`
	Options []Option `json:"options"`
}

// Option resolves an answer value to its Option by linear scan.
// The option lists are 3-4 entries long; a map buys nothing here.
func (c Criterion) Option(value string) (Option, bool) {
	for _, o := range c.Options {
		if o.Value == value {
			return o, true
		}
	}
	return Option{}, false
}

// --------------------------------------------------
// PRICING
// --------------------------------------------------

// PriceRange is a min/max band in currency units per square meter.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// MeshUpgrade is a per-category material choice with its price delta.
type MeshUpgrade struct {
	MaterialID        string  `json:"material_id"`
	Name              string  `json:"name"`
	AddPerSquareMeter float64 `json:"add_per_m2"`
}

// CategoryPricing is the price table for one installation category.
// InstallationFee is flat per unit, not per area: labor scales with
// trips and fittings, not surface.
type CategoryPricing struct {
	Category           Category      `json:"category"`
	Name               string        `json:"name"`
	BasePerSquareMeter PriceRange    `json:"base_per_m2"`
	InstallationFee    float64       `json:"installation_fee"`
	MeshUpgrades       []MeshUpgrade `json:"mesh_upgrades"`
}

// Upgrade resolves a material id to this category's upgrade entry.
func (p CategoryPricing) Upgrade(materialID string) (MeshUpgrade, bool) {
	for _, u := range p.MeshUpgrades {
		if u.MaterialID == materialID {
			return u, true
		}
	}
	return MeshUpgrade{}, false
}
