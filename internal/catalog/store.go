package catalog

import "fmt"

// Store is the read-only catalog accessor. Constructed once at startup
// and shared by reference across concurrent requests; nothing in it is
// mutated after New returns.
type Store struct {
	products  []Product
	materials []Material
	criteria  []Criterion
	pricing   []CategoryPricing

	productBySlug  map[string]int
	materialByID   map[string]int
	criterionByKey map[string]int
	pricingByCat   map[Category]int
}

// New builds a Store from the given collections and validates the
// cross-references between them.
func New(products []Product, materials []Material, criteria []Criterion, pricing []CategoryPricing) (*Store, error) {
	s := &Store{
		products:       products,
		materials:      materials,
		criteria:       criteria,
		pricing:        pricing,
		productBySlug:  make(map[string]int, len(products)),
		materialByID:   make(map[string]int, len(materials)),
		criterionByKey: make(map[string]int, len(criteria)),
		pricingByCat:   make(map[Category]int, len(pricing)),
	}

	for i, m := range materials {
		if m.ID == "" {
			return nil, fmt.Errorf("material %d has empty id", i)
		}
		if _, dup := s.materialByID[m.ID]; dup {
			return nil, fmt.Errorf("duplicate material id %q", m.ID)
		}
		s.materialByID[m.ID] = i
	}

	for i, p := range products {
		if p.Slug == "" {
			return nil, fmt.Errorf("product %q has empty slug", p.ID)
		}
		if _, dup := s.productBySlug[p.Slug]; dup {
			return nil, fmt.Errorf("duplicate product slug %q", p.Slug)
		}
		s.productBySlug[p.Slug] = i
	}

	for i, c := range criteria {
		if _, dup := s.criterionByKey[c.Key]; dup {
			return nil, fmt.Errorf("duplicate criterion key %q", c.Key)
		}
		s.criterionByKey[c.Key] = i

		for _, o := range c.Options {
			for _, id := range o.Materials {
				if _, ok := s.materialByID[id]; !ok {
					return nil, fmt.Errorf("criterion %q option %q references unknown material %q", c.Key, o.Value, id)
				}
			}
		}
	}

	for i, p := range pricing {
		if _, dup := s.pricingByCat[p.Category]; dup {
			return nil, fmt.Errorf("duplicate pricing for category %q", p.Category)
		}
		if p.BasePerSquareMeter.Min > p.BasePerSquareMeter.Max {
			return nil, fmt.Errorf("pricing %q: base min above max", p.Category)
		}
		for _, u := range p.MeshUpgrades {
			if u.AddPerSquareMeter < 0 {
				return nil, fmt.Errorf("pricing %q: negative delta for %q", p.Category, u.MaterialID)
			}
			if _, ok := s.materialByID[u.MaterialID]; !ok {
				return nil, fmt.Errorf("pricing %q references unknown material %q", p.Category, u.MaterialID)
			}
		}
		s.pricingByCat[p.Category] = i
	}

	return s, nil
}

// NewDefault builds the Store from the built-in product line data.
func NewDefault() (*Store, error) {
	return New(defaultProducts(), defaultMaterials(), defaultCriteria(), defaultPricing())
}

// Criteria returns the wizard questions in their fixed order.
func (s *Store) Criteria() []Criterion {
	return s.criteria
}

// Criterion looks up a question by its stable key.
func (s *Store) Criterion(key string) (Criterion, bool) {
	i, ok := s.criterionByKey[key]
	if !ok {
		return Criterion{}, false
	}
	return s.criteria[i], true
}

// Products returns all products in catalog declaration order.
func (s *Store) Products() []Product {
	return s.products
}

// ProductsByCategory filters products, preserving declaration order.
func (s *Store) ProductsByCategory(cat Category) []Product {
	var out []Product
	for _, p := range s.products {
		if p.Category == cat {
			out = append(out, p)
		}
	}
	return out
}

// ProductBySlug looks up a product by URL slug.
func (s *Store) ProductBySlug(slug string) (Product, bool) {
	i, ok := s.productBySlug[slug]
	if !ok {
		return Product{}, false
	}
	return s.products[i], true
}

// Material looks up a mesh material by id.
func (s *Store) Material(id string) (Material, bool) {
	i, ok := s.materialByID[id]
	if !ok {
		return Material{}, false
	}
	return s.materials[i], true
}

// Materials returns all mesh materials.
func (s *Store) Materials() []Material {
	return s.materials
}

// MaterialsForCategory returns the materials orderable for a category,
// in the category's upgrade order.
func (s *Store) MaterialsForCategory(cat Category) []Material {
	p, ok := s.PricingForCategory(cat)
	if !ok {
		return nil
	}
	out := make([]Material, 0, len(p.MeshUpgrades))
	for _, u := range p.MeshUpgrades {
		if m, ok := s.Material(u.MaterialID); ok {
			out = append(out, m)
		}
	}
	return out
}

// PricingForCategory returns the price table of a category.
func (s *Store) PricingForCategory(cat Category) (CategoryPricing, bool) {
	i, ok := s.pricingByCat[cat]
	if !ok {
		return CategoryPricing{}, false
	}
	return s.pricing[i], true
}

// Categories returns the categories that have a price table, in
// declaration order.
func (s *Store) Categories() []Category {
	out := make([]Category, 0, len(s.pricing))
	for _, p := range s.pricing {
		out = append(out, p.Category)
	}
	return out
}
