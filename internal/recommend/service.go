package recommend

import "akcayapi/internal/catalog"

type Service struct {
	store *catalog.Store
}

func NewService(store *catalog.Store) *Service {
	return &Service{store: store}
}

// Criteria returns the active wizard questions in order.
func (s *Service) Criteria() []catalog.Criterion {
	return s.store.Criteria()
}

// Compute derives the recommendation for a Selection. Pure and total:
// any Selection, including an empty one, yields a usable bundle.
func (s *Service) Compute(sel Selection) Recommendation {
	return Compose(s.store, Match(s.store.Criteria(), sel))
}
