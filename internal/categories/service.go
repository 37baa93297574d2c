package categories

import (
	"github.com/tallied-dev/tallied/internal/model"
)

// Service provides in-memory lookup over the category catalog.
type Service struct {
	cats []model.Category
	byID map[string]model.Category
}

// NewService creates a Service from a slice of categories.
func NewService(cats []model.Category) *Service {
	byID := make(map[string]model.Category, len(cats))
	for _, c := range cats {
		byID[c.ID] = c
	}
	return &Service{cats: cats, byID: byID}
}

// All returns all categories.
func (s *Service) All() []model.Category {
	return s.cats
}

// Get returns a category by ID.
func (s *Service) Get(id string) (model.Category, bool) {
	c, ok := s.byID[id]
	return c, ok
}

// Exists reports whether a category ID exists.
func (s *Service) Exists(id string) bool {
	_, ok := s.byID[id]
	return ok
}

// ByType returns all categories of the given type.
func (s *Service) ByType(categoryType model.CategoryType) []model.Category {
	var result []model.Category
	for _, c := range s.cats {
		if c.Type == categoryType {
			result = append(result, c)
		}
	}
	return result
}

// ValidFor reports whether the category ID exists and accepts the given
// transaction kind.
func (s *Service) ValidFor(id string, kind model.TransactionKind) bool {
	c, ok := s.byID[id]
	return ok && c.Accepts(kind)
}
