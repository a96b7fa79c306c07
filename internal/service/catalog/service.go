package catalog

import (
	"context"
	"fmt"

	"github.com/patrickmn/go-cache"

	"github.com/healthlab/portal-api/internal/model"
	"github.com/healthlab/portal-api/pkg/errors"
)

const listCacheKey = "labtests"

type CatalogService interface {
	ListTests(ctx context.Context) ([]model.LabTest, error)
	GetTest(ctx context.Context, id string) (*model.LabTest, error)
}

// Service serves the fixed lab test catalog. The data set is defined
// once at startup and never changes; a cache fronts it the way a remote
// catalog fetch would be memoized.
type Service struct {
	cache *cache.Cache
}

func NewService() *Service {
	c := cache.New(cache.NoExpiration, 0)
	c.Set(listCacheKey, labTests(), cache.NoExpiration)
	return &Service{cache: c}
}

// ListTests returns the same deterministic sequence on every call.
func (s *Service) ListTests(ctx context.Context) ([]model.LabTest, error) {
	cached, ok := s.cache.Get(listCacheKey)
	if !ok {
		tests := labTests()
		s.cache.Set(listCacheKey, tests, cache.NoExpiration)
		cached = tests
	}

	source, ok := cached.([]model.LabTest)
	if !ok {
		return nil, fmt.Errorf("unexpected catalog cache entry type %T", cached)
	}

	tests := make([]model.LabTest, len(source))
	copy(tests, source)
	return tests, nil
}

func (s *Service) GetTest(ctx context.Context, id string) (*model.LabTest, error) {
	tests, err := s.ListTests(ctx)
	if err != nil {
		return nil, err
	}
	for _, t := range tests {
		if t.ID == id {
			return &t, nil
		}
	}
	return nil, errors.NotFound("lab test", nil)
}
