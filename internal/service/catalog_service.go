package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/noah-isme/tinta-academy-api/internal/dto"
	"github.com/noah-isme/tinta-academy-api/internal/models"
	appErrors "github.com/noah-isme/tinta-academy-api/pkg/errors"
)

const catalogCacheKey = "tinta:source:catalog"

type catalogSource interface {
	Catalog(ctx context.Context) (*models.Catalog, error)
}

// CatalogService serves the public landing page.
type CatalogService struct {
	source catalogSource
	cache  *CacheService
	logger *zap.Logger
}

// NewCatalogService constructs a CatalogService.
func NewCatalogService(source catalogSource, cache *CacheService, logger *zap.Logger) *CatalogService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogService{source: source, cache: cache, logger: logger}
}

// Catalog returns the landing content with both course lists filtered by filters.
func (s *CatalogService) Catalog(ctx context.Context, filters models.CourseFilters) (*dto.CatalogResponse, bool, error) {
	catalog, hit, err := loadThrough(ctx, s.cache, catalogCacheKey, s.source.Catalog)
	if err != nil {
		s.logger.Error("load catalog failed", zap.Error(err))
		return nil, false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load catalog")
	}

	educators := make(map[string]*models.Educator, len(catalog.Educators))
	for i := range catalog.Educators {
		educators[catalog.Educators[i].ID] = &catalog.Educators[i]
	}

	return &dto.CatalogResponse{
		Landing:           catalog.Landing,
		Tags:              catalog.Tags,
		Educators:         catalog.Educators,
		Filters:           filters,
		ActiveFilterCount: ActiveFilterCount(filters),
		Upcoming:          catalogViews(FilterCatalog(catalog.Upcoming, filters), educators),
		Past:              catalogViews(FilterCatalog(catalog.Past, filters), educators),
	}, hit, nil
}

func catalogViews(courses []models.CatalogCourse, educators map[string]*models.Educator) []dto.CatalogCourseView {
	views := make([]dto.CatalogCourseView, 0, len(courses))
	for _, c := range courses {
		views = append(views, dto.CatalogCourseView{
			CatalogCourse: c,
			TypeLabel:     CourseTypeLabel(c.Type, c.WSETLevel),
			Educator:      educators[c.EducatorID],
		})
	}
	return views
}
