package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/tinta-academy-api/internal/dto"
	"github.com/noah-isme/tinta-academy-api/internal/models"
	"github.com/noah-isme/tinta-academy-api/internal/repository"
	appErrors "github.com/noah-isme/tinta-academy-api/pkg/errors"
)

type catalogSourceFunc func(context.Context) (*models.Catalog, error)

func (f catalogSourceFunc) Catalog(ctx context.Context) (*models.Catalog, error) { return f(ctx) }

func catalogViewIDs(views []dto.CatalogCourseView) []string {
	ids := make([]string, 0, len(views))
	for _, v := range views {
		ids = append(ids, v.ID)
	}
	return ids
}

func TestCatalogServiceFilters(t *testing.T) {
	svc := NewCatalogService(repository.NewFixtureRepository(fixtureBundle(t)), nil, nil)

	resp, hit, err := svc.Catalog(context.Background(), models.CourseFilters{})
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, []string{"cc-1", "cc-2", "cc-3", "cc-4"}, catalogViewIDs(resp.Upcoming))
	assert.Equal(t, []string{"cc-5"}, catalogViewIDs(resp.Past))
	assert.Equal(t, "WSET 2", resp.Upcoming[0].TypeLabel)
	require.NotNil(t, resp.Upcoming[0].Educator)
	assert.Equal(t, "Lucía Fernández", resp.Upcoming[0].Educator.Name)
	assert.Zero(t, resp.ActiveFilterCount)

	filters := models.CourseFilters{Modality: models.ModalityPresencial, TagIDs: []string{"tag-2"}}
	resp, _, err = svc.Catalog(context.Background(), filters)
	require.NoError(t, err)
	assert.Equal(t, []string{"cc-2"}, catalogViewIDs(resp.Upcoming))
	assert.Equal(t, []string{"cc-5"}, catalogViewIDs(resp.Past))
	assert.Equal(t, 2, resp.ActiveFilterCount)
	assert.Equal(t, filters, resp.Filters)
}

func TestCatalogServiceCachesSource(t *testing.T) {
	calls := 0
	source := catalogSourceFunc(func(context.Context) (*models.Catalog, error) {
		calls++
		return &models.Catalog{Upcoming: []models.CatalogCourse{{ID: "cc-1", Type: models.CourseTypeCata}}}, nil
	})
	cache := NewCacheService(newMemoryCache(), nil, time.Minute, nil, true)
	svc := NewCatalogService(source, cache, nil)

	_, hit, err := svc.Catalog(context.Background(), models.CourseFilters{})
	require.NoError(t, err)
	assert.False(t, hit)

	resp, hit, err := svc.Catalog(context.Background(), models.CourseFilters{Type: models.CourseTypeWSET})
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Empty(t, resp.Upcoming)
	assert.Equal(t, 1, calls)
}

func TestCatalogServiceSourceError(t *testing.T) {
	svc := NewCatalogService(catalogSourceFunc(func(context.Context) (*models.Catalog, error) {
		return nil, errors.New("db down")
	}), nil, nil)

	_, _, err := svc.Catalog(context.Background(), models.CourseFilters{})

	require.Error(t, err)
	assert.ErrorIs(t, err, appErrors.ErrInternal)
}
