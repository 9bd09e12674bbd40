package service

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/noah-isme/tinta-academy-api/internal/models"
)

func catalogFixture() []models.CatalogCourse {
	return []models.CatalogCourse{
		{ID: "c1", Type: models.CourseTypeWSET, WSETLevel: 1, Modality: models.ModalityPresencial, TagIDs: []string{"t1"}},
		{ID: "c2", Type: models.CourseTypeCata, Modality: models.ModalityOnline, TagIDs: []string{"t2", "t3"}},
		{ID: "c3", Type: models.CourseTypeWSET, WSETLevel: 2, Modality: models.ModalityOnline},
		{ID: "c4", Type: models.CourseTypeTaller, Modality: models.ModalityPresencial, TagIDs: []string{"t3"}},
	}
}

func catalogIDs(courses []models.CatalogCourse) []string {
	ids := make([]string, 0, len(courses))
	for _, c := range courses {
		ids = append(ids, c.ID)
	}
	return ids
}

func TestFilterCatalog(t *testing.T) {
	courses := catalogFixture()

	cases := []struct {
		name    string
		filters models.CourseFilters
		want    []string
	}{
		{name: "empty filter keeps everything", want: []string{"c1", "c2", "c3", "c4"}},
		{name: "modality", filters: models.CourseFilters{Modality: models.ModalityOnline}, want: []string{"c2", "c3"}},
		{name: "type", filters: models.CourseFilters{Type: models.CourseTypeWSET}, want: []string{"c1", "c3"}},
		{name: "any tag matches", filters: models.CourseFilters{TagIDs: []string{"t1", "t3"}}, want: []string{"c1", "c2", "c4"}},
		{name: "overlapping tag sets match", filters: models.CourseFilters{TagIDs: []string{"t3", "t4"}}, want: []string{"c2", "c4"}},
		{name: "all dimensions", filters: models.CourseFilters{Modality: models.ModalityPresencial, Type: models.CourseTypeTaller, TagIDs: []string{"t3"}}, want: []string{"c4"}},
		{name: "no match", filters: models.CourseFilters{Type: models.CourseTypeCurso}, want: []string{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := FilterCatalog(courses, tc.filters)
			if diff := cmp.Diff(tc.want, catalogIDs(got)); diff != "" {
				t.Fatalf("unexpected courses (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(got, FilterCatalog(got, tc.filters)); diff != "" {
				t.Fatalf("refiltering changed the result (-first +second):\n%s", diff)
			}
		})
	}

	assert.Equal(t, catalogFixture(), courses)
}

func TestFilterCatalogTagOverlap(t *testing.T) {
	courses := []models.CatalogCourse{
		{ID: "ab", TagIDs: []string{"a", "b"}},
		{ID: "cd", TagIDs: []string{"c", "d"}},
		{ID: "none"},
	}

	got := FilterCatalog(courses, models.CourseFilters{TagIDs: []string{"b", "c"}})
	assert.Equal(t, []string{"ab", "cd"}, catalogIDs(got))
	assert.Empty(t, FilterCatalog(courses, models.CourseFilters{TagIDs: []string{"x"}}))
}

func TestActiveFilterCount(t *testing.T) {
	assert.Equal(t, 0, ActiveFilterCount(models.CourseFilters{}))
	assert.Equal(t, 4, ActiveFilterCount(models.CourseFilters{
		Modality: models.ModalityOnline,
		Type:     models.CourseTypeCata,
		TagIDs:   []string{"t1", "t2"},
	}))
}

func TestToggleTag(t *testing.T) {
	original := models.CourseFilters{Modality: models.ModalityOnline, TagIDs: []string{"t1"}}

	added := ToggleTag(original, "t2")
	assert.Equal(t, []string{"t1", "t2"}, added.TagIDs)
	assert.Equal(t, models.ModalityOnline, added.Modality)
	assert.Equal(t, []string{"t1"}, original.TagIDs)

	removed := ToggleTag(added, "t1")
	assert.Equal(t, []string{"t2"}, removed.TagIDs)

	assert.Nil(t, ToggleTag(removed, "t2").TagIDs)
}

func TestCourseTypeLabel(t *testing.T) {
	assert.Equal(t, "WSET 2", CourseTypeLabel(models.CourseTypeWSET, 2))
	assert.Equal(t, "WSET", CourseTypeLabel(models.CourseTypeWSET, 0))
	assert.Equal(t, "Taller", CourseTypeLabel(models.CourseTypeTaller, 0))
	assert.Equal(t, "masterclass", CourseTypeLabel(models.CourseType("masterclass"), 0))
}
