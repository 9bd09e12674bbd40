package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/noah-isme/tinta-academy-api/internal/dto"
	"github.com/noah-isme/tinta-academy-api/internal/models"
)

func floatPtr(v float64) *float64 { return &v }

func educatorCoursesFixture() []models.EducatorCourse {
	return []models.EducatorCourse{
		{ID: "ec-1", Title: "Introducción al vino", Description: "Curso online", Modality: models.ModalityOnline, Status: models.EducatorCoursePublished, PriceUSD: floatPtr(0)},
		{ID: "ec-2", Title: "WSET Nivel 2", Description: "Preparación para el examen", Modality: models.ModalityPresencial, Status: models.EducatorCoursePublished, PriceUSD: floatPtr(690)},
		{ID: "ec-3", Title: "Cata de tannat", Description: "Borrador", Modality: models.ModalityOnline, Status: models.EducatorCourseDraft},
		{ID: "ec-4", Title: "Vinos del mundo", Description: "Finalizado", Modality: models.ModalityPresencial, Status: models.EducatorCourseFinished},
	}
}

func educatorCourseIDs(courses []models.EducatorCourse) []string {
	ids := make([]string, 0, len(courses))
	for _, c := range courses {
		ids = append(ids, c.ID)
	}
	return ids
}

func TestFilterEducatorCourses(t *testing.T) {
	courses := educatorCoursesFixture()

	assert.Equal(t, []string{"ec-1", "ec-2", "ec-3", "ec-4"}, educatorCourseIDs(FilterEducatorCourses(courses, EducatorCourseFilter{Modality: FilterAll, Status: FilterAll})))
	assert.Equal(t, []string{"ec-2"}, educatorCourseIDs(FilterEducatorCourses(courses, EducatorCourseFilter{Search: "EXAMEN"})))
	assert.Equal(t, []string{"ec-2"}, educatorCourseIDs(FilterEducatorCourses(courses, EducatorCourseFilter{Search: "el examen"})))
	assert.Empty(t, FilterEducatorCourses(courses, EducatorCourseFilter{Search: "  EXAMEN "}))
	assert.Empty(t, FilterEducatorCourses(courses, EducatorCourseFilter{Search: "   "}))
	assert.Equal(t, []string{"ec-3"}, educatorCourseIDs(FilterEducatorCourses(courses, EducatorCourseFilter{Search: "tannat", Modality: "online"})))
	assert.Equal(t, []string{"ec-1", "ec-2"}, educatorCourseIDs(FilterEducatorCourses(courses, EducatorCourseFilter{Status: "published"})))
	assert.Empty(t, FilterEducatorCourses(courses, EducatorCourseFilter{Modality: "presencial", Status: "draft"}))
}

func TestCountCourses(t *testing.T) {
	courses := educatorCoursesFixture()

	assert.Equal(t, dto.CourseStatusCounts{All: 4, Draft: 1, Published: 2, Finished: 1}, CountCoursesByStatus(courses))
	assert.Equal(t, dto.CourseModalityCounts{All: 4, Online: 2, Presencial: 2}, CountCoursesByModality(courses))
}

func TestPriceLabel(t *testing.T) {
	assert.Equal(t, "Gratis", PriceLabel(models.EducatorCourse{PriceUSD: floatPtr(0)}))
	assert.Equal(t, "Gratis", PriceLabel(models.EducatorCourse{PriceUYU: floatPtr(0)}))
	assert.Equal(t, "US$ 690", PriceLabel(models.EducatorCourse{PriceUSD: floatPtr(690), PriceUYU: floatPtr(27600)}))
	assert.Equal(t, "US$ 49.5", PriceLabel(models.EducatorCourse{PriceUSD: floatPtr(49.5)}))
	assert.Contains(t, PriceLabel(models.EducatorCourse{PriceUYU: floatPtr(2400)}), "$ ")
	assert.Equal(t, "Sin precio", PriceLabel(models.EducatorCourse{}))
}
