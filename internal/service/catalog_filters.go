package service

import (
	"github.com/noah-isme/tinta-academy-api/internal/models"
)

// FilterCatalog keeps courses matching every set dimension of f. Tags match when the
// course carries at least one of the requested tags. An empty filter returns a copy of
// courses.
func FilterCatalog(courses []models.CatalogCourse, f models.CourseFilters) []models.CatalogCourse {
	out := make([]models.CatalogCourse, 0, len(courses))
	for _, course := range courses {
		if matchesCatalogFilters(course, f) {
			out = append(out, course)
		}
	}
	return out
}

func matchesCatalogFilters(course models.CatalogCourse, f models.CourseFilters) bool {
	if f.Modality != "" && course.Modality != f.Modality {
		return false
	}
	if f.Type != "" && course.Type != f.Type {
		return false
	}
	if len(f.TagIDs) == 0 {
		return true
	}
	for _, want := range f.TagIDs {
		for _, have := range course.TagIDs {
			if want == have {
				return true
			}
		}
	}
	return false
}

// ActiveFilterCount is the badge number shown next to the filter toggle.
func ActiveFilterCount(f models.CourseFilters) int {
	n := len(f.TagIDs)
	if f.Modality != "" {
		n++
	}
	if f.Type != "" {
		n++
	}
	return n
}

// ToggleTag adds tagID when absent and removes it when present. TagIDs is nil once empty.
func ToggleTag(f models.CourseFilters, tagID string) models.CourseFilters {
	next := f
	tags := make([]string, 0, len(f.TagIDs)+1)
	removed := false
	for _, id := range f.TagIDs {
		if id == tagID {
			removed = true
			continue
		}
		tags = append(tags, id)
	}
	if !removed {
		tags = append(tags, tagID)
	}
	if len(tags) == 0 {
		tags = nil
	}
	next.TagIDs = tags
	return next
}

var courseTypeLabels = map[models.CourseType]string{
	models.CourseTypeWSET:   "WSET",
	models.CourseTypeTaller: "Taller",
	models.CourseTypeCata:   "Cata",
	models.CourseTypeCurso:  "Curso",
}

// CourseTypeLabel renders the badge text for a course type, e.g. "WSET 2".
func CourseTypeLabel(t models.CourseType, wsetLevel int) string {
	if t == models.CourseTypeWSET && wsetLevel > 0 {
		return "WSET " + itoa(wsetLevel)
	}
	if label, ok := courseTypeLabels[t]; ok {
		return label
	}
	return string(t)
}
