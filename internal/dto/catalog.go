package dto

import "github.com/noah-isme/tinta-academy-api/internal/models"

// CatalogCourseView is a listed course with its author attached.
type CatalogCourseView struct {
	models.CatalogCourse
	TypeLabel string           `json:"typeLabel"`
	Educator  *models.Educator `json:"educator,omitempty"`
}

// CatalogResponse is the landing page payload.
type CatalogResponse struct {
	Landing           models.Landing       `json:"landing"`
	Tags              []models.Tag         `json:"tags"`
	Educators         []models.Educator    `json:"educators"`
	Filters           models.CourseFilters `json:"filters"`
	ActiveFilterCount int                  `json:"activeFilterCount"`
	Upcoming          []CatalogCourseView  `json:"upcoming"`
	Past              []CatalogCourseView  `json:"past"`
}
