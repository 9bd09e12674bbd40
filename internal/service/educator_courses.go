package service

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/noah-isme/tinta-academy-api/internal/dto"
	"github.com/noah-isme/tinta-academy-api/internal/models"
)

// FilterAll is the sentinel that disables a filter dimension.
const FilterAll = "all"

// EducatorCourseFilter narrows the educator course list.
type EducatorCourseFilter struct {
	Search   string
	Modality string
	Status   string
}

func active(v string) bool {
	return v != "" && v != FilterAll
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), needle)
}

// FilterEducatorCourses applies search on title or description, then modality, then status.
func FilterEducatorCourses(courses []models.EducatorCourse, f EducatorCourseFilter) []models.EducatorCourse {
	query := strings.ToLower(f.Search)
	out := make([]models.EducatorCourse, 0, len(courses))
	for _, c := range courses {
		if query != "" && !containsFold(c.Title, query) && !containsFold(c.Description, query) {
			continue
		}
		if active(f.Modality) && string(c.Modality) != f.Modality {
			continue
		}
		if active(f.Status) && string(c.Status) != f.Status {
			continue
		}
		out = append(out, c)
	}
	return out
}

// CountCoursesByStatus counts over the unfiltered list.
func CountCoursesByStatus(courses []models.EducatorCourse) dto.CourseStatusCounts {
	counts := dto.CourseStatusCounts{All: len(courses)}
	for _, c := range courses {
		switch c.Status {
		case models.EducatorCourseDraft:
			counts.Draft++
		case models.EducatorCoursePublished:
			counts.Published++
		case models.EducatorCourseFinished:
			counts.Finished++
		}
	}
	return counts
}

// CountCoursesByModality counts over the unfiltered list.
func CountCoursesByModality(courses []models.EducatorCourse) dto.CourseModalityCounts {
	counts := dto.CourseModalityCounts{All: len(courses)}
	for _, c := range courses {
		switch c.Modality {
		case models.ModalityOnline:
			counts.Online++
		case models.ModalityPresencial:
			counts.Presencial++
		}
	}
	return counts
}

var spanish = message.NewPrinter(language.Spanish)

func formatUSD(v float64) string {
	return "US$ " + strconv.FormatFloat(v, 'f', -1, 64)
}

func formatUYU(v float64) string {
	return "$ " + spanish.Sprint(number.Decimal(v, number.MaxFractionDigits(2)))
}

func formatWhole(v float64) string {
	return spanish.Sprint(number.Decimal(v, number.MaxFractionDigits(0)))
}

// PriceLabel renders a course price. A zero price in either currency means free.
func PriceLabel(c models.EducatorCourse) string {
	switch {
	case c.PriceUSD != nil && *c.PriceUSD == 0, c.PriceUYU != nil && *c.PriceUYU == 0:
		return "Gratis"
	case c.PriceUSD != nil:
		return formatUSD(*c.PriceUSD)
	case c.PriceUYU != nil:
		return formatUYU(*c.PriceUYU)
	}
	return "Sin precio"
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
