package service

import (
	"sort"

	"github.com/noah-isme/tinta-academy-api/internal/dto"
	"github.com/noah-isme/tinta-academy-api/internal/models"
)

// EnrollmentFilter narrows the learner's course list.
type EnrollmentFilter struct {
	Status     string
	CourseType string
}

var enrollmentRank = map[models.EnrollmentStatus]int{
	models.EnrollmentInProgress: 0,
	models.EnrollmentUpcoming:   1,
	models.EnrollmentCompleted:  2,
}

// FilterEnrolledCourses applies status and course type, then orders in progress first,
// upcoming next and completed last.
func FilterEnrolledCourses(courses []models.EnrolledCourse, f EnrollmentFilter) []models.EnrolledCourse {
	out := make([]models.EnrolledCourse, 0, len(courses))
	for _, c := range courses {
		if active(f.Status) && string(c.Status) != f.Status {
			continue
		}
		if active(f.CourseType) && string(c.CourseType) != f.CourseType {
			continue
		}
		out = append(out, c)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return rankEnrollment(out[i].Status) < rankEnrollment(out[j].Status)
	})
	return out
}

func rankEnrollment(s models.EnrollmentStatus) int {
	if r, ok := enrollmentRank[s]; ok {
		return r
	}
	return len(enrollmentRank)
}

// CountEnrolledCourses counts over the unfiltered list.
func CountEnrolledCourses(courses []models.EnrolledCourse) dto.EnrollmentCounts {
	counts := dto.EnrollmentCounts{All: len(courses)}
	for _, c := range courses {
		switch c.Status {
		case models.EnrollmentInProgress:
			counts.InProgress++
		case models.EnrollmentCompleted:
			counts.Completed++
		case models.EnrollmentUpcoming:
			counts.Upcoming++
		}
		switch c.CourseType {
		case models.EnrolledOnline:
			counts.Online++
		case models.EnrolledInPerson:
			counts.InPerson++
		}
	}
	return counts
}
