package service

import (
	"math"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/noah-isme/tinta-academy-api/internal/dto"
	"github.com/noah-isme/tinta-academy-api/internal/models"
)

// StudentSortField is a sortable roster column.
type StudentSortField string

const (
	SortByName         StudentSortField = "name"
	SortByProgress     StudentSortField = "progress"
	SortByEnrolledAt   StudentSortField = "enrolledAt"
	SortByLastAccessAt StudentSortField = "lastAccessAt"
)

// SortDirection is asc or desc.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// StudentSort is the roster ordering.
type StudentSort struct {
	Field     StudentSortField `json:"field"`
	Direction SortDirection    `json:"direction"`
}

// DefaultStudentSort shows the most advanced students first.
var DefaultStudentSort = StudentSort{Field: SortByProgress, Direction: SortDesc}

// ParseStudentSort falls back to the default for unknown values.
func ParseStudentSort(field, direction string) StudentSort {
	s := DefaultStudentSort
	switch StudentSortField(field) {
	case SortByName, SortByProgress, SortByEnrolledAt, SortByLastAccessAt:
		s.Field = StudentSortField(field)
	}
	switch SortDirection(strings.ToLower(direction)) {
	case SortAsc:
		s.Direction = SortAsc
	case SortDesc:
		s.Direction = SortDesc
	}
	return s
}

// NextStudentSort is the ordering after the user picks field: the same field flips
// direction, a new field starts descending.
func NextStudentSort(current StudentSort, field StudentSortField) StudentSort {
	if current.Field == field {
		if current.Direction == SortAsc {
			return StudentSort{Field: field, Direction: SortDesc}
		}
		return StudentSort{Field: field, Direction: SortAsc}
	}
	return StudentSort{Field: field, Direction: SortDesc}
}

// FilterStudents matches search on name or email.
func FilterStudents(students []models.EnrolledStudent, search string) []models.EnrolledStudent {
	query := strings.ToLower(search)
	out := make([]models.EnrolledStudent, 0, len(students))
	for _, s := range students {
		if query != "" && !containsFold(s.Name, query) && !containsFold(s.Email, query) {
			continue
		}
		out = append(out, s)
	}
	return out
}

func compareTime(a, b time.Time) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	}
	return 0
}

// SortStudents orders a copy of students by a single key. Names use Spanish collation.
// Equal keys keep their input order.
func SortStudents(students []models.EnrolledStudent, s StudentSort) []models.EnrolledStudent {
	out := append([]models.EnrolledStudent(nil), students...)
	var cmp func(a, b models.EnrolledStudent) int
	switch s.Field {
	case SortByName:
		// Collators keep scratch buffers and must not be shared across goroutines.
		col := collate.New(language.Spanish)
		cmp = func(a, b models.EnrolledStudent) int { return col.CompareString(a.Name, b.Name) }
	case SortByEnrolledAt:
		cmp = func(a, b models.EnrolledStudent) int { return compareTime(a.EnrolledAt, b.EnrolledAt) }
	case SortByLastAccessAt:
		cmp = func(a, b models.EnrolledStudent) int { return compareTime(a.LastAccessAt, b.LastAccessAt) }
	default:
		cmp = func(a, b models.EnrolledStudent) int { return a.Progress - b.Progress }
	}
	sort.SliceStable(out, func(i, j int) bool {
		c := cmp(out[i], out[j])
		if s.Direction == SortAsc {
			return c < 0
		}
		return c > 0
	})
	return out
}

// roundHalfUp rounds .5 towards positive infinity.
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

// IsActiveThisWeek reports whether lastAccess falls within the seven days up to now, inclusive.
// The window is seven calendar days on the UTC clock, so it is always 168 hours
// regardless of the location now carries.
func IsActiveThisWeek(lastAccess, now time.Time) bool {
	if lastAccess.IsZero() {
		return false
	}
	return !lastAccess.Before(now.UTC().AddDate(0, 0, -7))
}

// SummarizeRoster counts completions, averages progress and counts recent activity.
func SummarizeRoster(students []models.EnrolledStudent, now time.Time) dto.RosterSummary {
	summary := dto.RosterSummary{Total: len(students)}
	if len(students) == 0 {
		return summary
	}
	sum := 0
	for _, s := range students {
		sum += s.Progress
		if s.Progress == 100 {
			summary.Completed++
		}
		if IsActiveThisWeek(s.LastAccessAt, now) {
			summary.ActiveThisWeek++
		}
	}
	summary.AverageProgress = roundHalfUp(float64(sum) / float64(len(students)))
	return summary
}
