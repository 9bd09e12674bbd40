package service

import (
	"time"

	"github.com/noah-isme/tinta-academy-api/internal/models"
)

// StudentGrowth is the month over month change in percent. With no previous
// students any current student counts as 100% growth.
func StudentGrowth(current, previous int) int {
	if previous > 0 {
		return roundHalfUp(float64(current-previous) / float64(previous) * 100)
	}
	if current > 0 {
		return 100
	}
	return 0
}

// QuickAccessCourses returns up to limit courses that are not finished, in source order.
func QuickAccessCourses(courses []models.EducatorCourse, limit int) []models.EducatorCourse {
	if limit < 0 {
		limit = 0
	}
	out := make([]models.EducatorCourse, 0, limit)
	for _, c := range courses {
		if len(out) >= limit {
			break
		}
		if c.Status != models.EducatorCourseFinished {
			out = append(out, c)
		}
	}
	return out
}

var spanishMonths = [12]string{"Ene", "Feb", "Mar", "Abr", "May", "Jun", "Jul", "Ago", "Sep", "Oct", "Nov", "Dic"}

// chartMonths is the number of monthly points in derived charts.
const chartMonths = 6

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// RosterMetrics derives a dashboard snapshot from raw course and enrollment records.
// It is used when the data source holds no precomputed snapshot.
func RosterMetrics(courses []models.EducatorCourse, students []models.EnrolledStudent, now time.Time) models.DashboardMetrics {
	metrics := models.DashboardMetrics{
		TotalStudents: len(students),
		TotalCourses:  len(courses),
	}
	for _, c := range courses {
		if c.Status == models.EducatorCoursePublished {
			metrics.ActiveCourses++
		}
	}

	summary := SummarizeRoster(students, now)
	metrics.ActiveStudents = summary.ActiveThisWeek
	metrics.AverageProgress = summary.AverageProgress
	if summary.Total > 0 {
		metrics.CompletionRate = roundHalfUp(float64(summary.Completed) / float64(summary.Total) * 100)
	}

	thisMonth := monthStart(now)
	lastMonth := thisMonth.AddDate(0, -1, 0)
	first := thisMonth.AddDate(0, -(chartMonths - 1), 0)

	enrolled := make([]int, chartMonths)
	progressSum := make([]int, chartMonths)
	for _, s := range students {
		at := s.EnrolledAt.In(now.Location())
		switch {
		case !at.Before(thisMonth) && at.Before(thisMonth.AddDate(0, 1, 0)):
			metrics.StudentsThisMonth++
		case !at.Before(lastMonth) && at.Before(thisMonth):
			metrics.StudentsLastMonth++
		}
		if at.Before(first) || !at.Before(thisMonth.AddDate(0, 1, 0)) {
			continue
		}
		idx := (at.Year()-first.Year())*12 + int(at.Month()) - int(first.Month())
		enrolled[idx]++
		progressSum[idx] += s.Progress
	}

	metrics.ChartData.Students = make([]models.ChartPoint, chartMonths)
	metrics.ChartData.Progress = make([]models.ChartPoint, chartMonths)
	for i := 0; i < chartMonths; i++ {
		label := spanishMonths[first.AddDate(0, i, 0).Month()-1]
		avg := 0
		if enrolled[i] > 0 {
			avg = roundHalfUp(float64(progressSum[i]) / float64(enrolled[i]))
		}
		metrics.ChartData.Students[i] = models.ChartPoint{Month: label, Value: float64(enrolled[i])}
		metrics.ChartData.Progress[i] = models.ChartPoint{Month: label, Value: float64(avg)}
	}
	return metrics
}
