package repository

import (
	"context"
	"database/sql"

	"github.com/noah-isme/tinta-academy-api/internal/models"
	"github.com/noah-isme/tinta-academy-api/pkg/fixtures"
)

// FixtureRepository serves source records from an in-memory fixture bundle. Every
// list is returned as a fresh copy; missing entities yield sql.ErrNoRows like the
// PostgreSQL repositories.
type FixtureRepository struct {
	bundle *fixtures.Bundle
}

// NewFixtureRepository constructs a FixtureRepository.
func NewFixtureRepository(bundle *fixtures.Bundle) *FixtureRepository {
	if bundle == nil {
		bundle = &fixtures.Bundle{}
	}
	return &FixtureRepository{bundle: bundle}
}

func clone[T any](items []T) []T {
	return append(make([]T, 0, len(items)), items...)
}

// Catalog returns the landing page records.
func (r *FixtureRepository) Catalog(ctx context.Context) (*models.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c := r.bundle.Catalog
	return &models.Catalog{
		Landing:   c.Landing,
		Educators: clone(c.Educators),
		Tags:      clone(c.Tags),
		Upcoming:  clone(c.Upcoming),
		Past:      clone(c.Past),
	}, nil
}

func (r *FixtureRepository) workspace(ctx context.Context, educatorID string) (*models.EducatorWorkspace, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ws, ok := r.bundle.Educator(educatorID)
	if !ok {
		return nil, sql.ErrNoRows
	}
	return ws, nil
}

// courseWorkspace finds the workspace owning courseID.
func (r *FixtureRepository) courseWorkspace(ctx context.Context, courseID string) (*models.EducatorWorkspace, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for i := range r.bundle.Educators {
		for _, c := range r.bundle.Educators[i].Courses {
			if c.ID == courseID {
				return &r.bundle.Educators[i], nil
			}
		}
	}
	return nil, sql.ErrNoRows
}

// FindEducator returns the educator profile.
func (r *FixtureRepository) FindEducator(ctx context.Context, educatorID string) (*models.EducatorProfile, error) {
	ws, err := r.workspace(ctx, educatorID)
	if err != nil {
		return nil, err
	}
	profile := ws.Profile
	return &profile, nil
}

// DashboardMetrics returns the metrics snapshot, nil when the educator has none.
func (r *FixtureRepository) DashboardMetrics(ctx context.Context, educatorID string) (*models.DashboardMetrics, error) {
	ws, err := r.workspace(ctx, educatorID)
	if err != nil {
		return nil, err
	}
	if ws.Metrics == nil {
		return nil, nil
	}
	metrics := *ws.Metrics
	metrics.ChartData.Students = clone(ws.Metrics.ChartData.Students)
	metrics.ChartData.Progress = clone(ws.Metrics.ChartData.Progress)
	return &metrics, nil
}

// ListCourses returns the educator's courses in source order.
func (r *FixtureRepository) ListCourses(ctx context.Context, educatorID string) ([]models.EducatorCourse, error) {
	ws, err := r.workspace(ctx, educatorID)
	if err != nil {
		return nil, err
	}
	return clone(ws.Courses), nil
}

// ListModules returns the modules of courseID in source order.
func (r *FixtureRepository) ListModules(ctx context.Context, courseID string) ([]models.CourseModule, error) {
	ws, err := r.courseWorkspace(ctx, courseID)
	if err != nil {
		return nil, err
	}
	modules := make([]models.CourseModule, 0)
	for _, m := range ws.Modules {
		if m.CourseID == courseID {
			modules = append(modules, m)
		}
	}
	return modules, nil
}

// ListLessons returns the lessons of every module of courseID in source order.
func (r *FixtureRepository) ListLessons(ctx context.Context, courseID string) ([]models.CourseLesson, error) {
	ws, err := r.courseWorkspace(ctx, courseID)
	if err != nil {
		return nil, err
	}
	moduleIDs := make(map[string]struct{})
	for _, m := range ws.Modules {
		if m.CourseID == courseID {
			moduleIDs[m.ID] = struct{}{}
		}
	}
	lessons := make([]models.CourseLesson, 0)
	for _, l := range ws.Lessons {
		if _, ok := moduleIDs[l.ModuleID]; ok {
			l.Resources = clone(l.Resources)
			lessons = append(lessons, l)
		}
	}
	return lessons, nil
}

// ListStudents returns the roster of courseID in source order.
func (r *FixtureRepository) ListStudents(ctx context.Context, courseID string) ([]models.EnrolledStudent, error) {
	ws, err := r.courseWorkspace(ctx, courseID)
	if err != nil {
		return nil, err
	}
	students := make([]models.EnrolledStudent, 0)
	for _, s := range ws.Students {
		if s.CourseID == courseID {
			students = append(students, s)
		}
	}
	return students, nil
}

// ListTemplates returns the educator's email templates.
func (r *FixtureRepository) ListTemplates(ctx context.Context, educatorID string) ([]models.EmailTemplate, error) {
	ws, err := r.workspace(ctx, educatorID)
	if err != nil {
		return nil, err
	}
	templates := clone(ws.Templates)
	for i := range templates {
		templates[i].Variables = clone(templates[i].Variables)
	}
	return templates, nil
}

// ListCampaigns returns the educator's campaigns.
func (r *FixtureRepository) ListCampaigns(ctx context.Context, educatorID string) ([]models.EmailCampaign, error) {
	ws, err := r.workspace(ctx, educatorID)
	if err != nil {
		return nil, err
	}
	return clone(ws.Campaigns), nil
}

func (r *FixtureRepository) account(ctx context.Context, studentID string) (*models.LearnerAccount, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	acc, ok := r.bundle.Student(studentID)
	if !ok {
		return nil, sql.ErrNoRows
	}
	return acc, nil
}

// FindStudent returns the learner profile.
func (r *FixtureRepository) FindStudent(ctx context.Context, studentID string) (*models.StudentProfile, error) {
	acc, err := r.account(ctx, studentID)
	if err != nil {
		return nil, err
	}
	profile := acc.Profile
	return &profile, nil
}

// ListEnrollments returns the learner's courses in source order.
func (r *FixtureRepository) ListEnrollments(ctx context.Context, studentID string) ([]models.EnrolledCourse, error) {
	acc, err := r.account(ctx, studentID)
	if err != nil {
		return nil, err
	}
	return clone(acc.Courses), nil
}

// ListOrders returns the learner's orders in source order.
func (r *FixtureRepository) ListOrders(ctx context.Context, studentID string) ([]models.Order, error) {
	acc, err := r.account(ctx, studentID)
	if err != nil {
		return nil, err
	}
	return clone(acc.Orders), nil
}
