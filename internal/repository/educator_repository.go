package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/jmoiron/sqlx/types"
	"github.com/lib/pq"

	"github.com/noah-isme/tinta-academy-api/internal/models"
)

// EducatorRepository reads educator panel records from PostgreSQL.
type EducatorRepository struct {
	db       *sqlx.DB
	observer QueryObserver
}

// NewEducatorRepository constructs an EducatorRepository.
func NewEducatorRepository(db *sqlx.DB, observer QueryObserver) *EducatorRepository {
	return &EducatorRepository{db: db, observer: observerOrNop(observer)}
}

// FindEducator returns the educator profile or sql.ErrNoRows.
func (r *EducatorRepository) FindEducator(ctx context.Context, educatorID string) (*models.EducatorProfile, error) {
	const query = `SELECT id, name, title, bio, email, image_url AS image FROM educators WHERE id = $1`
	var profile models.EducatorProfile
	err := timed(r.observer, "educator.find", func() error {
		return r.db.GetContext(ctx, &profile, query, educatorID)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		return nil, fmt.Errorf("get educator: %w", err)
	}
	return &profile, nil
}

type metricsRow struct {
	TotalStudents     int                `db:"total_students"`
	ActiveStudents    int                `db:"active_students"`
	TotalCourses      int                `db:"total_courses"`
	ActiveCourses     int                `db:"active_courses"`
	AverageProgress   int                `db:"average_progress"`
	CompletionRate    int                `db:"completion_rate"`
	StudentsThisMonth int                `db:"students_this_month"`
	StudentsLastMonth int                `db:"students_last_month"`
	ChartData         types.NullJSONText `db:"chart_data"`
}

// DashboardMetrics returns the stored snapshot, nil when none was computed.
func (r *EducatorRepository) DashboardMetrics(ctx context.Context, educatorID string) (*models.DashboardMetrics, error) {
	const query = `SELECT total_students, active_students, total_courses, active_courses, average_progress, completion_rate,
        students_this_month, students_last_month, chart_data FROM educator_metrics WHERE educator_id = $1`
	var row metricsRow
	err := timed(r.observer, "educator.metrics", func() error {
		return r.db.GetContext(ctx, &row, query, educatorID)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get educator metrics: %w", err)
	}
	metrics := &models.DashboardMetrics{
		TotalStudents:     row.TotalStudents,
		ActiveStudents:    row.ActiveStudents,
		TotalCourses:      row.TotalCourses,
		ActiveCourses:     row.ActiveCourses,
		AverageProgress:   row.AverageProgress,
		CompletionRate:    row.CompletionRate,
		StudentsThisMonth: row.StudentsThisMonth,
		StudentsLastMonth: row.StudentsLastMonth,
	}
	if err := decodeJSON(row.ChartData, &metrics.ChartData, "educator_metrics.chart_data"); err != nil {
		return nil, err
	}
	return metrics, nil
}

// ListCourses returns the educator's courses in authoring order.
func (r *EducatorRepository) ListCourses(ctx context.Context, educatorID string) ([]models.EducatorCourse, error) {
	const query = `SELECT id, educator_id, title, slug, type, modality, status, description, image, duration, price_usd, price_uyu,
        total_students, active_students, average_progress, total_modules, total_lessons, max_capacity, enrolled_count,
        location, event_date, event_time, created_at, published_at
        FROM educator_courses WHERE educator_id = $1 ORDER BY position`
	courses := make([]models.EducatorCourse, 0)
	if err := timed(r.observer, "educator.courses", func() error {
		return r.db.SelectContext(ctx, &courses, query, educatorID)
	}); err != nil {
		return nil, fmt.Errorf("list educator courses: %w", err)
	}
	return courses, nil
}

// ListModules returns the modules of a course in storage order.
func (r *EducatorRepository) ListModules(ctx context.Context, courseID string) ([]models.CourseModule, error) {
	const query = `SELECT id, course_id, title, description, position, lessons_count, completed_by_students
        FROM course_modules WHERE course_id = $1 ORDER BY id`
	modules := make([]models.CourseModule, 0)
	if err := timed(r.observer, "educator.modules", func() error {
		return r.db.SelectContext(ctx, &modules, query, courseID)
	}); err != nil {
		return nil, fmt.Errorf("list course modules: %w", err)
	}
	return modules, nil
}

type lessonRow struct {
	ID            string             `db:"id"`
	ModuleID      string             `db:"module_id"`
	Title         string             `db:"title"`
	Description   string             `db:"description"`
	VideoURL      string             `db:"video_url"`
	VideoDuration int                `db:"video_duration"`
	Order         int                `db:"position"`
	Resources     types.NullJSONText `db:"resources"`
}

// ListLessons returns the lessons of every module of a course.
func (r *EducatorRepository) ListLessons(ctx context.Context, courseID string) ([]models.CourseLesson, error) {
	const query = `SELECT l.id, l.module_id, l.title, l.description, l.video_url, l.video_duration, l.position, l.resources
        FROM course_lessons l JOIN course_modules m ON m.id = l.module_id WHERE m.course_id = $1 ORDER BY l.id`
	var rows []lessonRow
	if err := timed(r.observer, "educator.lessons", func() error {
		return r.db.SelectContext(ctx, &rows, query, courseID)
	}); err != nil {
		return nil, fmt.Errorf("list course lessons: %w", err)
	}
	lessons := make([]models.CourseLesson, 0, len(rows))
	for _, row := range rows {
		lesson := models.CourseLesson{
			ID:            row.ID,
			ModuleID:      row.ModuleID,
			Title:         row.Title,
			Description:   row.Description,
			VideoURL:      row.VideoURL,
			VideoDuration: row.VideoDuration,
			Order:         row.Order,
			Resources:     []models.LessonResource{},
		}
		if err := decodeJSON(row.Resources, &lesson.Resources, "course_lessons.resources"); err != nil {
			return nil, err
		}
		lessons = append(lessons, lesson)
	}
	return lessons, nil
}

type studentRow struct {
	ID               string       `db:"id"`
	CourseID         string       `db:"course_id"`
	Name             string       `db:"name"`
	Email            string       `db:"email"`
	Image            string       `db:"image"`
	EnrolledAt       time.Time    `db:"enrolled_at"`
	LastAccessAt     sql.NullTime `db:"last_access_at"`
	CompletedLessons int          `db:"completed_lessons"`
	TotalLessons     int          `db:"total_lessons"`
	Progress         int          `db:"progress"`
}

// ListStudents returns a course roster.
func (r *EducatorRepository) ListStudents(ctx context.Context, courseID string) ([]models.EnrolledStudent, error) {
	const query = `SELECT id, course_id, name, email, image, enrolled_at, last_access_at, completed_lessons, total_lessons, progress
        FROM enrolled_students WHERE course_id = $1 ORDER BY enrolled_at, id`
	var rows []studentRow
	if err := timed(r.observer, "educator.students", func() error {
		return r.db.SelectContext(ctx, &rows, query, courseID)
	}); err != nil {
		return nil, fmt.Errorf("list enrolled students: %w", err)
	}
	students := make([]models.EnrolledStudent, 0, len(rows))
	for _, row := range rows {
		students = append(students, models.EnrolledStudent{
			ID:               row.ID,
			CourseID:         row.CourseID,
			Name:             row.Name,
			Email:            row.Email,
			Image:            row.Image,
			EnrolledAt:       row.EnrolledAt,
			LastAccessAt:     row.LastAccessAt.Time,
			CompletedLessons: row.CompletedLessons,
			TotalLessons:     row.TotalLessons,
			Progress:         row.Progress,
		})
	}
	return students, nil
}

type templateRow struct {
	ID         string         `db:"id"`
	EducatorID string         `db:"educator_id"`
	Name       string         `db:"name"`
	Subject    string         `db:"subject"`
	Body       string         `db:"body"`
	Variables  pq.StringArray `db:"variables"`
	CreatedAt  time.Time      `db:"created_at"`
	UsageCount int            `db:"usage_count"`
}

// ListTemplates returns the educator's templates.
func (r *EducatorRepository) ListTemplates(ctx context.Context, educatorID string) ([]models.EmailTemplate, error) {
	const query = `SELECT id, educator_id, name, subject, body, variables, created_at, usage_count
        FROM email_templates WHERE educator_id = $1 ORDER BY created_at, id`
	var rows []templateRow
	if err := timed(r.observer, "educator.templates", func() error {
		return r.db.SelectContext(ctx, &rows, query, educatorID)
	}); err != nil {
		return nil, fmt.Errorf("list email templates: %w", err)
	}
	templates := make([]models.EmailTemplate, 0, len(rows))
	for _, row := range rows {
		templates = append(templates, models.EmailTemplate{
			ID:         row.ID,
			EducatorID: row.EducatorID,
			Name:       row.Name,
			Subject:    row.Subject,
			Body:       row.Body,
			Variables:  []string(row.Variables),
			CreatedAt:  row.CreatedAt,
			UsageCount: row.UsageCount,
		})
	}
	return templates, nil
}

// ListCampaigns returns the educator's campaigns. Absent dates come back as "".
func (r *EducatorRepository) ListCampaigns(ctx context.Context, educatorID string) ([]models.EmailCampaign, error) {
	const query = `SELECT id, educator_id, template_id, template_name, course_id, course_name, subject, status,
        recipient_count, sent_count, open_rate, COALESCE(scheduled_at, '') AS scheduled_at, COALESCE(sent_at, '') AS sent_at
        FROM email_campaigns WHERE educator_id = $1 ORDER BY id`
	campaigns := make([]models.EmailCampaign, 0)
	if err := timed(r.observer, "educator.campaigns", func() error {
		return r.db.SelectContext(ctx, &campaigns, query, educatorID)
	}); err != nil {
		return nil, fmt.Errorf("list email campaigns: %w", err)
	}
	return campaigns, nil
}
