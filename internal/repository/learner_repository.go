package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/jmoiron/sqlx/types"

	"github.com/noah-isme/tinta-academy-api/internal/models"
)

// LearnerRepository reads student panel records from PostgreSQL.
type LearnerRepository struct {
	db       *sqlx.DB
	observer QueryObserver
}

// NewLearnerRepository constructs a LearnerRepository.
func NewLearnerRepository(db *sqlx.DB, observer QueryObserver) *LearnerRepository {
	return &LearnerRepository{db: db, observer: observerOrNop(observer)}
}

type profileRow struct {
	ID                 string `db:"id"`
	Email              string `db:"email"`
	FirstName          string `db:"first_name"`
	LastName           string `db:"last_name"`
	BirthDate          string `db:"birth_date"`
	AvatarURL          string `db:"avatar_url"`
	Phone              string `db:"phone"`
	Address            string `db:"address"`
	City               string `db:"city"`
	PostalCode         string `db:"postal_code"`
	Country            string `db:"country"`
	BillingName        string `db:"billing_name"`
	BillingTaxID       string `db:"billing_tax_id"`
	BillingAddress     string `db:"billing_address"`
	EmailNewCourses    bool   `db:"email_new_courses"`
	EmailPromotions    bool   `db:"email_promotions"`
	EmailCourseUpdates bool   `db:"email_course_updates"`
}

// FindStudent returns the learner profile or sql.ErrNoRows.
func (r *LearnerRepository) FindStudent(ctx context.Context, studentID string) (*models.StudentProfile, error) {
	const query = `SELECT id, email, first_name, last_name, birth_date, avatar_url, phone, address, city, postal_code, country,
        billing_name, billing_tax_id, billing_address, email_new_courses, email_promotions, email_course_updates
        FROM students WHERE id = $1`
	var row profileRow
	err := timed(r.observer, "learner.find", func() error {
		return r.db.GetContext(ctx, &row, query, studentID)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		return nil, fmt.Errorf("get student: %w", err)
	}
	return &models.StudentProfile{
		ID:             row.ID,
		Email:          row.Email,
		FirstName:      row.FirstName,
		LastName:       row.LastName,
		BirthDate:      row.BirthDate,
		AvatarURL:      row.AvatarURL,
		Phone:          row.Phone,
		Address:        row.Address,
		City:           row.City,
		PostalCode:     row.PostalCode,
		Country:        row.Country,
		BillingName:    row.BillingName,
		BillingTaxID:   row.BillingTaxID,
		BillingAddress: row.BillingAddress,
		NotificationPreferences: models.NotificationPreferences{
			EmailNewCourses:    row.EmailNewCourses,
			EmailPromotions:    row.EmailPromotions,
			EmailCourseUpdates: row.EmailCourseUpdates,
		},
	}, nil
}

type enrollmentRow struct {
	ID             string             `db:"id"`
	CourseID       string             `db:"course_id"`
	CourseType     string             `db:"course_type"`
	CourseCategory string             `db:"course_category"`
	Title          string             `db:"title"`
	Slug           string             `db:"slug"`
	Thumbnail      string             `db:"thumbnail"`
	EducatorName   string             `db:"educator_name"`
	EnrolledAt     time.Time          `db:"enrolled_at"`
	Status         string             `db:"status"`
	Progress       types.NullJSONText `db:"progress"`
	Modules        types.NullJSONText `db:"modules"`
	EventInfo      types.NullJSONText `db:"event_info"`
	Resources      types.NullJSONText `db:"resources"`
}

func (r enrollmentRow) model() (models.EnrolledCourse, error) {
	course := models.EnrolledCourse{
		ID:             r.ID,
		CourseID:       r.CourseID,
		CourseType:     models.EnrolledCourseType(r.CourseType),
		CourseCategory: r.CourseCategory,
		Title:          r.Title,
		Slug:           r.Slug,
		Thumbnail:      r.Thumbnail,
		EducatorName:   r.EducatorName,
		EnrolledAt:     r.EnrolledAt,
		Status:         models.EnrollmentStatus(r.Status),
		Resources:      []models.LearnerResource{},
	}
	if r.Progress.Valid {
		course.Progress = &models.CourseProgress{}
		if err := decodeJSON(r.Progress, course.Progress, "enrollments.progress"); err != nil {
			return course, err
		}
	}
	if r.EventInfo.Valid {
		course.EventInfo = &models.EventInfo{}
		if err := decodeJSON(r.EventInfo, course.EventInfo, "enrollments.event_info"); err != nil {
			return course, err
		}
	}
	if err := decodeJSON(r.Modules, &course.Modules, "enrollments.modules"); err != nil {
		return course, err
	}
	if err := decodeJSON(r.Resources, &course.Resources, "enrollments.resources"); err != nil {
		return course, err
	}
	return course, nil
}

// ListEnrollments returns the learner's courses in enrollment order.
func (r *LearnerRepository) ListEnrollments(ctx context.Context, studentID string) ([]models.EnrolledCourse, error) {
	const query = `SELECT id, course_id, course_type, course_category, title, slug, thumbnail, educator_name, enrolled_at, status,
        progress, modules, event_info, resources FROM enrollments WHERE student_id = $1 ORDER BY enrolled_at, id`
	var rows []enrollmentRow
	if err := timed(r.observer, "learner.enrollments", func() error {
		return r.db.SelectContext(ctx, &rows, query, studentID)
	}); err != nil {
		return nil, fmt.Errorf("list enrollments: %w", err)
	}
	courses := make([]models.EnrolledCourse, 0, len(rows))
	for _, row := range rows {
		course, err := row.model()
		if err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}
	return courses, nil
}

// ListOrders returns the learner's orders.
func (r *LearnerRepository) ListOrders(ctx context.Context, studentID string) ([]models.Order, error) {
	const query = `SELECT id, order_number, course_id, course_title, created_at, amount, currency, payment_method, status
        FROM orders WHERE student_id = $1 ORDER BY id`
	orders := make([]models.Order, 0)
	if err := timed(r.observer, "learner.orders", func() error {
		return r.db.SelectContext(ctx, &orders, query, studentID)
	}); err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}
