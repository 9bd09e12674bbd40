package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/noah-isme/tinta-academy-api/internal/dto"
	"github.com/noah-isme/tinta-academy-api/internal/models"
	appErrors "github.com/noah-isme/tinta-academy-api/pkg/errors"
	"github.com/noah-isme/tinta-academy-api/pkg/export"
)

type learnerRepository interface {
	FindStudent(ctx context.Context, studentID string) (*models.StudentProfile, error)
	ListEnrollments(ctx context.Context, studentID string) ([]models.EnrolledCourse, error)
	ListOrders(ctx context.Context, studentID string) ([]models.Order, error)
}

// LearnerCoursesQuery is the student course list query string.
type LearnerCoursesQuery struct {
	Status string `form:"status" binding:"omitempty,oneof=all in_progress completed upcoming"`
	Type   string `form:"type" binding:"omitempty,oneof=all online in_person"`
}

// LearnerServiceConfig carries order conversion settings.
type LearnerServiceConfig struct {
	UYUPerUSD float64
}

// LearnerServiceParams groups constructor dependencies.
type LearnerServiceParams struct {
	Repo    learnerRepository
	Exports *ExportService
	Cache   *CacheService
	Logger  *zap.Logger
	Config  LearnerServiceConfig
}

// LearnerService composes the student panel views.
type LearnerService struct {
	repo    learnerRepository
	exports *ExportService
	cache   *CacheService
	logger  *zap.Logger
	cfg     LearnerServiceConfig
}

// NewLearnerService constructs a LearnerService.
func NewLearnerService(params LearnerServiceParams) *LearnerService {
	cfg := params.Config
	if cfg.UYUPerUSD <= 0 {
		cfg.UYUPerUSD = DefaultUYUPerUSD
	}
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	exports := params.Exports
	if exports == nil {
		exports = NewExportService(nil, nil, logger)
	}
	return &LearnerService{repo: params.Repo, exports: exports, cache: params.Cache, logger: logger, cfg: cfg}
}

func studentKey(studentID, part string) string {
	return fmt.Sprintf("tinta:source:student:%s:%s", studentID, part)
}

func (s *LearnerService) sourceError(err error, what string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return appErrors.Clone(appErrors.ErrNotFound, what+" not found")
	}
	s.logger.Error("load source failed", zap.String("source", what), zap.Error(err))
	return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load "+what)
}

func (s *LearnerService) profile(ctx context.Context, studentID string) (*models.StudentProfile, bool, error) {
	profile, hit, err := loadThrough(ctx, s.cache, studentKey(studentID, "profile"), func(ctx context.Context) (*models.StudentProfile, error) {
		return s.repo.FindStudent(ctx, studentID)
	})
	if err != nil {
		return nil, false, s.sourceError(err, "student")
	}
	return profile, hit, nil
}

// Profile returns the read-only profile.
func (s *LearnerService) Profile(ctx context.Context, studentID string) (*dto.LearnerProfileResponse, bool, error) {
	profile, hit, err := s.profile(ctx, studentID)
	if err != nil {
		return nil, false, err
	}
	name := profile.FullName()
	return &dto.LearnerProfileResponse{Profile: *profile, FullName: name, Initials: Initials(name)}, hit, nil
}

// Courses returns the student's courses filtered by status and type, in progress first.
// Counts cover every enrollment.
func (s *LearnerService) Courses(ctx context.Context, studentID string, query LearnerCoursesQuery) (*dto.LearnerCoursesResponse, bool, error) {
	_, hit, err := s.profile(ctx, studentID)
	if err != nil {
		return nil, false, err
	}
	courses, coursesHit, err := loadThrough(ctx, s.cache, studentKey(studentID, "enrollments"), func(ctx context.Context) ([]models.EnrolledCourse, error) {
		return s.repo.ListEnrollments(ctx, studentID)
	})
	if err != nil {
		return nil, false, s.sourceError(err, "enrollments")
	}
	return &dto.LearnerCoursesResponse{
		Courses: FilterEnrolledCourses(courses, EnrollmentFilter{Status: query.Status, CourseType: query.Type}),
		Counts:  CountEnrolledCourses(courses),
	}, hit && coursesHit, nil
}

func (s *LearnerService) orders(ctx context.Context, studentID string) (*models.StudentProfile, []models.Order, bool, error) {
	profile, hit, err := s.profile(ctx, studentID)
	if err != nil {
		return nil, nil, false, err
	}
	orders, ordersHit, err := loadThrough(ctx, s.cache, studentKey(studentID, "orders"), func(ctx context.Context) ([]models.Order, error) {
		return s.repo.ListOrders(ctx, studentID)
	})
	if err != nil {
		return nil, nil, false, s.sourceError(err, "orders")
	}
	return profile, SortOrders(orders), hit && ordersHit, nil
}

// Orders returns the order history newest first with the paid total in USD.
func (s *LearnerService) Orders(ctx context.Context, studentID string) (*dto.OrderHistoryResponse, bool, error) {
	_, orders, hit, err := s.orders(ctx, studentID)
	if err != nil {
		return nil, false, err
	}
	views := make([]dto.OrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, dto.OrderView{
			Order:              o,
			StatusLabel:        OrderStatusLabel(o.Status),
			PaymentMethodLabel: PaymentMethodLabel(o.PaymentMethod),
			AmountLabel:        AmountLabel(o.Amount, o.Currency),
		})
	}
	return &dto.OrderHistoryResponse{Orders: views, Summary: SummarizeOrders(orders, s.cfg.UYUPerUSD)}, hit, nil
}

// ExportOrders renders the order history.
func (s *LearnerService) ExportOrders(ctx context.Context, studentID string, format export.Format) (*ExportFile, error) {
	profile, orders, _, err := s.orders(ctx, studentID)
	if err != nil {
		return nil, err
	}
	return s.exports.Orders(*profile, orders, SummarizeOrders(orders, s.cfg.UYUPerUSD), format)
}
