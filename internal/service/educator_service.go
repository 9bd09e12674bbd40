package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/tinta-academy-api/internal/dto"
	"github.com/noah-isme/tinta-academy-api/internal/models"
	appErrors "github.com/noah-isme/tinta-academy-api/pkg/errors"
	"github.com/noah-isme/tinta-academy-api/pkg/export"
)

type educatorRepository interface {
	FindEducator(ctx context.Context, educatorID string) (*models.EducatorProfile, error)
	DashboardMetrics(ctx context.Context, educatorID string) (*models.DashboardMetrics, error)
	ListCourses(ctx context.Context, educatorID string) ([]models.EducatorCourse, error)
	ListModules(ctx context.Context, courseID string) ([]models.CourseModule, error)
	ListLessons(ctx context.Context, courseID string) ([]models.CourseLesson, error)
	ListStudents(ctx context.Context, courseID string) ([]models.EnrolledStudent, error)
	ListTemplates(ctx context.Context, educatorID string) ([]models.EmailTemplate, error)
	ListCampaigns(ctx context.Context, educatorID string) ([]models.EmailCampaign, error)
}

type intentDispatcher interface {
	Dispatch(ctx context.Context, kind models.IntentKind, payload interface{}, actorID string) (*models.Intent, error)
}

// Course list view modes.
const (
	ViewGrid = "grid"
	ViewList = "list"
)

// CourseListQuery is the educator course list query string.
type CourseListQuery struct {
	Search   string `form:"search"`
	Modality string `form:"modality" binding:"omitempty,oneof=all online presencial"`
	Status   string `form:"status" binding:"omitempty,oneof=all draft published finished"`
	View     string `form:"view" binding:"omitempty,oneof=grid list"`
}

// RosterQuery is the roster query string.
type RosterQuery struct {
	Search string `form:"search"`
	Sort   string `form:"sort" binding:"omitempty,oneof=name progress enrolledAt lastAccessAt"`
	Order  string `form:"order" binding:"omitempty,oneof=asc desc"`
}

// CampaignListQuery is the campaign history query string.
type CampaignListQuery struct {
	Search string `form:"search"`
	Status string `form:"status" binding:"omitempty,oneof=all draft scheduled sent"`
}

// EducatorServiceConfig tunes educator panel composition.
type EducatorServiceConfig struct {
	QuickAccessLimit int
}

// EducatorServiceParams groups constructor dependencies.
type EducatorServiceParams struct {
	Repo      educatorRepository
	Intents   intentDispatcher
	Exports   *ExportService
	Renderer  *TemplateRenderer
	Cache     *CacheService
	Validator *validator.Validate
	Logger    *zap.Logger
	Config    EducatorServiceConfig
}

// EducatorService composes the educator panel views from source records.
type EducatorService struct {
	repo      educatorRepository
	intents   intentDispatcher
	exports   *ExportService
	renderer  *TemplateRenderer
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
	cfg       EducatorServiceConfig
}

// NewEducatorService constructs an EducatorService with sane defaults.
func NewEducatorService(params EducatorServiceParams) *EducatorService {
	cfg := params.Config
	if cfg.QuickAccessLimit <= 0 {
		cfg.QuickAccessLimit = 4
	}
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	validate := params.Validator
	if validate == nil {
		validate = validator.New()
	}
	exports := params.Exports
	if exports == nil {
		exports = NewExportService(nil, nil, logger)
	}
	renderer := params.Renderer
	if renderer == nil {
		renderer = NewTemplateRenderer()
	}
	return &EducatorService{
		repo:      params.Repo,
		intents:   params.Intents,
		exports:   exports,
		renderer:  renderer,
		cache:     params.Cache,
		validator: validate,
		logger:    logger,
		now:       time.Now,
		cfg:       cfg,
	}
}

func educatorKey(educatorID, part string) string {
	return fmt.Sprintf("tinta:source:educator:%s:%s", educatorID, part)
}

func courseKey(courseID, part string) string {
	return fmt.Sprintf("tinta:source:course:%s:%s", courseID, part)
}

func (s *EducatorService) sourceError(err error, what string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return appErrors.Clone(appErrors.ErrNotFound, what+" not found")
	}
	s.logger.Error("load source failed", zap.String("source", what), zap.Error(err))
	return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load "+what)
}

func (s *EducatorService) profile(ctx context.Context, educatorID string) (*models.EducatorProfile, bool, error) {
	profile, hit, err := loadThrough(ctx, s.cache, educatorKey(educatorID, "profile"), func(ctx context.Context) (*models.EducatorProfile, error) {
		return s.repo.FindEducator(ctx, educatorID)
	})
	if err != nil {
		return nil, false, s.sourceError(err, "educator")
	}
	return profile, hit, nil
}

func (s *EducatorService) courses(ctx context.Context, educatorID string) ([]models.EducatorCourse, bool, error) {
	if _, _, err := s.profile(ctx, educatorID); err != nil {
		return nil, false, err
	}
	courses, hit, err := loadThrough(ctx, s.cache, educatorKey(educatorID, "courses"), func(ctx context.Context) ([]models.EducatorCourse, error) {
		return s.repo.ListCourses(ctx, educatorID)
	})
	if err != nil {
		return nil, false, s.sourceError(err, "courses")
	}
	return courses, hit, nil
}

// course resolves courseID among the educator's own courses.
func (s *EducatorService) course(ctx context.Context, educatorID, courseID string) (*models.EducatorCourse, bool, error) {
	courses, hit, err := s.courses(ctx, educatorID)
	if err != nil {
		return nil, false, err
	}
	for i := range courses {
		if courses[i].ID == courseID {
			return &courses[i], hit, nil
		}
	}
	return nil, false, appErrors.Clone(appErrors.ErrNotFound, "course not found")
}

func (s *EducatorService) students(ctx context.Context, courseID string) ([]models.EnrolledStudent, bool, error) {
	students, hit, err := loadThrough(ctx, s.cache, courseKey(courseID, "students"), func(ctx context.Context) ([]models.EnrolledStudent, error) {
		return s.repo.ListStudents(ctx, courseID)
	})
	if err != nil {
		return nil, false, s.sourceError(err, "students")
	}
	return students, hit, nil
}

func (s *EducatorService) templates(ctx context.Context, educatorID string) ([]models.EmailTemplate, bool, error) {
	templates, hit, err := loadThrough(ctx, s.cache, educatorKey(educatorID, "templates"), func(ctx context.Context) ([]models.EmailTemplate, error) {
		return s.repo.ListTemplates(ctx, educatorID)
	})
	if err != nil {
		return nil, false, s.sourceError(err, "templates")
	}
	return templates, hit, nil
}

// Dashboard returns the educator home. Metrics come from the source snapshot when
// present and are derived from the rosters otherwise.
func (s *EducatorService) Dashboard(ctx context.Context, educatorID string) (*dto.EducatorDashboardResponse, bool, error) {
	profile, hit, err := s.profile(ctx, educatorID)
	if err != nil {
		return nil, false, err
	}
	courses, coursesHit, err := s.courses(ctx, educatorID)
	if err != nil {
		return nil, false, err
	}
	hit = hit && coursesHit

	snapshot, snapshotHit, err := loadThrough(ctx, s.cache, educatorKey(educatorID, "metrics"), func(ctx context.Context) (*models.DashboardMetrics, error) {
		return s.repo.DashboardMetrics(ctx, educatorID)
	})
	if err != nil {
		return nil, false, s.sourceError(err, "metrics")
	}
	hit = hit && snapshotHit

	resp := &dto.EducatorDashboardResponse{Educator: *profile, MetricsSource: dto.MetricsFromSnapshot}
	if snapshot != nil {
		resp.Metrics = *snapshot
	} else {
		var all []models.EnrolledStudent
		for _, c := range courses {
			roster, rosterHit, err := s.students(ctx, c.ID)
			if err != nil {
				return nil, false, err
			}
			hit = hit && rosterHit
			all = append(all, roster...)
		}
		resp.Metrics = RosterMetrics(courses, all, s.now())
		resp.MetricsSource = dto.MetricsFromRoster
	}
	resp.StudentGrowth = StudentGrowth(resp.Metrics.StudentsThisMonth, resp.Metrics.StudentsLastMonth)
	resp.QuickAccess = courseViews(QuickAccessCourses(courses, s.cfg.QuickAccessLimit))
	return resp, hit, nil
}

// Courses returns the filtered course list with badge counts over every course.
func (s *EducatorService) Courses(ctx context.Context, educatorID string, query CourseListQuery) (*dto.EducatorCoursesResponse, bool, error) {
	courses, hit, err := s.courses(ctx, educatorID)
	if err != nil {
		return nil, false, err
	}
	view := query.View
	if view == "" {
		view = ViewGrid
	}
	filtered := FilterEducatorCourses(courses, EducatorCourseFilter{Search: query.Search, Modality: query.Modality, Status: query.Status})
	return &dto.EducatorCoursesResponse{
		Courses:        courseViews(filtered),
		StatusCounts:   CountCoursesByStatus(courses),
		ModalityCounts: CountCoursesByModality(courses),
		Filters: dto.CourseListFilters{
			Search:   query.Search,
			Modality: orAll(query.Modality),
			Status:   orAll(query.Status),
			View:     view,
		},
	}, hit, nil
}

// Outline returns the course editor view.
func (s *EducatorService) Outline(ctx context.Context, educatorID, courseID string) (*dto.CourseOutline, bool, error) {
	course, hit, err := s.course(ctx, educatorID, courseID)
	if err != nil {
		return nil, false, err
	}
	modules, modulesHit, err := loadThrough(ctx, s.cache, courseKey(courseID, "modules"), func(ctx context.Context) ([]models.CourseModule, error) {
		return s.repo.ListModules(ctx, courseID)
	})
	if err != nil {
		return nil, false, s.sourceError(err, "modules")
	}
	lessons, lessonsHit, err := loadThrough(ctx, s.cache, courseKey(courseID, "lessons"), func(ctx context.Context) ([]models.CourseLesson, error) {
		return s.repo.ListLessons(ctx, courseID)
	})
	if err != nil {
		return nil, false, s.sourceError(err, "lessons")
	}
	outline := BuildCourseOutline(*course, modules, lessons)
	return &outline, hit && modulesHit && lessonsHit, nil
}

func (s *EducatorService) roster(ctx context.Context, educatorID, courseID string, query RosterQuery) (*models.EducatorCourse, []models.EnrolledStudent, []models.EnrolledStudent, StudentSort, bool, error) {
	course, hit, err := s.course(ctx, educatorID, courseID)
	if err != nil {
		return nil, nil, nil, StudentSort{}, false, err
	}
	students, studentsHit, err := s.students(ctx, courseID)
	if err != nil {
		return nil, nil, nil, StudentSort{}, false, err
	}
	order := ParseStudentSort(query.Sort, query.Order)
	visible := SortStudents(FilterStudents(students, query.Search), order)
	return course, students, visible, order, hit && studentsHit, nil
}

// Roster returns a course's filtered, sorted students. The summary covers the whole roster.
func (s *EducatorService) Roster(ctx context.Context, educatorID, courseID string, query RosterQuery) (*dto.RosterResponse, bool, error) {
	_, all, visible, order, hit, err := s.roster(ctx, educatorID, courseID, query)
	if err != nil {
		return nil, false, err
	}
	return &dto.RosterResponse{
		CourseID: courseID,
		Search:   query.Search,
		Sort:     dto.RosterSort{Field: string(order.Field), Direction: string(order.Direction)},
		Students: visible,
		Summary:  SummarizeRoster(all, s.now().UTC()),
	}, hit, nil
}

// ExportRoster renders the roster as it is currently filtered and sorted.
func (s *EducatorService) ExportRoster(ctx context.Context, educatorID, courseID string, query RosterQuery, format export.Format) (*ExportFile, error) {
	course, _, visible, _, _, err := s.roster(ctx, educatorID, courseID, query)
	if err != nil {
		return nil, err
	}
	return s.exports.Roster(*course, visible, format)
}

// Campaigns returns the filtered, ordered campaign history.
func (s *EducatorService) Campaigns(ctx context.Context, educatorID string, query CampaignListQuery) (*dto.CampaignListResponse, bool, error) {
	if _, _, err := s.profile(ctx, educatorID); err != nil {
		return nil, false, err
	}
	campaigns, hit, err := loadThrough(ctx, s.cache, educatorKey(educatorID, "campaigns"), func(ctx context.Context) ([]models.EmailCampaign, error) {
		return s.repo.ListCampaigns(ctx, educatorID)
	})
	if err != nil {
		return nil, false, s.sourceError(err, "campaigns")
	}
	return &dto.CampaignListResponse{
		Campaigns: SortCampaigns(FilterCampaigns(campaigns, CampaignFilter{Search: query.Search, Status: query.Status})),
		Counts:    CountCampaignsByStatus(campaigns),
	}, hit, nil
}

// Templates returns the templates matching search, most used first.
func (s *EducatorService) Templates(ctx context.Context, educatorID, search string) (*dto.TemplateListResponse, bool, error) {
	if _, _, err := s.profile(ctx, educatorID); err != nil {
		return nil, false, err
	}
	templates, hit, err := s.templates(ctx, educatorID)
	if err != nil {
		return nil, false, err
	}
	return &dto.TemplateListResponse{Templates: FilterTemplates(templates, search), Total: len(templates)}, hit, nil
}

// PreviewTemplate renders a template with sample values. courseID is optional and
// supplies the course title.
func (s *EducatorService) PreviewTemplate(ctx context.Context, educatorID, templateID, courseID string) (*dto.TemplatePreview, error) {
	if _, _, err := s.profile(ctx, educatorID); err != nil {
		return nil, err
	}
	templates, _, err := s.templates(ctx, educatorID)
	if err != nil {
		return nil, err
	}
	var tpl *models.EmailTemplate
	for i := range templates {
		if templates[i].ID == templateID {
			tpl = &templates[i]
			break
		}
	}
	if tpl == nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "template not found")
	}

	title := ""
	if courseID = strings.TrimSpace(courseID); courseID != "" {
		course, _, err := s.course(ctx, educatorID, courseID)
		if err != nil {
			return nil, err
		}
		title = course.Title
	}
	preview, err := s.renderer.Preview(*tpl, title)
	if err != nil {
		return nil, err
	}
	preview.CourseID = courseID
	return preview, nil
}

// SendEmailOptions lists the courses and templates the send form offers.
func (s *EducatorService) SendEmailOptions(ctx context.Context, educatorID string) (*dto.SendEmailOptionsResponse, bool, error) {
	courses, hit, err := s.courses(ctx, educatorID)
	if err != nil {
		return nil, false, err
	}
	templates, templatesHit, err := s.templates(ctx, educatorID)
	if err != nil {
		return nil, false, err
	}
	options := make([]dto.SendTemplateOption, 0, len(templates))
	for _, t := range templates {
		options = append(options, dto.SendTemplateOption{ID: t.ID, Name: t.Name, Subject: t.Subject})
	}
	return &dto.SendEmailOptionsResponse{
		Courses:     SendOptions(courses),
		Templates:   options,
		DefaultTime: DefaultSendTime,
	}, hit && templatesHit, nil
}

// SendEmail validates a send request and emits the campaign.send intent.
func (s *EducatorService) SendEmail(ctx context.Context, educatorID string, req SendEmailRequest) (*dto.SendEmailAccepted, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Invalid(err, "invalid payload")
	}
	courses, _, err := s.courses(ctx, educatorID)
	if err != nil {
		return nil, err
	}
	templates, _, err := s.templates(ctx, educatorID)
	if err != nil {
		return nil, err
	}
	payload, option, err := BuildCampaignSend(req, courses, templates, s.now())
	if err != nil {
		return nil, err
	}
	if s.intents == nil {
		return nil, appErrors.ErrDispatchUnavailable
	}
	intent, err := s.intents.Dispatch(ctx, models.IntentCampaignSend, payload, educatorID)
	if err != nil {
		return nil, err
	}
	return &dto.SendEmailAccepted{
		IntentID:   intent.ID,
		AcceptedAt: intent.AcceptedAt,
		Payload:    *payload,
		Course:     *option,
	}, nil
}

func courseViews(courses []models.EducatorCourse) []dto.EducatorCourseView {
	views := make([]dto.EducatorCourseView, 0, len(courses))
	for _, c := range courses {
		views = append(views, dto.EducatorCourseView{EducatorCourse: c, PriceLabel: PriceLabel(c)})
	}
	return views
}

func orAll(v string) string {
	if v == "" {
		return FilterAll
	}
	return v
}
