package dto

import (
	"time"

	"github.com/noah-isme/tinta-academy-api/internal/models"
)

// Metrics origins reported on the educator dashboard.
const (
	MetricsFromSnapshot = "snapshot"
	MetricsFromRoster   = "roster"
)

// EducatorCourseView is an authored course with its display price.
type EducatorCourseView struct {
	models.EducatorCourse
	PriceLabel string `json:"priceLabel"`
}

// EducatorDashboardResponse is the educator home.
type EducatorDashboardResponse struct {
	Educator      models.EducatorProfile  `json:"educator"`
	Metrics       models.DashboardMetrics `json:"metrics"`
	MetricsSource string                  `json:"metricsSource"`
	StudentGrowth int                     `json:"studentGrowth"`
	QuickAccess   []EducatorCourseView    `json:"quickAccess"`
}

// CourseStatusCounts are the status chip badges.
type CourseStatusCounts struct {
	All       int `json:"all"`
	Draft     int `json:"draft"`
	Published int `json:"published"`
	Finished  int `json:"finished"`
}

// CourseModalityCounts are the modality chip badges.
type CourseModalityCounts struct {
	All        int `json:"all"`
	Online     int `json:"online"`
	Presencial int `json:"presencial"`
}

// CourseListFilters echoes the applied course list query.
type CourseListFilters struct {
	Search   string `json:"search"`
	Modality string `json:"modality"`
	Status   string `json:"status"`
	View     string `json:"view"`
}

// EducatorCoursesResponse is the filtered course list with badge counts.
type EducatorCoursesResponse struct {
	Courses        []EducatorCourseView `json:"courses"`
	StatusCounts   CourseStatusCounts   `json:"statusCounts"`
	ModalityCounts CourseModalityCounts `json:"modalityCounts"`
	Filters        CourseListFilters    `json:"filters"`
}

// EditorTab is a course editor section.
type EditorTab struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// OutlineModule is a module with its ordered lessons.
type OutlineModule struct {
	models.CourseModule
	Lessons []models.CourseLesson `json:"lessons"`
}

// CourseOutline is the editor view of a course.
type CourseOutline struct {
	Course        models.EducatorCourse `json:"course"`
	PriceLabel    string                `json:"priceLabel"`
	Tabs          []EditorTab           `json:"tabs"`
	Modules       []OutlineModule       `json:"modules"`
	TotalLessons  int                   `json:"totalLessons"`
	TotalDuration int                   `json:"totalDurationSeconds"`
}

// RosterSummary aggregates the full roster.
type RosterSummary struct {
	Total           int `json:"total"`
	Completed       int `json:"completed"`
	AverageProgress int `json:"averageProgress"`
	ActiveThisWeek  int `json:"activeThisWeek"`
}

// RosterSort is the applied roster ordering.
type RosterSort struct {
	Field     string `json:"field"`
	Direction string `json:"direction"`
}

// RosterResponse is a course's student list.
type RosterResponse struct {
	CourseID string                   `json:"courseId"`
	Search   string                   `json:"search"`
	Sort     RosterSort               `json:"sort"`
	Students []models.EnrolledStudent `json:"students"`
	Summary  RosterSummary            `json:"summary"`
}

// CampaignStatusCounts are the status chip badges.
type CampaignStatusCounts struct {
	All       int `json:"all"`
	Draft     int `json:"draft"`
	Scheduled int `json:"scheduled"`
	Sent      int `json:"sent"`
}

// CampaignListResponse is the filtered, ordered campaign history.
type CampaignListResponse struct {
	Campaigns []models.EmailCampaign `json:"campaigns"`
	Counts    CampaignStatusCounts   `json:"counts"`
}

// TemplateListResponse is the filtered template list.
type TemplateListResponse struct {
	Templates []models.EmailTemplate `json:"templates"`
	Total     int                    `json:"total"`
}

// TemplatePreview is a rendered template.
type TemplatePreview struct {
	TemplateID string `json:"templateId"`
	CourseID   string `json:"courseId,omitempty"`
	Subject    string `json:"subject"`
	Body       string `json:"body"`
}

// SendCourseOption is a course that can receive a campaign.
type SendCourseOption struct {
	ID             string          `json:"id"`
	Title          string          `json:"title"`
	Modality       models.Modality `json:"modality"`
	RecipientCount int             `json:"recipientCount"`
}

// SendTemplateOption is a selectable template.
type SendTemplateOption struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Subject string `json:"subject"`
}

// SendEmailOptionsResponse feeds the send form.
type SendEmailOptionsResponse struct {
	Courses     []SendCourseOption   `json:"courses"`
	Templates   []SendTemplateOption `json:"templates"`
	DefaultTime string               `json:"defaultTime"`
}

// CampaignSendPayload is the campaign.send intent payload. ScheduledAt is nil for
// immediate sends.
type CampaignSendPayload struct {
	CourseID    string  `json:"courseId"`
	TemplateID  string  `json:"templateId"`
	ScheduledAt *string `json:"scheduledAt"`
}

// SendEmailAccepted confirms a dispatched send.
type SendEmailAccepted struct {
	IntentID   string              `json:"intentId"`
	AcceptedAt time.Time           `json:"acceptedAt"`
	Payload    CampaignSendPayload `json:"payload"`
	Course     SendCourseOption    `json:"course"`
}
