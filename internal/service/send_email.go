package service

import (
	"strings"
	"time"

	"github.com/noah-isme/tinta-academy-api/internal/dto"
	"github.com/noah-isme/tinta-academy-api/internal/models"
	appErrors "github.com/noah-isme/tinta-academy-api/pkg/errors"
)

// ScheduleType is when a campaign goes out.
type ScheduleType string

const (
	ScheduleNow       ScheduleType = "now"
	ScheduleScheduled ScheduleType = "scheduled"
)

// DefaultSendTime is used when a scheduled send omits the time.
const DefaultSendTime = "09:00"

// RecipientCount is the audience size: every student for online courses, enrolled
// seats for on-site ones.
func RecipientCount(c models.EducatorCourse) int {
	if c.Modality == models.ModalityOnline {
		return c.TotalStudents
	}
	return c.EnrolledCount
}

// SendOptions lists published courses with their audience size.
func SendOptions(courses []models.EducatorCourse) []dto.SendCourseOption {
	out := make([]dto.SendCourseOption, 0, len(courses))
	for _, c := range courses {
		if c.Status != models.EducatorCoursePublished {
			continue
		}
		out = append(out, dto.SendCourseOption{ID: c.ID, Title: c.Title, Modality: c.Modality, RecipientCount: RecipientCount(c)})
	}
	return out
}

// SendEmailRequest is the send form.
type SendEmailRequest struct {
	CourseID      string       `json:"courseId" validate:"required"`
	TemplateID    string       `json:"templateId" validate:"required"`
	ScheduleType  ScheduleType `json:"scheduleType" validate:"omitempty,oneof=now scheduled"`
	ScheduledDate string       `json:"scheduledDate" validate:"omitempty,datetime=2006-01-02"`
	ScheduledTime string       `json:"scheduledTime" validate:"omitempty,datetime=15:04"`
}

// ScheduledAt builds the local timestamp "<date>T<time>:00", or nil for immediate sends.
func ScheduledAt(req SendEmailRequest) *string {
	if req.ScheduleType != ScheduleScheduled || req.ScheduledDate == "" {
		return nil
	}
	t := strings.TrimSpace(req.ScheduledTime)
	if t == "" {
		t = DefaultSendTime
	}
	at := req.ScheduledDate + "T" + t + ":00"
	return &at
}

// BuildCampaignSend checks the request against the educator's courses and templates
// and returns the intent payload. Scheduled dates before today are rejected.
func BuildCampaignSend(req SendEmailRequest, courses []models.EducatorCourse, templates []models.EmailTemplate, today time.Time) (*dto.CampaignSendPayload, *dto.SendCourseOption, error) {
	var course *models.EducatorCourse
	for i := range courses {
		if courses[i].ID == req.CourseID {
			course = &courses[i]
			break
		}
	}
	if course == nil {
		return nil, nil, appErrors.Clone(appErrors.ErrNotFound, "course not found")
	}
	if course.Status != models.EducatorCoursePublished {
		return nil, nil, appErrors.ErrCourseNotPublished
	}
	found := false
	for _, t := range templates {
		if t.ID == req.TemplateID {
			found = true
			break
		}
	}
	if !found {
		return nil, nil, appErrors.Clone(appErrors.ErrNotFound, "template not found")
	}
	if req.ScheduleType == ScheduleScheduled {
		if req.ScheduledDate == "" {
			return nil, nil, appErrors.Clone(appErrors.ErrValidation, "scheduledDate is required for scheduled sends")
		}
		if req.ScheduledDate < today.Format("2006-01-02") {
			return nil, nil, appErrors.Clone(appErrors.ErrValidation, "scheduledDate cannot be in the past")
		}
	}
	option := dto.SendCourseOption{ID: course.ID, Title: course.Title, Modality: course.Modality, RecipientCount: RecipientCount(*course)}
	return &dto.CampaignSendPayload{
		CourseID:    req.CourseID,
		TemplateID:  req.TemplateID,
		ScheduledAt: ScheduledAt(req),
	}, &option, nil
}
