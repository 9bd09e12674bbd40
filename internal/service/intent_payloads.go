package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/noah-isme/tinta-academy-api/internal/models"
)

type emptyPayload struct{}

type courseIDPayload struct {
	CourseID string `json:"courseId" validate:"required"`
}

type slugPayload struct {
	Slug string `json:"slug" validate:"required"`
}

type moduleIDPayload struct {
	ModuleID string `json:"moduleId" validate:"required"`
}

type moduleReorderPayload struct {
	ModuleIDs []string `json:"moduleIds" validate:"required,min=1,dive,required"`
}

type lessonIDPayload struct {
	LessonID string `json:"lessonId" validate:"required"`
}

type lessonReorderPayload struct {
	ModuleID  string   `json:"moduleId" validate:"required"`
	LessonIDs []string `json:"lessonIds" validate:"required,min=1,dive,required"`
}

type studentIDPayload struct {
	StudentID string `json:"studentId" validate:"required"`
}

type templateIDPayload struct {
	TemplateID string `json:"templateId" validate:"required"`
}

type campaignIDPayload struct {
	CampaignID string `json:"campaignId" validate:"required"`
}

type campaignSendPayload struct {
	CourseID    string  `json:"courseId" validate:"required"`
	TemplateID  string  `json:"templateId" validate:"required"`
	ScheduledAt *string `json:"scheduledAt" validate:"omitempty,datetime=2006-01-02T15:04:05"`
}

type orderIDPayload struct {
	OrderID string `json:"orderId" validate:"required"`
}

type resourceIDPayload struct {
	ResourceID string `json:"resourceId" validate:"required"`
}

type courseContinuePayload struct {
	CourseID string `json:"courseId" validate:"required"`
	LessonID string `json:"lessonId,omitempty"`
}

type profileSavePayload struct {
	Updates map[string]interface{} `json:"updates" validate:"required,min=1"`
}

type notificationsPayload struct {
	Preferences *models.NotificationPreferences `json:"preferences" validate:"required"`
}

type newsletterPayload struct {
	Email string `json:"email" validate:"required,email"`
}

type catalogFilterValues struct {
	Modality string   `json:"modality,omitempty" validate:"omitempty,oneof=presencial online"`
	Type     string   `json:"type,omitempty" validate:"omitempty,oneof=wset taller cata curso"`
	TagIDs   []string `json:"tagIds,omitempty" validate:"omitempty,dive,required"`
}

type catalogFilterPayload struct {
	Filters catalogFilterValues `json:"filters"`
}

type navigatePayload struct {
	Href string `json:"href" validate:"required"`
}

func newPayload[T any]() func() interface{} {
	return func() interface{} { return new(T) }
}

// intentPayloads maps every accepted kind to its payload shape.
var intentPayloads = map[models.IntentKind]func() interface{}{
	models.IntentCourseView:          newPayload[courseIDPayload](),
	models.IntentCourseViewSlug:      newPayload[slugPayload](),
	models.IntentCourseCreate:        newPayload[emptyPayload](),
	models.IntentCourseEdit:          newPayload[courseIDPayload](),
	models.IntentCourseDelete:        newPayload[courseIDPayload](),
	models.IntentCoursePublish:       newPayload[courseIDPayload](),
	models.IntentCourseDuplicate:     newPayload[courseIDPayload](),
	models.IntentCourseContinue:      newPayload[courseContinuePayload](),
	models.IntentModuleCreate:        newPayload[courseIDPayload](),
	models.IntentModuleEdit:          newPayload[moduleIDPayload](),
	models.IntentModuleDelete:        newPayload[moduleIDPayload](),
	models.IntentModuleReorder:       newPayload[moduleReorderPayload](),
	models.IntentLessonCreate:        newPayload[moduleIDPayload](),
	models.IntentLessonEdit:          newPayload[lessonIDPayload](),
	models.IntentLessonDelete:        newPayload[lessonIDPayload](),
	models.IntentLessonReorder:       newPayload[lessonReorderPayload](),
	models.IntentLessonComplete:      newPayload[lessonIDPayload](),
	models.IntentStudentView:         newPayload[studentIDPayload](),
	models.IntentStudentEmail:        newPayload[studentIDPayload](),
	models.IntentStudentExport:       newPayload[courseIDPayload](),
	models.IntentTemplateCreate:      newPayload[emptyPayload](),
	models.IntentTemplateEdit:        newPayload[templateIDPayload](),
	models.IntentTemplateDelete:      newPayload[templateIDPayload](),
	models.IntentTemplateDuplicate:   newPayload[templateIDPayload](),
	models.IntentTemplateUse:         newPayload[templateIDPayload](),
	models.IntentCampaignCreate:      newPayload[emptyPayload](),
	models.IntentCampaignView:        newPayload[campaignIDPayload](),
	models.IntentCampaignEdit:        newPayload[campaignIDPayload](),
	models.IntentCampaignDelete:      newPayload[campaignIDPayload](),
	models.IntentCampaignDuplicate:   newPayload[campaignIDPayload](),
	models.IntentCampaignSend:        newPayload[campaignSendPayload](),
	models.IntentOrderView:           newPayload[orderIDPayload](),
	models.IntentResourceDownload:    newPayload[resourceIDPayload](),
	models.IntentProfileSave:         newPayload[profileSavePayload](),
	models.IntentProfileNotification: newPayload[notificationsPayload](),
	models.IntentNewsletterSubscribe: newPayload[newsletterPayload](),
	models.IntentCatalogFilter:       newPayload[catalogFilterPayload](),
	models.IntentNavigate:            newPayload[navigatePayload](),
	models.IntentSessionLogin:        newPayload[emptyPayload](),
	models.IntentSessionRegister:     newPayload[emptyPayload](),
	models.IntentSessionLogout:       newPayload[emptyPayload](),
}

// IntentKinds lists every accepted kind.
func IntentKinds() []models.IntentKind {
	kinds := make([]models.IntentKind, 0, len(intentPayloads))
	for k := range intentPayloads {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// decodeIntentPayload parses raw into the shape registered for kind. A missing
// payload decodes as an empty object.
func decodeIntentPayload(kind models.IntentKind, raw json.RawMessage) (interface{}, error) {
	factory, ok := intentPayloads[kind]
	if !ok {
		return nil, errUnknownIntent(kind)
	}
	payload := factory()
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return payload, nil
	}
	if err := json.Unmarshal(trimmed, payload); err != nil {
		return nil, fmt.Errorf("decode %s payload: %w", kind, err)
	}
	return payload, nil
}
