package models

import (
	"encoding/json"
	"time"
)

// IntentKind names a user intent the host application handles.
type IntentKind string

const (
	IntentCourseView          IntentKind = "course.view"
	IntentCourseViewSlug      IntentKind = "course.view_slug"
	IntentCourseCreate        IntentKind = "course.create"
	IntentCourseEdit          IntentKind = "course.edit"
	IntentCourseDelete        IntentKind = "course.delete"
	IntentCoursePublish       IntentKind = "course.publish"
	IntentCourseDuplicate     IntentKind = "course.duplicate"
	IntentCourseContinue      IntentKind = "course.continue"
	IntentModuleCreate        IntentKind = "module.create"
	IntentModuleEdit          IntentKind = "module.edit"
	IntentModuleDelete        IntentKind = "module.delete"
	IntentModuleReorder       IntentKind = "module.reorder"
	IntentLessonCreate        IntentKind = "lesson.create"
	IntentLessonEdit          IntentKind = "lesson.edit"
	IntentLessonDelete        IntentKind = "lesson.delete"
	IntentLessonReorder       IntentKind = "lesson.reorder"
	IntentLessonComplete      IntentKind = "lesson.complete"
	IntentStudentView         IntentKind = "student.view"
	IntentStudentEmail        IntentKind = "student.email"
	IntentStudentExport       IntentKind = "student.export"
	IntentTemplateCreate      IntentKind = "template.create"
	IntentTemplateEdit        IntentKind = "template.edit"
	IntentTemplateDelete      IntentKind = "template.delete"
	IntentTemplateDuplicate   IntentKind = "template.duplicate"
	IntentTemplateUse         IntentKind = "template.use"
	IntentCampaignCreate      IntentKind = "campaign.create"
	IntentCampaignView        IntentKind = "campaign.view"
	IntentCampaignEdit        IntentKind = "campaign.edit"
	IntentCampaignDelete      IntentKind = "campaign.delete"
	IntentCampaignDuplicate   IntentKind = "campaign.duplicate"
	IntentCampaignSend        IntentKind = "campaign.send"
	IntentOrderView           IntentKind = "order.view"
	IntentResourceDownload    IntentKind = "resource.download"
	IntentProfileSave         IntentKind = "profile.save"
	IntentProfileNotification IntentKind = "profile.notifications"
	IntentNewsletterSubscribe IntentKind = "newsletter.subscribe"
	IntentCatalogFilter       IntentKind = "catalog.filter"
	IntentNavigate            IntentKind = "navigate"
	IntentSessionLogin        IntentKind = "session.login"
	IntentSessionRegister     IntentKind = "session.register"
	IntentSessionLogout       IntentKind = "session.logout"
)

// Intent is an accepted user intent ready for dispatch.
type Intent struct {
	ID         string          `json:"id"`
	Kind       IntentKind      `json:"kind"`
	Payload    json.RawMessage `json:"payload"`
	ActorID    string          `json:"actorId,omitempty"`
	RequestID  string          `json:"requestId,omitempty"`
	AcceptedAt time.Time       `json:"acceptedAt"`
}
