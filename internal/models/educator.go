package models

import "time"

// EducatorCourseStatus is the authoring lifecycle of a course.
type EducatorCourseStatus string

const (
	EducatorCourseDraft     EducatorCourseStatus = "draft"
	EducatorCoursePublished EducatorCourseStatus = "published"
	EducatorCourseFinished  EducatorCourseStatus = "finished"
)

// EducatorProfile is the signed-in educator.
type EducatorProfile struct {
	ID    string `db:"id" json:"id" yaml:"id"`
	Name  string `db:"name" json:"name" yaml:"name"`
	Title string `db:"title" json:"title" yaml:"title"`
	Bio   string `db:"bio" json:"bio" yaml:"bio"`
	Email string `db:"email" json:"email" yaml:"email"`
	Image string `db:"image" json:"image" yaml:"image"`
}

// ChartPoint is one monthly sample.
type ChartPoint struct {
	Month string  `json:"month" yaml:"month"`
	Value float64 `json:"value" yaml:"value"`
}

// ChartData carries the dashboard sparklines.
type ChartData struct {
	Students []ChartPoint `json:"students" yaml:"students"`
	Progress []ChartPoint `json:"progress" yaml:"progress"`
}

// DashboardMetrics is the educator metrics snapshot.
type DashboardMetrics struct {
	TotalStudents     int       `json:"totalStudents" yaml:"totalStudents"`
	ActiveStudents    int       `json:"activeStudents" yaml:"activeStudents"`
	TotalCourses      int       `json:"totalCourses" yaml:"totalCourses"`
	ActiveCourses     int       `json:"activeCourses" yaml:"activeCourses"`
	AverageProgress   int       `json:"averageProgress" yaml:"averageProgress"`
	CompletionRate    int       `json:"completionRate" yaml:"completionRate"`
	StudentsThisMonth int       `json:"studentsThisMonth" yaml:"studentsThisMonth"`
	StudentsLastMonth int       `json:"studentsLastMonth" yaml:"studentsLastMonth"`
	ChartData         ChartData `json:"chartData" yaml:"chartData"`
}

// EducatorCourse is a course as seen by its author. Prices are nil when unset;
// zero means free.
type EducatorCourse struct {
	ID              string               `db:"id" json:"id" yaml:"id"`
	EducatorID      string               `db:"educator_id" json:"educatorId" yaml:"educatorId"`
	Title           string               `db:"title" json:"title" yaml:"title"`
	Slug            string               `db:"slug" json:"slug" yaml:"slug"`
	Type            CourseType           `db:"type" json:"type" yaml:"type"`
	Modality        Modality             `db:"modality" json:"modality" yaml:"modality"`
	Status          EducatorCourseStatus `db:"status" json:"status" yaml:"status"`
	Description     string               `db:"description" json:"description" yaml:"description"`
	Image           string               `db:"image" json:"image" yaml:"image"`
	Duration        string               `db:"duration" json:"duration" yaml:"duration"`
	PriceUSD        *float64             `db:"price_usd" json:"priceUSD" yaml:"priceUSD"`
	PriceUYU        *float64             `db:"price_uyu" json:"priceUYU" yaml:"priceUYU"`
	TotalStudents   int                  `db:"total_students" json:"totalStudents" yaml:"totalStudents"`
	ActiveStudents  int                  `db:"active_students" json:"activeStudents" yaml:"activeStudents"`
	AverageProgress int                  `db:"average_progress" json:"averageProgress" yaml:"averageProgress"`
	TotalModules    int                  `db:"total_modules" json:"totalModules" yaml:"totalModules"`
	TotalLessons    int                  `db:"total_lessons" json:"totalLessons" yaml:"totalLessons"`
	MaxCapacity     int                  `db:"max_capacity" json:"maxCapacity" yaml:"maxCapacity"`
	EnrolledCount   int                  `db:"enrolled_count" json:"enrolledCount" yaml:"enrolledCount"`
	Location        string               `db:"location" json:"location" yaml:"location"`
	EventDate       string               `db:"event_date" json:"eventDate" yaml:"eventDate"`
	EventTime       string               `db:"event_time" json:"eventTime" yaml:"eventTime"`
	CreatedAt       string               `db:"created_at" json:"createdAt" yaml:"createdAt"`
	PublishedAt     string               `db:"published_at" json:"publishedAt" yaml:"publishedAt"`
}

// CourseModule groups lessons of an online course.
type CourseModule struct {
	ID                  string `db:"id" json:"id" yaml:"id"`
	CourseID            string `db:"course_id" json:"courseId" yaml:"courseId"`
	Title               string `db:"title" json:"title" yaml:"title"`
	Description         string `db:"description" json:"description" yaml:"description"`
	Order               int    `db:"position" json:"order" yaml:"order"`
	LessonsCount        int    `db:"lessons_count" json:"lessonsCount" yaml:"lessonsCount"`
	CompletedByStudents int    `db:"completed_by_students" json:"completedByStudents" yaml:"completedByStudents"`
}

// ResourceType enumerates downloadable material kinds.
type ResourceType string

const (
	ResourcePDF      ResourceType = "pdf"
	ResourceDocument ResourceType = "document"
	ResourceLink     ResourceType = "link"
)

// LessonResource is material attached to a lesson.
type LessonResource struct {
	ID    string       `json:"id" yaml:"id"`
	Title string       `json:"title" yaml:"title"`
	Type  ResourceType `json:"type" yaml:"type"`
	Size  string       `json:"size" yaml:"size"`
	URL   string       `json:"url" yaml:"url"`
}

// CourseLesson is a single video lesson.
type CourseLesson struct {
	ID            string           `json:"id" yaml:"id"`
	ModuleID      string           `json:"moduleId" yaml:"moduleId"`
	Title         string           `json:"title" yaml:"title"`
	Description   string           `json:"description" yaml:"description"`
	VideoURL      string           `json:"videoUrl" yaml:"videoUrl"`
	VideoDuration int              `json:"videoDuration" yaml:"videoDuration"`
	Order         int              `json:"order" yaml:"order"`
	Resources     []LessonResource `json:"resources" yaml:"resources"`
}

// EnrolledStudent is one roster entry. Progress is 0..100.
type EnrolledStudent struct {
	ID               string    `db:"id" json:"id" yaml:"id"`
	CourseID         string    `db:"course_id" json:"courseId" yaml:"courseId"`
	Name             string    `db:"name" json:"name" yaml:"name"`
	Email            string    `db:"email" json:"email" yaml:"email"`
	Image            string    `db:"image" json:"image" yaml:"image"`
	EnrolledAt       time.Time `db:"enrolled_at" json:"enrolledAt" yaml:"enrolledAt"`
	LastAccessAt     time.Time `db:"last_access_at" json:"lastAccessAt" yaml:"lastAccessAt"`
	CompletedLessons int       `db:"completed_lessons" json:"completedLessons" yaml:"completedLessons"`
	TotalLessons     int       `db:"total_lessons" json:"totalLessons" yaml:"totalLessons"`
	Progress         int       `db:"progress" json:"progress" yaml:"progress"`
}

// EmailTemplate is a reusable campaign body.
type EmailTemplate struct {
	ID         string    `json:"id" yaml:"id"`
	EducatorID string    `json:"educatorId" yaml:"educatorId"`
	Name       string    `json:"name" yaml:"name"`
	Subject    string    `json:"subject" yaml:"subject"`
	Body       string    `json:"body" yaml:"body"`
	Variables  []string  `json:"variables" yaml:"variables"`
	CreatedAt  time.Time `json:"createdAt" yaml:"createdAt"`
	UsageCount int       `json:"usageCount" yaml:"usageCount"`
}

// CampaignStatus is the delivery state of a campaign.
type CampaignStatus string

const (
	CampaignDraft     CampaignStatus = "draft"
	CampaignScheduled CampaignStatus = "scheduled"
	CampaignSent      CampaignStatus = "sent"
)

// EmailCampaign is a send of a template to a course audience.
// ScheduledAt and SentAt are ISO-8601 strings, empty when absent.
type EmailCampaign struct {
	ID             string         `db:"id" json:"id" yaml:"id"`
	EducatorID     string         `db:"educator_id" json:"educatorId" yaml:"educatorId"`
	TemplateID     string         `db:"template_id" json:"templateId" yaml:"templateId"`
	TemplateName   string         `db:"template_name" json:"templateName" yaml:"templateName"`
	CourseID       string         `db:"course_id" json:"courseId" yaml:"courseId"`
	CourseName     string         `db:"course_name" json:"courseName" yaml:"courseName"`
	Subject        string         `db:"subject" json:"subject" yaml:"subject"`
	Status         CampaignStatus `db:"status" json:"status" yaml:"status"`
	RecipientCount int            `db:"recipient_count" json:"recipientCount" yaml:"recipientCount"`
	SentCount      int            `db:"sent_count" json:"sentCount" yaml:"sentCount"`
	OpenRate       *float64       `db:"open_rate" json:"openRate" yaml:"openRate"`
	ScheduledAt    string         `db:"scheduled_at" json:"scheduledAt" yaml:"scheduledAt"`
	SentAt         string         `db:"sent_at" json:"sentAt" yaml:"sentAt"`
}

// EducatorWorkspace is every source record owned by one educator.
type EducatorWorkspace struct {
	Profile   EducatorProfile   `json:"profile" yaml:"profile"`
	Metrics   *DashboardMetrics `json:"metrics,omitempty" yaml:"metrics"`
	Courses   []EducatorCourse  `json:"courses" yaml:"courses"`
	Modules   []CourseModule    `json:"modules" yaml:"modules"`
	Lessons   []CourseLesson    `json:"lessons" yaml:"lessons"`
	Students  []EnrolledStudent `json:"students" yaml:"students"`
	Templates []EmailTemplate   `json:"templates" yaml:"templates"`
	Campaigns []EmailCampaign   `json:"campaigns" yaml:"campaigns"`
}
