package models

import "time"

// NotificationPreferences are the student's email opt-ins.
type NotificationPreferences struct {
	EmailNewCourses    bool `db:"email_new_courses" json:"emailNewCourses" yaml:"emailNewCourses"`
	EmailPromotions    bool `db:"email_promotions" json:"emailPromotions" yaml:"emailPromotions"`
	EmailCourseUpdates bool `db:"email_course_updates" json:"emailCourseUpdates" yaml:"emailCourseUpdates"`
}

// StudentProfile is the learner account with billing data.
type StudentProfile struct {
	ID                      string                  `db:"id" json:"id" yaml:"id"`
	Email                   string                  `db:"email" json:"email" yaml:"email"`
	FirstName               string                  `db:"first_name" json:"firstName" yaml:"firstName"`
	LastName                string                  `db:"last_name" json:"lastName" yaml:"lastName"`
	BirthDate               string                  `db:"birth_date" json:"birthDate" yaml:"birthDate"`
	AvatarURL               string                  `db:"avatar_url" json:"avatarUrl" yaml:"avatarUrl"`
	Phone                   string                  `db:"phone" json:"phone" yaml:"phone"`
	Address                 string                  `db:"address" json:"address" yaml:"address"`
	City                    string                  `db:"city" json:"city" yaml:"city"`
	PostalCode              string                  `db:"postal_code" json:"postalCode" yaml:"postalCode"`
	Country                 string                  `db:"country" json:"country" yaml:"country"`
	BillingName             string                  `db:"billing_name" json:"billingName" yaml:"billingName"`
	BillingTaxID            string                  `db:"billing_tax_id" json:"billingTaxId" yaml:"billingTaxId"`
	BillingAddress          string                  `db:"billing_address" json:"billingAddress" yaml:"billingAddress"`
	NotificationPreferences NotificationPreferences `json:"notificationPreferences" yaml:"notificationPreferences"`
}

// FullName joins first and last name.
func (p StudentProfile) FullName() string {
	switch {
	case p.FirstName == "":
		return p.LastName
	case p.LastName == "":
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}

// EnrolledCourseType distinguishes online from in-person enrollments.
type EnrolledCourseType string

const (
	EnrolledOnline   EnrolledCourseType = "online"
	EnrolledInPerson EnrolledCourseType = "in_person"
)

// EnrollmentStatus is the learner-side state of an enrollment.
type EnrollmentStatus string

const (
	EnrollmentInProgress EnrollmentStatus = "in_progress"
	EnrollmentCompleted  EnrollmentStatus = "completed"
	EnrollmentUpcoming   EnrollmentStatus = "upcoming"
)

// LearnerLesson is a lesson with the learner's completion flag.
type LearnerLesson struct {
	ID        string `json:"id" yaml:"id"`
	Title     string `json:"title" yaml:"title"`
	Duration  int    `json:"duration" yaml:"duration"`
	Completed bool   `json:"completed" yaml:"completed"`
}

// LearnerModule groups learner lessons.
type LearnerModule struct {
	ID      string          `json:"id" yaml:"id"`
	Title   string          `json:"title" yaml:"title"`
	Order   int             `json:"order" yaml:"order"`
	Lessons []LearnerLesson `json:"lessons" yaml:"lessons"`
}

// LearnerResource is a downloadable file; Size is in bytes.
type LearnerResource struct {
	ID    string       `json:"id" yaml:"id"`
	Title string       `json:"title" yaml:"title"`
	Type  ResourceType `json:"type" yaml:"type"`
	URL   string       `json:"url" yaml:"url"`
	Size  int64        `json:"size" yaml:"size"`
}

// CourseProgress tracks an online enrollment.
type CourseProgress struct {
	CompletedLessons int    `json:"completedLessons" yaml:"completedLessons"`
	TotalLessons     int    `json:"totalLessons" yaml:"totalLessons"`
	Percentage       int    `json:"percentage" yaml:"percentage"`
	LastAccessedAt   string `json:"lastAccessedAt" yaml:"lastAccessedAt"`
	CurrentLessonID  string `json:"currentLessonId" yaml:"currentLessonId"`
}

// EventInfo describes an in-person enrollment.
type EventInfo struct {
	Location       string   `json:"location" yaml:"location"`
	Address        string   `json:"address" yaml:"address"`
	Dates          []string `json:"dates" yaml:"dates"`
	Schedule       string   `json:"schedule" yaml:"schedule"`
	ExamDate       string   `json:"examDate,omitempty" yaml:"examDate"`
	ExamResult     string   `json:"examResult,omitempty" yaml:"examResult"`
	CertificateURL string   `json:"certificateUrl,omitempty" yaml:"certificateUrl"`
}

// EnrolledCourse is one course in the learner's panel.
type EnrolledCourse struct {
	ID             string             `json:"id" yaml:"id"`
	CourseID       string             `json:"courseId" yaml:"courseId"`
	CourseType     EnrolledCourseType `json:"courseType" yaml:"courseType"`
	CourseCategory string             `json:"courseCategory" yaml:"courseCategory"`
	Title          string             `json:"title" yaml:"title"`
	Slug           string             `json:"slug" yaml:"slug"`
	Thumbnail      string             `json:"thumbnail" yaml:"thumbnail"`
	EducatorName   string             `json:"educatorName" yaml:"educatorName"`
	EnrolledAt     time.Time          `json:"enrolledAt" yaml:"enrolledAt"`
	Status         EnrollmentStatus   `json:"status" yaml:"status"`
	Progress       *CourseProgress    `json:"progress,omitempty" yaml:"progress"`
	Modules        []LearnerModule    `json:"modules,omitempty" yaml:"modules"`
	EventInfo      *EventInfo         `json:"eventInfo,omitempty" yaml:"eventInfo"`
	Resources      []LearnerResource  `json:"resources" yaml:"resources"`
}

// Currency of an order amount.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyUYU Currency = "UYU"
)

// PaymentMethod used for an order.
type PaymentMethod string

const (
	PaymentMercadoPago PaymentMethod = "mercadopago"
	PaymentTransfer    PaymentMethod = "transfer"
	PaymentFree        PaymentMethod = "free"
)

// OrderStatus is the payment lifecycle of an order.
type OrderStatus string

const (
	OrderCreated     OrderStatus = "created"
	OrderPending     OrderStatus = "pending"
	OrderPaymentSent OrderStatus = "payment_sent"
	OrderPaid        OrderStatus = "paid"
	OrderRejected    OrderStatus = "rejected"
	OrderRefunded    OrderStatus = "refunded"
	OrderCancelled   OrderStatus = "cancelled"
)

// Order is a purchase in the learner's history.
type Order struct {
	ID            string        `db:"id" json:"id" yaml:"id"`
	OrderNumber   string        `db:"order_number" json:"orderNumber" yaml:"orderNumber"`
	CourseID      string        `db:"course_id" json:"courseId" yaml:"courseId"`
	CourseTitle   string        `db:"course_title" json:"courseTitle" yaml:"courseTitle"`
	CreatedAt     time.Time     `db:"created_at" json:"createdAt" yaml:"createdAt"`
	Amount        float64       `db:"amount" json:"amount" yaml:"amount"`
	Currency      Currency      `db:"currency" json:"currency" yaml:"currency"`
	PaymentMethod PaymentMethod `db:"payment_method" json:"paymentMethod" yaml:"paymentMethod"`
	Status        OrderStatus   `db:"status" json:"status" yaml:"status"`
}

// LearnerAccount is every source record owned by one student.
type LearnerAccount struct {
	Profile StudentProfile   `json:"profile" yaml:"profile"`
	Courses []EnrolledCourse `json:"courses" yaml:"courses"`
	Orders  []Order          `json:"orders" yaml:"orders"`
}
