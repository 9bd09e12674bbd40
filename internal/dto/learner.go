package dto

import "github.com/noah-isme/tinta-academy-api/internal/models"

// LearnerProfileResponse is the read-only profile view.
type LearnerProfileResponse struct {
	Profile  models.StudentProfile `json:"profile"`
	FullName string                `json:"fullName"`
	Initials string                `json:"initials"`
}

// EnrollmentCounts are the learner filter badges.
type EnrollmentCounts struct {
	All        int `json:"all"`
	InProgress int `json:"in_progress"`
	Completed  int `json:"completed"`
	Upcoming   int `json:"upcoming"`
	Online     int `json:"online"`
	InPerson   int `json:"in_person"`
}

// LearnerCoursesResponse is the learner's filtered course list.
type LearnerCoursesResponse struct {
	Courses []models.EnrolledCourse `json:"courses"`
	Counts  EnrollmentCounts        `json:"counts"`
}

// OrderView is an order with its display labels.
type OrderView struct {
	models.Order
	StatusLabel        string `json:"statusLabel"`
	PaymentMethodLabel string `json:"paymentMethodLabel"`
	AmountLabel        string `json:"amountLabel"`
}

// OrderSummary totals what the learner has paid, in USD.
type OrderSummary struct {
	TotalPaid float64 `json:"totalPaid"`
	PaidCount int     `json:"paidCount"`
	Currency  string  `json:"currency"`
	UYUPerUSD float64 `json:"uyuPerUsd"`
	Label     string  `json:"label"`
}

// OrderHistoryResponse lists orders newest first with the paid total.
type OrderHistoryResponse struct {
	Orders  []OrderView  `json:"orders"`
	Summary OrderSummary `json:"summary"`
}
