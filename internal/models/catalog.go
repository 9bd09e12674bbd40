package models

// CourseType enumerates catalog course kinds.
type CourseType string

const (
	CourseTypeWSET   CourseType = "wset"
	CourseTypeTaller CourseType = "taller"
	CourseTypeCata   CourseType = "cata"
	CourseTypeCurso  CourseType = "curso"
)

// Modality distinguishes online from on-site courses.
type Modality string

const (
	ModalityOnline     Modality = "online"
	ModalityPresencial Modality = "presencial"
)

// CatalogStatus is the public lifecycle of a catalog course.
type CatalogStatus string

const (
	CatalogStatusAnnounced  CatalogStatus = "announced"
	CatalogStatusEnrolling  CatalogStatus = "enrolling"
	CatalogStatusFull       CatalogStatus = "full"
	CatalogStatusInProgress CatalogStatus = "in_progress"
	CatalogStatusFinished   CatalogStatus = "finished"
	CatalogStatusAvailable  CatalogStatus = "available"
)

// Tag labels catalog courses.
type Tag struct {
	ID   string `db:"id" json:"id" yaml:"id"`
	Name string `db:"name" json:"name" yaml:"name"`
	Slug string `db:"slug" json:"slug" yaml:"slug"`
}

// Educator is the public face of a course author.
type Educator struct {
	ID       string `db:"id" json:"id" yaml:"id"`
	Name     string `db:"name" json:"name" yaml:"name"`
	Title    string `db:"title" json:"title" yaml:"title"`
	Bio      string `db:"bio" json:"bio" yaml:"bio"`
	ImageURL string `db:"image_url" json:"imageUrl" yaml:"imageUrl"`
}

// CatalogCourse is a course listed on the public landing page.
// WSETLevel and MaxCapacity are zero when not applicable.
type CatalogCourse struct {
	ID            string        `json:"id" yaml:"id"`
	Slug          string        `json:"slug" yaml:"slug"`
	Title         string        `json:"title" yaml:"title"`
	Type          CourseType    `json:"type" yaml:"type"`
	WSETLevel     int           `json:"wsetLevel" yaml:"wsetLevel"`
	Modality      Modality      `json:"modality" yaml:"modality"`
	Description   string        `json:"description" yaml:"description"`
	StartDate     string        `json:"startDate" yaml:"startDate"`
	EndDate       string        `json:"endDate" yaml:"endDate"`
	Duration      int           `json:"duration" yaml:"duration"`
	MaxCapacity   int           `json:"maxCapacity" yaml:"maxCapacity"`
	EnrolledCount int           `json:"enrolledCount" yaml:"enrolledCount"`
	PriceUSD      float64       `json:"priceUSD" yaml:"priceUSD"`
	Location      string        `json:"location" yaml:"location"`
	Address       string        `json:"address" yaml:"address"`
	ImageURL      string        `json:"imageUrl" yaml:"imageUrl"`
	EducatorID    string        `json:"educatorId" yaml:"educatorId"`
	TagIDs        []string      `json:"tagIds" yaml:"tagIds"`
	Status        CatalogStatus `json:"status" yaml:"status"`
}

// CourseFilters narrows the catalog. Empty fields do not constrain.
type CourseFilters struct {
	Modality Modality   `json:"modality,omitempty" form:"modality" binding:"omitempty,oneof=presencial online"`
	Type     CourseType `json:"type,omitempty" form:"type" binding:"omitempty,oneof=wset taller cata curso"`
	TagIDs   []string   `json:"tagIds,omitempty" form:"-"`
}

// HeroContent is the landing page header block.
type HeroContent struct {
	Headline    string `json:"headline" yaml:"headline"`
	Subheadline string `json:"subheadline" yaml:"subheadline"`
	CTAText     string `json:"ctaText" yaml:"ctaText"`
	VideoURL    string `json:"videoUrl" yaml:"videoUrl"`
}

// FooterLink is a single footer anchor.
type FooterLink struct {
	Label string `json:"label" yaml:"label"`
	Href  string `json:"href" yaml:"href"`
	Icon  string `json:"icon,omitempty" yaml:"icon"`
}

// FooterLinks groups footer columns.
type FooterLinks struct {
	About   []FooterLink `json:"about" yaml:"about"`
	Courses []FooterLink `json:"courses" yaml:"courses"`
	Legal   []FooterLink `json:"legal" yaml:"legal"`
	Social  []FooterLink `json:"social" yaml:"social"`
}

// ContactInfo is shown in the landing footer.
type ContactInfo struct {
	Email   string `json:"email" yaml:"email"`
	Phone   string `json:"phone" yaml:"phone"`
	Address string `json:"address" yaml:"address"`
}

// Landing holds the static landing page content.
type Landing struct {
	Hero    HeroContent `json:"hero" yaml:"hero"`
	Footer  FooterLinks `json:"footer" yaml:"footer"`
	Contact ContactInfo `json:"contact" yaml:"contact"`
}

// Catalog is the full set of source records behind the landing page.
type Catalog struct {
	Landing   Landing         `json:"landing" yaml:"landing"`
	Educators []Educator      `json:"educators" yaml:"educators"`
	Tags      []Tag           `json:"tags" yaml:"tags"`
	Upcoming  []CatalogCourse `json:"upcoming" yaml:"upcoming"`
	Past      []CatalogCourse `json:"past" yaml:"past"`
}
