package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/jmoiron/sqlx/types"
	"github.com/lib/pq"

	"github.com/noah-isme/tinta-academy-api/internal/models"
)

// Catalog listings.
const (
	listingUpcoming = "upcoming"
	listingPast     = "past"
)

// CatalogRepository reads the landing page records from PostgreSQL.
type CatalogRepository struct {
	db       *sqlx.DB
	observer QueryObserver
}

// NewCatalogRepository constructs a CatalogRepository.
func NewCatalogRepository(db *sqlx.DB, observer QueryObserver) *CatalogRepository {
	return &CatalogRepository{db: db, observer: observerOrNop(observer)}
}

type catalogCourseRow struct {
	ID            string         `db:"id"`
	Slug          string         `db:"slug"`
	Title         string         `db:"title"`
	Type          string         `db:"type"`
	WSETLevel     int            `db:"wset_level"`
	Modality      string         `db:"modality"`
	Description   string         `db:"description"`
	StartDate     string         `db:"start_date"`
	EndDate       string         `db:"end_date"`
	Duration      int            `db:"duration"`
	MaxCapacity   int            `db:"max_capacity"`
	EnrolledCount int            `db:"enrolled_count"`
	PriceUSD      float64        `db:"price_usd"`
	Location      string         `db:"location"`
	Address       string         `db:"address"`
	ImageURL      string         `db:"image_url"`
	EducatorID    string         `db:"educator_id"`
	TagIDs        pq.StringArray `db:"tag_ids"`
	Status        string         `db:"status"`
	Listing       string         `db:"listing"`
}

func (r catalogCourseRow) model() models.CatalogCourse {
	return models.CatalogCourse{
		ID:            r.ID,
		Slug:          r.Slug,
		Title:         r.Title,
		Type:          models.CourseType(r.Type),
		WSETLevel:     r.WSETLevel,
		Modality:      models.Modality(r.Modality),
		Description:   r.Description,
		StartDate:     r.StartDate,
		EndDate:       r.EndDate,
		Duration:      r.Duration,
		MaxCapacity:   r.MaxCapacity,
		EnrolledCount: r.EnrolledCount,
		PriceUSD:      r.PriceUSD,
		Location:      r.Location,
		Address:       r.Address,
		ImageURL:      r.ImageURL,
		EducatorID:    r.EducatorID,
		TagIDs:        []string(r.TagIDs),
		Status:        models.CatalogStatus(r.Status),
	}
}

const (
	landingQuery       = `SELECT payload FROM landing_content WHERE key = 'landing'`
	catalogTagsQuery   = `SELECT id, name, slug FROM tags ORDER BY position, name`
	catalogAuthorQuery = `SELECT id, name, title, bio, image_url FROM educators ORDER BY name`
	catalogCourseQuery = `SELECT id, slug, title, type, wset_level, modality, description, start_date, end_date, duration,
        max_capacity, enrolled_count, price_usd, location, address, image_url, educator_id, tag_ids, status, listing
        FROM catalog_courses ORDER BY position`
)

// Catalog returns the landing content, tags, educators and both course listings.
func (r *CatalogRepository) Catalog(ctx context.Context) (*models.Catalog, error) {
	catalog := &models.Catalog{}

	var landing types.NullJSONText
	err := timed(r.observer, "catalog.landing", func() error {
		return r.db.GetContext(ctx, &landing, landingQuery)
	})
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get landing content: %w", err)
	}
	if err := decodeJSON(landing, &catalog.Landing, "landing_content.payload"); err != nil {
		return nil, err
	}

	if err := timed(r.observer, "catalog.tags", func() error {
		return r.db.SelectContext(ctx, &catalog.Tags, catalogTagsQuery)
	}); err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}

	if err := timed(r.observer, "catalog.educators", func() error {
		return r.db.SelectContext(ctx, &catalog.Educators, catalogAuthorQuery)
	}); err != nil {
		return nil, fmt.Errorf("list educators: %w", err)
	}

	var rows []catalogCourseRow
	if err := timed(r.observer, "catalog.courses", func() error {
		return r.db.SelectContext(ctx, &rows, catalogCourseQuery)
	}); err != nil {
		return nil, fmt.Errorf("list catalog courses: %w", err)
	}
	catalog.Upcoming = make([]models.CatalogCourse, 0, len(rows))
	catalog.Past = make([]models.CatalogCourse, 0)
	for _, row := range rows {
		if row.Listing == listingPast {
			catalog.Past = append(catalog.Past, row.model())
			continue
		}
		catalog.Upcoming = append(catalog.Upcoming, row.model())
	}
	return catalog, nil
}
