package service

import (
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/tinta-academy-api/internal/dto"
	"github.com/noah-isme/tinta-academy-api/internal/models"
	appErrors "github.com/noah-isme/tinta-academy-api/pkg/errors"
	"github.com/noah-isme/tinta-academy-api/pkg/export"
)

type datasetRenderer interface {
	Render(format export.Format, data export.Dataset) ([]byte, error)
}

// ExportFile is a rendered attachment.
type ExportFile struct {
	Filename    string
	ContentType string
	Body        []byte
}

// ExportService turns derived lists into downloadable CSV or PDF files.
type ExportService struct {
	renderer datasetRenderer
	metrics  *MetricsService
	logger   *zap.Logger
}

// NewExportService constructs an ExportService. A nil renderer uses the default
// CSV/PDF exporter.
func NewExportService(renderer datasetRenderer, metrics *MetricsService, logger *zap.Logger) *ExportService {
	if renderer == nil {
		renderer = export.NewExporter()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{renderer: renderer, metrics: metrics, logger: logger}
}

// Roster renders a course's student list in the given order.
func (s *ExportService) Roster(course models.EducatorCourse, students []models.EnrolledStudent, format export.Format) (*ExportFile, error) {
	data := export.Dataset{
		Title:   fmt.Sprintf("Alumnos - %s", course.Title),
		Headers: []string{"Nombre", "Email", "Progreso", "Lecciones", "Inscripción", "Último acceso"},
		Rows:    make([]map[string]string, 0, len(students)),
	}
	for _, st := range students {
		data.Rows = append(data.Rows, map[string]string{
			"Nombre":        st.Name,
			"Email":         st.Email,
			"Progreso":      strconv.Itoa(st.Progress) + "%",
			"Lecciones":     fmt.Sprintf("%d/%d", st.CompletedLessons, st.TotalLessons),
			"Inscripción":   formatExportDate(st.EnrolledAt, "2006-01-02"),
			"Último acceso": formatExportDate(st.LastAccessAt, "2006-01-02 15:04"),
		})
	}
	return s.render("roster", "alumnos "+course.Slug, format, data)
}

// Orders renders an order history with its paid total as the last row.
func (s *ExportService) Orders(profile models.StudentProfile, orders []models.Order, summary dto.OrderSummary, format export.Format) (*ExportFile, error) {
	data := export.Dataset{
		Title:   fmt.Sprintf("Órdenes - %s", profile.FullName()),
		Headers: []string{"Orden", "Curso", "Fecha", "Monto", "Método", "Estado"},
		Rows:    make([]map[string]string, 0, len(orders)+1),
	}
	for _, o := range orders {
		data.Rows = append(data.Rows, map[string]string{
			"Orden":  o.OrderNumber,
			"Curso":  o.CourseTitle,
			"Fecha":  formatExportDate(o.CreatedAt, "2006-01-02"),
			"Monto":  AmountLabel(o.Amount, o.Currency),
			"Método": PaymentMethodLabel(o.PaymentMethod),
			"Estado": OrderStatusLabel(o.Status),
		})
	}
	data.Rows = append(data.Rows, map[string]string{
		"Orden": "Total pagado",
		"Monto": summary.Label,
	})
	return s.render("orders", "ordenes "+profile.ID, format, data)
}

func (s *ExportService) render(dataset, base string, format export.Format, data export.Dataset) (*ExportFile, error) {
	body, err := s.renderer.Render(format, data)
	if err != nil {
		s.logger.Error("export render failed", zap.String("dataset", dataset), zap.String("format", string(format)), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render export")
	}
	s.metrics.ObserveExport(dataset, string(format), len(body))
	return &ExportFile{
		Filename:    export.Filename(base, format),
		ContentType: format.ContentType(),
		Body:        body,
	}, nil
}

func formatExportDate(t time.Time, layout string) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(layout)
}
