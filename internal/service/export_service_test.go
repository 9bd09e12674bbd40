package service

import (
	"bytes"
	"encoding/csv"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/tinta-academy-api/internal/models"
	appErrors "github.com/noah-isme/tinta-academy-api/pkg/errors"
	"github.com/noah-isme/tinta-academy-api/pkg/export"
)

type brokenRenderer struct{}

func (brokenRenderer) Render(export.Format, export.Dataset) ([]byte, error) {
	return nil, errors.New("font missing")
}

func readCSV(t *testing.T, body []byte) [][]string {
	t.Helper()
	records, err := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(body, []byte("\ufeff")))).ReadAll()
	require.NoError(t, err)
	return records
}

func TestExportServiceRosterCSV(t *testing.T) {
	svc := NewExportService(nil, nil, zap.NewNop())
	course := models.EducatorCourse{ID: "ec-1", Title: "Introducción al vino", Slug: "introduccion-al-vino"}
	students := []models.EnrolledStudent{
		{Name: "Ana Gómez", Email: "ana@example.com", Progress: 100, CompletedLessons: 4, TotalLessons: 4,
			EnrolledAt: time.Date(2024, 9, 1, 10, 0, 0, 0, time.UTC), LastAccessAt: time.Date(2025, 1, 14, 21, 0, 0, 0, time.UTC)},
		{Name: "Diego, \"el Tano\"", Email: "diego@example.com", EnrolledAt: time.Date(2024, 12, 1, 10, 0, 0, 0, time.UTC)},
	}

	file, err := svc.Roster(course, students, export.FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, "alumnos-introduccion-al-vino.csv", file.Filename)
	assert.Equal(t, export.FormatCSV.ContentType(), file.ContentType)

	records := readCSV(t, file.Body)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"Nombre", "Email", "Progreso", "Lecciones", "Inscripción", "Último acceso"}, records[0])
	assert.Equal(t, []string{"Ana Gómez", "ana@example.com", "100%", "4/4", "2024-09-01", "2025-01-14 21:00"}, records[1])
	assert.Equal(t, "Diego, \"el Tano\"", records[2][0])
	assert.Equal(t, "", records[2][5])
}

func TestExportServiceOrdersPDF(t *testing.T) {
	svc := NewExportService(nil, nil, nil)
	profile := models.StudentProfile{ID: "stu-1", FirstName: "Ana", LastName: "Gómez"}
	orders := ordersFixture()

	file, err := svc.Orders(profile, orders, SummarizeOrders(orders, DefaultUYUPerUSD), export.FormatPDF)
	require.NoError(t, err)
	assert.Equal(t, "ordenes-stu-1.pdf", file.Filename)
	assert.True(t, bytes.HasPrefix(file.Body, []byte("%PDF")))
}

func TestExportServiceOrdersTotalRow(t *testing.T) {
	svc := NewExportService(nil, nil, nil)
	orders := ordersFixture()

	file, err := svc.Orders(models.StudentProfile{ID: "stu-1"}, orders, SummarizeOrders(orders, DefaultUYUPerUSD), export.FormatCSV)
	require.NoError(t, err)

	records := readCSV(t, file.Body)
	require.Len(t, records, len(orders)+2)
	last := records[len(records)-1]
	assert.Equal(t, "Total pagado", last[0])
	assert.Equal(t, "$335 USD", last[3])
}

func TestExportServiceRenderFailure(t *testing.T) {
	svc := NewExportService(brokenRenderer{}, nil, nil)

	_, err := svc.Roster(models.EducatorCourse{Slug: "x"}, nil, export.FormatPDF)

	require.Error(t, err)
	assert.ErrorIs(t, err, appErrors.ErrInternal)
}

func TestExportServiceCountsRenderedFiles(t *testing.T) {
	metrics := NewMetricsService()
	svc := NewExportService(nil, metrics, nil)

	_, err := svc.Roster(models.EducatorCourse{Slug: "cata"}, nil, export.FormatCSV)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, rec.Body.String(), `tinta_academy_exports_files_total{dataset="roster",format="csv"} 1`)
}
