package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/tinta-academy-api/internal/dto"
	"github.com/noah-isme/tinta-academy-api/internal/service"
	appErrors "github.com/noah-isme/tinta-academy-api/pkg/errors"
	"github.com/noah-isme/tinta-academy-api/pkg/export"
)

type fakeEducatorSrv struct {
	err error
	hit bool

	educatorID    string
	courseID      string
	templateID    string
	courseQuery   service.CourseListQuery
	rosterQuery   service.RosterQuery
	campaignQuery service.CampaignListQuery
	search        string
	format        export.Format
	sendReq       service.SendEmailRequest
}

func (f *fakeEducatorSrv) Dashboard(_ context.Context, educatorID string) (*dto.EducatorDashboardResponse, bool, error) {
	f.educatorID = educatorID
	if f.err != nil {
		return nil, false, f.err
	}
	return &dto.EducatorDashboardResponse{StudentGrowth: 50, MetricsSource: dto.MetricsFromSnapshot}, f.hit, nil
}

func (f *fakeEducatorSrv) Courses(_ context.Context, educatorID string, query service.CourseListQuery) (*dto.EducatorCoursesResponse, bool, error) {
	f.educatorID, f.courseQuery = educatorID, query
	return &dto.EducatorCoursesResponse{}, f.hit, f.err
}

func (f *fakeEducatorSrv) Outline(_ context.Context, educatorID, courseID string) (*dto.CourseOutline, bool, error) {
	f.educatorID, f.courseID = educatorID, courseID
	return &dto.CourseOutline{TotalLessons: 5}, f.hit, f.err
}

func (f *fakeEducatorSrv) Roster(_ context.Context, educatorID, courseID string, query service.RosterQuery) (*dto.RosterResponse, bool, error) {
	f.educatorID, f.courseID, f.rosterQuery = educatorID, courseID, query
	return &dto.RosterResponse{CourseID: courseID}, f.hit, f.err
}

func (f *fakeEducatorSrv) ExportRoster(_ context.Context, educatorID, courseID string, query service.RosterQuery, format export.Format) (*service.ExportFile, error) {
	f.educatorID, f.courseID, f.rosterQuery, f.format = educatorID, courseID, query, format
	if f.err != nil {
		return nil, f.err
	}
	return &service.ExportFile{Filename: "alumnos.csv", ContentType: format.ContentType(), Body: []byte("Nombre\n")}, nil
}

func (f *fakeEducatorSrv) Campaigns(_ context.Context, educatorID string, query service.CampaignListQuery) (*dto.CampaignListResponse, bool, error) {
	f.educatorID, f.campaignQuery = educatorID, query
	return &dto.CampaignListResponse{}, f.hit, f.err
}

func (f *fakeEducatorSrv) Templates(_ context.Context, educatorID, search string) (*dto.TemplateListResponse, bool, error) {
	f.educatorID, f.search = educatorID, search
	return &dto.TemplateListResponse{Total: 3}, f.hit, f.err
}

func (f *fakeEducatorSrv) PreviewTemplate(_ context.Context, educatorID, templateID, courseID string) (*dto.TemplatePreview, error) {
	f.educatorID, f.templateID, f.courseID = educatorID, templateID, courseID
	if f.err != nil {
		return nil, f.err
	}
	return &dto.TemplatePreview{TemplateID: templateID, Subject: "Hola Juan"}, nil
}

func (f *fakeEducatorSrv) SendEmailOptions(_ context.Context, educatorID string) (*dto.SendEmailOptionsResponse, bool, error) {
	f.educatorID = educatorID
	return &dto.SendEmailOptionsResponse{DefaultTime: service.DefaultSendTime}, f.hit, f.err
}

func (f *fakeEducatorSrv) SendEmail(_ context.Context, educatorID string, req service.SendEmailRequest) (*dto.SendEmailAccepted, error) {
	f.educatorID, f.sendReq = educatorID, req
	if f.err != nil {
		return nil, f.err
	}
	return &dto.SendEmailAccepted{IntentID: "intent-1", AcceptedAt: time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)}, nil
}

func TestEducatorHandlerDashboard(t *testing.T) {
	srv := &fakeEducatorSrv{hit: true}
	c, rec := newTestContext(http.MethodGet, "/educators/edu-1/dashboard", nil)
	withParams(c, "educatorId", "edu-1")

	NewEducatorHandler(srv).Dashboard(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "edu-1", srv.educatorID)
	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, float64(50), envelope.Data["studentGrowth"])
	assert.Equal(t, "snapshot", envelope.Data["metricsSource"])
	assert.Equal(t, true, envelope.Meta["cache_hit"])
}

func TestEducatorHandlerDashboardNotFound(t *testing.T) {
	srv := &fakeEducatorSrv{err: appErrors.Clone(appErrors.ErrNotFound, "educator not found")}
	c, rec := newTestContext(http.MethodGet, "/educators/nope/dashboard", nil)
	withParams(c, "educatorId", "nope")

	NewEducatorHandler(srv).Dashboard(c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "educator not found", decodeEnvelope(t, rec).Error["message"])
}

func TestEducatorHandlerCoursesQuery(t *testing.T) {
	tests := []struct {
		name   string
		target string
		status int
		want   service.CourseListQuery
	}{
		{
			name:   "all filters",
			target: "/courses?search=Vino&modality=online&status=draft&view=list",
			status: http.StatusOK,
			want:   service.CourseListQuery{Search: "Vino", Modality: "online", Status: "draft", View: "list"},
		},
		{name: "defaults", target: "/courses", status: http.StatusOK},
		{name: "bad status", target: "/courses?status=archived", status: http.StatusBadRequest},
		{name: "bad view", target: "/courses?view=table", status: http.StatusBadRequest},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := &fakeEducatorSrv{}
			c, rec := newTestContext(http.MethodGet, tc.target, nil)
			withParams(c, "educatorId", "edu-1")

			NewEducatorHandler(srv).Courses(c)

			assert.Equal(t, tc.status, rec.Code)
			assert.Equal(t, tc.want, srv.courseQuery)
		})
	}
}

func TestEducatorHandlerOutline(t *testing.T) {
	srv := &fakeEducatorSrv{}
	c, rec := newTestContext(http.MethodGet, "/educators/edu-1/courses/ec-1/outline", nil)
	withParams(c, "educatorId", "edu-1", "courseId", "ec-1")

	NewEducatorHandler(srv).Outline(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ec-1", srv.courseID)
	assert.Equal(t, float64(5), decodeEnvelope(t, rec).Data["totalLessons"])
}

func TestEducatorHandlerRosterQuery(t *testing.T) {
	srv := &fakeEducatorSrv{}
	c, rec := newTestContext(http.MethodGet, "/students?search=ana&sort=progress&order=desc", nil)
	withParams(c, "educatorId", "edu-1", "courseId", "ec-1")

	NewEducatorHandler(srv).Roster(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, service.RosterQuery{Search: "ana", Sort: "progress", Order: "desc"}, srv.rosterQuery)

	c, rec = newTestContext(http.MethodGet, "/students?sort=email", nil)
	NewEducatorHandler(srv).Roster(c)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEducatorHandlerExportRoster(t *testing.T) {
	srv := &fakeEducatorSrv{}
	c, rec := newTestContext(http.MethodGet, "/students/export?format=CSV&sort=name", nil)
	withParams(c, "educatorId", "edu-1", "courseId", "ec-1")

	NewEducatorHandler(srv).ExportRoster(c)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, export.FormatCSV, srv.format)
	assert.Equal(t, "name", srv.rosterQuery.Sort)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="alumnos.csv"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "Nombre\n", rec.Body.String())
}

func TestEducatorHandlerExportRosterRejectsFormat(t *testing.T) {
	srv := &fakeEducatorSrv{}
	c, rec := newTestContext(http.MethodGet, "/students/export?format=xlsx", nil)

	NewEducatorHandler(srv).ExportRoster(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, srv.format)
}

func TestEducatorHandlerCampaignsAndTemplates(t *testing.T) {
	srv := &fakeEducatorSrv{}
	c, rec := newTestContext(http.MethodGet, "/campaigns?search=cata&status=sent", nil)
	withParams(c, "educatorId", "edu-1")
	NewEducatorHandler(srv).Campaigns(c)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, service.CampaignListQuery{Search: "cata", Status: "sent"}, srv.campaignQuery)

	c, rec = newTestContext(http.MethodGet, "/campaigns?status=failed", nil)
	NewEducatorHandler(srv).Campaigns(c)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	c, rec = newTestContext(http.MethodGet, "/templates?search=bienvenida", nil)
	withParams(c, "educatorId", "edu-1")
	NewEducatorHandler(srv).Templates(c)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "bienvenida", srv.search)
	assert.Equal(t, float64(3), decodeEnvelope(t, rec).Data["total"])
}

func TestEducatorHandlerPreviewTemplate(t *testing.T) {
	srv := &fakeEducatorSrv{}
	c, rec := newTestContext(http.MethodPost, "/templates/tpl-1/preview", map[string]string{"courseId": "ec-2"})
	withParams(c, "educatorId", "edu-1", "templateId", "tpl-1")

	NewEducatorHandler(srv).PreviewTemplate(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "tpl-1", srv.templateID)
	assert.Equal(t, "ec-2", srv.courseID)
	assert.Equal(t, "Hola Juan", decodeEnvelope(t, rec).Data["subject"])

	srv = &fakeEducatorSrv{}
	c, rec = newTestContext(http.MethodPost, "/templates/tpl-1/preview", nil)
	withParams(c, "educatorId", "edu-1", "templateId", "tpl-1")
	NewEducatorHandler(srv).PreviewTemplate(c)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, srv.courseID)

	c, rec = newTestContext(http.MethodPost, "/templates/tpl-1/preview", "{broken")
	NewEducatorHandler(srv).PreviewTemplate(c)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEducatorHandlerSendEmail(t *testing.T) {
	srv := &fakeEducatorSrv{}
	c, rec := newTestContext(http.MethodPost, "/send-email", map[string]string{
		"courseId":      "ec-2",
		"templateId":    "tpl-1",
		"scheduleType":  "scheduled",
		"scheduledDate": "2025-02-01",
		"scheduledTime": "10:00",
	})
	withParams(c, "educatorId", "edu-1")

	NewEducatorHandler(srv).SendEmail(c)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, service.SendEmailRequest{
		CourseID:      "ec-2",
		TemplateID:    "tpl-1",
		ScheduleType:  service.ScheduleScheduled,
		ScheduledDate: "2025-02-01",
		ScheduledTime: "10:00",
	}, srv.sendReq)
	assert.Equal(t, "intent-1", decodeEnvelope(t, rec).Data["intentId"])
}

func TestEducatorHandlerSendEmailErrors(t *testing.T) {
	c, rec := newTestContext(http.MethodPost, "/send-email", "not json")
	NewEducatorHandler(&fakeEducatorSrv{}).SendEmail(c)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	srv := &fakeEducatorSrv{err: appErrors.ErrCourseNotPublished}
	c, rec = newTestContext(http.MethodPost, "/send-email", map[string]string{"courseId": "ec-1", "templateId": "tpl-1"})
	NewEducatorHandler(srv).SendEmail(c)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	srv = &fakeEducatorSrv{err: appErrors.ErrDispatchUnavailable}
	c, rec = newTestContext(http.MethodPost, "/send-email", map[string]string{"courseId": "ec-2", "templateId": "tpl-1"})
	NewEducatorHandler(srv).SendEmail(c)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestEducatorHandlerSendEmailOptions(t *testing.T) {
	srv := &fakeEducatorSrv{}
	c, rec := newTestContext(http.MethodGet, "/send-email", nil)
	withParams(c, "educatorId", "edu-1")

	NewEducatorHandler(srv).SendEmailOptions(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, service.DefaultSendTime, decodeEnvelope(t, rec).Data["defaultTime"])
}
