package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/noah-isme/tinta-academy-api/internal/dto"
	"github.com/noah-isme/tinta-academy-api/internal/models"
	"github.com/noah-isme/tinta-academy-api/pkg/broker"
	appErrors "github.com/noah-isme/tinta-academy-api/pkg/errors"
	"github.com/noah-isme/tinta-academy-api/pkg/middleware/requestid"
)

type recordingSink struct {
	name     string
	mu       sync.Mutex
	failures int
	attempts int
	got      []models.Intent
	done     chan models.Intent
}

func newRecordingSink(name string, failures int) *recordingSink {
	return &recordingSink{name: name, failures: failures, done: make(chan models.Intent, 8)}
}

func (s *recordingSink) Name() string { return s.name }

func (s *recordingSink) Deliver(_ context.Context, intent models.Intent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attempts++
	if s.attempts <= s.failures {
		return errors.New("sink unavailable")
	}
	s.got = append(s.got, intent)
	s.done <- intent
	return nil
}

func (s *recordingSink) attemptCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.attempts
}

func waitIntent(t *testing.T, ch <-chan models.Intent) models.Intent {
	t.Helper()
	select {
	case intent := <-ch:
		return intent
	case <-time.After(2 * time.Second):
		t.Fatal("intent was not delivered")
	}
	return models.Intent{}
}

func newTestIntentService(t *testing.T, metrics *MetricsService, sinks ...IntentSink) *IntentService {
	t.Helper()
	svc := NewIntentService(IntentServiceParams{
		Sinks:   sinks,
		Metrics: metrics,
		Config:  IntentServiceConfig{Workers: 1, BufferSize: 4, MaxRetries: 2, RetryDelay: 10 * time.Millisecond},
	})
	svc.now = func() time.Time { return time.Date(2025, 3, 1, 12, 0, 0, 0, time.FixedZone("UYT", -3*3600)) }
	svc.newID = func() string { return "intent-1" }
	svc.Start(context.Background())
	t.Cleanup(svc.Stop)
	return svc
}

func TestIntentServiceAcceptDelivers(t *testing.T) {
	defer goleak.VerifyNone(t)

	metrics := NewMetricsService()
	sink := newRecordingSink("memory", 0)
	svc := newTestIntentService(t, metrics, sink)

	ctx := requestid.NewContext(context.Background(), "req-42")
	accepted, err := svc.Accept(ctx, dto.IntentRequest{
		Kind:    models.IntentCourseViewSlug,
		Payload: json.RawMessage(`{"slug":"wset-nivel-2","extra":true}`),
	}, "stu-1")
	require.NoError(t, err)
	assert.Equal(t, "intent-1", accepted.ID)
	assert.Equal(t, models.IntentCourseViewSlug, accepted.Kind)
	assert.Equal(t, time.Date(2025, 3, 1, 15, 0, 0, 0, time.UTC), accepted.AcceptedAt)

	delivered := waitIntent(t, sink.done)
	assert.Equal(t, "stu-1", delivered.ActorID)
	assert.Equal(t, "req-42", delivered.RequestID)
	assert.JSONEq(t, `{"slug":"wset-nivel-2"}`, string(delivered.Payload))
	assert.Equal(t, uint64(1), metrics.Snapshot().IntentsAccepted)

	svc.Stop()
}

func TestIntentServiceRejectsUnknownKind(t *testing.T) {
	defer goleak.VerifyNone(t)

	metrics := NewMetricsService()
	svc := newTestIntentService(t, metrics)

	_, err := svc.Accept(context.Background(), dto.IntentRequest{Kind: models.IntentKind("course.teleport")}, "")

	require.Error(t, err)
	assert.ErrorIs(t, err, appErrors.ErrUnknownIntent)
	assert.Contains(t, err.Error(), "course.teleport")
	assert.Zero(t, metrics.Snapshot().IntentsAccepted)

	svc.Stop()
}

func TestIntentServiceValidatesPayload(t *testing.T) {
	defer goleak.VerifyNone(t)

	svc := newTestIntentService(t, nil)

	cases := []struct {
		name string
		kind models.IntentKind
		raw  string
	}{
		{name: "missing required field", kind: models.IntentCourseEdit, raw: `{}`},
		{name: "malformed json", kind: models.IntentNavigate, raw: `{"href":`},
		{name: "bad email", kind: models.IntentNewsletterSubscribe, raw: `{"email":"not-an-email"}`},
		{name: "empty reorder", kind: models.IntentModuleReorder, raw: `{"courseId":"ec-1","moduleIds":[]}`},
		{name: "bad schedule format", kind: models.IntentCampaignSend, raw: `{"courseId":"ec-1","templateId":"tpl-1","scheduledAt":"2025-03-09 09:00"}`},
		{name: "null payload for required fields", kind: models.IntentOrderView, raw: `null`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Accept(context.Background(), dto.IntentRequest{Kind: tc.kind, Payload: json.RawMessage(tc.raw)}, "")
			require.Error(t, err)
			assert.ErrorIs(t, err, appErrors.ErrValidation)
		})
	}

	svc.Stop()
}

func TestIntentServiceAcceptsEmptyPayloadKinds(t *testing.T) {
	defer goleak.VerifyNone(t)

	svc := newTestIntentService(t, nil)

	accepted, err := svc.Accept(context.Background(), dto.IntentRequest{Kind: models.IntentSessionLogout}, "")
	require.NoError(t, err)
	assert.Equal(t, models.IntentSessionLogout, accepted.Kind)

	svc.Stop()
}

func TestIntentServiceRetriesOnlyFailedSinks(t *testing.T) {
	defer goleak.VerifyNone(t)

	steady := newRecordingSink("steady", 0)
	flaky := newRecordingSink("flaky", 1)
	svc := newTestIntentService(t, nil, steady, flaky)

	scheduled := "2025-03-09T09:00:00"
	intent, err := svc.Dispatch(context.Background(), models.IntentCampaignSend, dto.CampaignSendPayload{
		CourseID:    "ec-1",
		TemplateID:  "tpl-1",
		ScheduledAt: &scheduled,
	}, "edu-1")
	require.NoError(t, err)
	assert.Equal(t, "edu-1", intent.ActorID)

	waitIntent(t, steady.done)
	delivered := waitIntent(t, flaky.done)
	assert.JSONEq(t, `{"courseId":"ec-1","templateId":"tpl-1","scheduledAt":"2025-03-09T09:00:00"}`, string(delivered.Payload))
	assert.Equal(t, 1, steady.attemptCount())
	assert.Equal(t, 2, flaky.attemptCount())

	svc.Stop()
}

func TestIntentServiceGivesUp(t *testing.T) {
	defer goleak.VerifyNone(t)

	metrics := NewMetricsService()
	broken := newRecordingSink("broken", 100)
	svc := NewIntentService(IntentServiceParams{
		Sinks:   []IntentSink{broken},
		Metrics: metrics,
		Config:  IntentServiceConfig{Workers: 1, BufferSize: 2, MaxRetries: 1, RetryDelay: 5 * time.Millisecond},
	})
	svc.Start(context.Background())

	_, err := svc.Dispatch(context.Background(), models.IntentNavigate, map[string]string{"href": "/cursos"}, "")
	require.NoError(t, err)

	assert.Eventually(t, func() bool { return broken.attemptCount() == 2 }, 2*time.Second, 5*time.Millisecond)
	svc.Stop()
}

func TestIntentServiceNotStarted(t *testing.T) {
	svc := NewIntentService(IntentServiceParams{Sinks: []IntentSink{newRecordingSink("memory", 0)}})

	_, err := svc.Dispatch(context.Background(), models.IntentNavigate, map[string]string{"href": "/"}, "")

	require.Error(t, err)
	assert.ErrorIs(t, err, appErrors.ErrDispatchUnavailable)
}

func TestIntentKindsSorted(t *testing.T) {
	kinds := IntentKinds()

	assert.Len(t, kinds, 41)
	assert.Equal(t, models.IntentCampaignCreate, kinds[0])
	assert.IsIncreasing(t, kinds)
}

type capturePublisher struct {
	msgs []broker.Message
	err  error
}

func (p *capturePublisher) Publish(_ context.Context, msg broker.Message) error {
	p.msgs = append(p.msgs, msg)
	return p.err
}

func TestBrokerSinkPublishesIntent(t *testing.T) {
	publisher := &capturePublisher{}
	sink := NewBrokerSink(publisher)
	intent := models.Intent{
		ID:         "intent-9",
		Kind:       models.IntentNewsletterSubscribe,
		Payload:    json.RawMessage(`{"email":"ana@example.com"}`),
		RequestID:  "req-7",
		AcceptedAt: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	require.NoError(t, sink.Deliver(context.Background(), intent))
	require.Len(t, publisher.msgs, 1)
	assert.Equal(t, "intent-9", publisher.msgs[0].ID)
	assert.Equal(t, "newsletter.subscribe", publisher.msgs[0].Type)
	assert.Equal(t, "req-7", publisher.msgs[0].CorrelationID)
	assert.Contains(t, string(publisher.msgs[0].Body), `"email":"ana@example.com"`)

	publisher.err = errors.New("broker down")
	assert.Error(t, sink.Deliver(context.Background(), intent))
	assert.Equal(t, "amqp", sink.Name())
}

func TestLogSinkDelivers(t *testing.T) {
	sink := NewLogSink(nil)

	assert.Equal(t, "log", sink.Name())
	assert.NoError(t, sink.Deliver(context.Background(), models.Intent{ID: "intent-1", Kind: models.IntentNavigate}))
}
