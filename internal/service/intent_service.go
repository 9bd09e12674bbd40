package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/tinta-academy-api/internal/dto"
	"github.com/noah-isme/tinta-academy-api/internal/models"
	appErrors "github.com/noah-isme/tinta-academy-api/pkg/errors"
	"github.com/noah-isme/tinta-academy-api/pkg/jobs"
	"github.com/noah-isme/tinta-academy-api/pkg/middleware/requestid"
)

// IntentSink receives accepted intents. Deliver may be retried and must tolerate
// duplicates.
type IntentSink interface {
	Name() string
	Deliver(ctx context.Context, intent models.Intent) error
}

// IntentServiceConfig tunes the dispatch worker pool.
type IntentServiceConfig struct {
	Workers    int
	BufferSize int
	MaxRetries int
	RetryDelay time.Duration
}

// IntentServiceParams groups constructor dependencies.
type IntentServiceParams struct {
	Sinks     []IntentSink
	Metrics   *MetricsService
	Validator *validator.Validate
	Logger    *zap.Logger
	Config    IntentServiceConfig
}

// IntentService validates user intents and fans them out to sinks in the background.
type IntentService struct {
	sinks     []IntentSink
	queue     *jobs.Queue
	metrics   *MetricsService
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
	newID     func() string
}

// intentDelivery is the queued unit; pending shrinks as sinks succeed so retries
// only revisit the sinks that failed.
type intentDelivery struct {
	intent  models.Intent
	pending []IntentSink
}

// NewIntentService constructs an IntentService. Call Start before accepting intents.
func NewIntentService(params IntentServiceParams) *IntentService {
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	validate := params.Validator
	if validate == nil {
		validate = validator.New()
	}
	s := &IntentService{
		sinks:     params.Sinks,
		metrics:   params.Metrics,
		validator: validate,
		logger:    logger,
		now:       time.Now,
		newID:     func() string { return uuid.NewString() },
	}
	s.queue = jobs.NewQueue("intents", s.deliver, jobs.QueueConfig{
		Workers:    params.Config.Workers,
		BufferSize: params.Config.BufferSize,
		MaxRetries: params.Config.MaxRetries,
		RetryDelay: params.Config.RetryDelay,
		Logger:     logger,
		OnGiveUp:   s.giveUp,
	})
	return s
}

// Start launches the dispatch workers.
func (s *IntentService) Start(ctx context.Context) {
	s.queue.Start(ctx)
}

// Stop waits for in-flight deliveries and stops the workers.
func (s *IntentService) Stop() {
	s.queue.Stop()
}

// Accept validates a posted intent and queues it for delivery.
func (s *IntentService) Accept(ctx context.Context, req dto.IntentRequest, actorID string) (*dto.IntentAccepted, error) {
	intent, err := s.accept(ctx, req.Kind, req.Payload, actorID)
	if err != nil {
		return nil, err
	}
	return &dto.IntentAccepted{ID: intent.ID, Kind: intent.Kind, AcceptedAt: intent.AcceptedAt}, nil
}

// Dispatch emits an intent produced by the API itself.
func (s *IntentService) Dispatch(ctx context.Context, kind models.IntentKind, payload interface{}, actorID string) (*models.Intent, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, appErrors.Invalid(err, "invalid payload")
	}
	return s.accept(ctx, kind, raw, actorID)
}

func (s *IntentService) accept(ctx context.Context, kind models.IntentKind, raw json.RawMessage, actorID string) (*models.Intent, error) {
	decoded, err := decodeIntentPayload(kind, raw)
	if err != nil {
		s.metrics.RecordIntent(string(kind), IntentOutcomeRejected)
		if errors.Is(err, appErrors.ErrUnknownIntent) {
			return nil, err
		}
		return nil, appErrors.Invalid(err, "invalid payload")
	}
	if err := s.validator.Struct(decoded); err != nil {
		s.metrics.RecordIntent(string(kind), IntentOutcomeRejected)
		return nil, appErrors.Invalid(err, fmt.Sprintf("invalid %s payload", kind))
	}
	normalized, err := json.Marshal(decoded)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to encode intent")
	}

	intent := models.Intent{
		ID:         s.newID(),
		Kind:       kind,
		Payload:    normalized,
		ActorID:    actorID,
		RequestID:  requestid.FromContext(ctx),
		AcceptedAt: s.now().UTC(),
	}
	if len(s.sinks) > 0 {
		job := jobs.Job{
			ID:       intent.ID,
			Kind:     string(kind),
			Payload:  &intentDelivery{intent: intent, pending: append([]IntentSink(nil), s.sinks...)},
			Enqueued: intent.AcceptedAt,
		}
		if err := s.queue.Enqueue(job); err != nil {
			s.metrics.RecordIntent(string(kind), IntentOutcomeFailed)
			s.logger.Warn("intent enqueue failed", zap.String("intent_id", intent.ID), zap.String("kind", string(kind)), zap.Error(err))
			return nil, appErrors.Wrap(err, appErrors.ErrDispatchUnavailable.Code, appErrors.ErrDispatchUnavailable.Status, appErrors.ErrDispatchUnavailable.Message)
		}
	}
	s.metrics.RecordIntent(string(kind), IntentOutcomeAccepted)
	s.logger.Debug("intent accepted", zap.String("intent_id", intent.ID), zap.String("kind", string(kind)), zap.String("actor_id", actorID))
	return &intent, nil
}

func (s *IntentService) deliver(ctx context.Context, job jobs.Job) error {
	d, ok := job.Payload.(*intentDelivery)
	if !ok {
		return fmt.Errorf("unexpected intent job payload %T", job.Payload)
	}
	var failed []IntentSink
	var errs []error
	for _, sink := range d.pending {
		if err := sink.Deliver(ctx, d.intent); err != nil {
			failed = append(failed, sink)
			errs = append(errs, fmt.Errorf("%s: %w", sink.Name(), err))
		}
	}
	d.pending = failed
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	s.metrics.RecordIntent(job.Kind, IntentOutcomeDelivered)
	return nil
}

func (s *IntentService) giveUp(job jobs.Job, err error) {
	s.metrics.RecordIntent(job.Kind, IntentOutcomeFailed)
	s.logger.Error("intent dropped", zap.String("intent_id", job.ID), zap.String("kind", job.Kind), zap.Int("attempts", job.Attempt), zap.Error(err))
}

func errUnknownIntent(kind models.IntentKind) error {
	return appErrors.Clone(appErrors.ErrUnknownIntent, fmt.Sprintf("unknown intent kind %q", kind))
}
