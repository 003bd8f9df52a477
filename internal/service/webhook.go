package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	jmespath "github.com/jmespath-community/go-jmespath"

	"github.com/stackfall/workdesk/internal/core"
	"github.com/stackfall/workdesk/internal/domain/model"
	apperrors "github.com/stackfall/workdesk/internal/errors"
	"github.com/stackfall/workdesk/internal/observability/metrics"
	"github.com/stackfall/workdesk/internal/observability/statsd"
)

// JMESPathEvaluator abstracts JMESPath operations for testability.
type JMESPathEvaluator interface {
	Validate(expr string) error
	Evaluate(expr string, data any) (any, error)
}

// jmespathLibEvaluator implements JMESPathEvaluator using go-jmespath.
type jmespathLibEvaluator struct{}

func (j jmespathLibEvaluator) Validate(expr string) error {
	if strings.TrimSpace(expr) == "" {
		return nil
	}
	_, err := jmespath.Compile(expr)
	return err
}

func (j jmespathLibEvaluator) Evaluate(expr string, data any) (any, error) {
	return jmespath.Search(expr, data)
}

// WebhookEnvelope is the JSON body delivered to sinks.
type WebhookEnvelope struct {
	Event       model.WebhookEvent `json:"event"`
	WorkspaceID string             `json:"workspace_id"`
	OccurredAt  time.Time          `json:"occurred_at"`
	Data        map[string]any     `json:"data"`
}

// WebhookServiceOptions groups dependencies for WebhookService.
type WebhookServiceOptions struct {
	Sinks     core.WebhookSinkRepository
	Evaluator JMESPathEvaluator
	Client    *http.Client
	Logger    *slog.Logger
	Metrics   statsd.Sink
}

// WebhookService manages sink registrations and delivers workspace events
// to them. Deliveries are best-effort: a failing sink never fails the
// operation that produced the event.
type WebhookService struct {
	sinks   core.WebhookSinkRepository
	jems    JMESPathEvaluator
	client  *http.Client
	logger  *slog.Logger
	metrics statsd.Sink
}

// NewWebhookService constructs a new WebhookService.
func NewWebhookService(opts WebhookServiceOptions) *WebhookService {
	jems := opts.Evaluator
	if jems == nil {
		jems = jmespathLibEvaluator{}
	}
	client := opts.Client
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &WebhookService{
		sinks:   opts.Sinks,
		jems:    jems,
		client:  client,
		logger:  logger.With("component", "webhooks"),
		metrics: opts.Metrics,
	}
}

// Create registers a sink after validating its selector expression.
func (s *WebhookService) Create(
	ctx context.Context,
	workspaceID string,
	req *model.CreateWebhookSinkRequest,
) (*model.WebhookSink, error) {
	if req != nil && req.Selector != nil {
		if err := s.jems.Validate(*req.Selector); err != nil {
			return nil, apperrors.ValidationField("selector", fmt.Sprintf("invalid selector: %v", err))
		}
	}
	return s.sinks.Create(ctx, workspaceID, req)
}

// Get retrieves a sink.
func (s *WebhookService) Get(ctx context.Context, workspaceID, id string) (*model.WebhookSink, error) {
	return s.sinks.GetByID(ctx, workspaceID, id)
}

// List retrieves the sinks of a workspace.
func (s *WebhookService) List(ctx context.Context, workspaceID string) ([]*model.WebhookSink, error) {
	return s.sinks.List(ctx, workspaceID)
}

// SetEnabled toggles a sink.
func (s *WebhookService) SetEnabled(
	ctx context.Context,
	workspaceID, id string,
	enabled bool,
) (*model.WebhookSink, error) {
	return s.sinks.SetEnabled(ctx, workspaceID, id, enabled)
}

// Delete removes a sink.
func (s *WebhookService) Delete(ctx context.Context, workspaceID, id string) (bool, error) {
	return s.sinks.Delete(ctx, workspaceID, id)
}

// Dispatch delivers an event to every enabled, matching sink. It runs
// synchronously against the sink list but never returns delivery errors;
// failures are logged and counted.
func (s *WebhookService) Dispatch(
	ctx context.Context,
	workspaceID string,
	event model.WebhookEvent,
	data map[string]any,
) {
	sinks, err := s.sinks.ListByEvent(ctx, workspaceID, event)
	if err != nil {
		s.logger.ErrorContext(ctx, "list webhook sinks", "event", event, "err", err)
		return
	}
	if len(sinks) == 0 {
		return
	}

	env := WebhookEnvelope{
		Event:       event,
		WorkspaceID: workspaceID,
		OccurredAt:  time.Now().UTC(),
		Data:        data,
	}

	for _, sink := range sinks {
		if !s.selectorMatches(ctx, sink, env) {
			continue
		}
		result := metrics.ResultGranted
		if deliverErr := s.deliver(ctx, sink, env); deliverErr != nil {
			result = metrics.ResultError
			s.logger.WarnContext(ctx, "webhook delivery failed",
				"sink_id", sink.ID, "event", event, "err", deliverErr)
		}
		metrics.EmitWebhookDelivery(s.metrics, string(event), result)
	}
}

// selectorMatches evaluates the sink's JMESPath selector against the
// envelope. A nil, false, or empty result skips the delivery; an
// evaluation error skips it too, with a log line.
func (s *WebhookService) selectorMatches(ctx context.Context, sink *model.WebhookSink, env WebhookEnvelope) bool {
	if sink.Selector == nil || strings.TrimSpace(*sink.Selector) == "" {
		return true
	}

	// Round-trip through JSON so the evaluator sees plain maps.
	raw, err := json.Marshal(env)
	if err != nil {
		return false
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return false
	}

	result, err := s.jems.Evaluate(*sink.Selector, doc)
	if err != nil {
		s.logger.WarnContext(ctx, "webhook selector evaluation failed",
			"sink_id", sink.ID, "err", err)
		return false
	}
	switch v := result.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	case []any:
		return len(v) > 0
	default:
		return true
	}
}

func (s *WebhookService) deliver(ctx context.Context, sink *model.WebhookSink, env WebhookEnvelope) error {
	body, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("encode webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, sink.URL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Workdesk-Event", string(env.Event))

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("webhook request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}
