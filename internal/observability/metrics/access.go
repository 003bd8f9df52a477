package metrics

import (
	"time"

	obserrors "github.com/stackfall/workdesk/internal/observability/errors"
	"github.com/stackfall/workdesk/internal/observability/statsd"
)

// Result constants for metric tagging.
const (
	ResultGranted = "granted"
	ResultDenied  = "denied"
	ResultError   = "error"
)

// AccessMetric captures a portal credential check for metric emission.
type AccessMetric struct {
	ResourceKind string
	Method       string
	Result       string
	Err          error
}

// EmitPortalAccess emits standardised portal verification metrics.
func EmitPortalAccess(sink statsd.Sink, in AccessMetric) {
	if sink == nil {
		return
	}

	tags := map[string]string{
		"resource": in.ResourceKind,
		"method":   in.Method,
		"result":   in.Result,
	}
	if in.Err != nil && in.Result == ResultError {
		if class := obserrors.Classify(in.Err); class != "" {
			tags["error_class"] = class
		}
	}

	sink.Count("portal.access", 1, tags)
}

// ChatMetric captures a chat bootstrap attempt for metric emission.
type ChatMetric struct {
	ResourceKind string
	ViewerKind   string
	Result       string
	Duration     time.Duration
	Err          error
}

// EmitChatBootstrap emits chat provisioning metrics.
func EmitChatBootstrap(sink statsd.Sink, in ChatMetric) {
	if sink == nil {
		return
	}

	tags := map[string]string{
		"resource": in.ResourceKind,
		"viewer":   in.ViewerKind,
		"result":   in.Result,
	}
	if in.Err != nil && in.Result == ResultError {
		if class := obserrors.Classify(in.Err); class != "" {
			tags["error_class"] = class
		}
	}

	sink.Count("chat.bootstrap", 1, tags)

	if in.Duration > 0 {
		sink.Timing("chat.bootstrap.duration", in.Duration, CloneTags(tags))
	}
}

// EmitWebhookDelivery emits one counter per sink delivery attempt.
func EmitWebhookDelivery(sink statsd.Sink, event, result string) {
	if sink == nil {
		return
	}
	sink.Count("webhook.delivery", 1, map[string]string{
		"event":  event,
		"result": result,
	})
}

// CloneTags creates a shallow copy of a tag map.
func CloneTags(src map[string]string) map[string]string {
	if len(src) == 0 {
		return nil
	}
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
