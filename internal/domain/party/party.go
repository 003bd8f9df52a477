// Package party contains domain-level types for external-party access:
// viewer identities, soft sessions, and the credential primitives used by
// the portal. It is pure and free of transport/storage concerns.
package party

// ResourceKind identifies which kind of resource a portal credential or
// chat channel is scoped to.
type ResourceKind string

const (
	KindIssue ResourceKind = "issue"
	KindRFP   ResourceKind = "rfp"
)

// Namespace returns the stable-id namespace for a resource. The same
// external party gets different stable ids under different namespaces.
func (k ResourceKind) Namespace(resourceID string) string {
	return string(k) + ":" + resourceID
}

// CookieName returns the soft-session cookie name for a resource. The name
// embeds kind and id so a cookie verified for one resource cannot stand in
// for another.
func (k ResourceKind) CookieName(resourceID string) string {
	return "wd_" + string(k) + "_chat_" + resourceID
}

// ChannelID returns the messaging-backend channel id for a resource.
func (k ResourceKind) ChannelID(resourceID string) string {
	return string(k) + "-" + resourceID
}

// ViewerKind is an explicit enum over the three classes of requester.
// Call sites switch exhaustively so a fourth kind is a compile-visible change.
type ViewerKind int

const (
	ViewerAnonymous ViewerKind = iota
	ViewerInternal
	ViewerExternal
)

func (k ViewerKind) String() string {
	switch k {
	case ViewerInternal:
		return "internal"
	case ViewerExternal:
		return "external"
	case ViewerAnonymous:
		return "anonymous"
	default:
		return "unknown"
	}
}

// Viewer is the resolved identity of a requester against one resource.
// Computed fresh per request; never persisted.
type Viewer struct {
	Kind        ViewerKind
	StableID    string
	DisplayName string
	Email       string
}

// SoftSession is the claim bundle carried client-side in a signed cookie.
// Its presence (with a valid signature) is proof of prior passcode or
// magic-link verification for the resource named by the cookie.
type SoftSession struct {
	Name  string `json:"n"`
	Email string `json:"e,omitempty"`
	// Scope is the resource namespace (kind:id) the session was verified
	// for. Signed into the claims so a cookie minted for one resource is
	// rejected when replayed under another resource's cookie name.
	Scope string `json:"s"`
	// FallbackID is a random per-session stable id used when no email was
	// collected, so the same browser keeps one chat identity for the
	// cookie's lifetime.
	FallbackID string `json:"f,omitempty"`
}

// StableID returns the messaging-backend identity for the session within
// the given namespace.
func (s SoftSession) StableID(namespace string) string {
	if s.Email != "" {
		return ExternalStableID(namespace, s.Email)
	}
	return s.FallbackID
}
