package ports

import (
	"context"
	"time"
)

// MagicLinkStore holds short-lived, single-use portal tokens. Tokens are
// volatile: losing them on restart only forces re-issuance.
type MagicLinkStore interface {
	// Issue mints a token bound to a resource and a subject email
	// (stored lower-cased) with an absolute expiry now+ttl.
	Issue(ctx context.Context, resourceID, subjectEmail string, ttl time.Duration) (string, error)

	// Consume destroys the token on first lookup, then checks resource,
	// subject email (case-insensitive), and expiry. It returns true only
	// when every check passes; a replay with identical arguments always
	// returns false. The error reports infrastructure failure only, never
	// a validation outcome.
	Consume(ctx context.Context, token, resourceID, subjectEmail string) (bool, error)
}

// PortalInvite is an out-of-band credential delivery: either a slug+passcode
// pair (issue chat) or a magic-link URL (RFP chat).
type PortalInvite struct {
	ToEmail  string
	Subject  string
	Link     string
	Passcode string
}

// Mailer delivers portal credentials. Delivery is best-effort: a send
// failure must not roll back the publish or token issuance that preceded it.
type Mailer interface {
	SendPortalInvite(ctx context.Context, inv PortalInvite) error
}
