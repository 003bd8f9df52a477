package ports

import (
	"context"
	"errors"
)

// ErrBackendUnavailable is returned by ChatBackend implementations when the
// messaging backend is unreachable or not configured.
var ErrBackendUnavailable = errors.New("messaging backend unavailable")

// ChatUser is the directory record mirrored into the messaging backend.
// ID is a stable id, never a raw email or internal identifier leak.
type ChatUser struct {
	ID    string
	Name  string
	Image string
}

// ChannelDescriptor identifies a chat channel to create or reuse.
type ChannelDescriptor struct {
	Type        string
	ID          string
	CreatedByID string
}

// ChatBackend is the messaging-backend collaborator. Every method crosses a
// network boundary and must respect the context deadline. Adding a member
// that is already present is a no-op for the backend, which makes the
// provisioner's read-then-add race benign.
type ChatBackend interface {
	// UpsertUser creates or updates a directory record; idempotent.
	UpsertUser(ctx context.Context, u ChatUser) error

	// CreateOrGetChannel creates the channel or succeeds if it already
	// exists. Vendor-specific "already exists" detection is the
	// implementation's concern; callers never see that signal.
	CreateOrGetChannel(ctx context.Context, ch ChannelDescriptor) error

	// ChannelMembers returns which of memberIDs are already channel
	// members (a bounded query, not a full scan).
	ChannelMembers(ctx context.Context, channelID string, memberIDs []string) ([]string, error)

	// AddChannelMembers adds members to the channel; never removes any.
	AddChannelMembers(ctx context.Context, channelID string, memberIDs []string) error

	// MintUserToken returns a browser credential for direct backend access.
	MintUserToken(userID string) (string, error)

	// APIKey returns the public application key browsers connect with.
	APIKey() string
}
