// Package mocks provides mock implementations for testing workdesk services.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for
// our repository and port interfaces. The mocks are generated using
// go:generate directives and provide a fluent API for setting up test
// expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	backend := mocks.NewMockChatBackend(ctrl)
//	backend.EXPECT().UpsertUser(gomock.Any(), gomock.Any()).Return(nil)
//
// Hand-written auth test doubles live in the auth subpackage.
package mocks

// Generate mock for ChatBackend interface from internal/ports package.
// This creates MockChatBackend with methods for all ChatBackend interface methods:
// UpsertUser, CreateOrGetChannel, ChannelMembers, AddChannelMembers, MintUserToken, APIKey
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=chat_backend_mock.go github.com/stackfall/workdesk/internal/ports ChatBackend

// Generate mock for MagicLinkStore interface from internal/ports package.
// This creates MockMagicLinkStore with methods for all MagicLinkStore interface methods:
// Issue, Consume
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=magic_link_store_mock.go github.com/stackfall/workdesk/internal/ports MagicLinkStore

// Generate mock for IssueRepository interface from internal/core package.
// This creates MockIssueRepository with methods for all IssueRepository interface methods:
// Create, GetByID, GetByChatSlug, List, Update, SetPublishState, Delete
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=issue_repository_mock.go github.com/stackfall/workdesk/internal/core IssueRepository

// Generate mock for RFPRepository interface from internal/core package.
// This creates MockRFPRepository with methods for all RFPRepository interface methods:
// Create, GetByID, GetByChatSlug, List, Update, SetPublishState, Delete
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=rfp_repository_mock.go github.com/stackfall/workdesk/internal/core RFPRepository

// Generate mock for UserRepository interface from internal/core package.
// This creates MockUserRepository with methods for all UserRepository interface methods:
// GetByID, GetByEmail, List, UpsertByEmail
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=user_repository_mock.go github.com/stackfall/workdesk/internal/core UserRepository

// Generate mock for WebhookSinkRepository interface from internal/core package.
// This creates MockWebhookSinkRepository with methods for all WebhookSinkRepository interface methods:
// Create, GetByID, List, ListByEvent, SetEnabled, Delete
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=webhook_sink_repository_mock.go github.com/stackfall/workdesk/internal/core WebhookSinkRepository
