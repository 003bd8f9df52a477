package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/stackfall/workdesk/internal/domain/model"
	"github.com/stackfall/workdesk/internal/domain/party"
	apperrors "github.com/stackfall/workdesk/internal/errors"
	"github.com/stackfall/workdesk/internal/mocks"
	"github.com/stackfall/workdesk/internal/ports"
)

func chatResource(staffID *string) *PortalResource {
	return &PortalResource{
		Kind:        party.KindIssue,
		ID:          testIssueID,
		WorkspaceID: testWorkspaceID,
		Title:       "Checkout page intermittently times out",
		StaffID:     staffID,
	}
}

func externalViewer() party.Viewer {
	return party.Viewer{
		Kind:        party.ViewerExternal,
		StableID:    "ext-aaaa",
		DisplayName: "Avery",
		Email:       "avery@example.com",
	}
}

type chatFixture struct {
	backend *mocks.MockChatBackend
	users   *mocks.MockUserRepository
	svc     *ChatService
}

func newChatFixture(t *testing.T) chatFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockChatBackend(ctrl)
	users := mocks.NewMockUserRepository(ctrl)
	svc := NewChatService(ChatServiceOptions{
		Backend:     backend,
		Users:       users,
		ChannelType: "messaging",
	})
	return chatFixture{backend: backend, users: users, svc: svc}
}

func TestChatService_Bootstrap(t *testing.T) {
	ctx := context.Background()
	channelID := party.KindIssue.ChannelID(testIssueID)

	t.Run("external viewer without staff", func(t *testing.T) {
		f := newChatFixture(t)
		viewer := externalViewer()

		f.backend.EXPECT().UpsertUser(ctx, ports.ChatUser{ID: "ext-aaaa", Name: "Avery"}).Return(nil)
		f.backend.EXPECT().CreateOrGetChannel(ctx, ports.ChannelDescriptor{
			Type:        "messaging",
			ID:          channelID,
			CreatedByID: "ext-aaaa",
		}).Return(nil)
		f.backend.EXPECT().ChannelMembers(ctx, channelID, []string{"ext-aaaa"}).Return(nil, nil)
		f.backend.EXPECT().AddChannelMembers(ctx, channelID, []string{"ext-aaaa"}).Return(nil)
		f.backend.EXPECT().MintUserToken("ext-aaaa").Return("jwt-token", nil)
		f.backend.EXPECT().APIKey().Return("api-key")

		out, err := f.svc.Bootstrap(ctx, chatResource(nil), viewer)
		require.NoError(t, err)
		assert.Equal(t, "api-key", out.APIKey)
		assert.Equal(t, "jwt-token", out.Token)
		assert.Equal(t, channelID, out.ChannelID)
		assert.Equal(t, "messaging", out.ChannelType)
		assert.Equal(t, "ext-aaaa", out.UserID)
		assert.Equal(t, "Avery", out.DisplayName)
	})

	t.Run("assigned staff is federated into the channel", func(t *testing.T) {
		f := newChatFixture(t)
		staffID := "user-staff"
		avatar := "https://cdn.workdesk.example/avatars/staff.png"

		f.backend.EXPECT().UpsertUser(ctx, ports.ChatUser{ID: "ext-aaaa", Name: "Avery"}).Return(nil)
		f.users.EXPECT().GetByID(ctx, staffID).Return(&model.User{
			ID:          staffID,
			WorkspaceID: testWorkspaceID,
			DisplayName: "Sam Staff",
			AvatarURL:   &avatar,
		}, nil)
		f.backend.EXPECT().UpsertUser(ctx, ports.ChatUser{
			ID:    staffID,
			Name:  "Sam Staff",
			Image: avatar,
		}).Return(nil)
		f.backend.EXPECT().CreateOrGetChannel(ctx, gomock.Any()).Return(nil)
		f.backend.EXPECT().
			ChannelMembers(ctx, channelID, []string{"ext-aaaa", staffID}).
			Return([]string{staffID}, nil)
		f.backend.EXPECT().AddChannelMembers(ctx, channelID, []string{"ext-aaaa"}).Return(nil)
		f.backend.EXPECT().MintUserToken("ext-aaaa").Return("jwt-token", nil)
		f.backend.EXPECT().APIKey().Return("api-key")

		_, err := f.svc.Bootstrap(ctx, chatResource(&staffID), externalViewer())
		require.NoError(t, err)
	})

	t.Run("all members already present skips the add", func(t *testing.T) {
		f := newChatFixture(t)

		f.backend.EXPECT().UpsertUser(ctx, gomock.Any()).Return(nil)
		f.backend.EXPECT().CreateOrGetChannel(ctx, gomock.Any()).Return(nil)
		f.backend.EXPECT().
			ChannelMembers(ctx, channelID, []string{"ext-aaaa"}).
			Return([]string{"ext-aaaa"}, nil)
		f.backend.EXPECT().MintUserToken("ext-aaaa").Return("jwt-token", nil)
		f.backend.EXPECT().APIKey().Return("api-key")

		_, err := f.svc.Bootstrap(ctx, chatResource(nil), externalViewer())
		require.NoError(t, err)
	})

	t.Run("surplus members are left alone", func(t *testing.T) {
		// Membership only ever grows: a channel that already holds members
		// beyond the required set gets no adds and no removals.
		f := newChatFixture(t)

		f.backend.EXPECT().UpsertUser(ctx, gomock.Any()).Return(nil)
		f.backend.EXPECT().CreateOrGetChannel(ctx, gomock.Any()).Return(nil)
		f.backend.EXPECT().
			ChannelMembers(ctx, channelID, []string{"ext-aaaa"}).
			Return([]string{"ext-aaaa", "ext-departed", "user-former-staff"}, nil)
		f.backend.EXPECT().MintUserToken("ext-aaaa").Return("jwt-token", nil)
		f.backend.EXPECT().APIKey().Return("api-key")

		_, err := f.svc.Bootstrap(ctx, chatResource(nil), externalViewer())
		require.NoError(t, err)
	})

	t.Run("staff federation failure drops staff but proceeds", func(t *testing.T) {
		f := newChatFixture(t)
		staffID := "user-staff"

		f.backend.EXPECT().UpsertUser(ctx, ports.ChatUser{ID: "ext-aaaa", Name: "Avery"}).Return(nil)
		f.users.EXPECT().GetByID(ctx, staffID).Return(nil, assert.AnError)
		f.backend.EXPECT().CreateOrGetChannel(ctx, gomock.Any()).Return(nil)
		f.backend.EXPECT().
			ChannelMembers(ctx, channelID, []string{"ext-aaaa"}).
			Return([]string{"ext-aaaa"}, nil)
		f.backend.EXPECT().MintUserToken("ext-aaaa").Return("jwt-token", nil)
		f.backend.EXPECT().APIKey().Return("api-key")

		_, err := f.svc.Bootstrap(ctx, chatResource(&staffID), externalViewer())
		require.NoError(t, err)
	})

	t.Run("staff viewing their own resource is not federated twice", func(t *testing.T) {
		f := newChatFixture(t)
		staffID := "user-staff"
		viewer := party.Viewer{
			Kind:        party.ViewerInternal,
			StableID:    staffID,
			DisplayName: "Sam Staff",
		}

		f.backend.EXPECT().UpsertUser(ctx, ports.ChatUser{ID: staffID, Name: "Sam Staff"}).Return(nil)
		f.backend.EXPECT().CreateOrGetChannel(ctx, gomock.Any()).Return(nil)
		f.backend.EXPECT().
			ChannelMembers(ctx, channelID, []string{staffID}).
			Return([]string{staffID}, nil)
		f.backend.EXPECT().MintUserToken(staffID).Return("jwt-token", nil)
		f.backend.EXPECT().APIKey().Return("api-key")

		_, err := f.svc.Bootstrap(ctx, chatResource(&staffID), viewer)
		require.NoError(t, err)
	})

	t.Run("anonymous viewer is denied", func(t *testing.T) {
		f := newChatFixture(t)
		_, err := f.svc.Bootstrap(ctx, chatResource(nil), party.Viewer{Kind: party.ViewerAnonymous})
		assert.True(t, apperrors.IsCredentialInvalid(err))
	})

	t.Run("nil backend", func(t *testing.T) {
		svc := NewChatService(ChatServiceOptions{})
		_, err := svc.Bootstrap(ctx, chatResource(nil), externalViewer())
		assert.True(t, apperrors.IsBackendUnavailable(err))
	})

	t.Run("backend unavailable maps through", func(t *testing.T) {
		f := newChatFixture(t)
		f.backend.EXPECT().UpsertUser(ctx, gomock.Any()).Return(ports.ErrBackendUnavailable)

		_, err := f.svc.Bootstrap(ctx, chatResource(nil), externalViewer())
		assert.True(t, apperrors.IsBackendUnavailable(err))
	})
}

func TestNormalizeImageRef(t *testing.T) {
	t.Parallel()

	long := make([]byte, maxImageRefLen+1)
	for i := range long {
		long[i] = 'a'
	}

	tests := []struct {
		name string
		ref  *string
		want string
	}{
		{name: "nil", ref: nil, want: ""},
		{name: "empty", ref: strPtr(""), want: ""},
		{name: "whitespace", ref: strPtr("   "), want: ""},
		{name: "hosted url", ref: strPtr("https://cdn.example/a.png"), want: "https://cdn.example/a.png"},
		{name: "data uri", ref: strPtr("data:image/png;base64,AAAA"), want: ""},
		{name: "data uri uppercase", ref: strPtr("DATA:image/png;base64,AAAA"), want: ""},
		{name: "oversized", ref: strPtr(string(long)), want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, normalizeImageRef(tt.ref))
		})
	}
}

func strPtr(s string) *string { return &s }
