package smtp

import (
	"context"
	"net/smtp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stackfall/workdesk/config"
	"github.com/stackfall/workdesk/internal/ports"
)

func testMailer(capture *[]byte) *Mailer {
	m := NewMailer(config.EmailConfig{
		Host: "smtp.example.com",
		Port: 587,
		From: "invites@workdesk.example",
	})
	m.send = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		*capture = msg
		return nil
	}
	return m
}

func TestMailer_SendPortalInvite(t *testing.T) {
	var sent []byte
	m := testMailer(&sent)

	err := m.SendPortalInvite(context.Background(), ports.PortalInvite{
		ToEmail:  "dana@example.com",
		Subject:  "Your conversation access",
		Link:     "https://workdesk.example/portal/issues/a1b2c3d4e5f60718",
		Passcode: "K7QX2M",
	})
	require.NoError(t, err)

	msg := string(sent)
	assert.Contains(t, msg, "To: dana@example.com\r\n")
	assert.Contains(t, msg, "Subject: Your conversation access\r\n")
	assert.Contains(t, msg, "https://workdesk.example/portal/issues/a1b2c3d4e5f60718")
	assert.Contains(t, msg, "K7QX2M")
}

func TestMailer_SendPortalInvite_StripsSubjectNewlines(t *testing.T) {
	var sent []byte
	m := testMailer(&sent)

	err := m.SendPortalInvite(context.Background(), ports.PortalInvite{
		ToEmail: "dana@example.com",
		Subject: "Access\r\nBcc: attacker@example.com",
	})
	require.NoError(t, err)

	headers, _, ok := strings.Cut(string(sent), "\r\n\r\n")
	require.True(t, ok, "message must have a header/body separator")
	assert.NotContains(t, headers, "Bcc:")
	assert.Contains(t, headers, "Subject: AccessBcc: attacker@example.com")
}

func TestMailer_SendPortalInvite_RejectsRecipientNewlines(t *testing.T) {
	var sent []byte
	m := testMailer(&sent)

	err := m.SendPortalInvite(context.Background(), ports.PortalInvite{
		ToEmail: "dana@example.com\r\nBcc: attacker@example.com",
		Subject: "Access",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid characters")
	assert.Nil(t, sent)
}

func TestMailer_SendPortalInvite_Disabled(t *testing.T) {
	m := NewMailer(config.EmailConfig{})
	err := m.SendPortalInvite(context.Background(), ports.PortalInvite{ToEmail: "a@b.c"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}
