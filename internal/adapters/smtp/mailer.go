// Package smtp delivers portal invites over a plain SMTP relay.
package smtp

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/stackfall/workdesk/config"
	"github.com/stackfall/workdesk/internal/ports"
)

// Mailer sends portal invites via smtp.SendMail. A zero-config mailer is
// valid and reports every send as disabled.
type Mailer struct {
	cfg  config.EmailConfig
	auth smtp.Auth
	addr string

	// send is swapped in tests.
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewMailer builds an SMTP mailer from the email configuration.
func NewMailer(cfg config.EmailConfig) *Mailer {
	var auth smtp.Auth
	if cfg.Username != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}
	return &Mailer{
		cfg:  cfg,
		auth: auth,
		addr: fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		send: smtp.SendMail,
	}
}

// SendPortalInvite delivers the credential email. Callers treat failures as
// best-effort and must not roll back the work that preceded the send.
func (m *Mailer) SendPortalInvite(ctx context.Context, inv ports.PortalInvite) error {
	if !m.cfg.Enabled() {
		return fmt.Errorf("smtp relay not configured")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	to := strings.TrimSpace(inv.ToEmail)
	if to == "" {
		return fmt.Errorf("invite recipient is required")
	}
	// A recipient with CR or LF would let the caller inject extra headers.
	if strings.ContainsAny(to, "\r\n") {
		return fmt.Errorf("invite recipient contains invalid characters")
	}

	from := m.cfg.From
	if m.cfg.FromName != "" {
		from = fmt.Sprintf("%s <%s>", m.cfg.FromName, m.cfg.From)
	}

	msg := []byte(fmt.Sprintf(
		"To: %s\r\n"+
			"From: %s\r\n"+
			"Subject: %s\r\n"+
			"Content-Type: text/plain; charset=UTF-8\r\n"+
			"\r\n"+
			"%s",
		to,
		from,
		sanitizeHeaderValue(inv.Subject),
		inviteBody(inv),
	))

	return m.send(m.addr, m.auth, m.cfg.From, []string{to}, msg)
}

// sanitizeHeaderValue strips CR and LF so a value folded into a header line
// cannot terminate it and smuggle additional headers.
func sanitizeHeaderValue(v string) string {
	return strings.Map(func(r rune) rune {
		if r == '\r' || r == '\n' {
			return -1
		}
		return r
	}, v)
}

func inviteBody(inv ports.PortalInvite) string {
	var b strings.Builder
	b.WriteString("You have been invited to a Workdesk conversation.\r\n\r\n")
	if inv.Link != "" {
		fmt.Fprintf(&b, "Open the conversation: %s\r\n", inv.Link)
	}
	if inv.Passcode != "" {
		fmt.Fprintf(&b, "Your passcode: %s\r\n", inv.Passcode)
	}
	b.WriteString("\r\nThis invitation is personal; please do not forward it.\r\n")
	return b.String()
}
