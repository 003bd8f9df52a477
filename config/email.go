package config

// EmailConfig contains outbound SMTP configuration. Email delivery is
// best-effort: publishing and invites succeed even when SMTP is down or
// unconfigured (empty Host disables sending).
type EmailConfig struct {
	Host     string `env:"HOST"      envDefault:""`
	Port     int    `env:"PORT"      envDefault:"587"`
	Username string `env:"USERNAME"  envDefault:""`
	Password string `env:"PASSWORD"  envDefault:""`
	From     string `env:"FROM"      envDefault:""`
	FromName string `env:"FROM_NAME" envDefault:"Workdesk"`
}

// Enabled reports whether an SMTP relay is configured.
func (e EmailConfig) Enabled() bool {
	return e.Host != "" && e.From != ""
}
