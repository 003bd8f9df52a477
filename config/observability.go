package config

// ObservabilityConfig contains metrics configuration. Metrics are emitted
// as statsd counters; an empty address disables emission.
type ObservabilityConfig struct {
	// StatsdAddr is the UDP address of the statsd collector (host:port).
	StatsdAddr string `env:"STATSD_ADDR" envDefault:""`

	// StatsdPrefix is prepended to every metric name.
	StatsdPrefix string `env:"STATSD_PREFIX" envDefault:"workdesk"`
}

// Sanitize applies guardrails to observability configuration values.
func (o *ObservabilityConfig) Sanitize() {
	if o.StatsdPrefix == "" {
		o.StatsdPrefix = "workdesk"
	}
}
