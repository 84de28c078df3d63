package client

import (
	"time"

	"github.com/MKhiriev/rhoconnect-go/config"
	"github.com/MKhiriev/rhoconnect-go/logger"
)

type options struct {
	uri     string
	token   string
	cfg     *config.Config
	timeout time.Duration
	logger  *logger.Logger
}

// Option customizes [New].
type Option func(*options)

// WithURI sets the service uri. It takes precedence over RHOCONNECT_URL and
// the configuration. A token embedded as "scheme://token@host" is extracted.
func WithURI(uri string) Option {
	return func(o *options) { o.uri = uri }
}

// WithToken sets the api token. It takes precedence over RHOCONNECT_TOKEN and
// the configuration, but not over a token embedded in the resolved uri.
func WithToken(token string) Option {
	return func(o *options) { o.token = token }
}

// WithConfig uses cfg instead of the process default as the last fallback.
func WithConfig(cfg *config.Config) Option {
	return func(o *options) { o.cfg = cfg }
}

// WithTimeout bounds each outbound request. Zero keeps the transport default.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

func WithLogger(l *logger.Logger) Option {
	return func(o *options) { o.logger = l }
}

// NewFactory returns a [Factory] that builds clients with opts.
func NewFactory(opts ...Option) Factory {
	return func() (Syncer, error) {
		return New(opts...)
	}
}
