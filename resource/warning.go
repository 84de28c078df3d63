package resource

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/rhoconnect-go/client"
	"github.com/MKhiriev/rhoconnect-go/logger"
)

// WarningKind classifies a swallowed hook failure.
type WarningKind string

const (
	// WarningRemote means the service answered with a non-2xx status.
	WarningRemote WarningKind = "remote"
	// WarningUnexpected covers everything else: transport failures, client
	// construction and serialization errors.
	WarningUnexpected WarningKind = "unexpected"
)

// Warning describes one failed lifecycle hook.
type Warning struct {
	Kind  WarningKind
	Model string
	Hook  string
	Err   error
}

func newWarning(model, hook string, err error) Warning {
	kind := WarningUnexpected
	var remote *client.RemoteError
	if errors.As(err, &remote) {
		kind = WarningRemote
	}
	return Warning{Kind: kind, Model: model, Hook: hook, Err: err}
}

// Message renders the warning the way it is logged, e.g.
// "Product: rhoconnect_create returned error: Internal Server Error - boom".
func (w Warning) Message() string {
	if w.Kind == WarningRemote {
		return fmt.Sprintf("%s: %s returned error: %s", w.Model, w.Hook, w.Err)
	}
	return fmt.Sprintf("%s: %s returned unexpected error: %s", w.Model, w.Hook, w.Err)
}

// WarnFunc receives every swallowed hook failure.
type WarnFunc func(ctx context.Context, w Warning)

// LogWarnings returns a WarnFunc writing each warning as a zerolog Warn
// event.
func LogWarnings(l *logger.Logger) WarnFunc {
	l = logger.OrNop(l)
	return func(_ context.Context, w Warning) {
		l.Warn().
			Str("kind", string(w.Kind)).
			Str("model", w.Model).
			Str("hook", w.Hook).
			Err(w.Err).
			Msg(w.Message())
	}
}
