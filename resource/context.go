package resource

import "context"

// contextKey is a private type for context keys of this package.
type contextKey string

var skipSyncCtxKey = contextKey("skipSync")

// WithoutSync returns a copy of ctx under which the observer does not push
// changes. Writes that originate from RhoConnect itself run under it so the
// service does not receive its own change back.
func WithoutSync(ctx context.Context) context.Context {
	return context.WithValue(ctx, skipSyncCtxKey, true)
}

// SyncSkipped reports whether ctx was derived from [WithoutSync].
func SyncSkipped(ctx context.Context) bool {
	if ctx == nil {
		return false
	}
	skip, ok := ctx.Value(skipSyncCtxKey).(bool)
	return ok && skip
}
