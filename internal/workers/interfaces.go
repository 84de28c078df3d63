// Package workers runs the one-off startup tasks of the demo server, such as
// registering callback urls with RhoConnect.
package workers

import (
	"context"

	"github.com/MKhiriev/rhoconnect-go/client"
)

// Worker is a single startup task. Run blocks until the task is done.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) error {
//	    // do the work
//	    return nil
//	}
type Worker interface {
	Run(ctx context.Context) error
}

// CallbackRegistrar is the part of the RhoConnect client used to register
// callbacks. *client.Client implements it.
type CallbackRegistrar interface {
	SetAuthCallback(ctx context.Context, callbackURL string) (*client.Response, error)
	SetQueryCallback(ctx context.Context, resource, callbackURL string) (*client.Response, error)
}
