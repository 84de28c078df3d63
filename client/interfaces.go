package client

import (
	"context"

	"github.com/MKhiriev/rhoconnect-go/models"
)

//go:generate mockgen -source=interfaces.go -destination=../internal/mock/syncer_mock.go -package=mock

// Syncer is the set of push operations the lifecycle observer relies on.
// [*Client] implements it.
type Syncer interface {
	// Create pushes a newly created object.
	Create(ctx context.Context, resource, partition string, attrs models.Attributes) (*Response, error)

	// Update pushes a changed object. The service tells updates from creates
	// by the id already known for the partition.
	Update(ctx context.Context, resource, partition string, attrs models.Attributes) (*Response, error)

	// Destroy pushes the deletion of an object.
	Destroy(ctx context.Context, resource, partition string, attrs models.Attributes) (*Response, error)
}

// Factory builds a [Syncer]. The observer calls it once per hook invocation.
type Factory func() (Syncer, error)
