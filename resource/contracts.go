package resource

import (
	"context"

	"github.com/MKhiriev/rhoconnect-go/models"
)

// Querier answers query requests. Every returned object must be
// serializable by [Normalize].
type Querier interface {
	Query(ctx context.Context, partition string) ([]any, error)
}

// CreateReceiver stores an object created on a device and returns its new id.
type CreateReceiver interface {
	ReceiveCreate(ctx context.Context, partition string, attrs models.Attributes) (string, error)
}

// UpdateReceiver applies a device-side update and returns the affected id.
type UpdateReceiver interface {
	ReceiveUpdate(ctx context.Context, partition string, attrs models.Attributes) (string, error)
}

// DeleteReceiver applies a device-side delete and returns the affected id.
type DeleteReceiver interface {
	ReceiveDelete(ctx context.Context, partition string, attrs models.Attributes) (string, error)
}

// Record marks a non-gorm model type that can be tracked by the [Observer].
type Record interface {
	RecordID() string
}

// Serializer renders a model as a plain attribute mapping. It is mandatory
// for [Record] types and optional for gorm models, where it replaces schema
// based serialization.
type Serializer interface {
	SyncAttributes() models.Attributes
}
