package models

// Attributes is a plain field-name → value mapping describing one object as
// it travels between the host application and the RhoConnect backend.
type Attributes map[string]any

// Envelope is the JSON body the RhoConnect backend posts to the query,
// create, update and delete endpoints of the host application.
type Envelope struct {
	// Resource is the exact name of the registered resource (e.g. "Product").
	Resource string `json:"resource"`

	// Partition scopes the request, typically a user login or "app".
	Partition string `json:"partition"`

	// Attributes holds the object fields for create/update/delete requests.
	// It is empty for query requests.
	Attributes Attributes `json:"attributes,omitempty"`
}

// Credentials is the body of an authenticate request. Its shape is defined
// by the mobile client, so it is kept as a free-form mapping.
type Credentials map[string]any
