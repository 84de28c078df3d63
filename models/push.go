package models

// PushPayload is sent to /api/source/push_objects and
// /api/source/push_deletes.
//
// Objects is a map of object id → attributes for pushes and a list of object
// ids for deletes.
type PushPayload struct {
	APIToken string `json:"api_token"`
	SourceID string `json:"source_id"`
	UserID   string `json:"user_id"`
	Objects  any    `json:"objects"`
}

// CallbackPayload is sent to /api/set_auth_callback and
// /api/set_query_callback. SourceID is only set for query callbacks.
type CallbackPayload struct {
	APIToken string `json:"api_token"`
	SourceID string `json:"source_id,omitempty"`
	Callback string `json:"callback"`
}
