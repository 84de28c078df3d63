// Package http implements the HTTP transport of the demo server.
//
// It mounts the RhoConnect endpoint helpers under /rhoconnect and serves a
// small product API. Writes made through that API go through gorm, so the
// resource observer pushes them to RhoConnect. Request tracing and access
// logging are handled by middleware in this package.
package http
