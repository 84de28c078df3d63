// Package config loads the settings of the rhoconnect-demo server.
//
// Configuration is assembled from multiple sources. For every field the first
// source providing a non-zero value wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The adapter itself is configured through the top-level config package; the
// demo feeds the RhoConnect section of [StructuredConfig] into it at startup.
package config
