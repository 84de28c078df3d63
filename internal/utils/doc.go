// Package utils provides small helpers shared across the module: the resty
// client wrapper, JSON and plain-text response writers and id generation.
package utils
