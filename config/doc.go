// Package config holds the adapter configuration shared by the sync client,
// the lifecycle observer and the endpoint handlers.
//
// A [Config] is normally built once at startup by rhoconnect.Configure and
// installed as the process default ([SetDefault]). Components also accept an
// explicit *Config so tests and multi-tenant hosts can inject their own.
//
// Environment variables consumed:
//   - RHOCONNECT_URL        remote service uri, optionally scheme://token@host
//   - RHOCONNECT_TOKEN      api token
//   - APP_ENDPOINT          public url of this host's rhoconnect endpoints
//   - RHOCONNECT_HTTP_PROXY proxy used for outbound calls
package config
