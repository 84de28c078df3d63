package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrLoginAlreadyExists is returned when a user with the same login is
	// already stored.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrNoUserWasFound is returned when no user matches the lookup.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrProductNotFound is returned when an update or delete targets a
	// product id that does not exist.
	ErrProductNotFound = errors.New("product was not found")
)

// Low-level database errors.
var (
	ErrOpeningDB         = errors.New("error opening database")
	ErrPingingDB         = errors.New("error pinging database")
	ErrMigratingDB       = errors.New("error migrating database")
	ErrExecutingQuery    = errors.New("error executing sql query")
	ErrExecutingStatment = errors.New("error executing sql statement")
)
