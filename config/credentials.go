package config

import (
	"fmt"
	"net/url"
	"strings"
)

// SplitCredentials extracts the token embedded as the user component of raw
// ("scheme://token@host") and returns the uri without it.
//
// An empty raw yields empty results. Applying SplitCredentials to its own
// output uri is a no-op: the returned token is always empty.
func SplitCredentials(raw string) (uri, token string, err error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", "", nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", "", fmt.Errorf("%w: %w", ErrInvalidURI, err)
	}

	if u.User != nil {
		token = u.User.Username()
		u.User = nil
	}

	return strings.TrimRight(u.String(), "/"), token, nil
}
