package crypto

// PasswordHasher derives and verifies password hashes of the demo users.
//
// Hashes are self-describing strings in the PHC format used by the reference
// argon2 implementation:
//
//	$argon2id$v=19$m=65536,t=1,p=4$<salt>$<key>
//
// so the parameters used at registration time travel with the hash.
type PasswordHasher interface {
	// Hash derives a new hash with a fresh random salt.
	Hash(password string) (string, error)

	// Verify reports whether password matches encoded. A malformed encoded
	// value yields [ErrMalformedHash].
	Verify(password, encoded string) (bool, error)
}
