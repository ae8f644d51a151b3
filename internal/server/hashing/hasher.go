// Package hashing provides one-way password hashing for stored credentials.
package hashing

// Hasher hashes plaintext passwords and verifies candidates against stored
// hashes. Implementations must embed a per-call salt in the hash and must
// never be reversible.
type Hasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Verify reports whether password matches the stored hash. It returns
	// false on any mismatch or on a malformed hash, and never panics.
	Verify(password string, hash string) bool
}
