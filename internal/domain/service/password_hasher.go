// Package service declares the infrastructure capabilities the use cases depend on.
package service

// PasswordHasher hashes account passwords. Implementations must be salted and slow.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Check is false for a mismatch or a malformed hash.
	Check(password, hash string) bool
}
