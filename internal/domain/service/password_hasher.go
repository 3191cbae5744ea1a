// Package service declares the ports the use cases depend on.
package service

// PasswordHasher hashes account passwords for storage.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Check reports whether password matches a hash produced by Hash.
	Check(password, hash string) bool
}
