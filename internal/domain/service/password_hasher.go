// Package service defines interfaces for stateless domain capabilities whose
// implementations live in the infrastructure layer.
package service

// PasswordHasher hashes and verifies user passwords.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a hash to see if they match.
	Check(password, hash string) bool
}
