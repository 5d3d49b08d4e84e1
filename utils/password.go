package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword derives a salted bcrypt hash from the plaintext. The returned
// string encodes the algorithm version, cost and salt, so stored hashes stay
// verifiable if the cost is raised later.
func HashPassword(plainTextPassword string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plainTextPassword), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether the plaintext matches the stored hash.
// A malformed hash is treated as a non-match.
func CheckPassword(plainTextPassword, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plainTextPassword)) == nil
}
