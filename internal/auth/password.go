package auth

import "golang.org/x/crypto/bcrypt"

// bcryptCost matches the work factor used by the deployed credential data.
const bcryptCost = 10

// HashPassword derives a salted bcrypt hash from a plaintext password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches the stored hash.
// A mismatch is a boolean outcome, not an error: callers map it to the
// same generic rejection as an unknown email so that neither case is
// distinguishable from outside.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
