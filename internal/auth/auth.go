package auth

import "golang.org/x/crypto/bcrypt"

// GeneratePasswordHash creates hash based on provided password
func GeneratePasswordHash(pass string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pass), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword verifies that hash is equal to the one which will be produced by password
func VerifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

const placeholderPassword = "placeholder-for-unknown-user"

// PlaceholderHash builds hash which unknown usernames are verified against,
// rejecting unknown user must cost the same as rejecting wrong password
func PlaceholderHash(cost int) (string, error) {
	return GeneratePasswordHash(placeholderPassword, cost)
}
