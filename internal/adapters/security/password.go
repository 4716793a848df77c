package security

import (
	"ShopBot/internal/core/ports"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcryptHasher checks admin panel passwords.
type bcryptHasher struct {
	cost int
}

var _ ports.PasswordHasher = (*bcryptHasher)(nil)

func NewPasswordHasher() ports.PasswordHasher {
	return &bcryptHasher{cost: bcrypt.DefaultCost}
}

func (h *bcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// Check reports whether password matches hash. An empty hash never matches.
func (h *bcryptHasher) Check(password, hash string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
