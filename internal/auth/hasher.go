package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher wraps bcrypt behind a bounded worker-slot pool. Hashing is
// CPU-expensive on purpose; the slot limit keeps a burst of registrations
// or logins from starving request-handling goroutines.
type PasswordHasher struct {
	cost  int
	slots chan struct{}
}

func NewPasswordHasher(cost, maxConcurrent int) *PasswordHasher {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}
	return &PasswordHasher{
		cost:  cost,
		slots: make(chan struct{}, maxConcurrent),
	}
}

// Hash computes the salted one-way hash of a plaintext password.
func (h *PasswordHasher) Hash(password string) (string, error) {
	h.slots <- struct{}{}
	defer func() { <-h.slots }()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Compare re-derives the hash with the stored salt and parameters and
// checks the result. bcrypt's comparison is constant-time.
func (h *PasswordHasher) Compare(hashedPassword, password string) error {
	h.slots <- struct{}{}
	defer func() { <-h.slots }()

	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}
