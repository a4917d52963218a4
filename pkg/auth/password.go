package auth

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// CredentialVerifier abstracts how presented passwords are checked against
// a stored secret. Whether the mock shared-constant scheme or a real hash
// scheme is in effect is a deployment decision, not a store concern.
type CredentialVerifier interface {
	// Hash derives the stored form of a password at registration time.
	Hash(password string) (string, error)
	// Verify checks a presented password against the stored form.
	Verify(stored, presented string) bool
}

// StaticVerifier accepts exactly one shared constant, regardless of the
// stored secret. This is the mock-data mode: every seeded identity signs
// in with the same password.
type StaticVerifier struct {
	Constant string
}

// NewStaticVerifier creates a verifier around the shared constant.
func NewStaticVerifier(constant string) StaticVerifier {
	return StaticVerifier{Constant: constant}
}

func (v StaticVerifier) Hash(password string) (string, error) {
	// Nothing worth storing; sign-in only ever compares the constant.
	return "", nil
}

func (v StaticVerifier) Verify(stored, presented string) bool {
	return subtle.ConstantTimeCompare([]byte(v.Constant), []byte(presented)) == 1
}

// BcryptVerifier stores and checks bcrypt hashes.
type BcryptVerifier struct {
	Cost int
}

// NewBcryptVerifier creates a verifier with the given cost; zero or
// negative falls back to the bcrypt default.
func NewBcryptVerifier(cost int) BcryptVerifier {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return BcryptVerifier{Cost: cost}
}

func (v BcryptVerifier) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), v.Cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (v BcryptVerifier) Verify(stored, presented string) bool {
	if stored == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(presented)) == nil
}
