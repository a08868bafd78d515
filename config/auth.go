package config

// Bcrypt cost bounds; values outside this range are clamped by Sanitize.
const (
	minBcryptCost = 4
	maxBcryptCost = 16
)

// AuthConfig groups token signing and password hashing configuration.
//
// SecretKey is the process-wide HMAC key used to sign and verify bearer
// tokens. It is read once at startup and must never be mutated afterwards;
// every component that needs it receives it by value from this struct.
type AuthConfig struct {
	// SecretKey signs bearer tokens. Required.
	SecretKey string `env:"SECRET_KEY,required"`

	// BcryptCost is the bcrypt work factor for password hashing.
	BcryptCost int `env:"BCRYPT_WORK_FACTOR" envDefault:"12"`
}

// Sanitize clamps the bcrypt work factor to a safe range.
func (a *AuthConfig) Sanitize() {
	if a.BcryptCost < minBcryptCost {
		a.BcryptCost = minBcryptCost
	}
	if a.BcryptCost > maxBcryptCost {
		a.BcryptCost = maxBcryptCost
	}
}
