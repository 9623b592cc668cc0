package entity

// User is a registered account.
// PasswordHash holds a bcrypt hash; the plaintext is never stored.
type User struct {
	ID           string
	Username     string
	Name         string
	PasswordHash string
}
