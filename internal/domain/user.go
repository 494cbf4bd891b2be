package domain

// User represents a registered member of the community.
type User struct {
	ID           int64
	Name         string
	Email        string
	Bio          string
	PasswordHash string
	IsAdmin      bool
}
