package models

type User struct {
	ID           int    `db:"id"`
	Username     string `db:"username"`
	PasswordHash string `db:"password_hash"`
}

// Format returns the public representation of the user.
// The password hash never leaves the server.
func (u *User) Format() map[string]any {
	return map[string]any{
		"id":       u.ID,
		"username": u.Username,
	}
}
