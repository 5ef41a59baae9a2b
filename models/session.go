package models

// Session struct for storing session data in redis
type Session struct {
	SessionToken string `json:"session_token"`
	UserID       string `json:"user_id"`
	CreatedAt    string `json:"created_at"`
	ExpiresAt    string `json:"expires_at"`
	UserAgent    string `json:"user_agent"`
	IPAddress    string `json:"ip_address"`
}
