package utils

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"venvet/models"

	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
)

const sessionTTL = 24 * time.Hour

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func GenerateToken(length int) string {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		log.Fatalf("Failed to generate token: %v", err)
	}
	return base64.URLEncoding.EncodeToString(bytes)
}

// EstablishSession creates a server-side session for the user and sets the
// session cookie on the response.
func EstablishSession(w http.ResponseWriter, r *http.Request, client *redis.Client, userID int) error {
	sessionToken := GenerateToken(32)

	http.SetCookie(w, &http.Cookie{
		Name:     "session_token",
		Value:    sessionToken,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		Path:     "/",
		MaxAge:   int(sessionTTL.Seconds()),
	})

	session := models.Session{
		SessionToken: sessionToken,
		UserID:       strconv.Itoa(userID),
		CreatedAt:    time.Now().Format(time.RFC3339),
		ExpiresAt:    time.Now().Add(sessionTTL).Format(time.RFC3339),
		UserAgent:    GetUserAgent(r),
		IPAddress:    GetIP(r),
	}

	return StoreSession(client, session, sessionTTL)
}

// DestroySession deletes the caller's session and expires the cookie.
func DestroySession(w http.ResponseWriter, r *http.Request, client *redis.Client) error {
	if !CookieExists(r, "session_token") {
		return errors.New("unable to retrieve session token")
	}
	st, _ := r.Cookie("session_token")

	http.SetCookie(w, &http.Cookie{
		Name:     "session_token",
		Value:    "",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		Path:     "/",
		MaxAge:   -1,
	})

	return DeleteSession(client, st.Value)
}

// CurrentUserID resolves the session cookie to a user id. Any failure along
// the chain (no cookie, unknown or expired session, malformed id) leaves the
// request unauthenticated.
func CurrentUserID(r *http.Request, client *redis.Client) (int, error) {
	if !CookieExists(r, "session_token") {
		return 0, errors.New("missing or empty session token")
	}
	st, _ := r.Cookie("session_token")

	session, err := GetSession(client, st.Value)
	if err != nil {
		return 0, err
	}

	expiresAt, err := time.Parse(time.RFC3339, session.ExpiresAt)
	if err != nil || !time.Now().Before(expiresAt) {
		return 0, errors.New("session expired")
	}

	id, err := strconv.Atoi(session.UserID)
	if err != nil {
		return 0, errors.New("malformed user id in session")
	}
	return id, nil
}

func IsAuthenticated(r *http.Request, client *redis.Client) bool {
	_, err := CurrentUserID(r, client)
	return err == nil
}
