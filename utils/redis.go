package utils

import (
	"context"
	"fmt"
	"log"
	"time"

	"venvet/models"

	"github.com/redis/go-redis/v9"
)

// OpenRedisPool initializes a Redis connection pool
func OpenRedisPool(dsn string) *redis.Client {
	opt, err := redis.ParseURL(dsn)
	if err != nil {
		log.Fatalf("Failed to parse Redis DSN: %v", err)
	}

	opt.PoolSize = 100
	opt.MinIdleConns = 2
	opt.DialTimeout = 5 * time.Second
	opt.ConnMaxIdleTime = 5 * time.Minute

	client := redis.NewClient(opt)
	if err = client.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("Failed to ping redis db 0: %v", err)
	}

	return client
}

// StoreSession saves a session in Redis
func StoreSession(client *redis.Client, session models.Session, ttl time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sessionMap := map[string]any{
		"user_id":    session.UserID,
		"created_at": session.CreatedAt,
		"expires_at": session.ExpiresAt,
		"user_agent": session.UserAgent,
		"ip_address": session.IPAddress,
	}

	key := "session:" + session.SessionToken
	if err := client.HSet(ctx, key, sessionMap).Err(); err != nil {
		return err
	}

	if err := client.Expire(ctx, key, ttl).Err(); err != nil {
		return err
	}

	// Add to the user's session index
	return client.SAdd(ctx, "user_sessions:"+session.UserID, key).Err()
}

// GetSession retrieves session details from Redis
func GetSession(client *redis.Client, sessionToken string) (*models.Session, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	key := "session:" + sessionToken

	data, err := client.HGetAll(ctx, key).Result()
	if err != nil || len(data) == 0 {
		return nil, fmt.Errorf("session not found")
	}

	return &models.Session{
		SessionToken: sessionToken,
		UserID:       data["user_id"],
		CreatedAt:    data["created_at"],
		ExpiresAt:    data["expires_at"],
		UserAgent:    data["user_agent"],
		IPAddress:    data["ip_address"],
	}, nil
}

// DeleteSession removes a single session and its reference in the user index
func DeleteSession(client *redis.Client, sessionToken string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	key := "session:" + sessionToken

	userID, err := client.HGet(ctx, key, "user_id").Result()
	if err != nil {
		return err
	}

	if err := client.SRem(ctx, "user_sessions:"+userID, key).Err(); err != nil {
		return err
	}

	return client.Del(ctx, key).Err()
}

// DeleteAllUserSessions removes all sessions associated with a specific user
func DeleteAllUserSessions(client *redis.Client, userID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sessionKeys, err := client.SMembers(ctx, "user_sessions:"+userID).Result()
	if err != nil {
		return err
	}

	if len(sessionKeys) > 0 {
		if err := client.Del(ctx, sessionKeys...).Err(); err != nil {
			return err
		}
	}

	return client.Del(ctx, "user_sessions:"+userID).Err()
}
