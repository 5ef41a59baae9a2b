package utils

import (
	"context"
	"errors"
	"fmt"
	"time"

	"venvet/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// InsertUser creates a user inside a transaction and returns the generated id.
// A duplicate username surfaces as ErrAlreadyExists.
func InsertUser(db *pgxpool.Pool, username string, passwordHash string) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := db.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	var id int
	stmt := "INSERT INTO users (username, password_hash) VALUES ($1, $2) RETURNING id;"
	if err := tx.QueryRow(ctx, stmt, username, passwordHash).Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return 0, ErrAlreadyExists
		}
		return 0, fmt.Errorf("insert user: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return id, nil
}

func GetUserByUsername(db *pgxpool.Pool, username string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	u := &models.User{}
	stmt := "SELECT id, username, password_hash FROM users WHERE username = $1;"
	err := db.QueryRow(ctx, stmt, username).Scan(&u.ID, &u.Username, &u.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user by username: %w", err)
	}
	return u, nil
}

func GetUserByID(db *pgxpool.Pool, id int) (*models.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	u := &models.User{}
	stmt := "SELECT id, username, password_hash FROM users WHERE id = $1;"
	err := db.QueryRow(ctx, stmt, id).Scan(&u.ID, &u.Username, &u.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return u, nil
}

// ListUsers returns every user ordered by id.
func ListUsers(db *pgxpool.Pool) ([]models.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	rows, err := db.Query(ctx, "SELECT id, username, password_hash FROM users ORDER BY id;")
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var out []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Username, &u.PasswordHash); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func UsernameInUse(db *pgxpool.Pool, username string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var exists bool
	stmt := "SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)"
	if err := db.QueryRow(ctx, stmt, username).Scan(&exists); err != nil {
		return false, fmt.Errorf("database error checking username: %w", err)
	}
	return exists, nil
}

// DeleteUser removes a user and, through the FK cascade, their citas.
// No route exposes this; test cleanup uses it.
func DeleteUser(db *pgxpool.Pool, id int) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, "DELETE FROM users WHERE id = $1;", id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return tx.Commit(ctx)
}
