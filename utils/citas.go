package utils

import (
	"context"
	"errors"
	"fmt"
	"time"

	"venvet/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// InsertCita persists a new cita inside a transaction and returns the
// generated id.
func InsertCita(db *pgxpool.Pool, c *models.Cita) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := db.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	var id int
	stmt := "INSERT INTO citas (name, pet, date, owner_id) VALUES ($1, $2, $3, $4) RETURNING id;"
	if err := tx.QueryRow(ctx, stmt, c.Name, c.Pet, c.Date, c.OwnerID).Scan(&id); err != nil {
		return 0, fmt.Errorf("insert cita: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return id, nil
}

func GetCita(db *pgxpool.Pool, id int) (*models.Cita, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	c := &models.Cita{}
	stmt := "SELECT id, name, pet, date, owner_id FROM citas WHERE id = $1;"
	err := db.QueryRow(ctx, stmt, id).Scan(&c.ID, &c.Name, &c.Pet, &c.Date, &c.OwnerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get cita: %w", err)
	}
	return c, nil
}

func ListCitasByOwner(db *pgxpool.Pool, ownerID int) ([]models.Cita, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	stmt := "SELECT id, name, pet, date, owner_id FROM citas WHERE owner_id = $1 ORDER BY id;"
	rows, err := db.Query(ctx, stmt, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list citas: %w", err)
	}
	defer rows.Close()

	var out []models.Cita
	for rows.Next() {
		var c models.Cita
		if err := rows.Scan(&c.ID, &c.Name, &c.Pet, &c.Date, &c.OwnerID); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// UpdateCita writes the full row. Callers merge the partial request into a
// freshly loaded cita before calling; a vanished row surfaces as ErrNotFound.
func UpdateCita(db *pgxpool.Pool, c *models.Cita) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	stmt := "UPDATE citas SET name = $1, pet = $2, date = $3 WHERE id = $4;"
	tag, err := tx.Exec(ctx, stmt, c.Name, c.Pet, c.Date, c.ID)
	if err != nil {
		return fmt.Errorf("update cita: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return tx.Commit(ctx)
}

func DeleteCita(db *pgxpool.Pool, id int) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, "DELETE FROM citas WHERE id = $1;", id)
	if err != nil {
		return fmt.Errorf("delete cita: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return tx.Commit(ctx)
}
