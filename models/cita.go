package models

import "time"

// Cita is a single appointment. Every cita belongs to exactly one user.
type Cita struct {
	ID      int       `db:"id"`
	Name    string    `db:"name"`
	Pet     string    `db:"pet"`
	Date    time.Time `db:"date"`
	OwnerID int       `db:"owner_id"`
}

func (c *Cita) Format() map[string]any {
	return map[string]any{
		"id":       c.ID,
		"name":     c.Name,
		"pet":      c.Pet,
		"date":     c.Date.Format(time.RFC3339),
		"owner_id": c.OwnerID,
	}
}
