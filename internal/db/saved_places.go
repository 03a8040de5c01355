package db

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"nearby/internal/model"
)

// ErrNotFound is returned when no saved place matches.
var ErrNotFound = errors.New("saved place not found")

const savedPlaceColumns = `id, place_id, name, vicinity, category, latitude, longitude, rating, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSavedPlace(row rowScanner) (model.SavedPlace, error) {
	var p model.SavedPlace
	var vicinity, category sql.NullString
	var rating sql.NullFloat64
	var createdAt string

	if err := row.Scan(&p.ID, &p.PlaceID, &p.Name, &vicinity, &category, &p.Latitude, &p.Longitude, &rating, &createdAt); err != nil {
		return model.SavedPlace{}, err
	}

	p.Vicinity = vicinity.String
	p.Category = category.String
	if rating.Valid {
		r := rating.Float64
		p.Rating = &r
	}
	if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
		p.CreatedAt = t
	}
	return p, nil
}

// ListSavedPlaces returns all saved places, newest first.
func ListSavedPlaces(db *sql.DB) ([]model.SavedPlace, error) {
	query := `SELECT ` + savedPlaceColumns + ` FROM saved_places ORDER BY created_at DESC, id DESC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list saved places: %w", err)
	}
	defer rows.Close()

	var results []model.SavedPlace
	for rows.Next() {
		p, err := scanSavedPlace(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan saved place: %w", err)
		}
		results = append(results, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating saved places: %w", err)
	}

	return results, nil
}

// GetSavedPlace retrieves a saved place by row ID.
func GetSavedPlace(db *sql.DB, id int64) (model.SavedPlace, error) {
	query := `SELECT ` + savedPlaceColumns + ` FROM saved_places WHERE id = ?`
	p, err := scanSavedPlace(db.QueryRow(query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.SavedPlace{}, ErrNotFound
	}
	if err != nil {
		return model.SavedPlace{}, fmt.Errorf("failed to get saved place: %w", err)
	}
	return p, nil
}

// GetSavedPlaceByPlaceID retrieves a saved place by its places API id.
func GetSavedPlaceByPlaceID(db *sql.DB, placeID string) (model.SavedPlace, error) {
	query := `SELECT ` + savedPlaceColumns + ` FROM saved_places WHERE place_id = ?`
	p, err := scanSavedPlace(db.QueryRow(query, placeID))
	if errors.Is(err, sql.ErrNoRows) {
		return model.SavedPlace{}, ErrNotFound
	}
	if err != nil {
		return model.SavedPlace{}, fmt.Errorf("failed to get saved place: %w", err)
	}
	return p, nil
}

// InsertSavedPlace bookmarks a place. Saving an already saved place updates
// its name, vicinity and rating and returns the existing ID.
func InsertSavedPlace(db *sql.DB, p model.NewSavedPlace) (int64, error) {
	query := `
		INSERT INTO saved_places (place_id, name, vicinity, category, latitude, longitude, rating)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(place_id) DO UPDATE SET
			name = excluded.name,
			vicinity = excluded.vicinity,
			rating = COALESCE(excluded.rating, saved_places.rating)
	`

	var vicinity, category, rating interface{}
	if p.Vicinity != "" {
		vicinity = p.Vicinity
	}
	if p.Category != "" {
		category = p.Category
	}
	if p.Rating != nil {
		rating = *p.Rating
	}

	if _, err := db.Exec(query, p.PlaceID, p.Name, vicinity, category, p.Latitude, p.Longitude, rating); err != nil {
		return 0, fmt.Errorf("failed to insert saved place: %w", err)
	}

	var id int64
	if err := db.QueryRow(`SELECT id FROM saved_places WHERE place_id = ?`, p.PlaceID).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to read saved place id: %w", err)
	}
	return id, nil
}

// InsertSavedPlaceWithID restores a previously deleted saved place (redo/undo).
func InsertSavedPlaceWithID(db *sql.DB, p model.SavedPlace) error {
	query := `
		INSERT INTO saved_places (id, place_id, name, vicinity, category, latitude, longitude, rating, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	var vicinity, category, rating interface{}
	if p.Vicinity != "" {
		vicinity = p.Vicinity
	}
	if p.Category != "" {
		category = p.Category
	}
	if p.Rating != nil {
		rating = *p.Rating
	}
	createdAt := p.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err := db.Exec(query, p.ID, p.PlaceID, p.Name, vicinity, category, p.Latitude, p.Longitude, rating,
		createdAt.UTC().Format("2006-01-02T15:04:05.000Z"))
	if err != nil {
		return fmt.Errorf("failed to restore saved place: %w", err)
	}
	return nil
}

// DeleteSavedPlace removes a saved place by row ID.
func DeleteSavedPlace(db *sql.DB, id int64) error {
	res, err := db.Exec(`DELETE FROM saved_places WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete saved place: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete saved place: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
