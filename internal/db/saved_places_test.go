package db

import (
	"database/sql"
	"path/filepath"
	"testing"

	"nearby/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := Open(filepath.Join(t.TempDir(), "nearby.db"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database
}

func ptr(v float64) *float64 { return &v }

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nearby.db")
	first, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, second.Close())
}

func TestInsertAndGetSavedPlace(t *testing.T) {
	database := openTestDB(t)

	id, err := InsertSavedPlace(database, model.NewSavedPlace{
		PlaceID:   "p1",
		Name:      "Blue Bottle",
		Vicinity:  "66 Mint St",
		Category:  "cafe",
		Latitude:  37.7825,
		Longitude: -122.4075,
		Rating:    ptr(4.4),
	})
	require.NoError(t, err)
	assert.NotZero(t, id)

	got, err := GetSavedPlace(database, id)
	require.NoError(t, err)
	assert.Equal(t, "p1", got.PlaceID)
	assert.Equal(t, "Blue Bottle", got.Name)
	assert.Equal(t, "66 Mint St", got.Vicinity)
	assert.Equal(t, "cafe", got.Category)
	assert.Equal(t, 37.7825, got.Latitude)
	require.NotNil(t, got.Rating)
	assert.Equal(t, 4.4, *got.Rating)
	assert.False(t, got.CreatedAt.IsZero())

	byPlace, err := GetSavedPlaceByPlaceID(database, "p1")
	require.NoError(t, err)
	assert.Equal(t, id, byPlace.ID)
}

func TestInsertSavedPlaceOptionalFields(t *testing.T) {
	database := openTestDB(t)

	id, err := InsertSavedPlace(database, model.NewSavedPlace{PlaceID: "atm", Name: "ATM"})
	require.NoError(t, err)

	got, err := GetSavedPlace(database, id)
	require.NoError(t, err)
	assert.Empty(t, got.Vicinity)
	assert.Empty(t, got.Category)
	assert.Nil(t, got.Rating)
}

func TestInsertSavedPlaceTwiceUpdates(t *testing.T) {
	database := openTestDB(t)

	id1, err := InsertSavedPlace(database, model.NewSavedPlace{PlaceID: "p1", Name: "Old", Rating: ptr(3.0)})
	require.NoError(t, err)
	id2, err := InsertSavedPlace(database, model.NewSavedPlace{PlaceID: "p1", Name: "New"})
	require.NoError(t, err)
	assert.Equal(t, id1, id2)

	got, err := GetSavedPlace(database, id1)
	require.NoError(t, err)
	assert.Equal(t, "New", got.Name)
	require.NotNil(t, got.Rating, "rating kept when the update has none")
	assert.Equal(t, 3.0, *got.Rating)

	all, err := ListSavedPlaces(database)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestListSavedPlacesNewestFirst(t *testing.T) {
	database := openTestDB(t)

	for _, id := range []string{"a", "b", "c"} {
		_, err := InsertSavedPlace(database, model.NewSavedPlace{PlaceID: id, Name: id})
		require.NoError(t, err)
	}

	all, err := ListSavedPlaces(database)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "c", all[0].PlaceID)
	assert.Equal(t, "a", all[2].PlaceID)
}

func TestDeleteAndRestoreSavedPlace(t *testing.T) {
	database := openTestDB(t)

	id, err := InsertSavedPlace(database, model.NewSavedPlace{PlaceID: "p1", Name: "Tartine", Rating: ptr(4.5)})
	require.NoError(t, err)
	before, err := GetSavedPlace(database, id)
	require.NoError(t, err)

	require.NoError(t, DeleteSavedPlace(database, id))
	_, err = GetSavedPlace(database, id)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, DeleteSavedPlace(database, id), ErrNotFound)

	require.NoError(t, InsertSavedPlaceWithID(database, before))
	after, err := GetSavedPlace(database, id)
	require.NoError(t, err)
	assert.Equal(t, before.PlaceID, after.PlaceID)
	assert.Equal(t, before.Name, after.Name)
	assert.Equal(t, *before.Rating, *after.Rating)
}

func TestGetSavedPlaceByPlaceIDMissing(t *testing.T) {
	database := openTestDB(t)
	_, err := GetSavedPlaceByPlaceID(database, "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}
