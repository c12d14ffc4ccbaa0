package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/tripx-backend/internal/lib/season"
	"github.com/magabrotheeeer/tripx-backend/internal/models"
)

func TestStorage_CheckDatabaseReady(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	require.NoError(t, storage.CheckDatabaseReady(context.Background()))
}

func TestStorage_CreateAndReadTrip(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	userUID := factory.CreateUser(t, "testuser", "test@example.com")

	budget := 50000.0
	created, err := storage.CreateTrip(context.Background(), &models.Trip{
		UserUID:     userUID,
		TripName:    "Goa vacation",
		Destination: "Goa",
		Description: "Family trip",
		StartDate:   time.Date(2025, 12, 20, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2025, 12, 27, 0, 0, 0, 0, time.UTC),
		Budget:      &budget,
		Activities:  []string{"surfing", "snorkeling"},
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := storage.ReadTrip(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Goa vacation", got.TripName)
	assert.Equal(t, userUID, got.UserUID)
	assert.Equal(t, []string{"surfing", "snorkeling"}, got.Activities)
	require.NotNil(t, got.Budget)
	assert.Equal(t, 50000.0, *got.Budget)
}

func TestStorage_ReadTrip_NotFound(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	_, err := storage.ReadTrip(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStorage_ListTripsByUser(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	userUID1 := factory.CreateUser(t, "user1", "user1@example.com")
	userUID2 := factory.CreateUser(t, "user2", "user2@example.com")

	factory.CreateTrip(t, userUID1, "Goa")
	factory.CreateTrip(t, userUID1, "Manali")
	factory.CreateTrip(t, userUID2, "Paris")

	got, err := storage.ListTripsByUser(context.Background(), userUID1)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = storage.ListTripsByUser(context.Background(), uuid.New().String())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestExpenseRepo_CRUD(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	userUID := factory.CreateUser(t, "testuser", "test@example.com")
	tripID := factory.CreateTrip(t, userUID, "Goa")

	repo := storage.Expenses()

	created, err := repo.CreateItem(context.Background(), &models.Expense{
		ItemMeta:    models.ItemMeta{TripID: tripID, UserUID: userUID},
		Description: "Lunch",
		Amount:      450,
		Category:    "Food",
		Currency:    "INR",
		SpentAt:     time.Date(2025, 12, 21, 13, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, userUID, created.UserUID)

	created.Amount = 500
	updated, err := repo.UpdateItem(context.Background(), created)
	require.NoError(t, err)
	assert.Equal(t, 500.0, updated.Amount)
	assert.Equal(t, tripID, updated.TripID)

	list, err := repo.ListItemsByTrip(context.Background(), tripID)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	count, err := repo.DeleteItem(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	count, err = repo.DeleteItem(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	_, err = repo.ReadItem(context.Background(), created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStorage_Destinations(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	factory.CreateDestination(t, &models.Destination{
		Name: "Goa", Country: "India", Description: "Beaches", ImageURL: "http://img/goa",
		Categories: []string{"Beach"}, BestSeasons: []string{"Monsoon", "Winter"}, IsDomestic: true,
	})
	factory.CreateDestination(t, &models.Destination{
		Name: "Bali", Country: "Indonesia", Description: "Island", ImageURL: "http://img/bali",
		Categories: []string{"Beach", "Cultural"}, BestSeasons: []string{"Monsoon"}, IsDomestic: false,
	})
	factory.CreateDestination(t, &models.Destination{
		Name: "Manali", Country: "India", Description: "Mountains", ImageURL: "http://img/manali",
		Categories: []string{"Mountains"}, BestSeasons: []string{"Summer"}, IsDomestic: true,
	})

	domestic, err := storage.ListDestinationsBySeason(context.Background(), season.Monsoon, true)
	require.NoError(t, err)
	require.Len(t, domestic, 1)
	assert.Equal(t, "Goa", domestic[0].Name)

	international, err := storage.ListDestinationsBySeason(context.Background(), season.Monsoon, false)
	require.NoError(t, err)
	require.Len(t, international, 1)
	assert.Equal(t, "Bali", international[0].Name)

	byName, err := storage.SearchDestinations(context.Background(), "man")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "Manali", byName[0].Name)

	byCountry, err := storage.SearchDestinations(context.Background(), "india")
	require.NoError(t, err)
	assert.Len(t, byCountry, 2)

	byCategory, err := storage.SearchDestinations(context.Background(), "beach")
	require.NoError(t, err)
	assert.Len(t, byCategory, 2)
}

func TestStorage_Users(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	uid, err := storage.RegisterUser(context.Background(), models.User{
		Email:        "test@example.com",
		Username:     "testuser",
		PasswordHash: "hashedpassword",
		Role:         "user",
		Name:         "Test User",
	})
	require.NoError(t, err)
	require.NotEmpty(t, uid)

	got, err := storage.GetUserByUsername(context.Background(), "testuser")
	require.NoError(t, err)
	assert.Equal(t, uid, got.UID)
	assert.Equal(t, "Test User", got.Name)

	name := "Updated Name"
	got.Name = name
	got.Bio = "traveller"
	updated, err := storage.UpdateUser(context.Background(), *got)
	require.NoError(t, err)
	assert.Equal(t, "Updated Name", updated.Name)
	assert.Equal(t, "traveller", updated.Bio)

	require.NoError(t, storage.DeactivateUser(context.Background(), uid))

	// После деактивации пользователь невидим для логина, но строка остаётся.
	_, err = storage.GetUserByUsername(context.Background(), "testuser")
	assert.ErrorIs(t, err, ErrNotFound)

	still, err := storage.GetUser(context.Background(), uid)
	require.NoError(t, err)
	assert.False(t, still.IsActive)

	assert.ErrorIs(t, storage.DeactivateUser(context.Background(), uuid.New().String()), ErrNotFound)
}
