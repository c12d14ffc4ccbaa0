package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/tripx-backend/internal/models"
)

// CreateTrip вставляет новую поездку и возвращает сохранённую запись.
func (s *Storage) CreateTrip(ctx context.Context, trip *models.Trip) (*models.Trip, error) {
	const op = "storage.CreateTrip"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	activities, err := json.Marshal(trip.Activities)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	query := `INSERT INTO trips (user_uid, trip_name, destination, description,
			      start_date, end_date, budget, activities, cover_image)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8::jsonb, $9)
			  RETURNING id, user_uid, trip_name, destination, description, start_date,
			      end_date, budget, activities, cover_image, created_at, updated_at`
	row := s.DB.QueryRowContext(ctx, query,
		trip.UserUID, trip.TripName, trip.Destination, trip.Description,
		trip.StartDate, trip.EndDate, trip.Budget, string(activities), trip.CoverImage)
	return scanTrip(row, op)
}

// ReadTrip возвращает поездку по её ID. Используется охраной владения
// при list/create под-ресурсов.
func (s *Storage) ReadTrip(ctx context.Context, id string) (*models.Trip, error) {
	const op = "storage.ReadTrip"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, user_uid, trip_name, destination, description, start_date,
			      end_date, budget, activities, cover_image, created_at, updated_at
			  FROM trips WHERE id = $1`
	return scanTrip(s.DB.QueryRowContext(ctx, query, id), op)
}

// ListTripsByUser возвращает все поездки пользователя в порядке создания.
func (s *Storage) ListTripsByUser(ctx context.Context, userUID string) ([]*models.Trip, error) {
	const op = "storage.ListTripsByUser"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, user_uid, trip_name, destination, description, start_date,
			      end_date, budget, activities, cover_image, created_at, updated_at
			  FROM trips
			  WHERE user_uid = $1
			  ORDER BY created_at`
	rows, err := s.DB.QueryContext(ctx, query, userUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Trip
	for rows.Next() {
		trip, err := scanTripRow(rows, op)
		if err != nil {
			return nil, err
		}
		result = append(result, trip)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTrip(row *sql.Row, op string) (*models.Trip, error) {
	trip, err := scanTripRow(row, op)
	if err != nil && errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return trip, err
}

func scanTripRow(row rowScanner, op string) (*models.Trip, error) {
	var trip models.Trip
	var description, coverImage sql.NullString
	var budget sql.NullFloat64
	var activities []byte
	if err := row.Scan(&trip.ID, &trip.UserUID, &trip.TripName, &trip.Destination,
		&description, &trip.StartDate, &trip.EndDate, &budget, &activities,
		&coverImage, &trip.CreatedAt, &trip.UpdatedAt); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	trip.Description = description.String
	trip.CoverImage = coverImage.String
	if budget.Valid {
		trip.Budget = &budget.Float64
	}
	if len(activities) > 0 {
		if err := json.Unmarshal(activities, &trip.Activities); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}
	if trip.Activities == nil {
		trip.Activities = []string{}
	}
	return &trip, nil
}
