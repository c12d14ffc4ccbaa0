package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/magabrotheeeer/tripx-backend/internal/lib/season"
	"github.com/magabrotheeeer/tripx-backend/internal/models"
)

const destinationColumns = `id, name, country, description, image_url, categories,
	best_seasons, is_domestic`

// CreateDestination вставляет новое направление каталога и возвращает сохранённую запись.
func (s *Storage) CreateDestination(ctx context.Context, d *models.Destination) (*models.Destination, error) {
	const op = "storage.CreateDestination"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	categories, err := json.Marshal(d.Categories)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	seasons, err := json.Marshal(d.BestSeasons)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	query := `INSERT INTO destinations (name, country, description, image_url,
			      categories, best_seasons, is_domestic)
			  VALUES ($1, $2, $3, $4, $5::jsonb, $6::jsonb, $7)
			  RETURNING ` + destinationColumns
	row := s.DB.QueryRowContext(ctx, query,
		d.Name, d.Country, d.Description, d.ImageURL,
		string(categories), string(seasons), d.IsDomestic)
	dest, err := scanDestinationRow(row, op)
	if err != nil {
		return nil, err
	}
	return dest, nil
}

// SearchDestinations ищет направления по подстроке без учёта регистра
// в имени, стране или категориях. Порядок выдачи — порядок хранилища.
func (s *Storage) SearchDestinations(ctx context.Context, query string) ([]*models.Destination, error) {
	const op = "storage.SearchDestinations"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	q := `SELECT ` + destinationColumns + `
		  FROM destinations
		  WHERE name ILIKE $1 OR country ILIKE $1 OR categories::text ILIKE $1`
	rows, err := s.DB.QueryContext(ctx, q, "%"+query+"%")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return collectDestinations(rows, op)
}

// ListDestinationsBySeason возвращает направления, в чей набор сезонов входит
// переданный сезон, отдельно для внутренних и международных.
func (s *Storage) ListDestinationsBySeason(ctx context.Context, current season.Season, domestic bool) ([]*models.Destination, error) {
	const op = "storage.ListDestinationsBySeason"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	match, err := json.Marshal([]string{string(current)})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	q := `SELECT ` + destinationColumns + `
		  FROM destinations
		  WHERE best_seasons @> $1::jsonb AND is_domestic = $2`
	rows, err := s.DB.QueryContext(ctx, q, string(match), domestic)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return collectDestinations(rows, op)
}

func collectDestinations(rows *sql.Rows, op string) ([]*models.Destination, error) {
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Destination
	for rows.Next() {
		d, err := scanDestinationRow(rows, op)
		if err != nil {
			return nil, err
		}
		result = append(result, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

func scanDestinationRow(row rowScanner, op string) (*models.Destination, error) {
	var d models.Destination
	var categories, seasons []byte
	if err := row.Scan(&d.ID, &d.Name, &d.Country, &d.Description, &d.ImageURL,
		&categories, &seasons, &d.IsDomestic); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := json.Unmarshal(categories, &d.Categories); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := json.Unmarshal(seasons, &d.BestSeasons); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &d, nil
}
