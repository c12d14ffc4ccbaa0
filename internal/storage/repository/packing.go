package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/tripx-backend/internal/models"
)

// PackingRepo реализует хранение вещей из списка вещей поездки.
type PackingRepo struct {
	db *sql.DB
}

// PackingItems возвращает репозиторий списка вещей.
func (s *Storage) PackingItems() *PackingRepo {
	return &PackingRepo{db: s.DB}
}

const packingColumns = `id, trip_id, user_uid, item_name, category, is_packed,
	created_at, updated_at`

// CreateItem вставляет новую вещь и возвращает сохранённую запись.
func (r *PackingRepo) CreateItem(ctx context.Context, item *models.PackingItem) (*models.PackingItem, error) {
	const op = "storage.PackingRepo.CreateItem"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO packing_items (trip_id, user_uid, item_name, category, is_packed)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING ` + packingColumns
	row := r.db.QueryRowContext(ctx, query,
		item.TripID, item.UserUID, item.ItemName, item.Category, item.IsPacked)
	return scanPackingItem(row, op)
}

// ReadItem возвращает вещь по её ID.
func (r *PackingRepo) ReadItem(ctx context.Context, id string) (*models.PackingItem, error) {
	const op = "storage.PackingRepo.ReadItem"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + packingColumns + ` FROM packing_items WHERE id = $1`
	return scanPackingItem(r.db.QueryRowContext(ctx, query, id), op)
}

// UpdateItem сохраняет изменённые поля вещи.
// Колонки trip_id и user_uid не обновляются никогда.
func (r *PackingRepo) UpdateItem(ctx context.Context, item *models.PackingItem) (*models.PackingItem, error) {
	const op = "storage.PackingRepo.UpdateItem"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE packing_items
			  SET item_name = $1, category = $2, is_packed = $3, updated_at = now()
			  WHERE id = $4
			  RETURNING ` + packingColumns
	row := r.db.QueryRowContext(ctx, query,
		item.ItemName, item.Category, item.IsPacked, item.ID)
	return scanPackingItem(row, op)
}

// DeleteItem удаляет вещь и возвращает количество удалённых строк.
func (r *PackingRepo) DeleteItem(ctx context.Context, id string) (int, error) {
	const op = "storage.PackingRepo.DeleteItem"
	return deleteByID(ctx, r.db, "packing_items", id, op)
}

// ListItemsByTrip возвращает список вещей поездки в порядке создания.
func (r *PackingRepo) ListItemsByTrip(ctx context.Context, tripID string) ([]*models.PackingItem, error) {
	const op = "storage.PackingRepo.ListItemsByTrip"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + packingColumns + `
			  FROM packing_items
			  WHERE trip_id = $1
			  ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query, tripID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.PackingItem
	for rows.Next() {
		item, err := scanPackingRow(rows, op)
		if err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

func scanPackingItem(row *sql.Row, op string) (*models.PackingItem, error) {
	item, err := scanPackingRow(row, op)
	if err != nil && errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return item, err
}

func scanPackingRow(row rowScanner, op string) (*models.PackingItem, error) {
	var item models.PackingItem
	if err := row.Scan(&item.ID, &item.TripID, &item.UserUID, &item.ItemName,
		&item.Category, &item.IsPacked, &item.CreatedAt, &item.UpdatedAt); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &item, nil
}
