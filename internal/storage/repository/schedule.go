package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/tripx-backend/internal/models"
)

// ScheduleRepo реализует хранение пунктов расписания. Отдельный тип нужен,
// чтобы один Storage мог предоставить четыре одинаковых по форме репозитория
// под-ресурсов для дженерик-сервиса.
type ScheduleRepo struct {
	db *sql.DB
}

// ScheduleItems возвращает репозиторий пунктов расписания.
func (s *Storage) ScheduleItems() *ScheduleRepo {
	return &ScheduleRepo{db: s.DB}
}

const scheduleColumns = `id, trip_id, user_uid, title, description, location,
	category, priority, start_time, end_time, created_at, updated_at`

// CreateItem вставляет новый пункт расписания и возвращает сохранённую запись.
func (r *ScheduleRepo) CreateItem(ctx context.Context, item *models.ScheduleItem) (*models.ScheduleItem, error) {
	const op = "storage.ScheduleRepo.CreateItem"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO schedule_items (trip_id, user_uid, title, description,
			      location, category, priority, start_time, end_time)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			  RETURNING ` + scheduleColumns
	row := r.db.QueryRowContext(ctx, query,
		item.TripID, item.UserUID, item.Title, item.Description, item.Location,
		item.Category, item.Priority, item.StartTime, item.EndTime)
	return scanScheduleItem(row, op)
}

// ReadItem возвращает пункт расписания по его ID.
func (r *ScheduleRepo) ReadItem(ctx context.Context, id string) (*models.ScheduleItem, error) {
	const op = "storage.ScheduleRepo.ReadItem"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + scheduleColumns + ` FROM schedule_items WHERE id = $1`
	return scanScheduleItem(r.db.QueryRowContext(ctx, query, id), op)
}

// UpdateItem сохраняет изменённые поля пункта расписания.
// Колонки trip_id и user_uid не обновляются никогда.
func (r *ScheduleRepo) UpdateItem(ctx context.Context, item *models.ScheduleItem) (*models.ScheduleItem, error) {
	const op = "storage.ScheduleRepo.UpdateItem"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE schedule_items
			  SET title = $1, description = $2, location = $3, category = $4,
			      priority = $5, start_time = $6, end_time = $7, updated_at = now()
			  WHERE id = $8
			  RETURNING ` + scheduleColumns
	row := r.db.QueryRowContext(ctx, query,
		item.Title, item.Description, item.Location, item.Category,
		item.Priority, item.StartTime, item.EndTime, item.ID)
	return scanScheduleItem(row, op)
}

// DeleteItem удаляет пункт расписания и возвращает количество удалённых строк.
func (r *ScheduleRepo) DeleteItem(ctx context.Context, id string) (int, error) {
	const op = "storage.ScheduleRepo.DeleteItem"
	return deleteByID(ctx, r.db, "schedule_items", id, op)
}

// ListItemsByTrip возвращает все пункты расписания поездки в порядке начала.
func (r *ScheduleRepo) ListItemsByTrip(ctx context.Context, tripID string) ([]*models.ScheduleItem, error) {
	const op = "storage.ScheduleRepo.ListItemsByTrip"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + scheduleColumns + `
			  FROM schedule_items
			  WHERE trip_id = $1
			  ORDER BY start_time`
	rows, err := r.db.QueryContext(ctx, query, tripID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.ScheduleItem
	for rows.Next() {
		item, err := scanScheduleRow(rows, op)
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

func scanScheduleItem(row *sql.Row, op string) (*models.ScheduleItem, error) {
	item, err := scanScheduleRow(row, op)
	if err != nil && errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return item, err
}

func scanScheduleRow(row rowScanner, op string) (*models.ScheduleItem, error) {
	var item models.ScheduleItem
	var description, location sql.NullString
	var endTime sql.NullTime
	if err := row.Scan(&item.ID, &item.TripID, &item.UserUID, &item.Title,
		&description, &location, &item.Category, &item.Priority, &item.StartTime,
		&endTime, &item.CreatedAt, &item.UpdatedAt); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	item.Description = description.String
	item.Location = location.String
	if endTime.Valid {
		item.EndTime = &endTime.Time
	}
	return &item, nil
}

// deleteByID удаляет строку таблицы по ID и сообщает количество удалённых строк.
func deleteByID(ctx context.Context, db *sql.DB, table, id, op string) (int, error) {
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	result, err := db.ExecContext(ctx, `DELETE FROM `+table+` WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}
