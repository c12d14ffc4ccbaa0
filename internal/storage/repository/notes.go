package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/tripx-backend/internal/models"
)

// NoteRepo реализует хранение заметок поездки.
type NoteRepo struct {
	db *sql.DB
}

// Notes возвращает репозиторий заметок.
func (s *Storage) Notes() *NoteRepo {
	return &NoteRepo{db: s.DB}
}

const noteColumns = `id, trip_id, user_uid, title, content, color, created_at, updated_at`

// CreateItem вставляет новую заметку и возвращает сохранённую запись.
func (r *NoteRepo) CreateItem(ctx context.Context, item *models.Note) (*models.Note, error) {
	const op = "storage.NoteRepo.CreateItem"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO notes (trip_id, user_uid, title, content, color)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING ` + noteColumns
	row := r.db.QueryRowContext(ctx, query,
		item.TripID, item.UserUID, item.Title, item.Content, item.Color)
	return scanNote(row, op)
}

// ReadItem возвращает заметку по её ID.
func (r *NoteRepo) ReadItem(ctx context.Context, id string) (*models.Note, error) {
	const op = "storage.NoteRepo.ReadItem"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + noteColumns + ` FROM notes WHERE id = $1`
	return scanNote(r.db.QueryRowContext(ctx, query, id), op)
}

// UpdateItem сохраняет изменённые поля заметки.
// Колонки trip_id и user_uid не обновляются никогда.
func (r *NoteRepo) UpdateItem(ctx context.Context, item *models.Note) (*models.Note, error) {
	const op = "storage.NoteRepo.UpdateItem"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE notes
			  SET title = $1, content = $2, color = $3, updated_at = now()
			  WHERE id = $4
			  RETURNING ` + noteColumns
	row := r.db.QueryRowContext(ctx, query, item.Title, item.Content, item.Color, item.ID)
	return scanNote(row, op)
}

// DeleteItem удаляет заметку и возвращает количество удалённых строк.
func (r *NoteRepo) DeleteItem(ctx context.Context, id string) (int, error) {
	const op = "storage.NoteRepo.DeleteItem"
	return deleteByID(ctx, r.db, "notes", id, op)
}

// ListItemsByTrip возвращает все заметки поездки в порядке создания.
func (r *NoteRepo) ListItemsByTrip(ctx context.Context, tripID string) ([]*models.Note, error) {
	const op = "storage.NoteRepo.ListItemsByTrip"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + noteColumns + `
			  FROM notes
			  WHERE trip_id = $1
			  ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query, tripID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Note
	for rows.Next() {
		item, err := scanNoteRow(rows, op)
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

func scanNote(row *sql.Row, op string) (*models.Note, error) {
	item, err := scanNoteRow(row, op)
	if err != nil && errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return item, err
}

func scanNoteRow(row rowScanner, op string) (*models.Note, error) {
	var item models.Note
	var content sql.NullString
	if err := row.Scan(&item.ID, &item.TripID, &item.UserUID, &item.Title,
		&content, &item.Color, &item.CreatedAt, &item.UpdatedAt); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	item.Content = content.String
	return &item, nil
}
