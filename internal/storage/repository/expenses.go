package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/tripx-backend/internal/models"
)

// ExpenseRepo реализует хранение расходов поездки.
type ExpenseRepo struct {
	db *sql.DB
}

// Expenses возвращает репозиторий расходов.
func (s *Storage) Expenses() *ExpenseRepo {
	return &ExpenseRepo{db: s.DB}
}

const expenseColumns = `id, trip_id, user_uid, description, amount, category,
	currency, spent_at, created_at, updated_at`

// CreateItem вставляет новый расход и возвращает сохранённую запись.
func (r *ExpenseRepo) CreateItem(ctx context.Context, item *models.Expense) (*models.Expense, error) {
	const op = "storage.ExpenseRepo.CreateItem"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO expenses (trip_id, user_uid, description, amount, category,
			      currency, spent_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING ` + expenseColumns
	row := r.db.QueryRowContext(ctx, query,
		item.TripID, item.UserUID, item.Description, item.Amount, item.Category,
		item.Currency, item.SpentAt)
	return scanExpense(row, op)
}

// ReadItem возвращает расход по его ID.
func (r *ExpenseRepo) ReadItem(ctx context.Context, id string) (*models.Expense, error) {
	const op = "storage.ExpenseRepo.ReadItem"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE id = $1`
	return scanExpense(r.db.QueryRowContext(ctx, query, id), op)
}

// UpdateItem сохраняет изменённые поля расхода.
// Колонки trip_id и user_uid не обновляются никогда.
func (r *ExpenseRepo) UpdateItem(ctx context.Context, item *models.Expense) (*models.Expense, error) {
	const op = "storage.ExpenseRepo.UpdateItem"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE expenses
			  SET description = $1, amount = $2, category = $3, currency = $4,
			      spent_at = $5, updated_at = now()
			  WHERE id = $6
			  RETURNING ` + expenseColumns
	row := r.db.QueryRowContext(ctx, query,
		item.Description, item.Amount, item.Category, item.Currency,
		item.SpentAt, item.ID)
	return scanExpense(row, op)
}

// DeleteItem удаляет расход и возвращает количество удалённых строк.
func (r *ExpenseRepo) DeleteItem(ctx context.Context, id string) (int, error) {
	const op = "storage.ExpenseRepo.DeleteItem"
	return deleteByID(ctx, r.db, "expenses", id, op)
}

// ListItemsByTrip возвращает все расходы поездки в порядке трат.
func (r *ExpenseRepo) ListItemsByTrip(ctx context.Context, tripID string) ([]*models.Expense, error) {
	const op = "storage.ExpenseRepo.ListItemsByTrip"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + expenseColumns + `
			  FROM expenses
			  WHERE trip_id = $1
			  ORDER BY spent_at`
	rows, err := r.db.QueryContext(ctx, query, tripID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Expense
	for rows.Next() {
		item, err := scanExpenseRow(rows, op)
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

func scanExpense(row *sql.Row, op string) (*models.Expense, error) {
	item, err := scanExpenseRow(row, op)
	if err != nil && errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return item, err
}

func scanExpenseRow(row rowScanner, op string) (*models.Expense, error) {
	var item models.Expense
	if err := row.Scan(&item.ID, &item.TripID, &item.UserUID, &item.Description,
		&item.Amount, &item.Category, &item.Currency, &item.SpentAt,
		&item.CreatedAt, &item.UpdatedAt); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &item, nil
}
