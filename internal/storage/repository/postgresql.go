// Package repository реализует хранилище данных на основе PostgreSQL
// для поездок, их под-ресурсов, каталога направлений и пользователей.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	// Регистрация драйвера pgx для использования с database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"
)

// ErrNotFound возвращается, когда запрошенная запись отсутствует в базе.
var ErrNotFound = errors.New("entry not found")

// Storage инкапсулирует соединение с базой данных PostgreSQL.
// Хэндл открывается при старте процесса и закрывается при остановке;
// глобальных переменных с соединением нет, зависимость передаётся явно.
type Storage struct {
	DB *sql.DB
}

// New создаёт подключение к PostgreSQL и проверяет его доступность.
func New(storageConnectionString string) (*Storage, error) {
	const op = "storage.New"

	db, err := sql.Open("pgx", storageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{
		DB: db,
	}, nil
}

// Close закрывает соединение с базой данных.
func (s *Storage) Close() error {
	return s.DB.Close()
}

// CheckDatabaseReady проверяет готовность базы данных: соединение живо
// и базовая схема применена. Используется обработчиком /health.
func (s *Storage) CheckDatabaseReady(ctx context.Context) error {
	var exists bool
	err := s.DB.QueryRowContext(ctx, `SELECT EXISTS (
        SELECT FROM information_schema.tables
        WHERE table_name = 'trips'
    )`).Scan(&exists)
	if err != nil || !exists {
		return fmt.Errorf("required table trips missing or query error: %w", err)
	}
	return nil
}
