package credential

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-LuxoraClient/pkg/psqlbuilder"
)

const storageTable = "client_storage"

const createTableQuery = `CREATE TABLE IF NOT EXISTS client_storage (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// PostgresStore хранилище в таблице client_storage
type PostgresStore struct {
	db DBExecutor
}

// NewPostgresStore создает новый экземпляр хранилища поверх *sql.DB
func NewPostgresStore(db DBExecutor) *PostgresStore {
	return &PostgresStore{db: db}
}

// EnsureSchema создает таблицу, если её нет
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, createTableQuery); err != nil {
		return fmt.Errorf("%w: EnsureSchema: %v", ErrExecQuery, err)
	}
	return nil
}

// Get получает значение по ключу
func (s *PostgresStore) Get(ctx context.Context, key string) (string, bool, error) {
	query, args, err := psqlbuilder.Select("value").
		From(storageTable).
		Where(squirrel.Eq{"key": key}).
		ToSql()
	if err != nil {
		return "", false, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var value string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%w: Get - execute select: %v", ErrExecQuery, err)
	}
	return value, true, nil
}

// Set сохраняет значение (upsert по ключу)
func (s *PostgresStore) Set(ctx context.Context, key, value string) error {
	query, args, err := psqlbuilder.Insert(storageTable).
		Columns("key", "value", "updated_at").
		Values(key, value, squirrel.Expr("NOW()")).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Set - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Set - execute upsert: %v", ErrExecQuery, err)
	}
	return nil
}

// Delete удаляет ключ. Отсутствующий ключ не является ошибкой.
func (s *PostgresStore) Delete(ctx context.Context, key string) error {
	query, args, err := psqlbuilder.Delete(storageTable).
		Where(squirrel.Eq{"key": key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}
	return nil
}
