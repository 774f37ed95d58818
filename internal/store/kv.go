package store

import (
	"context"
	"database/sql"
	"errors"

	sq "github.com/Masterminds/squirrel"

	srvErrors "github.com/tupyy/achievement-tracker/pkg/errors"
)

// KV is the persistent key-value capability every other store is built on.
// Get returns a ResourceNotFoundError when the key is absent.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
	Close() error
}

// KVStore is the DuckDB implementation of KV.
type KVStore struct {
	db QueryInterceptor
}

func NewKVStore(db *sql.DB) *KVStore {
	return &KVStore{db: NewQueryInterceptor(db)}
}

func (s *KVStore) Get(ctx context.Context, key string) ([]byte, error) {
	query, args, err := sq.Select("value").From("kv").Where(sq.Eq{"key": key}).ToSql()
	if err != nil {
		return nil, err
	}

	var value []byte
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, srvErrors.NewKeyNotFoundError(key)
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (s *KVStore) Set(ctx context.Context, key string, value []byte) error {
	query, args, err := sq.Insert("kv").
		Columns("key", "value", "updated_at").
		Values(key, value, sq.Expr("now()")).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()").
		ToSql()
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, query, args...)
	return err
}

func (s *KVStore) Remove(ctx context.Context, key string) error {
	query, args, err := sq.Delete("kv").Where(sq.Eq{"key": key}).ToSql()
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, query, args...)
	return err
}

func (s *KVStore) Close() error {
	return s.db.Close()
}
