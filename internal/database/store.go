package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store is the persistence surface handlers depend on: every generated
// query plus a way to run several of them in one transaction.
type Store interface {
	Querier
	ExecTx(ctx context.Context, fn func(Querier) error) error
}

type sqlStore struct {
	*Queries
	pool *pgxpool.Pool
}

// NewStore wraps a pool with transaction support.
func NewStore(pool *pgxpool.Pool) Store {
	return &sqlStore{Queries: New(pool), pool: pool}
}

// ExecTx runs fn inside a transaction, rolling back when fn fails.
func (s *sqlStore) ExecTx(ctx context.Context, fn func(Querier) error) error {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(s.Queries.WithTx(tx)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("tx err: %v, rollback err: %w", err, rbErr)
		}
		return err
	}
	return tx.Commit(ctx)
}
