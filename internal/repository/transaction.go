package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/uptrace/bun"
)

// transactionManager implements TransactionManager
type transactionManager struct {
	db *bun.DB
}

// NewTransactionManager creates a new transaction manager
func NewTransactionManager(db *bun.DB) TransactionManager {
	return &transactionManager{db: db}
}

// WithTransaction executes a function within a database transaction. The
// repositories handed to fn are bound to the transaction; any error from
// fn rolls it back.
func (tm *transactionManager) WithTransaction(ctx context.Context, fn func(repos *Repositories) error) error {
	err := tm.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		repos := &Repositories{
			Score: NewScoreRepository(tx),
			Tx:    tm, // Keep the same transaction manager
		}
		return fn(repos)
	})
	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}
