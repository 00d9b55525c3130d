// Package db carries the transaction plumbing shared by the repositories.
// A running transaction travels through the context, so a use case can span
// several repository calls over one transaction without the repositories
// knowing about each other.
package db

import (
	"context"

	"gorm.io/gorm"
)

type txKey struct{}

// TransactionManager starts transactions on the shared connection and
// makes them visible to repository calls further down the call chain.
type TransactionManager struct {
	db *gorm.DB
}

func NewTransactionManager(db *gorm.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// RunInTransaction runs fn inside a single transaction. Every repository
// call made with the context handed to fn hits that transaction; an error
// from fn rolls the whole thing back.
func (tm *TransactionManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// GetTxFromContext resolves the handle a repository should use: the open
// transaction when one is in flight, the default connection otherwise.
func GetTxFromContext(ctx context.Context, defaultDB *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return defaultDB.WithContext(ctx)
}
