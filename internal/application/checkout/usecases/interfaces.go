// Package usecases implements the checkout application operations.
package usecases

import "context"

// TransactionManager runs a function inside one atomic unit: every store
// write made through the supplied context commits or rolls back together.
// Satisfied by db.TransactionManager.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
