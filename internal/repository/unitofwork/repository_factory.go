package unitofwork

import "context"

// RepositoryFactory hands out request-scoped units of work over the shared
// store handle. A nil factory in the container means no store is connected.
type RepositoryFactory interface {
	NewUnitOfWork(ctx context.Context) UnitOfWork
}
