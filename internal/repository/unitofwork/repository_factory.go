// Package unitofwork scopes the merchant, consumer and return repositories
// to a shared transaction boundary, so a return and its items commit or
// roll back as one.
package unitofwork

import "context"

// RepositoryFactory hands out request-scoped units of work. Services hold
// the factory, never a unit of work, so no transaction outlives a call.
type RepositoryFactory interface {
	NewUnitOfWork(ctx context.Context) UnitOfWork
}
