// Package repository defines the persistence contracts the services depend
// on. Implementations live under infra/repository; per-entity interfaces
// live in the subpackages.
package repository

import (
	"context"

	chatrepo "github.com/agrosphere/backend/pkg/repository/chat"
	connectionrepo "github.com/agrosphere/backend/pkg/repository/connection"
	ledgerrepo "github.com/agrosphere/backend/pkg/repository/ledger"
	notificationrepo "github.com/agrosphere/backend/pkg/repository/notification"
	userrepo "github.com/agrosphere/backend/pkg/repository/user"
)

// UnitOfWork provides transaction boundaries and repository access bound to
// the same session. Do runs fn inside a transaction: every repository
// obtained from the UnitOfWork passed to fn shares that transaction, and an
// error from fn rolls the whole thing back. Repositories obtained outside Do
// run in auto-commit mode.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error

	UserRepository() (userrepo.Repository, error)
	ConnectionRepository() (connectionrepo.Repository, error)
	ConversationRepository() (chatrepo.Repository, error)
	RecordRepository() (ledgerrepo.Repository, error)
	NotificationRepository() (notificationrepo.Repository, error)
}
