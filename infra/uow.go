package infra

import (
	"context"

	chatinfra "github.com/agrosphere/backend/infra/repository/chat"
	connectioninfra "github.com/agrosphere/backend/infra/repository/connection"
	ledgerinfra "github.com/agrosphere/backend/infra/repository/ledger"
	notificationinfra "github.com/agrosphere/backend/infra/repository/notification"
	userinfra "github.com/agrosphere/backend/infra/repository/user"
	"github.com/agrosphere/backend/pkg/repository"
	chatrepo "github.com/agrosphere/backend/pkg/repository/chat"
	connectionrepo "github.com/agrosphere/backend/pkg/repository/connection"
	ledgerrepo "github.com/agrosphere/backend/pkg/repository/ledger"
	notificationrepo "github.com/agrosphere/backend/pkg/repository/notification"
	userrepo "github.com/agrosphere/backend/pkg/repository/user"
	"gorm.io/gorm"
)

// UoW provides transaction boundary and repository access in one abstraction.
// Every repository obtained from a UoW inside Do is bound to the same
// transaction, so a failing step rolls back everything the callback did.
type UoW struct {
	db *gorm.DB
	tx *gorm.DB
}

// NewUoW creates a new UoW for the given *gorm.DB.
func NewUoW(db *gorm.DB) *UoW {
	return &UoW{db: db}
}

// Do runs the given function in a transaction boundary, providing a UoW with
// repository access bound to that transaction.
func (u *UoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&UoW{db: u.db, tx: tx})
	})
}

// session returns the transaction when inside Do, the root connection
// otherwise.
func (u *UoW) session() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UoW) UserRepository() (userrepo.Repository, error) {
	return userinfra.New(u.session()), nil
}

func (u *UoW) ConnectionRepository() (connectionrepo.Repository, error) {
	return connectioninfra.New(u.session()), nil
}

func (u *UoW) ConversationRepository() (chatrepo.Repository, error) {
	return chatinfra.New(u.session()), nil
}

func (u *UoW) RecordRepository() (ledgerrepo.Repository, error) {
	return ledgerinfra.New(u.session()), nil
}

func (u *UoW) NotificationRepository() (notificationrepo.Repository, error) {
	return notificationinfra.New(u.session()), nil
}

var _ repository.UnitOfWork = (*UoW)(nil)
