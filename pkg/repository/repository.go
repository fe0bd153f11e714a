// Package repository defines the data access contracts used by the services.
package repository

import (
	"errors"

	"github.com/amirasaad/bms/pkg/domain/account"
)

// ErrStorage is returned when the backing file cannot be read or written.
var ErrStorage = errors.New("storage error")

// ErrAlreadyExists is returned when creating an account whose id is taken.
var ErrAlreadyExists = errors.New("account already exists")

// AccountRepository defines the interface for account data access operations.
// Implementations hand out copies; callers write changes back with Update.
type AccountRepository interface {
	Get(id int) (*account.Account, error)
	Create(account *account.Account) error
	Update(account *account.Account) error
	List() []*account.Account
	NextID() int
}

// FileStore is an AccountRepository that is written back to a file at shutdown.
type FileStore interface {
	AccountRepository
	SaveFile(path string) error
}
