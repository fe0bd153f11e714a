// Package mocks holds testify mocks for the repository contracts.
package mocks

import (
	"testing"

	"github.com/amirasaad/bms/pkg/domain/account"
	"github.com/amirasaad/bms/pkg/repository"
	"github.com/stretchr/testify/mock"
)

// AccountRepository is a mock of repository.AccountRepository.
type AccountRepository struct {
	mock.Mock
}

var _ repository.AccountRepository = (*AccountRepository)(nil)

// NewAccountRepository creates a mock and registers expectation checks on cleanup.
func NewAccountRepository(t *testing.T) *AccountRepository {
	m := &AccountRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *AccountRepository) Get(id int) (*account.Account, error) {
	ret := m.Called(id)
	acc, _ := ret.Get(0).(*account.Account)
	return acc, ret.Error(1)
}

func (m *AccountRepository) Create(a *account.Account) error {
	return m.Called(a).Error(0)
}

func (m *AccountRepository) Update(a *account.Account) error {
	return m.Called(a).Error(0)
}

func (m *AccountRepository) List() []*account.Account {
	ret := m.Called()
	accs, _ := ret.Get(0).([]*account.Account)
	return accs
}

func (m *AccountRepository) NextID() int {
	return m.Called().Int(0)
}
