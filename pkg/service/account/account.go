// Package account provides the account operations: creating accounts, signing in,
// modifying credentials, depositing, withdrawing and summarizing balances.
//
// The service resolves every session through the repository on each call, so no
// long-lived reference into the store is ever handed out.
package account

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/amirasaad/bms/pkg/domain/account"
	"github.com/amirasaad/bms/pkg/domain/money"
	"github.com/amirasaad/bms/pkg/repository"
)

// Service provides business logic for account operations.
type Service struct {
	repo   repository.AccountRepository
	logger *slog.Logger
}

// New creates a new Service.
func New(repo repository.AccountRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger}
}

// Summary is a read-only view of an account.
type Summary struct {
	ID      int
	Name    string
	Balance string
}

// CreateAccount validates the credentials and stores a new zero-balance account under
// the next free id.
func (s *Service) CreateAccount(name, pin string) (*account.Account, error) {
	logger := s.logger.With("name", name)
	if err := (account.Credentials{Name: name, PIN: pin}).Validate(); err != nil {
		logger.Debug("CreateAccount rejected", "error", err)
		return nil, account.ErrInvalidInput
	}
	acc, err := account.New().
		WithID(s.repo.NextID()).
		WithName(name).
		WithPIN(pin).
		Build()
	if err != nil {
		logger.Error("CreateAccount failed: domain error", "error", err)
		return nil, err
	}
	if err := s.repo.Create(acc); err != nil {
		logger.Error("CreateAccount failed: repo create error", "error", err)
		return nil, fmt.Errorf("create account: %w", err)
	}
	logger.Info("Account created", "account_id", acc.ID)
	return acc, nil
}

// Authenticate opens a session when id exists and pin matches exactly. Unknown ids and
// wrong PINs both return account.ErrAuthFailed.
func (s *Service) Authenticate(id int, pin string) (*Session, error) {
	acc, err := s.repo.Get(id)
	if err != nil || !acc.Authenticate(pin) {
		s.logger.Debug("Authentication failed", "account_id", id)
		return nil, account.ErrAuthFailed
	}
	sess := newSession(acc.ID)
	s.logger.Info("Signed in", "account_id", acc.ID, "session_id", sess.ID)
	return sess, nil
}

// Modify overwrites name and PIN of the session's account.
func (s *Service) Modify(sess *Session, name, pin string) (*account.Account, error) {
	return s.mutate(sess, "Modify", func(acc *account.Account) error {
		if err := acc.Modify(name, pin); err != nil {
			return account.ErrInvalidInput
		}
		return nil
	})
}

// Deposit adds amount to the session's account.
func (s *Service) Deposit(sess *Session, amount money.Money) (*account.Account, error) {
	return s.mutate(sess, "Deposit", func(acc *account.Account) error {
		return acc.Deposit(amount)
	})
}

// Withdraw removes amount from the session's account if the balance covers it.
func (s *Service) Withdraw(sess *Session, amount money.Money) (*account.Account, error) {
	return s.mutate(sess, "Withdraw", func(acc *account.Account) error {
		return acc.Withdraw(amount)
	})
}

// Summarize returns id, name and two-decimal balance of the session's account.
func (s *Service) Summarize(sess *Session) (Summary, error) {
	acc, err := s.resolve(sess)
	if err != nil {
		return Summary{}, err
	}
	return Summary{ID: acc.ID, Name: acc.Name, Balance: acc.Balance.String()}, nil
}

// Logout closes the session. Logging out twice is a no-op.
func (s *Service) Logout(sess *Session) {
	if sess == nil || sess.closed {
		return
	}
	sess.closed = true
	s.logger.Info("Logged out", "account_id", sess.AccountID, "session_id", sess.ID)
}

func (s *Service) resolve(sess *Session) (*account.Account, error) {
	if sess == nil || sess.closed {
		return nil, ErrSessionClosed
	}
	return s.repo.Get(sess.AccountID)
}

// mutate loads the session's account, applies op and writes the result back.
// On any error the stored record is left unchanged.
func (s *Service) mutate(
	sess *Session,
	name string,
	op func(*account.Account) error,
) (*account.Account, error) {
	acc, err := s.resolve(sess)
	if err != nil {
		return nil, err
	}
	logger := s.logger.With("op", name, "account_id", acc.ID, "session_id", sess.ID)
	if err := op(acc); err != nil {
		if errors.Is(err, account.ErrInsufficientFunds) ||
			errors.Is(err, account.ErrInvalidAmount) ||
			errors.Is(err, account.ErrInvalidInput) ||
			errors.Is(err, money.ErrOverflow) {
			logger.Debug(name+" rejected", "error", err)
		} else {
			logger.Error(name+" failed", "error", err)
		}
		return nil, err
	}
	if err := s.repo.Update(acc); err != nil {
		logger.Error(name+" failed: repo update error", "error", err)
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	logger.Info(name+" succeeded", "balance", acc.Balance.String())
	return acc, nil
}
