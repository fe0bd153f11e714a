package account

import (
	"errors"
	"fmt"
	"strings"

	"github.com/amirasaad/bms/pkg/domain/money"
	"github.com/go-playground/validator/v10"
)

// MinPINLength is the shortest PIN accepted on create or modify.
const MinPINLength = 4

var (
	// ErrInvalidInput is returned when a name or PIN fails validation.
	ErrInvalidInput = errors.New("invalid name or PIN")

	// ErrInvalidAmount is returned when a deposit or withdrawal amount is not positive.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInsufficientFunds is returned when a withdrawal exceeds the balance.
	ErrInsufficientFunds = errors.New("insufficient balance")

	// ErrAccountNotFound is returned when an account cannot be found.
	ErrAccountNotFound = errors.New("account not found")

	// ErrAuthFailed is returned when the id is unknown or the PIN does not match.
	// The two cases are deliberately indistinguishable to callers.
	ErrAuthFailed = errors.New("invalid bank number or PIN")

	// ErrInvalidID is returned when an account id is not positive.
	ErrInvalidID = errors.New("account id must be positive")

	// ErrNegativeBalance is returned when an account would be built with a negative balance.
	ErrNegativeBalance = errors.New("balance cannot be negative")
)

var validate = newValidator()

// newValidator registers "singleline", which rejects CR and LF. Each account is
// persisted as exactly one line.
func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("singleline", func(fl validator.FieldLevel) bool {
		return !strings.ContainsAny(fl.Field().String(), "\r\n")
	}); err != nil {
		panic(err)
	}
	return v
}

// Credentials are the user-chosen fields of an account.
type Credentials struct {
	Name string `validate:"required,singleline"`
	PIN  string `validate:"required,min=4,singleline"`
}

// Validate checks the name and PIN rules shared by create and modify.
func (c Credentials) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}
	return nil
}

// Account is a customer's bank account.
//
// Invariants:
//   - ID is positive and never changes after creation.
//   - The balance never goes negative through Withdraw.
//   - The PIN is at least MinPINLength characters after create or modify.
type Account struct {
	ID      int
	Name    string
	PIN     string
	Balance money.Money
}

// Builder provides a fluent API for constructing Account instances.
type Builder struct {
	id      int
	name    string
	pin     string
	balance money.Money
	loaded  bool
}

// New creates a new Builder for an account with a zero balance.
func New() *Builder {
	return &Builder{}
}

// WithID sets the account id.
func (b *Builder) WithID(id int) *Builder {
	b.id = id
	return b
}

// WithName sets the display name.
func (b *Builder) WithName(name string) *Builder {
	b.name = name
	return b
}

// WithPIN sets the PIN.
func (b *Builder) WithPIN(pin string) *Builder {
	b.pin = pin
	return b
}

// WithBalance sets the balance. Only used when hydrating a persisted record or in tests.
func (b *Builder) WithBalance(balance money.Money) *Builder {
	b.balance = balance
	return b
}

// Hydrated marks the account as read back from storage. Persisted records are trusted
// for PIN length, so only the structural rules (id, name, balance) are checked.
func (b *Builder) Hydrated() *Builder {
	b.loaded = true
	return b
}

// Build validates the invariants and returns the Account.
func (b *Builder) Build() (*Account, error) {
	if b.id <= 0 {
		return nil, ErrInvalidID
	}
	if b.balance.IsNegative() {
		return nil, ErrNegativeBalance
	}
	if b.loaded {
		if b.name == "" {
			return nil, ErrInvalidInput
		}
	} else if err := (Credentials{Name: b.name, PIN: b.pin}).Validate(); err != nil {
		return nil, err
	}
	return &Account{
		ID:      b.id,
		Name:    b.name,
		PIN:     b.pin,
		Balance: b.balance,
	}, nil
}

// Authenticate reports whether pin matches the stored PIN exactly.
func (a *Account) Authenticate(pin string) bool {
	return a.PIN == pin
}

// Modify replaces name and PIN after validating them. The account is left untouched on error.
func (a *Account) Modify(name, pin string) error {
	if err := (Credentials{Name: name, PIN: pin}).Validate(); err != nil {
		return err
	}
	a.Name = name
	a.PIN = pin
	return nil
}

// ValidateDeposit checks the business rules for a deposit.
func (a *Account) ValidateDeposit(amount money.Money) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	return nil
}

// ValidateWithdraw checks the business rules for a withdrawal.
// Invariants enforced:
//   - Withdrawal amount must be positive.
//   - Cannot withdraw more than the current balance.
func (a *Account) ValidateWithdraw(amount money.Money) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	if amount.GreaterThan(a.Balance) {
		return ErrInsufficientFunds
	}
	return nil
}

// Deposit adds amount to the balance.
func (a *Account) Deposit(amount money.Money) error {
	if err := a.ValidateDeposit(amount); err != nil {
		return err
	}
	bal, err := a.Balance.Add(amount)
	if err != nil {
		return err
	}
	a.Balance = bal
	return nil
}

// Withdraw subtracts amount from the balance.
func (a *Account) Withdraw(amount money.Money) error {
	if err := a.ValidateWithdraw(amount); err != nil {
		return err
	}
	bal, err := a.Balance.Subtract(amount)
	if err != nil {
		return err
	}
	a.Balance = bal
	return nil
}

// Clone returns a copy that can be handed out without exposing the stored record.
func (a *Account) Clone() *Account {
	cp := *a
	return &cp
}
