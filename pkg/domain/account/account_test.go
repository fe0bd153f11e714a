package account_test

import (
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/amirasaad/bms/pkg/domain/account"
	"github.com/amirasaad/bms/pkg/domain/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMain runs before any tests and applies globally for all tests in the package.
func TestMain(m *testing.M) {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	os.Exit(m.Run())
}

func mustMoney(t *testing.T, s string) money.Money {
	t.Helper()
	m, err := money.Parse(s)
	require.NoError(t, err)
	return m
}

func TestBuild(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		builder *account.Builder
		wantErr error
	}{
		{"valid", account.New().WithID(1).WithName("Alice").WithPIN("1234"), nil},
		{"zero id", account.New().WithID(0).WithName("Alice").WithPIN("1234"), account.ErrInvalidID},
		{"empty name", account.New().WithID(1).WithPIN("1234"), account.ErrInvalidInput},
		{"empty pin", account.New().WithID(1).WithName("Alice"), account.ErrInvalidInput},
		{"short pin", account.New().WithID(1).WithName("Alice").WithPIN("123"), account.ErrInvalidInput},
		{"negative balance", account.New().WithID(1).WithName("A").WithPIN("1234").
			WithBalance(money.FromCents(-1)), account.ErrNegativeBalance},
		{"hydrated short pin", account.New().WithID(2).WithName("Bob").WithPIN("1").Hydrated(), nil},
		{"hydrated empty name", account.New().WithID(2).WithPIN("1234").Hydrated(), account.ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acc, err := tt.builder.Build()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, acc)
				return
			}
			require.NoError(t, err)
			assert.True(t, acc.Balance.IsZero())
		})
	}
}

func TestCredentials_UnicodePINLength(t *testing.T) {
	t.Parallel()
	assert.NoError(t, account.Credentials{Name: "Zoë", PIN: "ññññ"}.Validate())
	assert.ErrorIs(t, account.Credentials{Name: "Zoë", PIN: "ñññ"}.Validate(), account.ErrInvalidInput)
}

func TestCredentials_RejectLineBreaks(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		cred account.Credentials
	}{
		{"newline in name", account.Credentials{Name: "Al\nice", PIN: "1234"}},
		{"carriage return in name", account.Credentials{Name: "Alice\r", PIN: "1234"}},
		{"newline in pin", account.Credentials{Name: "Alice", PIN: "12\n34"}},
		{"carriage return in pin", account.Credentials{Name: "Alice", PIN: "1234\r"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.ErrorIs(t, tt.cred.Validate(), account.ErrInvalidInput)
		})
	}
	assert.NoError(t, account.Credentials{Name: "Alice Smith", PIN: "12 34"}.Validate())
}

func TestAuthenticate(t *testing.T) {
	t.Parallel()
	acc, err := account.New().WithID(1).WithName("Alice").WithPIN("AbCd").Build()
	require.NoError(t, err)

	assert.True(t, acc.Authenticate("AbCd"))
	assert.False(t, acc.Authenticate("abcd"))
	assert.False(t, acc.Authenticate("AbCd "))
	assert.False(t, acc.Authenticate(""))
}

func TestModify(t *testing.T) {
	t.Parallel()
	acc, err := account.New().WithID(1).WithName("Alice").WithPIN("1234").Build()
	require.NoError(t, err)

	t.Run("rejects short pin and keeps record", func(t *testing.T) {
		err := acc.Modify("Alicia", "12")
		assert.ErrorIs(t, err, account.ErrInvalidInput)
		assert.Equal(t, "Alice", acc.Name)
		assert.Equal(t, "1234", acc.PIN)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		assert.ErrorIs(t, acc.Modify("", "5678"), account.ErrInvalidInput)
	})

	t.Run("overwrites both fields", func(t *testing.T) {
		require.NoError(t, acc.Modify("Alicia", "5678"))
		assert.Equal(t, "Alicia", acc.Name)
		assert.Equal(t, "5678", acc.PIN)
	})
}

func TestDepositWithdraw(t *testing.T) {
	t.Parallel()
	acc, err := account.New().WithID(1).WithName("Alice").WithPIN("1234").
		WithBalance(mustMoney(t, "100.00")).Build()
	require.NoError(t, err)

	t.Run("deposit non positive", func(t *testing.T) {
		assert.ErrorIs(t, acc.Deposit(money.Zero), account.ErrInvalidAmount)
		assert.ErrorIs(t, acc.Deposit(mustMoney(t, "-5")), account.ErrInvalidAmount)
		assert.Equal(t, "100.00", acc.Balance.String())
	})

	t.Run("withdraw more than balance", func(t *testing.T) {
		assert.ErrorIs(t, acc.Withdraw(mustMoney(t, "150")), account.ErrInsufficientFunds)
		assert.Equal(t, "100.00", acc.Balance.String())
	})

	t.Run("withdraw non positive", func(t *testing.T) {
		assert.ErrorIs(t, acc.Withdraw(mustMoney(t, "0")), account.ErrInvalidAmount)
		assert.Equal(t, "100.00", acc.Balance.String())
	})

	t.Run("deposit then withdraw everything", func(t *testing.T) {
		require.NoError(t, acc.Deposit(mustMoney(t, "0.50")))
		assert.Equal(t, "100.50", acc.Balance.String())
		require.NoError(t, acc.Withdraw(mustMoney(t, "100.50")))
		assert.True(t, acc.Balance.IsZero())
	})
}

func TestClone(t *testing.T) {
	t.Parallel()
	acc, err := account.New().WithID(3).WithName("Carol").WithPIN("9999").Build()
	require.NoError(t, err)
	cp := acc.Clone()
	cp.Name = "Mallory"
	assert.Equal(t, "Carol", acc.Name)
}
