// Package console is the interactive text front end: a top-level menu to sign in or
// create an account, and an account menu for the signed-in session.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/amirasaad/bms/pkg/domain/account"
	"github.com/amirasaad/bms/pkg/domain/money"
	accountsvc "github.com/amirasaad/bms/pkg/service/account"
	"github.com/fatih/color"
)

const (
	mainMenu = "\n--- Bank Management System ---\n" +
		"1. Sign In\n" +
		"2. Create Account\n" +
		"3. Exit\n"

	accountMenu = "\n--- Account Menu ---\n" +
		"1. Modify Account\n" +
		"2. Deposit\n" +
		"3. Withdraw\n" +
		"4. Balance Summary\n" +
		"5. Log Out\n"

	choicePrompt = "Enter your choice: "
)

// errExit ends the session loop and the program.
var errExit = errors.New("exit")

// Shell drives the account service from text menus.
type Shell struct {
	svc    *accountsvc.Service
	in     *Input
	out    io.Writer
	logger *slog.Logger

	header  *color.Color
	success *color.Color
	failure *color.Color
}

// Option configures a Shell.
type Option func(*Shell)

// WithColor turns ANSI colouring of results on or off. It is off by default.
func WithColor(enabled bool) Option {
	return func(s *Shell) {
		for _, c := range []*color.Color{s.header, s.success, s.failure} {
			if enabled {
				c.EnableColor()
			} else {
				c.DisableColor()
			}
		}
	}
}

// WithLogger sets the logger used for unexpected failures.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Shell) { s.logger = logger }
}

// New creates a Shell reading from in and writing to out.
func New(svc *accountsvc.Service, in *Input, out io.Writer, opts ...Option) *Shell {
	s := &Shell{
		svc:     svc,
		in:      in,
		out:     out,
		logger:  slog.Default(),
		header:  color.New(color.FgCyan, color.Bold),
		success: color.New(color.FgGreen),
		failure: color.New(color.FgRed),
	}
	WithColor(false)(s)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run shows the main menu until the user exits or input ends, in which case it returns
// nil. If ctx is cancelled first, Run returns ctx.Err().
func (s *Shell) Run(ctx context.Context) error {
	for {
		s.header.Fprint(s.out, mainMenu) //nolint:errcheck
		choice, err := s.prompt(ctx, choicePrompt)
		if err != nil {
			return s.finish(err)
		}

		switch choice {
		case "1":
			err = s.signIn(ctx)
		case "2":
			err = s.createAccount(ctx)
		case "3":
			err = errExit
		default:
			s.fail("Invalid choice.")
		}
		if err != nil {
			return s.finish(err)
		}
	}
}

func (s *Shell) finish(err error) error {
	if errors.Is(err, errExit) || errors.Is(err, io.EOF) {
		s.printf("Exiting program.\n")
		return nil
	}
	return err
}

func (s *Shell) createAccount(ctx context.Context) error {
	name, err := s.prompt(ctx, "Enter your name: ")
	if err != nil {
		return err
	}
	pin, err := s.promptSecret(ctx, "Enter a PIN: ")
	if err != nil {
		return err
	}

	acc, err := s.svc.CreateAccount(name, pin)
	switch {
	case errors.Is(err, account.ErrInvalidInput):
		s.fail("Invalid name or PIN. Please try again.")
	case err != nil:
		s.unexpected("create account", err)
	default:
		s.ok("Account created successfully. Your Bank Number is %d.", acc.ID)
	}
	return nil
}

func (s *Shell) signIn(ctx context.Context) error {
	tok, err := s.prompt(ctx, "Enter Bank Number: ")
	if err != nil {
		return err
	}
	id, convErr := strconv.Atoi(tok)
	if convErr != nil {
		s.fail("Invalid input: bank number must be a whole number.")
		return nil
	}
	pin, err := s.promptSecret(ctx, "Enter PIN: ")
	if err != nil {
		return err
	}

	sess, err := s.svc.Authenticate(id, pin)
	if err != nil {
		s.fail("Invalid Bank Number or PIN.")
		return nil
	}
	s.ok("Signed in successfully.")
	defer s.svc.Logout(sess)
	return s.accountLoop(ctx, sess)
}

func (s *Shell) accountLoop(ctx context.Context, sess *accountsvc.Session) error {
	for {
		s.header.Fprint(s.out, accountMenu) //nolint:errcheck
		choice, err := s.prompt(ctx, choicePrompt)
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = s.modify(ctx, sess)
		case "2":
			err = s.deposit(ctx, sess)
		case "3":
			err = s.withdraw(ctx, sess)
		case "4":
			s.summary(sess)
		case "5":
			s.ok("Logged out successfully.")
			return nil
		default:
			s.fail("Invalid choice.")
		}
		if err != nil {
			return err
		}
	}
}

func (s *Shell) modify(ctx context.Context, sess *accountsvc.Session) error {
	name, err := s.prompt(ctx, "Enter new name: ")
	if err != nil {
		return err
	}
	pin, err := s.promptSecret(ctx, "Enter new PIN: ")
	if err != nil {
		return err
	}

	_, err = s.svc.Modify(sess, name, pin)
	switch {
	case errors.Is(err, account.ErrInvalidInput):
		s.fail("Invalid name or PIN. Please try again.")
	case err != nil:
		s.unexpected("modify account", err)
	default:
		s.ok("Account updated successfully.")
	}
	return nil
}

func (s *Shell) deposit(ctx context.Context, sess *accountsvc.Session) error {
	amount, ok, err := s.promptAmount(ctx, "Enter amount to deposit: ")
	if err != nil || !ok {
		return err
	}

	acc, err := s.svc.Deposit(sess, amount)
	switch {
	case errors.Is(err, account.ErrInvalidAmount):
		s.fail("Invalid deposit amount.")
	case errors.Is(err, money.ErrOverflow):
		s.fail("Deposit rejected: balance would be too large.")
	case err != nil:
		s.unexpected("deposit", err)
	default:
		s.ok("Deposit successful. New Balance: %s", acc.Balance)
	}
	return nil
}

func (s *Shell) withdraw(ctx context.Context, sess *accountsvc.Session) error {
	amount, ok, err := s.promptAmount(ctx, "Enter amount to withdraw: ")
	if err != nil || !ok {
		return err
	}

	acc, err := s.svc.Withdraw(sess, amount)
	switch {
	case errors.Is(err, account.ErrInvalidAmount):
		s.fail("Invalid withdrawal amount.")
	case errors.Is(err, account.ErrInsufficientFunds):
		s.fail("Insufficient balance.")
	case err != nil:
		s.unexpected("withdraw", err)
	default:
		s.ok("Withdrawal successful. New Balance: %s", acc.Balance)
	}
	return nil
}

func (s *Shell) summary(sess *accountsvc.Session) {
	sum, err := s.svc.Summarize(sess)
	if err != nil {
		s.unexpected("balance summary", err)
		return
	}
	s.printf("Bank Number: %d\nName: %s\nBalance: %s\n", sum.ID, sum.Name, sum.Balance)
}

func (s *Shell) prompt(ctx context.Context, label string) (string, error) {
	s.printf("%s", label)
	return s.in.Next(ctx)
}

func (s *Shell) promptSecret(ctx context.Context, label string) (string, error) {
	s.printf("%s", label)
	return s.in.NextSecret(ctx)
}

// promptAmount reads an amount. ok is false when the token was not a usable amount;
// the reason has already been printed.
func (s *Shell) promptAmount(ctx context.Context, label string) (money.Money, bool, error) {
	tok, err := s.prompt(ctx, label)
	if err != nil {
		return money.Money{}, false, err
	}
	amount, err := money.Parse(tok)
	switch {
	case errors.Is(err, money.ErrTooManyDecimals):
		s.fail("Invalid amount: at most two decimal places are allowed.")
		return money.Money{}, false, nil
	case errors.Is(err, money.ErrOverflow):
		s.fail("Invalid amount: amount too large.")
		return money.Money{}, false, nil
	case err != nil:
		s.fail("Invalid input: amount must be a number.")
		return money.Money{}, false, nil
	}
	return amount, true, nil
}

func (s *Shell) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...) //nolint:errcheck
}

func (s *Shell) ok(format string, args ...any) {
	s.success.Fprintf(s.out, format+"\n", args...) //nolint:errcheck
}

func (s *Shell) fail(format string, args ...any) {
	s.failure.Fprintf(s.out, format+"\n", args...) //nolint:errcheck
}

func (s *Shell) unexpected(op string, err error) {
	s.logger.Error("Operation failed", "op", op, "error", err)
	s.fail("Operation failed: %v", err)
}
