package account

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	domainaccount "github.com/amirasaad/bms/pkg/domain/account"
	"github.com/amirasaad/bms/pkg/domain/money"
)

// fieldSep separates the fields of a persisted record. Names and PINs are written
// unescaped, so a ':' inside either corrupts the line on the next load.
const fieldSep = ":"

const fieldCount = 4

// ErrMalformedLine is wrapped by every LineError.
var ErrMalformedLine = errors.New("malformed account line")

// ErrLineTooLong is the cause of a LineError for a record that exceeds the line size limit.
var ErrLineTooLong = errors.New("line too long")

// LineError describes why a persisted line was skipped.
type LineError struct {
	Line   int
	Reason string
	Err    error
}

func (e *LineError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("line %d: %s: %v", e.Line, e.Reason, e.Err)
	}
	return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
}

func (e *LineError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrMalformedLine, e.Err}
	}
	return []error{ErrMalformedLine}
}

// LineResult is the outcome of decoding one persisted line.
// Exactly one of Account and Err is set.
type LineResult struct {
	Line    int
	Account *domainaccount.Account
	Err     error
}

// EncodeLine renders an account as id:name:pin:balance with a two-decimal balance.
func EncodeLine(a *domainaccount.Account) string {
	return strings.Join([]string{
		strconv.Itoa(a.ID),
		a.Name,
		a.PIN,
		a.Balance.String(),
	}, fieldSep)
}

// DecodeLine parses an id:name:pin:balance record. lineNo is only used for error reporting.
func DecodeLine(lineNo int, line string) (*domainaccount.Account, error) {
	fields := strings.Split(line, fieldSep)
	if len(fields) != fieldCount {
		return nil, &LineError{
			Line:   lineNo,
			Reason: fmt.Sprintf("expected %d fields, got %d", fieldCount, len(fields)),
		}
	}

	id, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return nil, &LineError{Line: lineNo, Reason: "invalid id", Err: err}
	}

	balance, err := money.ParseRounded(fields[3])
	if err != nil {
		return nil, &LineError{Line: lineNo, Reason: "invalid balance", Err: err}
	}

	acc, err := domainaccount.New().
		WithID(id).
		WithName(fields[1]).
		WithPIN(fields[2]).
		WithBalance(balance).
		Hydrated().
		Build()
	if err != nil {
		return nil, &LineError{Line: lineNo, Reason: "invalid record", Err: err}
	}
	return acc, nil
}
