// Package account implements the account store: an in-memory table keyed by id that
// is loaded from and saved to a flat text file, one id:name:pin:balance record per line.
package account

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"slices"
	"strings"

	domainaccount "github.com/amirasaad/bms/pkg/domain/account"
	"github.com/amirasaad/bms/pkg/repository"
)

// maxLineSize bounds a single persisted record.
const maxLineSize = 1 << 20

// Repository is the account store. It is not safe for concurrent use.
type Repository struct {
	accounts map[int]*domainaccount.Account
	logger   *slog.Logger
}

var _ repository.AccountRepository = (*Repository)(nil)

// New creates an empty store.
func New(logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		accounts: make(map[int]*domainaccount.Account),
		logger:   logger,
	}
}

// Get returns a copy of the account with the given id.
func (r *Repository) Get(id int) (*domainaccount.Account, error) {
	a, ok := r.accounts[id]
	if !ok {
		return nil, domainaccount.ErrAccountNotFound
	}
	return a.Clone(), nil
}

// Create inserts a new account.
func (r *Repository) Create(a *domainaccount.Account) error {
	if _, ok := r.accounts[a.ID]; ok {
		return fmt.Errorf("%w: id %d", repository.ErrAlreadyExists, a.ID)
	}
	r.accounts[a.ID] = a.Clone()
	return nil
}

// Update overwrites an existing account.
func (r *Repository) Update(a *domainaccount.Account) error {
	if _, ok := r.accounts[a.ID]; !ok {
		return domainaccount.ErrAccountNotFound
	}
	r.accounts[a.ID] = a.Clone()
	return nil
}

// List returns copies of all accounts ordered by ascending id.
func (r *Repository) List() []*domainaccount.Account {
	out := make([]*domainaccount.Account, 0, len(r.accounts))
	for _, id := range r.ids() {
		out = append(out, r.accounts[id].Clone())
	}
	return out
}

// NextID returns 1 for an empty store, otherwise the highest id plus one.
func (r *Repository) NextID() int {
	next := 1
	for id := range r.accounts {
		if id >= next {
			next = id + 1
		}
	}
	return next
}

// Len returns the number of stored accounts.
func (r *Repository) Len() int {
	return len(r.accounts)
}

func (r *Repository) ids() []int {
	return slices.Sorted(maps.Keys(r.accounts))
}

// Load replaces the table with the records read from src. Lines that fail to decode,
// including lines longer than maxLineSize, are logged and skipped; the returned results
// cover every non-blank line in order. If reading src fails partway through, the table
// is left empty and an ErrStorage error is returned.
func (r *Repository) Load(src io.Reader) ([]LineResult, error) {
	r.accounts = make(map[int]*domainaccount.Account)

	var results []LineResult
	br := bufio.NewReader(src)
	lineNo := 0
	for {
		line, tooLong, readErr := readLine(br)
		if len(line) > 0 || tooLong {
			lineNo++
			if res, ok := r.loadLine(lineNo, line, tooLong); ok {
				results = append(results, res)
			}
		}
		if errors.Is(readErr, io.EOF) {
			break
		}
		if readErr != nil {
			r.accounts = make(map[int]*domainaccount.Account)
			r.logger.Warn("Could not read accounts, starting fresh", "line", lineNo, "error", readErr)
			return nil, fmt.Errorf("%w: reading accounts: %w", repository.ErrStorage, readErr)
		}
	}
	r.logger.Debug("Accounts loaded", "count", len(r.accounts), "lines", lineNo)
	return results, nil
}

// loadLine decodes one raw line into the table. ok is false for blank lines.
func (r *Repository) loadLine(lineNo int, raw []byte, tooLong bool) (res LineResult, ok bool) {
	if tooLong {
		err := &LineError{Line: lineNo, Reason: fmt.Sprintf("longer than %d bytes", maxLineSize), Err: ErrLineTooLong}
		r.logger.Warn("Skipping account entry", "line", lineNo, "error", err)
		return LineResult{Line: lineNo, Err: err}, true
	}
	line := strings.TrimRight(string(raw), "\r\n")
	if strings.TrimSpace(line) == "" {
		return LineResult{}, false
	}
	acc, err := DecodeLine(lineNo, line)
	if err != nil {
		r.logger.Warn("Skipping account entry", "line", lineNo, "error", err)
		return LineResult{Line: lineNo, Err: err}, true
	}
	if _, dup := r.accounts[acc.ID]; dup {
		r.logger.Warn("Duplicate account id, later entry wins", "line", lineNo, "id", acc.ID)
	}
	r.accounts[acc.ID] = acc
	return LineResult{Line: lineNo, Account: acc.Clone()}, true
}

// readLine returns the next line including its terminator. A line whose content exceeds
// maxLineSize is consumed up to its newline and reported as tooLong with no data.
func readLine(br *bufio.Reader) (line []byte, tooLong bool, err error) {
	for {
		chunk, rerr := br.ReadSlice('\n')
		if !tooLong {
			line = append(line, chunk...)
			content := len(line)
			if content > 0 && line[content-1] == '\n' {
				content--
			}
			if content > maxLineSize {
				tooLong, line = true, nil
			}
		}
		if errors.Is(rerr, bufio.ErrBufferFull) {
			continue
		}
		return line, tooLong, rerr
	}
}

// Save writes every account to dst, ordered by ascending id.
func (r *Repository) Save(dst io.Writer) error {
	w := bufio.NewWriter(dst)
	for _, id := range r.ids() {
		if _, err := fmt.Fprintln(w, EncodeLine(r.accounts[id])); err != nil {
			return fmt.Errorf("%w: writing accounts: %w", repository.ErrStorage, err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("%w: writing accounts: %w", repository.ErrStorage, err)
	}
	return nil
}
