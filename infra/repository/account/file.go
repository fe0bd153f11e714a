package account

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	domainaccount "github.com/amirasaad/bms/pkg/domain/account"
	"github.com/amirasaad/bms/pkg/repository"
)

// LoadFile loads the store from path. A missing or unreadable file leaves the store
// empty and is reported through the returned error, which callers treat as a warning.
func (r *Repository) LoadFile(path string) ([]LineResult, error) {
	f, err := os.Open(path)
	if err != nil {
		r.accounts = make(map[int]*domainaccount.Account)
		if errors.Is(err, fs.ErrNotExist) {
			r.logger.Warn("Could not open accounts file, starting fresh", "path", path)
		} else {
			r.logger.Warn("Could not read accounts file, starting fresh", "path", path, "error", err)
		}
		return nil, fmt.Errorf("%w: open %s: %w", repository.ErrStorage, path, err)
	}
	defer f.Close() //nolint:errcheck

	return r.Load(f)
}

// SaveFile truncates path and writes every account to it.
func (r *Repository) SaveFile(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: open %s for writing: %w", repository.ErrStorage, path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: close %s: %w", repository.ErrStorage, path, cerr)
		}
	}()

	if err = r.Save(f); err != nil {
		return err
	}
	r.logger.Info("Accounts saved", "path", path, "count", len(r.accounts))
	return nil
}
