package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Input reads whitespace-delimited tokens. Secret tokens (PINs) are read without echo
// when a terminal is attached.
type Input struct {
	r       *bufio.Reader
	secret  func() (string, error)
	restore func()
	pending []string
}

// NewInput reads tokens from r with no echo suppression.
func NewInput(r io.Reader) *Input {
	return &Input{r: bufio.NewReader(r)}
}

// NewTerminalInput reads from f and, when f is a terminal, reads secrets with echo off.
// out receives the newline the terminal swallows after a hidden entry.
func NewTerminalInput(f *os.File, out io.Writer) *Input {
	in := NewInput(f)
	fd := int(f.Fd())
	if term.IsTerminal(fd) {
		if state, err := term.GetState(fd); err == nil {
			in.restore = func() { _ = term.Restore(fd, state) }
		}
		in.secret = func() (string, error) {
			b, err := term.ReadPassword(fd)
			fmt.Fprintln(out) //nolint:errcheck
			return string(b), err
		}
	}
	return in
}

// Restore puts the terminal back into the state it had when the Input was created.
// It matters when the program is interrupted during a hidden PIN entry.
func (in *Input) Restore() {
	if in.restore != nil {
		in.restore()
	}
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

type readResult struct {
	line string
	err  error
}

// Next returns the next token. It blocks until a token is available, input ends
// (io.EOF) or ctx is done.
func (in *Input) Next(ctx context.Context) (string, error) {
	return in.next(ctx, false)
}

// NextSecret is Next for values that should not be echoed.
func (in *Input) NextSecret(ctx context.Context) (string, error) {
	return in.next(ctx, true)
}

func (in *Input) next(ctx context.Context, secret bool) (string, error) {
	for len(in.pending) == 0 {
		read := in.readLine
		if secret && in.secret != nil && in.r.Buffered() == 0 {
			read = in.secret
		}
		line, err := in.await(ctx, read)
		in.pending = strings.Fields(line)
		if err != nil && len(in.pending) == 0 {
			return "", err
		}
	}
	tok := in.pending[0]
	in.pending = in.pending[1:]
	return tok, nil
}

// await runs read on its own goroutine so a pending read never blocks cancellation.
// A cancelled read is abandoned; the caller is expected to stop reading afterwards.
func (in *Input) await(ctx context.Context, read func() (string, error)) (string, error) {
	ch := make(chan readResult, 1)
	go func() {
		line, err := read()
		ch <- readResult{line: line, err: err}
	}()
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-ch:
		return res.line, res.err
	}
}

func (in *Input) readLine() (string, error) {
	line, err := in.r.ReadString('\n')
	if errors.Is(err, io.EOF) && line != "" {
		// Hand back the final unterminated line; EOF surfaces on the next read.
		return line, nil
	}
	return line, err
}
