package console

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInput_Tokens(t *testing.T) {
	ctx := context.Background()
	in := NewInput(strings.NewReader("  1 Alice\n\n\t1234  \r\nlast"))

	var got []string
	for {
		tok, err := in.Next(ctx)
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		got = append(got, tok)
	}
	assert.Equal(t, []string{"1", "Alice", "1234", "last"}, got)
}

func TestInput_SecretUsesReaderWhenBuffered(t *testing.T) {
	ctx := context.Background()
	in := NewInput(strings.NewReader("1 9999\n"))
	calls := 0
	in.secret = func() (string, error) {
		calls++
		return "hidden", nil
	}

	tok, err := in.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, "1", tok)

	// The PIN was typed ahead on the same line, so it comes from the pending tokens.
	pin, err := in.NextSecret(ctx)
	require.NoError(t, err)
	assert.Equal(t, "9999", pin)
	assert.Zero(t, calls)
}

func TestInput_SecretReader(t *testing.T) {
	ctx := context.Background()
	in := NewInput(strings.NewReader(""))
	in.secret = func() (string, error) { return " 4321 \n", nil }

	pin, err := in.NextSecret(ctx)
	require.NoError(t, err)
	assert.Equal(t, "4321", pin)

	_, err = in.Next(ctx)
	assert.ErrorIs(t, err, io.EOF)
}
