package term

import (
	"os"
	"testing"

	"github.com/creack/pty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openPty(t *testing.T) (ptmx, tty *os.File) {
	t.Helper()
	p, s, err := pty.Open()
	if err != nil {
		t.Skipf("no pty available: %v", err)
	}
	t.Cleanup(func() {
		p.Close()
		s.Close()
	})
	return p, s
}

func TestRawRestore(t *testing.T) {
	_, tty := openPty(t)

	tm, err := New(int(tty.Fd()))
	require.NoError(t, err)

	require.NoError(t, tm.Raw())
	require.NoError(t, tm.Raw()) // idempotent while raw
	require.NoError(t, tm.Restore())
	require.NoError(t, tm.Restore()) // idempotent once restored
}

func TestIsTerminal(t *testing.T) {
	_, tty := openPty(t)
	assert.True(t, IsTerminal(int(tty.Fd())))
}

func TestWidth(t *testing.T) {
	_, tty := openPty(t)

	require.NoError(t, pty.Setsize(tty, &pty.Winsize{Rows: 24, Cols: 132}))

	tm, err := New(int(tty.Fd()))
	require.NoError(t, err)
	assert.Equal(t, 132, tm.Width())
}
