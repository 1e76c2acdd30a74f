// Package term captures, switches, and restores terminal attributes for the
// interactive session. Raw mode is entered only while a line is being read.
package term

import (
	"fmt"

	"golang.org/x/sys/unix"
	xterm "golang.org/x/term"
)

// Terminal tracks the attribute state of one terminal file descriptor.
type Terminal struct {
	fd    int
	saved *xterm.State
	raw   bool
}

// New captures the current attributes of fd so they can be restored later.
func New(fd int) (*Terminal, error) {
	st, err := xterm.GetState(fd)
	if err != nil {
		return nil, fmt.Errorf("terminal state: %w", err)
	}
	return &Terminal{fd: fd, saved: st}, nil
}

// IsTerminal reports whether fd is attached to a terminal.
func IsTerminal(fd int) bool {
	return xterm.IsTerminal(fd)
}

// Raw switches the terminal into raw mode: no echo, no canonical buffering,
// no signal keys, byte-at-a-time reads. A no-op when already raw.
func (t *Terminal) Raw() error {
	if t.raw {
		return nil
	}
	st, err := xterm.MakeRaw(t.fd)
	if err != nil {
		return fmt.Errorf("enter raw mode: %w", err)
	}
	t.saved = st
	t.raw = true
	return nil
}

// Restore puts the terminal back into the attributes captured before the
// last Raw transition. Safe to call when not raw.
func (t *Terminal) Restore() error {
	if !t.raw {
		return nil
	}
	t.raw = false
	if err := xterm.Restore(t.fd, t.saved); err != nil {
		return fmt.Errorf("restore terminal: %w", err)
	}
	return nil
}

// Width returns the current column count, or 80 when the size cannot be
// determined.
func (t *Terminal) Width() int {
	ws, err := unix.IoctlGetWinsize(t.fd, unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 {
		return 80
	}
	return int(ws.Col)
}
