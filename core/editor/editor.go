// Package editor implements the raw-mode line editor: a byte-at-a-time read
// loop over a LineBuffer with emacs-style editing keys, escape-sequence
// handling, and TAB completion through a pluggable Completer.
package editor

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Result is the outcome of one completion request against the text left of
// the cursor.
type Result struct {
	// Prefix is the rewritten text up to the cursor. Equal to the input
	// prefix when nothing changed.
	Prefix string
	// Bell requests an audible bell.
	Bell bool
	// Candidates, when non-nil, is the list to display below the line.
	Candidates []string
}

// Completer proposes completions for the text left of the cursor.
type Completer interface {
	Complete(prefix string) Result
}

// Editor reads logical lines from a raw-mode byte stream. The caller owns
// the terminal state transitions; the editor only reads and writes bytes.
type Editor struct {
	in        *bufio.Reader
	out       io.Writer
	buf       *LineBuffer
	completer Completer

	prompt      string
	promptWidth int
}

// New builds an editor over the given byte streams. completer may be nil,
// in which case TAB is ignored.
func New(in io.Reader, out io.Writer, completer Completer) *Editor {
	return &Editor{
		in:        bufio.NewReader(in),
		out:       out,
		buf:       NewLineBuffer(),
		completer: completer,
	}
}

// Reserve pre-allocates the line buffer for lines up to n bytes.
func (ed *Editor) Reserve(n int) {
	ed.buf.Reserve(n)
}

// ReadLine displays prompt and reads one accepted line. promptWidth is the
// visible column width of the prompt, which may differ from len(prompt)
// when the prompt carries color escapes. Returns io.EOF when the user
// signals end-of-input on an empty line or the stream ends.
func (ed *Editor) ReadLine(prompt string, promptWidth int) (string, error) {
	ed.prompt = prompt
	ed.promptWidth = promptWidth
	ed.buf.Clear()
	ed.redraw()

	for {
		c, err := ed.in.ReadByte()
		if err != nil {
			return "", err
		}

		switch c {
		case keyCR, keyLF:
			fmt.Fprint(ed.out, "\r\n")
			return ed.buf.String(), nil

		case keyBackspace, keyCtrlH:
			ed.buf.DeleteBack()
			ed.redraw()

		case keyCtrlA:
			ed.buf.MoveStart()
			ed.redraw()

		case keyCtrlE:
			ed.buf.MoveEnd()
			ed.redraw()

		case keyCtrlB:
			ed.buf.MoveLeft()
			ed.redraw()

		case keyCtrlF:
			ed.buf.MoveRight()
			ed.redraw()

		case keyCtrlK:
			ed.buf.TruncateAtCursor()
			ed.redraw()

		case keyCtrlU:
			ed.buf.DeleteToStart()
			ed.redraw()

		case keyCtrlW:
			ed.buf.DeleteWord()
			ed.redraw()

		case keyCtrlL:
			fmt.Fprint(ed.out, "\x1b[2J\x1b[H")
			ed.redraw()

		case keyCtrlC:
			fmt.Fprint(ed.out, "^C\r\n")
			ed.buf.Clear()
			ed.redraw()

		case keyCtrlD:
			if ed.buf.Len() == 0 {
				fmt.Fprint(ed.out, "\r\n")
				return "", io.EOF
			}

		case keyTab:
			ed.complete()

		case keyEscape:
			if err := ed.readEscape(); err != nil {
				return "", err
			}
			ed.redraw()

		default:
			if c >= 0x20 {
				ed.buf.Insert(c)
				ed.redraw()
			}
		}
	}
}

// complete runs the completer against the text left of the cursor and
// applies its result to the buffer and screen.
func (ed *Editor) complete() {
	if ed.completer == nil {
		return
	}
	prefix := ed.buf.String()[:ed.buf.Cursor()]
	res := ed.completer.Complete(prefix)

	if res.Bell {
		fmt.Fprint(ed.out, "\a")
	}
	if res.Candidates != nil {
		fmt.Fprint(ed.out, "\r\n"+strings.Join(res.Candidates, "  ")+"\r\n")
		ed.redraw()
	}
	if res.Prefix != prefix {
		ed.buf.Replace(res.Prefix)
		ed.redraw()
	}
}

// readEscape consumes one escape sequence. Unrecognized sequences are
// swallowed without touching the buffer.
func (ed *Editor) readEscape() error {
	c, err := ed.in.ReadByte()
	if err != nil {
		return err
	}

	switch c {
	case '[':
		return ed.readCSI()
	case 'O':
		c, err := ed.in.ReadByte()
		if err != nil {
			return err
		}
		switch c {
		case 'C':
			ed.buf.MoveRight()
		case 'D':
			ed.buf.MoveLeft()
		case 'H':
			ed.buf.MoveStart()
		case 'F':
			ed.buf.MoveEnd()
		}
	}
	return nil
}

// readCSI handles the ESC [ family: arrows, and numeric codes terminated
// by '~' (Home, Delete, End, and the two-digit variants).
func (ed *Editor) readCSI() error {
	c, err := ed.in.ReadByte()
	if err != nil {
		return err
	}

	switch {
	case c == 'C':
		ed.buf.MoveRight()
	case c == 'D':
		ed.buf.MoveLeft()
	case c == 'H':
		ed.buf.MoveStart()
	case c == 'F':
		ed.buf.MoveEnd()
	case c >= '0' && c <= '9':
		code := int(c - '0')
		for {
			c, err = ed.in.ReadByte()
			if err != nil {
				return err
			}
			if c < '0' || c > '9' {
				break
			}
			code = code*10 + int(c-'0')
		}
		if c != '~' {
			return nil
		}
		switch code {
		case codeHome, codeHomeVar:
			ed.buf.MoveStart()
		case codeEnd, codeEndVar:
			ed.buf.MoveEnd()
		case codeDelete:
			ed.buf.DeleteForward()
		}
	}
	return nil
}

// redraw repaints the prompt and buffer on the current line and parks the
// cursor at its logical column.
func (ed *Editor) redraw() {
	var b strings.Builder
	b.WriteString("\r")
	b.WriteString(ed.prompt)
	b.WriteString(ed.buf.String())
	b.WriteString("\x1b[K")
	b.WriteString("\r")
	if col := ed.promptWidth + ed.buf.Cursor(); col > 0 {
		fmt.Fprintf(&b, "\x1b[%dC", col)
	}
	fmt.Fprint(ed.out, b.String())
}
