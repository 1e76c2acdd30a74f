// Package core implements the interactive shell session: the
// read/parse/execute loop, builtin dispatch, PATH resolution, and
// descriptor-level redirection.
package core

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"pkt.systems/pslog"

	"github.com/gsh-dev/gsh/core/completion"
	"github.com/gsh-dev/gsh/core/config"
	"github.com/gsh-dev/gsh/core/editor"
	"github.com/gsh-dev/gsh/core/parser"
	"github.com/gsh-dev/gsh/core/term"
)

// Version of the shell, reported by --version and help.
const Version = "0.1.0"

// Shell owns the per-session state: terminal attributes, line editor,
// completion memory, and the last command status. All of it is accessed
// only from the main loop.
type Shell struct {
	Terminal   *term.Terminal
	Editor     *editor.Editor
	Completion *completion.Engine
	Config     *config.Config
	Log        pslog.Logger

	fs     afero.Fs
	getenv func(string) string
	chdir  func(string) error
	getwd  func() (string, error)
	stdout io.Writer
	stderr io.Writer

	lastStatus    int
	exitRequested bool
	exitStatus    int
}

// NewShell wires a session against the real terminal and filesystem.
func NewShell(cfg *config.Config, logger pslog.Logger) (*Shell, error) {
	t, err := term.New(int(os.Stdin.Fd()))
	if err != nil {
		return nil, fmt.Errorf("shell startup: %w", err)
	}

	fs := afero.NewOsFs()
	eng := completion.NewEngine(fs, BuiltinNames(), os.Getenv)
	eng.SetWindow(cfg.DoubleTapWindow())

	s := &Shell{
		Terminal:   t,
		Completion: eng,
		Config:     cfg,
		Log:        logger,
		fs:         fs,
		getenv:     os.Getenv,
		chdir:      os.Chdir,
		getwd:      os.Getwd,
		stdout:     os.Stdout,
		stderr:     os.Stderr,
	}
	s.Editor = editor.New(os.Stdin, os.Stdout, eng)
	if cfg.LineBufferSize > 0 {
		s.Editor.Reserve(cfg.LineBufferSize)
	}
	return s, nil
}

// Run drives the read/parse/execute loop until exit is requested, input
// ends, or the terminal fails. The return value is the process exit status.
// Raw mode is held only while a line is being read, so commands always see
// a cooked terminal; the deferred restore covers panics too.
func (s *Shell) Run() int {
	defer func() {
		if err := s.Terminal.Restore(); err != nil {
			s.Log.With("err", err).Error("restore terminal")
		}
	}()

	for !s.exitRequested {
		prompt, width := s.prompt()

		if err := s.Terminal.Raw(); err != nil {
			s.Log.With("err", err).Error("enter raw mode")
			return 1
		}
		line, err := s.Editor.ReadLine(prompt, width)
		if rerr := s.Terminal.Restore(); rerr != nil {
			s.Log.With("err", rerr).Error("restore terminal")
			return 1
		}
		s.Completion.Reset()

		if errors.Is(err, io.EOF) {
			return 0
		}
		if err != nil {
			s.Log.With("err", err).Error("read line")
			return 1
		}

		inv, err := parser.Parse(line)
		if err != nil {
			fmt.Fprintf(s.stderr, "gsh: %v\n", err)
			s.lastStatus = 1
			continue
		}
		if inv.Empty() {
			continue
		}

		s.lastStatus = s.Process(inv)
		s.Log.Debug("command finished", "status", s.lastStatus)
	}
	return s.exitStatus
}

// prompt renders the working directory followed by "$ ", returning the
// string and its visible width. A non-terminal stdout gets the plain form,
// as does a working directory too wide for the current terminal. The width
// is re-measured every prompt so resizes take effect on the next line.
func (s *Shell) prompt() (string, int) {
	if f, ok := s.stdout.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		return "$ ", 2
	}

	wd, err := s.getwd()
	if err != nil {
		return "$ ", 2
	}
	width := len(wd) + 2
	if width >= s.Terminal.Width() {
		return "$ ", 2
	}
	if s.Config.PromptColor {
		wd = color.New(color.FgGreen, color.Bold).Sprint(wd)
	}
	return wd + "$ ", width
}
