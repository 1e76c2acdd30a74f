package core

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/gsh-dev/gsh/core/parser"
)

// ErrNotFound is the error resulting if a path search failed to find an executable file.
var ErrNotFound = exec.ErrNotFound

func findExecutable(fsys afero.Fs, file string) error {
	d, err := fsys.Stat(file)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return ErrNotFound
	case err != nil:
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0111 != 0 {
		return nil
	}
	return fs.ErrPermission
}

// LookPath searches for an executable named file in the directories named by
// the PATH environment variable. If file contains a slash, it is tried directly
// and the PATH is not consulted. The result may be an absolute path or a path
// relative to the current directory.
func LookPath(fsys afero.Fs, getenv func(string) string, file string) (string, error) {
	if strings.Contains(file, "/") {
		err := findExecutable(fsys, file)
		if err == nil {
			return file, nil
		}
		return "", err
	}
	path := getenv("PATH")
	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		path := filepath.Join(dir, file)
		if err := findExecutable(fsys, path); err == nil {
			return path, nil
		}
	}
	return "", ErrNotFound
}

// Process runs one parsed invocation and returns its exit status.
// Redirections are applied before dispatch and reverted on every path out.
func (s *Shell) Process(inv *parser.Invocation) int {
	redir, err := applyRedirections(inv.Redir)
	if err != nil {
		fmt.Fprintf(s.stderr, "gsh: %v\n", err)
		return 1
	}
	defer func() {
		if err := redir.restore(); err != nil {
			s.Log.With("err", err).Error("restore file descriptors")
		}
	}()

	if len(inv.Argv) == 0 {
		return 0
	}

	if b, ok := LookupBuiltin(inv.Argv[0]); ok {
		return b.Main(s, inv.Argv)
	}
	return s.runExternal(inv.Argv)
}

// runExternal resolves argv[0] on PATH and runs it as a child process,
// inheriting the shell's (possibly redirected) standard streams.
func (s *Shell) runExternal(argv []string) int {
	path, err := LookPath(s.fs, s.getenv, argv[0])
	if err != nil {
		fmt.Fprintf(s.stderr, "%s: command not found\n", argv[0])
		return 1
	}
	s.Log.With("argv0", argv[0]).Debug("resolved command", "path", path)

	cmd := &exec.Cmd{
		Path:   path,
		Args:   argv,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}

	err = cmd.Run()
	var exitErr *exec.ExitError
	switch {
	case errors.As(err, &exitErr):
		s.Log.With("argv0", argv[0]).Debug("child exited", "status", exitErr.ExitCode())
		return exitErr.ExitCode()
	case err != nil:
		fmt.Fprintf(s.stderr, "%s: %v\n", argv[0], err)
		return 1
	}
	return 0
}
