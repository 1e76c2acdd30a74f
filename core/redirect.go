package core

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"github.com/gsh-dev/gsh/core/parser"
)

const (
	fdStdout = 1
	fdStderr = 2
)

// savedFd remembers where a stream pointed before redirection.
type savedFd struct {
	fd    int
	saved int
	file  *os.File
}

// redirector applies output redirections at the descriptor level so that
// both the shell's own writes and child processes observe them. restore
// must be called on every path out of the command.
type redirector struct {
	saves []savedFd
}

// applyRedirections redirects fds 1 and 2 per redir. On failure everything
// applied so far is unwound before the error is returned.
func applyRedirections(redir parser.Redirection) (*redirector, error) {
	r := &redirector{}
	if redir.Stdout != nil {
		if err := r.apply(fdStdout, redir.Stdout); err != nil {
			r.restore()
			return nil, err
		}
	}
	if redir.Stderr != nil {
		if err := r.apply(fdStderr, redir.Stderr); err != nil {
			r.restore()
			return nil, err
		}
	}
	return r, nil
}

func (r *redirector) apply(fd int, target *parser.Target) error {
	flags := os.O_WRONLY | os.O_CREATE
	if target.Append {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}
	f, err := os.OpenFile(target.Path, flags, 0644)
	if err != nil {
		return fmt.Errorf("%s: %w", target.Path, err)
	}

	saved, err := unix.Dup(fd)
	if err != nil {
		f.Close()
		return fmt.Errorf("dup fd %d: %w", fd, err)
	}
	if err := unix.Dup3(int(f.Fd()), fd, 0); err != nil {
		unix.Close(saved)
		f.Close()
		return fmt.Errorf("redirect fd %d: %w", fd, err)
	}

	r.saves = append(r.saves, savedFd{fd: fd, saved: saved, file: f})
	return nil
}

// restore puts every redirected descriptor back, newest first, and closes
// the target files. Idempotent.
func (r *redirector) restore() error {
	var lastErr error
	for i := len(r.saves) - 1; i >= 0; i-- {
		s := r.saves[i]
		if err := unix.Dup3(s.saved, s.fd, 0); err != nil {
			lastErr = fmt.Errorf("restore fd %d: %w", s.fd, err)
		}
		if err := unix.Close(s.saved); err != nil && lastErr == nil {
			lastErr = err
		}
		if err := s.file.Close(); err != nil && lastErr == nil {
			lastErr = err
		}
	}
	r.saves = nil
	return lastErr
}
