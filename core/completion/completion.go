// Package completion proposes TAB completions for the word under the
// cursor: executable names for the first word, directory entries for
// arguments and paths. It owns the double-tap memory that decides when the
// full candidate list is revealed; all terminal IO stays in the editor.
package completion

import (
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/spf13/afero"

	"github.com/gsh-dev/gsh/core/editor"
)

// DefaultWindow is how long two TAB presses may be apart and still count
// as a double tap.
const DefaultWindow = time.Second

// Engine computes completion candidates over an injected filesystem.
type Engine struct {
	fs       afero.Fs
	builtins []string
	getenv   func(string) string
	now      func() time.Time
	window   time.Duration

	lastTap    time.Time
	lastPrefix string
	tapArmed   bool
}

// NewEngine builds an engine. builtins is the set of shell builtin names
// offered for first-word completion; getenv supplies PATH.
func NewEngine(fs afero.Fs, builtins []string, getenv func(string) string) *Engine {
	return &Engine{
		fs:       fs,
		builtins: builtins,
		getenv:   getenv,
		now:      time.Now,
		window:   DefaultWindow,
	}
}

// SetWindow overrides the double-tap window.
func (e *Engine) SetWindow(d time.Duration) {
	if d > 0 {
		e.window = d
	}
}

// Reset clears the double-tap memory. Called when a line is accepted.
func (e *Engine) Reset() {
	e.tapArmed = false
	e.lastPrefix = ""
}

// Complete proposes a rewrite of prefix, the text left of the cursor.
func (e *Engine) Complete(prefix string) editor.Result {
	wordStart := lastWordStart(prefix)
	word := prefix[wordStart:]

	cands := e.candidates(word, wordStart == 0)

	switch len(cands) {
	case 0:
		e.Reset()
		return editor.Result{Prefix: prefix, Bell: true}

	case 1:
		e.Reset()
		repl := cands[0]
		if !strings.HasSuffix(repl, "/") {
			repl += " "
		}
		return editor.Result{Prefix: prefix[:wordStart] + repl}

	default:
		lcp := longestCommonPrefix(cands)
		if len(lcp) > len(word) {
			e.arm(word)
			return editor.Result{Prefix: prefix[:wordStart] + lcp}
		}
		if e.tapArmed && e.lastPrefix == word && e.now().Sub(e.lastTap) <= e.window {
			e.Reset()
			return editor.Result{Prefix: prefix, Candidates: cands}
		}
		e.arm(word)
		return editor.Result{Prefix: prefix, Bell: true}
	}
}

func (e *Engine) arm(word string) {
	e.tapArmed = true
	e.lastTap = e.now()
	e.lastPrefix = word
}

// candidates gathers, sorts, and dedupes the completion set for word.
func (e *Engine) candidates(word string, firstWord bool) []string {
	var cands []string
	switch {
	case strings.Contains(word, "/"):
		cands = e.pathCandidates(word)
	case firstWord:
		cands = e.commandCandidates(word)
	default:
		cands = e.dirCandidates(".", "", word)
	}

	sort.Strings(cands)
	out := cands[:0]
	for i, c := range cands {
		if i == 0 || c != cands[i-1] {
			out = append(out, c)
		}
	}
	return out
}

// pathCandidates completes a word that already names a path, keeping the
// directory part of the word verbatim in each candidate.
func (e *Engine) pathCandidates(word string) []string {
	slash := strings.LastIndexByte(word, '/')
	dirPrefix := word[:slash+1]
	filePrefix := word[slash+1:]

	dir := dirPrefix
	if dir != "/" {
		dir = strings.TrimSuffix(dir, "/")
	}
	if dir == "" {
		dir = "/"
	}
	return e.dirCandidates(dir, dirPrefix, filePrefix)
}

// dirCandidates lists entries of dir whose name starts with filePrefix,
// prepending keep to each candidate and marking directories with a slash.
func (e *Engine) dirCandidates(dir, keep, filePrefix string) []string {
	infos, err := afero.ReadDir(e.fs, dir)
	if err != nil {
		return nil
	}

	var cands []string
	for _, info := range infos {
		name := info.Name()
		if !strings.HasPrefix(name, filePrefix) {
			continue
		}
		if info.IsDir() {
			name += "/"
		}
		cands = append(cands, keep+name)
	}
	return cands
}

// commandCandidates unions builtin names with executables found on PATH.
func (e *Engine) commandCandidates(word string) []string {
	seen := make(map[string]bool)
	var cands []string

	for _, name := range e.builtins {
		if strings.HasPrefix(name, word) && !seen[name] {
			seen[name] = true
			cands = append(cands, name)
		}
	}

	for _, dir := range filepath.SplitList(e.getenv("PATH")) {
		if dir == "" {
			continue
		}
		infos, err := afero.ReadDir(e.fs, dir)
		if err != nil {
			continue
		}
		for _, info := range infos {
			name := info.Name()
			if !strings.HasPrefix(name, word) || seen[name] {
				continue
			}
			if !info.Mode().IsRegular() || info.Mode()&0111 == 0 {
				continue
			}
			seen[name] = true
			cands = append(cands, name)
		}
	}
	return cands
}

// lastWordStart finds the index after the last unescaped space in prefix.
func lastWordStart(prefix string) int {
	start := 0
	for i := 0; i < len(prefix); i++ {
		switch prefix[i] {
		case '\\':
			i++
		case ' ':
			start = i + 1
		}
	}
	return start
}

// longestCommonPrefix of a non-empty sorted candidate list is the shared
// prefix of its first and last elements.
func longestCommonPrefix(sorted []string) string {
	first, last := sorted[0], sorted[len(sorted)-1]
	i := 0
	for i < len(first) && i < len(last) && first[i] == last[i] {
		i++
	}
	return first[:i]
}
