package core

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"
)

// ShellBuiltin is one entry in the builtin table.
type ShellBuiltin struct {
	Name string
	Help string
	Main func(s *Shell, args []string) int
}

// AllBuiltins lists the builtins in the order help displays them.
// Populated in init to let help refer back to the table.
var AllBuiltins []ShellBuiltin

func init() {
	AllBuiltins = []ShellBuiltin{
		{"cd", "cd [dir]\tChange the working directory", Cd},
		{"echo", "echo [arg ...]\tWrite arguments to standard output", Echo},
		{"exit", "exit [n]\tExit the shell with status n", Exit},
		{"help", "help [name ...]\tList builtin commands or describe the named ones", Help},
		{"pwd", "pwd\tPrint the working directory", Pwd},
		{"type", "type name ...\tDescribe how each name would be interpreted", Type},
	}
}

// LookupBuiltin finds a builtin by name.
func LookupBuiltin(name string) (*ShellBuiltin, bool) {
	for i := range AllBuiltins {
		if AllBuiltins[i].Name == name {
			return &AllBuiltins[i], true
		}
	}
	return nil, false
}

// BuiltinNames returns the builtin names in display order.
func BuiltinNames() []string {
	names := make([]string, len(AllBuiltins))
	for i, b := range AllBuiltins {
		names[i] = b.Name
	}
	return names
}

// Cd is the cd shell builtin.
func Cd(s *Shell, args []string) int {
	var path string
	switch {
	case len(args) < 2 || args[1] == "~":
		path = s.getenv("HOME")
		if path == "" {
			fmt.Fprintln(s.stderr, "cd: HOME not set")
			return 1
		}
	case strings.HasPrefix(args[1], "~/"):
		home := s.getenv("HOME")
		if home == "" {
			fmt.Fprintln(s.stderr, "cd: HOME not set")
			return 1
		}
		path = home + args[1][1:]
	default:
		path = args[1]
	}

	if err := s.chdir(path); err != nil {
		fmt.Fprintf(s.stderr, "cd: %s: No such file or directory\n", path)
		return 1
	}
	return 0
}

// Echo writes its arguments to stdout separated by single spaces.
func Echo(s *Shell, args []string) int {
	fmt.Fprintln(s.stdout, strings.Join(args[1:], " "))
	return 0
}

// Pwd prints the working directory.
func Pwd(s *Shell, args []string) int {
	wd, err := s.getwd()
	if err != nil {
		fmt.Fprintf(s.stderr, "pwd: %v\n", err)
		return 1
	}
	fmt.Fprintln(s.stdout, wd)
	return 0
}

// Exit requests loop termination so the terminal is restored by the normal
// shutdown path before the process exits.
func Exit(s *Shell, args []string) int {
	status := 0
	if len(args) > 1 {
		n, err := strconv.Atoi(args[1])
		if err != nil {
			fmt.Fprintf(s.stderr, "exit: %s: numeric argument required\n", args[1])
			n = 2
		}
		status = n
	}
	s.exitRequested = true
	s.exitStatus = status
	return status
}

// Type reports how each operand would be interpreted: builtin first, then
// PATH resolution.
func Type(s *Shell, args []string) int {
	status := 0
	for _, name := range args[1:] {
		if _, ok := LookupBuiltin(name); ok {
			fmt.Fprintf(s.stdout, "%s is a shell builtin\n", name)
			continue
		}
		if path, err := LookPath(s.fs, s.getenv, name); err == nil {
			fmt.Fprintf(s.stdout, "%s is %s\n", name, path)
			continue
		}
		fmt.Fprintf(s.stderr, "%s: not found\n", name)
		status = 1
	}
	return status
}

// Help lists the builtin table, or the entries named as operands.
func Help(s *Shell, args []string) int {
	if len(args) > 1 {
		status := 0
		tw := tabwriter.NewWriter(s.stdout, 8, 8, 2, ' ', 0)
		for _, name := range args[1:] {
			b, ok := LookupBuiltin(name)
			if !ok {
				fmt.Fprintf(s.stderr, "help: no help topics match '%s'\n", name)
				status = 1
				continue
			}
			fmt.Fprintf(tw, "%s\n", b.Help)
		}
		tw.Flush()
		return status
	}

	fmt.Fprintf(s.stdout, "gsh, version %s\n", Version)
	fmt.Fprintln(s.stdout, "These commands are defined internally. Type 'help name' to find out more.")
	fmt.Fprintln(s.stdout)
	tw := tabwriter.NewWriter(s.stdout, 8, 8, 2, ' ', 0)
	for _, b := range AllBuiltins {
		fmt.Fprintf(tw, "%s\n", b.Help)
	}
	tw.Flush()
	return 0
}
