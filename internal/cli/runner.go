package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
)

// Options wires the process streams; zero values mean os.Stdin/Stdout/Stderr.
type Options struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func (o Options) withDefaults() Options {
	if o.Stdin == nil {
		o.Stdin = os.Stdin
	}
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
	return o
}

// ErrUsage marks errors caused by how the command was invoked.
var ErrUsage = errors.New("usage error")

type usageError struct{ msg string }

func (e usageError) Error() string        { return e.msg }
func (e usageError) Is(target error) bool { return target == ErrUsage }

func usagef(format string, args ...any) error {
	return usageError{msg: fmt.Sprintf(format, args...)}
}

// Run executes the command line and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	opt = opt.withDefaults()
	a := &app{stdin: opt.Stdin, stdout: opt.Stdout, stderr: opt.Stderr}
	defer a.close()

	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetIn(opt.Stdin)
	root.SetOut(opt.Stdout)
	root.SetErr(opt.Stderr)

	err := root.ExecuteContext(context.Background())
	if err == nil {
		return 0
	}
	a.fail(err.Error())
	if errors.Is(err, ErrUsage) {
		fmt.Fprintln(opt.Stderr, "Run 'shoplist --help' for usage.")
		return 2
	}
	return 1
}
