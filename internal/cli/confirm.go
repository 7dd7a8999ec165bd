package cli

import (
	"bufio"
	"fmt"
	"strings"
)

// confirm asks a yes/no question on stdin. --yes answers for the user;
// anything but y/yes, including EOF, declines.
func (a *app) confirm(question string) bool {
	if a.flags.yes {
		return true
	}
	if a.reader == nil {
		a.reader = bufio.NewReader(a.stdin)
	}
	fmt.Fprintf(a.stdout, "%s [y/N]: ", question)
	line, err := a.reader.ReadString('\n')
	if err != nil && line == "" {
		fmt.Fprintln(a.stdout)
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}
