package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/idilsaglam/shoplist/internal/config"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type result struct {
	code   int
	stdout string
	stderr string
}

// runCLI runs the CLI against dir with logging off and colors disabled.
func runCLI(t *testing.T, dir, stdin string, args ...string) result {
	t.Helper()
	var out, errOut bytes.Buffer
	full := append([]string{
		"--config", filepath.Join(dir, "config.yaml"),
		"--data-dir", dir,
		"--log-level", "off",
		"--no-color",
	}, args...)
	code := Run(full, Options{
		Stdin:  strings.NewReader(stdin),
		Stdout: &out,
		Stderr: &errOut,
	})
	return result{code: code, stdout: out.String(), stderr: errOut.String()}
}

func mustRun(t *testing.T, dir string, args ...string) string {
	t.Helper()
	r := runCLI(t, dir, "", args...)
	require.Equal(t, 0, r.code, "stderr: %s", r.stderr)
	return r.stdout
}

func TestAddAndList(t *testing.T) {
	dir := t.TempDir()

	assert.Contains(t, mustRun(t, dir, "add", "Milk"), "added Milk")
	mustRun(t, dir, "add", "Oat", "milk")

	out := mustRun(t, dir, "ls")
	assert.Contains(t, out, " 1. ☐ Milk")
	assert.Contains(t, out, " 2. ☐ Oat milk")
	assert.Contains(t, out, "Total 2")
}

func TestList_Empty(t *testing.T) {
	out := mustRun(t, t.TempDir(), "ls")
	assert.Contains(t, out, "no items")
}

func TestUsageErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"add without name", []string{"add"}, "usage: shoplist add <name...>"},
		{"add blank name", []string{"add", "  "}, "add: empty name"},
		{"toggle not a number", []string{"toggle", "x"}, "not a number: x"},
		{"toggle out of range", []string{"toggle", "3"}, "index out of range: have 0, got 3"},
		{"unknown subcommand", []string{"frobnicate"}, "unknown subcommand: frobnicate"},
		{"unknown flag", []string{"ls", "--nope"}, "unknown flag: --nope"},
		{"bad backend", []string{"--backend", "redis", "ls"}, "config:"},
		{"history out of range", []string{"history", "1"}, "index out of range"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := runCLI(t, dir, "", tc.args...)
			assert.Equal(t, 2, r.code)
			assert.Contains(t, r.stderr, tc.want)
			assert.Contains(t, r.stderr, "shoplist --help")
		})
	}
}

func TestToggleAndGroup(t *testing.T) {
	dir := t.TempDir()
	mustRun(t, dir, "add", "Milk")
	mustRun(t, dir, "add", "Bread")

	assert.Contains(t, mustRun(t, dir, "toggle", "1"), "checked Milk")

	out := mustRun(t, dir, "ls", "--group")
	assert.Contains(t, out, "To buy")
	assert.Contains(t, out, " 1. ☐ Bread")
	assert.Contains(t, out, "Purchased")
	assert.Contains(t, out, " 2. ☑ Milk")

	assert.Contains(t, mustRun(t, dir, "done", "2"), "unchecked Milk")
}

func TestEditRemoveMove(t *testing.T) {
	dir := t.TempDir()
	for _, n := range []string{"A", "B", "C"} {
		mustRun(t, dir, "add", n)
	}

	mustRun(t, dir, "edit", "2", "Brown", "bread")
	mustRun(t, dir, "mv", "1", "3")
	out := mustRun(t, dir, "ls")
	assert.Contains(t, out, " 1. ☐ Brown bread")
	assert.Contains(t, out, " 2. ☐ C")
	assert.Contains(t, out, " 3. ☐ A")

	mustRun(t, dir, "rm", "2")
	out = mustRun(t, dir, "ls")
	assert.NotContains(t, out, " C")
	assert.Contains(t, out, " 2. ☐ A")
}

func TestPrice(t *testing.T) {
	dir := t.TempDir()
	mustRun(t, dir, "add", "Milk")

	assert.Contains(t, mustRun(t, dir, "price", "1", "$2.5"), "Milk at $2.50")
	assert.Contains(t, mustRun(t, dir, "ls"), " 1. ☐ Milk  $2.50")

	r := runCLI(t, dir, "", "price", "--", "1", "-3")
	assert.Equal(t, 2, r.code)
	assert.Contains(t, r.stderr, "invalid amount")

	mustRun(t, dir, "price", "1", "-")
	assert.NotContains(t, mustRun(t, dir, "ls"), "$")
}

func TestSave(t *testing.T) {
	dir := t.TempDir()

	assert.Contains(t, mustRun(t, dir, "save"), "nothing to save")

	mustRun(t, dir, "add", "Milk")
	out := mustRun(t, dir, "save", "--title", "Weekly", "--total", "12.5")
	assert.Contains(t, out, `saved "Weekly" (1 items, $12.50)`)
	assert.Contains(t, mustRun(t, dir, "ls"), "no items")

	hist := mustRun(t, dir, "history")
	assert.Contains(t, hist, " 1. Weekly")
	assert.Contains(t, hist, "$12.50")
	assert.Contains(t, hist, "Lists 1")

	detail := mustRun(t, dir, "history", "1")
	assert.Contains(t, detail, "Weekly")
	assert.Contains(t, detail, " 1. ☐ Milk")
}

func TestSave_Defaults(t *testing.T) {
	dir := t.TempDir()
	mustRun(t, dir, "add", "Milk")
	mustRun(t, dir, "add", "Eggs")
	mustRun(t, dir, "price", "1", "1.10")
	mustRun(t, dir, "price", "2", "2.20")

	out := mustRun(t, dir, "save")
	assert.Contains(t, out, `saved "Purchase `)
	assert.Contains(t, out, "(2 items, $0.00)", "item prices never make up the total")
}

func TestSave_RejectsNegativeTotal(t *testing.T) {
	dir := t.TempDir()
	mustRun(t, dir, "add", "Milk")

	r := runCLI(t, dir, "", "save", "--total", "-1")
	assert.Equal(t, 2, r.code)
	assert.Contains(t, mustRun(t, dir, "ls"), "Milk")
}

func TestNew_AsksFirst(t *testing.T) {
	dir := t.TempDir()
	mustRun(t, dir, "add", "Milk")

	r := runCLI(t, dir, "n\n", "new")
	require.Equal(t, 0, r.code)
	assert.Contains(t, r.stdout, "Start a new list? 1 unsaved items will be discarded. [y/N]")
	assert.Contains(t, r.stdout, "cancelled")
	assert.Contains(t, mustRun(t, dir, "ls"), "Milk")

	r = runCLI(t, dir, "", "new")
	assert.Contains(t, r.stdout, "cancelled", "EOF declines")

	r = runCLI(t, dir, "yes\n", "new")
	assert.Contains(t, r.stdout, "new list started")
	assert.Contains(t, mustRun(t, dir, "ls"), "no items")
}

func TestDuplicateAndDelete(t *testing.T) {
	dir := t.TempDir()
	mustRun(t, dir, "add", "Milk")
	mustRun(t, dir, "add", "Bread")
	mustRun(t, dir, "save", "--title", "Weekly")

	assert.Contains(t, mustRun(t, dir, "dup", "1", "--yes"), "added 2 items")
	out := mustRun(t, dir, "ls")
	assert.Contains(t, out, " 1. ☐ Milk")
	assert.Contains(t, out, " 2. ☐ Bread")

	assert.Contains(t, mustRun(t, dir, "-y", "dup", "1"), "nothing new to add")

	r := runCLI(t, dir, "n\n", "delete", "1")
	assert.Contains(t, r.stdout, `Delete "Weekly" from the history?`)
	assert.Contains(t, mustRun(t, dir, "history"), "Weekly")

	assert.Contains(t, mustRun(t, dir, "delete", "1", "--yes"), "deleted Weekly")
	assert.Contains(t, mustRun(t, dir, "history"), "no saved lists")
}

func TestSQLiteBackend(t *testing.T) {
	dir := t.TempDir()
	mustRun(t, dir, "--backend", "sqlite", "add", "Milk")

	assert.Contains(t, mustRun(t, dir, "--backend", "sqlite", "ls"), "Milk")
	assert.FileExists(t, filepath.Join(dir, "shoplist.db"))
	assert.Contains(t, mustRun(t, dir, "ls"), "no items", "json backend has its own files")
}

func TestCorruptDataFails(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "history.json"), []byte("{oops"), 0o644))

	r := runCLI(t, dir, "", "ls")
	assert.Equal(t, 1, r.code)
	assert.Contains(t, r.stderr, "load lists")
}

func TestConfigCommand(t *testing.T) {
	dir := t.TempDir()

	out := mustRun(t, dir, "--theme", "mono", "config")
	assert.Contains(t, out, "backend: json")
	assert.Contains(t, out, "theme: mono")
	assert.NoFileExists(t, filepath.Join(dir, "config.yaml"))

	mustRun(t, dir, "--backend", "sqlite", "config", "--write")
	cfg, err := config.Load(filepath.Join(dir, "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Backend)
	assert.Equal(t, dir, cfg.DataDir)

	// The written file now picks the backend without the flag.
	mustRun(t, dir, "add", "Milk")
	assert.FileExists(t, filepath.Join(dir, "shoplist.db"))
}
