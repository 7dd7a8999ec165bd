package ui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "░░░░░░░░░░   0%", ProgressBar(0, 0, 10))
	assert.Equal(t, "█████░░░░░  50%", ProgressBar(1, 2, 10))
	assert.Equal(t, "██████████ 100%", ProgressBar(3, 3, 10))
	assert.Equal(t, "█████ 100%", ProgressBar(3, 3, 1), "width is clamped to 5")
}

func TestPanel_Mono(t *testing.T) {
	SetTheme("mono")
	defer SetTheme("classic")

	var buf bytes.Buffer
	Panel(&buf, []string{"ab", "abcd"})

	want := strings.Join([]string{
		"+------+",
		"| ab   |",
		"| abcd |",
		"+------+",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestC_Disabled(t *testing.T) {
	SetColorForcing(true, true)
	defer SetColorForcing(false, false)
	assert.Equal(t, "x", C(fgRed, "x"))
}

func TestC_Forced(t *testing.T) {
	SetColorForcing(true, false)
	defer SetColorForcing(false, false)
	assert.Equal(t, fgRed+"x"+reset, C(fgRed, "x"))
}

func TestMessages(t *testing.T) {
	SetColorForcing(false, true)
	defer SetColorForcing(false, false)

	var buf bytes.Buffer
	OK(&buf, "added")
	Fail(&buf, "nope")
	Info(&buf, "fyi")
	assert.Equal(t, "✔ added\n✖ nope\n• fyi\n", buf.String())
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, "$42.50", Money(42.5))
	assert.Equal(t, "$0.00", Money(0))

	d := time.Date(2026, 3, 7, 12, 0, 0, 0, time.Local)
	assert.Equal(t, "07/03/2026", Date(d))

	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "abcdefg...", Truncate("abcdefghijklmnop", 10))
	assert.Equal(t, "ñandú", Truncate("ñandú", 5))
}

func TestSetTheme_UnknownFallsBackToClassic(t *testing.T) {
	SetTheme("pink")
	assert.Equal(t, "classic", Current().Name)
}
