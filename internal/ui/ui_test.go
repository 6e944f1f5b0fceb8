package ui

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
)

// feed replaces the prompt input for the duration of a test.
func feed(t *testing.T, lines string) {
	t.Helper()
	old := input
	input = bufio.NewReader(strings.NewReader(lines))
	t.Cleanup(func() { input = old })
}

func TestConfirmReadsAnswer(t *testing.T) {
	cases := []struct {
		line string
		want bool
	}{
		{"y\n", true},
		{"yes\n", true},
		{"  YES  \n", true},
		{"n\n", false},
		{"no\n", false},
		{"\n", false},
		{"whatever\n", false},
		{"", false}, // closed stdin
	}
	for _, c := range cases {
		feed(t, c.line)
		if got := Confirm("proceed?"); got != c.want {
			t.Errorf("Confirm with input %q = %v, want %v", c.line, got, c.want)
		}
	}
}

func TestConfirmAutoAnswer(t *testing.T) {
	t.Cleanup(func() { SetAutoAnswer("") })

	// No input is consumed when an auto-answer is set.
	feed(t, "")

	SetAutoAnswer("y")
	if !Confirm("proceed?") {
		t.Error("auto-answer y should confirm")
	}
	SetAutoAnswer("n")
	if Confirm("proceed?") {
		t.Error("auto-answer n should deny")
	}
}

func TestActionNeededEnterOnly(t *testing.T) {
	// Plain ENTER means the user handled it manually; nothing should run.
	feed(t, "\n")
	ActionNeeded("do the thing")
}

func TestActionNeededEchoesResponseWhenPiped(t *testing.T) {
	feed(t, "\n")

	var buf bytes.Buffer
	oldOut, oldNoColor := out, color.NoColor
	out, color.NoColor = &buf, true
	t.Cleanup(func() { out, color.NoColor = oldOut, oldNoColor })

	ActionNeeded("do the thing")

	// Without a terminal echoing keystrokes, the response has to be written
	// back so a captured transcript shows what happened.
	if !strings.Contains(buf.String(), "(auto)") {
		t.Errorf("piped transcript missing the echoed response: %q", buf.String())
	}
}
