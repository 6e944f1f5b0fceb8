// Package ui contains the confirmation and "manual action needed" prompts the
// setup and package commands use whenever they can't safely decide on their own.
package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"buildtool/internal/logger"
	"buildtool/internal/shell"
)

var (
	confirmTag = color.New(color.FgMagenta).Sprint("CONFIRM")
	actionTag  = color.New(color.FgMagenta, color.Bold).Sprint("MANUAL ACTION NEEDED")
	yesHint    = color.New(color.FgMagenta).Sprint("y")
	enterHint  = color.New(color.FgMagenta, color.Bold).Sprint("ENTER")
)

// autoAnswer, when non-empty, is substituted for every Confirm response
// instead of prompting the user. Set from the -y/-n command line flags so
// the tools can run unattended.
var autoAnswer string

// input is the prompt source. Buffered once so consecutive prompts don't lose
// typed-ahead bytes. Tests swap it for a canned reader.
var input = bufio.NewReader(os.Stdin)

// out is where prompts are written. color.Output is stdout with the same
// escape handling the colored tags get. Tests swap it for a buffer.
var out io.Writer = color.Output

// SetAutoAnswer makes Confirm reply with answer ("y" or "n") instead of
// prompting. An empty string restores interactive prompting.
func SetAutoAnswer(answer string) {
	autoAnswer = answer
}

// Confirm prints a message and awaits a "yes"/"no" from the user.
// Anything other than "y" or "yes" (case-insensitive) counts as no.
func Confirm(format string, a ...any) bool {
	fmt.Fprintf(out, "%s: %s (%s/n): ", confirmTag, fmt.Sprintf(format, a...), yesHint)

	var response string
	if autoAnswer == "" {
		response = strings.ToLower(strings.TrimSpace(readLine()))
	} else {
		response = autoAnswer
		fmt.Fprintf(out, "%s (auto)\n", autoAnswer)
	}

	return response == "y" || response == "yes"
}

// ActionNeeded prints a message and waits for the user to hit enter, allowing
// them to optionally type a shell command to run instead.
func ActionNeeded(format string, a ...any) {
	fmt.Fprintf(out, "%s: %s (press [%s] if you have completed the action manually"+
		" or enter a shell command to run): ",
		actionTag, fmt.Sprintf(format, a...), enterHint)

	response := strings.TrimSpace(readLine())
	// When output isn't a terminal there's no echo of what was typed, so the
	// transcript would otherwise be missing the response.
	if color.NoColor {
		fmt.Fprintf(out, "%s (auto)\n", response)
	}
	if response == "" {
		return
	}
	if _, err := shell.RunShell(response); err != nil {
		logger.Fatal("%v", err)
	}
}

// readLine reads one line of input, without the trailing newline.
// EOF (e.g. a closed stdin in CI) is treated as an empty response.
func readLine() string {
	line, err := input.ReadString('\n')
	if err != nil && line == "" {
		return ""
	}
	return strings.TrimRight(line, "\r\n")
}
