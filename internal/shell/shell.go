// Package shell wraps the handful of subprocess and filesystem operations the
// build utilities are made of: run a command to completion while streaming its
// output, check that a path or command exists, remove things, copy things.
package shell

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/fatih/color"
)

var (
	commandColor = color.New(color.FgBlue)
	commandTag   = color.New(color.FgBlue).Sprint("RUNNING COMMAND")
)

// Run executes a command and waits for it to finish, echoing its combined
// stdout+stderr live between OUTPUT rails while also capturing it. The captured
// output (minus one trailing newline) is returned. A non-zero exit status is
// reported as an error naming the exit code.
func Run(name string, args ...string) (string, error) {
	cmd := exec.Command(name, args...)
	return run(cmd, displayCmd(cmd.Args), true)
}

// RunQuiet is Run without echoing the command's output. Used for commands whose
// output is data to parse rather than progress to show (e.g. `cargo metadata`).
func RunQuiet(name string, args ...string) (string, error) {
	cmd := exec.Command(name, args...)
	return run(cmd, displayCmd(cmd.Args), false)
}

// RunShell runs a user-supplied command line through the system shell
// (cmd.exe on Windows, sh everywhere else).
func RunShell(line string) (string, error) {
	var cmd *exec.Cmd
	if runtime.GOOS == "windows" {
		cmd = exec.Command("cmd", "/C", line)
	} else {
		cmd = exec.Command("sh", "-c", line)
	}
	return run(cmd, commandColor.Sprint(line), true)
}

// Start launches a command without waiting for it to finish.
func Start(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	fmt.Printf("%s: `%s`\n", commandTag, displayCmd(cmd.Args))
	return cmd.Start()
}

func run(cmd *exec.Cmd, display string, echo bool) (string, error) {
	fmt.Printf("%s: `%s`\n", commandTag, display)

	var buf bytes.Buffer
	var sink io.Writer = &buf
	if echo {
		fmt.Println(commandColor.Sprint(rail(" OUTPUT ")))
		sink = io.MultiWriter(&buf, os.Stdout)
	}
	// Combine stderr into stdout so the caller sees everything in order.
	cmd.Stdout = sink
	cmd.Stderr = sink

	err := cmd.Run()
	if echo {
		fmt.Println(commandColor.Sprint(rail("")))
	}

	captured := strings.TrimSuffix(buf.String(), "\n")
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return captured, fmt.Errorf("`%s` failed with exit code %d", display, exitErr.ExitCode())
		}
		return captured, fmt.Errorf("`%s` failed: %w", display, err)
	}
	return captured, nil
}

// rail draws an 80-column divider with label centered in it.
func rail(label string) string {
	pad := 80 - len(label)
	if pad < 0 {
		pad = 0
	}
	left := pad / 2
	return strings.Repeat("~", left) + label + strings.Repeat("~", pad-left)
}

// displayCmd joins command arguments for display, naively double-quoting
// arguments that contain spaces and highlighting the executable's file name.
func displayCmd(args []string) string {
	quoted := make([]string, len(args))
	for i, arg := range args {
		if strings.ContainsRune(arg, ' ') {
			arg = `"` + arg + `"`
		}
		quoted[i] = arg
	}

	// Highlight only the file name portion of the executable path.
	head := quoted[0]
	nameAt := strings.LastIndexAny(head, `/\`) + 1
	quoted[0] = head[:nameAt] + commandColor.Sprint(head[nameAt:])

	return strings.Join(quoted, " ")
}

// CommandExists reports whether cmd can be found on the PATH or is itself an
// existing file path.
func CommandExists(cmd string) bool {
	if _, err := exec.LookPath(cmd); err == nil {
		return true
	}
	return PathExists(cmd)
}

// PathExists reports whether anything exists at path.
func PathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// FileExists reports whether a regular file exists at path.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// DirExists reports whether a directory exists at path.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// RemovePath removes a file or a directory and its contents. It reports
// whether anything existed at the path to begin with.
func RemovePath(path string) (bool, error) {
	if !PathExists(path) {
		return false, nil
	}
	if err := os.RemoveAll(path); err != nil {
		return true, fmt.Errorf("failed to remove %s: %w", path, err)
	}
	return true, nil
}

// CopyDirFiles copies the regular files directly inside srcDir (non-recursive)
// into dstDir. When extFilter is non-empty only files with that extension are
// copied. The number of files copied is returned.
func CopyDirFiles(srcDir, dstDir, extFilter string) (int, error) {
	if !DirExists(srcDir) {
		return 0, fmt.Errorf("couldn't find directory at %s", srcDir)
	}
	if extFilter != "" && !strings.HasPrefix(extFilter, ".") {
		extFilter = "." + extFilter
	}

	entries, err := os.ReadDir(srcDir)
	if err != nil {
		return 0, fmt.Errorf("failed to read %s: %w", srcDir, err)
	}

	copied := 0
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		if extFilter != "" && !strings.HasSuffix(entry.Name(), extFilter) {
			continue
		}
		src := filepath.Join(srcDir, entry.Name())
		if err := CopyFile(src, filepath.Join(dstDir, entry.Name())); err != nil {
			return copied, err
		}
		copied++
	}
	return copied, nil
}

// CopyFile copies a single file from src to dst, preserving its permission
// bits and creating any missing directories in the destination path.
func CopyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open source failed: %w", err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return fmt.Errorf("stat source failed: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("mkdir failed: %w", err)
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("create target failed: %w", err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copy failed: %w", err)
	}
	return out.Close()
}

// Arch returns the normalized machine architecture ("x86_64" or "arm64"),
// or "" when the host architecture isn't one the build supports.
func Arch() string {
	switch runtime.GOARCH {
	case "amd64":
		return "x86_64"
	case "arm64":
		return "arm64"
	}
	return ""
}
