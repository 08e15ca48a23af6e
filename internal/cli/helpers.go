package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Flag state shared by every command, installed once from the root
// command's persistent flags.
var (
	quiet       bool
	noColor     bool
	skipConfirm bool
)

// SetGlobalFlags installs the persistent flag values for this process.
func SetGlobalFlags(quietFlag, noColorFlag, yesFlag bool) {
	quiet = quietFlag
	noColor = noColorFlag
	skipConfirm = yesFlag
}

// Confirm asks a yes/no question on stdin. The --yes flag answers every
// prompt affirmatively without reading input.
func Confirm(prompt string, defaultYes bool) (bool, error) {
	if skipConfirm {
		return true, nil
	}

	if defaultYes {
		fmt.Print(prompt + " [Y/n]: ")
	} else {
		fmt.Print(prompt + " [y/N]: ")
	}

	answer, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false, err
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "":
		return defaultYes, nil
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// PrintSuccess reports a completed action on stdout; silenced by --quiet.
func PrintSuccess(format string, args ...interface{}) {
	if quiet {
		return
	}
	if noColor {
		fmt.Printf("OK: "+format+"\n", args...)
	} else {
		fmt.Printf("✓ "+format+"\n", args...)
	}
}

// PrintInfo reports progress on stdout; silenced by --quiet.
func PrintInfo(format string, args ...interface{}) {
	if quiet {
		return
	}
	if noColor {
		fmt.Printf("INFO: "+format+"\n", args...)
	} else {
		fmt.Printf("ℹ "+format+"\n", args...)
	}
}

// PrintError reports a failure on stderr. Errors print even under
// --quiet; the flag only suppresses chatter.
func PrintError(format string, args ...interface{}) {
	if noColor {
		fmt.Fprintf(os.Stderr, "ERROR: "+format+"\n", args...)
	} else {
		fmt.Fprintf(os.Stderr, "✗ "+format+"\n", args...)
	}
}
