package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

var stdin = bufio.NewReader(os.Stdin)

// promptLine reads one line of input, trimmed.
func promptLine(label string) (string, error) {
	fmt.Printf("%s: ", label)
	line, err := stdin.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// promptPassword reads a secret without echo when stdin is a terminal,
// falling back to a plain line read otherwise (pipes, tests).
func promptPassword(label string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return promptLine(label)
	}
	fmt.Printf("%s: ", label)
	secret, err := term.ReadPassword(fd)
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimSpace(string(secret)), nil
}

// promptOr returns preset when non-empty, otherwise prompts.
func promptOr(preset, label string) (string, error) {
	if preset != "" {
		return preset, nil
	}
	return promptLine(label)
}

// promptPasswordOr returns preset when non-empty, otherwise prompts
// without echo.
func promptPasswordOr(preset, label string) (string, error) {
	if preset != "" {
		return preset, nil
	}
	return promptPassword(label)
}
