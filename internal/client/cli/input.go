package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/dmitrijs2005/wastetrack/internal/client/tui"
	"github.com/dmitrijs2005/wastetrack/internal/common"
)

// readPassword and isTerminal are test seams for golang.org/x/term.
var (
	readPassword = term.ReadPassword
	isTerminal   = term.IsTerminal
)

// getSimpleText, getPassword and runPicker are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	runPicker     = func(title string, items []tui.Item, multi bool, preselected ...string) ([]string, bool, error) {
		return tui.Run(os.Stdin, os.Stdout, title, items, multi, preselected...)
	}
)

// GetSimpleText prints a prompt to w and reads a single line of input from reader.
// The trailing newline is trimmed. If EOF occurs after some input was read,
// the partial line is returned.
//
// Example prompt format:
//
//	Prompt text
//	> _
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetPassword prints a password prompt to w and reads a password without
// echo when stdin is a terminal. Otherwise (piped input) the password is
// read as a plain line from reader. The terminal buffer is zeroed once the
// password has been copied out of it.
func GetPassword(reader *bufio.Reader, w io.Writer) (string, error) {
	fd := int(os.Stdin.Fd())
	if !isTerminal(fd) {
		return GetSimpleText(reader, "Contraseña", w)
	}

	if _, err := fmt.Fprint(w, "Contraseña: "); err != nil {
		return "", err
	}
	pw, err := readPassword(fd)
	defer common.WipeByteArray(pw)
	fmt.Fprintln(w)
	if err != nil {
		return "", err
	}
	return string(pw), nil
}

// Confirm asks a yes/no question; anything but y/yes/s/si/sí is a no.
func Confirm(reader *bufio.Reader, prompt string, w io.Writer) (bool, error) {
	answer, err := getSimpleText(reader, prompt+" [y/N]", w)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes", "s", "si", "sí":
		return true, nil
	default:
		return false, nil
	}
}

// PromptPick is the line-mode fallback of the picker: it prints a numbered
// list and reads one number (single) or a comma separated list (multi).
// An empty answer keeps preselected in multi mode and cancels in single
// mode.
func PromptPick(reader *bufio.Reader, w io.Writer, title string, items []tui.Item, multi bool, preselected ...string) ([]string, bool, error) {
	fmt.Fprintln(w, title)
	for i, it := range items {
		fmt.Fprintf(w, "%3d) %s\n", i+1, it.Label)
	}

	prompt := "Número"
	if multi {
		prompt = "Números separados por coma"
	}
	answer, err := getSimpleText(reader, prompt, w)
	if err != nil {
		return nil, false, err
	}
	if answer == "" {
		if multi && len(preselected) > 0 {
			return preselected, true, nil
		}
		return nil, false, nil
	}

	var ids []string
	seen := make(map[int]bool)
	for _, part := range strings.Split(answer, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 1 || n > len(items) {
			return nil, false, fmt.Errorf("opción inválida %q", strings.TrimSpace(part))
		}
		if seen[n] {
			continue
		}
		seen[n] = true
		ids = append(ids, items[n-1].ID)
		if !multi {
			break
		}
	}
	return ids, true, nil
}
