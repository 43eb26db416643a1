package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/studyplan/internal/timeutil"
	"golang.org/x/term"
)

// stdin is read by prompts; tests replace it
var stdin io.Reader = os.Stdin

// isInteractive reports whether both stdin and stdout are terminals.
func isInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// runProgram runs a bubbletea model to completion and returns the final model.
func runProgram(m tea.Model, opts ...tea.ProgramOption) (tea.Model, error) {
	p := tea.NewProgram(m, opts...)

	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("running interface: %w", err)
	}

	return final, nil
}

// promptConfirm asks the user for confirmation and returns true if they confirm
// prompt should include the question (e.g., "Delete this class? [y/N]: ")
func promptConfirm(w io.Writer, prompt string) bool {
	_, _ = fmt.Fprint(w, prompt)

	line, err := readLine(stdin)
	if err != nil {
		return false
	}

	response := strings.TrimSpace(line)

	return response == "y" || response == "Y"
}

// readPassword reads a password from the terminal without echoing
func readPassword(prompt string) (string, error) {
	_, _ = fmt.Fprint(os.Stderr, prompt)

	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		password, err := term.ReadPassword(int(f.Fd()))
		_, _ = fmt.Fprintln(os.Stderr) // New line after password input

		if err != nil {
			return "", err
		}

		return string(password), nil
	}

	// Fallback for non-terminal (piped input)
	line, err := readLine(stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	return line, nil
}

// readLine reads up to the next newline one byte at a time, so several
// prompts can share a piped stdin without a buffer swallowing later lines.
func readLine(r io.Reader) (string, error) {
	var (
		sb  strings.Builder
		buf [1]byte
	)

	for {
		n, err := r.Read(buf[:])
		if n == 1 {
			if buf[0] == '\n' {
				break
			}

			sb.WriteByte(buf[0])
		}

		if err != nil {
			if errors.Is(err, io.EOF) && sb.Len() > 0 {
				break
			}

			return "", err
		}
	}

	return strings.TrimSuffix(sb.String(), "\r"), nil
}

// readNewPassword asks for a password twice and enforces the minimum length.
func readNewPassword(minLen int) (string, error) {
	password, err := readPassword("Password: ")
	if err != nil {
		return "", err
	}

	if len(password) < minLen {
		return "", fmt.Errorf("password must be at least %d characters", minLen)
	}

	confirm, err := readPassword("Confirm password: ")
	if err != nil {
		return "", err
	}

	if password != confirm {
		return "", fmt.Errorf("passwords do not match")
	}

	return password, nil
}

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

// shortID shortens an ID for table output. Any unique prefix is accepted
// wherever an ID is expected.
func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}

	return id[:8]
}

// parseDate parses a --date flag value. Empty means today, and "yesterday"
// and "today" are accepted besides YYYY-MM-DD.
func parseDate(s string, now time.Time) (time.Time, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "today":
		return timeutil.Midnight(now), nil
	case "yesterday":
		return timeutil.Midnight(now).AddDate(0, 0, -1), nil
	}

	d, err := timeutil.ParseDateKey(strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", s)
	}

	return d, nil
}

// parseDays parses a comma separated list of weekdays. Empty means all.
func parseDays(s string) ([]timeutil.Weekday, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	var days []timeutil.Weekday

	for _, part := range strings.Split(s, ",") {
		wd, err := timeutil.ParseWeekday(part)
		if err != nil {
			return nil, err
		}

		days = append(days, wd)
	}

	return days, nil
}
