package diagnostics

import (
	"strings"
	"unicode/utf8"
)

// FailedLabel marks the pytest short summary lines of failed tests.
const FailedLabel = "FAILED"

// FilterLines keeps the lines of output that contain label, each followed by
// a single newline.
func FilterLines(label, output string) string {
	var b strings.Builder
	for _, line := range splitLines(output) {
		if strings.Contains(line, label) {
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	return b.String()
}

// splitLines splits on the same line boundaries as Python's str.splitlines
// without producing a trailing empty line.
func splitLines(s string) []string {
	var lines []string
	start := 0
	for i, r := range s {
		if i < start {
			continue
		}
		switch r {
		case '\n', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
			lines = append(lines, s[start:i])
			start = i + utf8.RuneLen(r)
		case '\r':
			lines = append(lines, s[start:i])
			start = i + 1
			if start < len(s) && s[start] == '\n' {
				start++
			}
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}
