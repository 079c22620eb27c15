// Package source extracts the source code of failing test functions from
// Python test files.
package source

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"
)

// testFunctionPattern matches test function definitions at any indentation,
// so methods of test classes are found too.
var testFunctionPattern = regexp.MustCompile(`(?m)^[ \t]*(?:async[ \t]+)?def[ \t]+(test\w*)[ \t]*\(`)

// Parser reads Python test files
type Parser struct{}

// NewParser creates a new Parser
func NewParser() *Parser {
	return &Parser{}
}

// FindTestFunctions lists the test function names defined in a file, sorted
// and without duplicates.
func (p *Parser) FindTestFunctions(filePath string) ([]string, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading file %s: %w", filePath, err)
	}

	seen := make(map[string]bool)
	var names []string
	for _, match := range testFunctionPattern.FindAllStringSubmatch(string(content), -1) {
		if !seen[match[1]] {
			seen[match[1]] = true
			names = append(names, match[1])
		}
	}
	sort.Strings(names)
	return names, nil
}

// ErrFunctionNotFound is returned by Extract when the file has no definition
// of the requested function.
type ErrFunctionNotFound struct {
	Function string
	File     string
}

func (e *ErrFunctionNotFound) Error() string {
	return fmt.Sprintf("function %s not found in %s", e.Function, e.File)
}

// Extract returns the source of the first definition of function in
// filePath, decorators included, ending with exactly one newline.
func (p *Parser) Extract(filePath, function string) (string, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("error reading file %s: %w", filePath, err)
	}

	lines := strings.Split(strings.ReplaceAll(string(content), "\r\n", "\n"), "\n")
	def := regexp.MustCompile(`^([ \t]*)(?:async[ \t]+)?def[ \t]+` + regexp.QuoteMeta(function) + `[ \t]*\(`)

	start := -1
	indent := 0
	for i, line := range lines {
		if m := def.FindStringSubmatch(line); m != nil {
			start = i
			indent = len(m[1])
			break
		}
	}
	if start < 0 {
		return "", &ErrFunctionNotFound{Function: function, File: filePath}
	}

	// The signature may span several lines; it ends when its parentheses balance.
	end := start
	depth := 0
	for ; end < len(lines); end++ {
		depth += strings.Count(lines[end], "(") - strings.Count(lines[end], ")")
		if depth <= 0 {
			break
		}
	}
	if end >= len(lines) {
		end = len(lines) - 1
	}

	quote := ""
	for i := start; i <= end; i++ {
		quote = tripleQuoteState(lines[i], quote)
	}
	for end+1 < len(lines) {
		next := lines[end+1]
		if quote == "" && strings.TrimSpace(next) != "" && indentOf(next) <= indent {
			break
		}
		quote = tripleQuoteState(next, quote)
		end++
	}

	// Walk up through decorators. A multi-line decorator is only taken once
	// its opening line balances the brackets seen below it.
	depth = 0
decorators:
	for i := start - 1; i >= 0; i-- {
		line := lines[i]
		trimmed := strings.TrimSpace(line)
		lineIndent := indentOf(line)
		switch {
		case trimmed == "" || lineIndent > indent:
		case lineIndent == indent && strings.HasPrefix(trimmed, "@"):
		case lineIndent == indent && strings.ContainsAny(trimmed[:1], ")]}"):
		default:
			break decorators
		}
		depth += strings.Count(line, ")") + strings.Count(line, "]") + strings.Count(line, "}") -
			strings.Count(line, "(") - strings.Count(line, "[") - strings.Count(line, "{")
		if depth == 0 && lineIndent == indent && strings.HasPrefix(trimmed, "@") {
			start = i
		}
	}

	body := lines[start : end+1]
	for len(body) > 0 && strings.TrimSpace(body[len(body)-1]) == "" {
		body = body[:len(body)-1]
	}
	return strings.Join(body, "\n") + "\n", nil
}

func indentOf(line string) int {
	return len(line) - len(strings.TrimLeft(line, " \t"))
}

// tripleQuoteState returns the triple-quote delimiter still open after line,
// given the one open before it.
func tripleQuoteState(line, open string) string {
	for {
		if open != "" {
			idx := strings.Index(line, open)
			if idx < 0 {
				return open
			}
			line = line[idx+3:]
			open = ""
			continue
		}
		if hash := strings.Index(line, "#"); hash >= 0 && !strings.ContainsAny(line[:hash], "\"'") {
			line = line[:hash]
		}
		dq, sq := strings.Index(line, `"""`), strings.Index(line, "'''")
		switch {
		case dq < 0 && sq < 0:
			return ""
		case sq < 0 || (dq >= 0 && dq < sq):
			open, line = `"""`, line[dq+3:]
		default:
			open, line = "'''", line[sq+3:]
		}
	}
}
