// Package testutil provides helpers for testing overlay layers and
// inspecting rendered frames.
package testutil

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// StripANSI removes escape sequences so frames can be compared as text.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// ContainsLine reports whether any line of the stripped frame contains substr.
func ContainsLine(frame, substr string) bool {
	return FindLine(frame, substr) != ""
}

// FindLine returns the first stripped line containing substr, or "".
func FindLine(frame, substr string) string {
	for line := range strings.SplitSeq(StripANSI(frame), "\n") {
		if strings.Contains(line, substr) {
			return line
		}
	}
	return ""
}

// FindCell returns the screen position of the first occurrence of substr in
// the stripped frame, measured in cells. ok is false when it is absent.
func FindCell(frame, substr string) (x, y int, ok bool) {
	for row, line := range strings.Split(StripANSI(frame), "\n") {
		if i := strings.Index(line, substr); i >= 0 {
			return ansi.StringWidth(line[:i]), row, true
		}
	}
	return 0, 0, false
}

// SplitLines splits a frame into lines, dropping trailing blank lines.
func SplitLines(frame string) []string {
	lines := strings.Split(frame, "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// AssertContains returns a failure message if the stripped frame lacks
// substr, or "" if it is present.
func AssertContains(frame, substr string) string {
	if !strings.Contains(StripANSI(frame), substr) {
		return "expected output to contain " + substr
	}
	return ""
}

// AssertNotContains returns a failure message if the stripped frame
// contains substr, or "" if it is absent.
func AssertNotContains(frame, substr string) string {
	if strings.Contains(StripANSI(frame), substr) {
		return "expected output to NOT contain " + substr
	}
	return ""
}
