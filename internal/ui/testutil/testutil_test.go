package testutil

import (
	"testing"
)

func TestStripANSI(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "no ansi codes",
			input: "hello world",
			want:  "hello world",
		},
		{
			name:  "with color codes",
			input: "\x1b[31mred\x1b[0m text",
			want:  "red text",
		},
		{
			name:  "with multiple codes",
			input: "\x1b[1;32mbold green\x1b[0m",
			want:  "bold green",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StripANSI(tt.input)
			if got != tt.want {
				t.Errorf("StripANSI(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFindLine(t *testing.T) {
	frame := "first\n\x1b[31msecond\x1b[0m line\nthird"

	if got := FindLine(frame, "second"); got != "second line" {
		t.Errorf("FindLine() = %q, want %q", got, "second line")
	}
	if got := FindLine(frame, "missing"); got != "" {
		t.Errorf("FindLine() = %q, want empty", got)
	}
	if !ContainsLine(frame, "third") {
		t.Error("ContainsLine() = false, want true")
	}
}

func TestFindCell(t *testing.T) {
	frame := "abc\n  \x1b[1mCancel\x1b[0m  Delete"

	x, y, ok := FindCell(frame, "Delete")
	if !ok {
		t.Fatal("FindCell() did not find Delete")
	}
	if x != 10 || y != 1 {
		t.Errorf("FindCell() = (%d, %d), want (10, 1)", x, y)
	}

	if _, _, ok := FindCell(frame, "nope"); ok {
		t.Error("FindCell() found a missing string")
	}
}

func TestFindCell_WideRunes(t *testing.T) {
	x, _, ok := FindCell("日本 ok", "ok")
	if !ok || x != 5 {
		t.Errorf("FindCell() x = %d ok = %v, want 5 true", x, ok)
	}
}

func TestSplitLines(t *testing.T) {
	input := "one\ntwo\nthree\n\n"
	got := SplitLines(input)

	if len(got) != 3 {
		t.Errorf("SplitLines() returned %d lines, want 3", len(got))
	}
	if got[0] != "one" || got[1] != "two" || got[2] != "three" {
		t.Errorf("SplitLines() = %v, want [one two three]", got)
	}
}

func TestAssertContains(t *testing.T) {
	output := "hello world"

	if msg := AssertContains(output, "world"); msg != "" {
		t.Errorf("AssertContains should pass: %s", msg)
	}

	if msg := AssertContains(output, "missing"); msg == "" {
		t.Error("AssertContains should fail for missing substring")
	}
}

func TestAssertNotContains(t *testing.T) {
	output := "hello world"

	if msg := AssertNotContains(output, "missing"); msg != "" {
		t.Errorf("AssertNotContains should pass: %s", msg)
	}

	if msg := AssertNotContains(output, "world"); msg == "" {
		t.Error("AssertNotContains should fail for present substring")
	}
}
