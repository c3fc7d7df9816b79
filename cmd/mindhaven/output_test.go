package main

import (
	"strings"
	"testing"
)

func TestColorize_NoColor(t *testing.T) {
	old := noColor
	defer func() { noColor = old }()

	noColor = true
	result := colorize(colorGreen, "test message")
	if strings.Contains(result, "\033") {
		t.Errorf("colorize with noColor=true should not contain ANSI codes, got %q", result)
	}
	if result != "test message" {
		t.Errorf("got %q, want plain text", result)
	}

	noColor = false
	result = colorize(colorGreen, "test message")
	if !strings.Contains(result, colorGreen) || !strings.Contains(result, colorReset) {
		t.Errorf("colorize with noColor=false should contain ANSI codes, got %q", result)
	}
}

func TestTruncateLine(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"short", 10, "short"},
		{"exactly ten", 11, "exactly ten"},
		{"a rather longer line of text", 10, "a rathe..."},
		{"line\nwith\nbreaks", 20, "line with breaks"},
	}
	for _, tt := range tests {
		if got := truncateLine(tt.in, tt.n); got != tt.want {
			t.Errorf("truncateLine(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}
