package main

import "testing"

func TestTruncateString(t *testing.T) {
	tests := []struct {
		in     string
		maxLen int
		want   string
	}{
		{"short", 10, "short"},
		{"exactly ten", 11, "exactly ten"},
		{"a rather long node label", 10, "a rathe..."},
	}
	for _, tt := range tests {
		if got := truncateString(tt.in, tt.maxLen); got != tt.want {
			t.Errorf("truncateString(%q, %d) = %q, want %q", tt.in, tt.maxLen, got, tt.want)
		}
	}
}

func TestWrapText(t *testing.T) {
	short := "fits on one line"
	if got := wrapText(short, 60, "  "); got != short {
		t.Errorf("wrapText should not touch short text, got %q", got)
	}

	long := "one two three four five six seven eight nine ten"
	got := wrapText(long, 20, "    ")
	if got == long {
		t.Error("wrapText should wrap long text")
	}
	if want := "one two three four\n    five six seven eight\n    nine ten"; got != want {
		t.Errorf("wrapText = %q, want %q", got, want)
	}
}
