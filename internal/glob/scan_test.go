package glob

import "testing"

func TestLocateOpenBrace(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		flags   Flag
		want    int
		wantOK  bool
	}{
		{name: "leading brace", pattern: "{a,b}", want: 0, wantOK: true},
		{name: "after prefix", pattern: "dir/{a,b}", want: 4, wantOK: true},
		{name: "no brace", pattern: "dir/*.txt", wantOK: false},
		{name: "empty pattern", pattern: "", wantOK: false},
		{name: "escaped brace skipped", pattern: `\{a,b}`, wantOK: false},
		{name: "escaped then real", pattern: `\{x{a,b}`, want: 3, wantOK: true},
		{name: "escaped backslash before brace", pattern: `\\{a}`, want: 2, wantOK: true},
		{name: "trailing backslash", pattern: `abc\`, wantOK: false},
		{name: "noescape finds escaped brace", pattern: `\{a,b}`, flags: NoEscape, want: 1, wantOK: true},
		{name: "noescape no brace", pattern: `a\b`, flags: NoEscape, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := locateOpenBrace(tt.pattern, tt.flags)
			if ok != tt.wantOK {
				t.Fatalf("locateOpenBrace(%q) ok = %v, want %v", tt.pattern, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("locateOpenBrace(%q) = %d, want %d", tt.pattern, got, tt.want)
			}
		})
	}
}

func TestNextBoundary(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		start   int
		flags   Flag
		want    int
		wantOK  bool
	}{
		{name: "comma", pattern: "{a,b}", start: 1, want: 2, wantOK: true},
		{name: "closing brace", pattern: "{a,b}", start: 3, want: 4, wantOK: true},
		{name: "empty alternative", pattern: "{,b}", start: 1, want: 1, wantOK: true},
		{name: "nested group is opaque", pattern: "{{a,b}c,d}", start: 1, want: 7, wantOK: true},
		{name: "nested group before close", pattern: "{x{a,b}}", start: 1, want: 7, wantOK: true},
		{name: "escaped comma", pattern: `{a\,b,c}`, start: 1, want: 5, wantOK: true},
		{name: "escaped closing brace", pattern: `{a\}b}`, start: 1, want: 5, wantOK: true},
		{name: "escaped opening brace", pattern: `{a\{b,c}`, start: 1, want: 5, wantOK: true},
		{name: "unterminated", pattern: "{a", start: 1, wantOK: false},
		{name: "unterminated nested", pattern: "{a{b,c}", start: 1, wantOK: false},
		{name: "trailing backslash", pattern: `{a\`, start: 1, wantOK: false},
		{name: "noescape comma after backslash", pattern: `{a\,b}`, start: 1, flags: NoEscape, want: 3, wantOK: true},
		{name: "start at end", pattern: "{a}", start: 3, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := nextBoundary(tt.pattern, tt.start, tt.flags)
			if ok != tt.wantOK {
				t.Fatalf("nextBoundary(%q, %d) ok = %v, want %v", tt.pattern, tt.start, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("nextBoundary(%q, %d) = %d, want %d", tt.pattern, tt.start, got, tt.want)
			}
		})
	}
}
