package main

import (
	"strings"
	"testing"
	"unicode/utf8"
)

// #region truncate-tests

func TestTruncate(t *testing.T) {
	cases := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{"short stays whole", "hello", 10, "hello"},
		{"exact fits", "hello", 5, "hello"},
		{"ascii cut", "hello world", 6, "hello…"},
		{"multibyte near cut", "calm — focused gaze", 7, "calm —…"},
		{"empty", "", 4, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := truncate(tc.in, tc.n)
			if got != tc.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tc.in, tc.n, got, tc.want)
			}
			if !utf8.ValidString(got) {
				t.Errorf("truncate(%q, %d) produced invalid UTF-8: %q", tc.in, tc.n, got)
			}
		})
	}
}

func TestTruncate_NeverSplitsRunes(t *testing.T) {
	s := "Peak analytical state — focused gaze → calm signals…"
	for n := 2; n <= len(s); n++ {
		got := truncate(s, n)
		if !utf8.ValidString(got) {
			t.Fatalf("n=%d: invalid UTF-8: %q", n, got)
		}
		if strings.Contains(got, "�") {
			t.Fatalf("n=%d: replacement rune in %q", n, got)
		}
	}
}

// #endregion truncate-tests
