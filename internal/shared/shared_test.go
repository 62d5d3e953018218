package shared

import (
	"strings"
	"testing"
)

func TestSafeFilename(t *testing.T) {
	t.Run("empty input returns fallback", func(t *testing.T) {
		if got := SafeFilename("", "_", 200); got != FallbackFilename {
			t.Errorf("expected %q, got %q", FallbackFilename, got)
		}
	})

	t.Run("all illegal characters returns fallback", func(t *testing.T) {
		if got := SafeFilename(`<>:"/\|?*`, "_", 200); got == "" {
			t.Error("expected non-empty result")
		}
		// Replacement chars survive, but an input of only-dots-and-spaces
		// after replacement with "" must fall back.
		if got := SafeFilename("...   ", "_", 200); got != FallbackFilename {
			t.Errorf("expected %q, got %q", FallbackFilename, got)
		}
		if got := SafeFilename(`<>|`, "", 200); got != FallbackFilename {
			t.Errorf("expected %q, got %q", FallbackFilename, got)
		}
	})

	t.Run("replaces illegal characters", func(t *testing.T) {
		got := SafeFilename(`My "Awesome" Playlist: Part 1`, "_", 200)
		if got != "My _Awesome_ Playlist_ Part 1" {
			t.Errorf("unexpected result: %q", got)
		}

		got = SafeFilename(`Song\with/illegal?chars*`, "_", 200)
		if got != "Song_with_illegal_chars_" {
			t.Errorf("unexpected result: %q", got)
		}
	})

	t.Run("output never contains illegal characters", func(t *testing.T) {
		inputs := []string{
			"normal name",
			`a<b>c:d"e/f\g|h?i*j`,
			"control\x00chars\x1fhere",
			"  spaced   out  ",
			"..dotted..",
		}
		for _, input := range inputs {
			got := SafeFilename(input, "_", 200)
			if strings.ContainsAny(got, `<>:"/\|?*`) {
				t.Errorf("illegal characters in %q", got)
			}
			for _, r := range got {
				if r < 0x20 {
					t.Errorf("control character in %q", got)
				}
			}
		}
	})

	t.Run("collapses whitespace and trims dots", func(t *testing.T) {
		if got := SafeFilename("  hello   world  ", "_", 200); got != "hello world" {
			t.Errorf("unexpected result: %q", got)
		}
		if got := SafeFilename("..name..", "_", 200); got != "name" {
			t.Errorf("unexpected result: %q", got)
		}
	})

	t.Run("truncates to max length", func(t *testing.T) {
		long := strings.Repeat("a", 300)
		got := SafeFilename(long, "_", 200)
		if len(got) != 200 {
			t.Errorf("expected length 200, got %d", len(got))
		}
	})

	t.Run("truncation preserves extension", func(t *testing.T) {
		long := strings.Repeat("a", 300) + ".zip"
		got := SafeFilename(long, "_", 200)
		if len(got) > 200 {
			t.Errorf("expected length <= 200, got %d", len(got))
		}
		if !strings.HasSuffix(got, ".zip") {
			t.Errorf("expected .zip suffix, got %q", got)
		}
	})

	t.Run("SafeTitle applies defaults", func(t *testing.T) {
		if got := SafeTitle("My: Playlist"); got != "My_ Playlist" {
			t.Errorf("unexpected result: %q", got)
		}
	})
}

func TestGenerateID(t *testing.T) {
	a := GenerateID()
	b := GenerateID()
	if a == b {
		t.Error("expected unique IDs")
	}
	if len(a) != 36 {
		t.Errorf("expected UUID string length 36, got %d", len(a))
	}
}

func TestNewLogger(t *testing.T) {
	if logger := NewLogger(nil); logger == nil {
		t.Error("expected logger instance")
	}
}
