package tasks

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cristiangauma/bsaver-dl/internal/playlist"
)

func writeArchive(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write archive: %v", err)
	}
}

func TestReconcile(t *testing.T) {
	t.Run("all present returns empty missing list", func(t *testing.T) {
		destDir := t.TempDir()
		songs := []playlist.Song{
			{Hash: "AAA", Name: "First"},
			{Hash: "bbb", Name: "Second"},
		}
		writeArchive(t, destDir, "aaa.zip", "content")
		writeArchive(t, destDir, "bbb.zip", "content")

		rows, missing := Reconcile(songs, destDir)

		if len(missing) != 0 {
			t.Errorf("expected no missing songs, got %d", len(missing))
		}
		if len(rows) != 2 {
			t.Fatalf("expected 2 rows, got %d", len(rows))
		}
		for i, row := range rows {
			if row.Presence != PresencePresent {
				t.Errorf("row %d: expected present, got %v", i, row.Presence)
			}
			if row.Index != i+1 {
				t.Errorf("row %d: expected index %d, got %d", i, i+1, row.Index)
			}
		}
	})

	t.Run("zero-size file counts as missing", func(t *testing.T) {
		destDir := t.TempDir()
		writeArchive(t, destDir, "aaa.zip", "")

		rows, missing := Reconcile([]playlist.Song{{Hash: "aaa"}}, destDir)

		if rows[0].Presence != PresenceMissing {
			t.Errorf("expected missing, got %v", rows[0].Presence)
		}
		if len(missing) != 1 {
			t.Errorf("expected 1 missing song, got %d", len(missing))
		}
	})

	t.Run("empty hash never enters the missing list", func(t *testing.T) {
		rows, missing := Reconcile([]playlist.Song{
			{Hash: "", Name: "Hashless"},
			{Hash: "aaa", Name: "Normal"},
		}, t.TempDir())

		if rows[0].Presence != PresenceNoHash {
			t.Errorf("expected no-hash, got %v", rows[0].Presence)
		}
		if len(missing) != 1 || missing[0].Hash != "aaa" {
			t.Errorf("expected only the hashed song missing, got %+v", missing)
		}
	})

	t.Run("missing list preserves playlist order without dedup", func(t *testing.T) {
		songs := []playlist.Song{
			{Hash: "ccc", Name: "Third"},
			{Hash: "aaa", Name: "First"},
			{Hash: "ccc", Name: "Third again"},
		}

		_, missing := Reconcile(songs, t.TempDir())

		if len(missing) != 3 {
			t.Fatalf("expected 3 missing songs, got %d", len(missing))
		}
		for i, song := range missing {
			if song.Name != songs[i].Name {
				t.Errorf("position %d: expected %s, got %s", i, songs[i].Name, song.Name)
			}
		}
	})

	t.Run("hash presence check is case-insensitive", func(t *testing.T) {
		destDir := t.TempDir()
		writeArchive(t, destDir, "abc123.zip", "content")

		rows, missing := Reconcile([]playlist.Song{{Hash: "ABC123"}}, destDir)

		if rows[0].Presence != PresencePresent {
			t.Errorf("expected present for uppercase hash, got %v", rows[0].Presence)
		}
		if len(missing) != 0 {
			t.Errorf("expected no missing songs, got %d", len(missing))
		}
	})

	t.Run("does not write to the filesystem", func(t *testing.T) {
		destDir := t.TempDir()

		Reconcile([]playlist.Song{{Hash: "aaa"}, {Hash: ""}}, destDir)

		entries, err := os.ReadDir(destDir)
		if err != nil {
			t.Fatalf("failed to read dir: %v", err)
		}
		if len(entries) != 0 {
			t.Errorf("expected untouched directory, found %d entries", len(entries))
		}
	})
}

func TestEnumStrings(t *testing.T) {
	cases := map[string]string{
		PresencePresent.String(): "present",
		PresenceMissing.String(): "missing",
		PresenceNoHash.String():  "no hash",
		OutcomeSuccess.String():  "success",
		OutcomeSkipped.String():  "skipped",
		OutcomeFailed.String():   "failed",
	}
	for got, want := range cases {
		if got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	}
}
