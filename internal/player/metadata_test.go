package player

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/bogem/id3v2/v2"
)

func writeTagged(t *testing.T, name, title, artist string) string {
	t.Helper()
	tag := id3v2.NewEmptyTag()
	if title != "" {
		tag.SetTitle(title)
	}
	if artist != "" {
		tag.SetArtist(artist)
	}
	var buf bytes.Buffer
	if _, err := tag.WriteTo(&buf); err != nil {
		t.Fatalf("writing tag: %v", err)
	}
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadTrackInfoFromTags(t *testing.T) {
	path := writeTagged(t, "track01.mp3", "Night Drive", "The Ramplifiers")

	info := ReadTrackInfo(path)
	if info.Title != "Night Drive" {
		t.Fatalf("Title = %q, want %q", info.Title, "Night Drive")
	}
	if info.Artist != "The Ramplifiers" {
		t.Fatalf("Artist = %q, want %q", info.Artist, "The Ramplifiers")
	}
}

func TestReadTrackInfoFallsBackToFilename(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Midnight Loop.mp3")
	if err := os.WriteFile(path, []byte("not an mp3"), 0o644); err != nil {
		t.Fatal(err)
	}

	info := ReadTrackInfo(path)
	if info.Title != "Midnight Loop" {
		t.Fatalf("Title = %q, want %q", info.Title, "Midnight Loop")
	}
	if info.Artist != "" {
		t.Fatalf("Artist = %q, want empty", info.Artist)
	}
}

func TestReadTrackInfoBlankTitleFallsBack(t *testing.T) {
	path := writeTagged(t, "untitled.mp3", "", "Somebody")

	info := ReadTrackInfo(path)
	if info.Title != "untitled" {
		t.Fatalf("Title = %q, want %q", info.Title, "untitled")
	}
}
