package player

import (
	"path/filepath"
	"strings"

	"github.com/bogem/id3v2/v2"
)

// TrackInfo describes what is playing, for display above the meter.
type TrackInfo struct {
	Title  string
	Artist string
}

// ReadTrackInfo reads ID3v2 tags when the file carries them. Files without
// a usable title (including non-MP3 formats) fall back to the filename.
func ReadTrackInfo(path string) TrackInfo {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err == nil {
		defer tag.Close()
		info := TrackInfo{
			Title:  strings.TrimSpace(tag.Title()),
			Artist: strings.TrimSpace(tag.Artist()),
		}
		if info.Title != "" {
			return info
		}
	}

	base := filepath.Base(path)
	return TrackInfo{Title: strings.TrimSuffix(base, filepath.Ext(base))}
}
