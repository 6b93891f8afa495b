// Package player plays a single audio file through the system's audio
// device and meters the PCM on its way out.
//
// Supported formats: MP3, WAV, FLAC, Ogg Vorbis. The audio device is opened
// with the file's native sample rate and channel count, so no resampling
// happens between the decoder and the hardware.
package player

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
)

// Player streams one decoded file to the audio device.
type Player struct {
	file        *os.File
	decoder     audioDecoder
	tap         *meterReader
	out         *oto.Player
	duration    time.Duration
	bytesPerSec int
	done        chan struct{}

	mu     sync.Mutex
	paused bool
	closed bool
}

// New opens path, picks a decoder for it and starts playback immediately.
func New(path string) (*Player, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	dec, err := newDecoder(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("opening %s: %w", filepath.Base(path), err)
	}

	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   dec.SampleRate(),
		ChannelCount: dec.ChannelCount(),
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("opening audio device: %w", err)
	}
	<-ready

	bytesPerSec := dec.SampleRate() * dec.ChannelCount() * 2
	p := &Player{
		file:        f,
		decoder:     dec,
		tap:         newMeterReader(dec, dec.ChannelCount()),
		bytesPerSec: bytesPerSec,
		duration:    time.Duration(float64(dec.Length()) / float64(bytesPerSec) * float64(time.Second)),
		done:        make(chan struct{}),
	}

	p.out = ctx.NewPlayer(p.tap)
	p.out.Play()
	go p.monitor()

	return p, nil
}

// monitor polls until the decoder has been drained, then closes done.
func (p *Player) monitor() {
	for {
		p.mu.Lock()
		if p.closed {
			p.mu.Unlock()
			return
		}
		paused := p.paused
		p.mu.Unlock()

		if !paused && p.tap.Pos() >= p.decoder.Length() {
			close(p.done)
			return
		}
		time.Sleep(200 * time.Millisecond)
	}
}

// Done returns a channel that closes when the track has played to the end.
func (p *Player) Done() <-chan struct{} {
	return p.done
}

// TogglePause flips between playing and paused and reports the new state.
func (p *Player) TogglePause() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return p.paused
	}
	if p.paused {
		p.out.Play()
	} else {
		p.out.Pause()
	}
	p.paused = !p.paused
	return p.paused
}

// Paused reports whether playback is currently paused.
func (p *Player) Paused() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.paused
}

// Levels returns the peak amplitude per channel since the last call.
// While paused nothing flows through the tap, so the peaks drain to zero.
func (p *Player) Levels() (left, right float64) {
	return p.tap.Levels()
}

// Channels reports the channel count of the decoded stream.
func (p *Player) Channels() int {
	return p.decoder.ChannelCount()
}

// Position returns the current playback position.
func (p *Player) Position() time.Duration {
	if p.bytesPerSec == 0 {
		return 0
	}
	return time.Duration(float64(p.tap.Pos()) / float64(p.bytesPerSec) * float64(time.Second))
}

// Duration returns the total length of the track.
func (p *Player) Duration() time.Duration {
	return p.duration
}

// Close stops playback and releases the file.
func (p *Player) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true
	if p.out != nil {
		p.out.Close()
	}
	return p.file.Close()
}
