package player

import (
	"encoding/binary"
	"io"
	"math"
	"sync"
)

// meterReader sits between the decoder and the audio device. It counts the
// bytes flowing through (for position reporting) and records the loudest
// sample seen per channel since the last call to Levels.
type meterReader struct {
	src      io.Reader
	channels int

	mu    sync.Mutex
	pos   int64
	peak  [2]float64
	carry []byte // partial frame left over from the previous chunk
}

func newMeterReader(src io.Reader, channels int) *meterReader {
	if channels > 2 {
		channels = 2
	}
	return &meterReader{src: src, channels: channels}
}

func (r *meterReader) Read(p []byte) (int, error) {
	n, err := r.src.Read(p)
	if n > 0 {
		r.scan(p[:n])
	}
	return n, err
}

// scan walks the S16LE frames in chunk and folds each sample's amplitude
// into the per-channel running peak. Chunks may end mid-frame; the tail is
// carried over so channel alignment survives arbitrary read sizes.
func (r *meterReader) scan(chunk []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.pos += int64(len(chunk))

	data := chunk
	if len(r.carry) > 0 {
		data = append(r.carry, chunk...)
	}
	frameSize := r.channels * 2
	whole := len(data) / frameSize * frameSize
	for off := 0; off < whole; off += 2 {
		s := int16(binary.LittleEndian.Uint16(data[off:]))
		amp := math.Abs(float64(s)) / 32768
		ch := (off / 2) % r.channels
		if amp > r.peak[ch] {
			r.peak[ch] = amp
		}
	}
	r.carry = append(r.carry[:0], data[whole:]...)
}

// Levels returns the peak amplitude per channel since the previous call and
// resets the window. Mono input is reported on both channels.
func (r *meterReader) Levels() (left, right float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	left, right = r.peak[0], r.peak[1]
	r.peak[0], r.peak[1] = 0, 0
	if r.channels == 1 {
		right = left
	}
	return left, right
}

// Pos reports how many bytes have been handed to the audio device so far.
func (r *meterReader) Pos() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pos
}
