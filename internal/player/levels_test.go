package player

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"
)

// pcm16 packs samples into signed 16-bit little-endian bytes.
func pcm16(samples ...int16) []byte {
	out := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(out[i*2:], uint16(s))
	}
	return out
}

func drain(t *testing.T, r io.Reader, chunkSize int) {
	t.Helper()
	buf := make([]byte, chunkSize)
	for {
		_, err := r.Read(buf)
		if err == io.EOF {
			return
		}
		if err != nil {
			t.Fatalf("Read() error = %v", err)
		}
	}
}

func TestMeterReaderPeakPerChannel(t *testing.T) {
	// Stereo frames: left peaks at 0.25, right at 0.5.
	data := pcm16(8192, -16384, 4096, -8192)
	mr := newMeterReader(bytes.NewReader(data), 2)

	drain(t, mr, 512)

	left, right := mr.Levels()
	if left != 0.25 {
		t.Fatalf("left = %v, want 0.25", left)
	}
	if right != 0.5 {
		t.Fatalf("right = %v, want 0.5", right)
	}
}

func TestMeterReaderResetsWindow(t *testing.T) {
	mr := newMeterReader(bytes.NewReader(pcm16(16384, 16384)), 2)
	drain(t, mr, 512)

	if left, _ := mr.Levels(); left != 0.5 {
		t.Fatalf("first window left = %v, want 0.5", left)
	}
	if left, right := mr.Levels(); left != 0 || right != 0 {
		t.Fatalf("second window = %v, %v, want 0, 0", left, right)
	}
}

func TestMeterReaderMonoDuplicates(t *testing.T) {
	mr := newMeterReader(bytes.NewReader(pcm16(-8192, 4096)), 1)
	drain(t, mr, 512)

	left, right := mr.Levels()
	if left != 0.25 {
		t.Fatalf("left = %v, want 0.25", left)
	}
	if right != left {
		t.Fatalf("right = %v, want same as left", right)
	}
}

func TestMeterReaderSplitFrames(t *testing.T) {
	// Three-byte reads split every stereo frame; channel alignment must
	// survive the carry.
	data := pcm16(8192, -16384, 4096, -8192)
	mr := newMeterReader(bytes.NewReader(data), 2)

	drain(t, mr, 3)

	left, right := mr.Levels()
	if left != 0.25 || right != 0.5 {
		t.Fatalf("Levels() = %v, %v, want 0.25, 0.5", left, right)
	}
}

func TestMeterReaderPos(t *testing.T) {
	mr := newMeterReader(bytes.NewReader(pcm16(1, 2, 3, 4)), 2)
	if mr.Pos() != 0 {
		t.Fatalf("Pos() = %d before reading, want 0", mr.Pos())
	}
	drain(t, mr, 512)
	if mr.Pos() != 8 {
		t.Fatalf("Pos() = %d, want 8", mr.Pos())
	}
}
