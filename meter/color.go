package meter

import (
	"fmt"
	"os"
	"strings"
	"sync"
)

// Color is a semantic cell color. The meter only distinguishes the three
// level zones plus the terminal's default foreground.
type Color uint8

const (
	ColorDefault Color = iota
	ColorGreen
	ColorYellow
	ColorRed
)

type colorProfile uint8

const (
	colorNone colorProfile = iota
	colorANSI16
	colorANSI256
	colorTrueColor
)

type colorRGB struct {
	R uint8
	G uint8
	B uint8
}

// palette holds the zone colors used on 256-color and truecolor terminals.
var palette = [...]colorRGB{
	ColorGreen:  {R: 60, G: 224, B: 116},
	ColorYellow: {R: 240, G: 198, B: 72},
	ColorRed:    {R: 242, G: 96, B: 86},
}

var (
	profileOnce sync.Once
	profile     colorProfile
	seqCache    sync.Map
)

func currentColorProfile() colorProfile {
	profileOnce.Do(func() {
		if _, disabled := os.LookupEnv("NO_COLOR"); disabled {
			profile = colorNone
			return
		}
		term := strings.ToLower(os.Getenv("TERM"))
		colorTerm := strings.ToLower(os.Getenv("COLORTERM"))
		switch {
		case strings.Contains(colorTerm, "truecolor"), strings.Contains(colorTerm, "24bit"):
			profile = colorTrueColor
		case strings.Contains(term, "256color"):
			profile = colorANSI256
		case term == "", term == "dumb":
			profile = colorNone
		default:
			profile = colorANSI16
		}
	})
	return profile
}

// ansiState writes color changes lazily so runs of same-colored cells cost
// a single escape sequence.
type ansiState struct {
	profile colorProfile
	current Color
}

func newANSIState() ansiState {
	return ansiState{profile: currentColorProfile(), current: ColorDefault}
}

func (s *ansiState) set(sb *strings.Builder, c Color) {
	if s.profile == colorNone || c == s.current {
		return
	}
	if c == ColorDefault {
		sb.WriteString("\x1b[0m")
	} else {
		sb.WriteString(colorSequence(s.profile, c))
	}
	s.current = c
}

func (s *ansiState) reset(sb *strings.Builder) {
	if s.profile == colorNone || s.current == ColorDefault {
		return
	}
	sb.WriteString("\x1b[0m")
	s.current = ColorDefault
}

func colorSequence(profile colorProfile, c Color) string {
	key := uint32(profile)<<8 | uint32(c)
	if seq, ok := seqCache.Load(key); ok {
		return seq.(string)
	}

	rgb := palette[c]
	var seq string
	switch profile {
	case colorTrueColor:
		seq = fmt.Sprintf("\x1b[38;2;%d;%d;%dm", rgb.R, rgb.G, rgb.B)
	case colorANSI256:
		r := int(rgb.R) * 5 / 255
		g := int(rgb.G) * 5 / 255
		b := int(rgb.B) * 5 / 255
		idx := 16 + 36*r + 6*g + b
		seq = fmt.Sprintf("\x1b[38;5;%dm", idx)
	case colorANSI16:
		codes := [...]int{ColorGreen: 32, ColorYellow: 33, ColorRed: 31}
		seq = fmt.Sprintf("\x1b[%dm", codes[c])
	default:
		seq = ""
	}

	seqCache.Store(key, seq)
	return seq
}
