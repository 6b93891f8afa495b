package ui

import tea "github.com/charmbracelet/bubbletea"

func isQuit(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return true
	}
	return false
}

func helpText(playback bool) string {
	s := "l labels  s scale  b frame"
	if playback {
		s = "space pause  " + s
	} else {
		s += "  v source"
	}
	return s + "  q quit"
}
