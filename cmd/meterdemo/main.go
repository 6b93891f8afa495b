package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/olivier-w/climp-meter/internal/player"
	"github.com/olivier-w/climp-meter/internal/ui"
)

var (
	flagSource   string
	flagFPS      int
	flagHold     time.Duration
	flagStereo   bool
	flagNoLabels bool
	flagNoScale  bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "meterdemo [file]",
		Short: "Terminal audio level meter demo",
		Long: `meterdemo shows the climp-meter widget live.

Without arguments it animates a gallery of meters from a synthetic level
source. Given an audio file (.wav, .mp3, .flac or .ogg) it plays the file
and meters the outgoing PCM.`,
		Args: cobra.MaximumNArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVar(&flagSource, "source", "sweep", "Showcase level source: sweep or bounce")
	rootCmd.Flags().IntVar(&flagFPS, "fps", 30, "Animation frames per second")
	rootCmd.Flags().DurationVar(&flagHold, "hold", time.Second, "How long peaks hold before decaying")
	rootCmd.Flags().BoolVar(&flagStereo, "stereo", false, "Always render two channels in file mode")
	rootCmd.Flags().BoolVar(&flagNoLabels, "no-labels", false, "Hide the dB readouts")
	rootCmd.Flags().BoolVar(&flagNoScale, "no-scale", false, "Hide the scale ruler")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg := ui.Config{
		Source:   flagSource,
		FPS:      flagFPS,
		Hold:     flagHold,
		Stereo:   flagStereo,
		NoLabels: flagNoLabels,
		NoScale:  flagNoScale,
	}
	switch cfg.Source {
	case "sweep", "bounce":
	default:
		return fmt.Errorf("unknown source %q (choose sweep or bounce)", cfg.Source)
	}

	var model ui.Model
	if len(args) == 1 {
		path := args[0]
		info, err := os.Stat(path)
		if err != nil {
			return err
		}
		if info.IsDir() {
			return fmt.Errorf("%s is a directory", path)
		}

		p, err := player.New(path)
		if err != nil {
			return err
		}
		defer p.Close()

		model = ui.NewPlayback(p, player.ReadTrackInfo(path), cfg)
	} else {
		model = ui.NewShowcase(cfg)
	}

	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
