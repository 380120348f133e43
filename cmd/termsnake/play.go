package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/kvols/termsnake/internal/config"
	"github.com/kvols/termsnake/internal/core"
	"github.com/kvols/termsnake/internal/game"
	"github.com/kvols/termsnake/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the local terminal",
	Run:   runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		// An explicit --config that cannot be read is fatal; the implicit
		// search never errors.
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	rtc := core.DefaultConfig()
	rtc.TickRate = game.DefaultTickRate
	rtc.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rtc.ScreenW = w
		rtc.ScreenH = h
	} else {
		log.Warn("could not detect terminal size, using defaults", "error", termErr)
	}

	if err := tui.Run(rtc, cfg.Theme); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
