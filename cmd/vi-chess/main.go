// vi-chess shows a board in the terminal and moves pieces with two clicks:
// one to select a piece, one on the target cell.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/lixenwraith/vi-chess/audio"
	"github.com/lixenwraith/vi-chess/config"
	"github.com/lixenwraith/vi-chess/core"
	"github.com/lixenwraith/vi-chess/engine"
	"github.com/lixenwraith/vi-chess/terminal"
)

func main() {
	// Panic recovery: the terminal is reset even if the loop crashes
	defer func() {
		core.HandleCrash(recover())
	}()

	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "vi-chess: %v\n", err)
		return 1
	}

	if logFile := setupLogging(cfg.Log.Debug); logFile != nil {
		defer logFile.Close()
	}

	s, err := newSession(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vi-chess: %v\n", err)
		return 1
	}
	log.Printf("rules %s, position %q", cfg.Rules, s.controller.Board())

	var feedback engine.Feedback
	if cfg.Audio.Enabled {
		player := audio.NewPlayer(audio.Config{Volume: cfg.Audio.Volume})
		if err := player.Initialize(); err != nil {
			log.Printf("audio unavailable: %v", err)
		} else {
			defer player.Cleanup()
			feedback = player
		}
	}

	term := terminal.New(newBackend(cfg.Terminal.Backend), terminal.Options{
		AltScreen: cfg.Terminal.AltScreen,
		Mouse:     terminal.MouseModeClick,
	})
	if err := term.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "vi-chess: failed to initialize terminal: %v\n", err)
		return 1
	}
	// Normal exit cleanup
	defer term.Fini()
	core.SetCrashTerminal(term)
	defer core.SetCrashTerminal(nil)

	loop, err := engine.New(engine.Config{
		Source:     term,
		Output:     term,
		Grid:       s.grid,
		Format:     s.format,
		Mapper:     s.mapper,
		Renderer:   s.renderer,
		Controller: s.controller,
		Quit:       s.quit,
		Feedback:   feedback,
		Logger:     log.Default(),
	})
	if err != nil {
		term.Fini()
		fmt.Fprintf(os.Stderr, "vi-chess: %v\n", err)
		return 1
	}

	if err := loop.Run(); err != nil {
		// Restore first so the message lands on the normal screen
		term.Fini()
		log.Printf("exit: %v", err)
		fmt.Fprintf(os.Stderr, "vi-chess: %v\n", err)
		return 1
	}
	log.Printf("exit after %d frames", loop.Frames())
	return 0
}

func newBackend(name string) terminal.Backend {
	if name == config.BackendTcell {
		return terminal.NewTcellBackend()
	}
	return terminal.NewNativeBackend()
}
