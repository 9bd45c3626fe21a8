package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/lixenwraith/townhold/audio"
	"github.com/lixenwraith/townhold/config"
	"github.com/lixenwraith/townhold/game"
	"github.com/lixenwraith/townhold/input"
	"github.com/lixenwraith/townhold/render"
	"github.com/lixenwraith/townhold/terminal"
)

var (
	configFlag = flag.String("config", "", "Path to a TOML or YAML config file")
	debugFlag  = flag.Bool("debug", false, "Write a debug log under logs/")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.HandleCrash(r)
		}
	}()

	flag.Parse()

	logFile := setupLogging(*debugFlag)

	err := run(*configFlag)
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "townhold: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	keys, err := input.BuildKeyTable(cfg.Keys)
	if err != nil {
		return err
	}

	session, err := terminal.Open()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	defer session.Close()

	player := audio.NewPlayer(cfg.Audio)
	if err := player.Initialize(); err != nil {
		log.Printf("%v (continuing without audio)", err)
	}
	defer player.Close()

	match := game.NewMatch(cfg)

	l := &loop{
		screen:     session.Screen(),
		match:      match,
		keys:       keys,
		renderer:   render.NewRenderer(session.Screen(), cfg.Render.ASCII),
		sink:       player,
		frameDelay: cfg.FrameDelay.Std(),
		linger:     cfg.GameOverLinger.Std(),
	}
	l.run()

	log.Printf("[%s] exiting: over=%v quit=%v", match.ID[:8], match.Over(), match.Quit())
	return nil
}
