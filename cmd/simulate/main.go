package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/cbodonnell/cangua/pkg/board"
	"github.com/cbodonnell/cangua/pkg/game"
	"github.com/cbodonnell/cangua/pkg/log"
	"github.com/cbodonnell/cangua/pkg/version"
)

// Plays a whole game without a window, logging every event.
func main() {
	logLevel := flag.String("log-level", "info", "Log level")
	seed := flag.Uint64("seed", 1, "Seed for dice and stars")
	maxRolls := flag.Int("max-rolls", 20000, "Stop after this many rolls without a winner")
	names := flag.String("names", "", "Comma separated player names in turn order")
	flag.Parse()

	parsedLogLevel, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)

	log.Info("Starting simulation version %s", version.Get())

	b, err := board.New(board.StandardGeometry())
	if err != nil {
		panic(fmt.Sprintf("Failed to load board: %v", err))
	}

	opts := game.NewSessionOptions{
		Board:  b,
		Seed:   *seed,
		Logger: logger,
	}
	if *names != "" {
		opts.PlayerNames = strings.Split(*names, ",")
	}
	session, err := game.NewSession(opts)
	if err != nil {
		panic(fmt.Sprintf("Failed to create session: %v", err))
	}

	rolls := 0
	for ; rolls < *maxRolls && !session.Over(); rolls++ {
		if _, err := session.Roll(); err != nil && !errors.Is(err, game.ErrGameOver) {
			panic(fmt.Sprintf("Failed to roll: %v", err))
		}
		session.SkipAnimations()

		events, err := session.Events().ReadAllMessages()
		if err != nil {
			panic(fmt.Sprintf("Failed to read events: %v", err))
		}
		for _, event := range events {
			log.Debug("%s", event)
		}
	}

	if winner := session.Winner(); winner != nil {
		log.Info("%s (%s) won after %d rolls", winner.Name(), winner.Color(), rolls)
	} else {
		log.Warn("No winner after %d rolls", rolls)
	}
	for _, pl := range session.Statekeep().Players() {
		log.Info("%s: home %d, kicked %d, counters %v", pl.Name(), pl.PawnsHome(), pl.TimesKicked(), session.Statekeep().Counters(pl.Color()))
	}
}
