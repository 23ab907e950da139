package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cbodonnell/cangua/client/game"
	"github.com/cbodonnell/cangua/pkg/board"
	core "github.com/cbodonnell/cangua/pkg/game"
	"github.com/cbodonnell/cangua/pkg/game/constants"
	"github.com/cbodonnell/cangua/pkg/log"
	"github.com/cbodonnell/cangua/pkg/version"
	"github.com/hajimehoshi/ebiten/v2"
)

// SeedEnvVar overrides the default seed when -seed is not given.
const SeedEnvVar = "CANGUA_SEED"

func main() {
	logLevel := flag.String("log-level", "info", "Log level")
	seed := flag.Uint64("seed", defaultSeed(), "Seed for dice and stars (env "+SeedEnvVar+")")
	stars := flag.Int("stars", constants.StarCount, "Number of star tiles")
	names := flag.String("names", "", "Comma separated player names in turn order")
	debug := flag.Bool("debug", false, "Show the debug overlay")
	flag.Parse()

	parsedLogLevel, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)

	log.Info("Starting client version %s", version.Get())

	if *stars < 0 {
		panic(fmt.Sprintf("Invalid star count %d: must not be negative", *stars))
	}

	b, err := board.New(board.StandardGeometry())
	if err != nil {
		panic(fmt.Sprintf("Failed to load board: %v", err))
	}

	opts := core.NewSessionOptions{
		Board:     b,
		Seed:      *seed,
		StarCount: *stars,
		Logger:    logger,
	}
	if *stars == 0 {
		opts.StarCoordinates = []board.Coordinate{}
	}
	if *names != "" {
		opts.PlayerNames = strings.Split(*names, ",")
	}

	g, err := game.NewGame(game.NewGameOptions{
		Debug:   *debug,
		Session: opts,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to create game: %v", err))
	}

	ebiten.SetWindowSize(game.DefaultScreenWidth, game.DefaultScreenHeight)
	ebiten.SetWindowTitle("Cờ Cá Ngựa")
	if err := ebiten.RunGame(g); err != nil {
		panic(fmt.Sprintf("Failed to run game: %v", err))
	}
}

func defaultSeed() uint64 {
	if v := os.Getenv(SeedEnvVar); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err == nil {
			return seed
		}
		fmt.Fprintf(os.Stderr, "Ignoring invalid %s %q: %v\n", SeedEnvVar, v, err)
	}
	return uint64(time.Now().UnixNano())
}
