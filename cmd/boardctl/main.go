/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/boardctl/internal/blogging"
	"github.com/frankkopp/boardctl/internal/config"
	"github.com/frankkopp/boardctl/internal/gameloop"
	"github.com/frankkopp/boardctl/internal/gantry"
	"github.com/frankkopp/boardctl/internal/opponent"
	"github.com/frankkopp/boardctl/internal/reedstream"
	"github.com/frankkopp/boardctl/internal/rules"
	. "github.com/frankkopp/boardctl/internal/types"
)

const boardctlVersion = "0.1.0"

var out = message.NewPrinter(language.German)

func main() {
	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "", "log level\n(critical|error|warning|notice|info|debug)")
	fen := flag.String("fen", "", "starting position FEN\ndefaults to the standard starting position")
	humanColor := flag.String("human", "", "which side the reed-switch board plays\n(white|black)")
	opponentPath := flag.String("opponent", "", "path to the opponent engine wrapper executable")
	cpuProfile := flag.Bool("profile", false, "enables CPU profiling, written to ./cpu.pprof")
	flag.Parse()

	if *versionInfo {
		printVersionInfo()
		return
	}

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	config.ConfFile = *configFile
	config.Setup()

	if lvl, found := config.LogLevels[*logLvl]; found {
		config.LogLevel = lvl
	}
	if *fen != "" {
		config.Settings.Game.StartFen = *fen
	}
	if *humanColor != "" {
		config.Settings.Game.HumanColor = *humanColor
	}
	if *opponentPath != "" {
		config.Settings.Opponent.Path = *opponentPath
	}

	log := blogging.Get("boardctl")

	startFen := config.Settings.Game.StartFen
	if startFen == "" {
		startFen = rules.StartFen
	}
	pos, err := rules.NewPosition(startFen)
	if err != nil {
		log.Criticalf("invalid starting FEN %q: %v", startFen, err)
		os.Exit(2)
	}

	human, err := parseColor(config.Settings.Game.HumanColor)
	if err != nil {
		log.Criticalf("invalid human color %q: %v", config.Settings.Game.HumanColor, err)
		os.Exit(2)
	}

	events, closeEvents, err := openEvents()
	if err != nil {
		log.Criticalf("opening reed-switch stream: %v", err)
		os.Exit(2)
	}
	defer closeEvents()

	gantrySink, closeGantry, err := openGantry()
	if err != nil {
		log.Criticalf("opening gantry stream: %v", err)
		os.Exit(2)
	}
	defer closeGantry()

	ctx := context.Background()
	driver, err := opponent.Start(ctx, config.Settings.Opponent.Path, config.Settings.Opponent.Args, os.Stdout, os.Stdin)
	if err != nil {
		log.Criticalf("starting opponent driver: %v", err)
		os.Exit(2)
	}
	defer driver.Close()

	loop := gameloop.New(pos, human, events, driver, gantrySink)
	outcome, err := loop.Run(ctx)
	if err != nil {
		log.Errorf("game loop terminated: %v", err)
		os.Exit(exitCodeFor(err))
	}

	out.Printf("game over: %s\n", outcome)
}

func parseColor(s string) (Color, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "white", "w":
		return White, nil
	case "black", "b":
		return Black, nil
	default:
		return White, fmt.Errorf("unknown color %q", s)
	}
}

func openEvents() (*reedstream.Scanner, func(), error) {
	if config.Settings.Reed.Path == "" {
		return reedstream.New(os.Stdin), func() {}, nil
	}
	f, err := os.Open(config.Settings.Reed.Path)
	if err != nil {
		return nil, nil, err
	}
	return reedstream.New(f), func() { _ = f.Close() }, nil
}

func openGantry() (*gantry.Sink, func(), error) {
	if config.Settings.Gantry.Path == "" {
		return gantry.New(os.Stdout), func() {}, nil
	}
	f, err := os.Create(config.Settings.Gantry.Path)
	if err != nil {
		return nil, nil, err
	}
	return gantry.New(f), func() { _ = f.Close() }, nil
}

// exitCodeFor translates a fatal gameloop error into the process exit code
// of spec.md §6: non-zero on any fatal error.
func exitCodeFor(err error) int {
	switch {
	case errors.Is(err, gameloop.ErrProtocolViolation):
		return 3
	case errors.Is(err, gameloop.ErrPhysicalDesync):
		return 4
	case errors.Is(err, gameloop.ErrOpponentIO):
		return 5
	default:
		return 1
	}
}

func printVersionInfo() {
	out.Printf("boardctl %s\n", boardctlVersion)
	out.Println("Environment:")
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
	cwd, _ := os.Getwd()
	out.Printf("  Working directory: %s\n", cwd)
}
