// seehuhn.de/go/ink - freehand ink capture and math markup
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command inkpad opens a window for freehand ink and sends the drawing to
// a remote recognition service.
//
// Keys: P pen, E eraser, +/- stroke size, C clear, S save PNG,
// O recognize handwriting, N new question, K check the answer.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"seehuhn.de/go/ink"
	"seehuhn.de/go/ink/client"
)

func main() {
	configFile := flag.String("config", "", "YAML configuration `file`, reloaded on change")
	verbose := flag.Bool("v", false, "enable debug logging")
	tool := flag.String("tool", "", "initial tool (pen or eraser)")
	size := flag.Float64("size", 0, "initial stroke size")
	subject := flag.String("subject", "", "question subject (math, physics, chemistry)")
	level := flag.String("level", "", "question level (easy, medium, hard)")
	serviceURL := flag.String("url", "", "service base `URL`")
	flag.Parse()

	ink.SetLogger(newLogger(*verbose))

	cfg, err := LoadConfig(*configFile)
	if err != nil {
		fatal(err)
	}

	// flags given on the command line override the file
	var flagErr error
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "tool":
			if t, err := ink.ParseTool(*tool); err != nil {
				flagErr = err
			} else {
				cfg.Pen.Tool = t
			}
		case "size":
			cfg.Pen.Size = *size
		case "subject":
			cfg.Service.Subject = client.Subject(*subject)
		case "level":
			cfg.Service.Level = client.Level(*level)
		case "url":
			cfg.Service.URL = *serviceURL
		}
	})
	if flagErr != nil {
		fatal(flagErr)
	}
	if err := cfg.Validate(); err != nil {
		fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	g := newGame(ctx, cfg)
	if *configFile != "" {
		go func() {
			if err := watchConfig(ctx, *configFile, reloadDebounce, g.reloads); err != nil {
				ink.Logger().Warn("configuration reload disabled", "error", err)
			}
		}()
	}

	if err := g.run(); err != nil {
		fatal(err)
	}
}

// newLogger returns a text logger on stderr. Verbose loggers include
// debug messages and source locations.
func newLogger(verbose bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if verbose {
		opts = &slog.HandlerOptions{Level: slog.LevelDebug, AddSource: true}
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "inkpad:", err)
	os.Exit(1)
}
