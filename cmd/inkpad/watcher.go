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

package main

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"seehuhn.de/go/ink"
)

// reloadDebounce is the quiet period after the last change of the
// configuration file before it is read again.
const reloadDebounce = 300 * time.Millisecond

// watchConfig re-reads the configuration file whenever it changes and
// sends each valid result to out. Invalid files are logged and skipped.
// Pending results are replaced, never queued, so out needs a buffer of
// one. watchConfig returns when ctx is cancelled.
func watchConfig(ctx context.Context, path string, debounce time.Duration, out chan Config) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	// Editors often replace the file by renaming, so the directory is
	// watched rather than the file.
	if err := w.Add(filepath.Dir(path)); err != nil {
		return err
	}
	abs, _ := filepath.Abs(path)

	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if evAbs, _ := filepath.Abs(ev.Name); evAbs != abs {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(debounce)
			fire = timer.C

		case <-fire:
			timer, fire = nil, nil
			cfg, err := LoadConfig(path)
			if err != nil {
				ink.Logger().Warn("configuration not reloaded", "error", err)
				continue
			}
			ink.Logger().Info("configuration reloaded", "file", path)
			select {
			case <-out:
			default:
			}
			out <- cfg

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			ink.Logger().Warn("watching configuration", "error", err)
		}
	}
}
