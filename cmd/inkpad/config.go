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
	"errors"
	"fmt"
	"net/url"
	"os"
	"slices"
	"time"

	"gopkg.in/yaml.v3"

	"seehuhn.de/go/ink"
	"seehuhn.de/go/ink/client"
)

// Config is the inkpad configuration, read from a YAML file.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Pen     PenConfig     `yaml:"pen"`
	Service ServiceConfig `yaml:"service"`

	// ExportDir is where exported PNG images are written.
	ExportDir string `yaml:"export_dir"`
}

// WindowConfig holds the initial window geometry.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// PenConfig holds the initial drawing tool.
type PenConfig struct {
	Tool ink.Tool `yaml:"tool"`
	Size float64  `yaml:"size"`
}

// ServiceConfig describes the remote recognition service.
type ServiceConfig struct {
	URL     string         `yaml:"url"`
	Subject client.Subject `yaml:"subject"`
	Level   client.Level   `yaml:"level"`
	Timeout time.Duration  `yaml:"timeout"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Width:  800,
			Height: 600,
			Title:  "inkpad",
		},
		Pen: PenConfig{
			Tool: ink.Pen,
			Size: ink.DefaultStrokeSize,
		},
		Service: ServiceConfig{
			URL:     client.DefaultBaseURL,
			Subject: client.Math,
			Level:   client.Easy,
			Timeout: 2 * time.Minute,
		},
		ExportDir: ".",
	}
}

// LoadConfig reads a YAML configuration file. Settings missing from the
// file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Pen.Size < ink.MinStrokeSize || c.Pen.Size > ink.MaxStrokeSize {
		errs = append(errs, fmt.Errorf("pen size %g outside [%d, %d]",
			c.Pen.Size, ink.MinStrokeSize, ink.MaxStrokeSize))
	}
	if u, err := url.Parse(c.Service.URL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("invalid service URL %q", c.Service.URL))
	}
	if !slices.Contains(client.Subjects, c.Service.Subject) {
		errs = append(errs, fmt.Errorf("unknown subject %q", c.Service.Subject))
	}
	if !slices.Contains(client.Levels, c.Service.Level) {
		errs = append(errs, fmt.Errorf("unknown level %q", c.Service.Level))
	}
	if c.Service.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("invalid timeout %s", c.Service.Timeout))
	}
	return errors.Join(errs...)
}
