// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
)

// config holds settings read from the environment. Flags override them.
type config struct {
	// DicPath is a list of directories searched for dictionaries.
	DicPath string `env:"DICPATH"`

	// MaxDepth is the default for --max-depth.
	MaxDepth int `env:"HUNSPELL_MAX_DEPTH" env-default:"5"`

	// LogLevel is the default for --log-level.
	LogLevel string `env:"HUNSPELL_LOG_LEVEL" env-default:"warn"`
}

func loadConfig() (*config, error) {
	var cfg config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("%w: reading environment: %w", ErrHunspellWords, err)
	}
	if cfg.MaxDepth < 0 {
		return nil, fmt.Errorf("%w: HUNSPELL_MAX_DEPTH must not be negative: %d", ErrHunspellWords, cfg.MaxDepth)
	}
	return &cfg, nil
}

// dicPaths returns the directories listed in DICPATH.
func (c *config) dicPaths() []string {
	var paths []string
	for _, p := range filepath.SplitList(c.DicPath) {
		if p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}
