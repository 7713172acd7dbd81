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

	"go.uber.org/zap"
)

// newLogger returns a logger writing human readable messages to stderr.
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid log level %q", ErrFlagParse, level)
	}

	config := zap.NewProductionConfig()
	config.Level = lvl
	config.Encoding = "console"
	config.DisableStacktrace = true
	config.EncoderConfig.TimeKey = ""

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("%w: creating logger: %w", ErrHunspellWords, err)
	}
	return logger, nil
}
