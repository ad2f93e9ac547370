// Copyright 2025 Dimitrij Drus <dadrus@gmx.de>
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
//
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/dadrus/lexis/internal/config"
)

func TestNewTextLogger(t *testing.T) {
	// GIVEN
	buf := &bytes.Buffer{}
	logger := newLogger(config.LoggingConfig{Format: config.LogTextFormat, Level: zerolog.InfoLevel}, buf)

	// WHEN
	logger.Info().Str("_locale", "de").Msg("Hello lexis")
	logger.Debug().Msg("filtered")

	// THEN
	data := buf.String()
	assert.NotContains(t, data, "{")
	assert.Contains(t, data, "Hello lexis")
	assert.Contains(t, data, "_locale")
	assert.NotContains(t, data, "filtered")
}

func TestNewGelfLogger(t *testing.T) {
	// GIVEN
	buf := &bytes.Buffer{}
	logger := newLogger(config.LoggingConfig{Format: config.LogGelfFormat, Level: zerolog.DebugLevel}, buf)

	// WHEN
	logger.Info().Msg("Hello lexis")

	// THEN
	data := buf.String()
	assert.Contains(t, data, `"_level_name":"INFO"`)
	assert.Contains(t, data, `"version":"1.1"`)
	assert.Contains(t, data, `"host"`)
	assert.Contains(t, data, `"timestamp"`)
	assert.Contains(t, data, `"level":6`)
	assert.Contains(t, data, `"short_message":"Hello lexis"`)
}

func TestSyslogSeverity(t *testing.T) {
	t.Parallel()

	for level, expected := range map[zerolog.Level]int8{
		zerolog.TraceLevel: 7,
		zerolog.DebugLevel: 7,
		zerolog.InfoLevel:  6,
		zerolog.WarnLevel:  4,
		zerolog.ErrorLevel: 3,
		zerolog.FatalLevel: 2,
		zerolog.PanicLevel: 1,
		zerolog.NoLevel:    0,
		zerolog.Disabled:   0,
	} {
		t.Run(level.String(), func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, expected, syslogSeverity(level))
		})
	}
}
