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

package config

import (
	"os"
	"path/filepath"

	"github.com/inhies/go-bytesize"

	"github.com/dadrus/lexis/internal/config/parser"
	"github.com/dadrus/lexis/internal/lexis"
	"github.com/dadrus/lexis/internal/validation"
	"github.com/dadrus/lexis/internal/x/errorchain"
)

const DefaultConfigFileName = "lexis.yaml"

type (
	EnvVarPrefix      string
	ConfigurationPath string
)

type Configuration struct {
	Log        LoggingConfig    `koanf:"log"`
	Locales    LocalesConfig    `koanf:"locales"`
	Completion CompletionConfig `koanf:"completion"`
}

type LocalesConfig struct {
	Directory   string            `koanf:"directory"     validate:"required"`
	Default     string            `koanf:"default"       validate:"required,supported_locale"`
	Watch       bool              `koanf:"watch"`
	MaxFileSize bytesize.ByteSize `koanf:"max_file_size" validate:"gt=0"`
}

type CompletionConfig struct {
	Limit int `koanf:"limit" validate:"gte=1"`
}

func NewConfiguration(
	envPrefix EnvVarPrefix,
	configFile ConfigurationPath,
	validator validation.Validator,
) (*Configuration, error) {
	result := defaultConfig()

	opts := []parser.Option{
		parser.WithDecodeHookFunc(logLevelDecodeHookFunc),
		parser.WithDecodeHookFunc(logFormatDecodeHookFunc),
		parser.WithDecodeHookFunc(byteSizeDecodeHookFunc),
		parser.WithConfigFile(string(configFile)),
		parser.WithEnvPrefix(string(envPrefix)),
		parser.WithDefaultConfigFilename(DefaultConfigFileName),
		parser.WithConfigLookupDir("."),
	}

	if home, err := os.UserHomeDir(); err == nil {
		opts = append(opts, parser.WithConfigLookupDir(filepath.Join(home, ".config")))
	}

	if err := parser.New(opts...).Load(&result); err != nil {
		return nil, errorchain.NewWithMessage(lexis.ErrConfiguration,
			"failed to load configuration").CausedBy(err)
	}

	if err := validator.ValidateStruct(result); err != nil {
		return nil, errorchain.NewWithMessage(lexis.ErrConfiguration,
			"configuration is invalid").CausedBy(err)
	}

	return &result, nil
}
