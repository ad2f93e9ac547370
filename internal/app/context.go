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

package app

import (
	"github.com/rs/zerolog"

	"github.com/dadrus/lexis/internal/config"
	"github.com/dadrus/lexis/internal/locale"
	"github.com/dadrus/lexis/internal/logging"
	"github.com/dadrus/lexis/internal/validation"
)

// Context holds the state shared by all commands: the validated configuration
// and the objects derived from it.
type Context struct {
	c *config.Configuration
	l zerolog.Logger
}

func NewValidator() (validation.Validator, error) {
	return validation.NewValidator(
		validation.WithTagValidator(locale.SupportedLocaleValidator{}),
		validation.WithErrorTranslator(locale.SupportedLocaleValidator{}),
	)
}

func NewContext(envPrefix config.EnvVarPrefix, configFile config.ConfigurationPath) (*Context, error) {
	validator, err := NewValidator()
	if err != nil {
		return nil, err
	}

	conf, err := config.NewConfiguration(envPrefix, configFile, validator)
	if err != nil {
		return nil, err
	}

	return &Context{c: conf, l: logging.NewLogger(conf.Log)}, nil
}

func (c *Context) Config() *config.Configuration { return c.c }

func (c *Context) Logger() zerolog.Logger { return c.l }

// Index loads the locale catalogs from the configured directory.
func (c *Context) Index() (*locale.Index, error) {
	idx, err := locale.NewIndex(c.c.Locales.Default, c.l,
		locale.WithMaxFileSize(c.c.Locales.MaxFileSize))
	if err != nil {
		return nil, err
	}

	if err = idx.LoadDir(c.c.Locales.Directory); err != nil {
		return nil, err
	}

	return idx, nil
}
