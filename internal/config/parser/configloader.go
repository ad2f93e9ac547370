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

package parser

import (
	"os"
	"path/filepath"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/maps"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/v2"

	"github.com/dadrus/lexis/internal/lexis"
	"github.com/dadrus/lexis/internal/x/errorchain"
)

type ConfigLoader interface {
	Load(config any) error
}

type source func() (*koanf.Koanf, error)

func New(opts ...Option) ConfigLoader {
	loader := &configLoader{o: defaultOptions()}

	for _, opt := range opts {
		opt(&loader.o)
	}

	return loader
}

type configLoader struct {
	o opts
}

// Load uses the current values of config as defaults, overlays them with the config
// file and then with the environment, and decodes the result back into config.
func (c *configLoader) Load(config any) error {
	sources, err := c.sources()
	if err != nil {
		return err
	}

	konf, err := koanfFromStruct(config)
	if err != nil {
		return err
	}

	for _, src := range sources {
		layer, err := src()
		if err != nil {
			return err
		}

		if err = konf.Load(confmap.Provider(layer.Raw(), ""), nil, koanf.WithMergeFunc(merge)); err != nil {
			return errorchain.NewWithMessage(lexis.ErrConfiguration, "failed to merge configuration").
				CausedBy(err)
		}
	}

	return konf.UnmarshalWithConf("", config, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook:       mapstructure.ComposeDecodeHookFunc(c.o.decodeHooks...),
			Result:           config,
			WeaklyTypedInput: true,
		},
	})
}

func (c *configLoader) sources() ([]source, error) {
	var sources []source

	file, err := c.lookupConfigFile()
	if err != nil {
		return nil, err
	}

	if len(file) != 0 {
		sources = append(sources, func() (*koanf.Koanf, error) { return koanfFromYaml(file) })
	}

	if len(c.o.envPrefix) != 0 {
		sources = append(sources, func() (*koanf.Koanf, error) { return koanfFromEnv(c.o.envPrefix) })
	}

	return sources, nil
}

// lookupConfigFile returns the explicitly configured file, which must exist, or the
// first default named file found in the lookup directories. An empty result means
// there is no config file.
func (c *configLoader) lookupConfigFile() (string, error) {
	if len(c.o.configFile) != 0 {
		if _, err := os.Stat(c.o.configFile); err != nil {
			return "", errorchain.NewWithMessagef(lexis.ErrConfiguration,
				"config file %s is not accessible", c.o.configFile).CausedBy(err)
		}

		return c.o.configFile, nil
	}

	for _, dir := range c.o.configLookupDirs {
		if path := filepath.Join(dir, c.o.defaultConfigFileName); fileExists(path) {
			return path, nil
		}
	}

	return "", nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)

	return err == nil && !info.IsDir()
}

func merge(src, dest map[string]any) error {
	maps.Merge(src, dest)

	return nil
}
