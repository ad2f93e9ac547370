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

package locale

import (
	"slices"
	"strings"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/de"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/es"
	"github.com/go-playground/locales/fr"
	"github.com/go-playground/locales/it"
	"github.com/go-playground/locales/ja"
	"github.com/go-playground/locales/nl"
	"github.com/go-playground/locales/pt"
	"github.com/go-playground/locales/ru"
	"github.com/go-playground/locales/zh"
)

// nolint: gochecknoglobals
var supported = func() map[string]locales.Translator {
	translators := make(map[string]locales.Translator)

	for _, trans := range []locales.Translator{
		en.New(), de.New(), fr.New(), es.New(), it.New(),
		nl.New(), pt.New(), ru.New(), ja.New(), zh.New(),
	} {
		translators[trans.Locale()] = trans
	}

	return translators
}()

// Supported returns the names of all locales catalogs can be provided for.
func Supported() []string {
	names := make([]string, 0, len(supported))
	for name := range supported {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

func IsSupported(locale string) bool {
	_, ok := supported[canonical(locale)]

	return ok
}

// canonical maps e.g. "de-DE" to "de_de", which is the form locale names are
// registered with.
func canonical(locale string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(locale), "-", "_"))
}

// candidates expands the preferred locales by their base language, keeping the order.
func candidates(preferred []string) []string {
	result := make([]string, 0, 2*len(preferred)) // nolint: mnd

	for _, locale := range preferred {
		name := canonical(locale)
		if len(name) == 0 {
			continue
		}

		result = append(result, name)

		if idx := strings.IndexByte(name, '_'); idx > 0 {
			result = append(result, name[:idx])
		}
	}

	return result
}
