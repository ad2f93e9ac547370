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
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"sync"

	ut "github.com/go-playground/universal-translator"
	"github.com/gobwas/glob"
	"github.com/inhies/go-bytesize"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"

	"github.com/dadrus/lexis/internal/lexis"
	"github.com/dadrus/lexis/internal/watcher"
	"github.com/dadrus/lexis/internal/x/errorchain"
	"github.com/dadrus/lexis/internal/x/trie"
)

// Index holds one catalog per locale, each mapping dot delimited message keys
// to translated strings. It is safe for concurrent use.
type Index struct {
	mut      sync.RWMutex
	catalogs map[string]*trie.Trie[string]
	files    map[string]string
	def      string
	maxSize  bytesize.ByteSize
	uni      *ut.UniversalTranslator
	l        zerolog.Logger
}

func NewIndex(defaultLocale string, logger zerolog.Logger, opts ...Option) (*Index, error) {
	def := canonical(defaultLocale)

	fallback, ok := supported[def]
	if !ok {
		return nil, errorchain.NewWithMessagef(ErrUnsupportedLocale,
			"%q can not be used as default locale", defaultLocale)
	}

	idx := &Index{
		catalogs: make(map[string]*trie.Trie[string]),
		files:    make(map[string]string),
		def:      def,
		maxSize:  defaultMaxFileSize,
		uni:      ut.New(fallback, slices.Collect(maps.Values(supported))...),
		l:        logger,
	}

	for _, opt := range opts {
		opt(idx)
	}

	return idx, nil
}

func (idx *Index) Default() string { return idx.def }

// Load replaces the catalog of the given locale by the entries of the yaml
// document in data. Nested maps result in dot delimited keys.
func (idx *Index) Load(locale string, data []byte) error {
	name := canonical(locale)
	if _, ok := supported[name]; !ok {
		return errorchain.NewWithMessagef(ErrUnsupportedLocale, "%q", locale)
	}

	parser := koanf.New(".")
	if err := parser.Load(rawbytes.Provider(data), yaml.Parser()); err != nil {
		return errorchain.NewWithMessagef(lexis.ErrArgument,
			"failed to parse catalog for locale %s", name).CausedBy(err)
	}

	entries := make(map[string]string)
	for key, value := range parser.All() {
		entries[key] = fmt.Sprint(value)
	}

	catalog := trie.New[string]()
	if err := catalog.InsertMap(entries); err != nil {
		return errorchain.NewWithMessagef(lexis.ErrArgument,
			"catalog for locale %s contains an invalid key", name).CausedBy(err)
	}

	idx.mut.Lock()
	idx.catalogs[name] = catalog
	idx.mut.Unlock()

	idx.l.Debug().
		Str("_locale", name).
		Int("_keys", catalog.Len()).
		Str("_size", bytesize.ByteSize(len(data)).String()).
		Msg("Locale catalog loaded")

	return nil
}

// LoadFile loads a catalog file named after its locale, like de.yaml.
func (idx *Index) LoadFile(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return errorchain.NewWithMessagef(lexis.ErrInternal, "failed to resolve %s", path).CausedBy(err)
	}

	name := strings.TrimSuffix(filepath.Base(absPath), filepath.Ext(absPath))

	info, err := os.Stat(absPath)
	if err != nil {
		return errorchain.NewWithMessagef(lexis.ErrArgument,
			"failed to read catalog file %s", path).CausedBy(err)
	}

	if size := bytesize.ByteSize(info.Size()); size > idx.maxSize {
		return errorchain.NewWithMessagef(lexis.ErrArgument,
			"catalog file %s has %s, which exceeds the limit of %s", path, size, idx.maxSize)
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		return errorchain.NewWithMessagef(lexis.ErrArgument,
			"failed to read catalog file %s", path).CausedBy(err)
	}

	if err = idx.Load(name, data); err != nil {
		return err
	}

	idx.mut.Lock()
	idx.files[absPath] = canonical(name)
	idx.mut.Unlock()

	return nil
}

// LoadDir loads all *.yaml and *.yml files of dir. A catalog for the default
// locale must be among them.
func (idx *Index) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return errorchain.NewWithMessagef(lexis.ErrConfiguration,
			"failed to read locales directory %s", dir).CausedBy(err)
	}

	for _, entry := range entries {
		ext := filepath.Ext(entry.Name())
		if entry.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}

		if err = idx.LoadFile(filepath.Join(dir, entry.Name())); err != nil {
			return err
		}
	}

	idx.mut.RLock()
	_, ok := idx.catalogs[idx.def]
	idx.mut.RUnlock()

	if !ok {
		return errorchain.NewWithMessagef(lexis.ErrConfiguration,
			"no catalog for default locale %s in %s", idx.def, dir)
	}

	idx.l.Info().Strs("_locales", idx.Locales()).Msg("Locale catalogs loaded")

	return nil
}

// Resolve returns the first of the preferred locales a catalog is loaded for.
// Falls back to the default locale.
func (idx *Index) Resolve(preferred ...string) string {
	if locale, found := idx.Match(preferred...); found {
		return locale
	}

	return idx.def
}

// Match returns the first of the preferred locales a catalog is loaded for. A
// regional locale matches its base language as well.
func (idx *Index) Match(preferred ...string) (string, bool) {
	idx.mut.RLock()
	defer idx.mut.RUnlock()

	for _, candidate := range candidates(preferred) {
		trans, found := idx.uni.FindTranslator(candidate)
		if !found {
			continue
		}

		if _, loaded := idx.catalogs[trans.Locale()]; loaded {
			return trans.Locale(), true
		}
	}

	return "", false
}

// Get looks the key up in the catalog of the given locale and, if missing
// there, in the catalog of the default locale.
func (idx *Index) Get(locale, key string) (string, bool) {
	idx.mut.RLock()
	defer idx.mut.RUnlock()

	name := canonical(locale)

	if catalog, ok := idx.catalogs[name]; ok {
		if value, found := catalog.Get(key); found {
			return value, true
		}
	}

	if name == idx.def {
		return "", false
	}

	if catalog, ok := idx.catalogs[idx.def]; ok {
		return catalog.Get(key)
	}

	return "", false
}

// Translate returns the message for key with the placeholders {0}, {1}, ...
// replaced by the given params.
func (idx *Index) Translate(locale, key string, params ...string) (string, error) {
	message, found := idx.Get(locale, key)
	if !found {
		return "", errorchain.NewWithMessagef(ErrUnknownKey, "%q", key)
	}

	if len(params) == 0 {
		return message, nil
	}

	pairs := make([]string, 0, 2*len(params)) // nolint: mnd
	for i, param := range params {
		pairs = append(pairs, "{"+strconv.Itoa(i)+"}", param)
	}

	return strings.NewReplacer(pairs...).Replace(message), nil
}

// Override replaces the message of an existing key. New keys are never created.
func (idx *Index) Override(locale, key, value string) error {
	idx.mut.Lock()
	defer idx.mut.Unlock()

	name := canonical(locale)

	catalog, ok := idx.catalogs[name]
	if !ok {
		return errorchain.NewWithMessagef(ErrUnknownLocale, "%q", locale)
	}

	updated, err := catalog.Set(key, value)
	if err != nil {
		return errorchain.New(lexis.ErrArgument).CausedBy(err)
	}

	if !updated {
		return errorchain.NewWithMessagef(ErrUnknownKey, "%q in locale %s", key, name)
	}

	idx.l.Debug().Str("_locale", name).Str("_key", key).Msg("Message overridden")

	return nil
}

// Keys lists the keys of the given locale starting with prefix in lexicographic
// order. A limit <= 0 means all.
func (idx *Index) Keys(locale, prefix string, limit int) []string {
	idx.mut.RLock()
	defer idx.mut.RUnlock()

	catalog, ok := idx.catalogs[canonical(locale)]
	if !ok {
		return nil
	}

	if limit <= 0 {
		return slices.Collect(catalog.KeysWithPrefix(prefix))
	}

	return slices.Collect(catalog.KeysWithPrefixLimit(prefix, limit))
}

// Find returns the keys of the given locale matching the glob pattern in
// lexicographic order. "*" stays within one key segment, "**" spans segments.
func (idx *Index) Find(locale, pattern string) ([]string, error) {
	if err := checkBrackets(pattern); err != nil {
		return nil, errorchain.NewWithMessagef(lexis.ErrArgument, "invalid pattern %q", pattern).
			CausedBy(err)
	}

	matcher, err := glob.Compile(pattern, '.')
	if err != nil {
		return nil, errorchain.NewWithMessagef(lexis.ErrArgument, "invalid pattern %q", pattern).
			CausedBy(err)
	}

	idx.mut.RLock()
	defer idx.mut.RUnlock()

	catalog, ok := idx.catalogs[canonical(locale)]
	if !ok {
		return nil, nil
	}

	var found []string

	for key := range catalog.KeysWithPrefix(literalPrefix(pattern)) {
		if matcher.Match(key) {
			found = append(found, key)
		}
	}

	return found, nil
}

// checkBrackets rejects unterminated escapes, ranges and alternatives, which
// glob.Compile accepts silently in some cases.
func checkBrackets(pattern string) error {
	var (
		inRange bool
		depth   int
	)

	for pos := 0; pos < len(pattern); pos++ {
		switch ch := pattern[pos]; {
		case ch == '\\':
			if pos == len(pattern)-1 {
				return errUnterminatedEscape
			}

			pos++
		case inRange:
			inRange = ch != ']'
		case ch == '[':
			inRange = true
		case ch == '{':
			depth++
		case ch == '}' && depth > 0:
			depth--
		}
	}

	switch {
	case inRange:
		return errUnclosedRange
	case depth != 0:
		return errUnclosedAlternatives
	default:
		return nil
	}
}

// literalPrefix returns the part of pattern in front of the first glob meta character.
func literalPrefix(pattern string) string {
	if pos := strings.IndexAny(pattern, `*?[{\`); pos >= 0 {
		return pattern[:pos]
	}

	return pattern
}

// Entries returns the keys starting with prefix together with their messages.
func (idx *Index) Entries(locale, prefix string) map[string]string {
	idx.mut.RLock()
	defer idx.mut.RUnlock()

	catalog, ok := idx.catalogs[canonical(locale)]
	if !ok {
		return nil
	}

	return maps.Collect(catalog.Values(prefix))
}

// Remove deletes the given keys from the catalog of the locale. Returns true
// only if all of them were present.
func (idx *Index) Remove(locale string, keys ...string) bool {
	idx.mut.Lock()
	defer idx.mut.Unlock()

	catalog, ok := idx.catalogs[canonical(locale)]
	if !ok {
		return false
	}

	return catalog.RemoveAll(keys...)
}

// Locales returns the names of the loaded locales.
func (idx *Index) Locales() []string {
	idx.mut.RLock()
	defer idx.mut.RUnlock()

	return slices.Sorted(maps.Keys(idx.catalogs))
}

// Watch registers the index for changes of all catalog files loaded so far.
func (idx *Index) Watch(w watcher.Watcher) error {
	idx.mut.RLock()
	paths := slices.Sorted(maps.Keys(idx.files))
	idx.mut.RUnlock()

	for _, path := range paths {
		if err := w.Add(path, idx); err != nil {
			return err
		}
	}

	return nil
}

// OnChanged reloads the catalog file. The previous catalog stays active if
// the file can not be loaded.
func (idx *Index) OnChanged(logger zerolog.Logger, path string) {
	if err := idx.LoadFile(path); err != nil {
		logger.Warn().Err(err).Str("_file", path).
			Msg("Reloading locale catalog failed. Keeping the previous version")

		return
	}

	logger.Info().Str("_file", path).Msg("Locale catalog reloaded")
}
