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

package watcher

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/dadrus/lexis/internal/lexis"
	"github.com/dadrus/lexis/internal/x/errorchain"
)

// watcher observes the directories of the registered files, so that files
// replaced by editors via rename are still reported.
type watcher struct {
	w    *fsnotify.Watcher
	dirs map[string]struct{}
	m    map[string][]ChangeListener
	l    zerolog.Logger

	mut sync.Mutex
}

func newWatcher(logger zerolog.Logger) (*watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errorchain.
			NewWithMessage(lexis.ErrInternal, "failed to instantiate file watcher").
			CausedBy(err)
	}

	return &watcher{
		w:    fsw,
		dirs: make(map[string]struct{}),
		m:    make(map[string][]ChangeListener),
		l:    logger,
	}, nil
}

func (w *watcher) Add(path string, cl ChangeListener) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return errorchain.NewWithMessagef(lexis.ErrInternal,
			"listener registration for file %s failed", path).CausedBy(err)
	}

	w.mut.Lock()
	defer w.mut.Unlock()

	dir := filepath.Dir(absPath)
	if _, ok := w.dirs[dir]; !ok {
		if err = w.w.Add(dir); err != nil {
			return errorchain.NewWithMessagef(lexis.ErrInternal,
				"listener registration for file %s failed", path).CausedBy(err)
		}

		w.dirs[dir] = struct{}{}
	}

	w.m[absPath] = append(w.m[absPath], cl)

	w.l.Debug().Str("_file", absPath).Msg("Watching file for changes")

	return nil
}

func (w *watcher) startWatching() {
	for {
		select {
		case evt, ok := <-w.w.Events:
			if !ok {
				w.l.Debug().Msg("File watcher closed")

				return
			}

			if evt.Has(fsnotify.Write) || evt.Has(fsnotify.Create) {
				w.fireOnChange(filepath.Clean(evt.Name))
			}
		case err, ok := <-w.w.Errors:
			if !ok {
				w.l.Debug().Msg("File watcher error channel closed")

				return
			}

			w.l.Warn().Err(err).Msg("File watcher error received")
		}
	}
}

func (w *watcher) start(_ context.Context) error {
	w.l.Debug().Msg("Starting watching locale files for changes")

	go w.startWatching()

	return nil
}

func (w *watcher) stop(_ context.Context) error {
	w.l.Debug().Msg("Stopping watching locale files for changes")

	return w.w.Close()
}

func (w *watcher) fireOnChange(path string) {
	w.mut.Lock()
	listeners := w.m[path]
	w.mut.Unlock()

	for _, listener := range listeners {
		go listener.OnChanged(w.l, path)
	}
}
