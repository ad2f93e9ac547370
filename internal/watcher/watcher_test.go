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
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingListener struct {
	mut   sync.Mutex
	paths []string
}

func (r *recordingListener) OnChanged(_ zerolog.Logger, path string) {
	r.mut.Lock()
	defer r.mut.Unlock()

	r.paths = append(r.paths, path)
}

func (r *recordingListener) calls() []string {
	r.mut.Lock()
	defer r.mut.Unlock()

	return append([]string(nil), r.paths...)
}

func TestWatcherLifecycle(t *testing.T) {
	t.Parallel()

	// GIVEN
	cw, err := newWatcher(zerolog.Nop())
	require.NoError(t, err)

	require.NoError(t, cw.start(context.TODO()))
	defer cw.stop(context.TODO())

	testDir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	f1, err := os.Create(filepath.Join(testDir, "en.yaml"))
	require.NoError(t, err)

	defer f1.Close()

	f2, err := os.Create(filepath.Join(testDir, "de.yaml"))
	require.NoError(t, err)

	defer f2.Close()

	f3, err := os.Create(filepath.Join(testDir, "fr.yaml"))
	require.NoError(t, err)

	defer f3.Close()

	cl1 := &recordingListener{}
	cl2 := &recordingListener{}
	cl3 := &recordingListener{}
	cl4 := &recordingListener{}

	require.NoError(t, cw.Add(f1.Name(), cl1))
	require.NoError(t, cw.Add(f2.Name(), cl2))
	require.NoError(t, cw.Add(f2.Name(), cl3))
	require.NoError(t, cw.Add(f3.Name(), cl4))

	// WHEN
	_, err = f1.WriteString("foo: bar")
	require.NoError(t, err)

	_, err = f2.WriteString("foo: baz")
	require.NoError(t, err)

	// THEN
	assert.Eventually(t, func() bool {
		return len(cl1.calls()) > 0 && len(cl2.calls()) > 0 && len(cl3.calls()) > 0
	}, 2*time.Second, 20*time.Millisecond)

	time.Sleep(100 * time.Millisecond)

	assert.Contains(t, cl1.calls(), f1.Name())
	assert.Contains(t, cl2.calls(), f2.Name())
	assert.Contains(t, cl3.calls(), f2.Name())
	assert.Empty(t, cl4.calls())
}

func TestWatcherReportsReplacedFiles(t *testing.T) {
	t.Parallel()

	// GIVEN
	cw, err := newWatcher(zerolog.Nop())
	require.NoError(t, err)

	require.NoError(t, cw.start(context.TODO()))
	defer cw.stop(context.TODO())

	testDir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	target := filepath.Join(testDir, "en.yaml")
	require.NoError(t, os.WriteFile(target, []byte("foo: bar"), 0o600))

	cl := &recordingListener{}
	require.NoError(t, cw.Add(target, cl))

	// WHEN
	tmp := filepath.Join(testDir, ".en.yaml.swp")
	require.NoError(t, os.WriteFile(tmp, []byte("foo: baz"), 0o600))
	require.NoError(t, os.Rename(tmp, target))

	// THEN
	assert.Eventually(t, func() bool { return len(cl.calls()) > 0 }, 2*time.Second, 20*time.Millisecond)
	assert.Equal(t, target, cl.calls()[0])
}

func TestWatcherAddFailsForMissingDirectory(t *testing.T) {
	t.Parallel()

	// GIVEN
	cw, err := newWatcher(zerolog.Nop())
	require.NoError(t, err)

	defer cw.stop(context.TODO())

	// WHEN
	err = cw.Add(filepath.Join(t.TempDir(), "missing", "en.yaml"), &recordingListener{})

	// THEN
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listener registration")
}

func TestNoopWatcher(t *testing.T) {
	t.Parallel()

	require.NoError(t, NewNoopWatcher().Add("/does/not/exist", &recordingListener{}))
}
