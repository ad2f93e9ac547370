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
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/dadrus/lexis/internal/config"
	"github.com/dadrus/lexis/internal/watcher"
)

// Module is used on app bootstrap.
// nolint: gochecknoglobals
var Module = fx.Options(
	fx.Provide(newIndex),
)

func newIndex(conf config.LocalesConfig, logger zerolog.Logger, w watcher.Watcher) (*Index, error) {
	idx, err := NewIndex(conf.Default, logger, WithMaxFileSize(conf.MaxFileSize))
	if err != nil {
		return nil, err
	}

	if err = idx.LoadDir(conf.Directory); err != nil {
		return nil, err
	}

	if err = idx.Watch(w); err != nil {
		return nil, err
	}

	return idx, nil
}
