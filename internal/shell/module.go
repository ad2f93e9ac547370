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

package shell

import (
	"context"

	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

// Module is used on app bootstrap. The session runs in background once the app
// started and shuts the app down when it ends.
// nolint: gochecknoglobals
var Module = fx.Options(
	fx.Provide(New),
	fx.Invoke(runSession),
)

func runSession(lc fx.Lifecycle, sd fx.Shutdowner, sh *Shell, logger zerolog.Logger) {
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				exitCode := 0

				err := sh.Run(ctx)
				if ctx.Err() != nil {
					// the app is already stopping
					return
				}

				if err != nil {
					logger.Error().Err(err).Msg("Shell session failed")

					exitCode = 1
				}

				if err := sd.Shutdown(fx.ExitCode(exitCode)); err != nil {
					logger.Warn().Err(err).Msg("Failed to shut down")
				}
			}()

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()

			return nil
		},
	})
}
