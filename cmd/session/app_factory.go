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

package session

import (
	"bytes"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/dadrus/lexis/cmd/flags"
	"github.com/dadrus/lexis/internal/app"
	"github.com/dadrus/lexis/internal/config"
	"github.com/dadrus/lexis/internal/locale"
	"github.com/dadrus/lexis/internal/logging"
	"github.com/dadrus/lexis/internal/shell"
	"github.com/dadrus/lexis/internal/watcher"
	"github.com/dadrus/lexis/internal/x"
)

func createApp(cmd *cobra.Command) (*fx.App, error) {
	configPath, _ := cmd.Flags().GetString(flags.Config)
	envPrefix, _ := cmd.Flags().GetString(flags.EnvironmentConfigPrefix)
	cli := bytes.NewBufferString(cmd.CommandPath())

	cmd.Flags().Visit(func(flag *pflag.Flag) {
		cli.WriteString(" --")
		cli.WriteString(flag.Name)

		if flag.Value.Type() != "bool" {
			cli.WriteString(" ")
			cli.WriteString(flag.Value.String())
		}
	})

	validator, err := app.NewValidator()
	if err != nil {
		return nil, err
	}

	cfg, err := config.NewConfiguration(
		config.EnvVarPrefix(envPrefix),
		config.ConfigurationPath(configPath),
		validator,
	)
	if err != nil {
		return nil, err
	}

	application := fx.New(
		fx.Supply(
			cfg,
			shell.Settings{
				In:        cmd.InOrStdin(),
				Out:       cmd.OutOrStdout(),
				Preferred: flags.PreferredLocales(cmd),
			},
		),
		fx.WithLogger(func(logger zerolog.Logger) fxevent.Logger {
			return &eventLogger{l: logger}
		}),
		config.Module,
		logging.Module,
		x.IfThenElse(cfg.Locales.Watch, watcher.Module, watcher.NoopModule),
		locale.Module,
		fx.Invoke(func(logger zerolog.Logger, idx *locale.Index) {
			logger.Info().
				Str("_cli", cli.String()).
				Strs("_locales", idx.Locales()).
				Msg("Starting lexis shell")
		}),
		shell.Module,
	)

	return application, application.Err()
}
