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

package lookup

import (
	"errors"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/dadrus/lexis/cmd/flags"
	"github.com/dadrus/lexis/internal/app"
	"github.com/dadrus/lexis/internal/config"
	"github.com/dadrus/lexis/internal/lexis"
	"github.com/dadrus/lexis/internal/x/errorchain"
)

func newAppContext(cmd *cobra.Command) (*app.Context, error) {
	envPrefix, _ := cmd.Flags().GetString(flags.EnvironmentConfigPrefix)
	configPath, _ := cmd.Flags().GetString(flags.Config)

	return app.NewContext(config.EnvVarPrefix(envPrefix), config.ConfigurationPath(configPath))
}

func outputFormat(cmd *cobra.Command) (string, error) {
	format, _ := cmd.Flags().GetString(flags.Output)

	switch format {
	case "", flags.OutputText:
		return flags.OutputText, nil
	case flags.OutputJSON:
		return flags.OutputJSON, nil
	default:
		return "", errorchain.NewWithMessagef(lexis.ErrArgument, "unsupported output format %q", format)
	}
}

func printJSON(cmd *cobra.Command, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errorchain.NewWithMessage(lexis.ErrInternal, "failed to render json").CausedBy(err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(raw))

	return nil
}

// printError writes err to stderr, as json if requested and err is an error chain.
func printError(cmd *cobra.Command, format string, err error) {
	var chain *errorchain.ErrorChain

	if format == flags.OutputJSON && errors.As(err, &chain) {
		if raw, jerr := json.Marshal(chain); jerr == nil {
			cmd.PrintErrln(string(raw))

			return
		}
	}

	cmd.PrintErrf("%v\n", err)
}
