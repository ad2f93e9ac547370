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
	"os"

	"github.com/spf13/cobra"

	"github.com/dadrus/lexis/cmd/flags"
)

// NewShellCommand represents the "shell" command.
func NewShellCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Starts an interactive session to query and edit the locale catalogs",
		Long: "Starts an interactive session to query and edit the locale catalogs.\n" +
			"Changes are kept in memory only. Type \"help\" to list the available commands.",
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			app, err := createApp(cmd)
			if err != nil {
				cmd.PrintErrf("Failed to start the shell: %v\n", err)

				os.Exit(1)
			}

			app.Run()
		},
	}

	flags.RegisterLocaleFlag(cmd)

	return cmd
}
