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
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dadrus/lexis/cmd/flags"
	"github.com/dadrus/lexis/internal/commands"
)

// NewCompleteCommand represents the "complete" command, which completes the
// names of lexis' own commands.
func NewCompleteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "complete [prefix]",
		Short:   "Lists the commands and aliases starting with the given prefix",
		Example: "lexis complete tr",
		Args:    cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if err := complete(cmd, args); err != nil {
				cmd.PrintErrf("%v\n", err)

				os.Exit(1)
			}
		},
	}

	flags.RegisterLimitFlag(cmd,
		"Maximum number of completions. 0 uses the configured completion limit.")

	return cmd
}

func complete(cmd *cobra.Command, args []string) error {
	var prefix string
	if len(args) != 0 {
		prefix = args[0]
	}

	ctx, err := newAppContext(cmd)
	if err != nil {
		return err
	}

	limit, _ := cmd.Flags().GetInt(flags.Limit)
	if limit <= 0 {
		limit = ctx.Config().Completion.Limit
	}

	registry := commands.NewRegistry(ctx.Logger())
	if err = registry.FromCobra(cmd.Root()); err != nil {
		return err
	}

	for _, name := range registry.Complete(prefix, limit) {
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}

	return nil
}
