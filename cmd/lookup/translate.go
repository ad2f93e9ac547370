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
)

// NewTranslateCommand represents the "translate" command.
func NewTranslateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "translate <key> [params...]",
		Aliases: []string{"tr"},
		Short:   "Prints the message of a key, placeholders {0}, {1}, ... replaced by params",
		Example: "lexis translate greeting.hello World -l de",
		Args:    cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if err := translate(cmd, args); err != nil {
				cmd.PrintErrf("%v\n", err)

				os.Exit(1)
			}
		},
	}

	flags.RegisterLocaleFlag(cmd)

	return cmd
}

func translate(cmd *cobra.Command, args []string) error {
	ctx, err := newAppContext(cmd)
	if err != nil {
		return err
	}

	idx, err := ctx.Index()
	if err != nil {
		return err
	}

	msg, err := idx.Translate(idx.Resolve(flags.PreferredLocales(cmd)...), args[0], args[1:]...)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), msg)

	return nil
}
