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

type keysResult struct {
	Locale  string            `json:"locale"`
	Entries map[string]string `json:"entries"`
}

// NewKeysCommand represents the "keys" command.
func NewKeysCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "keys [prefix]",
		Aliases: []string{"ls"},
		Short:   "Lists the keys starting with the given prefix in lexicographic order",
		Example: "lexis keys menu.file -n 5 -o json",
		Args:    cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			format, err := outputFormat(cmd)
			if err == nil {
				err = listKeys(cmd, args, format)
			}

			if err != nil {
				printError(cmd, format, err)

				os.Exit(1)
			}
		},
	}

	flags.RegisterLocaleFlag(cmd)
	flags.RegisterLimitFlag(cmd, "Maximum number of keys to list. 0 lists all.")
	flags.RegisterOutputFlag(cmd)

	return cmd
}

func listKeys(cmd *cobra.Command, args []string, format string) error {
	var prefix string
	if len(args) != 0 {
		prefix = args[0]
	}

	limit, _ := cmd.Flags().GetInt(flags.Limit)

	ctx, err := newAppContext(cmd)
	if err != nil {
		return err
	}

	idx, err := ctx.Index()
	if err != nil {
		return err
	}

	locale := idx.Resolve(flags.PreferredLocales(cmd)...)
	keys := idx.Keys(locale, prefix, limit)

	if format == flags.OutputText {
		for _, key := range keys {
			fmt.Fprintln(cmd.OutOrStdout(), key)
		}

		return nil
	}

	res := keysResult{Locale: locale, Entries: make(map[string]string, len(keys))}
	for _, key := range keys {
		res.Entries[key], _ = idx.Get(locale, key)
	}

	return printJSON(cmd, res)
}
