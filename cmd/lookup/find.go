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

// NewFindCommand represents the "find" command.
func NewFindCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find <pattern>",
		Short: "Lists the keys matching a glob pattern",
		Long: "Lists the keys matching a glob pattern in lexicographic order.\n" +
			"\"*\" matches within a single key segment, \"**\" across segments.",
		Example: "lexis find 'menu.**.title' -o json",
		Args:    cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			format, err := outputFormat(cmd)
			if err == nil {
				err = findKeys(cmd, args[0], format)
			}

			if err != nil {
				printError(cmd, format, err)

				os.Exit(1)
			}
		},
	}

	flags.RegisterLocaleFlag(cmd)
	flags.RegisterOutputFlag(cmd)

	return cmd
}

func findKeys(cmd *cobra.Command, pattern, format string) error {
	ctx, err := newAppContext(cmd)
	if err != nil {
		return err
	}

	idx, err := ctx.Index()
	if err != nil {
		return err
	}

	locale := idx.Resolve(flags.PreferredLocales(cmd)...)

	keys, err := idx.Find(locale, pattern)
	if err != nil {
		return err
	}

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
