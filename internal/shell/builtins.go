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
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/dadrus/lexis/internal/commands"
	"github.com/dadrus/lexis/internal/lexis"
	"github.com/dadrus/lexis/internal/locale"
	"github.com/dadrus/lexis/internal/x/errorchain"
)

type builtin struct {
	cmd   commands.Command
	usage string
	run   func(s *Shell, args []string) error
}

func (b builtin) usageError() *errorchain.ErrorChain {
	return errorchain.NewWithMessagef(lexis.ErrArgument, "usage: %s", b.usage)
}

func builtins() []builtin {
	return []builtin{
		{
			cmd:   commands.Command{Name: "get", Aliases: []string{"t"}, Short: "Prints the message of a key"},
			usage: "get <key> [params...]",
			run:   get,
		},
		{
			cmd:   commands.Command{Name: "set", Short: "Overrides the message of an existing key"},
			usage: "set <key> <message>",
			run:   set,
		},
		{
			cmd:   commands.Command{Name: "keys", Aliases: []string{"ls"}, Short: "Lists keys"},
			usage: "keys [prefix] [limit]",
			run:   keys,
		},
		{
			cmd:   commands.Command{Name: "find", Short: "Lists keys matching a glob pattern"},
			usage: "find <pattern>",
			run:   find,
		},
		{
			cmd:   commands.Command{Name: "complete", Short: "Completes a key"},
			usage: "complete <prefix>",
			run:   complete,
		},
		{
			cmd:   commands.Command{Name: "remove", Aliases: []string{"rm"}, Short: "Removes keys"},
			usage: "remove <key>...",
			run:   remove,
		},
		{
			cmd:   commands.Command{Name: "locale", Short: "Prints or switches the current locale"},
			usage: "locale [name]",
			run:   switchLocale,
		},
		{
			cmd:   commands.Command{Name: "locales", Short: "Lists the loaded locales"},
			usage: "locales",
			run:   listLocales,
		},
		{
			cmd:   commands.Command{Name: "help", Aliases: []string{"?"}, Short: "Lists the available commands"},
			usage: "help",
			run:   help,
		},
		{
			cmd:   commands.Command{Name: "quit", Aliases: []string{"exit"}, Short: "Ends the session"},
			usage: "quit",
			run:   func(_ *Shell, _ []string) error { return errQuit },
		},
	}
}

func get(s *Shell, args []string) error {
	if len(args) == 0 {
		return s.builtins["get"].usageError()
	}

	msg, err := s.idx.Translate(s.locale, args[0], args[1:]...)
	if err != nil {
		return err
	}

	fmt.Fprintln(s.out, msg)

	return nil
}

func set(s *Shell, args []string) error {
	if len(args) < 2 { // nolint: mnd
		return s.builtins["set"].usageError()
	}

	return s.idx.Override(s.locale, args[0], strings.Join(args[1:], " "))
}

func keys(s *Shell, args []string) error {
	var (
		prefix string
		limit  int
		err    error
	)

	switch len(args) {
	case 0:
	case 1:
		prefix = args[0]
	case 2: // nolint: mnd
		prefix = args[0]

		if limit, err = strconv.Atoi(args[1]); err != nil {
			return s.builtins["keys"].usageError().CausedBy(err)
		}
	default:
		return s.builtins["keys"].usageError()
	}

	for _, key := range s.idx.Keys(s.locale, prefix, limit) {
		fmt.Fprintln(s.out, key)
	}

	return nil
}

func find(s *Shell, args []string) error {
	if len(args) != 1 {
		return s.builtins["find"].usageError()
	}

	found, err := s.idx.Find(s.locale, args[0])
	if err != nil {
		return err
	}

	for _, key := range found {
		fmt.Fprintln(s.out, key)
	}

	return nil
}

func complete(s *Shell, args []string) error {
	if len(args) != 1 {
		return s.builtins["complete"].usageError()
	}

	candidates := s.idx.Keys(s.locale, args[0], s.limit)
	if len(candidates) != 0 {
		fmt.Fprintln(s.out, strings.Join(candidates, " "))
	}

	return nil
}

func remove(s *Shell, args []string) error {
	if len(args) == 0 {
		return s.builtins["remove"].usageError()
	}

	if !s.idx.Remove(s.locale, args...) {
		return errorchain.NewWithMessage(locale.ErrUnknownKey, "not all keys were present")
	}

	return nil
}

func switchLocale(s *Shell, args []string) error {
	switch len(args) {
	case 0:
		fmt.Fprintln(s.out, s.locale)

		return nil
	case 1:
		name, found := s.idx.Match(args[0])
		if !found {
			return errorchain.NewWithMessagef(locale.ErrUnknownLocale,
				"%q, loaded are %s", args[0], strings.Join(s.idx.Locales(), ", "))
		}

		s.l.Debug().Str("_locale", name).Msg("Locale switched")
		s.locale = name

		return nil
	default:
		return s.builtins["locale"].usageError()
	}
}

func listLocales(s *Shell, _ []string) error {
	for _, name := range s.idx.Locales() {
		marker := " "
		if name == s.locale {
			marker = "*"
		}

		fmt.Fprintf(s.out, "%s %s\n", marker, name)
	}

	return nil
}

func help(s *Shell, _ []string) error {
	tw := tabwriter.NewWriter(s.out, 0, 0, 2, ' ', 0) // nolint: mnd

	for _, cmd := range s.registry.Commands() {
		bi := s.builtins[cmd.Name]

		aliases := ""
		if len(cmd.Aliases) != 0 {
			aliases = "(" + strings.Join(cmd.Aliases, ", ") + ")"
		}

		fmt.Fprintf(tw, "%s\t%s\t%s\n", bi.usage, aliases, cmd.Short)
	}

	return tw.Flush()
}
