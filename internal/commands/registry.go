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

package commands

import (
	"errors"
	"slices"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/dadrus/lexis/internal/lexis"
	"github.com/dadrus/lexis/internal/x/errorchain"
	"github.com/dadrus/lexis/internal/x/trie"
)

var (
	ErrUnknownCommand   = errors.New("unknown command")
	ErrAmbiguousCommand = errors.New("ambiguous command")
	ErrDuplicateCommand = errors.New("duplicate command")
)

type Command struct {
	Name    string
	Aliases []string
	Short   string
}

// names returns the name and aliases of c, sorted and without duplicates.
func (c *Command) names() []string {
	names := append([]string{c.Name}, c.Aliases...)
	slices.Sort(names)

	return slices.Compact(names)
}

// Registry resolves command names and their aliases. It is not safe for
// concurrent modification, but can be read from many goroutines once populated.
type Registry struct {
	names *trie.Trie[*Command]
	l     zerolog.Logger
}

func NewRegistry(logger zerolog.Logger) *Registry {
	return &Registry{names: trie.New[*Command](), l: logger}
}

// Register binds the name and all aliases of cmd. Either all names are
// registered or none.
func (r *Registry) Register(cmd *Command) error {
	if cmd == nil {
		return errorchain.NewWithMessage(lexis.ErrArgument, "no command provided")
	}

	names := cmd.names()

	for _, name := range names {
		if len(name) == 0 {
			return errorchain.NewWithMessagef(lexis.ErrArgument,
				"command %q has an empty name or alias", cmd.Name).CausedBy(trie.ErrInvalidKey)
		}

		if existing, found := r.names.Get(name); found && existing != cmd {
			return errorchain.NewWithMessagef(ErrDuplicateCommand,
				"%s is already registered for %s", name, existing.Name)
		}
	}

	for _, name := range names {
		if err := r.names.InsertValue(name, cmd); err != nil {
			r.names.RemoveAll(names...)

			return errorchain.New(lexis.ErrInternal).CausedBy(err)
		}
	}

	r.l.Debug().Str("_command", cmd.Name).Strs("_aliases", cmd.Aliases).Msg("Command registered")

	return nil
}

// FromCobra registers all available sub commands of root.
func (r *Registry) FromCobra(root *cobra.Command) error {
	for _, cmd := range root.Commands() {
		if !cmd.IsAvailableCommand() {
			continue
		}

		if err := r.Register(&Command{
			Name:    cmd.Name(),
			Aliases: cmd.Aliases,
			Short:   cmd.Short,
		}); err != nil {
			return err
		}
	}

	return nil
}

// Unregister removes the command the given name or alias is bound to, together
// with all its other names.
func (r *Registry) Unregister(name string) bool {
	cmd, found := r.names.Get(name)
	if !found {
		return false
	}

	r.l.Debug().Str("_command", cmd.Name).Msg("Command unregistered")

	return r.names.RemoveAll(cmd.names()...)
}

func (r *Registry) Lookup(name string) (*Command, bool) {
	return r.names.Get(name)
}

// Resolve returns the command token names exactly, or the only command having a
// name or alias starting with token.
func (r *Registry) Resolve(token string) (*Command, error) {
	if len(token) == 0 {
		return nil, errorchain.NewWithMessage(ErrUnknownCommand, "no command given")
	}

	if cmd, found := r.names.Get(token); found {
		return cmd, nil
	}

	var candidates []*Command

	for _, cmd := range r.names.Values(token) {
		if !slices.Contains(candidates, cmd) {
			candidates = append(candidates, cmd)
		}
	}

	switch len(candidates) {
	case 0:
		if known, cmd, found := r.names.LongestPrefix(token); found {
			return nil, errorchain.NewWithMessagef(ErrUnknownCommand,
				"%q, did you mean %q (%s)?", token, known, cmd.Name)
		}

		return nil, errorchain.NewWithMessagef(ErrUnknownCommand, "%q", token)
	case 1:
		r.l.Trace().Str("_token", token).Str("_command", candidates[0].Name).Msg("Command resolved by prefix")

		return candidates[0], nil
	default:
		names := make([]string, 0, len(candidates))
		for _, cmd := range candidates {
			names = append(names, cmd.Name)
		}

		slices.Sort(names)

		return nil, errorchain.NewWithMessagef(ErrAmbiguousCommand,
			"%q matches %s", token, strings.Join(names, ", "))
	}
}

// Complete returns up to limit names and aliases starting with prefix in
// lexicographic order.
func (r *Registry) Complete(prefix string, limit int) []string {
	return slices.Collect(r.names.KeysWithPrefixLimit(prefix, limit))
}

// Commands returns the registered commands ordered by name.
func (r *Registry) Commands() []*Command {
	var cmds []*Command

	for name, cmd := range r.names.Values("") {
		if name == cmd.Name {
			cmds = append(cmds, cmd)
		}
	}

	return cmds
}

func (r *Registry) Names() []string {
	cmds := r.Commands()
	names := make([]string, len(cmds))

	for i, cmd := range cmds {
		names[i] = cmd.Name
	}

	return names
}
