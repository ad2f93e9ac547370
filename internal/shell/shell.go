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
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/dadrus/lexis/internal/commands"
	"github.com/dadrus/lexis/internal/config"
	"github.com/dadrus/lexis/internal/locale"
)

var errQuit = errors.New("quit")

type Settings struct {
	In  io.Reader
	Out io.Writer
	// Preferred locales, used to select the initial catalog.
	Preferred []string
}

// Shell reads commands line by line and executes them against the locale index.
// Commands can be abbreviated by any unique prefix of their name or alias.
type Shell struct {
	idx      *locale.Index
	registry *commands.Registry
	builtins map[string]builtin
	locale   string
	limit    int
	in       io.Reader
	out      io.Writer
	l        zerolog.Logger
}

func New(
	idx *locale.Index,
	conf config.CompletionConfig,
	logger zerolog.Logger,
	settings Settings,
) (*Shell, error) {
	sh := &Shell{
		idx:      idx,
		registry: commands.NewRegistry(logger),
		builtins: make(map[string]builtin),
		locale:   idx.Resolve(settings.Preferred...),
		limit:    conf.Limit,
		in:       settings.In,
		out:      settings.Out,
		l:        logger,
	}

	for _, bi := range builtins() {
		if err := sh.registry.Register(&bi.cmd); err != nil {
			return nil, err
		}

		sh.builtins[bi.cmd.Name] = bi
	}

	return sh, nil
}

func (s *Shell) Locale() string { return s.locale }

// Run processes the input until it is exhausted, the quit command is read or
// ctx is done. Failing commands are reported to the output and do not end the
// session. Run returns on ctx being done even while waiting for input. The
// goroutine reading the input ends with the next line or when the input is closed.
func (s *Shell) Run(ctx context.Context) error {
	s.l.Debug().Str("_locale", s.locale).Msg("Shell session started")

	done := make(chan struct{})
	defer close(done)

	lines, readErr := s.readLines(done)

	s.prompt()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if err := ctx.Err(); err != nil {
				return err
			}

			if !ok {
				s.l.Debug().Msg("Shell session finished")

				return <-readErr
			}

			if err := s.Exec(line); err != nil {
				if errors.Is(err, errQuit) {
					s.l.Debug().Msg("Shell session finished")

					return nil
				}

				fmt.Fprintf(s.out, "error: %v\n", err)
			}

			s.prompt()
		}
	}
}

// readLines scans the input in background. The error channel receives the scan
// result once lines is closed because the input is exhausted.
func (s *Shell) readLines(done <-chan struct{}) (<-chan string, <-chan error) {
	lines := make(chan string)
	readErr := make(chan error, 1)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(s.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}

		readErr <- scanner.Err()
	}()

	return lines, readErr
}

// Exec executes a single command line.
func (s *Shell) Exec(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	cmd, err := s.registry.Resolve(fields[0])
	if err != nil {
		return err
	}

	s.l.Trace().Str("_command", cmd.Name).Strs("_args", fields[1:]).Msg("Executing command")

	return s.builtins[cmd.Name].run(s, fields[1:])
}

func (s *Shell) prompt() {
	fmt.Fprintf(s.out, "lexis [%s]> ", s.locale)
}
