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
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dadrus/lexis/cmd/flags"
	"github.com/dadrus/lexis/internal/lexis"
	"github.com/dadrus/lexis/internal/locale"
	"github.com/dadrus/lexis/internal/x/errorchain"
)

func setupConfig(t *testing.T) string {
	t.Helper()

	testDir := t.TempDir()
	localesDir := filepath.Join(testDir, "locales")

	require.NoError(t, os.Mkdir(localesDir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(localesDir, "en.yaml"), []byte(`
greeting:
  hello: Hello {0}
  bye: Goodbye
menu:
  open: Open
  close: Close
`), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(localesDir, "de.yaml"), []byte(`
greeting:
  hello: Hallo {0}
`), 0o600))

	configFile := filepath.Join(testDir, "lexis.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte(`
log:
  level: error
locales:
  directory: `+localesDir+`
  default: en
completion:
  limit: 2
`), 0o600))

	for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		t.Setenv(name, "")
	}

	return configFile
}

func prepareCommand(t *testing.T, cmd *cobra.Command, args ...string) *bytes.Buffer {
	t.Helper()

	cmd.Flags().StringP(flags.Config, "c", "", "Path to lexis' configuration file.")
	cmd.Flags().String(flags.EnvironmentConfigPrefix, "LEXISTEST_", "Prefix for environment variables.")

	buf := bytes.NewBuffer([]byte{})
	cmd.SetOut(buf)
	cmd.SetErr(buf)

	require.NoError(t, cmd.ParseFlags(args))

	return buf
}

func TestTranslate(t *testing.T) {
	configFile := setupConfig(t)

	for _, tc := range []struct {
		uc     string
		flags  []string
		args   []string
		exp    string
		expErr error
	}{
		{uc: "default locale", args: []string{"greeting.hello", "World"}, exp: "Hello World\n"},
		{uc: "requested locale", flags: []string{"-l", "de-CH"}, args: []string{"greeting.hello", "Welt"}, exp: "Hallo Welt\n"},
		{uc: "fallback to default locale", flags: []string{"-l", "de"}, args: []string{"greeting.bye"}, exp: "Goodbye\n"},
		{uc: "unknown key", args: []string{"greeting.hi"}, expErr: locale.ErrUnknownKey},
	} {
		t.Run(tc.uc, func(t *testing.T) {
			// GIVEN
			cmd := NewTranslateCommand()
			buf := prepareCommand(t, cmd, append([]string{"--" + flags.Config, configFile}, tc.flags...)...)

			// WHEN
			err := translate(cmd, tc.args)

			// THEN
			if tc.expErr != nil {
				require.ErrorIs(t, err, tc.expErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.exp, buf.String())
		})
	}
}

func TestTranslateWithoutDefaultCatalog(t *testing.T) {
	// GIVEN
	localesDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(localesDir, "de.yaml"), []byte("greeting:\n  hello: Hallo\n"), 0o600))

	configFile := filepath.Join(t.TempDir(), "lexis.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("locales:\n  directory: "+localesDir+"\n"), 0o600))

	cmd := NewTranslateCommand()
	prepareCommand(t, cmd, "--"+flags.Config, configFile)

	// WHEN
	err := translate(cmd, []string{"greeting.hello"})

	// THEN
	require.ErrorIs(t, err, lexis.ErrConfiguration)
	assert.Contains(t, err.Error(), "no catalog for default locale en")
}

func TestListKeys(t *testing.T) {
	configFile := setupConfig(t)

	for _, tc := range []struct {
		uc     string
		flags  []string
		args   []string
		format string
		exp    string
	}{
		{uc: "all keys", format: flags.OutputText, exp: "greeting.bye\ngreeting.hello\nmenu.close\nmenu.open\n"},
		{uc: "keys with prefix", args: []string{"menu"}, format: flags.OutputText, exp: "menu.close\nmenu.open\n"},
		{uc: "limited keys", flags: []string{"-n", "1"}, args: []string{"greeting"}, format: flags.OutputText, exp: "greeting.bye\n"},
		{
			uc:     "json",
			flags:  []string{"-l", "de"},
			format: flags.OutputJSON,
			exp:    `{"locale":"de","entries":{"greeting.hello":"Hallo {0}"}}` + "\n",
		},
	} {
		t.Run(tc.uc, func(t *testing.T) {
			// GIVEN
			cmd := NewKeysCommand()
			buf := prepareCommand(t, cmd, append([]string{"--" + flags.Config, configFile}, tc.flags...)...)

			// WHEN
			err := listKeys(cmd, tc.args, tc.format)

			// THEN
			require.NoError(t, err)
			assert.Equal(t, tc.exp, buf.String())
		})
	}
}

func TestFindKeys(t *testing.T) {
	configFile := setupConfig(t)

	for _, tc := range []struct {
		uc      string
		flags   []string
		pattern string
		format  string
		exp     string
		expErr  error
	}{
		{uc: "segment wildcard", pattern: "*.open", format: flags.OutputText, exp: "menu.open\n"},
		{uc: "super wildcard", pattern: "**e", format: flags.OutputText, exp: "greeting.bye\nmenu.close\n"},
		{uc: "no match", pattern: "menu.edit.*", format: flags.OutputText},
		{
			uc:      "json",
			flags:   []string{"-l", "de"},
			pattern: "greeting.*",
			format:  flags.OutputJSON,
			exp:     `{"locale":"de","entries":{"greeting.hello":"Hallo {0}"}}` + "\n",
		},
		{uc: "malformed pattern", pattern: "menu.{open", format: flags.OutputText, expErr: lexis.ErrArgument},
	} {
		t.Run(tc.uc, func(t *testing.T) {
			// GIVEN
			cmd := NewFindCommand()
			buf := prepareCommand(t, cmd, append([]string{"--" + flags.Config, configFile}, tc.flags...)...)

			// WHEN
			err := findKeys(cmd, tc.pattern, tc.format)

			// THEN
			if tc.expErr != nil {
				require.ErrorIs(t, err, tc.expErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.exp, buf.String())
		})
	}
}

func TestOutputFormat(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		uc     string
		args   []string
		exp    string
		expErr bool
	}{
		{uc: "default", exp: flags.OutputText},
		{uc: "json", args: []string{"-o", "json"}, exp: flags.OutputJSON},
		{uc: "unsupported", args: []string{"-o", "xml"}, expErr: true},
	} {
		t.Run(tc.uc, func(t *testing.T) {
			// GIVEN
			cmd := NewKeysCommand()
			require.NoError(t, cmd.ParseFlags(tc.args))

			// WHEN
			format, err := outputFormat(cmd)

			// THEN
			if tc.expErr {
				require.ErrorIs(t, err, lexis.ErrArgument)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.exp, format)
		})
	}
}

func TestPrintError(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		uc     string
		format string
		exp    string
	}{
		{uc: "text", format: flags.OutputText, exp: "unknown key: \"foo\"\n"},
		{uc: "json", format: flags.OutputJSON, exp: `{"code":"unknownKey","message":"\"foo\""}` + "\n"},
	} {
		t.Run(tc.uc, func(t *testing.T) {
			// GIVEN
			cmd := NewKeysCommand()
			buf := bytes.NewBuffer([]byte{})
			cmd.SetErr(buf)

			err := errorchain.NewWithMessagef(locale.ErrUnknownKey, "%q", "foo")

			// WHEN
			printError(cmd, tc.format, err)

			// THEN
			assert.Equal(t, tc.exp, buf.String())
		})
	}
}

func TestComplete(t *testing.T) {
	configFile := setupConfig(t)

	root := &cobra.Command{Use: "lexis"}
	root.AddCommand(NewTranslateCommand(), NewKeysCommand())

	for _, tc := range []struct {
		uc    string
		flags []string
		args  []string
		exp   string
	}{
		{uc: "configured limit", exp: "complete\nkeys\n"},
		{uc: "limit from flag", flags: []string{"-n", "10"}, exp: "complete\nkeys\nls\ntr\ntranslate\n"},
		{uc: "prefix", args: []string{"t"}, exp: "tr\ntranslate\n"},
		{uc: "unknown prefix", args: []string{"x"}},
	} {
		t.Run(tc.uc, func(t *testing.T) {
			// GIVEN
			cmd := NewCompleteCommand()
			root.AddCommand(cmd)

			defer root.RemoveCommand(cmd)

			buf := prepareCommand(t, cmd, append([]string{"--" + flags.Config, configFile}, tc.flags...)...)

			// WHEN
			err := complete(cmd, tc.args)

			// THEN
			require.NoError(t, err)
			assert.Equal(t, tc.exp, buf.String())
		})
	}
}
