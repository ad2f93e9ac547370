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

package flags

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func RegisterGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringP(Config, "c", "",
		"Path to lexis' configuration file.\n"+
			"If not provided, the lookup sequence is:\n  1. $PWD\n  2. $HOME/.config")
	cmd.PersistentFlags().String(EnvironmentConfigPrefix, "LEXISCFG_",
		"Prefix for the environment variables to consider for\nloading configuration from")
}

func RegisterLocaleFlag(cmd *cobra.Command) {
	cmd.Flags().StringP(Locale, "l", "",
		"Locale to use. Defaults to the locale derived from\n$LC_ALL, $LC_MESSAGES or $LANG, then the configured default locale.")
}

func RegisterLimitFlag(cmd *cobra.Command, usage string) {
	cmd.Flags().IntP(Limit, "n", 0, usage)
}

func RegisterOutputFlag(cmd *cobra.Command) {
	cmd.Flags().StringP(Output, "o", OutputText, "Output format, either text or json.")
}

// PreferredLocales returns the locale given by the flag, followed by the ones
// configured in the environment.
func PreferredLocales(cmd *cobra.Command) []string {
	var preferred []string

	if flagValue, _ := cmd.Flags().GetString(Locale); len(flagValue) != 0 {
		preferred = append(preferred, flagValue)
	}

	for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		value := os.Getenv(name)

		// e.g. de_DE.UTF-8 or sr_RS@latin
		if idx := strings.IndexAny(value, ".@"); idx >= 0 {
			value = value[:idx]
		}

		if len(value) != 0 && value != "C" && value != "POSIX" {
			preferred = append(preferred, value)
		}
	}

	return preferred
}
