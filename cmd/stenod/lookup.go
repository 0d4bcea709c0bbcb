// Copyright 2025 The Steno Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nthand/steno/dict"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <text>",
	Short: "find the stroke sequences that render exactly <text>",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfigFromFlags()
		if err != nil {
			return err
		}

		d, err := dict.LoadFile(cfg.DictPath, cfg.DictEncoding)
		if err != nil {
			return err
		}

		matches := lookup(d, args[0])
		if len(matches) == 0 {
			return fmt.Errorf("no dictionary entry renders %q", args[0])
		}

		out := cmd.OutOrStdout()
		for _, m := range matches {
			fmt.Fprintln(out, m)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lookupCmd)
}

// renderLiteral concatenates the text of e's Verbatim, Glue and Suffix
// parts as plain text, reporting false if e has any other kind of part
// (caps or space changes, carry-to-next, punctuation, a meta-command).
func renderLiteral(e dict.Entry) (string, bool) {
	var sb strings.Builder
	for _, part := range e {
		switch p := part.(type) {
		case dict.Verbatim:
			sb.WriteString(string(p))
		case dict.Glue:
			sb.WriteString(string(p))
		case dict.Suffix:
			sb.WriteString(string(p))
		default:
			return "", false
		}
	}
	return sb.String(), true
}

// lookup returns the stroke keys whose entry renders exactly text,
// sorted by stroke count then spelling length, shortest first.
func lookup(d *dict.Dictionary, text string) []string {
	var matches []string
	d.Range(func(key string, e dict.Entry) {
		if rendered, ok := renderLiteral(e); ok && rendered == text {
			matches = append(matches, key)
		}
	})

	sort.Slice(matches, func(i, j int) bool {
		ni, nj := strokeCount(matches[i]), strokeCount(matches[j])
		if ni != nj {
			return ni < nj
		}
		return len(matches[i]) < len(matches[j])
	})
	return matches
}
